package tests

import (
	"testing"

	"github.com/dhananjaypai08/bookit-contract/common"
	"github.com/dhananjaypai08/bookit-contract/contracts/account/accountconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestAccountDeployConfig(t *testing.T) {
	inv := newBookItInvokers(t, "SomeKey", "TheValue")
	inv.account.Invoke(t, "TheValue", "config", "SomeKey")
	inv.account.Invoke(t, stackitem.Null{}, "config", "MissingKey")
}

func TestStake(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.account

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	price := int64(accountconst.DefaultStakePrice)

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "stake", acc.ScriptHash(), price)
	cAcc.InvokeFail(t, accountconst.ErrStakeAmount, "stake", acc.ScriptHash(), price-1)
	cAcc.InvokeFail(t, accountconst.ErrStakeAmount, "stake", acc.ScriptHash(), price+1)

	c.Invoke(t, false, "isStaked", acc.ScriptHash())
	c.Invoke(t, 0, "stakeOf", acc.ScriptHash())

	h := cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), price)
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Staked", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		addrItem(acc.ScriptHash()),
		stackitem.Make(price),
	}), aer.Events[0].Item)

	c.Invoke(t, true, "isStaked", acc.ScriptHash())
	c.Invoke(t, price, "stakeOf", acc.ScriptHash())

	cAcc.InvokeFail(t, accountconst.ErrAlreadyStaked, "stake", acc.ScriptHash(), price)
}

func TestStakePrice(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		inv := newBookItInvokers(t)
		inv.account.Invoke(t, int64(accountconst.DefaultStakePrice), "stakePrice")
	})

	t.Run("configured", func(t *testing.T) {
		inv := newBookItInvokers(t, accountconst.StakePriceKey, int64(42))
		c := inv.account

		c.Invoke(t, 42, "stakePrice")

		acc := c.NewAccount(t)
		cAcc := c.WithSigners(acc)
		cAcc.InvokeFail(t, accountconst.ErrStakeAmount, "stake",
			acc.ScriptHash(), int64(accountconst.DefaultStakePrice))
		cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), int64(42))
		c.Invoke(t, 42, "stakeOf", acc.ScriptHash())
	})
}

func TestAccountSetConfig(t *testing.T) {
	inv := newBookItInvokers(t)
	c := inv.account

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed, "setConfig",
		[]byte{}, []byte("Key"), []byte("Value"))

	c.Invoke(t, stackitem.Null{}, "setConfig", []byte{}, []byte("Key"), []byte("Value"))
	c.Invoke(t, "Value", "config", "Key")
}

func TestAccountListConfig(t *testing.T) {
	inv := newBookItInvokers(t, "Alpha", "1", "Beta", "2")
	c := inv.account

	s, err := c.TestInvoke(t, "listConfig")
	require.NoError(t, err)

	records := s.Pop().Array()
	require.Len(t, records, 2)

	// records come out in key order
	first := records[0].Value().([]stackitem.Item)
	require.Equal(t, []byte("Alpha"), bytesValue(t, first[0]))
	require.Equal(t, []byte("1"), bytesValue(t, first[1]))

	second := records[1].Value().([]stackitem.Item)
	require.Equal(t, []byte("Beta"), bytesValue(t, second[0]))
	require.Equal(t, []byte("2"), bytesValue(t, second[1]))
}

func TestUpdateAccess(t *testing.T) {
	inv := newBookItInvokers(t)
	acc := inv.account.NewAccount(t)

	for _, c := range []*neotest.ContractInvoker{inv.account, inv.event, inv.review, inv.reputation} {
		c.WithSigners(acc).InvokeFail(t, "only committee can update contract",
			"update", []byte{}, []byte{}, nil)
	}
}
