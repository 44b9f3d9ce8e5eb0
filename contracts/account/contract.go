package account

import (
	"github.com/dhananjaypai08/bookit-contract/common"
	"github.com/dhananjaypai08/bookit-contract/contracts/account/accountconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	stakerPrefix = 's'
)

var configPrefix = []byte("config")

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	if data != nil {
		args := data.([]any)
		if len(args)%2 != 0 {
			panic("bad configuration")
		}

		for i := 0; i < len(args); i += 2 {
			key := args[i].(string)
			val := args[i+1]

			setConfig(ctx, key, val)
		}
	}

	runtime.Log("account contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("account contract updated")
}

// Stake records a one-time collateral deposit that unlocks event creation for
// the address. Amount must be exactly the StakePrice configuration value. It
// can be invoked only by the account owner. The value transfer itself is
// settled by the chain, the contract records the gate being satisfied.
//
// It produces Staked notification.
func Stake(addr interop.Hash160, amount int) {
	ctx := storage.GetContext()

	if len(addr) != interop.Hash160Len {
		panic("invalid address")
	}
	common.CheckOwnerWitness(addr)

	if amount != StakePrice() {
		panic(accountconst.ErrStakeAmount)
	}

	key := append([]byte{stakerPrefix}, addr...)
	if storage.Get(ctx, key) != nil {
		panic(accountconst.ErrAlreadyStaked)
	}

	storage.Put(ctx, key, amount)

	runtime.Log("stake accepted")
	runtime.Notify("Staked", addr, amount)
}

// IsStaked returns true if the address has deposited its stake.
func IsStaked(addr interop.Hash160) bool {
	return StakeOf(addr) > 0
}

// StakeOf returns the staked amount of the address, 0 if the address has
// never staked.
func StakeOf(addr interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	amount := storage.Get(ctx, append([]byte{stakerPrefix}, addr...))
	if amount == nil {
		return 0
	}

	return amount.(int)
}

// StakePrice returns the exact amount required to stake.
func StakePrice() int {
	ctx := storage.GetReadOnlyContext()

	price := getConfig(ctx, accountconst.StakePriceKey)
	if price == nil {
		return accountconst.DefaultStakePrice
	}

	return price.(int)
}

// Config returns the configuration value of the specified key.
func Config(key []byte) any {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx, key)
}

// SetConfig key-value pair as a BookIt runtime configuration value. It can be
// invoked only by committee.
func SetConfig(id, key, val []byte) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	setConfig(ctx, key, val)

	runtime.Log("configuration has been updated")
}

type record struct {
	key []byte
	val []byte
}

// ListConfig returns an array of structures that contain key and value of all
// BookIt configuration records. Key and value are both byte arrays.
func ListConfig() []record {
	ctx := storage.GetReadOnlyContext()

	var config []record

	it := storage.Find(ctx, configPrefix, storage.None)
	for iterator.Next(it) {
		pair := iterator.Value(it).(struct {
			key []byte
			val []byte
		})
		r := record{key: pair.key[len(configPrefix):], val: pair.val}

		config = append(config, r)
	}

	return config
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getConfig(ctx storage.Context, key any) any {
	postfix := key.([]byte)
	storageKey := append(configPrefix, postfix...)

	return storage.Get(ctx, storageKey)
}

func setConfig(ctx storage.Context, key, val any) {
	postfix := key.([]byte)
	storageKey := append(configPrefix, postfix...)

	storage.Put(ctx, storageKey, val)
}
