package tests

import (
	"path"
	"testing"

	"github.com/dhananjaypai08/bookit-contract/contracts/account/accountconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	accountPath    = "../contracts/account"
	eventPath      = "../contracts/event"
	reviewPath     = "../contracts/review"
	reputationPath = "../contracts/reputation"
)

// bookitInvokers is a committee invoker per deployed platform contract.
type bookitInvokers struct {
	executor   *neotest.Executor
	account    *neotest.ContractInvoker
	event      *neotest.ContractInvoker
	review     *neotest.ContractInvoker
	reputation *neotest.ContractInvoker
}

// newBookItInvokers deploys the full contract suite on a fresh single-node
// chain. Optional config key-value pairs are passed to the Account contract.
// Contract hashes are deterministic, so mutually referencing contracts can be
// deployed with the hashes of yet undeployed siblings.
func newBookItInvokers(t *testing.T, config ...any) bookitInvokers {
	e := newExecutor(t)

	ctrAccount := neotest.CompileFile(t, e.CommitteeHash, accountPath, path.Join(accountPath, "config.yml"))
	ctrEvent := neotest.CompileFile(t, e.CommitteeHash, eventPath, path.Join(eventPath, "config.yml"))
	ctrReview := neotest.CompileFile(t, e.CommitteeHash, reviewPath, path.Join(reviewPath, "config.yml"))
	ctrReputation := neotest.CompileFile(t, e.CommitteeHash, reputationPath, path.Join(reputationPath, "config.yml"))

	e.DeployContract(t, ctrAccount, append([]any{}, config...))
	e.DeployContract(t, ctrEvent, []any{ctrAccount.Hash, ctrReputation.Hash})
	e.DeployContract(t, ctrReview, []any{ctrEvent.Hash, ctrReputation.Hash})
	e.DeployContract(t, ctrReputation, []any{ctrAccount.Hash, ctrEvent.Hash, ctrReview.Hash})

	return bookitInvokers{
		executor:   e,
		account:    e.CommitteeInvoker(ctrAccount.Hash),
		event:      e.CommitteeInvoker(ctrEvent.Hash),
		review:     e.CommitteeInvoker(ctrReview.Hash),
		reputation: e.CommitteeInvoker(ctrReputation.Hash),
	}
}

// newStakedAccount creates a funded account and deposits its stake.
func newStakedAccount(t *testing.T, inv bookitInvokers) neotest.Signer {
	acc := inv.account.NewAccount(t)
	inv.account.WithSigners(acc).Invoke(t, stackitem.Null{}, "stake",
		acc.ScriptHash(), int64(accountconst.DefaultStakePrice))
	return acc
}

// addTestEvent creates an event with fixed metadata and returns its id.
func addTestEvent(t *testing.T, inv bookitInvokers, organizer neotest.Signer, capacity, priceWei int64) int64 {
	s, err := inv.event.TestInvoke(t, "count")
	require.NoError(t, err)
	id := s.Pop().BigInt().Int64() + 1

	inv.event.WithSigners(organizer).Invoke(t, id, "addEvent",
		organizer.ScriptHash(), "Dev Meetup", "An evening of lightning talks",
		"2024-06-01", "18:00", "Community Hall",
		capacity, priceWei, "ipfs://QmLogo", "meetup")
	return id
}
