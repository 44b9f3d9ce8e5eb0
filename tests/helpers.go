package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// addrItem is the stack item form of an address returned by a contract.
func addrItem(addr util.Uint160) stackitem.Item {
	return stackitem.NewByteArray(addr.BytesBE())
}

func intValue(t *testing.T, item stackitem.Item) int64 {
	i, err := item.TryInteger()
	require.NoError(t, err)
	return i.Int64()
}

func bytesValue(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}
