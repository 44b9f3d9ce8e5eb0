package deploy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDeployMissingPrm(t *testing.T) {
	_, err := Deploy(context.Background(), Prm{})
	require.ErrorContains(t, err, "missing logger")

	_, err = Deploy(context.Background(), Prm{Logger: zaptest.NewLogger(t)})
	require.ErrorContains(t, err, "missing blockchain client")
}
