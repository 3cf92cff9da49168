package chain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/stretchr/testify/require"

	"github.com/hashswap-network/hashswapd/pkg/chain"
)

func TestIsPeerError(t *testing.T) {
	t.Parallel()

	rpcErr := &btcjson.RPCError{
		Code:    btcjson.ErrRPCInvalidAddressOrKey,
		Message: "Invalid address",
	}

	require.True(t, chain.IsPeerError(rpcErr))
	require.True(t, chain.IsPeerError(fmt.Errorf("sending payout: %w", rpcErr)))

	require.False(t, chain.IsPeerError(errors.New("connection refused")))
	require.False(t, chain.IsPeerError(fmt.Errorf("timeout: %w", errors.New("i/o"))))
}
