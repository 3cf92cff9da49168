package domain_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
)

func TestNewSwap(t *testing.T) {
	t.Parallel()

	swap, err := domain.NewSwap(5000, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, swap)

	require.NotEmpty(t, swap.Id)
	require.Equal(t, uint64(5000), swap.Amount)
	require.True(t, swap.IsPending())
	require.False(t, swap.IsCompleted())
	require.False(t, swap.IsExpired())

	require.Len(t, swap.Secret, domain.SecretLength)
	digest := sha256.Sum256(swap.Secret)
	require.Equal(t, hex.EncodeToString(digest[:]), swap.SecretHash)
	require.True(t, swap.VerifySecret(swap.Secret))

	pubkey, err := hex.DecodeString(swap.MakerPublicKey)
	require.NoError(t, err)
	require.Len(t, pubkey, 32)
	require.NotEmpty(t, swap.MakerPrivateKey)

	require.Greater(t, swap.ExpiryTime, swap.CreationTime)
}

func TestFailingNewSwap(t *testing.T) {
	t.Parallel()

	swap, err := domain.NewSwap(0, time.Minute)
	require.EqualError(t, err, domain.ErrSwapNullAmount.Error())
	require.Nil(t, swap)
}

func TestNewSwapUniqueness(t *testing.T) {
	t.Parallel()

	const numOfSwaps = 10000

	ids := make(map[string]struct{}, numOfSwaps)
	hashes := make(map[string]struct{}, numOfSwaps)
	for i := 0; i < numOfSwaps; i++ {
		swap, err := domain.NewSwap(1000, time.Minute)
		require.NoError(t, err)

		_, ok := ids[swap.Id]
		require.False(t, ok)
		_, ok = hashes[swap.SecretHash]
		require.False(t, ok)

		ids[swap.Id] = struct{}{}
		hashes[swap.SecretHash] = struct{}{}
	}
}

func TestSwapComplete(t *testing.T) {
	t.Parallel()

	swap := newPendingSwap(t)

	err := swap.Complete("claimref", "txid")
	require.NoError(t, err)
	require.True(t, swap.IsCompleted())
	require.Equal(t, "claimref", swap.ClaimReference)
	require.Equal(t, "txid", swap.PayoutTxid)
	require.Zero(t, swap.ExpiryTime)
	require.NotZero(t, swap.SettlementTime)
}

func TestFailingSwapComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		swap        *domain.Swap
		expectedErr error
	}{
		{
			name:        "with_swap_completed",
			swap:        newCompletedSwap(t),
			expectedErr: domain.ErrSwapAlreadyProcessed,
		},
		{
			name:        "with_swap_expired",
			swap:        newExpiredSwap(t),
			expectedErr: domain.ErrSwapExpired,
		},
	}

	for i := range tests {
		tt := tests[i]

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.swap.Complete("claimref", "txid")
			require.EqualError(t, err, tt.expectedErr.Error())
		})
	}
}

func TestSwapExpire(t *testing.T) {
	t.Parallel()

	swap := newPendingSwap(t)
	swap.ExpiryTime = time.Now().Add(-time.Minute).Unix()
	require.True(t, swap.IsExpired())

	err := swap.Expire()
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusCodeExpired, swap.Status)

	// Expiring an already expired swap is a no-op.
	err = swap.Expire()
	require.NoError(t, err)
}

func TestFailingSwapExpire(t *testing.T) {
	t.Parallel()

	t.Run("with_expiry_not_reached", func(t *testing.T) {
		t.Parallel()

		swap := newPendingSwap(t)
		err := swap.Expire()
		require.EqualError(t, err, domain.ErrSwapExpiryTimeNotReached.Error())
	})

	t.Run("with_swap_completed", func(t *testing.T) {
		t.Parallel()

		swap := newCompletedSwap(t)
		err := swap.Expire()
		require.EqualError(t, err, domain.ErrSwapAlreadyProcessed.Error())
	})
}

func TestVerifySecret(t *testing.T) {
	t.Parallel()

	swap := newPendingSwap(t)
	require.True(t, swap.VerifySecret(swap.Secret))

	other := newPendingSwap(t)
	require.False(t, swap.VerifySecret(other.Secret))
}

func newPendingSwap(t *testing.T) *domain.Swap {
	swap, err := domain.NewSwap(5000, time.Minute)
	require.NoError(t, err)
	return swap
}

func newCompletedSwap(t *testing.T) *domain.Swap {
	swap := newPendingSwap(t)
	err := swap.Complete("claimref", "txid")
	require.NoError(t, err)
	return swap
}

func newExpiredSwap(t *testing.T) *domain.Swap {
	swap := newPendingSwap(t)
	swap.ExpiryTime = time.Now().Add(-time.Minute).Unix()
	err := swap.Expire()
	require.NoError(t, err)
	return swap
}
