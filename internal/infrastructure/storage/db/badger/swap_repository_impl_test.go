package dbbadger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
	dbbadger "github.com/hashswap-network/hashswapd/internal/infrastructure/storage/db/badger"
)

var ctx = context.Background()

func TestSwapRepository(t *testing.T) {
	repoManager, err := dbbadger.NewRepoManager(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(repoManager.Close)

	repo := repoManager.SwapRepository()

	swap, err := domain.NewSwap(5000, time.Minute)
	require.NoError(t, err)

	t.Run("add_and_get_swap", func(t *testing.T) {
		err := repo.AddSwap(ctx, swap)
		require.NoError(t, err)

		err = repo.AddSwap(ctx, swap)
		require.EqualError(t, err, domain.ErrSwapAlreadyExist.Error())

		found, err := repo.GetSwap(ctx, swap.Id)
		require.NoError(t, err)
		require.Equal(t, swap.Id, found.Id)
		require.Equal(t, swap.Amount, found.Amount)
		require.Equal(t, swap.SecretHash, found.SecretHash)
		require.Equal(t, swap.Secret, found.Secret)

		_, err = repo.GetSwap(ctx, "unknown")
		require.EqualError(t, err, domain.ErrSwapNotFound.Error())
	})

	t.Run("list_swaps", func(t *testing.T) {
		all, err := repo.GetAllSwaps(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)

		pending, err := repo.GetPendingSwaps(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("update_swap", func(t *testing.T) {
		err := repo.UpdateSwap(
			ctx, swap.Id, func(s *domain.Swap) (*domain.Swap, error) {
				if err := s.Complete("claimref", "txid"); err != nil {
					return nil, err
				}
				return s, nil
			},
		)
		require.NoError(t, err)

		found, err := repo.GetSwap(ctx, swap.Id)
		require.NoError(t, err)
		require.True(t, found.IsCompleted())
		require.Equal(t, "txid", found.PayoutTxid)

		pending, err := repo.GetPendingSwaps(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 0)
	})

	t.Run("update_swap_rollback_on_error", func(t *testing.T) {
		err := repo.UpdateSwap(
			ctx, swap.Id, func(s *domain.Swap) (*domain.Swap, error) {
				return nil, domain.ErrSwapAlreadyProcessed
			},
		)
		require.EqualError(t, err, domain.ErrSwapAlreadyProcessed.Error())
	})
}
