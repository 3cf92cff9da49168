package application

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
	"github.com/hashswap-network/hashswapd/internal/core/ports"
	"github.com/hashswap-network/hashswapd/internal/metrics"
)

// SwapReaper periodically scans the pending swaps and marks as Expired those
// whose quote TTL has elapsed, closing the replay window of stale quotes.
type SwapReaper struct {
	repoManager ports.RepoManager
	interval    time.Duration
}

// NewSwapReaper returns a new reaper scanning the store at the given interval.
func NewSwapReaper(
	repoManager ports.RepoManager, interval time.Duration,
) *SwapReaper {
	return &SwapReaper{
		repoManager: repoManager,
		interval:    interval,
	}
}

// Start runs the reaping loop until the given context is canceled.
func (r *SwapReaper) Start(ctx context.Context) error {
	log.Debugf("swap reaper started with interval %s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("swap reaper stopped")
			return nil
		case <-ticker.C:
			r.reapExpiredQuotes(ctx)
		}
	}
}

func (r *SwapReaper) reapExpiredQuotes(ctx context.Context) {
	repo := r.repoManager.SwapRepository()

	pendingSwaps, err := repo.GetPendingSwaps(ctx)
	if err != nil {
		log.WithError(err).Warn("reaper: failed to list pending swaps")
		return
	}

	for _, swap := range pendingSwaps {
		if !swap.IsExpired() {
			continue
		}

		if err := repo.UpdateSwap(
			ctx, swap.Id, func(s *domain.Swap) (*domain.Swap, error) {
				if err := s.Expire(); err != nil {
					return nil, err
				}
				return s, nil
			},
		); err != nil {
			// A commit may have won the race in the meantime, nothing to do.
			if errors.Is(err, domain.ErrSwapAlreadyProcessed) ||
				errors.Is(err, domain.ErrSwapExpiryTimeNotReached) {
				continue
			}
			log.WithError(err).WithField("swap_id", swap.Id).
				Warn("reaper: failed to expire swap")
			continue
		}

		metrics.IncSwapsExpired()
		log.WithField("swap_id", swap.Id).Info("swap quote expired")
	}
}
