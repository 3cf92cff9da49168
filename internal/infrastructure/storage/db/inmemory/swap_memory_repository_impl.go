package inmemory

import (
	"context"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
)

type swapRepositoryImpl struct {
	store *swapInmemoryStore
}

// NewSwapRepositoryImpl returns a new inmemory SwapRepository implementation.
func NewSwapRepositoryImpl(store *swapInmemoryStore) domain.SwapRepository {
	return &swapRepositoryImpl{store}
}

func (r swapRepositoryImpl) AddSwap(_ context.Context, swap *domain.Swap) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.swaps[swap.Id]; ok {
		return domain.ErrSwapAlreadyExist
	}

	r.store.swaps[swap.Id] = *swap
	return nil
}

func (r swapRepositoryImpl) GetSwap(_ context.Context, id string) (*domain.Swap, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getSwap(id)
}

func (r swapRepositoryImpl) GetAllSwaps(_ context.Context) ([]*domain.Swap, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getAllSwaps(), nil
}

func (r swapRepositoryImpl) GetPendingSwaps(_ context.Context) ([]*domain.Swap, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	pendingSwaps := make([]*domain.Swap, 0)
	for _, swap := range r.getAllSwaps() {
		if swap.Status == domain.SwapStatusCodePending {
			pendingSwaps = append(pendingSwaps, swap)
		}
	}
	return pendingSwaps, nil
}

// UpdateSwap runs updateFn while holding the store lock. This serializes the
// whole read-check-write cycle of a commit against any concurrent update of
// the same swap, which is the load-bearing guard against double payout.
func (r swapRepositoryImpl) UpdateSwap(
	_ context.Context,
	id string,
	updateFn func(s *domain.Swap) (*domain.Swap, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	currentSwap, err := r.getSwap(id)
	if err != nil {
		return err
	}

	updatedSwap, err := updateFn(currentSwap)
	if err != nil {
		return err
	}

	r.store.swaps[id] = *updatedSwap
	return nil
}

func (r swapRepositoryImpl) getSwap(id string) (*domain.Swap, error) {
	swap, ok := r.store.swaps[id]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	return &swap, nil
}

func (r swapRepositoryImpl) getAllSwaps() []*domain.Swap {
	allSwaps := make([]*domain.Swap, 0, len(r.store.swaps))
	for _, swap := range r.store.swaps {
		s := swap
		allSwaps = append(allSwaps, &s)
	}
	return allSwaps
}
