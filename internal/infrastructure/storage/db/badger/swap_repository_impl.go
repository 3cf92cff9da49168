package dbbadger

import (
	"context"
	"errors"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
)

type swapRepositoryImpl struct {
	store *badgerhold.Store
	// updateLocker serializes UpdateSwap calls so that the read-check-write
	// cycle of a commit is atomic with respect to concurrent commits of the
	// same swap.
	updateLocker *sync.Mutex
}

// NewSwapRepositoryImpl returns a new badger SwapRepository implementation.
func NewSwapRepositoryImpl(store *badgerhold.Store) domain.SwapRepository {
	return &swapRepositoryImpl{
		store:        store,
		updateLocker: &sync.Mutex{},
	}
}

func (r *swapRepositoryImpl) AddSwap(
	_ context.Context, swap *domain.Swap,
) error {
	if err := r.store.Insert(swap.Id, *swap); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return domain.ErrSwapAlreadyExist
		}
		return err
	}
	return nil
}

func (r *swapRepositoryImpl) GetSwap(
	_ context.Context, id string,
) (*domain.Swap, error) {
	return r.getSwap(id)
}

func (r *swapRepositoryImpl) GetAllSwaps(
	_ context.Context,
) ([]*domain.Swap, error) {
	// a nil query matches all the records.
	return r.findSwaps(nil)
}

func (r *swapRepositoryImpl) GetPendingSwaps(
	_ context.Context,
) ([]*domain.Swap, error) {
	query := badgerhold.Where("Status").Eq(domain.SwapStatusCodePending)
	return r.findSwaps(query)
}

func (r *swapRepositoryImpl) UpdateSwap(
	_ context.Context,
	id string,
	updateFn func(s *domain.Swap) (*domain.Swap, error),
) error {
	r.updateLocker.Lock()
	defer r.updateLocker.Unlock()

	currentSwap, err := r.getSwap(id)
	if err != nil {
		return err
	}

	updatedSwap, err := updateFn(currentSwap)
	if err != nil {
		return err
	}

	return r.store.Update(id, *updatedSwap)
}

func (r *swapRepositoryImpl) getSwap(id string) (*domain.Swap, error) {
	var swap domain.Swap
	if err := r.store.Get(id, &swap); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) || errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domain.ErrSwapNotFound
		}
		return nil, err
	}
	return &swap, nil
}

func (r *swapRepositoryImpl) findSwaps(query *badgerhold.Query) ([]*domain.Swap, error) {
	var list []domain.Swap
	if err := r.store.Find(&list, query); err != nil {
		return nil, err
	}

	swaps := make([]*domain.Swap, 0, len(list))
	for i := range list {
		swaps = append(swaps, &list[i])
	}
	return swaps, nil
}
