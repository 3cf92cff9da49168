package domain

import "context"

// SwapRepository is the abstraction for any kind of database intended to
// persist Swaps.
type SwapRepository interface {
	// AddSwap persists the given swap. It fails if a swap with the same id
	// already exists.
	AddSwap(ctx context.Context, swap *Swap) error
	// GetSwap returns the swap with the given id, or ErrSwapNotFound.
	GetSwap(ctx context.Context, id string) (*Swap, error)
	// GetAllSwaps returns all the swaps stored in the repository.
	GetAllSwaps(ctx context.Context) ([]*Swap, error)
	// GetPendingSwaps returns all the swaps in Pending status.
	GetPendingSwaps(ctx context.Context) ([]*Swap, error)
	// UpdateSwap commits the changes made by updateFn to the swap with the
	// given id in a transactional way. The whole read-update-write cycle is
	// guaranteed to be atomic with respect to any other concurrent update of
	// the same swap.
	UpdateSwap(
		ctx context.Context,
		id string,
		updateFn func(s *Swap) (*Swap, error),
	) error
}
