package inmemory

import (
	"sync"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
	"github.com/hashswap-network/hashswapd/internal/core/ports"
)

type swapInmemoryStore struct {
	swaps  map[string]domain.Swap
	locker *sync.Mutex
}

// RepoManager is the in-memory implementation of the ports.RepoManager
// interface. It is process-scoped and mainly intended for development and
// testing.
type RepoManager struct {
	swapRepository domain.SwapRepository
}

// NewRepoManager returns a new in-memory ports.RepoManager.
func NewRepoManager() ports.RepoManager {
	store := &swapInmemoryStore{
		swaps:  map[string]domain.Swap{},
		locker: &sync.Mutex{},
	}

	return &RepoManager{
		swapRepository: NewSwapRepositoryImpl(store),
	}
}

func (d *RepoManager) SwapRepository() domain.SwapRepository {
	return d.swapRepository
}

func (d *RepoManager) Close() {}
