package ports

import (
	"github.com/hashswap-network/hashswapd/internal/core/domain"
)

// RepoManager gives access to all the repositories of the daemon and owns the
// lifecycle of the underlying storage.
type RepoManager interface {
	// SwapRepository returns the repository persisting swaps.
	SwapRepository() domain.SwapRepository

	// Close closes the underlying storage.
	Close()
}
