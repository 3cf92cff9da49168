package chain

import (
	"errors"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
)

// ChainInfo holds the identity of the base-layer network the peer is
// connected to.
type ChainInfo struct {
	Network     string
	BlockHeight int32
}

// Service is the representation of the base-layer peer consumed by the swap
// coordinator. It allows to query the maker's available balance, to derive
// new addresses, to submit payouts and, for regtest ONLY, to mine blocks.
type Service interface {
	// GetBalance returns the spendable balance of the peer's wallet.
	GetBalance() (btcutil.Amount, error)
	// GetNewAddress derives a new address from the peer's wallet.
	GetNewAddress() (string, error)
	// GenerateToAddress mines the given number of blocks paying the coinbase
	// to the given address and returns their block hashes.
	GenerateToAddress(numBlocks int64, address string) ([]string, error)
	// SendToAddress submits a payment of the given amount to the given
	// address and returns the transaction id.
	SendToAddress(address string, amount btcutil.Amount) (string, error)
	// GetChainInfo returns the name and tip height of the peer's chain.
	GetChainInfo() (*ChainInfo, error)
	// Close shuts down the connection with the peer.
	Close()
}

// IsPeerError returns whether the given error was explicitly reported by the
// peer as a JSON-RPC application error. In that case the requested operation
// is known to have failed. Any other error coming from a Service call is a
// transport failure and the outcome of the operation is unknown.
func IsPeerError(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr)
}
