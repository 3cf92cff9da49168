package application

import (
	"errors"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
)

var (
	// ErrInvalidAmount is returned when requesting a quote for a null,
	// negative or out of range amount.
	ErrInvalidAmount = errors.New("amount must be a positive amount of satoshis")
	// ErrInvalidAddress is returned when the payout address is not a valid
	// address for the configured network.
	ErrInvalidAddress = errors.New("payout address is not valid for the configured network")
	// ErrMissingClaimReference ...
	ErrMissingClaimReference = errors.New("claim reference must not be empty")
	// ErrAmountTooSmall is returned when the swap amount is below the dust
	// limit of the network.
	ErrAmountTooSmall = errors.New("amount is below the minimum transferable amount")
	// ErrInsufficientLiquidity is returned when the maker's balance cannot
	// cover the payout. The swap stays Pending and the commit can be retried
	// once liquidity is replenished.
	ErrInsufficientLiquidity = errors.New("liquidity is insufficient to cover the payout")
	// ErrPeerRejected is returned when the base-layer peer explicitly
	// rejected the operation. The payout is known to have failed and the
	// commit can be safely retried.
	ErrPeerRejected = errors.New("base-layer peer rejected the operation")
	// ErrPeerUnavailable is returned when the call to the base-layer peer
	// failed at transport level. The outcome of the operation is unknown and
	// the swap is deliberately left Pending without marking it completed.
	ErrPeerUnavailable = errors.New("base-layer peer is unavailable")
)

// ErrorCode returns the stable machine-readable code of the given error, as
// exposed by the HTTP interface and used as metric label.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, ErrMissingClaimReference):
		return "missing_claim_reference"
	case errors.Is(err, ErrAmountTooSmall):
		return "amount_too_small"
	case errors.Is(err, ErrInsufficientLiquidity):
		return "insufficient_liquidity"
	case errors.Is(err, ErrPeerRejected):
		return "peer_rejected"
	case errors.Is(err, ErrPeerUnavailable):
		return "peer_unavailable"
	case errors.Is(err, domain.ErrSwapNotFound):
		return "swap_not_found"
	case errors.Is(err, domain.ErrSwapAlreadyProcessed):
		return "already_processed"
	case errors.Is(err, domain.ErrSwapExpired):
		return "swap_expired"
	default:
		return "internal_error"
	}
}
