package application

import (
	"github.com/shopspring/decimal"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
)

// QuoteInfo is the public artifact of a swap quote handed to the caller to
// construct the off-chain lock. It carries everything but the secret material.
type QuoteInfo struct {
	SwapId      string
	Amount      uint64
	SecretHash  string
	MakerPubkey string
	ExpiryTime  int64
}

// SwapInfo is the audit view of a swap. Secret and private key are never
// part of it.
type SwapInfo struct {
	SwapId         string
	Amount         uint64
	SecretHash     string
	MakerPubkey    string
	Status         string
	ClaimReference string
	PayoutTxid     string
	PayoutAttempts uint32
	CreationTime   int64
	ExpiryTime     int64
	SettlementTime int64
}

func newQuoteInfo(swap *domain.Swap) *QuoteInfo {
	return &QuoteInfo{
		SwapId:      swap.Id,
		Amount:      swap.Amount,
		SecretHash:  swap.SecretHash,
		MakerPubkey: swap.MakerPublicKey,
		ExpiryTime:  swap.ExpiryTime,
	}
}

func newSwapInfo(swap *domain.Swap) SwapInfo {
	return SwapInfo{
		SwapId:         swap.Id,
		Amount:         swap.Amount,
		SecretHash:     swap.SecretHash,
		MakerPubkey:    swap.MakerPublicKey,
		Status:         statusString(swap.Status),
		ClaimReference: swap.ClaimReference,
		PayoutTxid:     swap.PayoutTxid,
		PayoutAttempts: swap.PayoutAttempts,
		CreationTime:   swap.CreationTime,
		ExpiryTime:     swap.ExpiryTime,
		SettlementTime: swap.SettlementTime,
	}
}

func statusString(code int) string {
	switch code {
	case domain.SwapStatusCodePending:
		return "pending"
	case domain.SwapStatusCodeCompleted:
		return "completed"
	case domain.SwapStatusCodeExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// btcString formats an amount of satoshis as its base-layer native unit
// representation, ie. a string with 8 decimal places.
func btcString(satoshis uint64) string {
	return decimal.New(int64(satoshis), -8).StringFixed(8)
}
