package application

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"

	"github.com/hashswap-network/hashswapd/internal/core/domain"
	"github.com/hashswap-network/hashswapd/internal/core/ports"
	"github.com/hashswap-network/hashswapd/internal/metrics"
	"github.com/hashswap-network/hashswapd/pkg/chain"
)

// SwapService is the application service coordinating the whole lifecycle of
// a swap: quote issuance, settlement and audit views.
type SwapService interface {
	// IssueQuote generates a fresh swap record for the given amount of
	// satoshis and returns its public artifact.
	IssueQuote(ctx context.Context, amount uint64) (*QuoteInfo, error)
	// CommitSwap validates the commit request against the stored swap record
	// and the peer's reported balance, submits exactly one payout to the
	// given address and marks the swap completed. It returns the payout
	// transaction id.
	CommitSwap(
		ctx context.Context, swapId, claimReference, payoutAddress string,
	) (string, error)
	// GetSwap returns the audit view of the swap with the given id.
	GetSwap(ctx context.Context, swapId string) (*SwapInfo, error)
	// ListSwaps returns the audit views of all the swaps in the store.
	ListSwaps(ctx context.Context) ([]SwapInfo, error)
}

type swapService struct {
	repoManager ports.RepoManager
	chainSvc    chain.Service
	net         *chaincfg.Params
	quoteTTL    time.Duration
	dustLimit   btcutil.Amount
}

// NewSwapService returns a new SwapService using the given repositories and
// base-layer peer.
func NewSwapService(
	repoManager ports.RepoManager,
	chainSvc chain.Service,
	net *chaincfg.Params,
	quoteTTL time.Duration,
	dustLimit btcutil.Amount,
) SwapService {
	return &swapService{
		repoManager: repoManager,
		chainSvc:    chainSvc,
		net:         net,
		quoteTTL:    quoteTTL,
		dustLimit:   dustLimit,
	}
}

func (s *swapService) IssueQuote(
	ctx context.Context, amount uint64,
) (*QuoteInfo, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	swap, err := domain.NewSwap(amount, s.quoteTTL)
	if err != nil {
		return nil, fmt.Errorf("generating swap: %w", err)
	}

	if err := s.repoManager.SwapRepository().AddSwap(ctx, swap); err != nil {
		return nil, err
	}

	metrics.IncQuotesIssued()
	log.WithFields(log.Fields{
		"swap_id": swap.Id,
		"amount":  swap.Amount,
	}).Debug("quote issued")

	return newQuoteInfo(swap), nil
}

func (s *swapService) CommitSwap(
	ctx context.Context, swapId, claimReference, payoutAddress string,
) (string, error) {
	payoutTxid, err := s.commitSwap(ctx, swapId, claimReference, payoutAddress)
	if err != nil {
		metrics.IncCommitFailure(ErrorCode(err))
		return "", err
	}

	metrics.IncPayoutsCompleted()
	return payoutTxid, nil
}

func (s *swapService) commitSwap(
	ctx context.Context, swapId, claimReference, payoutAddress string,
) (string, error) {
	if err := validateAddress(payoutAddress, s.net); err != nil {
		return "", err
	}
	if claimReference == "" {
		return "", ErrMissingClaimReference
	}

	var payoutTxid string
	var unknownOutcome error

	// The whole check-payout-transition cycle runs inside UpdateSwap so that
	// concurrent commits of the same swap are serialized and at most one of
	// them can ever trigger a payout.
	if err := s.repoManager.SwapRepository().UpdateSwap(
		ctx, swapId, func(swap *domain.Swap) (*domain.Swap, error) {
			if swap.IsCompleted() {
				return nil, domain.ErrSwapAlreadyProcessed
			}
			if swap.IsExpired() {
				return nil, domain.ErrSwapExpired
			}

			amount := btcutil.Amount(swap.Amount)
			if amount < s.dustLimit {
				return nil, ErrAmountTooSmall
			}

			balance, err := s.chainSvc.GetBalance()
			if err != nil {
				return nil, peerError(err)
			}
			if balance < amount {
				log.WithFields(log.Fields{
					"swap_id": swap.Id,
					"amount":  btcString(swap.Amount),
					"balance": balance.ToBTC(),
				}).Warn("not enough liquidity to cover the payout")
				return nil, ErrInsufficientLiquidity
			}

			txid, err := s.chainSvc.SendToAddress(payoutAddress, amount)
			if err != nil {
				if chain.IsPeerError(err) {
					return nil, fmt.Errorf("%w: %s", ErrPeerRejected, err)
				}
				// The transport failed while the payout was in flight: the
				// payment may or may not have reached the network. The swap
				// stays Pending and is never retried automatically, only the
				// attempt is persisted for reconciliation.
				swap.CountPayoutAttempt()
				unknownOutcome = fmt.Errorf("%w: %s", ErrPeerUnavailable, err)
				return swap, nil
			}

			if err := swap.Complete(claimReference, txid); err != nil {
				return nil, err
			}
			payoutTxid = txid
			return swap, nil
		},
	); err != nil {
		return "", err
	}

	if unknownOutcome != nil {
		log.WithError(unknownOutcome).WithField("swap_id", swapId).
			Warn("payout submission outcome is unknown, manual reconciliation needed")
		return "", unknownOutcome
	}

	log.WithFields(log.Fields{
		"swap_id":     swapId,
		"payout_txid": payoutTxid,
		"address":     payoutAddress,
	}).Info("swap completed")

	return payoutTxid, nil
}

func (s *swapService) GetSwap(
	ctx context.Context, swapId string,
) (*SwapInfo, error) {
	swap, err := s.repoManager.SwapRepository().GetSwap(ctx, swapId)
	if err != nil {
		return nil, err
	}

	info := newSwapInfo(swap)
	return &info, nil
}

func (s *swapService) ListSwaps(ctx context.Context) ([]SwapInfo, error) {
	swaps, err := s.repoManager.SwapRepository().GetAllSwaps(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]SwapInfo, 0, len(swaps))
	for _, swap := range swaps {
		list = append(list, newSwapInfo(swap))
	}
	return list, nil
}

// peerError maps an error returned by a balance query to the application
// error taxonomy. In both cases no payout has been submitted yet, so the
// failure is safely retryable.
func peerError(err error) error {
	if chain.IsPeerError(err) {
		return fmt.Errorf("%w: %s", ErrPeerRejected, err)
	}
	return fmt.Errorf("%w: %s", ErrPeerUnavailable, err)
}
