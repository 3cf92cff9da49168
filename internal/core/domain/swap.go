package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/google/uuid"
)

const (
	// SwapStatusCodePending is the initial status of every swap.
	SwapStatusCodePending = iota
	// SwapStatusCodeCompleted is the terminal status of a swap whose payout
	// has been submitted to the base layer.
	SwapStatusCodeCompleted
	// SwapStatusCodeExpired is the terminal status of a swap whose quote was
	// never committed within its TTL.
	SwapStatusCodeExpired
)

// SecretLength is the byte length of a swap secret (preimage).
const SecretLength = 32

// Swap is the data structure representing a one-way atomic swap coordinated
// by the daemon. The secret and the maker private key are generated at quote
// time and must never leave the coordinator.
type Swap struct {
	Id              string
	Amount          uint64
	Secret          []byte
	SecretHash      string
	MakerPrivateKey []byte
	MakerPublicKey  string
	ClaimReference  string
	PayoutTxid      string
	Status          int
	PayoutAttempts  uint32
	CreationTime    int64
	ExpiryTime      int64
	SettlementTime  int64
}

// NewSwap returns a Pending swap with a fresh id, secret, commitment hash and
// ephemeral keypair. The id is drawn from a random source unrelated to the
// secret so that leaking an id reveals nothing about the commitment.
func NewSwap(amount uint64, ttl time.Duration) (*Swap, error) {
	if amount == 0 {
		return nil, ErrSwapNullAmount
	}

	secret := make([]byte, SecretLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	secretHash := sha256.Sum256(secret)

	privkey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Swap{
		Id:              uuid.New().String(),
		Amount:          amount,
		Secret:          secret,
		SecretHash:      hex.EncodeToString(secretHash[:]),
		MakerPrivateKey: privkey.Serialize(),
		MakerPublicKey:  hex.EncodeToString(schnorr.SerializePubKey(privkey.PubKey())),
		Status:          SwapStatusCodePending,
		CreationTime:    now.Unix(),
		ExpiryTime:      now.Add(ttl).Unix(),
	}, nil
}

// Complete brings the swap from the Pending to the Completed status, records
// the off-chain claim reference and the payout transaction id, and unsets the
// expiration time. A swap can be completed exactly once. Wall-clock expiry is
// enforced by the caller before submitting the payout; once the payout is out
// the completion must go through even if the TTL elapsed in the meantime.
func (s *Swap) Complete(claimReference, payoutTxid string) error {
	if s.IsCompleted() {
		return ErrSwapAlreadyProcessed
	}
	if s.Status == SwapStatusCodeExpired {
		return ErrSwapExpired
	}

	s.ClaimReference = claimReference
	s.PayoutTxid = payoutTxid
	s.Status = SwapStatusCodeCompleted
	s.ExpiryTime = 0
	s.SettlementTime = time.Now().Unix()
	return nil
}

// Expire brings the swap to the Expired status, only if Pending and only once
// its expiration date has passed.
func (s *Swap) Expire() error {
	if s.Status == SwapStatusCodeExpired {
		return nil
	}
	if s.IsCompleted() {
		return ErrSwapAlreadyProcessed
	}
	if s.ExpiryTime <= 0 {
		return ErrSwapNullExpiryTime
	}
	if time.Now().Before(time.Unix(s.ExpiryTime, 0)) {
		return ErrSwapExpiryTimeNotReached
	}

	s.Status = SwapStatusCodeExpired
	return nil
}

// CountPayoutAttempt records a payout submission whose outcome is unknown
// because the peer transport failed mid-call. Kept for audit and manual
// reconciliation.
func (s *Swap) CountPayoutAttempt() {
	s.PayoutAttempts++
}

// IsPending returns whether the swap is in Pending status.
func (s *Swap) IsPending() bool {
	return s.Status == SwapStatusCodePending
}

// IsCompleted returns whether the swap is in Completed status.
func (s *Swap) IsCompleted() bool {
	return s.Status == SwapStatusCodeCompleted
}

// IsExpired returns whether the swap is in Expired status, or if its
// expiration date has passed without the payout being committed.
func (s *Swap) IsExpired() bool {
	return s.Status == SwapStatusCodeExpired ||
		(s.Status == SwapStatusCodePending && s.ExpiryTime > 0 &&
			time.Now().After(time.Unix(s.ExpiryTime, 0)))
}

// VerifySecret returns whether the given preimage matches the swap's
// commitment hash.
func (s *Swap) VerifySecret(secret []byte) bool {
	digest := sha256.Sum256(secret)
	return subtle.ConstantTimeCompare(
		[]byte(hex.EncodeToString(digest[:])), []byte(s.SecretHash),
	) == 1
}
