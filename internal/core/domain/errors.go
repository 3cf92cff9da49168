package domain

import "errors"

var (
	// ErrSwapNotFound ...
	ErrSwapNotFound = errors.New("swap not found")
	// ErrSwapAlreadyExist ...
	ErrSwapAlreadyExist = errors.New("swap with same id already exists")
	// ErrSwapAlreadyProcessed is returned when attempting to commit a swap
	// whose payout was already submitted.
	ErrSwapAlreadyProcessed = errors.New("swap already processed")
	// ErrSwapExpired ...
	ErrSwapExpired = errors.New("swap quote is expired")
	// ErrSwapNullAmount ...
	ErrSwapNullAmount = errors.New("swap amount must not be null")
	// ErrSwapNullExpiryTime ...
	ErrSwapNullExpiryTime = errors.New("swap must have an expiration date set")
	// ErrSwapExpiryTimeNotReached ...
	ErrSwapExpiryTimeNotReached = errors.New("swap expiration date has not reached yet")
)
