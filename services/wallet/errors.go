package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrWalletNotFound indicates no wallet exists for the user
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInvalidAmount indicates a zero or negative operation amount
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds indicates the available balance cannot cover the
	// operation. Match with errors.Is; the concrete value carries the
	// shortfall.
	ErrInsufficientFunds = errors.New("insufficient available balance")

	// ErrInsufficientFrozen indicates the frozen balance cannot cover the
	// operation
	ErrInsufficientFrozen = errors.New("insufficient frozen balance")

	// ErrOperationInProgress indicates another mutation with the same
	// reference is still running for this wallet
	ErrOperationInProgress = errors.New("wallet operation already in progress")
)

// InsufficientFundsError reports how much is missing from the available
// balance for the attempted operation.
type InsufficientFundsError struct {
	Available int64
	Required  int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient available balance: have %d, need %d (short %d)",
		e.Available, e.Required, e.Shortfall())
}

func (e *InsufficientFundsError) Shortfall() int64 {
	return e.Required - e.Available
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// InsufficientFrozenError reports how much is missing from the frozen
// balance for the attempted operation.
type InsufficientFrozenError struct {
	Frozen   int64
	Required int64
}

func (e *InsufficientFrozenError) Error() string {
	return fmt.Sprintf("insufficient frozen balance: have %d, need %d",
		e.Frozen, e.Required)
}

func (e *InsufficientFrozenError) Is(target error) bool {
	return target == ErrInsufficientFrozen
}
