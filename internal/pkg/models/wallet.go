package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a wallet ledger entry
type TransactionType string

const (
	TransactionTypeDeposit        TransactionType = "deposit"
	TransactionTypeFreeze         TransactionType = "freeze"
	TransactionTypeRelease        TransactionType = "release"
	TransactionTypeCharge         TransactionType = "charge"
	TransactionTypeBookingHold    TransactionType = "booking_hold"
	TransactionTypeBookingPayment TransactionType = "booking_payment"
	TransactionTypeBookingRefund  TransactionType = "booking_refund"
)

// TransactionStatus represents the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusReversed  TransactionStatus = "reversed"
)

// Wallet holds a user's available and frozen funds. Amounts are COP in the
// smallest unit; freezing moves funds from balance into frozen_balance
// without changing total holdings.
type Wallet struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Balance       int64     `json:"balance" db:"balance"`
	FrozenBalance int64     `json:"frozen_balance" db:"frozen_balance"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// WalletTransaction is an immutable, append-only ledger record. Created
// once, never mutated or deleted.
type WalletTransaction struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	WalletID  uuid.UUID         `json:"wallet_id" db:"wallet_id"`
	Type      TransactionType   `json:"transaction_type" db:"transaction_type"`
	Amount    int64             `json:"amount" db:"amount"`
	Reference string            `json:"reference" db:"reference"`
	Detail    string            `json:"detail" db:"detail"`
	Status    TransactionStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

// WalletOpRequest is the request body for freeze/release/charge operations
type WalletOpRequest struct {
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
	Detail    string `json:"detail,omitempty"`
}

// HoldRequest moves funds from a payer's available balance into a holder's
// frozen balance (booking escrow), or back on return.
type HoldRequest struct {
	PayerUserID  uuid.UUID `json:"payer_user_id"`
	HolderUserID uuid.UUID `json:"holder_user_id"`
	Amount       int64     `json:"amount"`
	Reference    string    `json:"reference"`
}

// DepositRequest is the request body for a wallet top-up
type DepositRequest struct {
	Amount int64  `json:"amount"`
	Detail string `json:"detail,omitempty"`
}

// WalletEvent is published to NATS after a successful wallet mutation
type WalletEvent struct {
	WalletID  uuid.UUID       `json:"wallet_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"`
	Reference string          `json:"reference"`
	Timestamp time.Time       `json:"timestamp"`
}
