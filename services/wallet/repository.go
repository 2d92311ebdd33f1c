package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// WalletRepo defines the interface for wallet data access operations. Every
// mutation runs in a single database transaction and appends its ledger rows
// atomically with the balance change.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cupoapp/cupo/services/wallet WalletRepo
type WalletRepo interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetWalletByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.WalletTransaction, error)

	Deposit(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error)
	Freeze(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error)
	Release(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error)
	ChargeFromFrozen(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error)
	Hold(ctx context.Context, payerUserID, holderUserID uuid.UUID, amount int64, reference string) error
	HoldReturn(ctx context.Context, payerUserID, holderUserID uuid.UUID, amount int64, reference string) error
}
