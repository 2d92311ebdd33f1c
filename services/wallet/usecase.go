package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// WalletUC defines the interface for wallet business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cupoapp/cupo/services/wallet WalletUC
type WalletUC interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransaction, error)
	Deposit(ctx context.Context, userID uuid.UUID, req models.DepositRequest) (*models.Wallet, error)

	Freeze(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) (*models.Wallet, error)
	Release(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) (*models.Wallet, error)
	Charge(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) (*models.Wallet, error)
	Hold(ctx context.Context, req models.HoldRequest) error
	HoldReturn(ctx context.Context, req models.HoldRequest) error
}
