package wallet

import (
	"context"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// WalletGW defines the interface for wallet event publishing
//
//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/cupoapp/cupo/services/wallet WalletGW
type WalletGW interface {
	PublishWalletFrozen(ctx context.Context, event *models.WalletEvent) error
	PublishWalletReleased(ctx context.Context, event *models.WalletEvent) error
	PublishWalletCharged(ctx context.Context, event *models.WalletEvent) error
}
