package gateway

import (
	"context"
	"encoding/json"

	"github.com/cupoapp/cupo/internal/pkg/constants"
	"github.com/cupoapp/cupo/internal/pkg/models"
	natspkg "github.com/cupoapp/cupo/internal/pkg/nats"
	"github.com/cupoapp/cupo/services/wallet"
)

// WalletGW handles NATS publishing for wallet events
type WalletGW struct {
	natsClient *natspkg.Client
}

// NewWalletGW creates a new wallet gateway
func NewWalletGW(client *natspkg.Client) wallet.WalletGW {
	return &WalletGW{
		natsClient: client,
	}
}

// PublishWalletFrozen publishes a wallet frozen event to NATS
func (g *WalletGW) PublishWalletFrozen(ctx context.Context, event *models.WalletEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectWalletFrozen, data)
}

// PublishWalletReleased publishes a wallet released event to NATS
func (g *WalletGW) PublishWalletReleased(ctx context.Context, event *models.WalletEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectWalletReleased, data)
}

// PublishWalletCharged publishes a wallet charged event to NATS
func (g *WalletGW) PublishWalletCharged(ctx context.Context, event *models.WalletEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectWalletCharged, data)
}
