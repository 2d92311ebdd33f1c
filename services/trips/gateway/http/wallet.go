package http

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	httppkg "github.com/cupoapp/cupo/internal/pkg/http"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
)

// WalletGW calls the wallet service over HTTP
type WalletGW struct {
	client *httppkg.APIKeyClient
}

// NewWalletGW creates a wallet gateway using the trips service credentials
func NewWalletGW(cfg *models.Config) trips.WalletGW {
	client := httppkg.NewAPIKeyClient(&cfg.APIKey, "trips-service", cfg.Services.WalletServiceURL)
	return &WalletGW{client: client}
}

// Freeze freezes funds in a user's wallet
func (g *WalletGW) Freeze(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) error {
	return g.client.PostJSON(ctx, fmt.Sprintf("/internal/wallet/%s/freeze", userID), req, nil)
}

// Release releases frozen funds back to a user's balance
func (g *WalletGW) Release(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) error {
	return g.client.PostJSON(ctx, fmt.Sprintf("/internal/wallet/%s/release", userID), req, nil)
}

// Charge takes funds from a user's frozen balance
func (g *WalletGW) Charge(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) error {
	return g.client.PostJSON(ctx, fmt.Sprintf("/internal/wallet/%s/charge", userID), req, nil)
}

// Hold escrows funds from the payer into the holder's frozen balance
func (g *WalletGW) Hold(ctx context.Context, req models.HoldRequest) error {
	return g.client.PostJSON(ctx, "/internal/wallet/hold", req, nil)
}

// HoldReturn reverses a hold
func (g *WalletGW) HoldReturn(ctx context.Context, req models.HoldRequest) error {
	return g.client.PostJSON(ctx, "/internal/wallet/hold/return", req, nil)
}
