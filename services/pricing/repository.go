package pricing

import (
	"context"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// AssumptionsRepo defines the interface for pricing assumptions data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cupoapp/cupo/services/pricing AssumptionsRepo
type AssumptionsRepo interface {
	GetAssumptions(ctx context.Context) (*models.Assumptions, error)
	UpdateAssumptions(ctx context.Context, assumptions *models.Assumptions) (*models.Assumptions, error)
}
