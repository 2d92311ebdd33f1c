package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	nrpkg "github.com/cupoapp/cupo/internal/pkg/newrelic"
	"github.com/cupoapp/cupo/internal/utils"
	"github.com/cupoapp/cupo/services/pricing"
)

// PricingHandler handles HTTP requests for pricing operations
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing HTTP handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{
		pricingUC: pricingUC,
	}
}

// GetAssumptions returns the current pricing assumptions
func (h *PricingHandler) GetAssumptions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.GetAssumptions")

	assumptions, err := h.pricingUC.GetAssumptions(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assumptions retrieved", assumptions)
}

// UpdateAssumptions replaces the pricing assumptions
func (h *PricingHandler) UpdateAssumptions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.UpdateAssumptions")

	var req models.Assumptions
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.pricingUC.UpdateAssumptions(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, pricing.ErrAssumptionsNotConfigured) {
			return h.errorResponse(c, err)
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assumptions updated", updated)
}

// CalculateFare returns the suggested per seat price for a route
func (h *PricingHandler) CalculateFare(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.CalculateFare")

	var req models.FareRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.pricingUC.CalculateFare(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDistance) {
			return utils.BadRequestResponse(c, err.Error())
		}
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare calculated", quote)
}

// QuoteGuarantee returns the freeze amount for publishing a trip
func (h *PricingHandler) QuoteGuarantee(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.QuoteGuarantee")

	var req models.GuaranteeRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.pricingUC.QuoteGuarantee(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidQuoteRequest) {
			return utils.BadRequestResponse(c, err.Error())
		}
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Guarantee quoted", quote)
}

// QuoteCommission returns the platform fee for a validated booking
func (h *PricingHandler) QuoteCommission(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.QuoteCommission")

	var req models.CommissionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.pricingUC.QuoteCommission(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidQuoteRequest) {
			return utils.BadRequestResponse(c, err.Error())
		}
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Commission quoted", quote)
}

func (h *PricingHandler) errorResponse(c echo.Context, err error) error {
	if errors.Is(err, pricing.ErrAssumptionsNotConfigured) {
		logger.Error("Pricing assumptions missing", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	logger.Error("Pricing request failed", logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
