package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	nrpkg "github.com/cupoapp/cupo/internal/pkg/newrelic"
	"github.com/cupoapp/cupo/internal/utils"
	"github.com/cupoapp/cupo/services/wallet"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet HTTP handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// GetWallet returns the authenticated user's wallet
func (h *WalletHandler) GetWallet(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.GetWallet")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	w, err := h.walletUC.GetWallet(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved", w)
}

// GetBalance returns the authenticated user's balances
func (h *WalletHandler) GetBalance(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.GetBalance")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	w, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", map[string]interface{}{
		"balance":        w.Balance,
		"frozen_balance": w.FrozenBalance,
	})
}

// GetTransactions returns the authenticated user's ledger entries
func (h *WalletHandler) GetTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.GetTransactions")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	transactions, err := h.walletUC.GetTransactions(c.Request().Context(), userID, limit, offset)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", transactions)
}

// Deposit credits the authenticated user's wallet
func (h *WalletHandler) Deposit(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.Deposit")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	w, err := h.walletUC.Deposit(c.Request().Context(), userID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deposit completed", w)
}

// Freeze handles internal freeze requests for a user's wallet
func (h *WalletHandler) Freeze(c echo.Context) error {
	return h.internalOp(c, "Wallet.Freeze", h.walletUC.Freeze)
}

// Release handles internal release requests for a user's wallet
func (h *WalletHandler) Release(c echo.Context) error {
	return h.internalOp(c, "Wallet.Release", h.walletUC.Release)
}

// Charge handles internal charge requests against a user's frozen balance
func (h *WalletHandler) Charge(c echo.Context) error {
	return h.internalOp(c, "Wallet.Charge", h.walletUC.Charge)
}

// Hold handles internal escrow requests between two wallets
func (h *WalletHandler) Hold(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.Hold")

	var req models.HoldRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.walletUC.Hold(c.Request().Context(), req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hold completed", nil)
}

// HoldReturn handles internal escrow reversal requests
func (h *WalletHandler) HoldReturn(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.HoldReturn")

	var req models.HoldRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.walletUC.HoldReturn(c.Request().Context(), req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hold returned", nil)
}

func (h *WalletHandler) internalOp(
	c echo.Context,
	txnName string,
	op func(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) (*models.Wallet, error),
) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.WalletOpRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	w, err := op(c.Request().Context(), userID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Operation completed", w)
}

func (h *WalletHandler) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, wallet.ErrInvalidAmount):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, wallet.ErrWalletNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return utils.PaymentRequiredResponse(c, err.Error())
	case errors.Is(err, wallet.ErrInsufficientFrozen):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, wallet.ErrOperationInProgress):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("Wallet request failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
