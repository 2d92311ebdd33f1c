package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cupoapp/cupo/internal/pkg/constants"
	"github.com/cupoapp/cupo/internal/pkg/database"
	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/wallet"
)

const opLockTTL = 10 * time.Second

// walletUC implements the wallet.WalletUC interface
type walletUC struct {
	cfg        *models.Config
	walletRepo wallet.WalletRepo
	walletGW   wallet.WalletGW
	cache      *database.RedisClient
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(
	cfg *models.Config,
	walletRepo wallet.WalletRepo,
	walletGW wallet.WalletGW,
	cache *database.RedisClient,
) wallet.WalletUC {
	return &walletUC{
		cfg:        cfg,
		walletRepo: walletRepo,
		walletGW:   walletGW,
		cache:      cache,
	}
}

// GetWallet returns the user's wallet, creating it on first access
func (uc *walletUC) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return uc.walletRepo.GetOrCreateWallet(ctx, userID)
}

// GetBalance returns the user's current balances
func (uc *walletUC) GetBalance(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return uc.walletRepo.GetWalletByUserID(ctx, userID)
}

// GetTransactions returns the user's ledger entries, newest first
func (uc *walletUC) GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransaction, error) {
	w, err := uc.walletRepo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.walletRepo.GetTransactions(ctx, w.ID, limit, offset)
}

// Deposit credits the user's available balance
func (uc *walletUC) Deposit(ctx context.Context, userID uuid.UUID, req models.DepositRequest) (*models.Wallet, error) {
	if req.Amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	if _, err := uc.walletRepo.GetOrCreateWallet(ctx, userID); err != nil {
		return nil, err
	}

	reference := fmt.Sprintf("deposit:%s", uuid.New())
	w, err := uc.walletRepo.Deposit(ctx, userID, req.Amount, reference, req.Detail)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Wallet deposit completed",
		logger.String("user_id", userID.String()),
		logger.Int64("amount", req.Amount),
		logger.Int64("balance", w.Balance))

	return w, nil
}

// Freeze moves funds from available into frozen balance. Submissions with
// the same reference are single-flighted through a short Redis lock.
func (uc *walletUC) Freeze(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) (*models.Wallet, error) {
	if req.Amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	unlock, err := uc.acquireOpLock(ctx, userID, req.Reference)
	if err != nil {
		return nil, err
	}
	defer unlock()

	w, err := uc.walletRepo.Freeze(ctx, userID, req.Amount, req.Reference, req.Detail)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, w, models.TransactionTypeFreeze, req.Amount, req.Reference)
	return w, nil
}

// Release moves funds from frozen back into available balance
func (uc *walletUC) Release(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) (*models.Wallet, error) {
	if req.Amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	unlock, err := uc.acquireOpLock(ctx, userID, req.Reference)
	if err != nil {
		return nil, err
	}
	defer unlock()

	w, err := uc.walletRepo.Release(ctx, userID, req.Amount, req.Reference, req.Detail)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, w, models.TransactionTypeRelease, req.Amount, req.Reference)
	return w, nil
}

// Charge takes funds out of the frozen balance permanently
func (uc *walletUC) Charge(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) (*models.Wallet, error) {
	if req.Amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	unlock, err := uc.acquireOpLock(ctx, userID, req.Reference)
	if err != nil {
		return nil, err
	}
	defer unlock()

	w, err := uc.walletRepo.ChargeFromFrozen(ctx, userID, req.Amount, req.Reference, req.Detail)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, w, models.TransactionTypeCharge, req.Amount, req.Reference)
	return w, nil
}

// Hold moves funds from the payer's balance into the holder's frozen balance
func (uc *walletUC) Hold(ctx context.Context, req models.HoldRequest) error {
	if req.Amount <= 0 {
		return wallet.ErrInvalidAmount
	}
	if req.PayerUserID == req.HolderUserID {
		return fmt.Errorf("payer and holder must differ")
	}

	unlock, err := uc.acquireOpLock(ctx, req.PayerUserID, req.Reference)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := uc.walletRepo.GetOrCreateWallet(ctx, req.HolderUserID); err != nil {
		return err
	}

	return uc.walletRepo.Hold(ctx, req.PayerUserID, req.HolderUserID, req.Amount, req.Reference)
}

// HoldReturn reverses a hold, returning escrowed funds to the payer
func (uc *walletUC) HoldReturn(ctx context.Context, req models.HoldRequest) error {
	if req.Amount <= 0 {
		return wallet.ErrInvalidAmount
	}
	if req.PayerUserID == req.HolderUserID {
		return fmt.Errorf("payer and holder must differ")
	}

	unlock, err := uc.acquireOpLock(ctx, req.PayerUserID, req.Reference)
	if err != nil {
		return err
	}
	defer unlock()

	return uc.walletRepo.HoldReturn(ctx, req.PayerUserID, req.HolderUserID, req.Amount, req.Reference)
}

// acquireOpLock guards against duplicate submissions of the same wallet
// operation. The returned func releases the lock; with no cache configured
// it degrades to a no-op and the row lock alone serializes the mutation.
func (uc *walletUC) acquireOpLock(ctx context.Context, userID uuid.UUID, reference string) (func(), error) {
	if uc.cache == nil || reference == "" {
		return func() {}, nil
	}

	key := fmt.Sprintf(constants.KeyWalletOpLock, userID, reference)
	acquired, err := uc.cache.SetNX(ctx, key, time.Now().UnixNano(), opLockTTL)
	if err != nil {
		logger.WarnCtx(ctx, "Wallet op lock unavailable, proceeding without it", logger.Err(err))
		return func() {}, nil
	}
	if !acquired {
		return nil, wallet.ErrOperationInProgress
	}

	return func() {
		if err := uc.cache.Delete(ctx, key); err != nil {
			logger.WarnCtx(ctx, "Failed to release wallet op lock", logger.Err(err))
		}
	}, nil
}

func (uc *walletUC) publishEvent(ctx context.Context, w *models.Wallet, txType models.TransactionType, amount int64, reference string) {
	if uc.walletGW == nil {
		return
	}

	event := &models.WalletEvent{
		WalletID:  w.ID,
		UserID:    w.UserID,
		Type:      txType,
		Amount:    amount,
		Reference: reference,
		Timestamp: time.Now(),
	}

	var err error
	switch txType {
	case models.TransactionTypeFreeze:
		err = uc.walletGW.PublishWalletFrozen(ctx, event)
	case models.TransactionTypeRelease:
		err = uc.walletGW.PublishWalletReleased(ctx, event)
	case models.TransactionTypeCharge:
		err = uc.walletGW.PublishWalletCharged(ctx, event)
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish wallet event",
			logger.String("type", string(txType)),
			logger.String("reference", reference),
			logger.Err(err))
	}
}
