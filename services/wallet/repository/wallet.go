package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/wallet"
)

// WalletRepo persists wallets and their append-only transaction ledger.
// Every mutation locks the wallet row, checks the invariant and writes the
// ledger entry in one database transaction.
type WalletRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(cfg *models.Config, db *sqlx.DB) *WalletRepo {
	return &WalletRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetOrCreateWallet returns the user's wallet, creating an empty one on
// first access.
func (r *WalletRepo) GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	insert := `
		INSERT INTO wallets (id, user_id, balance, frozen_balance, created_at, updated_at)
		VALUES ($1, $2, 0, 0, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, insert, uuid.New(), userID); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return r.GetWalletByUserID(ctx, userID)
}

// GetWalletByUserID returns the wallet for a user
func (r *WalletRepo) GetWalletByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT id, user_id, balance, frozen_balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var w models.Wallet
	err := r.db.GetContext(ctx, &w, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wallet.ErrWalletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}

	return &w, nil
}

// GetTransactions returns the wallet's ledger entries, newest first
func (r *WalletRepo) GetTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.WalletTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, wallet_id, transaction_type, amount, reference, detail, status, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	transactions := []models.WalletTransaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, walletID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return transactions, nil
}

// Deposit credits the available balance
func (r *WalletRepo) Deposit(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error) {
	var result *models.Wallet
	err := r.withRetry(ctx, func(tx *sqlx.Tx) error {
		w, err := lockWallet(ctx, tx, userID)
		if err != nil {
			return err
		}

		w.Balance += amount
		if err := updateBalances(ctx, tx, w); err != nil {
			return err
		}
		if err := insertLedger(ctx, tx, w.ID, models.TransactionTypeDeposit, amount, reference, detail); err != nil {
			return err
		}

		result = w
		return nil
	})
	return result, err
}

// Freeze moves funds from available to frozen balance
func (r *WalletRepo) Freeze(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error) {
	var result *models.Wallet
	err := r.withRetry(ctx, func(tx *sqlx.Tx) error {
		w, err := lockWallet(ctx, tx, userID)
		if err != nil {
			return err
		}

		if w.Balance < amount {
			return &wallet.InsufficientFundsError{Available: w.Balance, Required: amount}
		}

		w.Balance -= amount
		w.FrozenBalance += amount
		if err := updateBalances(ctx, tx, w); err != nil {
			return err
		}
		if err := insertLedger(ctx, tx, w.ID, models.TransactionTypeFreeze, amount, reference, detail); err != nil {
			return err
		}

		result = w
		return nil
	})
	return result, err
}

// Release moves funds from frozen back to available balance
func (r *WalletRepo) Release(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error) {
	var result *models.Wallet
	err := r.withRetry(ctx, func(tx *sqlx.Tx) error {
		w, err := lockWallet(ctx, tx, userID)
		if err != nil {
			return err
		}

		if w.FrozenBalance < amount {
			return &wallet.InsufficientFrozenError{Frozen: w.FrozenBalance, Required: amount}
		}

		w.FrozenBalance -= amount
		w.Balance += amount
		if err := updateBalances(ctx, tx, w); err != nil {
			return err
		}
		if err := insertLedger(ctx, tx, w.ID, models.TransactionTypeRelease, amount, reference, detail); err != nil {
			return err
		}

		result = w
		return nil
	})
	return result, err
}

// ChargeFromFrozen removes funds from the frozen balance permanently
func (r *WalletRepo) ChargeFromFrozen(ctx context.Context, userID uuid.UUID, amount int64, reference, detail string) (*models.Wallet, error) {
	var result *models.Wallet
	err := r.withRetry(ctx, func(tx *sqlx.Tx) error {
		w, err := lockWallet(ctx, tx, userID)
		if err != nil {
			return err
		}

		if w.FrozenBalance < amount {
			return &wallet.InsufficientFrozenError{Frozen: w.FrozenBalance, Required: amount}
		}

		w.FrozenBalance -= amount
		if err := updateBalances(ctx, tx, w); err != nil {
			return err
		}
		if err := insertLedger(ctx, tx, w.ID, models.TransactionTypeCharge, amount, reference, detail); err != nil {
			return err
		}

		result = w
		return nil
	})
	return result, err
}

// Hold moves funds from the payer's available balance into the holder's
// frozen balance. Both rows are locked in a deterministic order so two
// concurrent holds cannot deadlock.
func (r *WalletRepo) Hold(ctx context.Context, payerUserID, holderUserID uuid.UUID, amount int64, reference string) error {
	return r.withRetry(ctx, func(tx *sqlx.Tx) error {
		payer, holder, err := lockWalletPair(ctx, tx, payerUserID, holderUserID)
		if err != nil {
			return err
		}

		if payer.Balance < amount {
			return &wallet.InsufficientFundsError{Available: payer.Balance, Required: amount}
		}

		payer.Balance -= amount
		holder.FrozenBalance += amount

		if err := updateBalances(ctx, tx, payer); err != nil {
			return err
		}
		if err := updateBalances(ctx, tx, holder); err != nil {
			return err
		}
		if err := insertLedger(ctx, tx, payer.ID, models.TransactionTypeBookingPayment, amount, reference, "booking escrow payment"); err != nil {
			return err
		}
		return insertLedger(ctx, tx, holder.ID, models.TransactionTypeBookingHold, amount, reference, "booking escrow hold")
	})
}

// HoldReturn reverses a Hold: funds leave the holder's frozen balance and
// return to the payer's available balance.
func (r *WalletRepo) HoldReturn(ctx context.Context, payerUserID, holderUserID uuid.UUID, amount int64, reference string) error {
	return r.withRetry(ctx, func(tx *sqlx.Tx) error {
		payer, holder, err := lockWalletPair(ctx, tx, payerUserID, holderUserID)
		if err != nil {
			return err
		}

		if holder.FrozenBalance < amount {
			return &wallet.InsufficientFrozenError{Frozen: holder.FrozenBalance, Required: amount}
		}

		holder.FrozenBalance -= amount
		payer.Balance += amount

		if err := updateBalances(ctx, tx, holder); err != nil {
			return err
		}
		if err := updateBalances(ctx, tx, payer); err != nil {
			return err
		}
		if err := insertLedger(ctx, tx, holder.ID, models.TransactionTypeBookingRefund, amount, reference, "booking escrow return"); err != nil {
			return err
		}
		return insertLedger(ctx, tx, payer.ID, models.TransactionTypeBookingRefund, amount, reference, "booking escrow refund")
	})
}

// withRetry runs fn in a transaction, retrying once when Postgres reports a
// serialization failure or deadlock.
func (r *WalletRepo) withRetry(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	err := r.withTx(ctx, fn)
	if err != nil && isSerializationFailure(err) {
		logger.WarnCtx(ctx, "Retrying wallet transaction after conflict", logger.Err(err))
		err = r.withTx(ctx, fn)
	}
	return err
}

func (r *WalletRepo) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorCtx(ctx, "Failed to rollback wallet transaction", logger.Err(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

func lockWallet(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT id, user_id, balance, frozen_balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`

	var w models.Wallet
	err := tx.GetContext(ctx, &w, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wallet.ErrWalletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return &w, nil
}

// lockWalletPair locks both wallets ordered by user ID so concurrent
// two-wallet operations always acquire locks in the same order.
func lockWalletPair(ctx context.Context, tx *sqlx.Tx, payerUserID, holderUserID uuid.UUID) (payer, holder *models.Wallet, err error) {
	first, second := payerUserID, holderUserID
	if second.String() < first.String() {
		first, second = second, first
	}

	firstWallet, err := lockWallet(ctx, tx, first)
	if err != nil {
		return nil, nil, err
	}
	secondWallet, err := lockWallet(ctx, tx, second)
	if err != nil {
		return nil, nil, err
	}

	if firstWallet.UserID == payerUserID {
		return firstWallet, secondWallet, nil
	}
	return secondWallet, firstWallet, nil
}

func updateBalances(ctx context.Context, tx *sqlx.Tx, w *models.Wallet) error {
	query := `
		UPDATE wallets
		SET balance = $1, frozen_balance = $2, updated_at = NOW()
		WHERE id = $3
	`
	if _, err := tx.ExecContext(ctx, query, w.Balance, w.FrozenBalance, w.ID); err != nil {
		return fmt.Errorf("failed to update wallet balances: %w", err)
	}
	return nil
}

func insertLedger(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID, txType models.TransactionType, amount int64, reference, detail string) error {
	query := `
		INSERT INTO wallet_transactions (id, wallet_id, transaction_type, amount, reference, detail, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := tx.ExecContext(ctx, query,
		uuid.New(), walletID, txType, amount, reference, detail, models.TransactionStatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}
