package intentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

const (
	intentColumns = `id, user_id, rail, pack, amount_expected, external_reference, status, needs_manual_verification,
		verification_requested_at, verified_by, bonus_currency_granted, external_txn_id, checkout_url, paid_at, created_at`

	referenceConstraint = "payment_intents_external_reference_key"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	query := `
		INSERT INTO payment_intents (user_id, rail, pack, amount_expected, external_reference, status, checkout_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		intent.UserID,
		intent.Rail,
		intent.Pack,
		intent.AmountExpected,
		intent.ExternalReference,
		intent.Status,
		intent.CheckoutURL,
		intent.CreatedAt,
	).Scan(&intent.ID)
	if err != nil {
		if pg.IsUniqueViolation(err, referenceConstraint) {
			return nil, domain.ErrDuplicateReference
		}
		zap.L().Error("can't save payment intent", zap.Error(err))
		return nil, err
	}
	return intent, nil
}

func (r *Repository) GetByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error) {
	return r.findOne(ctx, "SELECT "+intentColumns+" FROM payment_intents WHERE id = $1", intentID)
}

func (r *Repository) GetByReference(ctx context.Context, ref string) (*domain.PaymentIntent, error) {
	return r.findOne(ctx, "SELECT "+intentColumns+" FROM payment_intents WHERE external_reference = $1", ref)
}

func (r *Repository) LockByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error) {
	return r.findOne(ctx, "SELECT "+intentColumns+" FROM payment_intents WHERE id = $1 FOR UPDATE", intentID)
}

func (r *Repository) FindPending(ctx context.Context, userID int, rail domain.Rail, pack domain.Pack) (*domain.PaymentIntent, error) {
	return r.findOne(ctx, "SELECT "+intentColumns+" FROM payment_intents WHERE user_id = $1 AND rail = $2 AND pack = $3 AND status = 'pending'",
		userID, rail, pack)
}

func (r *Repository) GetLatestByUserID(ctx context.Context, userID int) (*domain.PaymentIntent, error) {
	return r.findOne(ctx, "SELECT "+intentColumns+" FROM payment_intents WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1", userID)
}

// ListPendingByRail returns pending intents of the rail created before the given time.
func (r *Repository) ListPendingByRail(ctx context.Context, rail domain.Rail, createdBefore time.Time) ([]domain.PaymentIntent, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+intentColumns+" FROM payment_intents WHERE rail = $1 AND status = 'pending' AND created_at < $2 ORDER BY id",
		rail, createdBefore)
	if err != nil {
		zap.L().Error("can't get pending intents", zap.Error(err))
		return nil, err
	}

	intents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentIntent, error) {
		var intent domain.PaymentIntent
		err := scanIntent(row, &intent)
		return intent, err
	})
	if err != nil {
		zap.L().Error("can't scan pending intents", zap.Error(err))
		return nil, err
	}
	return intents, nil
}

func (r *Repository) Update(ctx context.Context, intent *domain.PaymentIntent) error {
	query := `
		UPDATE payment_intents
		SET status = $1, needs_manual_verification = $2, verification_requested_at = $3, verified_by = $4,
			bonus_currency_granted = $5, external_txn_id = $6, paid_at = $7
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		intent.Status,
		intent.NeedsManualVerification,
		intent.VerificationRequestedAt,
		intent.VerifiedBy,
		intent.BonusCurrencyGranted,
		intent.ExternalTxnID,
		intent.PaidAt,
		intent.ID,
	)
	if err != nil {
		zap.L().Error("can't update payment intent", zap.Int("intentID", intent.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.PaymentIntent, error) {
	var intent domain.PaymentIntent
	err := scanIntent(r.db.QueryRow(ctx, query, args...), &intent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment intent", zap.Error(err))
		return nil, err
	}
	return &intent, nil
}

func scanIntent(row pgx.Row, intent *domain.PaymentIntent) error {
	return row.Scan(
		&intent.ID,
		&intent.UserID,
		&intent.Rail,
		&intent.Pack,
		&intent.AmountExpected,
		&intent.ExternalReference,
		&intent.Status,
		&intent.NeedsManualVerification,
		&intent.VerificationRequestedAt,
		&intent.VerifiedBy,
		&intent.BonusCurrencyGranted,
		&intent.ExternalTxnID,
		&intent.CheckoutURL,
		&intent.PaidAt,
		&intent.CreatedAt,
	)
}
