package ledgerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries
			(type, amount, balance_before, balance_after, status, from_user_id, to_user_id, listing_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		entry.Type,
		entry.Amount,
		entry.BalanceBefore,
		entry.BalanceAfter,
		entry.Status,
		entry.FromUserID,
		entry.ToUserID,
		entry.ListingID,
		entry.Description,
		entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("failed to append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// ListByUserID returns every entry referencing the user, oldest first.
func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, type, amount, balance_before, balance_after, status, from_user_id, to_user_id, listing_id, description, created_at
		FROM ledger_entries
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get ledger entries", zap.Error(err))
		return nil, err
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		var e domain.LedgerEntry
		err := row.Scan(&e.ID, &e.Type, &e.Amount, &e.BalanceBefore, &e.BalanceAfter, &e.Status,
			&e.FromUserID, &e.ToUserID, &e.ListingID, &e.Description, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		zap.L().Error("failed to scan ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
