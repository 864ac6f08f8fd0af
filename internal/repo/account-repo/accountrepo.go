package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

const accountColumns = "id, email, balance, role, paid_access_expires_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) GetByID(ctx context.Context, userID int) (*domain.Account, error) {
	return repo.findOne(ctx, "SELECT "+accountColumns+" FROM users WHERE id = $1", userID)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return repo.findOne(ctx, "SELECT "+accountColumns+" FROM users WHERE lower(email) = lower($1)", email)
}

// LockByID reads the account and holds its row lock until the surrounding
// transaction ends.
func (repo *Repository) LockByID(ctx context.Context, userID int) (*domain.Account, error) {
	return repo.findOne(ctx, "SELECT "+accountColumns+" FROM users WHERE id = $1 FOR UPDATE", userID)
}

func (repo *Repository) UpdateBalance(ctx context.Context, userID int, balance int64) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET balance = $1 WHERE id = $2", balance, userID)
	if err != nil {
		zap.L().Error("can't update balance", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) UpdateEntitlement(ctx context.Context, userID int, role domain.Role, paidAccessExpiresAt *time.Time) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET role = $1, paid_access_expires_at = $2 WHERE id = $3", role, paidAccessExpiresAt, userID)
	if err != nil {
		zap.L().Error("can't update entitlement", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	err := repo.db.QueryRow(ctx, query, arg).Scan(
		&account.UserID,
		&account.Email,
		&account.Balance,
		&account.Role,
		&account.PaidAccessExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}
