package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var accountRow = []string{"id", "email", "balance", "role", "paid_access_expires_at"}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT id, email, balance, role, paid_access_expires_at FROM users WHERE id = $1")

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:   "Account found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(accountRow).
					AddRow(1, "x@pupu.pf", int64(10000), domain.RoleMember, &expires)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Account{UserID: 1, Email: "x@pupu.pf", Balance: 10000, Role: domain.RoleMember, PaidAccessExpiresAt: &expires},
		},
		{
			name:   "Account not found",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 3,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(accountRow).AddRow(4, "y@pupu.pf", int64(50), domain.RoleUser, (*time.Time)(nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, balance, role, paid_access_expires_at FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(4).
		WillReturnRows(rows)

	account, err := repo.LockByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(50), account.Balance)
	assert.Nil(t, account.PaidAccessExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(accountRow).AddRow(5, "Y@pupu.pf", int64(0), domain.RoleUser, (*time.Time)(nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, balance, role, paid_access_expires_at FROM users WHERE lower(email) = lower($1)")).
		WithArgs("y@pupu.pf").
		WillReturnRows(rows)

	account, err := repo.FindByEmail(context.Background(), "y@pupu.pf")
	assert.NoError(t, err)
	assert.Equal(t, 5, account.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE users SET balance = $1 WHERE id = $2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Updated",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(60), 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Check constraint violated",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(60), 1).WillReturnError(errors.New("violates check constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateBalance(context.Background(), 1, 60)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateEntitlement(t *testing.T) {
	repo, mock := NewMock(t)
	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1, paid_access_expires_at = $2 WHERE id = $3")).
		WithArgs(domain.RolePremium, &expires, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateEntitlement(context.Background(), 7, domain.RolePremium, &expires)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
