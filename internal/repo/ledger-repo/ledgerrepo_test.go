package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func intPtr(v int) *int { return &v }

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO ledger_entries")

	tests := []struct {
		name      string
		entry     *domain.LedgerEntry
		mockSetup func(e *domain.LedgerEntry)
		expectErr bool
		expectID  int
	}{
		{
			name: "Debit appended",
			entry: &domain.LedgerEntry{
				Type: domain.EntryDebit, Amount: 40, BalanceBefore: 100, BalanceAfter: 60, Status: domain.EntryCompleted,
				FromUserID: intPtr(1), ToUserID: intPtr(2), Description: "rent", CreatedAt: createdAt,
			},
			mockSetup: func(e *domain.LedgerEntry) {
				mock.ExpectQuery(query).
					WithArgs(e.Type, e.Amount, e.BalanceBefore, e.BalanceAfter, e.Status, e.FromUserID, e.ToUserID, e.ListingID, e.Description, e.CreatedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
			expectID: 11,
		},
		{
			name: "Database error",
			entry: &domain.LedgerEntry{
				Type: domain.EntryCredit, Amount: 5000, Status: domain.EntryCompleted, ToUserID: intPtr(3), Description: "Bonus", CreatedAt: createdAt,
			},
			mockSetup: func(e *domain.LedgerEntry) {
				mock.ExpectQuery(query).
					WithArgs(e.Type, e.Amount, e.BalanceBefore, e.BalanceAfter, e.Status, e.FromUserID, e.ToUserID, e.ListingID, e.Description, e.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.entry)
			result, err := repo.Append(context.Background(), tt.entry)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectID, result.ID)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "type", "amount", "balance_before", "balance_after", "status", "from_user_id", "to_user_id", "listing_id", "description", "created_at"}

	rows := pgxmock.NewRows(columns).
		AddRow(1, domain.EntryCredit, int64(5000), int64(0), int64(5000), domain.EntryCompleted, (*int)(nil), intPtr(1), (*int)(nil), "Bonus Pack Membre", createdAt).
		AddRow(2, domain.EntryDebit, int64(40), int64(5000), int64(4960), domain.EntryCompleted, intPtr(1), intPtr(2), (*int)(nil), "rent", createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_entries")).WithArgs(1).WillReturnRows(rows)

	entries, err := repo.ListByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, domain.EntryCredit, entries[0].Type)
	assert.Nil(t, entries[0].FromUserID)
	assert.Equal(t, 2, *entries[1].ToUserID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_entries")).WithArgs(9).WillReturnError(errors.New("database error"))
	_, err = repo.ListByUserID(context.Background(), 9)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
