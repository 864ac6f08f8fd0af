package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

type AccountRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.Account, error)
	LockByID(ctx context.Context, userID int) (*domain.Account, error)
	UpdateBalance(ctx context.Context, userID int, balance int64) error
}

type EntryRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type Service struct {
	accounts AccountRepo
	entries  EntryRepo
	now      func() time.Time
}

func New(accounts AccountRepo, entries EntryRepo) *Service {
	return &Service{
		accounts: accounts,
		entries:  entries,
		now:      time.Now,
	}
}

// AuditReport compares the stored balance with the one rebuilt from the log.
type AuditReport struct {
	UserID   int
	Stored   int64
	Replayed int64
	Entries  int
}

func (r AuditReport) Consistent() bool {
	return r.Stored == r.Replayed
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	if account == nil {
		return 0, domain.ErrAccountNotFound
	}
	return account.Balance, nil
}

// ApplyDelta moves the balance of userID by delta and returns the balance
// before and after. It must run inside TXManager.Begin; the caller is
// responsible for appending the matching entry in the same unit.
func (s *Service) ApplyDelta(ctx context.Context, userID int, delta int64) (int64, int64, error) {
	if !pg.InUnit(ctx) {
		return 0, 0, domain.ErrNoActiveUnit
	}
	account, err := s.accounts.LockByID(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("lock account %d: %w", userID, err)
	}
	if account == nil {
		return 0, 0, domain.ErrAccountNotFound
	}

	before := account.Balance
	after := before + delta
	if after < 0 {
		return 0, 0, domain.ErrInsufficientBalance
	}
	if err := s.accounts.UpdateBalance(ctx, userID, after); err != nil {
		return 0, 0, fmt.Errorf("update balance of %d: %w", userID, err)
	}
	return before, after, nil
}

func (s *Service) AppendEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if entry.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if entry.Status == "" {
		entry.Status = domain.EntryCompleted
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	saved, err := s.entries.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("append %s entry: %w", entry.Type, err)
	}
	return saved, nil
}

// Credit adds amount to the user balance on behalf of the system and records it.
func (s *Service) Credit(ctx context.Context, userID int, amount int64, description string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	before, after, err := s.ApplyDelta(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	return s.AppendEntry(ctx, &domain.LedgerEntry{
		Type:          domain.EntryCredit,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		ToUserID:      &userID,
		Description:   description,
	})
}

// History returns the entries touching the user, newest first.
func (s *Service) History(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	entries, err := s.entries.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	history := make([]domain.LedgerEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Concerns(userID) {
			history = append(history, entries[i])
		}
	}
	return history, nil
}

// Replay rebuilds the balance of the user from its entries in creation order.
func (s *Service) Replay(ctx context.Context, userID int) (int64, int, error) {
	entries, err := s.entries.ListByUserID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	var balance int64
	var n int
	for _, e := range entries {
		if e.Status != domain.EntryCompleted || !e.Concerns(userID) {
			continue
		}
		balance += e.SignedAmountFor(userID)
		n++
	}
	return balance, n, nil
}

func (s *Service) Audit(ctx context.Context, userID int) (*AuditReport, error) {
	stored, err := s.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	replayed, n, err := s.Replay(ctx, userID)
	if err != nil {
		zap.L().Error("failed to replay ledger", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	report := &AuditReport{UserID: userID, Stored: stored, Replayed: replayed, Entries: n}
	if !report.Consistent() {
		zap.L().Warn("ledger replay does not match stored balance",
			zap.Int("userID", userID),
			zap.Int64("stored", stored),
			zap.Int64("replayed", replayed),
		)
	}
	return report, nil
}
