package entitlementservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

type AccountRepo interface {
	LockByID(ctx context.Context, userID int) (*domain.Account, error)
	UpdateEntitlement(ctx context.Context, userID int, role domain.Role, paidAccessExpiresAt *time.Time) error
}

type Service struct {
	accounts  AccountRepo
	txManager pg.TXManager
}

func New(accounts AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		accounts:  accounts,
		txManager: txManager,
	}
}

// Grant is the outcome of one entitlement grant.
type Grant struct {
	PreviousRole domain.Role
	Account      domain.Account
}

// Upgraded reports whether the grant moved the user out of the free tier.
func (g Grant) Upgraded() bool {
	return g.PreviousRole == domain.RoleUser && g.Account.Role.IsPaid()
}

// Apply computes the account after a paid pack: the role only ever goes up
// and staff roles are left alone, the access runs one more period from the
// later of now and the current expiry.
func Apply(account domain.Account, pack domain.Pack, now time.Time) (domain.Account, error) {
	terms, ok := pack.Terms()
	if !ok {
		return account, domain.ErrInvalidPack
	}

	if !account.Role.IsStaff() && terms.TargetRole.Rank() > account.Role.Rank() {
		account.Role = terms.TargetRole
	}

	start := now
	if account.PaidAccessExpiresAt != nil && account.PaidAccessExpiresAt.After(now) {
		start = *account.PaidAccessExpiresAt
	}
	expiresAt := start.AddDate(1, 0, 0)
	account.PaidAccessExpiresAt = &expiresAt

	return account, nil
}

// GrantPackEntitlement locks the user row and stores the result of Apply.
// It does not deduplicate: callers guard it with their own single-fire check.
func (s *Service) GrantPackEntitlement(ctx context.Context, userID int, pack domain.Pack, now time.Time) (*Grant, error) {
	if !pack.Valid() {
		return nil, domain.ErrInvalidPack
	}

	var grant Grant
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.LockByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock account %d: %w", userID, err)
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		updated, err := Apply(*account, pack, now)
		if err != nil {
			return err
		}
		if err := s.accounts.UpdateEntitlement(ctx, userID, updated.Role, updated.PaidAccessExpiresAt); err != nil {
			return fmt.Errorf("update entitlement of %d: %w", userID, err)
		}
		grant = Grant{PreviousRole: account.Role, Account: updated}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to grant entitlement", zap.Int("userID", userID), zap.String("pack", string(pack)), zap.Error(err))
		return nil, err
	}

	zap.L().Info("entitlement granted",
		zap.Int("userID", userID),
		zap.String("pack", string(pack)),
		zap.String("role", string(grant.Account.Role)),
		zap.Timep("paidAccessExpiresAt", grant.Account.PaidAccessExpiresAt),
	)
	return &grant, nil
}
