package referralservice

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

const rewardWorkers = 4

type LinkRepo interface {
	Create(ctx context.Context, link *domain.ReferralLink) (*domain.ReferralLink, error)
	ListByReferred(ctx context.Context, referredID int, status domain.ReferralStatus) ([]domain.ReferralLink, error)
	LockByID(ctx context.Context, linkID int) (*domain.ReferralLink, error)
	UpdateStatus(ctx context.Context, linkID int, status domain.ReferralStatus, rewardedAt *time.Time) error
}

type AccountRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.Account, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int64, description string) (*domain.LedgerEntry, error)
}

type Service struct {
	links     LinkRepo
	accounts  AccountRepo
	ledger    Ledger
	txManager pg.TXManager
	reward    int64
	now       func() time.Time
}

func New(links LinkRepo, accounts AccountRepo, ledger Ledger, txManager pg.TXManager, reward int64) *Service {
	return &Service{
		links:     links,
		accounts:  accounts,
		ledger:    ledger,
		txManager: txManager,
		reward:    reward,
		now:       time.Now,
	}
}

func (s *Service) RegisterReferral(ctx context.Context, referrerID, referredID int) (*domain.ReferralLink, error) {
	if referrerID == referredID {
		return nil, domain.ErrSelfReferral
	}
	for _, id := range []int{referrerID, referredID} {
		account, err := s.accounts.GetByID(ctx, id)
		if err != nil {
			zap.L().Error("failed to get account", zap.Int("userID", id), zap.Error(err))
			return nil, err
		}
		if account == nil {
			return nil, domain.ErrAccountNotFound
		}
	}

	link, err := s.links.Create(ctx, &domain.ReferralLink{
		ReferrerID: referrerID,
		ReferredID: referredID,
		Status:     domain.ReferralRegistered,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("referral registered", zap.Int("referrerID", referrerID), zap.Int("referredID", referredID))
	return link, nil
}

// OnUserBecameMember rewards every referrer of the user whose link is still
// registered. Each link is settled in its own unit; it returns how many
// were rewarded by this call.
func (s *Service) OnUserBecameMember(ctx context.Context, referredUserID int) (int, error) {
	links, err := s.links.ListByReferred(ctx, referredUserID, domain.ReferralRegistered)
	if err != nil {
		zap.L().Error("failed to list referral links", zap.Int("referredID", referredUserID), zap.Error(err))
		return 0, err
	}
	if len(links) == 0 {
		return 0, nil
	}

	var rewarded atomic.Int32
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(rewardWorkers)
	if pg.InUnit(ctx) {
		// one transaction cannot be shared between goroutines
		g.SetLimit(1)
	}
	for _, link := range links {
		g.Go(func() error {
			ok, err := s.rewardLink(gCtx, link.ID)
			if err != nil {
				return fmt.Errorf("reward referral link %d: %w", link.ID, err)
			}
			if ok {
				rewarded.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		zap.L().Error("referral rewards incomplete", zap.Int("referredID", referredUserID), zap.Error(err))
	}
	return int(rewarded.Load()), err
}

func (s *Service) rewardLink(ctx context.Context, linkID int) (bool, error) {
	var rewarded *domain.ReferralLink
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rewarded = nil
		link, err := s.links.LockByID(ctx, linkID)
		if err != nil {
			return err
		}
		if link == nil || link.Status != domain.ReferralRegistered {
			return nil
		}

		if err := s.links.UpdateStatus(ctx, linkID, domain.ReferralBecameMember, nil); err != nil {
			return err
		}
		now := s.now()
		if err := s.links.UpdateStatus(ctx, linkID, domain.ReferralRewarded, &now); err != nil {
			return err
		}
		if s.reward > 0 {
			if _, err := s.ledger.Credit(ctx, link.ReferrerID, s.reward, "Referral reward"); err != nil {
				return err
			}
		}
		rewarded = link
		return nil
	})
	if err != nil || rewarded == nil {
		return false, err
	}
	zap.L().Info("referrer rewarded",
		zap.Int("referrerID", rewarded.ReferrerID),
		zap.Int("referredID", rewarded.ReferredID),
		zap.Int64("amount", s.reward),
	)
	return true, nil
}
