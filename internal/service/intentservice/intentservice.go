package intentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
	"github.com/GlebRadaev/pupuledger/internal/service/entitlementservice"
	"github.com/GlebRadaev/pupuledger/pkg/clients"
	"github.com/GlebRadaev/pupuledger/pkg/reference"
)

const (
	currency = "xpf"

	maxReferenceAttempts = 5
)

type IntentRepo interface {
	Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error)
	GetByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error)
	FindPending(ctx context.Context, userID int, rail domain.Rail, pack domain.Pack) (*domain.PaymentIntent, error)
	GetLatestByUserID(ctx context.Context, userID int) (*domain.PaymentIntent, error)
	LockByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error)
	Update(ctx context.Context, intent *domain.PaymentIntent) error
}

type AccountRepo interface {
	LockByID(ctx context.Context, userID int) (*domain.Account, error)
}

type Entitlements interface {
	GrantPackEntitlement(ctx context.Context, userID int, pack domain.Pack, now time.Time) (*entitlementservice.Grant, error)
}

type CardSessions interface {
	CreateSession(ctx context.Context, req clients.CreateSessionRequest) (*clients.CardSession, error)
}

type Referrals interface {
	OnUserBecameMember(ctx context.Context, referredUserID int) (int, error)
}

type Notifier interface {
	VerificationRequested(ctx context.Context, intent domain.PaymentIntent)
}

type Service struct {
	intents      IntentRepo
	accounts     AccountRepo
	entitlements Entitlements
	cards        CardSessions
	referrals    Referrals
	notifier     Notifier
	txManager    pg.TXManager
	now          func() time.Time
}

func New(intents IntentRepo, accounts AccountRepo, entitlements Entitlements, cards CardSessions, referrals Referrals, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		intents:      intents,
		accounts:     accounts,
		entitlements: entitlements,
		cards:        cards,
		referrals:    referrals,
		notifier:     notifier,
		txManager:    txManager,
		now:          time.Now,
	}
}

// CreateOrReuseIntent returns the pending intent of the user for this rail
// and pack, or opens a new one with a fresh external reference.
func (s *Service) CreateOrReuseIntent(ctx context.Context, userID int, rail domain.Rail, pack domain.Pack) (*domain.PaymentIntent, error) {
	if !rail.Valid() {
		return nil, domain.ErrInvalidRail
	}
	terms, ok := pack.Terms()
	if !ok {
		return nil, domain.ErrInvalidPack
	}

	existing, err := s.intents.FindPending(ctx, userID, rail, pack)
	if err != nil {
		zap.L().Error("failed to find pending intent", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Debug("reusing pending intent", zap.Int("intentID", existing.ID))
		return existing, nil
	}

	draft := domain.PaymentIntent{
		UserID:         userID,
		Rail:           rail,
		Pack:           pack,
		AmountExpected: terms.Price,
		Status:         domain.IntentPending,
	}

	if rail == domain.RailCard {
		// the processor is called before any lock is taken
		session, err := s.cards.CreateSession(ctx, clients.CreateSessionRequest{
			UserID:      userID,
			Pack:        string(pack),
			Amount:      terms.Price,
			Currency:    currency,
			Description: terms.Label,
		})
		if err != nil {
			zap.L().Error("failed to create card session", zap.Int("userID", userID), zap.Error(err))
			return nil, err
		}
		draft.ExternalReference = session.ID
		draft.CheckoutURL = session.URL
		return s.create(ctx, draft)
	}

	for attempt := 1; ; attempt++ {
		draft.ExternalReference = reference.New()
		intent, err := s.create(ctx, draft)
		if !errors.Is(err, domain.ErrDuplicateReference) || attempt == maxReferenceAttempts {
			return intent, err
		}
		zap.L().Warn("bank reference collision, generating another", zap.Int("attempt", attempt))
	}
}

func (s *Service) create(ctx context.Context, draft domain.PaymentIntent) (*domain.PaymentIntent, error) {
	var intent *domain.PaymentIntent
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.LockByID(ctx, draft.UserID)
		if err != nil {
			return fmt.Errorf("lock account %d: %w", draft.UserID, err)
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		// a concurrent request may have won while the lock was awaited
		existing, err := s.intents.FindPending(ctx, draft.UserID, draft.Rail, draft.Pack)
		if err != nil {
			return err
		}
		if existing != nil {
			intent = existing
			return nil
		}

		draft.CreatedAt = s.now()
		intent, err = s.intents.Create(ctx, &draft)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateReference) {
			zap.L().Error("failed to create intent", zap.Int("userID", draft.UserID), zap.Error(err))
		}
		return nil, err
	}

	if intent.ExternalReference != draft.ExternalReference {
		zap.L().Info("concurrent intent reused, new reference discarded",
			zap.Int("intentID", intent.ID),
			zap.String("discarded", draft.ExternalReference),
		)
	} else {
		zap.L().Info("payment intent created",
			zap.Int("intentID", intent.ID),
			zap.Int("userID", intent.UserID),
			zap.String("rail", string(intent.Rail)),
			zap.String("pack", string(intent.Pack)),
		)
	}
	return intent, nil
}

func (s *Service) GetLatestIntent(ctx context.Context, userID int) (*domain.PaymentIntent, error) {
	intent, err := s.intents.GetLatestByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get latest intent", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if intent == nil {
		return nil, domain.ErrIntentNotFound
	}
	return intent, nil
}

// CancelIntent abandons a pending intent of the user. Intents already
// waiting for staff verification cannot be cancelled.
func (s *Service) CancelIntent(ctx context.Context, userID, intentID int) (*domain.PaymentIntent, error) {
	if _, err := s.owned(ctx, userID, intentID); err != nil {
		return nil, err
	}

	var intent *domain.PaymentIntent
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.intents.LockByID(ctx, intentID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrIntentNotFound
		}
		if locked.Status != domain.IntentPending || locked.NeedsManualVerification {
			return domain.ErrIntentNotPending
		}
		locked.Status = domain.IntentCancelled
		if err := s.intents.Update(ctx, locked); err != nil {
			return err
		}
		intent = locked
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrIntentNotPending) {
			zap.L().Error("failed to cancel intent", zap.Int("intentID", intentID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("payment intent cancelled", zap.Int("intentID", intentID), zap.Int("userID", userID))
	return intent, nil
}

// RequestVerification flags a pending bank transfer for staff review and
// grants the pack entitlement right away. Paid status and the bonus wait
// for the staff confirmation. Since the role moves here, referrers are
// rewarded here too. Asking twice changes nothing.
func (s *Service) RequestVerification(ctx context.Context, userID, intentID int) (*domain.PaymentIntent, error) {
	intent, err := s.owned(ctx, userID, intentID)
	if err != nil {
		return nil, err
	}
	if intent.Rail != domain.RailBankTransfer || intent.Status != domain.IntentPending {
		return nil, domain.ErrVerificationNotApplicable
	}
	if intent.NeedsManualVerification {
		return intent, nil
	}

	var grant *entitlementservice.Grant
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		grant = nil
		locked, err := s.intents.LockByID(ctx, intentID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrIntentNotFound
		}
		intent = locked
		if locked.Status != domain.IntentPending {
			return domain.ErrVerificationNotApplicable
		}
		if locked.NeedsManualVerification {
			return nil
		}

		now := s.now()
		locked.NeedsManualVerification = true
		locked.VerificationRequestedAt = &now
		if err := s.intents.Update(ctx, locked); err != nil {
			return err
		}
		grant, err = s.entitlements.GrantPackEntitlement(ctx, userID, locked.Pack, now)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrVerificationNotApplicable) {
			zap.L().Error("failed to request verification", zap.Int("intentID", intentID), zap.Error(err))
		}
		return nil, err
	}

	if grant == nil {
		return intent, nil
	}
	zap.L().Info("manual verification requested", zap.Int("intentID", intentID), zap.Int("userID", userID))
	s.notifier.VerificationRequested(ctx, *intent)

	if grant.Upgraded() {
		rewarded, err := s.referrals.OnUserBecameMember(ctx, userID)
		if err != nil {
			zap.L().Error("referral reward failed", zap.Int("userID", userID), zap.Error(err))
		} else if rewarded > 0 {
			zap.L().Info("referrers rewarded", zap.Int("userID", userID), zap.Int("count", rewarded))
		}
	}
	return intent, nil
}

// owned loads the intent and hides intents of other users.
func (s *Service) owned(ctx context.Context, userID, intentID int) (*domain.PaymentIntent, error) {
	intent, err := s.intents.GetByID(ctx, intentID)
	if err != nil {
		zap.L().Error("failed to get intent", zap.Int("intentID", intentID), zap.Error(err))
		return nil, err
	}
	if intent == nil || intent.UserID != userID {
		return nil, domain.ErrIntentNotFound
	}
	return intent, nil
}
