package reconcileservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
	"github.com/GlebRadaev/pupuledger/internal/service/entitlementservice"
	"github.com/GlebRadaev/pupuledger/pkg/reference"
)

type IntentRepo interface {
	GetByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error)
	GetByReference(ctx context.Context, ref string) (*domain.PaymentIntent, error)
	LockByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error)
	Update(ctx context.Context, intent *domain.PaymentIntent) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int64, description string) (*domain.LedgerEntry, error)
}

type Entitlements interface {
	GrantPackEntitlement(ctx context.Context, userID int, pack domain.Pack, now time.Time) (*entitlementservice.Grant, error)
}

type Referrals interface {
	OnUserBecameMember(ctx context.Context, referredUserID int) (int, error)
}

type Notifier interface {
	PaymentConfirmed(ctx context.Context, intent domain.PaymentIntent)
}

type Service struct {
	intents      IntentRepo
	ledger       Ledger
	entitlements Entitlements
	referrals    Referrals
	notifier     Notifier
	txManager    pg.TXManager
	now          func() time.Time
}

func New(intents IntentRepo, ledger Ledger, entitlements Entitlements, referrals Referrals, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		intents:      intents,
		ledger:       ledger,
		entitlements: entitlements,
		referrals:    referrals,
		notifier:     notifier,
		txManager:    txManager,
		now:          time.Now,
	}
}

// settlement is what one settle call changed.
type settlement struct {
	intent           domain.PaymentIntent
	alreadyProcessed bool
	grant            *entitlementservice.Grant
	bonusCredited    bool
}

type settleMode int

const (
	// confirmed by the rail itself
	modeRail settleMode = iota
	// confirmed by a staff member after a verification request
	modeStaff
)

type settleParams struct {
	mode          settleMode
	externalTxnID string
	paidAt        *time.Time
	verifiedBy    *int
}

// ProcessConfirmation settles the intent an authenticated rail event refers
// to. Redelivered events resolve to AlreadyProcessed.
func (s *Service) ProcessConfirmation(ctx context.Context, c domain.Confirmation) (*domain.ConfirmationResult, error) {
	ref := c.Reference
	if normalized := reference.Normalize(ref); reference.Valid(normalized) {
		ref = normalized
	}

	intent, err := s.intents.GetByReference(ctx, ref)
	if err != nil {
		zap.L().Error("failed to get intent by reference", zap.String("reference", ref), zap.Error(err))
		return nil, err
	}
	if intent == nil {
		zap.L().Info("confirmation for unknown reference", zap.String("reference", ref))
		return nil, domain.ErrIntentNotFound
	}
	if intent.Status == domain.IntentPaid {
		zap.L().Info("duplicate confirmation", zap.Int("intentID", intent.ID))
		return &domain.ConfirmationResult{OK: true, AlreadyProcessed: true}, nil
	}
	if c.ReportedAmount != intent.AmountExpected {
		zap.L().Warn("payment amount mismatch",
			zap.Int("intentID", intent.ID),
			zap.String("reference", ref),
			zap.Int64("expected", intent.AmountExpected),
			zap.Int64("reported", c.ReportedAmount),
		)
		return nil, domain.ErrAmountMismatch
	}
	if intent.Status == domain.IntentCancelled {
		zap.L().Warn("payment received for a cancelled intent, settling it", zap.Int("intentID", intent.ID))
	}

	result, err := s.settle(ctx, intent.ID, settleParams{
		mode:          modeRail,
		externalTxnID: c.ExternalTxnID,
		paidAt:        c.PaidAt,
	})
	if err != nil {
		zap.L().Error("failed to settle intent", zap.Int("intentID", intent.ID), zap.Error(err))
		return nil, err
	}
	if !result.alreadyProcessed {
		s.afterPayment(ctx, result)
	}
	return &domain.ConfirmationResult{OK: true, AlreadyProcessed: result.alreadyProcessed}, nil
}

// ConfirmVerification is the staff side of a manual verification. Only
// intents flagged by RequestVerification qualify. When the rail confirmed
// the intent in the meantime it only makes sure the bonus was credited.
func (s *Service) ConfirmVerification(ctx context.Context, caller domain.Caller, paymentID int) (*domain.ConfirmationResult, error) {
	if !caller.Role.AtLeast(domain.RoleAdmin) {
		zap.L().Warn("verification confirmation refused", zap.Int("callerID", caller.UserID), zap.String("role", string(caller.Role)))
		return nil, domain.ErrUnauthorized
	}

	intent, err := s.intents.GetByID(ctx, paymentID)
	if err != nil {
		zap.L().Error("failed to get intent", zap.Int("intentID", paymentID), zap.Error(err))
		return nil, err
	}
	if intent == nil {
		return nil, domain.ErrIntentNotFound
	}
	if err := verifiable(intent); err != nil {
		return nil, err
	}

	adminID := caller.UserID
	result, err := s.settle(ctx, paymentID, settleParams{mode: modeStaff, verifiedBy: &adminID})
	if err != nil {
		if !errors.Is(err, domain.ErrVerificationNotApplicable) {
			zap.L().Error("failed to confirm verification", zap.Int("intentID", paymentID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("verification confirmed",
		zap.Int("intentID", paymentID),
		zap.Int("adminID", adminID),
		zap.Bool("alreadyProcessed", result.alreadyProcessed),
		zap.Bool("bonusCredited", result.bonusCredited),
	)
	if !result.alreadyProcessed {
		s.afterPayment(ctx, result)
	}
	return &domain.ConfirmationResult{OK: true, AlreadyProcessed: result.alreadyProcessed}, nil
}

// ExpireCardSession cancels the pending intent of a checkout session that
// ran out. It reports whether anything changed.
func (s *Service) ExpireCardSession(ctx context.Context, sessionID string) (bool, error) {
	intent, err := s.intents.GetByReference(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get intent by session", zap.String("sessionID", sessionID), zap.Error(err))
		return false, err
	}
	if intent == nil {
		return false, domain.ErrIntentNotFound
	}
	if intent.Rail != domain.RailCard || intent.Status != domain.IntentPending {
		return false, nil
	}

	var expired bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.intents.LockByID(ctx, intent.ID)
		if err != nil {
			return err
		}
		if locked == nil || locked.Status != domain.IntentPending {
			return nil
		}
		locked.Status = domain.IntentCancelled
		expired = true
		return s.intents.Update(ctx, locked)
	})
	if err != nil {
		zap.L().Error("failed to expire card session", zap.String("sessionID", sessionID), zap.Error(err))
		return false, err
	}
	if expired {
		zap.L().Info("card session expired", zap.Int("intentID", intent.ID), zap.String("sessionID", sessionID))
	}
	return expired, nil
}

func verifiable(intent *domain.PaymentIntent) error {
	if !intent.NeedsManualVerification {
		return domain.ErrVerificationNotApplicable
	}
	if intent.Status != domain.IntentPaid && intent.Status != domain.IntentPending {
		return domain.ErrVerificationNotApplicable
	}
	return nil
}

// settle is the single paid transition every confirmation path goes
// through: intent locked and re-checked, flipped to paid, entitlement
// granted unless a verification request already did, bonus credited once.
func (s *Service) settle(ctx context.Context, intentID int, p settleParams) (*settlement, error) {
	var result settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		result = settlement{}
		intent, err := s.intents.LockByID(ctx, intentID)
		if err != nil {
			return fmt.Errorf("lock intent %d: %w", intentID, err)
		}
		if intent == nil {
			return domain.ErrIntentNotFound
		}

		if p.mode == modeStaff {
			if err := verifiable(intent); err != nil {
				return err
			}
		}

		if intent.Status == domain.IntentPaid {
			result.alreadyProcessed = true
			if p.mode == modeRail || intent.BonusCurrencyGranted {
				result.intent = *intent
				return nil
			}
		} else {
			now := s.now()
			paidAt := now
			if p.paidAt != nil {
				paidAt = *p.paidAt
			}
			intent.Status = domain.IntentPaid
			intent.PaidAt = &paidAt
			if p.externalTxnID != "" {
				intent.ExternalTxnID = p.externalTxnID
			}

			if !intent.NeedsManualVerification {
				result.grant, err = s.entitlements.GrantPackEntitlement(ctx, intent.UserID, intent.Pack, now)
				if err != nil {
					return err
				}
			}
		}
		if p.verifiedBy != nil {
			intent.VerifiedBy = p.verifiedBy
		}

		if !intent.BonusCurrencyGranted {
			terms, ok := intent.Pack.Terms()
			if !ok {
				return domain.ErrInvalidPack
			}
			if _, err := s.ledger.Credit(ctx, intent.UserID, terms.Bonus, fmt.Sprintf("Bonus %s", terms.Label)); err != nil {
				return err
			}
			intent.BonusCurrencyGranted = true
			result.bonusCredited = true
		}

		if err := s.intents.Update(ctx, intent); err != nil {
			return err
		}
		result.intent = *intent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// afterPayment runs once the paid transition is committed. Failures here
// are logged only: the payment itself stands. Referrers are rewarded only
// when this settlement moved the user out of the free tier; a flagged
// intent had its grant, and its referral trigger, at request time.
func (s *Service) afterPayment(ctx context.Context, result *settlement) {
	zap.L().Info("payment settled",
		zap.Int("intentID", result.intent.ID),
		zap.Int("userID", result.intent.UserID),
		zap.String("pack", string(result.intent.Pack)),
		zap.Bool("bonusCredited", result.bonusCredited),
	)
	s.notifier.PaymentConfirmed(ctx, result.intent)

	if result.grant == nil || !result.grant.Upgraded() {
		return
	}
	rewarded, err := s.referrals.OnUserBecameMember(ctx, result.intent.UserID)
	if err != nil {
		zap.L().Error("referral reward failed", zap.Int("userID", result.intent.UserID), zap.Error(err))
		return
	}
	if rewarded > 0 {
		zap.L().Info("referrers rewarded", zap.Int("userID", result.intent.UserID), zap.Int("count", rewarded))
	}
}
