package reconcileservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
	"github.com/GlebRadaev/pupuledger/internal/service/entitlementservice"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	intents      *MockIntentRepo
	ledger       *MockLedger
	entitlements *MockEntitlements
	referrals    *MockReferrals
	notifier     *MockNotifier
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		intents:      NewMockIntentRepo(ctrl),
		ledger:       NewMockLedger(ctrl),
		entitlements: NewMockEntitlements(ctrl),
		referrals:    NewMockReferrals(ctrl),
		notifier:     NewMockNotifier(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(pg.WithUnit(ctx))
		}).AnyTimes()

	service := New(m.intents, m.ledger, m.entitlements, m.referrals, m.notifier, txManager)
	service.now = func() time.Time { return now }
	return service, m
}

func bankIntent() *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:                7,
		UserID:            1,
		Rail:              domain.RailBankTransfer,
		Pack:              domain.PackA,
		AmountExpected:    5000,
		ExternalReference: "PUPU-7992739875",
		Status:            domain.IntentPending,
	}
}

func upgrade(previous, role domain.Role) *entitlementservice.Grant {
	return &entitlementservice.Grant{PreviousRole: previous, Account: domain.Account{UserID: 1, Role: role}}
}

func TestProcessConfirmation(t *testing.T) {
	confirmation := domain.Confirmation{Reference: "pupu 7992739875", ReportedAmount: 5000, ExternalTxnID: "txn-1"}

	tests := []struct {
		name           string
		confirmation   domain.Confirmation
		prepareMock    func(m mocks)
		expectedResult *domain.ConfirmationResult
		expectedError  error
	}{
		{
			name:         "First confirmation settles the intent",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(bankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(bankIntent(), nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgrade(domain.RoleUser, domain.RoleMember), nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), "Bonus Pack Membre").Return(&domain.LedgerEntry{}, nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, intent *domain.PaymentIntent) error {
						assert.Equal(t, domain.IntentPaid, intent.Status)
						assert.Equal(t, now, *intent.PaidAt)
						assert.Equal(t, "txn-1", intent.ExternalTxnID)
						assert.True(t, intent.BonusCurrencyGranted)
						return nil
					})
				m.notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any())
				m.referrals.EXPECT().OnUserBecameMember(gomock.Any(), 1).Return(1, nil)
			},
			expectedResult: &domain.ConfirmationResult{OK: true},
		},
		{
			name:         "Renewal does not trigger referrals",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(bankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(bankIntent(), nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgrade(domain.RoleMember, domain.RoleMember), nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any())
			},
			expectedResult: &domain.ConfirmationResult{OK: true},
		},
		{
			name:         "Referral failure does not fail the payment",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(bankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(bankIntent(), nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgrade(domain.RoleUser, domain.RoleMember), nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any())
				m.referrals.EXPECT().OnUserBecameMember(gomock.Any(), 1).Return(0, assert.AnError)
			},
			expectedResult: &domain.ConfirmationResult{OK: true},
		},
		{
			name:         "Flagged intent skips the entitlement",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				flagged := bankIntent()
				flagged.NeedsManualVerification = true
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(flagged, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(flagged, nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any())
			},
			expectedResult: &domain.ConfirmationResult{OK: true},
		},
		{
			name:         "Cancelled intent is settled when the money arrives",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				cancelled := bankIntent()
				cancelled.Status = domain.IntentCancelled
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(cancelled, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(cancelled, nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgrade(domain.RoleUser, domain.RoleMember), nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, intent *domain.PaymentIntent) error {
						assert.Equal(t, domain.IntentPaid, intent.Status)
						assert.True(t, intent.BonusCurrencyGranted)
						return nil
					})
				m.notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any())
				m.referrals.EXPECT().OnUserBecameMember(gomock.Any(), 1).Return(0, nil)
			},
			expectedResult: &domain.ConfirmationResult{OK: true},
		},
		{
			name:         "Duplicate delivery",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				paid := bankIntent()
				paid.Status = domain.IntentPaid
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(paid, nil)
			},
			expectedResult: &domain.ConfirmationResult{OK: true, AlreadyProcessed: true},
		},
		{
			name:         "Paid between lookup and lock",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				paid := bankIntent()
				paid.Status = domain.IntentPaid
				paid.BonusCurrencyGranted = true
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(bankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(paid, nil)
			},
			expectedResult: &domain.ConfirmationResult{OK: true, AlreadyProcessed: true},
		},
		{
			name:         "Amount mismatch",
			confirmation: domain.Confirmation{Reference: "PUPU-7992739875", ReportedAmount: 4999},
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(bankIntent(), nil)
			},
			expectedError: domain.ErrAmountMismatch,
		},
		{
			name:         "Unknown reference",
			confirmation: domain.Confirmation{Reference: "cs_unknown", ReportedAmount: 5000},
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByReference(gomock.Any(), "cs_unknown").Return(nil, nil)
			},
			expectedError: domain.ErrIntentNotFound,
		},
		{
			name:         "Bonus credit failure rolls back",
			confirmation: confirmation,
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByReference(gomock.Any(), "PUPU-7992739875").Return(bankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(bankIntent(), nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgrade(domain.RoleUser, domain.RoleMember), nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(nil, assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.ProcessConfirmation(context.Background(), tt.confirmation)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestProcessConfirmation_PaidAtFromRail(t *testing.T) {
	service, m := NewMock(t)
	paidAt := now.Add(-time.Hour)
	card := bankIntent()
	card.Rail = domain.RailCard
	card.ExternalReference = "cs_test_1"

	m.intents.EXPECT().GetByReference(gomock.Any(), "cs_test_1").Return(card, nil)
	m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(card, nil)
	m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
		Return(upgrade(domain.RoleMember, domain.RoleMember), nil)
	m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
	m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, intent *domain.PaymentIntent) error {
			assert.Equal(t, paidAt, *intent.PaidAt)
			return nil
		})
	m.notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any())

	_, err := service.ProcessConfirmation(context.Background(), domain.Confirmation{
		Reference:      "cs_test_1",
		ReportedAmount: 5000,
		PaidAt:         &paidAt,
	})
	assert.NoError(t, err)
}

func TestConfirmVerification(t *testing.T) {
	admin := domain.Caller{UserID: 99, Role: domain.RoleAdmin}

	tests := []struct {
		name           string
		caller         domain.Caller
		prepareMock    func(m mocks)
		expectedResult *domain.ConfirmationResult
		expectedError  error
	}{
		{
			name:   "Flagged intent is settled",
			caller: admin,
			prepareMock: func(m mocks) {
				flagged := bankIntent()
				flagged.NeedsManualVerification = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(flagged, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(flagged, nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, intent *domain.PaymentIntent) error {
						assert.Equal(t, domain.IntentPaid, intent.Status)
						assert.Equal(t, 99, *intent.VerifiedBy)
						assert.True(t, intent.BonusCurrencyGranted)
						return nil
					})
				m.notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any())
			},
			expectedResult: &domain.ConfirmationResult{OK: true},
		},
		{
			name:   "Rail already paid, bonus missing",
			caller: admin,
			prepareMock: func(m mocks) {
				paid := bankIntent()
				paid.Status = domain.IntentPaid
				paid.NeedsManualVerification = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(paid, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(paid, nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(5000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedResult: &domain.ConfirmationResult{OK: true, AlreadyProcessed: true},
		},
		{
			name:   "Rail already paid with bonus",
			caller: admin,
			prepareMock: func(m mocks) {
				paid := bankIntent()
				paid.Status = domain.IntentPaid
				paid.NeedsManualVerification = true
				paid.BonusCurrencyGranted = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(paid, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(paid, nil)
			},
			expectedResult: &domain.ConfirmationResult{OK: true, AlreadyProcessed: true},
		},
		{
			name:   "Paid intent never flagged",
			caller: admin,
			prepareMock: func(m mocks) {
				paid := bankIntent()
				paid.Status = domain.IntentPaid
				paid.BonusCurrencyGranted = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(paid, nil)
			},
			expectedError: domain.ErrVerificationNotApplicable,
		},
		{
			name:   "Cancelled flagged intent",
			caller: admin,
			prepareMock: func(m mocks) {
				cancelled := bankIntent()
				cancelled.Status = domain.IntentCancelled
				cancelled.NeedsManualVerification = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(cancelled, nil)
			},
			expectedError: domain.ErrVerificationNotApplicable,
		},
		{
			name:   "Pending intent without request",
			caller: admin,
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(bankIntent(), nil)
			},
			expectedError: domain.ErrVerificationNotApplicable,
		},
		{
			name:   "Cancelled under the lock",
			caller: admin,
			prepareMock: func(m mocks) {
				flagged := bankIntent()
				flagged.NeedsManualVerification = true
				cancelled := bankIntent()
				cancelled.Status = domain.IntentCancelled
				cancelled.NeedsManualVerification = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(flagged, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(cancelled, nil)
			},
			expectedError: domain.ErrVerificationNotApplicable,
		},
		{
			name:          "Caller is not staff",
			caller:        domain.Caller{UserID: 1, Role: domain.RolePremium},
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrUnauthorized,
		},
		{
			name:          "Moderator is not enough",
			caller:        domain.Caller{UserID: 2, Role: domain.RoleModerator},
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrUnauthorized,
		},
		{
			name:   "Unknown intent",
			caller: domain.Caller{UserID: 3, Role: domain.RoleSuperAdmin},
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: domain.ErrIntentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.ConfirmVerification(context.Background(), tt.caller, 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestExpireCardSession(t *testing.T) {
	card := func(status domain.IntentStatus) *domain.PaymentIntent {
		intent := bankIntent()
		intent.Rail = domain.RailCard
		intent.ExternalReference = "cs_test_1"
		intent.Status = status
		return intent
	}

	t.Run("Pending session is cancelled", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().GetByReference(gomock.Any(), "cs_test_1").Return(card(domain.IntentPending), nil)
		m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(card(domain.IntentPending), nil)
		m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent *domain.PaymentIntent) error {
				assert.Equal(t, domain.IntentCancelled, intent.Status)
				return nil
			})

		expired, err := service.ExpireCardSession(context.Background(), "cs_test_1")
		assert.NoError(t, err)
		assert.True(t, expired)
	})

	t.Run("Paid session stays paid", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().GetByReference(gomock.Any(), "cs_test_1").Return(card(domain.IntentPaid), nil)

		expired, err := service.ExpireCardSession(context.Background(), "cs_test_1")
		assert.NoError(t, err)
		assert.False(t, expired)
	})

	t.Run("Paid before the lock", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().GetByReference(gomock.Any(), "cs_test_1").Return(card(domain.IntentPending), nil)
		m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(card(domain.IntentPaid), nil)

		expired, err := service.ExpireCardSession(context.Background(), "cs_test_1")
		assert.NoError(t, err)
		assert.False(t, expired)
	})

	t.Run("Unknown session", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().GetByReference(gomock.Any(), "cs_missing").Return(nil, nil)

		_, err := service.ExpireCardSession(context.Background(), "cs_missing")
		assert.ErrorIs(t, err, domain.ErrIntentNotFound)
	})
}
