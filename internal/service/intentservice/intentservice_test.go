package intentservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
	"github.com/GlebRadaev/pupuledger/internal/service/entitlementservice"
	"github.com/GlebRadaev/pupuledger/pkg/clients"
	"github.com/GlebRadaev/pupuledger/pkg/reference"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	intents      *MockIntentRepo
	accounts     *MockAccountRepo
	entitlements *MockEntitlements
	cards        *MockCardSessions
	referrals    *MockReferrals
	notifier     *MockNotifier
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		intents:      NewMockIntentRepo(ctrl),
		accounts:     NewMockAccountRepo(ctrl),
		entitlements: NewMockEntitlements(ctrl),
		cards:        NewMockCardSessions(ctrl),
		referrals:    NewMockReferrals(ctrl),
		notifier:     NewMockNotifier(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(pg.WithUnit(ctx))
		}).AnyTimes()

	service := New(m.intents, m.accounts, m.entitlements, m.cards, m.referrals, m.notifier, txManager)
	service.now = func() time.Time { return now }
	return service, m
}

func pendingBankIntent() *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:                7,
		UserID:            1,
		Rail:              domain.RailBankTransfer,
		Pack:              domain.PackA,
		AmountExpected:    5000,
		ExternalReference: "PUPU-7992739875",
		Status:            domain.IntentPending,
		CreatedAt:         now,
	}
}

func echoCreate(_ context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	saved := *intent
	saved.ID = 11
	return &saved, nil
}

func TestCreateOrReuseIntent(t *testing.T) {
	t.Run("Pending intent is reused", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailBankTransfer, domain.PackA).Return(pendingBankIntent(), nil)

		intent, err := service.CreateOrReuseIntent(context.Background(), 1, domain.RailBankTransfer, domain.PackA)
		assert.NoError(t, err)
		assert.Equal(t, 7, intent.ID)
		assert.Equal(t, "PUPU-7992739875", intent.ExternalReference)
	})

	t.Run("New bank intent gets a valid reference", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailBankTransfer, domain.PackB).Return(nil, nil).Times(2)
		m.accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)

		intent, err := service.CreateOrReuseIntent(context.Background(), 1, domain.RailBankTransfer, domain.PackB)
		assert.NoError(t, err)
		assert.True(t, reference.Valid(intent.ExternalReference))
		assert.Equal(t, int64(10000), intent.AmountExpected)
		assert.Equal(t, domain.IntentPending, intent.Status)
		assert.Equal(t, now, intent.CreatedAt)
	})

	t.Run("Reference collision is retried", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailBankTransfer, domain.PackA).Return(nil, nil).Times(3)
		m.accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1}, nil).Times(2)
		gomock.InOrder(
			m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateReference),
			m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate),
		)

		intent, err := service.CreateOrReuseIntent(context.Background(), 1, domain.RailBankTransfer, domain.PackA)
		assert.NoError(t, err)
		assert.Equal(t, 11, intent.ID)
	})

	t.Run("Reference collisions give up", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailBankTransfer, domain.PackA).Return(nil, nil).Times(maxReferenceAttempts + 1)
		m.accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1}, nil).Times(maxReferenceAttempts)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateReference).Times(maxReferenceAttempts)

		_, err := service.CreateOrReuseIntent(context.Background(), 1, domain.RailBankTransfer, domain.PackA)
		assert.ErrorIs(t, err, domain.ErrDuplicateReference)
	})

	t.Run("Concurrent request won the race", func(t *testing.T) {
		service, m := NewMock(t)
		gomock.InOrder(
			m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailBankTransfer, domain.PackA).Return(nil, nil),
			m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailBankTransfer, domain.PackA).Return(pendingBankIntent(), nil),
		)
		m.accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1}, nil)

		intent, err := service.CreateOrReuseIntent(context.Background(), 1, domain.RailBankTransfer, domain.PackA)
		assert.NoError(t, err)
		assert.Equal(t, 7, intent.ID)
	})

	t.Run("Card intent uses the checkout session", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailCard, domain.PackB).Return(nil, nil).Times(2)
		m.cards.EXPECT().CreateSession(gomock.Any(), clients.CreateSessionRequest{
			UserID:      1,
			Pack:        "packB",
			Amount:      10000,
			Currency:    "xpf",
			Description: "Pack Premium",
		}).Return(&clients.CardSession{ID: "cs_test_1", URL: "https://pay.example/cs_test_1"}, nil)
		m.accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)

		intent, err := service.CreateOrReuseIntent(context.Background(), 1, domain.RailCard, domain.PackB)
		assert.NoError(t, err)
		assert.Equal(t, "cs_test_1", intent.ExternalReference)
		assert.Equal(t, "https://pay.example/cs_test_1", intent.CheckoutURL)
	})

	t.Run("Card processor failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().FindPending(gomock.Any(), 1, domain.RailCard, domain.PackA).Return(nil, nil)
		m.cards.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := service.CreateOrReuseIntent(context.Background(), 1, domain.RailCard, domain.PackA)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Unknown account", func(t *testing.T) {
		service, m := NewMock(t)
		m.intents.EXPECT().FindPending(gomock.Any(), 9, domain.RailBankTransfer, domain.PackA).Return(nil, nil)
		m.accounts.EXPECT().LockByID(gomock.Any(), 9).Return(nil, nil)

		_, err := service.CreateOrReuseIntent(context.Background(), 9, domain.RailBankTransfer, domain.PackA)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("Invalid rail and pack", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.CreateOrReuseIntent(context.Background(), 1, domain.Rail("cash"), domain.PackA)
		assert.ErrorIs(t, err, domain.ErrInvalidRail)
		_, err = service.CreateOrReuseIntent(context.Background(), 1, domain.RailCard, domain.Pack("packZ"))
		assert.ErrorIs(t, err, domain.ErrInvalidPack)
	})
}

func TestGetLatestIntent(t *testing.T) {
	service, m := NewMock(t)

	m.intents.EXPECT().GetLatestByUserID(gomock.Any(), 1).Return(pendingBankIntent(), nil)
	intent, err := service.GetLatestIntent(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 7, intent.ID)

	m.intents.EXPECT().GetLatestByUserID(gomock.Any(), 2).Return(nil, nil)
	_, err = service.GetLatestIntent(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrIntentNotFound)
}

func TestCancelIntent(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name:   "Pending intent is cancelled",
			userID: 1,
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, intent *domain.PaymentIntent) error {
						assert.Equal(t, domain.IntentCancelled, intent.Status)
						return nil
					})
			},
		},
		{
			name:   "Intent of another user",
			userID: 2,
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
			},
			expectedError: domain.ErrIntentNotFound,
		},
		{
			name:   "Paid intent",
			userID: 1,
			prepareMock: func(m mocks) {
				paid := pendingBankIntent()
				paid.Status = domain.IntentPaid
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(paid, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(paid, nil)
			},
			expectedError: domain.ErrIntentNotPending,
		},
		{
			name:   "Intent waiting for verification",
			userID: 1,
			prepareMock: func(m mocks) {
				flagged := pendingBankIntent()
				flagged.NeedsManualVerification = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(flagged, nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(flagged, nil)
			},
			expectedError: domain.ErrIntentNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			intent, err := service.CancelIntent(context.Background(), tt.userID, 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.IntentCancelled, intent.Status)
		})
	}
}

func upgraded(previous, role domain.Role) *entitlementservice.Grant {
	return &entitlementservice.Grant{PreviousRole: previous, Account: domain.Account{UserID: 1, Role: role}}
}

func TestRequestVerification(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Flags the intent and grants the entitlement",
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, intent *domain.PaymentIntent) error {
						assert.True(t, intent.NeedsManualVerification)
						assert.Equal(t, now, *intent.VerificationRequestedAt)
						assert.Equal(t, domain.IntentPending, intent.Status)
						assert.False(t, intent.BonusCurrencyGranted)
						return nil
					})
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgraded(domain.RoleUser, domain.RoleMember), nil)
				m.notifier.EXPECT().VerificationRequested(gomock.Any(), gomock.Any())
				m.referrals.EXPECT().OnUserBecameMember(gomock.Any(), 1).Return(1, nil)
			},
		},
		{
			name: "Renewal does not reward referrers",
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgraded(domain.RolePremium, domain.RolePremium), nil)
				m.notifier.EXPECT().VerificationRequested(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "Referral failure does not fail the request",
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).
					Return(upgraded(domain.RoleUser, domain.RoleMember), nil)
				m.notifier.EXPECT().VerificationRequested(gomock.Any(), gomock.Any())
				m.referrals.EXPECT().OnUserBecameMember(gomock.Any(), 1).Return(0, assert.AnError)
			},
		},
		{
			name: "Asking twice changes nothing",
			prepareMock: func(m mocks) {
				flagged := pendingBankIntent()
				flagged.NeedsManualVerification = true
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(flagged, nil)
			},
		},
		{
			name: "Card intent",
			prepareMock: func(m mocks) {
				card := pendingBankIntent()
				card.Rail = domain.RailCard
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(card, nil)
			},
			expectedError: domain.ErrVerificationNotApplicable,
		},
		{
			name: "Paid before the lock was taken",
			prepareMock: func(m mocks) {
				paid := pendingBankIntent()
				paid.Status = domain.IntentPaid
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(paid, nil)
			},
			expectedError: domain.ErrVerificationNotApplicable,
		},
		{
			name: "Entitlement failure rolls back",
			prepareMock: func(m mocks) {
				m.intents.EXPECT().GetByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().LockByID(gomock.Any(), 7).Return(pendingBankIntent(), nil)
				m.intents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.entitlements.EXPECT().GrantPackEntitlement(gomock.Any(), 1, domain.PackA, now).Return(nil, assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			intent, err := service.RequestVerification(context.Background(), 1, 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.True(t, intent.NeedsManualVerification)
			assert.Equal(t, domain.IntentPending, intent.Status)
		})
	}
}
