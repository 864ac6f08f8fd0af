package referralservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T, reward int64) (*Service, *MockLinkRepo, *MockAccountRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	links := NewMockLinkRepo(ctrl)
	accounts := NewMockAccountRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(pg.WithUnit(ctx))
		}).AnyTimes()

	service := New(links, accounts, ledger, txManager, reward)
	service.now = func() time.Time { return now }
	return service, links, accounts, ledger
}

func TestRegisterReferral(t *testing.T) {
	tests := []struct {
		name          string
		referrerID    int
		referredID    int
		prepareMock   func(links *MockLinkRepo, accounts *MockAccountRepo)
		expectedError error
	}{
		{
			name:       "Link registered",
			referrerID: 1,
			referredID: 2,
			prepareMock: func(links *MockLinkRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1}, nil)
				accounts.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Account{UserID: 2}, nil)
				links.EXPECT().Create(gomock.Any(), &domain.ReferralLink{
					ReferrerID: 1,
					ReferredID: 2,
					Status:     domain.ReferralRegistered,
					CreatedAt:  now,
				}).DoAndReturn(func(_ context.Context, link *domain.ReferralLink) (*domain.ReferralLink, error) {
					saved := *link
					saved.ID = 5
					return &saved, nil
				})
			},
		},
		{
			name:          "Self referral",
			referrerID:    1,
			referredID:    1,
			prepareMock:   func(links *MockLinkRepo, accounts *MockAccountRepo) {},
			expectedError: domain.ErrSelfReferral,
		},
		{
			name:       "Unknown referred user",
			referrerID: 1,
			referredID: 3,
			prepareMock: func(links *MockLinkRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1}, nil)
				accounts.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:       "Link already exists",
			referrerID: 1,
			referredID: 2,
			prepareMock: func(links *MockLinkRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.Account{}, nil).Times(2)
				links.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrReferralExists)
			},
			expectedError: domain.ErrReferralExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, links, accounts, _ := NewMock(t, 1000)
			tt.prepareMock(links, accounts)

			link, err := service.RegisterReferral(context.Background(), tt.referrerID, tt.referredID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 5, link.ID)
			assert.Equal(t, domain.ReferralRegistered, link.Status)
		})
	}
}

func registered(id, referrerID int) domain.ReferralLink {
	return domain.ReferralLink{ID: id, ReferrerID: referrerID, ReferredID: 2, Status: domain.ReferralRegistered}
}

func TestOnUserBecameMember(t *testing.T) {
	t.Run("Every registered referrer is rewarded", func(t *testing.T) {
		service, links, _, ledger := NewMock(t, 1000)
		links.EXPECT().ListByReferred(gomock.Any(), 2, domain.ReferralRegistered).
			Return([]domain.ReferralLink{registered(5, 1), registered(6, 3)}, nil)
		for _, link := range []domain.ReferralLink{registered(5, 1), registered(6, 3)} {
			locked := link
			links.EXPECT().LockByID(gomock.Any(), link.ID).Return(&locked, nil)
			gomock.InOrder(
				links.EXPECT().UpdateStatus(gomock.Any(), link.ID, domain.ReferralBecameMember, nil).Return(nil),
				links.EXPECT().UpdateStatus(gomock.Any(), link.ID, domain.ReferralRewarded, &now).Return(nil),
			)
			ledger.EXPECT().Credit(gomock.Any(), link.ReferrerID, int64(1000), "Referral reward").Return(&domain.LedgerEntry{}, nil)
		}

		rewarded, err := service.OnUserBecameMember(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, rewarded)
	})

	t.Run("Link rewarded concurrently is skipped", func(t *testing.T) {
		service, links, _, _ := NewMock(t, 1000)
		links.EXPECT().ListByReferred(gomock.Any(), 2, domain.ReferralRegistered).
			Return([]domain.ReferralLink{registered(5, 1)}, nil)
		links.EXPECT().LockByID(gomock.Any(), 5).Return(&domain.ReferralLink{ID: 5, ReferrerID: 1, ReferredID: 2, Status: domain.ReferralRewarded}, nil)

		rewarded, err := service.OnUserBecameMember(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, 0, rewarded)
	})

	t.Run("Zero reward only moves the status", func(t *testing.T) {
		service, links, _, _ := NewMock(t, 0)
		links.EXPECT().ListByReferred(gomock.Any(), 2, domain.ReferralRegistered).
			Return([]domain.ReferralLink{registered(5, 1)}, nil)
		link := registered(5, 1)
		links.EXPECT().LockByID(gomock.Any(), 5).Return(&link, nil)
		links.EXPECT().UpdateStatus(gomock.Any(), 5, gomock.Any(), gomock.Any()).Return(nil).Times(2)

		rewarded, err := service.OnUserBecameMember(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, 1, rewarded)
	})

	t.Run("No referrer", func(t *testing.T) {
		service, links, _, _ := NewMock(t, 1000)
		links.EXPECT().ListByReferred(gomock.Any(), 2, domain.ReferralRegistered).Return(nil, nil)

		rewarded, err := service.OnUserBecameMember(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, 0, rewarded)
	})

	t.Run("Credit failure is reported", func(t *testing.T) {
		service, links, _, ledger := NewMock(t, 1000)
		links.EXPECT().ListByReferred(gomock.Any(), 2, domain.ReferralRegistered).
			Return([]domain.ReferralLink{registered(5, 1)}, nil)
		link := registered(5, 1)
		links.EXPECT().LockByID(gomock.Any(), 5).Return(&link, nil)
		links.EXPECT().UpdateStatus(gomock.Any(), 5, gomock.Any(), gomock.Any()).Return(nil).Times(2)
		ledger.EXPECT().Credit(gomock.Any(), 1, int64(1000), gomock.Any()).Return(nil, assert.AnError)

		rewarded, err := service.OnUserBecameMember(context.Background(), 2)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 0, rewarded)
	})

	t.Run("Inside a unit", func(t *testing.T) {
		service, links, _, ledger := NewMock(t, 1000)
		links.EXPECT().ListByReferred(gomock.Any(), 2, domain.ReferralRegistered).
			Return([]domain.ReferralLink{registered(5, 1)}, nil)
		link := registered(5, 1)
		links.EXPECT().LockByID(gomock.Any(), 5).Return(&link, nil)
		links.EXPECT().UpdateStatus(gomock.Any(), 5, gomock.Any(), gomock.Any()).Return(nil).Times(2)
		ledger.EXPECT().Credit(gomock.Any(), 1, int64(1000), gomock.Any()).Return(&domain.LedgerEntry{}, nil)

		rewarded, err := service.OnUserBecameMember(pg.WithUnit(context.Background()), 2)
		assert.NoError(t, err)
		assert.Equal(t, 1, rewarded)
	})
}
