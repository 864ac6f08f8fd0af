package entitlementservice

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

func timePtr(t time.Time) *time.Time { return &t }

func NewMock(t *testing.T) (*Service, *MockAccountRepo) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(pg.WithUnit(ctx))
		}).AnyTimes()
	return New(accounts, txManager), accounts
}

func TestApply(t *testing.T) {
	tests := []struct {
		name            string
		account         domain.Account
		pack            domain.Pack
		expectedRole    domain.Role
		expectedExpires time.Time
		expectedError   error
	}{
		{
			name:            "User buys pack A",
			account:         domain.Account{Role: domain.RoleUser},
			pack:            domain.PackA,
			expectedRole:    domain.RoleMember,
			expectedExpires: now.AddDate(1, 0, 0),
		},
		{
			name:            "User buys pack B",
			account:         domain.Account{Role: domain.RoleUser},
			pack:            domain.PackB,
			expectedRole:    domain.RolePremium,
			expectedExpires: now.AddDate(1, 0, 0),
		},
		{
			name:            "Premium buying pack A keeps premium and extends",
			account:         domain.Account{Role: domain.RolePremium, PaidAccessExpiresAt: timePtr(now.AddDate(0, 6, 0))},
			pack:            domain.PackA,
			expectedRole:    domain.RolePremium,
			expectedExpires: now.AddDate(1, 6, 0),
		},
		{
			name:            "VIP is never downgraded",
			account:         domain.Account{Role: domain.RoleVIP},
			pack:            domain.PackB,
			expectedRole:    domain.RoleVIP,
			expectedExpires: now.AddDate(1, 0, 0),
		},
		{
			name:            "Expired access restarts from now",
			account:         domain.Account{Role: domain.RoleMember, PaidAccessExpiresAt: timePtr(now.AddDate(0, -1, 0))},
			pack:            domain.PackB,
			expectedRole:    domain.RolePremium,
			expectedExpires: now.AddDate(1, 0, 0),
		},
		{
			name:            "Staff role is left alone",
			account:         domain.Account{Role: domain.RoleModerator},
			pack:            domain.PackB,
			expectedRole:    domain.RoleModerator,
			expectedExpires: now.AddDate(1, 0, 0),
		},
		{
			name:          "Unknown pack",
			account:       domain.Account{Role: domain.RoleUser},
			pack:          domain.Pack("packZ"),
			expectedError: domain.ErrInvalidPack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := Apply(tt.account, tt.pack, now)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRole, updated.Role)
			assert.Equal(t, tt.expectedExpires, *updated.PaidAccessExpiresAt)
			assert.GreaterOrEqual(t, updated.Role.Rank(), tt.account.Role.Rank())
		})
	}
}

func TestGrantPackEntitlement(t *testing.T) {
	t.Run("Upgrade from user", func(t *testing.T) {
		service, accounts := NewMock(t)
		accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1, Role: domain.RoleUser}, nil)
		accounts.EXPECT().UpdateEntitlement(gomock.Any(), 1, domain.RoleMember, timePtr(now.AddDate(1, 0, 0))).Return(nil)

		grant, err := service.GrantPackEntitlement(context.Background(), 1, domain.PackA, now)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, grant.PreviousRole)
		assert.Equal(t, domain.RoleMember, grant.Account.Role)
		assert.True(t, grant.Upgraded())
	})

	t.Run("Member to premium is not a first upgrade", func(t *testing.T) {
		service, accounts := NewMock(t)
		accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1, Role: domain.RoleMember}, nil)
		accounts.EXPECT().UpdateEntitlement(gomock.Any(), 1, domain.RolePremium, gomock.Any()).Return(nil)

		grant, err := service.GrantPackEntitlement(context.Background(), 1, domain.PackB, now)
		assert.NoError(t, err)
		assert.False(t, grant.Upgraded())
	})

	t.Run("Unknown account", func(t *testing.T) {
		service, accounts := NewMock(t)
		accounts.EXPECT().LockByID(gomock.Any(), 1).Return(nil, nil)

		_, err := service.GrantPackEntitlement(context.Background(), 1, domain.PackA, now)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("Unknown pack", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.GrantPackEntitlement(context.Background(), 1, domain.Pack("packZ"), now)
		assert.ErrorIs(t, err, domain.ErrInvalidPack)
	})

	t.Run("Update fails", func(t *testing.T) {
		service, accounts := NewMock(t)
		accounts.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Account{UserID: 1, Role: domain.RoleUser}, nil)
		accounts.EXPECT().UpdateEntitlement(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := service.GrantPackEntitlement(context.Background(), 1, domain.PackA, now)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
