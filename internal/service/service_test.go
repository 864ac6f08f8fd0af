package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/config"
	"github.com/GlebRadaev/pupuledger/internal/repo"
	memoryrepo "github.com/GlebRadaev/pupuledger/internal/repo/memory-repo"
	"github.com/GlebRadaev/pupuledger/internal/service/intentservice"
	"github.com/GlebRadaev/pupuledger/pkg/notify"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := repo.NewMemory(memoryrepo.New())
	cfg := &config.Config{JWTSecret: "secret", ReferralReward: 2000}

	services := New(repos, intentservice.NewMockCardSessions(ctrl), notify.NewLogNotifier(zap.NewNop()), cfg)

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.TransferService)
	assert.NotNil(t, services.IntentService)
	assert.NotNil(t, services.ReconcileService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.Tokens)
}
