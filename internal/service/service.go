package service

import (
	"github.com/GlebRadaev/pupuledger/internal/config"
	"github.com/GlebRadaev/pupuledger/internal/handlers/admin"
	"github.com/GlebRadaev/pupuledger/internal/handlers/payments"
	"github.com/GlebRadaev/pupuledger/internal/handlers/wallet"
	"github.com/GlebRadaev/pupuledger/internal/handlers/webhooks"
	"github.com/GlebRadaev/pupuledger/internal/repo"
	"github.com/GlebRadaev/pupuledger/internal/service/entitlementservice"
	"github.com/GlebRadaev/pupuledger/internal/service/intentservice"
	"github.com/GlebRadaev/pupuledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/pupuledger/internal/service/reconcileservice"
	"github.com/GlebRadaev/pupuledger/internal/service/referralservice"
	"github.com/GlebRadaev/pupuledger/internal/service/transferservice"
	"github.com/GlebRadaev/pupuledger/pkg/auth"
	"github.com/GlebRadaev/pupuledger/pkg/notify"
)

type LedgerService interface {
	wallet.Ledger
	admin.Auditor
}

type ReconcileService interface {
	webhooks.Service
	admin.Reconciler
}

type Services struct {
	LedgerService    LedgerService
	TransferService  wallet.Transfers
	IntentService    payments.Service
	ReconcileService ReconcileService
	ReferralService  admin.Referrals
	Tokens           auth.JWTServiceInterface
}

func New(repos *repo.Repositories, cards intentservice.CardSessions, notifier notify.Notifier, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repos.Accounts, repos.Ledger)
	entitlementService := entitlementservice.New(repos.Accounts, repos.TxManager)
	transferService := transferservice.New(repos.Accounts, repos.Listings, ledgerService, repos.TxManager)
	referralService := referralservice.New(repos.Referrals, repos.Accounts, ledgerService, repos.TxManager, cfg.ReferralReward)
	intentService := intentservice.New(repos.Intents, repos.Accounts, entitlementService, cards, referralService, notifier, repos.TxManager)
	reconcileService := reconcileservice.New(repos.Intents, ledgerService, entitlementService, referralService, notifier, repos.TxManager)

	return &Services{
		LedgerService:    ledgerService,
		TransferService:  transferService,
		IntentService:    intentService,
		ReconcileService: reconcileService,
		ReferralService:  referralService,
		Tokens:           auth.NewJWTService(cfg.JWTSecret),
	}
}
