package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/pupuledger/docs"
	"github.com/GlebRadaev/pupuledger/internal/config"
	"github.com/GlebRadaev/pupuledger/internal/domain"
	adminhandlers "github.com/GlebRadaev/pupuledger/internal/handlers/admin"
	paymentshandlers "github.com/GlebRadaev/pupuledger/internal/handlers/payments"
	wallethandlers "github.com/GlebRadaev/pupuledger/internal/handlers/wallet"
	webhookshandlers "github.com/GlebRadaev/pupuledger/internal/handlers/webhooks"
	"github.com/GlebRadaev/pupuledger/internal/service"
	"github.com/GlebRadaev/pupuledger/pkg/auth"
	"github.com/GlebRadaev/pupuledger/pkg/webhook"
)

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Exchange(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	GetLatestIntent(w http.ResponseWriter, r *http.Request)
	CancelIntent(w http.ResponseWriter, r *http.Request)
	RequestVerification(w http.ResponseWriter, r *http.Request)
}

type WebhooksHandler interface {
	Bank(w http.ResponseWriter, r *http.Request)
	Card(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	Audit(w http.ResponseWriter, r *http.Request)
	RegisterReferral(w http.ResponseWriter, r *http.Request)
	BecameMember(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler   WalletHandler
	PaymentsHandler PaymentsHandler
	WebhooksHandler WebhooksHandler
	AdminHandler    AdminHandler

	Tokens     auth.JWTServiceInterface
	BankSecret string
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		WalletHandler:   wallethandlers.New(s.LedgerService, s.TransferService),
		PaymentsHandler: paymentshandlers.New(s.IntentService),
		WebhooksHandler: webhookshandlers.New(s.ReconcileService, cfg.CardWebhookSecret),
		AdminHandler:    adminhandlers.New(s.ReconcileService, s.LedgerService, s.ReferralService),
		Tokens:          s.Tokens,
		BankSecret:      cfg.BankWebhookSecret,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/webhooks", func(r chi.Router) {
			r.With(webhook.SharedSecret(h.BankSecret)).Post("/bank", h.WebhooksHandler.Bank)
			r.Post("/card", h.WebhooksHandler.Card)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Tokens))
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/history", h.WalletHandler.GetHistory)
				r.Post("/transfer", h.WalletHandler.Transfer)
				r.Post("/exchange/{listingID}", h.WalletHandler.Exchange)
			})
			r.Route("/payments/intents", func(r chi.Router) {
				r.Post("/", h.PaymentsHandler.CreateIntent)
				r.Get("/latest", h.PaymentsHandler.GetLatestIntent)
				r.Post("/{id}/cancel", h.PaymentsHandler.CancelIntent)
				r.Post("/{id}/verification", h.PaymentsHandler.RequestVerification)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Post("/payments/{id}/confirm", h.AdminHandler.ConfirmPayment)
				r.Get("/accounts/{id}/audit", h.AdminHandler.Audit)
				r.Post("/referrals", h.AdminHandler.RegisterReferral)
				r.Post("/referrals/{userID}/became-member", h.AdminHandler.BecameMember)
			})
		})
	})

	return r
}
