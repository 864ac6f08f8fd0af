package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/dto"
	"github.com/GlebRadaev/pupuledger/pkg/utils"
	"github.com/GlebRadaev/pupuledger/pkg/webhook"
)

const (
	EventSessionCompleted      = "checkout.session.completed"
	EventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	EventSessionExpired        = "checkout.session.expired"

	maxBodySize = 1 << 20
)

type Service interface {
	ProcessConfirmation(ctx context.Context, c domain.Confirmation) (*domain.ConfirmationResult, error)
	ExpireCardSession(ctx context.Context, sessionID string) (bool, error)
}

type WebhooksHandler struct {
	reconciler Service
	cardSecret string
	now        func() time.Time
}

func New(reconciler Service, cardSecret string) *WebhooksHandler {
	return &WebhooksHandler{
		reconciler: reconciler,
		cardSecret: cardSecret,
		now:        time.Now,
	}
}

// Bank godoc
//
//	@Summary		Bank transfer notification
//	@Description	Called by the bank for every incoming transfer. Redelivery of a settled transfer answers alreadyProcessed.
//	@Tags			Вебхуки
//	@Security		WebhookSecret
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BankWebhookDTO			true	"Transfer notification"
//	@Success		200		{object}	domain.ConfirmationResult	"Settled"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Bad shared secret"
//	@Failure		404		{object}	utils.Response				"Unknown reference"
//	@Failure		422		{object}	utils.Response				"Amount mismatch"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/webhooks/bank [post]
func (h *WebhooksHandler) Bank(w http.ResponseWriter, r *http.Request) {
	var req dto.BankWebhookDTO
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil || req.Reference == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.reconciler.ProcessConfirmation(r.Context(), domain.Confirmation{
		Reference:      req.Reference,
		ReportedAmount: req.Amount,
		ExternalTxnID:  req.TransactionID,
		PaidAt:         req.PaidAt,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Card godoc
//
//	@Summary		Card processor event
//	@Description	Checkout session events signed with the Card-Signature header. Events of other types are acknowledged and ignored.
//	@Tags			Вебхуки
//	@Accept			json
//	@Produce		json
//	@Param			Card-Signature	header		string						true	"t=<unix>,v1=<hex>"
//	@Param			request			body		dto.CardEventDTO			true	"Event"
//	@Success		200				{object}	domain.ConfirmationResult	"Handled"
//	@Failure		400				{object}	utils.Response				"Invalid body"
//	@Failure		401				{object}	utils.Response				"Invalid signature"
//	@Failure		404				{object}	utils.Response				"Unknown session"
//	@Failure		422				{object}	utils.Response				"Amount mismatch"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/webhooks/card [post]
func (h *WebhooksHandler) Card(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := webhook.VerifySignature(r.Header.Get(webhook.SignatureHeader), body, h.cardSecret, h.now(), webhook.DefaultTolerance); err != nil {
		zap.L().Warn("card event rejected", zap.String("remote", r.RemoteAddr), zap.Error(err))
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var event dto.CardEventDTO
	if err := json.Unmarshal(body, &event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session := event.Data.Object

	switch event.Type {
	case EventSessionCompleted, EventAsyncPaymentSucceeded:
		if !session.Paid() {
			// delayed payment methods complete the session before the money arrives
			zap.L().Debug("card session completed unpaid", zap.String("sessionID", session.ID))
			utils.RespondWithJSON(w, http.StatusOK, domain.ConfirmationResult{OK: true})
			return
		}
		result, err := h.reconciler.ProcessConfirmation(r.Context(), domain.Confirmation{
			Reference:      session.ID,
			ReportedAmount: session.AmountTotal,
			ExternalTxnID:  session.PaymentIntent,
		})
		if err != nil {
			respondError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, result)
	case EventSessionExpired:
		expired, err := h.reconciler.ExpireCardSession(r.Context(), session.ID)
		if err != nil {
			respondError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, domain.ConfirmationResult{OK: true, AlreadyProcessed: !expired})
	default:
		zap.L().Debug("card event ignored", zap.String("eventID", event.ID), zap.String("type", event.Type))
		utils.RespondWithJSON(w, http.StatusOK, domain.ConfirmationResult{OK: true})
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrIntentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAmountMismatch):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case domain.IsRetryable(err):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
