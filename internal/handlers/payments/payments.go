package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/dto"
	"github.com/GlebRadaev/pupuledger/pkg/auth"
	"github.com/GlebRadaev/pupuledger/pkg/utils"
)

type Service interface {
	CreateOrReuseIntent(ctx context.Context, userID int, rail domain.Rail, pack domain.Pack) (*domain.PaymentIntent, error)
	GetLatestIntent(ctx context.Context, userID int) (*domain.PaymentIntent, error)
	CancelIntent(ctx context.Context, userID, intentID int) (*domain.PaymentIntent, error)
	RequestVerification(ctx context.Context, userID, intentID int) (*domain.PaymentIntent, error)
}

type PaymentsHandler struct {
	intentService Service
}

func New(intentService Service) *PaymentsHandler {
	return &PaymentsHandler{
		intentService: intentService,
	}
}

// CreateIntent godoc
//
//	@Summary		Start a pack purchase
//	@Description	Returns the pending intent for the rail and pack, opening a new one when none exists. Bank intents carry the reference to type in the transfer, card intents carry the checkout URL.
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateIntentRequestDTO	true	"Rail and pack"
//	@Success		200		{object}	dto.IntentResponseDTO		"Pending intent"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Unknown rail or pack"
//	@Failure		502		{object}	utils.Response				"Card processor unavailable"
//	@Router			/api/payments/intents [post]
func (h *PaymentsHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	var req dto.CreateIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	intent, err := h.intentService.CreateOrReuseIntent(r.Context(), caller.UserID, domain.Rail(req.Rail), domain.Pack(req.Pack))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRail), errors.Is(err, domain.ErrInvalidPack):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case domain.IsRetryable(err), errors.Is(err, domain.ErrDuplicateReference):
			utils.RespondWithError(w, http.StatusConflict, "Try again")
		default:
			utils.RespondWithError(w, http.StatusBadGateway, "Failed to start payment")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewIntentResponse(*intent))
}

// GetLatestIntent godoc
//
//	@Summary		Get the latest payment intent
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.IntentResponseDTO	"Latest intent"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"No intent yet"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/intents/latest [get]
func (h *PaymentsHandler) GetLatestIntent(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	intent, err := h.intentService.GetLatestIntent(r.Context(), caller.UserID)
	if err != nil {
		respondIntentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewIntentResponse(*intent))
}

// CancelIntent godoc
//
//	@Summary		Cancel a pending intent
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Intent ID"
//	@Success		200	{object}	dto.IntentResponseDTO	"Cancelled intent"
//	@Failure		400	{object}	utils.Response			"Invalid intent id"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Intent not found"
//	@Failure		409	{object}	utils.Response			"Intent is not pending"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/intents/{id}/cancel [post]
func (h *PaymentsHandler) CancelIntent(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	intentID, ok := intentIDParam(w, r)
	if !ok {
		return
	}
	intent, err := h.intentService.CancelIntent(r.Context(), caller.UserID, intentID)
	if err != nil {
		respondIntentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewIntentResponse(*intent))
}

// RequestVerification godoc
//
//	@Summary		Ask staff to verify a bank transfer
//	@Description	For a bank transfer made without the reference. The pack entitlement is granted right away, the bonus once staff confirm.
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Intent ID"
//	@Success		200	{object}	dto.IntentResponseDTO	"Flagged intent"
//	@Failure		400	{object}	utils.Response			"Invalid intent id"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Intent not found"
//	@Failure		409	{object}	utils.Response			"Verification not applicable"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/intents/{id}/verification [post]
func (h *PaymentsHandler) RequestVerification(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	intentID, ok := intentIDParam(w, r)
	if !ok {
		return
	}
	intent, err := h.intentService.RequestVerification(r.Context(), caller.UserID, intentID)
	if err != nil {
		respondIntentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewIntentResponse(*intent))
}

func intentIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid intent id")
		return 0, false
	}
	return id, true
}

func respondIntentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrIntentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrIntentNotPending), errors.Is(err, domain.ErrVerificationNotApplicable), domain.IsRetryable(err):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
