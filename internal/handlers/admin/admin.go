package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/dto"
	"github.com/GlebRadaev/pupuledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/pupuledger/pkg/auth"
	"github.com/GlebRadaev/pupuledger/pkg/utils"
)

type Reconciler interface {
	ConfirmVerification(ctx context.Context, caller domain.Caller, paymentID int) (*domain.ConfirmationResult, error)
}

type Auditor interface {
	Audit(ctx context.Context, userID int) (*ledgerservice.AuditReport, error)
}

type Referrals interface {
	RegisterReferral(ctx context.Context, referrerID, referredID int) (*domain.ReferralLink, error)
	OnUserBecameMember(ctx context.Context, referredUserID int) (int, error)
}

type AdminHandler struct {
	reconciler Reconciler
	auditor    Auditor
	referrals  Referrals
}

func New(reconciler Reconciler, auditor Auditor, referrals Referrals) *AdminHandler {
	return &AdminHandler{
		reconciler: reconciler,
		auditor:    auditor,
		referrals:  referrals,
	}
}

// ConfirmPayment godoc
//
//	@Summary		Confirm a manually verified bank transfer
//	@Description	Marks the intent paid and credits the pack bonus once.
//	@Tags			Администрирование
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Intent ID"
//	@Success		200	{object}	domain.ConfirmationResult	"Confirmed"
//	@Failure		400	{object}	utils.Response				"Invalid intent id"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Admin rank required"
//	@Failure		404	{object}	utils.Response				"Intent not found"
//	@Failure		409	{object}	utils.Response				"Verification not applicable"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/payments/{id}/confirm [post]
func (h *AdminHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	paymentID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	result, err := h.reconciler.ConfirmVerification(r.Context(), caller, paymentID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrIntentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrVerificationNotApplicable), domain.IsRetryable(err):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Audit godoc
//
//	@Summary		Replay the ledger of an account
//	@Tags			Администрирование
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	dto.AuditResponseDTO	"Stored and replayed balance"
//	@Failure		400	{object}	utils.Response			"Invalid user id"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/accounts/{id}/audit [get]
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	report, err := h.auditor.Audit(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuditResponseDTO{
		UserID:     report.UserID,
		Stored:     dto.FromCents(report.Stored),
		Replayed:   dto.FromCents(report.Replayed),
		Entries:    report.Entries,
		Consistent: report.Consistent(),
	})
}

// RegisterReferral godoc
//
//	@Summary		Link a referred user to a referrer
//	@Tags			Администрирование
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterReferralRequestDTO	true	"Referral pair"
//	@Success		201		{object}	dto.ReferralResponseDTO			"Registered"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		404		{object}	utils.Response					"Account not found"
//	@Failure		409		{object}	utils.Response					"Referral exists or self referral"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/referrals [post]
func (h *AdminHandler) RegisterReferral(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.referrals.RegisterReferral(r.Context(), req.ReferrerID, req.ReferredID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrReferralExists), errors.Is(err, domain.ErrSelfReferral):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ReferralResponseDTO{
		ID:         link.ID,
		ReferrerID: link.ReferrerID,
		ReferredID: link.ReferredID,
		Status:     string(link.Status),
	})
}

// BecameMember godoc
//
//	@Summary		Pay pending referral rewards of a user
//	@Description	Runs the referral trigger by hand. Links already rewarded are skipped.
//	@Tags			Администрирование
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int						true	"Referred user ID"
//	@Success		200		{object}	dto.RewardResponseDTO	"Rewards paid by this call"
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/referrals/{userID}/became-member [post]
func (h *AdminHandler) BecameMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(w, r, "userID")
	if !ok {
		return
	}
	rewarded, err := h.referrals.OnUserBecameMember(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RewardResponseDTO{Rewarded: rewarded})
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
