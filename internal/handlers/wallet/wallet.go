package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/dto"
	"github.com/GlebRadaev/pupuledger/internal/service/transferservice"
	"github.com/GlebRadaev/pupuledger/pkg/auth"
	"github.com/GlebRadaev/pupuledger/pkg/utils"
)

type Ledger interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	History(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type Transfers interface {
	Transfer(ctx context.Context, fromUserID int, toEmail string, amount int64, description string) (*transferservice.TransferResult, error)
	Exchange(ctx context.Context, buyerID, listingID int) (*domain.LedgerEntry, error)
}

type WalletHandler struct {
	ledger    Ledger
	transfers Transfers
}

func New(ledger Ledger, transfers Transfers) *WalletHandler {
	return &WalletHandler{
		ledger:    ledger,
		transfers: transfers,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Current Pūpū balance of the authenticated user.
//	@Tags			Кошелёк
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	balance, err := h.ledger.GetBalance(r.Context(), caller.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: dto.FromCents(balance)})
}

// GetHistory godoc
//
//	@Summary		Get wallet history
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Кошелёк
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.EntryResponseDTO	"Ledger entries"
//	@Success		204	{object}	utils.Response			"No entries yet"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/history [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	entries, err := h.ledger.History(r.Context(), caller.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.EntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.NewEntryResponse(e)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Transfer godoc
//
//	@Summary		Send Pūpū to another user
//	@Description	Moves an amount from the authenticated user to the account registered with the given e-mail.
//	@Tags			Кошелёк
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	dto.TransferResponseDTO	"Both ledger entries"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Recipient not found"
//	@Failure		409		{object}	utils.Response			"Self transfer"
//	@Failure		422		{object}	utils.Response			"Invalid amount or missing description"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := dto.ToCents(req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.transfers.Transfer(r.Context(), caller.UserID, req.ToEmail, amount, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		Debit:  dto.NewEntryResponse(*result.Debit),
		Credit: dto.NewEntryResponse(*result.Credit),
	})
}

// Exchange godoc
//
//	@Summary		Buy a listing with Pūpū
//	@Description	Pays the listing price to its seller and marks the listing sold.
//	@Tags			Кошелёк
//	@Security		BearerAuth
//	@Produce		json
//	@Param			listingID	path		int						true	"Listing ID"
//	@Success		200			{object}	dto.EntryResponseDTO	"Exchange entry"
//	@Failure		400			{object}	utils.Response			"Invalid listing id"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		402			{object}	utils.Response			"Insufficient balance"
//	@Failure		404			{object}	utils.Response			"Listing not found"
//	@Failure		409			{object}	utils.Response			"Listing unavailable or own listing"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/exchange/{listingID} [post]
func (h *WalletHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	listingID, err := strconv.Atoi(chi.URLParam(r, "listingID"))
	if err != nil || listingID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	entry, err := h.transfers.Exchange(r.Context(), caller.UserID, listingID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEntryResponse(*entry))
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrMissingDescription):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case domain.IsNotFound(err):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSelfTransferNotAllowed),
		errors.Is(err, domain.ErrSelfExchangeNotAllowed),
		errors.Is(err, domain.ErrListingUnavailable),
		domain.IsRetryable(err):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("wallet request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
