package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

type BalanceResponseDTO struct {
	Balance string `json:"balance" example:"150.00"`
}

type TransferRequestDTO struct {
	ToEmail     string          `json:"toEmail" example:"hina@pupu.pf"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"40.00"`
	Description string          `json:"description" example:"rent"`
}

type EntryResponseDTO struct {
	ID            int       `json:"id" example:"42"`
	Type          string    `json:"type" example:"debit"`
	Amount        string    `json:"amount" example:"40.00"`
	BalanceBefore string    `json:"balanceBefore" example:"100.00"`
	BalanceAfter  string    `json:"balanceAfter" example:"60.00"`
	Status        string    `json:"status" example:"completed"`
	FromUserID    *int      `json:"fromUserId,omitempty" example:"1"`
	ToUserID      *int      `json:"toUserId,omitempty" example:"2"`
	ListingID     *int      `json:"listingId,omitempty"`
	Description   string    `json:"description" example:"rent"`
	CreatedAt     time.Time `json:"createdAt" example:"2026-03-01T10:00:00-10:00"`
}

type TransferResponseDTO struct {
	Debit  EntryResponseDTO `json:"debit"`
	Credit EntryResponseDTO `json:"credit"`
}

func NewEntryResponse(e domain.LedgerEntry) EntryResponseDTO {
	return EntryResponseDTO{
		ID:            e.ID,
		Type:          string(e.Type),
		Amount:        FromCents(e.Amount),
		BalanceBefore: FromCents(e.BalanceBefore),
		BalanceAfter:  FromCents(e.BalanceAfter),
		Status:        string(e.Status),
		FromUserID:    e.FromUserID,
		ToUserID:      e.ToUserID,
		ListingID:     e.ListingID,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}
