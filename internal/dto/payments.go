package dto

import (
	"time"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

type CreateIntentRequestDTO struct {
	Rail string `json:"rail" example:"bank_transfer"`
	Pack string `json:"pack" example:"packA"`
}

type IntentResponseDTO struct {
	ID                      int        `json:"id" example:"7"`
	Rail                    string     `json:"rail" example:"bank_transfer"`
	Pack                    string     `json:"pack" example:"packA"`
	AmountExpected          int64      `json:"amountExpected" example:"5000"`
	Currency                string     `json:"currency" example:"XPF"`
	ExternalReference       string     `json:"externalReference" example:"PUPU-7992739875"`
	Status                  string     `json:"status" example:"pending"`
	NeedsManualVerification bool       `json:"needsManualVerification"`
	CheckoutURL             string     `json:"checkoutUrl,omitempty"`
	PaidAt                  *time.Time `json:"paidAt,omitempty"`
	CreatedAt               time.Time  `json:"createdAt" example:"2026-03-01T10:00:00-10:00"`
}

func NewIntentResponse(i domain.PaymentIntent) IntentResponseDTO {
	return IntentResponseDTO{
		ID:                      i.ID,
		Rail:                    string(i.Rail),
		Pack:                    string(i.Pack),
		AmountExpected:          i.AmountExpected,
		Currency:                "XPF",
		ExternalReference:       i.ExternalReference,
		Status:                  string(i.Status),
		NeedsManualVerification: i.NeedsManualVerification,
		CheckoutURL:             i.CheckoutURL,
		PaidAt:                  i.PaidAt,
		CreatedAt:               i.CreatedAt,
	}
}
