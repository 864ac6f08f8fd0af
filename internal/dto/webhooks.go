package dto

import (
	"time"

	"github.com/GlebRadaev/pupuledger/pkg/clients"
)

// BankWebhookDTO is the notification the bank sends for an incoming transfer.
type BankWebhookDTO struct {
	Reference     string     `json:"reference" example:"PUPU-7992739875"`
	Amount        int64      `json:"amount" example:"5000"`
	TransactionID string     `json:"transactionId" example:"VIR-2026-000123"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

type CardEventDTO struct {
	ID   string `json:"id" example:"evt_1"`
	Type string `json:"type" example:"checkout.session.completed"`
	Data struct {
		Object clients.CardSession `json:"object"`
	} `json:"data"`
}
