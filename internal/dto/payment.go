package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	Direction    string          `json:"direction" binding:"required,oneof=IN OUT"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Method       string          `json:"method" binding:"required,oneof=CASH CARD BANK OTHER"`
	Reference    string          `json:"reference" binding:"omitempty,max=100"`
	PaidAt       *time.Time      `json:"paidAt"`
}

// UpdatePaymentRequest defines the mutable payment fields.
type UpdatePaymentRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	Method    *string          `json:"method" binding:"omitempty,oneof=CASH CARD BANK OTHER"`
	Reference *string          `json:"reference" binding:"omitempty,max=100"`
	PaidAt    *time.Time       `json:"paidAt"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID    string          `json:"paymentID"`
	Direction    string          `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Method       string          `json:"method"`
	Reference    string          `json:"reference"`
	PaidAt       time.Time       `json:"paidAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		Direction:    string(p.Direction),
		Amount:       p.Amount,
		CurrencyCode: p.CurrencyCode,
		Method:       string(p.Method),
		Reference:    p.Reference,
		PaidAt:       p.PaidAt,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}
