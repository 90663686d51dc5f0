package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
)

// SubmitPaymentRequest is a payment test submission from the dashboard form.
// Constraints are checked by the payment service, not at bind time.
type SubmitPaymentRequest struct {
	CardNumber string          `json:"cardNumber" validate:"required,digits,min=13,max=16" example:"4242424242424242"`
	ExpiryDate string          `json:"expiryDate" validate:"required,expiry" example:"12/25"`
	CVV        string          `json:"cvv" validate:"required,digits,min=3,max=4" example:"123"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"number" example:"50"`
	// CardType is chosen by the client; GET /card-type suggests one from the card number.
	CardType domain.CardType `json:"cardType" validate:"required,oneof=Visa Mastercard Amex Other" example:"Visa"`
}

// ValidationErrorResponse is returned when a submission fails validation.
type ValidationErrorResponse struct {
	Error  string              `json:"error" example:"Invalid form data. Please check your inputs."`
	Fields map[string][]string `json:"fields"`
}

// CardTypeResponse reports the card network detected for a card number.
type CardTypeResponse struct {
	CardType domain.CardType `json:"cardType" example:"Visa"`
}
