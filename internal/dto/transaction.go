package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	"github.com/tpaylabs/readiness_backend/internal/utils"
)

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID               string                   `json:"id"`
	Date             time.Time                `json:"date"`
	Amount           decimal.Decimal          `json:"amount" swaggertype:"number"`
	FormattedAmount  string                   `json:"formattedAmount" example:"BDT 50.00"`
	CardNumber       string                   `json:"cardNumber"`
	MaskedCardNumber string                   `json:"maskedCardNumber" example:"**** 4242"`
	CardType         domain.CardType          `json:"cardType"`
	ExpiryDate       string                   `json:"expiryDate"`
	Status           domain.TransactionStatus `json:"status"`
	ResponseCode     string                   `json:"responseCode"`
	GatewayMessage   string                   `json:"gatewayMessage"`
	TransactionID    string                   `json:"transactionId"`
}

// ListTransactionsParams holds optional cursor pagination for the history view.
type ListTransactionsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse is one page of transaction history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               tx.ID,
		Date:             tx.Date,
		Amount:           tx.Amount,
		FormattedAmount:  utils.FormatBDT(tx.Amount),
		CardNumber:       tx.CardNumber,
		MaskedCardNumber: tx.MaskedCardNumber(),
		CardType:         tx.CardType,
		ExpiryDate:       tx.ExpiryDate,
		Status:           tx.Status,
		ResponseCode:     tx.ResponseCode,
		GatewayMessage:   tx.GatewayMessage,
		TransactionID:    tx.TransactionID,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to response DTOs
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
