package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	"github.com/tpaylabs/readiness_backend/internal/dto"
)

// GatewaySimulator stands in for a real payment gateway.
type GatewaySimulator interface {
	// Charge blocks for the simulated network latency and returns the gateway's decision.
	// It returns ctx.Err() if the context ends first.
	Charge(ctx context.Context, amount decimal.Decimal) (domain.GatewayResult, error)
}

// PaymentSubmitterSvc defines the payment test submission flow
type PaymentSubmitterSvc interface {
	// SubmitPayment validates the request, runs it through the gateway and records
	// exactly one transaction. Invalid input yields an *apperrors.ValidationError.
	SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest) (*domain.Transaction, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentSubmitterSvc
}
