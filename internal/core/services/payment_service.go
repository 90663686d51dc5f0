package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
	"github.com/tpaylabs/readiness_backend/internal/dto"
)

// DefaultGatewayTimeout bounds a single simulated charge.
const DefaultGatewayTimeout = 10 * time.Second

// PaymentObserver receives instrumentation events from the payment flow.
type PaymentObserver interface {
	RecordSubmission(tx domain.Transaction)
	RecordValidationFailure()
	RecordSimulationFailure()
	ObserveGatewayLatency(d time.Duration)
}

type noopPaymentObserver struct{}

func (noopPaymentObserver) RecordSubmission(domain.Transaction) {}
func (noopPaymentObserver) RecordValidationFailure()            {}
func (noopPaymentObserver) RecordSimulationFailure()            {}
func (noopPaymentObserver) ObserveGatewayLatency(time.Duration) {}

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	transactionRepo portsrepo.TransactionWriter
	gateway         portssvc.GatewaySimulator
	validate        *validator.Validate
	observer        PaymentObserver
	gatewayTimeout  time.Duration
	now             func() time.Time
	newID           func() string
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithGatewayTimeout bounds each gateway call. Zero or negative disables the bound.
func WithGatewayTimeout(d time.Duration) PaymentServiceOption {
	return func(s *paymentService) {
		s.gatewayTimeout = d
	}
}

// WithPaymentObserver attaches instrumentation, such as Prometheus metrics.
func WithPaymentObserver(o PaymentObserver) PaymentServiceOption {
	return func(s *paymentService) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithPaymentClock sets the clock used to stamp new transactions.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTransactionIDGenerator sets how internal transaction ids are generated.
func WithTransactionIDGenerator(gen func() string) PaymentServiceOption {
	return func(s *paymentService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(repo portsrepo.TransactionWriter, gateway portssvc.GatewaySimulator, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		transactionRepo: repo,
		gateway:         gateway,
		validate:        newPaymentValidator(),
		observer:        noopPaymentObserver{},
		gatewayTimeout:  DefaultGatewayTimeout,
		now:             time.Now,
		newID:           uuid.NewString,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure paymentService implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// SubmitPayment validates, simulates and records one payment test.
// Nothing is stored unless the gateway produced an outcome.
func (s *paymentService) SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest) (*domain.Transaction, error) {
	if err := validatePaymentRequest(s.validate, req); err != nil {
		s.observer.RecordValidationFailure()
		s.LogWarn(ctx, "Payment submission failed validation", slog.String("error", err.Error()))
		return nil, err
	}

	cardType := req.CardType

	result, err := s.charge(ctx, req)
	if err != nil {
		s.observer.RecordSimulationFailure()
		s.LogError(ctx, err, "Gateway simulation failed",
			slog.String("amount", req.Amount.String()),
			slog.String("card_type", string(cardType)))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrGatewaySimulation, err)
	}

	tx := domain.Transaction{
		ID:             s.newID(),
		Date:           s.now().UTC(),
		Amount:         req.Amount,
		CardNumber:     req.CardNumber,
		CardType:       cardType,
		ExpiryDate:     req.ExpiryDate,
		Status:         result.Status,
		ResponseCode:   result.ResponseCode,
		GatewayMessage: result.GatewayMessage,
		TransactionID:  result.TransactionID,
	}

	saved, err := s.transactionRepo.InsertTransaction(ctx, tx)
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction", slog.String("transaction_id", tx.TransactionID))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	s.observer.RecordSubmission(saved)

	s.LogInfo(ctx, "Payment simulation recorded",
		slog.String("id", saved.ID),
		slog.String("transaction_id", saved.TransactionID),
		slog.String("status", string(saved.Status)),
		slog.String("response_code", saved.ResponseCode))
	return &saved, nil
}

func (s *paymentService) charge(ctx context.Context, req dto.SubmitPaymentRequest) (domain.GatewayResult, error) {
	if s.gatewayTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.gatewayTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.gateway.Charge(ctx, req.Amount)
	s.observer.ObserveGatewayLatency(time.Since(start))
	return result, err
}
