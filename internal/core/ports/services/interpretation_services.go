package services

import (
	"context"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
)

// InterpretationSvcFacade explains a gateway response to a human reader
type InterpretationSvcFacade interface {
	Interpret(ctx context.Context, responseCode, gatewayMessage string) (*domain.Interpretation, error)
}
