package dto

import "github.com/tpaylabs/readiness_backend/internal/core/domain"

// InterpretRequest asks for an explanation of a gateway response.
type InterpretRequest struct {
	ResponseCode   string `json:"responseCode" binding:"required,max=8" example:"51"`
	GatewayMessage string `json:"gatewayMessage" binding:"required,max=256" example:"Insufficient Funds"`
}

// InterpretationResponse defines the data returned for an interpretation.
type InterpretationResponse struct {
	Interpretation   string            `json:"interpretation"`
	Confidence       domain.Confidence `json:"confidence" example:"High"`
	ExplanationBasis string            `json:"explanationBasis"`
}

// ToInterpretationResponse converts a domain.Interpretation to its response DTO
func ToInterpretationResponse(i *domain.Interpretation) InterpretationResponse {
	return InterpretationResponse{
		Interpretation:   i.Interpretation,
		Confidence:       i.Confidence,
		ExplanationBasis: i.ExplanationBasis,
	}
}
