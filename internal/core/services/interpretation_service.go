package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
)

// Responsible parties for a gateway outcome.
const (
	partyNone     = "No one"
	partyUser     = "User (customer)"
	partyMerchant = "Merchant (developer)"
	partyGateway  = "Gateway (payment processor)"
)

// responseCodeInfo describes a conventional ISO 8583 style response code.
type responseCodeInfo struct {
	message string
	summary string
	cause   string
	party   string
	action  string
}

var responseCodeCatalog = map[string]responseCodeInfo{
	"00": {
		message: "Transaction Approved",
		summary: "The payment was approved by the issuer.",
		cause:   "The card is valid, has sufficient funds and passed the issuer's checks.",
		party:   partyNone,
		action:  "No action needed. Fulfil the order and keep the transaction id for reconciliation.",
	},
	"05": {
		message: "Do Not Honor",
		summary: "The issuing bank declined the payment without giving a specific reason.",
		cause:   "A generic issuer decline, often triggered by fraud rules, card restrictions or unusual spending patterns.",
		party:   partyUser,
		action:  "Ask the customer to contact their bank or pay with a different card. Do not retry repeatedly.",
	},
	"12": {
		message: "Invalid Transaction",
		summary: "The issuer rejected the request as an invalid transaction.",
		cause:   "The transaction type or request fields are not supported for this card, usually an integration problem.",
		party:   partyMerchant,
		action:  "Check the request payload and transaction type against the gateway's integration guide.",
	},
	"13": {
		message: "Invalid Amount",
		summary: "The payment amount was rejected.",
		cause:   "The amount is zero, negative, badly formatted or outside the limits allowed for this merchant.",
		party:   partyMerchant,
		action:  "Validate amount formatting and currency precision before sending the charge.",
	},
	"14": {
		message: "Invalid Card Number",
		summary: "The card number does not match any account at the issuer.",
		cause:   "The number was mistyped or belongs to a closed or non-existent account.",
		party:   partyUser,
		action:  "Ask the customer to re-enter the card number carefully or use another card.",
	},
	"41": {
		message: "Lost Card",
		summary: "The card has been reported lost.",
		cause:   "The issuer has flagged this card as lost and blocks all payments on it.",
		party:   partyUser,
		action:  "Ask the customer to use a different card. Never retry this card.",
	},
	"43": {
		message: "Stolen Card",
		summary: "The card has been reported stolen.",
		cause:   "The issuer has flagged this card as stolen, which may indicate fraudulent use.",
		party:   partyUser,
		action:  "Decline the order, do not retry, and review the order for fraud.",
	},
	"51": {
		message: "Insufficient Funds",
		summary: "The payment was declined because the account lacks funds.",
		cause:   "The available balance or credit limit is lower than the transaction amount.",
		party:   partyUser,
		action:  "Ask the customer to top up their account, lower the amount or use another card.",
	},
	"54": {
		message: "Expired Card",
		summary: "The card has expired.",
		cause:   "The expiry date on the card has passed or the submitted expiry date is wrong.",
		party:   partyUser,
		action:  "Ask the customer to check the expiry date or use a valid card.",
	},
	"57": {
		message: "Transaction Not Permitted to Cardholder",
		summary: "The cardholder is not allowed to make this kind of payment.",
		cause:   "The card is restricted for this merchant category, region or for online payments.",
		party:   partyUser,
		action:  "Ask the customer to enable online payments with their bank or use another card.",
	},
	"61": {
		message: "Exceeds Withdrawal Limit",
		summary: "The payment exceeds the card's spending limit.",
		cause:   "The amount is above the daily or per-transaction limit set by the issuer.",
		party:   partyUser,
		action:  "Ask the customer to raise the limit with their bank or split the payment.",
	},
	"91": {
		message: "Issuer or Switch Inoperative",
		summary: "The issuing bank could not be reached.",
		cause:   "The issuer or the network switch is temporarily unavailable.",
		party:   partyGateway,
		action:  "Retry after a short delay. Escalate to the gateway if the problem persists.",
	},
	"96": {
		message: "System Malfunction",
		summary: "The payment failed because of a processing error.",
		cause:   "An internal error occurred at the gateway or the issuer while processing the request.",
		party:   partyGateway,
		action:  "Retry later and contact gateway support with the transaction id if it keeps failing.",
	},
}

// catalogInterpreter explains response codes from a fixed catalog.
type catalogInterpreter struct {
	BaseService
}

// NewInterpretationService creates an interpreter backed by the built-in response code catalog.
func NewInterpretationService() portssvc.InterpretationSvcFacade {
	return &catalogInterpreter{}
}

var _ portssvc.InterpretationSvcFacade = (*catalogInterpreter)(nil)

// Interpret returns High confidence when both code and message match the catalog,
// Medium when only the code is known and Low otherwise.
func (s *catalogInterpreter) Interpret(ctx context.Context, responseCode, gatewayMessage string) (*domain.Interpretation, error) {
	code := strings.TrimSpace(responseCode)
	message := strings.TrimSpace(gatewayMessage)
	if code == "" {
		return nil, fmt.Errorf("%w: response code is required", apperrors.ErrValidation)
	}

	info, known := responseCodeCatalog[code]
	var result *domain.Interpretation
	switch {
	case known && strings.EqualFold(info.message, message):
		result = &domain.Interpretation{
			Interpretation:   renderInterpretation(info.summary, info.cause, info.party, info.action),
			Confidence:       domain.ConfidenceHigh,
			ExplanationBasis: fmt.Sprintf("Based on the standard response code '%s' (%s) and a gateway message that matches it.", code, info.message),
		}
	case known:
		result = &domain.Interpretation{
			Interpretation:   renderInterpretation(info.summary, info.cause, info.party, info.action),
			Confidence:       domain.ConfidenceMedium,
			ExplanationBasis: fmt.Sprintf("Based on the standard response code '%s' (%s). The gateway message '%s' differs from the usual wording, so the gateway may use the code differently.", code, info.message, message),
		}
	default:
		result = &domain.Interpretation{
			Interpretation: renderInterpretation(
				fmt.Sprintf("The gateway returned the unrecognised response code '%s'.", code),
				fmt.Sprintf("The code is not a standard response code. The gateway message reads: %q.", message),
				partyGateway,
				"Look the code up in the gateway's documentation or ask gateway support what it means.",
			),
			Confidence:       domain.ConfidenceLow,
			ExplanationBasis: "Based only on the gateway message. The response code is not in the standard catalog.",
		}
	}

	s.LogDebug(ctx, "Response code interpreted",
		slog.String("response_code", code),
		slog.String("confidence", string(result.Confidence)))
	return result, nil
}

func renderInterpretation(summary, cause, party, action string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **Summary:** %s\n", summary)
	fmt.Fprintf(&b, "- **Probable Cause:** %s\n", cause)
	fmt.Fprintf(&b, "- **Who should fix it?:** %s\n", party)
	fmt.Fprintf(&b, "- **Recommended Action:** %s\n", action)
	return b.String()
}
