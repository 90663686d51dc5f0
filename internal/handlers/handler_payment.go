package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
	"github.com/tpaylabs/readiness_backend/internal/dto"
	"github.com/tpaylabs/readiness_backend/internal/middleware"
	"github.com/tpaylabs/readiness_backend/internal/utils"
)

// SimulationFailedMessage is shown when the gateway produced no outcome.
const SimulationFailedMessage = "Gateway simulation failed. Please try again."

// paymentHandler handles HTTP requests related to payment test submissions.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	posthog        *utils.PosthogClientWrapper
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade, posthog *utils.PosthogClientWrapper) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
		posthog:        posthog,
	}
}

// registerPaymentRoutes registers routes related to payment submissions.
// Submissions are rate limited; card type detection is not.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, posthog *utils.PosthogClientWrapper, limit gin.HandlerFunc) {
	h := newPaymentHandler(paymentService, posthog)

	rg.POST("/payments", limit, h.submitPayment)
	rg.GET("/card-type", h.getCardType)
}

// submitPayment godoc
// @Summary Submit a payment test
// @Description Validates card details, runs them through the mock gateway and records the resulting transaction.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.SubmitPaymentRequest true "Card and amount details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid form data"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Gateway simulation failed"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /payments [post]
func (h *paymentHandler) submitPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:  "Invalid request format: " + err.Error(),
			Fields: map[string][]string{},
		})
		return
	}

	tx, err := h.paymentService.SubmitPayment(c.Request.Context(), req)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: verr.Message, Fields: verr.Fields})
		case errors.Is(err, apperrors.ErrGatewaySimulation):
			logger.Warn("Gateway simulation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": SimulationFailedMessage})
		default:
			logger.Error("Failed to submit payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	middleware.PosthogEvent(c, h.posthog, "payment_simulated", map[string]any{
		"status":        string(tx.Status),
		"response_code": tx.ResponseCode,
		"card_type":     string(tx.CardType),
	})

	logger.Info("Payment test recorded", slog.String("id", tx.ID), slog.String("status", string(tx.Status)))
	c.Header("Location", "/api/v1/transactions/"+tx.ID)
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// getCardType godoc
// @Summary Detect card type
// @Description Derives the card network from the leading digits of a card number.
// @Tags payments
// @Produce  json
// @Param   cardNumber query string true "Card number or its prefix"
// @Success 200 {object} dto.CardTypeResponse
// @Failure 400 {object} map[string]string "cardNumber is required"
// @Router /card-type [get]
func (h *paymentHandler) getCardType(c *gin.Context) {
	cardNumber := c.Query("cardNumber")
	if cardNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cardNumber query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, dto.CardTypeResponse{CardType: domain.DetectCardType(cardNumber)})
}
