package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
	"github.com/tpaylabs/readiness_backend/internal/dto"
	"github.com/tpaylabs/readiness_backend/internal/middleware"
)

type interpretationHandler struct {
	interpretationService portssvc.InterpretationSvcFacade
}

func registerInterpretationRoutes(rg *gin.RouterGroup, interpretationService portssvc.InterpretationSvcFacade) {
	h := &interpretationHandler{interpretationService: interpretationService}
	rg.POST("/interpretations", h.interpret)
}

// interpret godoc
// @Summary Interpret a gateway response
// @Description Explains a response code and gateway message: summary, probable cause, who should fix it and the recommended action.
// @Tags interpretations
// @Accept  json
// @Produce  json
// @Param   request body dto.InterpretRequest true "Response code and gateway message"
// @Success 200 {object} dto.InterpretationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to interpret response"
// @Router /interpretations [post]
func (h *interpretationHandler) interpret(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Interpret", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.interpretationService.Interpret(c.Request.Context(), req.ResponseCode, req.GatewayMessage)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to interpret response", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to interpret response"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInterpretationResponse(result))
}
