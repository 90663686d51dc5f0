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

// adminHandler handles maintenance endpoints.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

// registerAdminRoutes registers admin routes behind the given rate limit.
func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvcFacade, limit gin.HandlerFunc) {
	h := &adminHandler{adminService: adminService}

	admin := rg.Group("/admin", limit)
	admin.POST("/reset", h.resetTransactions)
}

// resetTransactions godoc
// @Summary Reset all transaction data
// @Description Irreversibly discards every recorded test and restores the seed data. The confirmation must equal the configured token.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.ResetRequest true "Confirmation token"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Missing or wrong confirmation"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to reset"
// @Router /admin/reset [post]
func (h *adminHandler) resetTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResetTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.adminService.ResetTransactions(c.Request.Context(), req.Confirmation); err != nil {
		if errors.Is(err, apperrors.ErrConfirmationMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to reset transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All transaction data has been reset."})
}
