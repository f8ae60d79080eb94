package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
	"github.com/fifabets/fifa_betting_app/internal/dto"
	"github.com/fifabets/fifa_betting_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// predictionHandler handles HTTP requests for score predictions.
type predictionHandler struct {
	predictionService portssvc.PredictionSvcFacade
}

func newPredictionHandler(ps portssvc.PredictionSvcFacade) *predictionHandler {
	return &predictionHandler{predictionService: ps}
}

// registerPredictionRoutes registers all prediction-related routes.
func registerPredictionRoutes(rg *gin.RouterGroup, predictionService portssvc.PredictionSvcFacade) {
	h := newPredictionHandler(predictionService)

	predictions := rg.Group("/predictions")
	{
		predictions.GET("", h.listPredictions)
		predictions.PUT("/:matchID", h.upsertPrediction)
	}
}

// listPredictions godoc
// @Summary List the caller's predictions
// @Tags predictions
// @Produce json
// @Success 200 {object} dto.ListPredictionsResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/predictions [get]
func (h *predictionHandler) listPredictions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authentication required"})
		return
	}

	predictions, err := h.predictionService.ListPredictions(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list predictions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list predictions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPredictionsResponse(predictions))
}

// upsertPrediction godoc
// @Summary Create or replace a score prediction
// @Description Saves the caller's predicted score for a match. Rejected once the match has kicked off.
// @Tags predictions
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param prediction body dto.UpsertPredictionRequest true "Predicted score"
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 409 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/predictions/{matchID} [put]
func (h *predictionHandler) upsertPrediction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authentication required"})
		return
	}
	matchID := c.Param("matchID")

	var req dto.UpsertPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	prediction, err := h.predictionService.UpsertPrediction(c.Request.Context(), userID, matchID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Match not found"})
		case errors.Is(err, apperrors.ErrMatchLocked):
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "Predictions are closed for this match"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to save prediction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to save prediction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}
