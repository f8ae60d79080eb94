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

// betHandler handles HTTP requests for tournament-outcome bets.
type betHandler struct {
	betService portssvc.BetSvcFacade
}

func newBetHandler(bs portssvc.BetSvcFacade) *betHandler {
	return &betHandler{betService: bs}
}

// registerBetRoutes registers all bet-related routes.
func registerBetRoutes(rg *gin.RouterGroup, betService portssvc.BetSvcFacade) {
	h := newBetHandler(betService)

	bets := rg.Group("/bets")
	{
		bets.GET("", h.listBets)
		bets.POST("", h.placeBet)
		bets.PUT("/:betID", h.updateBet)
	}
}

// listBets godoc
// @Summary List the caller's bets
// @Tags bets
// @Produce json
// @Success 200 {object} dto.ListBetsResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/bets [get]
func (h *betHandler) listBets(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authentication required"})
		return
	}

	bets, err := h.betService.ListBets(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list bets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list bets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBetsResponse(bets))
}

// placeBet godoc
// @Summary Place a tournament-outcome bet
// @Description Creates a bet picking a team for a stage. Only one bet per stage is allowed.
// @Tags bets
// @Accept json
// @Produce json
// @Param bet body dto.CreateBetRequest true "Bet details"
// @Success 201 {object} dto.BetResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 409 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/bets [post]
func (h *betHandler) placeBet(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authentication required"})
		return
	}

	var req dto.CreateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	bet, err := h.betService.PlaceBet(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Selected team not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "A bet for this stage already exists"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to place bet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to place bet"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBetResponse(bet))
}

// updateBet godoc
// @Summary Change the team picked by an existing bet
// @Tags bets
// @Accept json
// @Produce json
// @Param betID path string true "Bet ID"
// @Param bet body dto.UpdateBetRequest true "New team pick"
// @Success 200 {object} dto.BetResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/bets/{betID} [put]
func (h *betHandler) updateBet(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authentication required"})
		return
	}
	betID := c.Param("betID")

	var req dto.UpdateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	bet, err := h.betService.UpdateBet(c.Request.Context(), userID, betID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Bet not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "You can only modify your own bets"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to update bet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to update bet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBetResponse(bet))
}
