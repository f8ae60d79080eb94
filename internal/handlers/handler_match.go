package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
	"github.com/fifabets/fifa_betting_app/internal/dto"
	"github.com/fifabets/fifa_betting_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// matchHandler handles HTTP requests related to matches.
type matchHandler struct {
	matchService portssvc.MatchSvcFacade
}

func newMatchHandler(ms portssvc.MatchSvcFacade) *matchHandler {
	return &matchHandler{matchService: ms}
}

// registerMatchRoutes registers all match-related routes.
func registerMatchRoutes(rg *gin.RouterGroup, matchService portssvc.MatchSvcFacade) {
	h := newMatchHandler(matchService)

	matches := rg.Group("/matches")
	{
		matches.GET("", h.listMatches)
		matches.GET("/:matchID", h.getMatch)
	}
}

// listMatches godoc
// @Summary List matches
// @Description Retrieves the tournament schedule ordered by kickoff time, optionally filtered by stage.
// @Tags matches
// @Produce json
// @Param stage query string false "Stage filter" Enums(GroupStage, Round16, QuarterFinal, SemiFinal, ThirdPlace, Final)
// @Success 200 {object} dto.ListMatchesResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/matches [get]
func (h *matchHandler) listMatches(c *gin.Context) {
	var params dto.ListMatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid stage filter: " + err.Error()})
		return
	}

	matches, err := h.matchService.ListMatches(c.Request.Context(), domain.MatchStage(params.Stage))
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list matches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list matches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMatchesResponse(matches))
}

// getMatch godoc
// @Summary Get a match by ID
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} dto.MatchResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/matches/{matchID} [get]
func (h *matchHandler) getMatch(c *gin.Context) {
	matchID := c.Param("matchID")

	match, err := h.matchService.GetMatchByID(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Match not found"})
		} else {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to get match", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to retrieve match"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponse(match))
}
