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

// teamHandler handles HTTP requests related to teams.
type teamHandler struct {
	teamService portssvc.TeamSvcFacade
}

func newTeamHandler(ts portssvc.TeamSvcFacade) *teamHandler {
	return &teamHandler{teamService: ts}
}

// registerTeamRoutes registers all team-related routes.
func registerTeamRoutes(rg *gin.RouterGroup, teamService portssvc.TeamSvcFacade) {
	h := newTeamHandler(teamService)

	teams := rg.Group("/teams")
	{
		teams.GET("", h.listTeams)
		teams.GET("/:teamID", h.getTeam)
	}
}

// listTeams godoc
// @Summary List teams
// @Description Retrieves all tournament teams ordered by group and name.
// @Tags teams
// @Produce json
// @Success 200 {object} dto.ListTeamsResponse
// @Failure 401 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/teams [get]
func (h *teamHandler) listTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list teams", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to list teams"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeamsResponse(teams))
}

// getTeam godoc
// @Summary Get a team by ID
// @Tags teams
// @Produce json
// @Param teamID path string true "Team ID"
// @Success 200 {object} dto.TeamResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/teams/{teamID} [get]
func (h *teamHandler) getTeam(c *gin.Context) {
	teamID := c.Param("teamID")

	team, err := h.teamService.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Team not found"})
		} else {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to get team", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to retrieve team"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamResponse(team))
}
