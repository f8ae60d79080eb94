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

// userHandler handles HTTP requests related to the authenticated user.
type userHandler struct {
	authService portssvc.AuthSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(as portssvc.AuthSvcFacade) *userHandler {
	return &userHandler{authService: as}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newUserHandler(authService)

	user := rg.Group("/user")
	{
		user.GET("/me", h.getCurrentUser)
	}
}

// getCurrentUser godoc
// @Summary Get current logged-in user information
// @Description Returns the public view of the account behind the session token.
// @Tags user
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /api/user/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid token"})
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		} else {
			logger.Error("Failed to get current user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "An error occurred while retrieving user information"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
