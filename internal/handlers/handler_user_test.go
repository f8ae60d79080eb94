package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	"github.com/fifabets/fifa_betting_app/internal/dto"
	"github.com/fifabets/fifa_betting_app/internal/middleware"
	"github.com/fifabets/fifa_betting_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
	jwtSecret       string
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockAuthService = new(MockAuthService)

	api := suite.router.Group("/api", middleware.AuthMiddleware(suite.jwtSecret))
	registerUserRoutes(api, suite.mockAuthService)
}

// generateTestToken creates a session token for the test user.
func (suite *UserHandlerTestSuite) generateTestToken(userID, username string) string {
	token, err := utils.GenerateJWT(userID, username, suite.jwtSecret, time.Now().Add(time.Hour), "test-issuer")
	suite.Require().NoError(err)
	return token
}

func (suite *UserHandlerTestSuite) getMe(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_Success() {
	user := &domain.User{
		UserID:    uuid.NewString(),
		Username:  "testuser",
		Email:     "user@example.com",
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	suite.mockAuthService.On("GetCurrentUser", mock.Anything, user.UserID).Return(user, nil).Once()

	w := suite.getMe(suite.generateTestToken(user.UserID, user.Username))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(user.UserID, resp.UserID)
	suite.Equal(user.Username, resp.Username)
	suite.Equal(user.Email, resp.Email)
	suite.True(resp.IsActive)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_ResponseOmitsSecrets() {
	token := "should-never-leak"
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                      uuid.NewString(),
		Username:                    "testuser",
		Email:                       "user@example.com",
		PasswordHash:                "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:                    true,
		PasswordResetToken:          &token,
		PasswordResetTokenExpiresAt: &expiry,
	}

	suite.mockAuthService.On("GetCurrentUser", mock.Anything, user.UserID).Return(user, nil).Once()

	w := suite.getMe(suite.generateTestToken(user.UserID, user.Username))

	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.NotContains(body, user.PasswordHash)
	suite.NotContains(body, token)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_NotFound() {
	userID := uuid.NewString()

	suite.mockAuthService.On("GetCurrentUser", mock.Anything, userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.getMe(suite.generateTestToken(userID, "ghost"))

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("User not found", resp.Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_NoToken() {
	w := suite.getMe("")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "GetCurrentUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_ExpiredToken() {
	expired, err := utils.GenerateJWT(uuid.NewString(), "testuser", suite.jwtSecret, time.Now().Add(-time.Minute), "test-issuer")
	suite.Require().NoError(err)

	w := suite.getMe(expired)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
	suite.mockAuthService.AssertNotCalled(suite.T(), "GetCurrentUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_TamperedToken() {
	forged, err := utils.GenerateJWT(uuid.NewString(), "testuser", "some-other-secret", time.Now().Add(time.Hour), "test-issuer")
	suite.Require().NoError(err)

	w := suite.getMe(forged)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "GetCurrentUser", mock.Anything, mock.Anything)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
