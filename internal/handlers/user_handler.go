package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartcare/smartcare-api/internal/middleware"
	"github.com/smartcare/smartcare-api/internal/models"
	"github.com/smartcare/smartcare-api/internal/services"
	"github.com/smartcare/smartcare-api/internal/store"
	"github.com/smartcare/smartcare-api/internal/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

type registerResponse struct {
	models.User
	EmailWarning string `json:"email_warning,omitempty"`
}

// RegisterUser creates a user account and sends the welcome email as an
// explicit post-commit step. A failed send never fails the registration; it
// is logged and surfaced in the email_warning field.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Store.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.Logger.Error().Err(err).Msg("register: email lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during registration"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error().Err(err).Msg("register: password hashing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during registration"})
		return
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		h.Logger.Error().Err(err).Msg("register: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during registration"})
		return
	}

	resp := registerResponse{User: user}
	err = h.Mailer.Send(c.Request.Context(), []string{user.Email}, services.TemplateWelcome, services.EmailData{
		UserName: user.Name,
	})
	if err != nil {
		resp.EmailWarning = "welcome email could not be sent"
	}

	h.Logger.Info().Str("email", user.Email).Msg("user registered")
	c.JSON(http.StatusCreated, resp)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues an access/refresh token pair.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("login: access token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during login"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("login: refresh token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during login"})
		return
	}

	h.Logger.Info().Str("email", user.Email).Msg("user logged in")
	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
		"expires_in":    int(utils.AccessTokenTTL.Seconds()),
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken rotates the token pair. The user must still exist; a refresh
// token for a deleted account is rejected here.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": utils.TokenErrorMessage(err)})
		return
	}

	if _, err := h.Store.GetUserByID(c.Request.Context(), userID); err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(userID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("refresh: access token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during token refresh"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(userID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("refresh: refresh token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during token refresh"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
	})
}

// GetCurrentUser returns the profile of the authenticated user. A token for
// a deleted user is only caught here, at lookup time.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, err := h.Store.GetUserByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// TokenStatus confirms the presented access token is valid.
func (h *Handler) TokenStatus(c *gin.Context) {
	user, err := h.Store.GetUserByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"message": "Token is valid",
	})
}

// GetUser looks up any user by id.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.Store.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("get user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}
