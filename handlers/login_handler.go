// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"time"

	"linklet-server/commons"
	"linklet-server/crypto"
	"linklet-server/db"
	"linklet-server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LoginHandler godoc
// @Summary      Login a user
// @Description  Authenticates a user and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login request payload"
// @Success      200 {object} AuthResponse 	 "Login successful"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/login [post]
func LoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return echo.ErrBadRequest
	}

	if req.Email == "" {
		logger.Error("Email is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "email field is required",
		}
	}

	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	newCrypto := crypto.NewCrypto()
	user := models.User{}
	err := db.Conn.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("User not found.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Credentials are incorrect, please check your email and password",
			}
		}

		logger.Errorf("Failed to find user: %v", err)
		return echo.ErrInternalServerError
	}

	if err := newCrypto.VerifyPassword(req.Password, user.Password); err != nil {
		logger.Error("Password verification failed.")
		LogAuthEvent(user.ID, models.Failed, "login")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Credentials are incorrect, please check your email and password",
		}
	}

	sessionToken, err := crypto.GenerateRandomString("st_", 32, "hex")
	if err != nil {
		logger.Errorf("Failed to generate session token: %v", err)
		return echo.ErrInternalServerError
	}

	sessionExp := time.Now().Add(30 * 24 * time.Hour)
	sessionLastUsed := time.Now()
	ipAddress := c.RealIP()
	userAgent := c.Request().UserAgent()

	session := models.Session{
		Token:      sessionToken,
		IPAddress:  &ipAddress,
		UserAgent:  &userAgent,
		LastUsedAt: &sessionLastUsed,
		ExpiresAt:  &sessionExp,
		UserID:     user.ID,
	}
	if err := db.Conn.Create(&session).Error; err != nil {
		logger.Errorf("Failed to create session: %v", err)
		return echo.ErrInternalServerError
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "https://linklet.com",
		"iat": time.Now().Unix(),
		"sub": user.Email,
		"aud": "https://api.linklet.com",
		"jti": sessionToken,
		"sid": session.ID,
		"uid": user.ID,
		"exp": sessionExp.Unix(),
	})
	tokenString, err := token.SignedString([]byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")))
	if err != nil {
		logger.Errorf("Failed to sign token: %v", err)
		return echo.ErrInternalServerError
	}

	LogAuthEvent(user.ID, models.Succeeded, "login")
	return c.JSON(http.StatusOK, AuthResponse{SessionToken: tokenString, Message: "Login successful"})
}
