// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"linklet-server/commons"
	"linklet-server/db"
	"linklet-server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// VerifySessionMiddleware authenticates requests with the HS256 session
// JWT issued at login. The token claims carry the session row id, the
// user id, and the opaque session token; all three must match a live
// session row.
func VerifySessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := c.Logger()

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			logger.Error("Authorization header missing or invalid.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Bearer token is required",
			}
		}
		sessionToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")), nil
		})
		if err != nil || !token.Valid {
			logger.Error("Session token validation failed.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired session token, please login again",
			}
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			logger.Error("Unexpected session token claims.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired session token, please login again",
			}
		}

		session := models.Session{}
		err = db.Conn.Where("id = ? AND user_id = ? AND token = ?",
			claims["sid"], claims["uid"], claims["jti"]).First(&session).Error
		if err != nil || session.ExpiresAt == nil || session.ExpiresAt.Before(time.Now()) {
			logger.Error("Session not found or expired.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired session token, please login again",
			}
		}

		now := time.Now()
		session.LastUsedAt = &now
		if err := db.Conn.Save(&session).Error; err != nil {
			logger.Error("Failed to update session LastUsedAt: ", err)
		}

		c.Set("session", session)
		return next(c)
	}
}

// GetAuthenticatedUser resolves the user owning the session the request
// authenticated with.
func GetAuthenticatedUser(c echo.Context) (*models.User, error) {
	session, ok := c.Get("session").(models.Session)
	if !ok {
		return nil, errors.New("no authenticated user found")
	}

	var user models.User
	if err := db.Conn.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
