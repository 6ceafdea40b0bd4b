// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"linklet-server/db"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
)

// LogoutHandler godoc
// @Summary      Logout the current session
// @Description  Deletes the session the request authenticated with, invalidating its token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object} GenericResponse "Logout successful"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/logout [post]
func LogoutHandler(c echo.Context) error {
	logger := c.Logger()

	session, ok := c.Get("session").(models.Session)
	if !ok {
		logger.Error("Session not found in context.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired session token, please login again",
		}
	}

	if err := db.Conn.Unscoped().Delete(&session).Error; err != nil {
		logger.Errorf("Failed to delete session: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Session %d deleted successfully", session.ID)
	return c.JSON(http.StatusOK, GenericResponse{Message: "Logout successful"})
}
