// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"linklet-server/crypto"
	"linklet-server/db"
	"linklet-server/events"
	"linklet-server/models"
	"linklet-server/notifications"
	"linklet-server/passwordcheck"

	"github.com/labstack/echo/v4"
)

// SignupHandler godoc
// @Summary      Register a new user
// @Description  Creates a new user account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signupRequest  body  SignupRequest  true  "Signup request payload"
// @Success      201 {object} GenericResponse 	 "Signup successful"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      409 {object} echo.HTTPError     "Duplicate user"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/signup [post]
func SignupHandler(c echo.Context) error {
	logger := c.Logger()

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid signup request payload:", err)
		return echo.ErrBadRequest
	}

	if req.FirstName == "" {
		logger.Error("First name is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "first_name field is required",
		}
	}

	if req.LastName == "" {
		logger.Error("Last name is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "last_name field is required",
		}
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

	if err := passwordcheck.ValidatePassword(c.Request().Context(), req.Password); err != nil {
		logger.Error("Password validation failed: ", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid password: %v", err.Error()),
		}
	}

	count := db.Conn.Where("email = ?", req.Email).First(&models.User{}).RowsAffected
	if count > 0 {
		logger.Errorf("This email is already registered.")
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: "This email is already registered, please try another one.",
		}
	}

	newCrypto := crypto.NewCrypto()
	hash, err := newCrypto.HashPassword(req.Password)
	if err != nil {
		logger.Errorf("Failed to hash password: %v", err)
		return echo.ErrInternalServerError
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
		UserImage: req.UserImage,
	}

	if err := db.Conn.Create(&user).Error; err != nil {
		logger.Errorf("Failed to create user: %v", err)
		return echo.ErrInternalServerError
	}

	LogAuthEvent(user.ID, models.Succeeded, "signup")

	if err := events.DefaultPublisher().Publish(events.UserSignedUp, user.ID, map[string]any{
		"email": user.Email,
	}); err != nil {
		logger.Warnf("Failed to publish signup event: %v", err)
	}

	maxURLs := 0
	if freePlan, ok := planCatalog.Plan(models.FreePlan); ok {
		maxURLs = freePlan.Limits.MaxURLs
	}
	// Best effort: the account exists whether or not the email lands.
	go func() {
		fullName := user.FullName()
		_ = notifications.DispatchNotification(notifications.Email, notifications.SMTP, notifications.NotificationData{
			To:       user.Email,
			ToName:   &fullName,
			Subject:  "Welcome to Linklet",
			Template: "welcome",
			Variables: map[string]any{
				"FirstName": user.FirstName,
				"MaxURLs":   maxURLs,
			},
		})
	}()

	logger.Infof("User signed up successfully")
	return c.JSON(http.StatusCreated, GenericResponse{Message: "Signup successful"})
}
