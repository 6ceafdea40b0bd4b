// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"linklet-server/crypto"
	"linklet-server/db"
	"linklet-server/middlewares"
	"linklet-server/models"
	"linklet-server/passwordcheck"
	"linklet-server/plans"

	"github.com/labstack/echo/v4"
)

// GetUserHandler godoc
// @Summary      Get user details
// @Description  Retrieves the details of the authenticated user, including the current plan.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object}  GetUserResponse 	 "User retrieved successfully"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/users/ [get]
func GetUserHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	// Users with no live subscription are on the free plan.
	plan := models.FreePlan
	if user.CurrentSubscriptionID != nil {
		var subscription models.Subscription
		if err := db.Conn.Where("id = ?", *user.CurrentSubscriptionID).First(&subscription).Error; err == nil {
			if plans.IsActive(&subscription) {
				plan = subscription.Plan
			}
		} else {
			logger.Warnf("Failed to resolve current subscription: %v", err)
		}
	}

	return c.JSON(http.StatusOK, GetUserResponse{
		Message:     "User retrieved successfully",
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		UserImage:   user.UserImage,
		Plan:        string(plan),
		URLsCreated: user.URLsCreated,
	})
}

// UserCountHandler godoc
// @Summary      Get active user count
// @Description  Returns the number of active users, or null while the count is 50 or fewer.
// @Tags         users
// @Produce      json
// @Success      200 {object}  UserCountResponse "User count retrieved successfully"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/users/count [get]
func UserCountHandler(c echo.Context) error {
	logger := c.Logger()

	var userCount int64
	if err := db.Conn.Model(&models.User{}).Where("is_active = ?", true).Count(&userCount).Error; err != nil {
		logger.Errorf("Failed to count users: %v", err)
		return echo.ErrInternalServerError
	}

	// The landing page only shows the counter once it is worth bragging
	// about.
	response := UserCountResponse{}
	if userCount > 50 {
		response.Count = &userCount
	}

	return c.JSON(http.StatusOK, response)
}

// ChangePasswordHandler godoc
// @Summary      Change password
// @Description  Changes the authenticated user's password after verifying the current one.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        changePasswordRequest  body  ChangePasswordRequest  true  "Change password request payload"
// @Success      200 {object}  GenericResponse "Password changed successfully"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid password or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/users/password [put]
func ChangePasswordHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid change password request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.CurrentPassword == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "current_password field is required",
		}
	}

	if req.NewPassword == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "new_password field is required",
		}
	}

	newCrypto := crypto.NewCrypto()
	if err := newCrypto.VerifyPassword(req.CurrentPassword, user.Password); err != nil {
		logger.Error("Current password verification failed.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Current password is incorrect",
		}
	}

	if err := passwordcheck.ValidatePassword(c.Request().Context(), req.NewPassword); err != nil {
		logger.Error("New password validation failed: ", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid password: %v", err.Error()),
		}
	}

	hash, err := newCrypto.HashPassword(req.NewPassword)
	if err != nil {
		logger.Errorf("Failed to hash password: %v", err)
		return echo.ErrInternalServerError
	}

	if err := db.Conn.Model(user).Update("password", hash).Error; err != nil {
		logger.Errorf("Failed to update password: %v", err)
		return echo.ErrInternalServerError
	}

	LogAuthEvent(user.ID, models.Succeeded, "password_change")
	return c.JSON(http.StatusOK, GenericResponse{Message: "Password changed successfully"})
}

// DeleteAccountHandler godoc
// @Summary      Delete user account
// @Description  Deletes the authenticated user's account after password confirmation. This action is irreversible and removes all collections, links, sessions, and subscriptions.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        deleteAccountRequest  body  DeleteAccountRequest  true  "Account deletion request payload with password confirmation"
// @Success      200 {object}  GenericResponse "Account deleted successfully"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid password or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/users/ [delete]
func DeleteAccountHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid delete account request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.Password == "" {
		logger.Error("Password is required for account deletion.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	newCrypto := crypto.NewCrypto()
	if err := newCrypto.VerifyPassword(req.Password, user.Password); err != nil {
		logger.Error("Password verification failed for account deletion.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Password is incorrect, please check your password",
		}
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	var collectionIDs []uint
	if err := tx.Model(&models.Collection{}).Where("user_id = ?", user.ID).Pluck("id", &collectionIDs).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to list user collections: %v", err)
		return echo.ErrInternalServerError
	}

	if len(collectionIDs) > 0 {
		if err := tx.Unscoped().Where("collection_id IN ?", collectionIDs).Delete(&models.Link{}).Error; err != nil {
			tx.Rollback()
			logger.Errorf("Failed to delete links: %v", err)
			return echo.ErrInternalServerError
		}
	}

	// Clear the subscription pointer before the rows it references go.
	if err := tx.Model(user).Update("current_subscription_id", nil).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to clear current subscription: %v", err)
		return echo.ErrInternalServerError
	}

	for _, model := range []any{&models.Collection{}, &models.Session{}, &models.EventLog{}, &models.Subscription{}} {
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(model).Error; err != nil {
			tx.Rollback()
			logger.Errorf("Failed to delete user data: %v", err)
			return echo.ErrInternalServerError
		}
	}

	if err := tx.Unscoped().Delete(user).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to delete user: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Account deleted successfully")
	return c.JSON(http.StatusOK, GenericResponse{Message: "Account deleted successfully"})
}
