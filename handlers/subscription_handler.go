// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"linklet-server/events"
	"linklet-server/middlewares"
	"linklet-server/models"
	"linklet-server/notifications"
	"linklet-server/plans"

	"github.com/labstack/echo/v4"
)

func subscriptionDetails(subscription *models.Subscription) SubscriptionDetails {
	detail := SubscriptionDetails{
		SubscriptionID:     subscription.SubscriptionID,
		Plan:               string(subscription.Plan),
		BillingPeriod:      string(subscription.BillingPeriod),
		Status:             string(subscription.Status),
		StartDate:          subscription.StartDate.Format(time.RFC3339),
		EndDate:            subscription.EndDate.Format(time.RFC3339),
		Amount:             subscription.Amount,
		Currency:           subscription.Currency,
		CancellationReason: subscription.CancellationReason,
		IsActive:           plans.IsActive(subscription),
	}
	if subscription.CancelledAt != nil {
		cancelledAt := subscription.CancelledAt.Format(time.RFC3339)
		detail.CancelledAt = &cancelledAt
	}
	return detail
}

// GetSubscriptionHandler godoc
// @Summary      Get subscription state
// @Description  Returns the authenticated user's current subscription and full subscription history, oldest first.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object} GetSubscriptionResponse "Subscription retrieved successfully"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/subscriptions [get]
func GetSubscriptionHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	view, err := subscriptionService().GetUserSubscription(user.ID)
	if err != nil {
		logger.Errorf("Failed to resolve subscription: %v", err)
		return echo.ErrInternalServerError
	}

	response := GetSubscriptionResponse{
		History: make([]SubscriptionDetails, 0, len(view.History)),
		Message: "Subscription retrieved successfully",
	}
	if view.Current != nil {
		current := subscriptionDetails(view.Current)
		response.Current = &current
	}
	for i := range view.History {
		response.History = append(response.History, subscriptionDetails(&view.History[i]))
	}

	return c.JSON(http.StatusOK, response)
}

// CreateSubscriptionHandler godoc
// @Summary      Subscribe to a plan
// @Description  Creates a new subscription for the authenticated user and makes it their current one. The previous subscription, if any, stays in the history.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        createSubscriptionRequest  body  CreateSubscriptionRequest  true  "Create subscription request payload"
// @Success      201 {object} CreateSubscriptionResponse "Subscription created successfully"
// @Failure      400 {object} echo.HTTPError "Bad request, unknown plan or billing period"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/subscriptions [post]
func CreateSubscriptionHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create subscription request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	plan := models.PlanName(req.Plan)
	if _, ok := planCatalog.Plan(plan); !ok {
		logger.Errorf("Unknown plan: %s", req.Plan)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Unknown plan, must be one of: free, pro",
		}
	}

	period := models.BillingPeriod(req.BillingPeriod)
	if period != models.MonthlyBilling && period != models.YearlyBilling {
		logger.Errorf("Unknown billing period: %s", req.BillingPeriod)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Unknown billing period, must be one of: monthly, yearly",
		}
	}

	subscription, err := subscriptionService().Create(user.ID, plan, period)
	if err != nil {
		logger.Errorf("Failed to create subscription: %v", err)
		LogSubscriptionEvent(user.ID, models.Failed, "subscription_create")
		return echo.ErrInternalServerError
	}

	LogSubscriptionEvent(user.ID, models.Succeeded, "subscription_create")

	if err := events.DefaultPublisher().Publish(events.SubscriptionCreated, user.ID, map[string]any{
		"subscription_id": subscription.SubscriptionID,
		"plan":            subscription.Plan,
		"billing_period":  subscription.BillingPeriod,
		"amount":          subscription.Amount,
	}); err != nil {
		logger.Warnf("Failed to publish subscription event: %v", err)
	}

	// Best effort: the subscription exists whether or not the email lands.
	go func() {
		fullName := user.FullName()
		_ = notifications.DispatchNotification(notifications.Email, notifications.SMTP, notifications.NotificationData{
			To:       user.Email,
			ToName:   &fullName,
			Subject:  "Your Linklet subscription is active",
			Template: "subscription_created",
			Variables: map[string]any{
				"FirstName":     user.FirstName,
				"PlanName":      subscription.Plan,
				"BillingPeriod": subscription.BillingPeriod,
				"Amount":        subscription.Amount,
				"Currency":      subscription.Currency,
				"EndDate":       subscription.EndDate.Format("January 2, 2006"),
			},
		})
	}()

	logger.Infof("Subscription created successfully.")
	return c.JSON(http.StatusCreated, CreateSubscriptionResponse{
		Subscription: subscriptionDetails(subscription),
		Message:      "Subscription created successfully",
	})
}

// CancelSubscriptionHandler godoc
// @Summary      Cancel a subscription
// @Description  Cancels one of the authenticated user's subscriptions. The record stays in the history and remains the current subscription until a new one is created.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        subscription_id  path  string  true  "Subscription ID"
// @Param        cancelSubscriptionRequest  body  CancelSubscriptionRequest  false  "Cancel subscription request payload"
// @Success      200 {object} GenericResponse "Subscription cancelled successfully"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError "Subscription not found"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/subscriptions/{subscription_id} [delete]
func CancelSubscriptionHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	subscriptionID := c.Param("subscription_id")
	if subscriptionID == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Subscription ID is required",
		}
	}

	// The body is optional; a missing or empty one just means no reason.
	var req CancelSubscriptionRequest
	_ = c.Bind(&req)

	// Ownership check before the cancel touches anything.
	view, err := subscriptionService().GetUserSubscription(user.ID)
	if err != nil {
		logger.Errorf("Failed to resolve subscription: %v", err)
		return echo.ErrInternalServerError
	}
	owned := false
	for i := range view.History {
		if view.History[i].SubscriptionID == subscriptionID {
			owned = true
			break
		}
	}
	if !owned {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Subscription not found",
		}
	}

	subscription, err := subscriptionService().Cancel(subscriptionID, req.Reason)
	if err != nil {
		logger.Errorf("Failed to cancel subscription: %v", err)
		LogSubscriptionEvent(user.ID, models.Failed, "subscription_cancel")
		return echo.ErrInternalServerError
	}
	if subscription == nil {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Subscription not found",
		}
	}

	LogSubscriptionEvent(user.ID, models.Succeeded, "subscription_cancel")

	if err := events.DefaultPublisher().Publish(events.SubscriptionCancelled, user.ID, map[string]any{
		"subscription_id": subscription.SubscriptionID,
		"plan":            subscription.Plan,
	}); err != nil {
		logger.Warnf("Failed to publish cancellation event: %v", err)
	}

	go func() {
		fullName := user.FullName()
		_ = notifications.DispatchNotification(notifications.Email, notifications.SMTP, notifications.NotificationData{
			To:       user.Email,
			ToName:   &fullName,
			Subject:  "Your Linklet subscription was cancelled",
			Template: "subscription_cancelled",
			Variables: map[string]any{
				"FirstName": user.FirstName,
				"PlanName":  subscription.Plan,
				"EndDate":   subscription.EndDate.Format("January 2, 2006"),
			},
		})
	}()

	logger.Infof("Subscription cancelled successfully.")
	return c.JSON(http.StatusOK, GenericResponse{Message: "Subscription cancelled successfully"})
}
