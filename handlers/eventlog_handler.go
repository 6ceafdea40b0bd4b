// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"linklet-server/commons"
	"linklet-server/db"
	"linklet-server/middlewares"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
)

func logEvent(userID uint, category models.EventCategory, status models.EventStatus, description string) {
	eventLog := models.EventLog{
		Category:    &category,
		Status:      &status,
		Description: &description,
		UserID:      userID,
	}
	if err := db.Conn.Create(&eventLog).Error; err != nil {
		commons.Logger.Errorf("Failed to create event log: %v", err)
	}
}

func LogAuthEvent(userID uint, status models.EventStatus, description string) {
	logEvent(userID, models.AuthEvent, status, description)
}

func LogSubscriptionEvent(userID uint, status models.EventStatus, description string) {
	logEvent(userID, models.SubscriptionEvent, status, description)
}

func LogCollectionEvent(userID uint, status models.EventStatus, description string) {
	logEvent(userID, models.CollectionEvent, status, description)
}

// GetEventLogsHandler godoc
// @Summary      Get event logs
// @Description  Retrieves the authenticated user's audit trail, newest first, paginated.
// @Tags         event-logs
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        page      query   int     false  "Page number (default 1)"
// @Param        page_size query   int     false  "Page size (default 20, max 100)"
// @Success      200 {object} EventLogListResponse "Paginated list of event logs"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/event-logs [get]
func GetEventLogsHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	page := 1
	pageSize := 20
	if p := c.QueryParam("page"); p != "" {
		if _, err := fmt.Sscanf(p, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}
	if ps := c.QueryParam("page_size"); ps != "" {
		if _, err := fmt.Sscanf(ps, "%d", &pageSize); err != nil || pageSize < 1 {
			pageSize = 20
		}
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var total int64
	if err := db.Conn.Model(&models.EventLog{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		logger.Errorf("Failed to count event logs: %v", err)
		return echo.ErrInternalServerError
	}

	var eventLogs []models.EventLog
	if err := db.Conn.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&eventLogs).Error; err != nil {
		logger.Errorf("Failed to fetch event logs: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]EventLogDetails, 0, len(eventLogs))
	for _, eventLog := range eventLogs {
		detail := EventLogDetails{
			EID:         eventLog.EID.String(),
			Description: eventLog.Description,
			CreatedAt:   eventLog.CreatedAt.Format(time.RFC3339),
		}
		if eventLog.Category != nil {
			category := string(*eventLog.Category)
			detail.Category = &category
		}
		if eventLog.Status != nil {
			status := string(*eventLog.Status)
			detail.Status = &status
		}
		details = append(details, detail)
	}

	return c.JSON(http.StatusOK, EventLogListResponse{
		Data:       details,
		Pagination: paginationDetails(page, pageSize, total),
		Message:    "Event logs retrieved successfully",
	})
}
