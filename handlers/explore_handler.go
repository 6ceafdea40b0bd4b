// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"linklet-server/db"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ExploreHandler godoc
// @Summary      Browse public collections
// @Description  Lists collections that are public and opted into the explore page, most viewed first. Supports pagination and title search. No authentication required.
// @Tags         explore
// @Produce      json
// @Param        page      query  int     false  "Page number (default 1)"
// @Param        limit     query  int     false  "Page size (default 12, max 50)"
// @Param        search    query  string  false  "Case-insensitive search over title and description"
// @Success      200 {object} ExploreResponse "Collections retrieved successfully"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/explore [get]
func ExploreHandler(c echo.Context) error {
	logger := c.Logger()

	page := 1
	limit := 12
	if raw := c.QueryParam("page"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &limit); err != nil || limit < 1 {
			limit = 12
		}
	}
	if limit > 50 {
		limit = 50
	}

	search := c.QueryParam("search")
	listed := func() *gorm.DB {
		q := db.Conn.Model(&models.Collection{}).
			Where("public = ? AND explore_by_all = ?", true, true)
		if search != "" {
			pattern := "%" + search + "%"
			q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
		}
		return q
	}

	var total int64
	if err := listed().Count(&total).Error; err != nil {
		logger.Errorf("Failed to count explore collections: %v", err)
		return echo.ErrInternalServerError
	}

	var collections []models.Collection
	if err := listed().
		Order("views DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&collections).Error; err != nil {
		logger.Errorf("Failed to fetch explore collections: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]CollectionDetails, 0, len(collections))
	for i := range collections {
		var linkCount int64
		if err := db.Conn.Model(&models.Link{}).Where("collection_id = ?", collections[i].ID).Count(&linkCount).Error; err != nil {
			logger.Errorf("Failed to count links: %v", err)
			return echo.ErrInternalServerError
		}

		var owner models.User
		if err := db.Conn.Where("id = ?", collections[i].UserID).First(&owner).Error; err != nil {
			logger.Warnf("Failed to resolve collection owner: %v", err)
		}

		detail := collectionDetails(&collections[i], linkCount)
		detail.Creator, detail.CreatorImage = creatorOf(&collections[i], &owner)
		details = append(details, detail)
	}

	return c.JSON(http.StatusOK, ExploreResponse{
		Data:       details,
		Pagination: paginationDetails(page, limit, total),
		Message:    "Collections retrieved successfully",
	})
}
