// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"linklet-server/commons"
	"linklet-server/db"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// swagger:model LandingResponse
type LandingResponse struct {
	// Showcase collections curated by the site administrator
	Collections []CollectionDetails `json:"collections"`
	// Total number of links stored across the showcase collections
	StoredLinkCount int64  `json:"stored_link_count"`
	Message         string `json:"message"`
}

// LandingHandler godoc
// @Summary      Landing page showcase
// @Description  Returns the public collections curated by the site administrator account, used to populate the landing page. No authentication required.
// @Tags         explore
// @Produce      json
// @Success      200 {object} LandingResponse "Showcase retrieved successfully"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/landing/collections [get]
func LandingHandler(c echo.Context) error {
	logger := c.Logger()

	adminEmail := commons.GetEnv("LANDING_ADMIN_EMAIL", "administrator1@linklet.com")

	var admin models.User
	if err := db.Conn.Where("email = ?", adminEmail).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No admin account seeded yet; the landing page just renders
			// empty.
			return c.JSON(http.StatusOK, LandingResponse{
				Collections: []CollectionDetails{},
				Message:     "Showcase retrieved successfully",
			})
		}
		logger.Errorf("Failed to look up admin user: %v", err)
		return echo.ErrInternalServerError
	}

	var collections []models.Collection
	if err := db.Conn.Where("user_id = ? AND public = ?", admin.ID, true).
		Order("created_at ASC").
		Find(&collections).Error; err != nil {
		logger.Errorf("Failed to fetch showcase collections: %v", err)
		return echo.ErrInternalServerError
	}

	var storedLinkCount int64
	details := make([]CollectionDetails, 0, len(collections))
	for i := range collections {
		var linkCount int64
		if err := db.Conn.Model(&models.Link{}).Where("collection_id = ?", collections[i].ID).Count(&linkCount).Error; err != nil {
			logger.Errorf("Failed to count links: %v", err)
			return echo.ErrInternalServerError
		}
		storedLinkCount += linkCount

		detail := collectionDetails(&collections[i], linkCount)
		detail.Creator, detail.CreatorImage = creatorOf(&collections[i], &admin)
		details = append(details, detail)
	}

	return c.JSON(http.StatusOK, LandingResponse{
		Collections:     details,
		StoredLinkCount: storedLinkCount,
		Message:         "Showcase retrieved successfully",
	})
}
