// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"linklet-server/db"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
)

// GetTemplatesHandler godoc
// @Summary      List page templates
// @Description  Retrieves all available collection page templates, sorted by name. No authentication required.
// @Tags         templates
// @Produce      json
// @Success      200 {object} TemplateListResponse "Templates retrieved successfully"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/templates [get]
func GetTemplatesHandler(c echo.Context) error {
	logger := c.Logger()

	var templates []models.Template
	if err := db.Conn.Order("name ASC").Find(&templates).Error; err != nil {
		logger.Errorf("Failed to fetch templates: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]TemplateDetails, 0, len(templates))
	for _, template := range templates {
		details = append(details, TemplateDetails{
			TemplateID: template.TemplateID,
			Name:       template.Name,
			Background: template.Background,
			Text:       template.Text,
			Primary:    template.Primary,
			Secondary:  template.Secondary,
			Accent:     template.Accent,
		})
	}

	return c.JSON(http.StatusOK, TemplateListResponse{
		Data:    details,
		Count:   len(details),
		Message: "Templates retrieved successfully",
	})
}
