// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"linklet-server/db"
	"linklet-server/middlewares"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func linkDetailsOf(link *models.Link) LinkDetails {
	return LinkDetails{
		LinkID:    link.LinkID,
		Title:     link.Title,
		URL:       link.URL,
		Image:     link.Image,
		Position:  link.Position,
		CreatedAt: link.CreatedAt.Format(time.RFC3339),
		UpdatedAt: link.UpdatedAt.Format(time.RFC3339),
	}
}

func validLinkURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// CreateLinkHandler godoc
// @Summary      Add a link to a collection
// @Description  Creates a new link inside one of the authenticated user's collections.
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        collection_id  path    string  true  "Collection ID"
// @Param        createLinkRequest  body  CreateLinkRequest  true  "Create link request payload"
// @Success      201 {object} LinkResponse "Link created successfully"
// @Failure      400 {object} echo.HTTPError "Bad request, missing or invalid fields"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError "Collection not found"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/collections/{collection_id}/links [post]
func CreateLinkHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	collection, err := ownedCollection(c, user.ID)
	if err != nil {
		return err
	}

	var req CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create link request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.Title == "" || req.URL == "" {
		logger.Error("Title and URL are required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "title and url fields are required",
		}
	}
	if !validLinkURL(req.URL) {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "url must be a valid http or https URL",
		}
	}

	link := models.Link{
		Title:        req.Title,
		URL:          req.URL,
		Image:        req.Image,
		CollectionID: collection.ID,
	}
	if req.Position != nil {
		link.Position = *req.Position
	} else {
		// Append to the end of the collection by default.
		var count int64
		if err := db.Conn.Model(&models.Link{}).Where("collection_id = ?", collection.ID).Count(&count).Error; err != nil {
			logger.Errorf("Failed to count links: %v", err)
			return echo.ErrInternalServerError
		}
		link.Position = uint(count)
	}

	if err := db.Conn.Create(&link).Error; err != nil {
		logger.Errorf("Failed to create link: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Link created successfully.")
	return c.JSON(http.StatusCreated, LinkResponse{
		Link:    linkDetailsOf(&link),
		Message: "Link created successfully",
	})
}

// GetLinksHandler godoc
// @Summary      List links in a collection
// @Description  Retrieves all links stored in one of the authenticated user's collections, ordered by position.
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        collection_id  path    string  true  "Collection ID"
// @Success      200 {object} LinkListResponse "Links retrieved successfully"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError "Collection not found"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/collections/{collection_id}/links [get]
func GetLinksHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	collection, err := ownedCollection(c, user.ID)
	if err != nil {
		return err
	}

	var links []models.Link
	if err := db.Conn.Where("collection_id = ?", collection.ID).
		Order("position ASC, created_at ASC").
		Find(&links).Error; err != nil {
		logger.Errorf("Failed to fetch links: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]LinkDetails, 0, len(links))
	for i := range links {
		details = append(details, linkDetailsOf(&links[i]))
	}

	return c.JSON(http.StatusOK, LinkListResponse{
		Data:    details,
		Message: "Links retrieved successfully",
	})
}

// ownedLink loads a link by public id inside an owned collection.
func ownedLink(c echo.Context, collection *models.Collection) (*models.Link, error) {
	linkID := c.Param("link_id")
	if linkID == "" {
		return nil, &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Link ID is required",
		}
	}

	var link models.Link
	if err := db.Conn.Where("link_id = ? AND collection_id = ?", linkID, collection.ID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			}
		}
		return nil, echo.ErrInternalServerError
	}
	return &link, nil
}

// UpdateLinkHandler godoc
// @Summary      Update a link
// @Description  Updates fields of a link inside one of the authenticated user's collections. Only provided fields change.
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        collection_id  path    string  true  "Collection ID"
// @Param        link_id        path    string  true  "Link ID"
// @Param        updateLinkRequest  body  UpdateLinkRequest  true  "Update link request payload"
// @Success      200 {object} LinkResponse "Link updated successfully"
// @Failure      400 {object} echo.HTTPError "Bad request"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError "Link not found"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/collections/{collection_id}/links/{link_id} [put]
func UpdateLinkHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	collection, err := ownedCollection(c, user.ID)
	if err != nil {
		return err
	}

	link, err := ownedLink(c, collection)
	if err != nil {
		return err
	}

	var req UpdateLinkRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid update link request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.Title != nil {
		if *req.Title == "" {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "title cannot be empty",
			}
		}
		link.Title = *req.Title
	}
	if req.URL != nil {
		if !validLinkURL(*req.URL) {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "url must be a valid http or https URL",
			}
		}
		link.URL = *req.URL
	}
	if req.Image != nil {
		link.Image = req.Image
	}
	if req.Position != nil {
		link.Position = *req.Position
	}

	if err := db.Conn.Save(link).Error; err != nil {
		logger.Errorf("Failed to update link: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, LinkResponse{
		Link:    linkDetailsOf(link),
		Message: "Link updated successfully",
	})
}

// DeleteLinkHandler godoc
// @Summary      Delete a link
// @Description  Deletes a link from one of the authenticated user's collections.
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        collection_id  path    string  true  "Collection ID"
// @Param        link_id        path    string  true  "Link ID"
// @Success      200 {object} GenericResponse "Link deleted successfully"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError "Link not found"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/collections/{collection_id}/links/{link_id} [delete]
func DeleteLinkHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	collection, err := ownedCollection(c, user.ID)
	if err != nil {
		return err
	}

	link, err := ownedLink(c, collection)
	if err != nil {
		return err
	}

	if err := db.Conn.Unscoped().Delete(link).Error; err != nil {
		logger.Errorf("Failed to delete link: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Link deleted successfully.")
	return c.JSON(http.StatusOK, GenericResponse{Message: "Link deleted successfully"})
}
