// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"time"

	"linklet-server/db"
	"linklet-server/events"
	"linklet-server/middlewares"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func collectionDetails(collection *models.Collection, linkCount int64) CollectionDetails {
	return CollectionDetails{
		CollectionID: collection.CollectionID,
		Title:        collection.Title,
		Description:  collection.Description,
		Image:        collection.Image,
		Views:        collection.Views,
		Public:       collection.Public,
		ExploreByAll: collection.ExploreByAll,
		Template:     collection.Template,
		LinkCount:    linkCount,
		CreatedAt:    collection.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    collection.UpdatedAt.Format(time.RFC3339),
	}
}

// creatorOf resolves the display identity of a collection: the alias when
// one is set, otherwise the owner's real name and avatar.
func creatorOf(collection *models.Collection, owner *models.User) (string, *string) {
	if collection.AliasName != nil {
		return *collection.AliasName, collection.AliasImage
	}
	if owner != nil {
		return owner.FullName(), owner.UserImage
	}
	return "", nil
}

// CreateCollectionHandler godoc
// @Summary      Create a collection
// @Description  Creates a new link collection for the authenticated user, subject to the plan's collection limit.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        createCollectionRequest  body  CreateCollectionRequest  true  "Create collection request payload"
// @Success      201 {object} CollectionResponse "Collection created successfully"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      403 {object} echo.HTTPError     "Plan limit reached"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/collections [post]
func CreateCollectionHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req CreateCollectionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create collection request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.Title == "" {
		logger.Error("Title is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "title field is required",
		}
	}

	// Entitlement check needs the current subscription resolved.
	if err := db.Conn.Preload("CurrentSubscription").Where("id = ?", user.ID).First(user).Error; err != nil {
		logger.Errorf("Failed to reload user: %v", err)
		return echo.ErrInternalServerError
	}

	if !planCatalog.CanCreateURL(user) {
		logger.Warnf("Collection limit reached for user %d", user.ID)
		return &echo.HTTPError{
			Code:    http.StatusForbidden,
			Message: "You have reached your plan's collection limit. Upgrade to Pro for unlimited collections.",
		}
	}

	template := req.Template
	if template == "" {
		template = "classic"
	}
	if err := db.Conn.Where("template_id = ?", template).First(&models.Template{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Unknown template",
			}
		}
		logger.Errorf("Failed to look up template: %v", err)
		return echo.ErrInternalServerError
	}

	collection := models.Collection{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Public:       req.Public,
		ExploreByAll: req.ExploreByAll,
		Template:     template,
		AliasName:    req.AliasName,
		AliasImage:   req.AliasImage,
		UserID:       user.ID,
	}

	err = db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&collection).Error; err != nil {
			return err
		}
		// Lifetime counter drives the free plan quota; it never goes
		// back down.
		return tx.Model(user).Update("urls_created", gorm.Expr("urls_created + 1")).Error
	})
	if err != nil {
		logger.Errorf("Failed to create collection: %v", err)
		return echo.ErrInternalServerError
	}

	LogCollectionEvent(user.ID, models.Succeeded, "collection_created")
	if err := events.DefaultPublisher().Publish(events.CollectionCreated, user.ID, map[string]any{
		"collection_id": collection.CollectionID,
	}); err != nil {
		logger.Warnf("Failed to publish collection event: %v", err)
	}

	logger.Infof("Collection created successfully.")
	detail := collectionDetails(&collection, 0)
	detail.Creator, detail.CreatorImage = creatorOf(&collection, user)
	return c.JSON(http.StatusCreated, CollectionResponse{
		Collection: detail,
		Message:    "Collection created successfully",
	})
}

// GetCollectionsHandler godoc
// @Summary      List own collections
// @Description  Retrieves all collections owned by the authenticated user, newest first.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object} CollectionListResponse "Collections retrieved successfully"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/collections [get]
func GetCollectionsHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var collections []models.Collection
	if err := db.Conn.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&collections).Error; err != nil {
		logger.Errorf("Failed to fetch collections: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]CollectionDetails, 0, len(collections))
	for i := range collections {
		var linkCount int64
		if err := db.Conn.Model(&models.Link{}).Where("collection_id = ?", collections[i].ID).Count(&linkCount).Error; err != nil {
			logger.Errorf("Failed to count links: %v", err)
			return echo.ErrInternalServerError
		}
		detail := collectionDetails(&collections[i], linkCount)
		detail.Creator, detail.CreatorImage = creatorOf(&collections[i], user)
		details = append(details, detail)
	}

	return c.JSON(http.StatusOK, CollectionListResponse{
		Data:    details,
		Message: "Collections retrieved successfully",
	})
}

// ownedCollection loads a collection by public id and verifies ownership.
func ownedCollection(c echo.Context, userID uint) (*models.Collection, error) {
	collectionID := c.Param("collection_id")
	if collectionID == "" {
		return nil, &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Collection ID is required",
		}
	}

	var collection models.Collection
	if err := db.Conn.Where("collection_id = ? AND user_id = ?", collectionID, userID).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "Collection not found",
			}
		}
		return nil, echo.ErrInternalServerError
	}
	return &collection, nil
}

// GetCollectionHandler godoc
// @Summary      Get a collection
// @Description  Retrieves one of the authenticated user's collections by its public ID.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        collection_id  path    string  true  "Collection ID"
// @Success      200 {object} CollectionResponse "Collection retrieved successfully"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError     "Collection not found"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/collections/{collection_id} [get]
func GetCollectionHandler(c echo.Context) error {
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

	var linkCount int64
	if err := db.Conn.Model(&models.Link{}).Where("collection_id = ?", collection.ID).Count(&linkCount).Error; err != nil {
		logger.Errorf("Failed to count links: %v", err)
		return echo.ErrInternalServerError
	}

	detail := collectionDetails(collection, linkCount)
	detail.Creator, detail.CreatorImage = creatorOf(collection, user)
	return c.JSON(http.StatusOK, CollectionResponse{
		Collection: detail,
		Message:    "Collection retrieved successfully",
	})
}

// UpdateCollectionHandler godoc
// @Summary      Update a collection
// @Description  Updates fields of one of the authenticated user's collections. Only provided fields change.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        collection_id  path    string  true  "Collection ID"
// @Param        updateCollectionRequest  body  UpdateCollectionRequest  true  "Update collection request payload"
// @Success      200 {object} CollectionResponse "Collection updated successfully"
// @Failure      400 {object} echo.HTTPError     "Bad request"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError     "Collection not found"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/collections/{collection_id} [put]
func UpdateCollectionHandler(c echo.Context) error {
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

	var req UpdateCollectionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid update collection request payload:", err)
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
		collection.Title = *req.Title
	}
	if req.Description != nil {
		collection.Description = req.Description
	}
	if req.Image != nil {
		collection.Image = req.Image
	}
	if req.Public != nil {
		collection.Public = *req.Public
	}
	if req.ExploreByAll != nil {
		collection.ExploreByAll = *req.ExploreByAll
	}
	if req.Template != nil {
		if err := db.Conn.Where("template_id = ?", *req.Template).First(&models.Template{}).Error; err != nil {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Unknown template",
			}
		}
		collection.Template = *req.Template
	}
	if req.AliasName != nil {
		collection.AliasName = req.AliasName
	}
	if req.AliasImage != nil {
		collection.AliasImage = req.AliasImage
	}

	if err := db.Conn.Save(collection).Error; err != nil {
		logger.Errorf("Failed to update collection: %v", err)
		return echo.ErrInternalServerError
	}

	var linkCount int64
	if err := db.Conn.Model(&models.Link{}).Where("collection_id = ?", collection.ID).Count(&linkCount).Error; err != nil {
		logger.Errorf("Failed to count links: %v", err)
		return echo.ErrInternalServerError
	}

	detail := collectionDetails(collection, linkCount)
	detail.Creator, detail.CreatorImage = creatorOf(collection, user)
	return c.JSON(http.StatusOK, CollectionResponse{
		Collection: detail,
		Message:    "Collection updated successfully",
	})
}

// DeleteCollectionHandler godoc
// @Summary      Delete a collection
// @Description  Deletes one of the authenticated user's collections and all links stored in it. Does not free up free-plan quota.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        collection_id  path    string  true  "Collection ID"
// @Success      200 {object} GenericResponse "Collection deleted successfully"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      404 {object} echo.HTTPError     "Collection not found"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/collections/{collection_id} [delete]
func DeleteCollectionHandler(c echo.Context) error {
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

	err = db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("collection_id = ?", collection.ID).Delete(&models.Link{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(collection).Error
	})
	if err != nil {
		logger.Errorf("Failed to delete collection: %v", err)
		return echo.ErrInternalServerError
	}

	LogCollectionEvent(user.ID, models.Succeeded, "collection_deleted")
	logger.Infof("Collection deleted successfully.")
	return c.JSON(http.StatusOK, GenericResponse{Message: "Collection deleted successfully"})
}

// PublicCollectionHandler godoc
// @Summary      View a public collection
// @Description  Retrieves a public collection page by its public ID and counts the view. No authentication required.
// @Tags         collections
// @Produce      json
// @Param        collection_id  path    string  true  "Collection ID"
// @Success      200 {object} PublicCollectionResponse "Collection retrieved successfully"
// @Failure      404 {object} echo.HTTPError     "Collection not found"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/c/{collection_id} [get]
func PublicCollectionHandler(c echo.Context) error {
	logger := c.Logger()

	collectionID := c.Param("collection_id")

	var collection models.Collection
	if err := db.Conn.Where("collection_id = ? AND public = ?", collectionID, true).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "Collection not found",
			}
		}
		logger.Errorf("Failed to fetch collection: %v", err)
		return echo.ErrInternalServerError
	}

	if err := db.Conn.Model(&collection).Update("views", gorm.Expr("views + 1")).Error; err != nil {
		logger.Warnf("Failed to count view: %v", err)
	}
	collection.Views++

	var links []models.Link
	if err := db.Conn.Where("collection_id = ?", collection.ID).
		Order("position ASC, created_at ASC").
		Find(&links).Error; err != nil {
		logger.Errorf("Failed to fetch links: %v", err)
		return echo.ErrInternalServerError
	}

	linkDetails := make([]LinkDetails, 0, len(links))
	for i := range links {
		linkDetails = append(linkDetails, linkDetailsOf(&links[i]))
	}

	var owner models.User
	if err := db.Conn.Where("id = ?", collection.UserID).First(&owner).Error; err != nil {
		logger.Warnf("Failed to resolve collection owner: %v", err)
	}

	detail := collectionDetails(&collection, int64(len(links)))
	detail.Creator, detail.CreatorImage = creatorOf(&collection, &owner)

	response := PublicCollectionResponse{
		Collection: detail,
		Links:      linkDetails,
	}

	var template models.Template
	if err := db.Conn.Where("template_id = ?", collection.Template).First(&template).Error; err == nil {
		response.Template = &TemplateDetails{
			TemplateID: template.TemplateID,
			Name:       template.Name,
			Background: template.Background,
			Text:       template.Text,
			Primary:    template.Primary,
			Secondary:  template.Secondary,
			Accent:     template.Accent,
		}
	}

	return c.JSON(http.StatusOK, response)
}
