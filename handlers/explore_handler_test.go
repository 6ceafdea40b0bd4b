// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"linklet-server/db"
	"linklet-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := conn.AutoMigrate(models.AllModels...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	previous := db.Conn
	db.Conn = conn
	t.Cleanup(func() { db.Conn = previous })
}

func seedExploreCollection(t *testing.T, userID uint, title string, description *string, views uint) {
	t.Helper()

	collection := models.Collection{
		Title:        title,
		Description:  description,
		Views:        views,
		Public:       true,
		ExploreByAll: true,
		Template:     "classic",
		UserID:       userID,
	}
	if err := db.Conn.Create(&collection).Error; err != nil {
		t.Fatalf("Failed to seed collection %q: %v", title, err)
	}
}

func callExplore(t *testing.T, query string) ExploreResponse {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/explore"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ExploreHandler(c); err != nil {
		t.Fatalf("ExploreHandler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var response ExploreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	return response
}

func TestExploreSearchMatchesDescription(t *testing.T) {
	testDB(t)

	owner := models.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "irrelevant"}
	if err := db.Conn.Create(&owner).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	description := "A curated list of golang resources"
	seedExploreCollection(t, owner.ID, "Weekend reading", &description, 5)
	seedExploreCollection(t, owner.ID, "Golang tooling", nil, 3)
	seedExploreCollection(t, owner.ID, "Cooking ideas", nil, 9)

	response := callExplore(t, "?search=golang")

	if len(response.Data) != 2 {
		t.Fatalf("Explore search=golang returned %d collections, want 2", len(response.Data))
	}

	// Views descending: the description match has more views than the
	// title match.
	if response.Data[0].Title != "Weekend reading" {
		t.Errorf("First result = %q, want the description match first", response.Data[0].Title)
	}
	if response.Data[1].Title != "Golang tooling" {
		t.Errorf("Second result = %q, want the title match", response.Data[1].Title)
	}
}

func TestExploreOnlyListsOptedInCollections(t *testing.T) {
	testDB(t)

	owner := models.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "irrelevant"}
	if err := db.Conn.Create(&owner).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	seedExploreCollection(t, owner.ID, "Listed", nil, 1)

	unlisted := models.Collection{Title: "Public but unlisted", Public: true, ExploreByAll: false, Template: "classic", UserID: owner.ID}
	if err := db.Conn.Create(&unlisted).Error; err != nil {
		t.Fatalf("Failed to seed collection: %v", err)
	}
	private := models.Collection{Title: "Private", Public: false, ExploreByAll: true, Template: "classic", UserID: owner.ID}
	if err := db.Conn.Create(&private).Error; err != nil {
		t.Fatalf("Failed to seed collection: %v", err)
	}

	response := callExplore(t, "")

	if len(response.Data) != 1 {
		t.Fatalf("Explore returned %d collections, want 1", len(response.Data))
	}
	if response.Data[0].Title != "Listed" {
		t.Errorf("Result = %q, want the opted-in collection", response.Data[0].Title)
	}
	if response.Pagination.Total != 1 {
		t.Errorf("Pagination total = %d, want 1", response.Pagination.Total)
	}
}
