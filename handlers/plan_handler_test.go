// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linklet-server/models"
	"linklet-server/plans"

	"github.com/labstack/echo/v4"
)

func TestGetPlansHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := GetPlansHandler(c); err != nil {
		t.Fatalf("GetPlansHandler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var response GetPlansResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response.Plans) != 2 {
		t.Fatalf("Plans length = %d, want 2", len(response.Plans))
	}
	if response.Plans[0].Name != "free" {
		t.Errorf("First plan = %s, want free", response.Plans[0].Name)
	}
	if response.Plans[1].Pricing.Monthly != 9.99 {
		t.Errorf("Pro monthly price = %v, want 9.99", response.Plans[1].Pricing.Monthly)
	}
	if !response.Plans[1].Recommended {
		t.Error("Pro plan should be marked recommended")
	}
	if response.Plans[0].Limits.MaxURLs != 10 {
		t.Errorf("Free MaxURLs = %d, want 10", response.Plans[0].Limits.MaxURLs)
	}
}

func TestGetPlansHandlerSubstituteCatalog(t *testing.T) {
	original := planCatalog
	defer SetCatalog(original)

	SetCatalog(plans.NewCatalog(map[models.PlanName]plans.Plan{
		models.FreePlan: {
			Name: "Starter",
			Price: map[models.BillingPeriod]float64{
				models.MonthlyBilling: 0,
				models.YearlyBilling:  0,
			},
			Limits: plans.Limits{MaxURLs: 5, MaxCollections: 1},
		},
	}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := GetPlansHandler(c); err != nil {
		t.Fatalf("GetPlansHandler failed: %v", err)
	}

	var response GetPlansResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response.Plans) != 1 {
		t.Fatalf("Plans length = %d, want 1", len(response.Plans))
	}
	if response.Plans[0].DisplayName != "Starter" {
		t.Errorf("DisplayName = %s, want Starter", response.Plans[0].DisplayName)
	}
	if response.Plans[0].Limits.MaxURLs != 5 {
		t.Errorf("MaxURLs = %d, want 5", response.Plans[0].Limits.MaxURLs)
	}
}
