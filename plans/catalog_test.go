// SPDX-License-Identifier: GPL-3.0-only

package plans

import (
	"testing"
	"time"

	"linklet-server/models"
)

func TestDefaultCatalogPrices(t *testing.T) {
	catalog := Default()

	cases := []struct {
		plan   models.PlanName
		period models.BillingPeriod
		want   float64
	}{
		{models.FreePlan, models.MonthlyBilling, 0},
		{models.FreePlan, models.YearlyBilling, 0},
		{models.ProPlan, models.MonthlyBilling, 9.99},
		{models.ProPlan, models.YearlyBilling, 99.99},
	}

	for _, tc := range cases {
		got := catalog.Price(tc.plan, tc.period)
		if got != tc.want {
			t.Errorf("Price(%s, %s) = %v, want %v", tc.plan, tc.period, got, tc.want)
		}
	}
}

func TestPriceUnknownPlanPanics(t *testing.T) {
	catalog := Default()

	defer func() {
		if recover() == nil {
			t.Error("Price should panic for an unknown plan")
		}
	}()
	catalog.Price("enterprise", models.MonthlyBilling)
}

func TestPriceUnknownPeriodPanics(t *testing.T) {
	catalog := Default()

	defer func() {
		if recover() == nil {
			t.Error("Price should panic for an unknown billing period")
		}
	}()
	catalog.Price(models.ProPlan, "weekly")
}

func TestDefaultCatalogLimits(t *testing.T) {
	catalog := Default()

	free, ok := catalog.Plan(models.FreePlan)
	if !ok {
		t.Fatal("Free plan missing from default catalog")
	}
	if free.Limits.MaxURLs != 10 {
		t.Errorf("Free MaxURLs = %d, want 10", free.Limits.MaxURLs)
	}
	if free.Limits.MaxCollections != 3 {
		t.Errorf("Free MaxCollections = %d, want 3", free.Limits.MaxCollections)
	}

	pro, ok := catalog.Plan(models.ProPlan)
	if !ok {
		t.Fatal("Pro plan missing from default catalog")
	}
	if pro.Limits.MaxURLs != Unlimited {
		t.Errorf("Pro MaxURLs = %d, want Unlimited", pro.Limits.MaxURLs)
	}
	if pro.Limits.MaxCollections != Unlimited {
		t.Errorf("Pro MaxCollections = %d, want Unlimited", pro.Limits.MaxCollections)
	}
}

func TestPeriodEndMonthly(t *testing.T) {
	catalog := Default()

	cases := []struct {
		from string
		want string
	}{
		{"2024-03-15", "2024-04-15"},
		// Jan 31 has no counterpart in February; AddDate normalizes
		// forward into March.
		{"2024-01-31", "2024-03-02"},
		{"2024-08-31", "2024-10-01"},
	}

	for _, tc := range cases {
		from, err := time.Parse("2006-01-02", tc.from)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", tc.from, err)
		}
		got := catalog.PeriodEnd(models.MonthlyBilling, from)
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("PeriodEnd(monthly, %s) = %s, want %s", tc.from, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestPeriodEndYearly(t *testing.T) {
	catalog := Default()

	from, err := time.Parse("2006-01-02", "2024-01-31")
	if err != nil {
		t.Fatalf("Failed to parse date: %v", err)
	}
	got := catalog.PeriodEnd(models.YearlyBilling, from)
	if got.Format("2006-01-02") != "2025-01-31" {
		t.Errorf("PeriodEnd(yearly, 2024-01-31) = %s, want 2025-01-31", got.Format("2006-01-02"))
	}
}

func TestIsActive(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	cases := []struct {
		name         string
		subscription *models.Subscription
		want         bool
	}{
		{"nil subscription", nil, false},
		{"active and not past end", &models.Subscription{Status: models.ActiveSubscription, EndDate: future}, true},
		{"active but past end", &models.Subscription{Status: models.ActiveSubscription, EndDate: past}, false},
		{"cancelled before end", &models.Subscription{Status: models.CancelledSubscription, EndDate: future}, false},
		{"cancelled and past end", &models.Subscription{Status: models.CancelledSubscription, EndDate: past}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsActive(tc.subscription); got != tc.want {
				t.Errorf("IsActive = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanCreateURL(t *testing.T) {
	catalog := Default()
	future := time.Now().Add(24 * time.Hour)

	proSubscription := &models.Subscription{
		Plan:    models.ProPlan,
		Status:  models.ActiveSubscription,
		EndDate: future,
	}

	cases := []struct {
		name string
		user *models.User
		want bool
	}{
		{"nil user", nil, false},
		{"no subscription under limit", &models.User{URLsCreated: 9}, true},
		{"no subscription at limit", &models.User{URLsCreated: 10}, false},
		{"no subscription over limit", &models.User{URLsCreated: 42}, false},
		{"pro subscriber", &models.User{URLsCreated: 1000, CurrentSubscription: proSubscription}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.CanCreateURL(tc.user); got != tc.want {
				t.Errorf("CanCreateURL = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanCreateURLSubstituteCatalog(t *testing.T) {
	catalog := NewCatalog(map[models.PlanName]Plan{
		models.FreePlan: {
			Name:   "Free",
			Limits: Limits{MaxURLs: 2, MaxCollections: 1},
		},
	})

	if !catalog.CanCreateURL(&models.User{URLsCreated: 1}) {
		t.Error("User under the substitute limit should be entitled")
	}
	if catalog.CanCreateURL(&models.User{URLsCreated: 2}) {
		t.Error("User at the substitute limit should not be entitled")
	}
}

func TestNamesFreeFirst(t *testing.T) {
	catalog := Default()

	names := catalog.Names()
	if len(names) != 2 {
		t.Fatalf("Names returned %d plans, want 2", len(names))
	}
	if names[0] != models.FreePlan {
		t.Errorf("First plan = %s, want free", names[0])
	}
}

func TestNamesStableOrder(t *testing.T) {
	catalog := NewCatalog(map[models.PlanName]Plan{
		"team":          {Name: "Team"},
		models.ProPlan:  {Name: "Pro"},
		models.FreePlan: {Name: "Free"},
	})

	want := []models.PlanName{models.FreePlan, models.ProPlan, "team"}
	for i := 0; i < 20; i++ {
		names := catalog.Names()
		if len(names) != len(want) {
			t.Fatalf("Names returned %d plans, want %d", len(names), len(want))
		}
		for j := range want {
			if names[j] != want[j] {
				t.Fatalf("Names()[%d] = %s, want %s", j, names[j], want[j])
			}
		}
	}
}
