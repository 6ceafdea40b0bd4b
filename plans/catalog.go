// SPDX-License-Identifier: GPL-3.0-only

// Package plans holds the plan catalog: the single source of truth for
// plan pricing, usage limits, and entitlement checks. The catalog is an
// immutable value constructed once at startup and injected wherever plan
// economics are needed, so tests can substitute alternate tables.
package plans

import (
	"fmt"
	"sort"
	"time"

	"linklet-server/models"
)

// Unlimited marks a limit that is never enforced.
const Unlimited = -1

type Limits struct {
	MaxURLs        int
	MaxCollections int
}

type Plan struct {
	Name     string
	Price    map[models.BillingPeriod]float64
	Limits   Limits
	Features []string
}

type Catalog struct {
	plans map[models.PlanName]Plan
}

// Default returns the production catalog. Prices and limits are constants;
// there is exactly one entry per plan name.
func Default() Catalog {
	return Catalog{plans: map[models.PlanName]Plan{
		models.FreePlan: {
			Name: "Free",
			Price: map[models.BillingPeriod]float64{
				models.MonthlyBilling: 0,
				models.YearlyBilling:  0,
			},
			Limits: Limits{MaxURLs: 10, MaxCollections: 3},
			Features: []string{
				"Basic URL shortening",
				"Collections",
				"Basic analytics",
			},
		},
		models.ProPlan: {
			Name: "Pro",
			Price: map[models.BillingPeriod]float64{
				models.MonthlyBilling: 9.99,
				models.YearlyBilling:  99.99,
			},
			Limits: Limits{MaxURLs: Unlimited, MaxCollections: Unlimited},
			Features: []string{
				"Unlimited URLs",
				"Unlimited collections",
				"Advanced analytics",
				"Custom domains",
				"Priority support",
				"API access",
			},
		},
	}}
}

// NewCatalog builds a catalog from an explicit plan table. Intended for
// tests that need different prices or limits.
func NewCatalog(plans map[models.PlanName]Plan) Catalog {
	return Catalog{plans: plans}
}

// Plan returns the catalog entry for a plan name.
func (c Catalog) Plan(name models.PlanName) (Plan, bool) {
	plan, ok := c.plans[name]
	return plan, ok
}

// Names returns the plan names in display order: free first, the rest
// sorted alphabetically so the order is stable across calls.
func (c Catalog) Names() []models.PlanName {
	names := make([]models.PlanName, 0, len(c.plans))
	if _, ok := c.plans[models.FreePlan]; ok {
		names = append(names, models.FreePlan)
	}
	rest := make([]models.PlanName, 0, len(c.plans))
	for name := range c.plans {
		if name != models.FreePlan {
			rest = append(rest, name)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(names, rest...)
}

// Price returns the per-period price of a plan. An unknown plan or billing
// period is a programmer error, not a user-facing condition: callers must
// validate inputs first, so this panics rather than returning an error.
func (c Catalog) Price(plan models.PlanName, period models.BillingPeriod) float64 {
	entry, ok := c.plans[plan]
	if !ok {
		panic(fmt.Sprintf("plans: unknown plan %q", plan))
	}
	price, ok := entry.Price[period]
	if !ok {
		panic(fmt.Sprintf("plans: unknown billing period %q for plan %q", period, plan))
	}
	return price
}

// PeriodEnd returns the end date of a billing period starting at from:
// the same calendar day one month or one year later. Overflowing dates
// normalize forward the way time.AddDate does, so Jan 31 + 1 month lands
// on Mar 2 or Mar 3.
func (c Catalog) PeriodEnd(period models.BillingPeriod, from time.Time) time.Time {
	if period == models.YearlyBilling {
		return from.AddDate(1, 0, 0)
	}
	return from.AddDate(0, 1, 0)
}

// IsActive reports whether a subscription is live right now: status must
// be active and the end date still in the future. The expired status is
// never persisted; it is derived here on every read.
func IsActive(subscription *models.Subscription) bool {
	if subscription == nil {
		return false
	}
	return subscription.Status == models.ActiveSubscription &&
		time.Now().Before(subscription.EndDate)
}

// CanCreateURL reports whether the user may create another collection.
// Pro subscribers are unconditionally entitled; everyone else is measured
// against the free plan's MaxURLs with their lifetime counter. Only the
// URL limit is enforced here: MaxCollections has no enforcement point
// anywhere in the application.
func (c Catalog) CanCreateURL(user *models.User) bool {
	if user == nil {
		return false
	}

	if user.CurrentSubscription == nil {
		return c.underURLLimit(models.FreePlan, user.URLsCreated)
	}

	if user.CurrentSubscription.Plan == models.ProPlan {
		return true
	}

	return c.underURLLimit(user.CurrentSubscription.Plan, user.URLsCreated)
}

func (c Catalog) underURLLimit(plan models.PlanName, created uint) bool {
	entry, ok := c.plans[plan]
	if !ok {
		return false
	}
	if entry.Limits.MaxURLs == Unlimited {
		return true
	}
	return int(created) < entry.Limits.MaxURLs
}
