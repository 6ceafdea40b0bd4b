// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"linklet-server/models"

	"github.com/labstack/echo/v4"
)

// GetPlansHandler godoc
// @Summary      List subscription plans
// @Description  Returns the plan catalog with pricing, limits, and features for each plan. No authentication required.
// @Tags         subscriptions
// @Produce      json
// @Success      200 {object} GetPlansResponse "Plans retrieved successfully"
// @Router       /v1/plans [get]
func GetPlansHandler(c echo.Context) error {
	options := make([]PlanOption, 0, 2)
	for _, name := range planCatalog.Names() {
		plan, _ := planCatalog.Plan(name)
		options = append(options, PlanOption{
			Name:        string(name),
			DisplayName: plan.Name,
			Pricing: PlanPricing{
				Monthly:  plan.Price[models.MonthlyBilling],
				Yearly:   plan.Price[models.YearlyBilling],
				Currency: "USD",
			},
			Limits: PlanLimits{
				MaxURLs:        plan.Limits.MaxURLs,
				MaxCollections: plan.Limits.MaxCollections,
			},
			Features:    plan.Features,
			Recommended: name == models.ProPlan,
		})
	}

	return c.JSON(http.StatusOK, GetPlansResponse{
		Plans:   options,
		Message: "Plans retrieved successfully",
	})
}
