// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"linklet-server/models"
)

func TestCreateSubscriptionRequestStructure(t *testing.T) {
	jsonPayload := `{
		"plan": "pro",
		"billing_period": "yearly"
	}`

	var req CreateSubscriptionRequest
	err := json.Unmarshal([]byte(jsonPayload), &req)
	if err != nil {
		t.Fatalf("Failed to unmarshal CreateSubscriptionRequest: %v", err)
	}

	if req.Plan != "pro" {
		t.Errorf("Expected plan 'pro', got %s", req.Plan)
	}
	if req.BillingPeriod != "yearly" {
		t.Errorf("Expected billing_period 'yearly', got %s", req.BillingPeriod)
	}
}

func TestCancelSubscriptionRequestWithoutReason(t *testing.T) {
	var req CancelSubscriptionRequest
	err := json.Unmarshal([]byte(`{}`), &req)
	if err != nil {
		t.Fatalf("Failed to unmarshal CancelSubscriptionRequest: %v", err)
	}

	if req.Reason != nil {
		t.Errorf("Expected reason to be nil, got %v", req.Reason)
	}
}

func TestSubscriptionDetailsMapping(t *testing.T) {
	now := time.Now()
	end := now.AddDate(0, 1, 0)
	reason := "switching plans"

	subscription := &models.Subscription{
		SubscriptionID:     "sub_abc123",
		Plan:               models.ProPlan,
		BillingPeriod:      models.MonthlyBilling,
		Status:             models.CancelledSubscription,
		StartDate:          now,
		EndDate:            end,
		Amount:             9.99,
		Currency:           "USD",
		CancelledAt:        &now,
		CancellationReason: &reason,
	}

	detail := subscriptionDetails(subscription)

	if detail.SubscriptionID != "sub_abc123" {
		t.Errorf("SubscriptionID = %s, want sub_abc123", detail.SubscriptionID)
	}
	if detail.Status != "cancelled" {
		t.Errorf("Status = %s, want cancelled", detail.Status)
	}
	if detail.Amount != 9.99 {
		t.Errorf("Amount = %v, want 9.99", detail.Amount)
	}
	if detail.CancelledAt == nil {
		t.Error("CancelledAt should be set")
	}
	if detail.CancellationReason == nil || *detail.CancellationReason != reason {
		t.Errorf("CancellationReason = %v, want %q", detail.CancellationReason, reason)
	}
	if detail.IsActive {
		t.Error("A cancelled subscription should not be active")
	}
}

func TestSubscriptionDetailsActive(t *testing.T) {
	subscription := &models.Subscription{
		SubscriptionID: "sub_def456",
		Plan:           models.ProPlan,
		BillingPeriod:  models.YearlyBilling,
		Status:         models.ActiveSubscription,
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(1, 0, 0),
		Amount:         99.99,
		Currency:       "USD",
	}

	detail := subscriptionDetails(subscription)

	if !detail.IsActive {
		t.Error("An active subscription before its end date should report active")
	}
	if detail.CancelledAt != nil {
		t.Errorf("CancelledAt = %v, want nil", detail.CancelledAt)
	}
}
