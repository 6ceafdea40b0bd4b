// SPDX-License-Identifier: GPL-3.0-only

package subscriptions

import (
	"path/filepath"
	"testing"
	"time"

	"linklet-server/models"
	"linklet-server/plans"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := conn.AutoMigrate(&models.User{}, &models.Subscription{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return NewService(conn, plans.Default()), conn
}

func testUser(t *testing.T, conn *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "irrelevant",
	}
	if err := conn.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func TestCreateSubscription(t *testing.T) {
	service, conn := testService(t)
	user := testUser(t, conn)

	subscription, err := service.Create(user.ID, models.ProPlan, models.MonthlyBilling)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if subscription.SubscriptionID == "" {
		t.Error("SubscriptionID should be assigned on create")
	}
	if subscription.Status != models.ActiveSubscription {
		t.Errorf("Status = %s, want active", subscription.Status)
	}
	if subscription.Amount != 9.99 {
		t.Errorf("Amount = %v, want 9.99", subscription.Amount)
	}
	if subscription.Currency != "USD" {
		t.Errorf("Currency = %s, want USD", subscription.Currency)
	}

	wantEnd := subscription.StartDate.AddDate(0, 1, 0)
	if !subscription.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", subscription.EndDate, wantEnd)
	}

	var reloaded models.User
	if err := conn.Where("id = ?", user.ID).First(&reloaded).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if reloaded.CurrentSubscriptionID == nil || *reloaded.CurrentSubscriptionID != subscription.ID {
		t.Error("User's current subscription should point at the new subscription")
	}
}

func TestCreateFreeSubscription(t *testing.T) {
	service, conn := testService(t)
	user := testUser(t, conn)

	subscription, err := service.Create(user.ID, models.FreePlan, models.YearlyBilling)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if subscription.Amount != 0 {
		t.Errorf("Amount = %v, want 0", subscription.Amount)
	}

	wantEnd := subscription.StartDate.AddDate(1, 0, 0)
	if !subscription.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", subscription.EndDate, wantEnd)
	}
}

func TestCreateKeepsHistory(t *testing.T) {
	service, conn := testService(t)
	user := testUser(t, conn)

	first, err := service.Create(user.ID, models.FreePlan, models.MonthlyBilling)
	if err != nil {
		t.Fatalf("First create failed: %v", err)
	}
	second, err := service.Create(user.ID, models.ProPlan, models.MonthlyBilling)
	if err != nil {
		t.Fatalf("Second create failed: %v", err)
	}

	view, err := service.GetUserSubscription(user.ID)
	if err != nil {
		t.Fatalf("GetUserSubscription failed: %v", err)
	}

	if view.Current == nil || view.Current.SubscriptionID != second.SubscriptionID {
		t.Error("Current should be the most recently created subscription")
	}
	if len(view.History) != 2 {
		t.Fatalf("History length = %d, want 2", len(view.History))
	}
	if view.History[0].SubscriptionID != first.SubscriptionID {
		t.Error("History should be ordered oldest first")
	}
}

func TestCancelSubscription(t *testing.T) {
	service, conn := testService(t)
	user := testUser(t, conn)

	created, err := service.Create(user.ID, models.ProPlan, models.MonthlyBilling)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	reason := "too expensive"
	cancelled, err := service.Cancel(created.SubscriptionID, &reason)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if cancelled == nil {
		t.Fatal("Cancel returned nil for an existing subscription")
	}

	if cancelled.Status != models.CancelledSubscription {
		t.Errorf("Status = %s, want cancelled", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Error("CancelledAt should be set")
	}
	if cancelled.CancellationReason == nil || *cancelled.CancellationReason != reason {
		t.Errorf("CancellationReason = %v, want %q", cancelled.CancellationReason, reason)
	}

	// The cancelled subscription stays current until a new one replaces
	// it.
	view, err := service.GetUserSubscription(user.ID)
	if err != nil {
		t.Fatalf("GetUserSubscription failed: %v", err)
	}
	if view.Current == nil || view.Current.SubscriptionID != created.SubscriptionID {
		t.Error("Cancelled subscription should remain the current one")
	}
	if plans.IsActive(view.Current) {
		t.Error("Cancelled subscription should not be active")
	}
}

func TestCancelWithoutReason(t *testing.T) {
	service, conn := testService(t)
	user := testUser(t, conn)

	created, err := service.Create(user.ID, models.ProPlan, models.YearlyBilling)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cancelled, err := service.Cancel(created.SubscriptionID, nil)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if cancelled.CancellationReason != nil {
		t.Errorf("CancellationReason = %v, want nil", cancelled.CancellationReason)
	}
}

func TestCancelUnknownSubscription(t *testing.T) {
	service, _ := testService(t)

	subscription, err := service.Cancel("sub_does_not_exist", nil)
	if err != nil {
		t.Fatalf("Cancel of unknown id should not error, got %v", err)
	}
	if subscription != nil {
		t.Errorf("Cancel of unknown id should return nil, got %+v", subscription)
	}
}

func TestGetUserSubscriptionUnknownUser(t *testing.T) {
	service, _ := testService(t)

	view, err := service.GetUserSubscription(12345)
	if err != nil {
		t.Fatalf("GetUserSubscription for unknown user should not error, got %v", err)
	}
	if view.Current != nil {
		t.Errorf("Current = %+v, want nil", view.Current)
	}
	if len(view.History) != 0 {
		t.Errorf("History length = %d, want 0", len(view.History))
	}
}

func TestGetUserSubscriptionNoSubscription(t *testing.T) {
	service, conn := testService(t)
	user := testUser(t, conn)

	view, err := service.GetUserSubscription(user.ID)
	if err != nil {
		t.Fatalf("GetUserSubscription failed: %v", err)
	}
	if view.Current != nil {
		t.Error("Current should be nil for a user with no subscriptions")
	}
	if len(view.History) != 0 {
		t.Errorf("History length = %d, want 0", len(view.History))
	}
}

func TestCreateStartDateIsNow(t *testing.T) {
	service, conn := testService(t)
	user := testUser(t, conn)

	before := time.Now().Add(-time.Second)
	subscription, err := service.Create(user.ID, models.ProPlan, models.MonthlyBilling)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	after := time.Now().Add(time.Second)

	if subscription.StartDate.Before(before) || subscription.StartDate.After(after) {
		t.Errorf("StartDate = %v, want roughly now", subscription.StartDate)
	}
}
