// SPDX-License-Identifier: GPL-3.0-only

// Package subscriptions orchestrates the subscription lifecycle: creating
// a subscription for a user, cancelling one, and resolving a user's
// current subscription and history. Plan economics come from the injected
// plan catalog; the service itself performs no validation of plan or
// billing period values (callers validate before calling).
package subscriptions

import (
	"errors"
	"time"

	"linklet-server/models"
	"linklet-server/plans"

	"gorm.io/gorm"
)

type Service struct {
	db      *gorm.DB
	catalog plans.Catalog
}

func NewService(db *gorm.DB, catalog plans.Catalog) *Service {
	return &Service{db: db, catalog: catalog}
}

// UserSubscription is the resolved view of a user's subscription state:
// the current record (nil when none) and the full history in creation
// order.
type UserSubscription struct {
	Current *models.Subscription
	History []models.Subscription
}

// Create opens a new active subscription for the user and points the
// user's current subscription at it. The subscription insert and the user
// update run in one transaction so a failure cannot leave an orphaned
// subscription row behind.
func (s *Service) Create(userID uint, plan models.PlanName, period models.BillingPeriod) (*models.Subscription, error) {
	now := time.Now()
	subscription := &models.Subscription{
		UserID:        userID,
		Plan:          plan,
		BillingPeriod: period,
		Status:        models.ActiveSubscription,
		StartDate:     now,
		EndDate:       s.catalog.PeriodEnd(period, now),
		Amount:        s.catalog.Price(plan, period),
		Currency:      "USD",
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(subscription).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("current_subscription_id", subscription.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

// Cancel marks the subscription cancelled and records when and why.
// Returns (nil, nil) when the id does not resolve, pushing the not-found
// decision to the caller. The owning user's current subscription pointer
// is left untouched: a cancelled subscription stays current until a new
// one is created.
func (s *Service) Cancel(subscriptionID string, reason *string) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := s.db.Where("subscription_id = ?", subscriptionID).First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now()
	subscription.Status = models.CancelledSubscription
	subscription.CancelledAt = &now
	subscription.CancellationReason = reason

	if err := s.db.Save(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// GetUserSubscription resolves the user's current subscription and full
// history, eagerly and unpaginated. An unknown user yields an empty view
// rather than an error.
func (s *Service) GetUserSubscription(userID uint) (UserSubscription, error) {
	view := UserSubscription{History: []models.Subscription{}}

	var user models.User
	if err := s.db.Preload("CurrentSubscription").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, nil
		}
		return view, err
	}

	view.Current = user.CurrentSubscription

	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&view.History).Error; err != nil {
		return view, err
	}
	return view, nil
}
