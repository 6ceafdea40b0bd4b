// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"linklet-server/crypto"

	"gorm.io/gorm"
)

type PlanName string

const (
	FreePlan PlanName = "free"
	ProPlan  PlanName = "pro"
)

type BillingPeriod string

const (
	MonthlyBilling BillingPeriod = "monthly"
	YearlyBilling  BillingPeriod = "yearly"
)

type SubscriptionStatus string

const (
	ActiveSubscription    SubscriptionStatus = "active"
	CancelledSubscription SubscriptionStatus = "cancelled"
	ExpiredSubscription   SubscriptionStatus = "expired"
	TrialSubscription     SubscriptionStatus = "trial"
)

// Subscription rows are append-only per user: creation inserts a new row,
// cancel is the only mutation, and rows are never deleted outside of
// administrative migrations. The expired status is never written by the
// server; expiry is computed on read from EndDate.
type Subscription struct {
	ID                 uint               `gorm:"primaryKey"`
	SubscriptionID     string             `gorm:"size:64;uniqueIndex"`
	Plan               PlanName           `gorm:"size:50;not null"`
	BillingPeriod      BillingPeriod      `gorm:"size:50;not null"`
	Status             SubscriptionStatus `gorm:"size:50;not null;default:'active';index:idx_user_status,priority:2"`
	StartDate          time.Time          `gorm:"not null"`
	EndDate            time.Time          `gorm:"not null;index"`
	Amount             float64            `gorm:"not null"`
	Currency           string             `gorm:"size:10;not null;default:'USD'"`
	CancelledAt        *time.Time         `gorm:"default:null"`
	CancellationReason *string            `gorm:"type:text;default:null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
	UserID             uint           `gorm:"index:idx_user_status,priority:1"`
	User               User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (subscription *Subscription) BeforeCreate(tx *gorm.DB) (err error) {
	if subscription.SubscriptionID == "" {
		subscription.SubscriptionID, err = crypto.GenerateRandomString("sub_", 16, "hex")
		if err != nil {
			return err
		}
	}
	return
}

func init() {
	AllModels = append(AllModels, &Subscription{})
}
