// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

var AllModels []any

type User struct {
	ID        uint    `gorm:"primaryKey"`
	FirstName string  `gorm:"size:255;not null"`
	LastName  string  `gorm:"size:255;not null"`
	Email     string  `gorm:"not null;uniqueIndex"`
	Password  string  `gorm:"not null"`
	UserImage *string `gorm:"default:null"`
	IsActive  bool    `gorm:"not null;default:true"`
	// Lifetime counter of collections the user has created. Never
	// decremented, so deleting a collection does not free up free-plan
	// quota.
	URLsCreated uint `gorm:"not null;default:0"`
	// Weak reference to the subscription treated as current for
	// entitlement checks. The full history lives in the subscriptions
	// table keyed by user_id.
	CurrentSubscriptionID *uint         `gorm:"default:null"`
	CurrentSubscription   *Subscription `gorm:"foreignKey:CurrentSubscriptionID"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (user *User) FullName() string {
	return user.FirstName + " " + user.LastName
}

func init() {
	AllModels = append(AllModels, &User{})
}
