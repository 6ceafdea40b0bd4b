// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string
type EventCategory string

const (
	Succeeded EventStatus = "SUCCEEDED"
	Failed    EventStatus = "FAILED"
)

const (
	AuthEvent         EventCategory = "AUTH"
	SubscriptionEvent EventCategory = "SUBSCRIPTION"
	CollectionEvent   EventCategory = "COLLECTION"
)

type EventLog struct {
	ID          uint           `gorm:"primaryKey"`
	EID         uuid.UUID      `gorm:"type:uuid;not null"`
	Category    *EventCategory `gorm:"size:50;default:null"`
	Status      *EventStatus   `gorm:"size:50;default:null"`
	Description *string        `gorm:"type:text;default:null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	UserID      uint
	User        User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (eventLog *EventLog) BeforeCreate(tx *gorm.DB) (err error) {
	eventLog.EID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &EventLog{})
}
