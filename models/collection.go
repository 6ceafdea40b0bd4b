// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"linklet-server/crypto"

	"gorm.io/gorm"
)

// Collection is a curated page of links a user publishes under one URL.
type Collection struct {
	ID           uint    `gorm:"primaryKey"`
	CollectionID string  `gorm:"size:64;not null;uniqueIndex"`
	Title        string  `gorm:"size:255;not null"`
	Description  *string `gorm:"type:text;default:null"`
	Image        *string `gorm:"default:null"`
	Views        uint    `gorm:"not null;default:0;index"`
	Public       bool    `gorm:"not null;default:false"`
	// ExploreByAll opts the collection into the public explore listing.
	// A collection can be public (reachable by link) without being listed.
	ExploreByAll bool   `gorm:"not null;default:false"`
	Template     string `gorm:"size:64;not null;default:'classic'"`
	// Optional display alias shown instead of the owner's real name.
	AliasName  *string `gorm:"size:255;default:null"`
	AliasImage *string `gorm:"default:null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	UserID     uint           `gorm:"index"`
	User       User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (collection *Collection) BeforeCreate(tx *gorm.DB) (err error) {
	if collection.CollectionID == "" {
		collection.CollectionID, err = crypto.GenerateRandomString("col_", 16, "hex")
		if err != nil {
			return err
		}
	}
	return
}

func init() {
	AllModels = append(AllModels, &Collection{})
}
