// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"linklet-server/crypto"

	"gorm.io/gorm"
)

// Link is a single stored URL inside a collection. Position carries the
// ordering chosen by the owner.
type Link struct {
	ID           uint    `gorm:"primaryKey"`
	LinkID       string  `gorm:"size:64;not null;uniqueIndex"`
	Title        string  `gorm:"size:255;not null"`
	URL          string  `gorm:"type:text;not null"`
	Image        *string `gorm:"default:null"`
	Position     uint    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	CollectionID uint           `gorm:"index"`
	Collection   Collection     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (link *Link) BeforeCreate(tx *gorm.DB) (err error) {
	if link.LinkID == "" {
		link.LinkID, err = crypto.GenerateRandomString("lnk_", 16, "hex")
		if err != nil {
			return err
		}
	}
	return
}

func init() {
	AllModels = append(AllModels, &Link{})
}
