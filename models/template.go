// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// Template is a color theme a collection page renders with. Templates are
// seeded by migration and read-only at runtime.
type Template struct {
	ID         uint   `gorm:"primaryKey"`
	TemplateID string `gorm:"size:64;not null;uniqueIndex"`
	Name       string `gorm:"size:255;not null"`
	Background string `gorm:"size:32;not null"`
	Text       string `gorm:"size:32;not null"`
	Primary    string `gorm:"size:32;not null"`
	Secondary  string `gorm:"size:32;not null"`
	Accent     string `gorm:"size:32;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &Template{})
}
