// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"linklet-server/commons"
	"linklet-server/crypto"
	"linklet-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_seed_templates",
			Migrate: func(tx *gorm.DB) error {
				templates := []models.Template{
					{TemplateID: "classic", Name: "Classic", Background: "#ffffff", Text: "#1f2937", Primary: "#2563eb", Secondary: "#e5e7eb", Accent: "#f59e0b"},
					{TemplateID: "midnight", Name: "Midnight", Background: "#0f172a", Text: "#e2e8f0", Primary: "#38bdf8", Secondary: "#1e293b", Accent: "#f472b6"},
					{TemplateID: "forest", Name: "Forest", Background: "#f0fdf4", Text: "#14532d", Primary: "#16a34a", Secondary: "#dcfce7", Accent: "#ca8a04"},
					{TemplateID: "sunrise", Name: "Sunrise", Background: "#fff7ed", Text: "#7c2d12", Primary: "#ea580c", Secondary: "#ffedd5", Accent: "#db2777"},
				}
				for _, template := range templates {
					if err := tx.Where("template_id = ?", template.TemplateID).
						FirstOrCreate(&template).Error; err != nil {
						return fmt.Errorf("failed to seed template %s: %w", template.TemplateID, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Unscoped().Where("1 = 1").Delete(&models.Template{}).Error
			},
		},
		{
			// The landing page lists the collections owned by the
			// administrator account, so one must exist.
			ID: "002_seed_admin_user",
			Migrate: func(tx *gorm.DB) error {
				adminEmail := commons.GetEnv("LANDING_ADMIN_EMAIL", "administrator1@linklet.com")

				var count int64
				if err := tx.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
					return fmt.Errorf("failed to look up admin user: %w", err)
				}
				if count > 0 {
					return nil
				}

				password := commons.GetEnv("LANDING_ADMIN_PASSWORD")
				if password == "" {
					generated, err := crypto.GenerateRandomString("", 24, "hex")
					if err != nil {
						return fmt.Errorf("failed to generate admin password: %w", err)
					}
					password = generated
					commons.Logger.Warnf("LANDING_ADMIN_PASSWORD not set, generated one-time password for %s: %s", adminEmail, password)
				}

				hash, err := crypto.NewCrypto().HashPassword(password)
				if err != nil {
					return fmt.Errorf("failed to hash admin password: %w", err)
				}

				admin := models.User{
					FirstName: "Linklet",
					LastName:  "Team",
					Email:     adminEmail,
					Password:  hash,
				}
				if err := tx.Create(&admin).Error; err != nil {
					return fmt.Errorf("failed to create admin user: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			// Collections created before the explore opt-in flag existed
			// were all listed; keep that behavior for public ones.
			ID: "003_backfill_explore_by_all",
			Migrate: func(tx *gorm.DB) error {
				return tx.Model(&models.Collection{}).
					Where("public = ?", true).
					Update("explore_by_all", true).Error
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			// Historical subscription rows created before public IDs.
			ID: "004_backfill_subscription_ids",
			Migrate: func(tx *gorm.DB) error {
				var subscriptions []models.Subscription
				if err := tx.Where("subscription_id = '' OR subscription_id IS NULL").
					Find(&subscriptions).Error; err != nil {
					return fmt.Errorf("failed to fetch subscriptions: %w", err)
				}
				for _, subscription := range subscriptions {
					subID, err := crypto.GenerateRandomString("sub_", 16, "hex")
					if err != nil {
						return fmt.Errorf("failed to generate subscription ID: %w", err)
					}
					if err := tx.Model(&subscription).Update("subscription_id", subID).Error; err != nil {
						return fmt.Errorf("failed to update subscription %d: %w", subscription.ID, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}
