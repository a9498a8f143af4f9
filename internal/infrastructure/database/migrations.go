package database

import (
	"metalshop/internal/domain/entities"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate applies the versioned schema migrations.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20260112_create_catalog_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&entities.User{}, &entities.Worker{}, &entities.Supplier{}, &entities.Material{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("materials", "suppliers", "workers", "users")
			},
		},
		{
			ID: "20260112_create_job_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&entities.Job{}, &entities.LaborEntry{}, &entities.MaterialPurchase{},
					&entities.Payment{}, &entities.Offer{}, &entities.OfferItem{}, &entities.Contract{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("contracts", "offer_items", "offers", "payments",
					"material_purchases", "labor_entries", "jobs")
			},
		},
		{
			ID: "20260203_add_payment_plans_and_files",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&entities.PaymentPlan{}, &entities.File{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("files", "payment_plans")
			},
		},
		{
			ID: "20260203_create_audit_logs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&entities.AuditLog{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("audit_logs")
			},
		},
	})

	return m.Migrate()
}
