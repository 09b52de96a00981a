package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/itousif38-netizen/SN-ENTP/models"
	"gorm.io/gorm"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20240110_create_kv_entries",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.KVEntry{})
			},
		},
		{
			ID: "20240110_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{})
			},
		},
	})
	return m.Migrate()
}
