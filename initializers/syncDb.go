package initializers

import (
	"github.com/Kariqs/shopcart-api/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func SyncDatabase() {
	if err := Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to sync database")
	}
	log.Info().Msg("Database synced successfully.")
}

// Migrate creates or updates the shopcart and item tables. It is idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Shopcart{}, &models.Item{})
}
