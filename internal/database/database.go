package database

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"alienic/internal/domain"
)

// Connect opens the database. A postgres:// DSN selects PostgreSQL;
// anything else is treated as a SQLite path (local dev and tests use the
// pure-Go modernc driver).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Info().Str("path", dsn).Msg("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate runs AutoMigrate for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.AdminUser{},
		&domain.Category{},
		&domain.Collection{},
		&domain.Product{},
		&domain.ProductImage{},
		&domain.Order{},
		&domain.OrderProduct{},
		&domain.ContactMessage{},
		&domain.Testimonial{},
		&domain.Notification{},
	)
}
