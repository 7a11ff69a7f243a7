//picks the GORM driver by DBDriver. No repository/service code changes needed when you change DB.

package config

import (
	"log"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models" // Import our model(s) so we can auto-migrate schema.

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// GORM drivers (we open one depending on cfg.DBDriver).
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// Dialector returns the GORM dialector for cfg.DBDriver. Config.Validate has already
// checked that the matching DSN is set.
func Dialector(cfg *Config) gorm.Dialector {
	switch cfg.DBDriver {
	case "mysql":
		return mysql.Open(cfg.MySQLDSN)
	case "postgres":
		return postgres.Open(cfg.PostgresDSN)
	case "sqlite":
		// SQLite only needs a file path; GORM will create file if missing.
		return sqlite.Open(cfg.SQLitePath)
	case "sqlserver":
		return sqlserver.Open(cfg.SQLServerDSN)
	}
	log.Fatalf("[db] unknown DBDriver: %s", cfg.DBDriver) // Fail fast if driver is unsupported.
	return nil
}

// InitDB opens a database connection using the driver specified in config,
// configures GORM, and applies auto-migrations for our models.
func InitDB(cfg *Config) *gorm.DB {
	// Configure GORM’s logger to Warn to keep output readable (Info is very verbose).
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(Dialector(cfg), gormCfg)
	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}
	return db // Return the connected *gorm.DB to be injected into repositories.
}

// Migrate creates or updates the users and projects tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Project{})
}
