package db

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/arohezay/backend/internal/advisor"
	"github.com/arohezay/backend/internal/aicache"
	"github.com/arohezay/backend/internal/catalog"
	"github.com/arohezay/backend/internal/config"
)

// Connect opens the configured database and migrates the schema.
// sqlite is the default (single-file deploys); mysql is available for
// hosted setups via DB_DRIVER=mysql + DB_DSN.
func Connect(cfg config.Config) *gorm.DB {
	var (
		gdb *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "mysql":
		gdb, err = gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	default:
		gdb, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&catalog.Location{},
		&catalog.Route{},
		&catalog.RouteStep{},
		&aicache.Entry{},
		&advisor.Job{},
	); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	return gdb
}
