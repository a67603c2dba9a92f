package models

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/miladmahdian/professional-signup-hub/server/logger"
	"github.com/miladmahdian/professional-signup-hub/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const DB_NAME = "signuphub.db"

var logg = logger.NewLogger()
var db *gorm.DB

// AutoMigrate opens the signup db & migrates the schema
func AutoMigrate(dbRootDir string) error {
	dsn, err := dbDSN(dbRootDir)
	if err != nil {
		return fmt.Errorf("failed to set sqlite DSN: %v", err)
	}

	if err = openDB(dsn); err != nil {
		return err
	}

	return db.AutoMigrate(&Professional{})
}

// InitializeTestDb swaps the package db for a fresh in-memory one.
// Only meant to be called from tests.
func InitializeTestDb() {
	if err := openDB(":memory:"); err != nil {
		logg.Panic(err)
	}

	if err := db.AutoMigrate(&Professional{}); err != nil {
		logg.Panic(err)
	}
}

// DbFilePath returns the location of the sqlite file on disk,
// used by the periodic backup job.
func DbFilePath(dbRootDir string) (string, error) {
	dbDir, err := DbDirectory(dbRootDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(dbDir, DB_NAME), nil
}

func DbDirectory(dbRootDir string) (string, error) {
	dbDir := filepath.Join(dbRootDir, "db")

	err := utils.CreateDirIfNotExist(dbDir)
	if err != nil {
		return "", err
	}

	return dbDir, nil
}

// IsUniqueConstraintError reports whether err came from one of the
// store's unique indexes (email or phone).
func IsUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func openDB(dsn string) error {
	var err error

	db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				LogLevel:                  gormLogger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return errors.Wrap(err, "failed to connect database")
	}

	return nil
}

func dbDSN(dbRootDir string) (string, error) {
	dbDir, err := DbDirectory(dbRootDir)
	if err != nil {
		return "", err
	}

	dbFilePath := filepath.Join(dbDir, DB_NAME)

	return fmt.Sprintf("file:%v?_pragma=journal_mode(WAL)", dbFilePath), nil
}
