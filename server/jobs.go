package server

import (
	"errors"
	"path"

	"github.com/go-co-op/gocron"
	"github.com/miladmahdian/professional-signup-hub/server/gstorage"
	"github.com/miladmahdian/professional-signup-hub/server/models"
	"github.com/miladmahdian/professional-signup-hub/shared"
	"github.com/miladmahdian/professional-signup-hub/utils"
)

// registerJobs sets up the periodic signup-db backup when enabled in config,
// & restores the db file from the bucket on a fresh host before the db is
// opened. Returns the storage client so cleanup can run one last backup on
// shutdown.
func registerJobs(scheduler *gocron.Scheduler, config *shared.ServerConfig, dbRootDir string) *gstorage.GStorage {
	storageConfig := config.Google.Storage

	if enabled, ok := storageConfig.EnableSqliteBackupAndSync.(bool); !ok || !enabled {
		return nil
	}

	if storageConfig.Bucket == "" || storageConfig.SqliteBackupSchedule == "" {
		logg.Warn("signup-db backup enabled but google.storage.bucket/sqliteBackupSchedule is missing")
		return nil
	}

	gs, err := gstorage.NewGStorage(config.Google.ApplicationCredentials)
	if err != nil {
		logg.Errorf("signup-db backup disabled: %v", err)
		return nil
	}

	if err := restoreSignupDb(gs, storageConfig, dbRootDir); err != nil {
		logg.Errorf("unable to restore signup db from storage: %v", err)
	}

	_, err = scheduler.Cron(storageConfig.SqliteBackupSchedule).Tag("backup_signup_db").Do(func() {
		if err := backupSignupDb(gs, storageConfig, dbRootDir); err != nil {
			logg.Errorf("signup-db backup failed: %v", err)
		}
	})
	if err != nil {
		logg.Errorf("unable to schedule signup-db backup: %v", err)
	}

	return gs
}

func backupSignupDb(gs *gstorage.GStorage, storageConfig shared.StorageConfig, dbRootDir string) error {
	dbFilePath, err := models.DbFilePath(dbRootDir)
	if err != nil {
		return err
	}

	return gs.UploadFile(storageConfig.Bucket, storageConfig.Prefix, dbFilePath)
}

// restoreSignupDb pulls the last backed-up db file, but only onto a host
// that doesn't have one yet - a local db always wins.
func restoreSignupDb(gs *gstorage.GStorage, storageConfig shared.StorageConfig, dbRootDir string) error {
	dbFilePath, err := models.DbFilePath(dbRootDir)
	if err != nil {
		return err
	}

	if utils.FileExist(dbFilePath) {
		return nil
	}

	object := path.Join(storageConfig.Prefix, models.DB_NAME)
	err = gs.DownloadFile(storageConfig.Bucket, object, dbFilePath)
	if errors.Is(err, gstorage.ErrObjectNotExist) {
		logg.Infof("no signup-db backup found in bucket %v", storageConfig.Bucket)
		return nil
	}

	return err
}
