package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gorilla/mux"
	"github.com/miladmahdian/professional-signup-hub/server/cron"
	"github.com/miladmahdian/professional-signup-hub/server/gstorage"
	"github.com/miladmahdian/professional-signup-hub/server/logger"
	"github.com/miladmahdian/professional-signup-hub/server/models"
	"github.com/miladmahdian/professional-signup-hub/shared"
	"github.com/miladmahdian/professional-signup-hub/utils"
)

var logg = logger.NewLogger()

// Start boots the signup hub: restores/migrates the sqlite store, schedules
// the backup job & serves the API + web pages until SIGINT/SIGTERM.
func Start(config *shared.ServerConfig, devMode bool) {
	fatalOnError(validate.Struct(config))

	dbRootDir := config.Sqlite.Directory
	if dbRootDir == "" {
		dbRootDir = configDirectory(devMode)
	}

	scheduler := cron.NewCronScheduler(config.Hub.Cron.TimeZone)

	// Restore-before-open, so a fresh host picks up the last backup
	gs := registerJobs(scheduler, config, dbRootDir)

	fatalOnError(models.AutoMigrate(dbRootDir))

	scheduler.StartAsync()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%v", config.Hub.Listener.Port),
		Handler: NewRouter(),
	}
	go serve(server)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	cleanup(scheduler, server, gs, config, dbRootDir)
}

// NewRouter wires up the API & web page routes. Exposed so tests can run
// requests through the same middleware chain as production.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/professionals/", listProfessionals).Methods("GET")
	api.HandleFunc("/professionals/", createProfessional).Methods("POST")
	api.HandleFunc("/professionals/bulk", bulkUpsertProfessionals).Methods("POST")

	router.HandleFunc("/", professionalsPage).Methods("GET")
	router.HandleFunc("/signup", signupPage).Methods("GET", "POST")

	return router
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func serve(server *http.Server) {
	logg.Infof("Signup hub is listening on port%v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(scheduler *gocron.Scheduler, server *http.Server, gs *gstorage.GStorage, config *shared.ServerConfig, dbRootDir string) {
	scheduler.Stop()

	// One last backup so a redeploy starts from current data
	if gs != nil {
		if err := backupSignupDb(gs, config.Google.Storage, dbRootDir); err != nil {
			logg.Errorf("final signup-db backup failed: %v", err)
		}
	}

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Fatalf("Signup hub shutdown failed:%+s", err)
	}

	logg.Infof("Signup hub stopped properly")
}

// configDirectory retrieves the directory the signup db lives under,
// or logs an error message & exits if it's unable to.
func configDirectory(devMode bool) string {
	configFolderName := "signuphub"
	rootDir, err := os.UserHomeDir()
	fatalOnError(err)

	// Use 'dev' folder in current directory for dev mode
	if devMode {
		configFolderName = "dev"
		rootDir, err = os.Getwd()
		fatalOnError(err)
	}

	configDir := filepath.Join(rootDir, configFolderName)

	err = utils.CreateDirIfNotExist(configDir)
	fatalOnError(err)

	return configDir
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}
