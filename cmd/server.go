package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/miladmahdian/professional-signup-hub/server"
	"github.com/miladmahdian/professional-signup-hub/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start a signup hub server",
	Long:  `The server exposes the professionals REST API (list, create, bulk upsert) & the sign-up web pages`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start(serverConfig(), isDevEnv)
	},
}

var serverConfigFile string

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVar(&serverConfigFile, "config", "", "config file for the server")
}

func serverConfig() *shared.ServerConfig {
	config := viper.New()

	if isDevEnv {
		serverConfigFile = devConfigFilePath()
	}

	if serverConfigFile == "" {
		cobra.CheckErr(formattedError("must provide --config, or run with --dev"))
	}

	config.SetConfigFile(serverConfigFile)
	config.AutomaticEnv() // read in environment variables that match

	if err := config.ReadInConfig(); err != nil {
		log.Panic(fmt.Sprintf("error reading server config file: %v", err))
	}

	serverConfig := &shared.ServerConfig{}
	cobra.CheckErr(config.Unmarshal(serverConfig))

	return serverConfig
}

func devConfigFilePath() string {
	configDir, err := os.Getwd()
	if err != nil {
		log.Panic(err)
	}

	return filepath.Join(configDir, "dev", "config", "server.yml")
}
