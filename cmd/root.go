package cmd

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Task approval tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Debug(".env file not found, using environment variables")
		}
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		if config.Load().Debug {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
