package main

import (
	"fmt"
	"os"

	"gocsvlab/internal"
	"gocsvlab/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "gocsvlab",
		Short:         "Profile, transform and export tabular datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newProfileCmd(),
		newTransformCmd(),
		newReportCmd(),
		newExportDBCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment configuration and installs its logger
func loadConfig() (*config.Config, *internal.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))
	internal.DefaultLogger = logger
	return cfg, logger, nil
}
