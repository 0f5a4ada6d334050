package cmd

import (
	"fmt"
	"os"

	"attraction-catalog/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "attraction-catalog",
	Short: "Attraction Catalog Service",
	Long: `Attraction Catalog maintains the canonical catalog of geo-tagged
attractions across central Thai provinces. It synchronizes the catalog into a
relational store, checks media objects, and serves a read-only HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with debug level gives ISO8601 timestamps,
		// which reads better for a CLI tool than epoch seconds.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
