package cmd

import (
	"context"
	"fmt"

	"attraction-catalog/core/config"
	"attraction-catalog/core/database"
	"attraction-catalog/core/logger"
	"attraction-catalog/core/syncer"
	"attraction-catalog/feature/attraction"
	"attraction-catalog/feature/attraction/regions"
	"attraction-catalog/feature/attraction/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncProvince string
	syncDryRun   bool
)

// syncCmd reconciles the declared catalog into the database.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the catalog into the database",
	Long: `Synchronize the declared attraction catalog into the database.

Each record is matched by its attraction id: unmatched records are inserted,
matched records are fully updated. Records that fail validation or hit a
store error are skipped and reported; the run continues. Re-running against
an unchanged catalog produces no duplicates.

Examples:
  # Sync every province
  sync

  # Sync one province by any of its alias keys
  sync --province ang-thong
  sync --province "Ang Thong"

  # Count would-be changes without writing
  sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncProvince, "province", "", "Sync a single province by alias key (default: all)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Report would-be changes without writing")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// A failed connection aborts the run before any record is touched.
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	reg, err := registry.New(regions.Providers()...)
	if err != nil {
		return fmt.Errorf("failed to build catalog registry: %w", err)
	}

	service := attraction.NewService(reg, attraction.NewStore(db), l)

	l.Info("Starting catalog synchronization",
		zap.Bool("dry_run", syncDryRun),
		zap.String("province", syncProvince),
	)

	var report *syncer.Report
	if syncProvince != "" {
		report, err = service.SyncProvince(ctx, syncProvince, syncDryRun)
	} else {
		report, err = service.SyncAll(ctx, syncDryRun)
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	// The engine logs progress; the command emits the report itself.
	return printJSON(report)
}
