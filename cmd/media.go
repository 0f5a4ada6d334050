package cmd

import (
	"context"
	"fmt"

	"attraction-catalog/core/config"
	"attraction-catalog/core/logger"
	"attraction-catalog/core/storage"
	"attraction-catalog/feature/attraction"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mediaCmd checks catalog media against the storage bucket.
var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Check attraction thumbnails against the storage bucket",
	Long: `Check that every active record's declared thumbnail exists in the
media bucket. Records without a thumbnail are skipped. The bucket is listed
once; no per-record requests are made.`,
	RunE: runMediaCheck,
}

func init() {
	RootCmd.AddCommand(mediaCmd)
}

func runMediaCheck(cmd *cobra.Command, args []string) error {
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

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	report, err := attraction.CheckThumbnails(ctx, client, cfg.Storage.Bucket, reg.All())
	if err != nil {
		return fmt.Errorf("thumbnail check failed: %w", err)
	}

	for _, id := range report.Missing {
		l.Warn("Thumbnail missing", zap.String("attraction_id", id))
	}
	l.Info("Thumbnail check complete",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.Int("checked", report.Checked),
		zap.Int("missing", len(report.Missing)),
	)

	return nil
}
