package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attraction-catalog/core/config"
	"attraction-catalog/core/logger"
	"attraction-catalog/feature/attraction"
	"attraction-catalog/feature/attraction/regions"
	"attraction-catalog/feature/attraction/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the read-only catalog HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog HTTP server",
	Long: `Starts the read-only HTTP API over the declared catalog. The server
never touches the database; catalog queries are answered from the in-memory
registry.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the catalog registry. A duplicate id or alias across
		// provinces is a declaration error; refuse to start.
		reg, err := registry.New(regions.Providers()...)
		if err != nil {
			logg.Fatal("Invalid catalog declaration", zap.Error(err))
		}

		service := attraction.NewService(reg, nil, logg)
		handler := attraction.NewHandler(service)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		})

		// Request logging
		app.Use(func(c *fiber.Ctx) error {
			logg.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				logg.Error("Request error", zap.Error(err))
			}
			return err
		})

		handler.RegisterRoutes(app)

		// 5. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Strings("provinces", reg.Provinces()),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
