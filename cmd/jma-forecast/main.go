package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/jma-forecast/internal/api/http"
	"github.com/i474232898/jma-forecast/internal/city"
	"github.com/i474232898/jma-forecast/internal/config"
	"github.com/i474232898/jma-forecast/internal/scheduler"
	"github.com/i474232898/jma-forecast/internal/store"
	"github.com/i474232898/jma-forecast/internal/weather"
	"github.com/i474232898/jma-forecast/internal/weather/providers"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jma-forecast",
		Short: "Japanese municipality forecasts",
		Long:  "Reconciles the 3-day daily forecast feed with the JMA weekly feed",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(citiesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newService builds the reconciliation service from configuration.
func newService(cfg *config.AppConfig) *weather.Service {
	// Shared HTTP client for outbound feed calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	backoff := providers.BackoffConfig{
		MaxRetries:      cfg.FetchMaxRetries,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}

	daily := providers.NewDailyFeedClient(httpClient, cfg.DailyFeedURL, backoff)
	weekly := providers.NewWeeklyFeedClient(httpClient, cfg.WeeklyFeedURL, backoff, cfg.WeeklyFeedRPS, cfg.WeeklyFeedBurst)

	return weather.NewService(daily, weekly, clock.NewClock())
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the forecast API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			service := newService(cfg)

			// Short-lived memo of merged forecasts, keyed by city id.
			memStore := store.NewMemoryStore(cfg.CacheMaxAge, clock.NewClock())
			memoized := weather.NewMemoized(service, memStore)

			sched := scheduler.New(cfg.RefreshCities, cfg.RefreshInterval, memoized, memStore)
			if err := sched.Start(); err != nil {
				return fmt.Errorf("failed to start scheduler: %w", err)
			}
			defer sched.Stop()

			app := fiber.New(fiber.Config{
				AppName:               "jma-forecast",
				DisableStartupMessage: true,
				ReadTimeout:           10 * time.Second,
				WriteTimeout:          30 * time.Second,
				ErrorHandler: func(c *fiber.Ctx, err error) error {
					// Centralized error response
					code := fiber.StatusInternalServerError
					if e, ok := err.(*fiber.Error); ok {
						code = e.Code
					}
					return c.Status(code).JSON(fiber.Map{
						"error":   true,
						"message": err.Error(),
					})
				},
			})

			app.Use(logger.New())
			app.Use(recover.New())

			app.Get("/health", func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{
					"status":  "ok",
					"service": "jma-forecast",
				})
			})

			httpapi.RegisterRoutes(app, memoized)

			go func() {
				if err := app.Listen(":" + cfg.Port); err != nil {
					log.Printf("fiber server stopped: %v", err)
				}
			}()
			log.Printf("INFO: listening on :%s", cfg.Port)

			// Wait for termination signal
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				log.Printf("error during shutdown: %v", err)
			}
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <cityId>",
		Short: "Fetch and print the merged forecast for one city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			forecast, err := newService(cfg).Reconcile(ctx, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(forecast)
		},
	}
}

func citiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the supported cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, g := range city.Groups() {
				fmt.Fprintln(out, g.Label)
				for _, c := range g.Cities {
					fmt.Fprintf(out, "  %s  %s  (weekly area %s)\n", c.ID, c.Label, city.WeeklyAreaCode(c.ID))
				}
			}
			return nil
		},
	}
}
