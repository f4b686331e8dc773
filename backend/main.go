package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"salesrep-roster/backend/handlers"
	"salesrep-roster/backend/models"
	"salesrep-roster/backend/models/seed"
	"salesrep-roster/backend/services"
	"salesrep-roster/backend/system"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var version = "1.0.0"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Sales representative roster service",
		Long: `Assigns countries to sales representatives region by region.

Every representative covers between 3 and 7 countries, each region uses the
fewest representatives possible, and workload within a region is balanced.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(seedCmd(&configPath))
	rootCmd.AddCommand(salesRepCmd())
	rootCmd.AddCommand(optimalCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := system.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	return cmd
}

func seedCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load countries into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := system.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if file != "" {
				cfg.SeedFile = file
			}

			db, err := openDatabase(cfg.DBPath)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			countries, err := loadCountries(cfg.SeedFile)
			if err != nil {
				return err
			}
			n, err := services.NewCountryService(db).Seed(cmd.Context(), countries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d countries\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML country file (default: built-in list)")
	return cmd
}

func salesRepCmd() *cobra.Command {
	var file, region string

	cmd := &cobra.Command{
		Use:   "salesrep",
		Short: "Print the representative count range per region",
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := loadRegion(file, region)
			if err != nil {
				return err
			}
			salesReps, err := services.CalculateSalesReps(countries)
			if err != nil {
				return err
			}
			return printJSON(cmd, salesReps)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML country file (default: built-in list)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "only this region")
	return cmd
}

func optimalCmd() *cobra.Command {
	var file, region string

	cmd := &cobra.Command{
		Use:   "optimal",
		Short: "Print the optimal sales rep roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := loadRegion(file, region)
			if err != nil {
				return err
			}
			roster, err := services.CalculateOptimalSalesRepRoster(countries)
			if err != nil {
				return err
			}
			return printJSON(cmd, roster)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML country file (default: built-in list)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "only this region")
	return cmd
}

func serve(ctx context.Context, cfg system.Config) error {
	if err := system.InitLogger(cfg.LogDir); err != nil {
		system.Warn("Could not initialize file logger: %v", err)
	}
	defer system.Close()

	system.Info("Roster service starting...")

	generated, err := cfg.ResolveJWTSecret()
	if err != nil {
		return err
	}
	if generated {
		system.Warn("No jwt_secret configured, using a random one; admin sessions end on restart")
	}

	// 1. Setup Database
	db, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDatabase(db)
	system.Info("Database connected: %s", cfg.DBPath)

	// 2. Seed countries on first start
	countries, err := loadCountries(cfg.SeedFile)
	if err != nil {
		return err
	}
	if _, err := services.NewCountryService(db).Seed(ctx, countries); err != nil {
		return err
	}

	// 3. Setup Handlers
	var metrics *services.Metrics
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = services.NewMetrics(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	h := handlers.NewHandler(db, metrics, cfg.JWTSecret)
	h.MetricsHandler = metricsHandler
	app := handlers.NewApp(h, os.Stdout)

	// Graceful Shutdown Handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c // Wait for signal
		system.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	handlers.AddEvent("success", "Roster service started")
	system.Info("Server starting on %s", cfg.Listen)
	if err := app.Listen(cfg.Listen); err != nil {
		return errors.Wrapf(err, "listening on %s", cfg.Listen)
	}
	return nil
}

// openDatabase opens the SQLite database and migrates the schema
func openDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}

	if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
		system.Warn("Failed to enable WAL mode: %v", err)
	}

	if err := db.AutoMigrate(&models.Country{}, &models.Admin{}); err != nil {
		return nil, errors.Wrap(err, "migrating database")
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		system.Warn("Closing database failed: %v", err)
	}
}

// loadCountries reads path, or the built-in list when path is empty
func loadCountries(path string) ([]models.Country, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}

// loadRegion loads a country list and keeps only region when it is set
func loadRegion(path, region string) ([]models.Country, error) {
	countries, err := loadCountries(path)
	if err != nil || region == "" {
		return countries, err
	}

	filtered := []models.Country{}
	for _, c := range countries {
		if c.Region == region {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
