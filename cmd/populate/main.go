package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/seed"
	"solar-system-server/internal/shared/cache"
	"solar-system-server/internal/shared/config"
	"solar-system-server/internal/shared/database"
	"solar-system-server/internal/shared/logger"
	redisclient "solar-system-server/internal/shared/redis"

	"github.com/spf13/cobra"
)

var (
	clearData      bool
	verbose        bool
	includeMoons   bool
	includeRings   bool
	updateExisting bool
	exportJSON     string
	exportXLSX     string
	dryRun         bool
)

var rootCmd = &cobra.Command{
	Use:   "populate",
	Short: "Populate the solar system catalog with scientific data",
	Long: `Load the canonical solar system dataset (eight planets, Pluto and the Sun)
into the database.

Existing bodies are left untouched unless --update-existing is given.
--clear removes every stored body first, after writing a timestamped backup.

Examples:
  # Seed an empty database with extended descriptions
  populate --include-moons --include-rings

  # Rebuild the catalog and keep a copy of the result
  populate --clear --update-existing --export-json planets.json

  # Show what a refresh would change without writing
  populate --update-existing --dry-run --verbose
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPopulate,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&clearData, "clear", false, "Delete all existing bodies before populating")
	flags.BoolVar(&includeMoons, "include-moons", false, "Append moon system descriptions to compositions")
	flags.BoolVar(&includeRings, "include-rings", false, "Append ring system descriptions to compositions")
	flags.BoolVar(&updateExisting, "update-existing", false, "Overwrite bodies that already exist")
	flags.StringVar(&exportJSON, "export-json", "", "Export the populated catalog to a JSON file")
	flags.StringVar(&exportXLSX, "export-xlsx", "", "Export the populated catalog to an Excel workbook")
	flags.BoolVar(&dryRun, "dry-run", false, "Run against an in-memory copy of the catalog without touching the database schema or rows")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print per-body progress and a detailed summary")

	rootCmd.AddCommand(validateCmd, exportCmd, importCmd, activateCmd, deactivateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the connections shared by every command
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *database.DB
	redis  *redisclient.Client
	repo   *planet.Repository
	seed   *seed.Service
	cache  *cache.ResponseCache
}

// openApp connects to the database and Redis. A readOnly app leaves the
// schema as it is.
func openApp(ctx context.Context, readOnly bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	appLogger := logger.New(os.Stderr, logCfg)

	db, err := database.Connect(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := prepareSchema(ctx, db, cfg.Database.MigrationsPath, readOnly); err != nil {
		db.Close()
		return nil, err
	}

	// The cache is optional for the CLI; a failed connection only skips purging
	redisClient, err := redisclient.Connect(ctx, cfg.Redis, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, cached responses will expire on their own", "error", err)
		redisClient = nil
	}

	repo := planet.NewRepository(db, appLogger)

	return &app{
		cfg:    cfg,
		logger: appLogger,
		db:     db,
		redis:  redisClient,
		repo:   repo,
		seed:   seed.NewService(repo, cfg.Seed, appLogger),
		cache:  cache.New(redisClient, cfg.Cache, appLogger),
	}, nil
}

func prepareSchema(ctx context.Context, db *database.DB, dir string, readOnly bool) error {
	if readOnly {
		return nil
	}
	if err := db.RunMigrations(ctx, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (a *app) Close() {
	a.redis.Close()
	a.db.Close()
}

// purgeCache drops cached API responses after the catalog changed
func (a *app) purgeCache(ctx context.Context) {
	removed, err := a.cache.Purge(ctx)
	if err != nil {
		a.logger.Warn("Failed to purge response cache", "error", err)
		return
	}
	if removed > 0 {
		a.logger.Info("Purged cached responses", "keys", removed)
	}
}

func runPopulate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a, err := openApp(ctx, dryRun)
	if err != nil {
		return err
	}
	defer a.Close()

	service := a.seed
	if dryRun {
		service, err = a.dryRunService(ctx)
		if err != nil {
			return err
		}
	}

	opts := seed.Options{
		Clear:          clearData,
		IncludeMoons:   includeMoons,
		IncludeRings:   includeRings,
		UpdateExisting: updateExisting,
	}

	if verbose {
		fmt.Fprintln(out, "Starting Solar System Data Population")
		fmt.Fprintf(out, "Options: Moons=%t, Rings=%t, Update=%t, DryRun=%t\n",
			opts.IncludeMoons, opts.IncludeRings, opts.UpdateExisting, dryRun)
	}

	report, err := service.Populate(ctx, opts)
	if err != nil {
		return err
	}

	printReport(out, report, verbose)

	if exportJSON != "" {
		if _, err := service.ExportSnapshot(ctx, exportJSON); err != nil {
			fmt.Fprintf(out, "Failed to export to %s: %v\n", exportJSON, err)
		} else {
			fmt.Fprintf(out, "Exported planetary data to: %s\n", exportJSON)
		}
	}

	if exportXLSX != "" {
		if n, err := service.ExportSpreadsheet(ctx, exportXLSX); err != nil {
			fmt.Fprintf(out, "Failed to export to %s: %v\n", exportXLSX, err)
		} else {
			fmt.Fprintf(out, "Exported %d bodies to: %s\n", n, exportXLSX)
		}
	}

	if verbose {
		summary, err := service.Summary(ctx)
		if err != nil {
			return err
		}
		summary.Print(out)
	}

	if dryRun {
		fmt.Fprintln(out, "\nDry run: no changes were written to the database")
		return nil
	}

	a.purgeCache(ctx)
	return nil
}

// dryRunService seeds an in-memory copy of the stored catalog. Backups made
// during a dry run go to a throwaway directory.
func (a *app) dryRunService(ctx context.Context) (*seed.Service, error) {
	bodies, err := a.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for dry run: %w", err)
	}

	backupDir, err := os.MkdirTemp("", "planet-dry-run-")
	if err != nil {
		return nil, fmt.Errorf("failed to create dry run directory: %w", err)
	}
	cobra.OnFinalize(func() { os.RemoveAll(backupDir) })

	seedCfg := a.cfg.Seed
	seedCfg.BackupDir = backupDir

	a.logger.Info("Dry run against in-memory catalog", "bodies", len(bodies))
	return seed.NewService(planet.NewMemoryStoreFrom(bodies), seedCfg, a.logger), nil
}
