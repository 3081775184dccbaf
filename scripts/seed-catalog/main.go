package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"phone-assistant/config"
	phoneSQLite "phone-assistant/internal/phone/repository/sqlite"
	"phone-assistant/pkg/log"
	"phone-assistant/pkg/sqlite"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config.yaml")
	glob := pflag.String("glob", "", "seed files to load (default: catalog.seed_glob)")
	dryRun := pflag.Bool("dry-run", false, "validate the seed files without writing")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})

	ctx := context.Background()

	pattern := *glob
	if pattern == "" {
		pattern = cfg.Catalog.SeedGlob
	}
	if pattern == "" {
		logger.Fatal(ctx, "No seed files: pass --glob or set catalog.seed_glob")
	}

	if *dryRun {
		phones, err := phoneSQLite.LoadSeedFiles(pattern)
		if err != nil {
			logger.Fatalf(ctx, "Invalid seed files: %v", err)
		}
		logger.Infof(ctx, "Seed files OK: %d phones in %s", len(phones), pattern)
		return
	}

	db, err := sqlite.Open(ctx, cfg.Catalog.DatabasePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	repo, err := phoneSQLite.New(ctx, db, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize phone catalog: %v", err)
	}

	n, err := phoneSQLite.Seed(ctx, repo, pattern)
	if err != nil {
		logger.Fatalf(ctx, "Seed failed: %v", err)
	}

	total, err := repo.CountPhones(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to count phones: %v", err)
	}
	logger.Infof(ctx, "Seed complete! %d phones written, %d in catalog.", n, total)
}
