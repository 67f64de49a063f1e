// Command seeder imports Filipino word lists into the syllable catalog.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--list           comma-separated word list paths (default: seeder config)
//	--dry-run        parse and syllabify without writing to DB
//	--replace        re-import lists whose fingerprint is unchanged
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/pantig-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantig-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/pantig-backend/internal/app"
	"github.com/heartmarshall/pantig-backend/internal/app/seeder"
	"github.com/heartmarshall/pantig-backend/internal/config"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
	"github.com/heartmarshall/pantig-backend/migrations"
)

// Compile-time interface assertions.
var (
	_ seeder.CatalogBulkRepo = (*catalog.Repo)(nil)
	_ seeder.Resolver        = (*kwf.Dictionary)(nil)
)

func main() {
	listFlag := flag.String("list", "", "comma-separated word list paths")
	dryRunFlag := flag.Bool("dry-run", false, "parse and syllabify without writing to DB")
	replaceFlag := flag.Bool("replace", false, "re-import unchanged lists")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *replaceFlag {
		seederCfg.Replace = true
	}

	var lists []string
	if *listFlag != "" {
		for _, l := range strings.Split(*listFlag, ",") {
			if l = strings.TrimSpace(l); l != "" {
				lists = append(lists, l)
			}
		}
	}

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			logger.Error("migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	dict := app.NewDictionary(appCfg.Syllabifier, logger)
	dict.Warm()

	pipeline := seeder.NewPipeline(logger, catalog.New(pool), postgres.NewTxManager(pool), dict, *seederCfg)
	if err := pipeline.Run(ctx, lists); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
