// shelterdex-setup provisions the Austin Animal Center outcomes collection:
// it attaches the schema validator and builds the two secondary indexes.
// One-shot and idempotent, so it is safe to re-run against an already
// provisioned collection.
//
// Usage:
//
//	shelterdex-setup [-env local] [-collection animals] [-dry-run] [-seed docs.json]
//
// -env selects the config file (local, dev, prod); when omitted the ENV
// variable decides, same as the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/grazioso-salvare/shelterdex/internal/config"
	dbMongo "github.com/grazioso-salvare/shelterdex/internal/db/mongo"
	logpkg "github.com/grazioso-salvare/shelterdex/internal/logger"
	provisionuc "github.com/grazioso-salvare/shelterdex/internal/usecase/provision"
	"github.com/grazioso-salvare/shelterdex/internal/version"
)

type flags struct {
	env         string
	collection  string
	seedFile    string
	dryRun      bool
	timeoutSec  int
	showVersion bool
}

func parseFlags() flags {
	f := flags{}
	flag.StringVar(&f.env, "env", "", "config environment (default: $ENV or local)")
	flag.StringVar(&f.collection, "collection", "", "target collection (default: from config)")
	flag.StringVar(&f.seedFile, "seed", "", "JSON array of documents to insert after provisioning")
	flag.BoolVar(&f.dryRun, "dry-run", false, "print the validator and index specs without touching the database")
	flag.IntVar(&f.timeoutSec, "timeout", 30, "overall timeout in seconds")
	flag.BoolVar(&f.showVersion, "version", false, "print build info and exit")
	flag.Parse()
	return f
}

// resolveEnv gives the -env flag precedence over the ENV variable.
func resolveEnv(override string) string {
	if override != "" {
		return override
	}
	return config.GetEnv()
}

func main() {
	f := parseFlags()
	if f.showVersion {
		fmt.Println(version.String())
		return
	}

	env := resolveEnv(f.env)

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	collection := cfg.Database.Collection
	if f.collection != "" {
		collection = f.collection
	}

	if f.dryRun {
		// No admin connection needed to render the payload.
		printSpecs(provisionuc.New(nil, collection, logger))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(f.timeoutSec)*time.Second)
	defer cancel()

	store, err := dbMongo.NewStore(ctx, dbMongo.Config{
		URI:      cfg.Database.URI,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer func() { _ = store.Close(context.Background()) }()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	svc := provisionuc.New(store, collection, logger)
	if err := svc.Apply(ctx); err != nil {
		logger.Fatal("Provisioning failed", zap.Error(err))
	}

	logger.Info("Collection provisioned",
		zap.String("database", cfg.Database.Database),
		zap.String("collection", collection),
	)

	if f.seedFile != "" {
		if err := seed(ctx, store, collection, f.seedFile, logger); err != nil {
			logger.Fatal("Seeding failed", zap.Error(err))
		}
	}
}

func seed(ctx context.Context, store *dbMongo.Store, collection, path string, logger *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = file.Close() }()

	docs, err := provisionuc.LoadDocuments(file)
	if err != nil {
		return err
	}

	_, err = provisionuc.NewSeeder(store, collection, logger).Seed(ctx, docs)
	return err
}

func printSpecs(svc *provisionuc.Service) {
	validator, indexes := svc.Specs()
	fmt.Println(validator)
	for _, idx := range indexes {
		fmt.Println(idx)
	}
}
