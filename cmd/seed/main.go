package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stainsolver/stainsolver-backend/internal/app"
	"github.com/stainsolver/stainsolver-backend/internal/seed"
)

func main() {
	var strict bool
	flag.BoolVar(&strict, "strict", false, "exit non-zero when any guide is skipped as invalid")
	flag.Parse()

	os.Exit(run(strict))
}

func run(strict bool) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, cfg, err := app.Bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		return 1
	}
	defer log.Sync()

	catalog, err := seed.Load()
	if err != nil {
		log.Error("load seed catalog", "error", err)
		return 1
	}

	dbService, err := app.OpenDatabase(log, cfg)
	if err != nil {
		log.Error("open database", "error", err)
		return 1
	}
	defer func() { _ = dbService.Close() }()

	r := app.NewRepos(dbService.DB(), log)
	res, err := seed.NewSeeder(log, r.Stain, r.Material, r.Guide).Run(ctx, catalog)
	if err != nil {
		log.Error("seed failed", "error", err)
		return 1
	}

	fmt.Printf("stains +%d, materials +%d, guides +%d (%d existing, %d skipped)\n",
		res.StainsCreated, res.MaterialsCreated, res.GuidesCreated, res.GuidesExisting, len(res.Skipped))
	for _, f := range res.Skipped {
		fmt.Printf("  skipped %s/%s:\n", f.StainName, f.MaterialName)
		for _, e := range f.Errors {
			fmt.Printf("    - %s\n", e)
		}
	}
	if strict && len(res.Skipped) > 0 {
		return 1
	}
	return 0
}
