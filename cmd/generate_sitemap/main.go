package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stainsolver/stainsolver-backend/internal/app"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

func main() {
	var out string
	flag.StringVar(&out, "out", "sitemap.xml", "output path")
	flag.Parse()

	os.Exit(run(out))
}

func run(out string) int {
	log, cfg, err := app.Bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		return 1
	}
	defer log.Sync()

	dbService, err := app.OpenDatabase(log, cfg)
	if err != nil {
		log.Error("open database", "error", err)
		return 1
	}
	defer func() { _ = dbService.Close() }()

	r := app.NewRepos(dbService.DB(), log)
	sitemap := services.NewSitemapService(log, r.Stain, r.Material, r.Guide, cfg.SitemapBaseURL, cfg.StoreTimeout)
	body, err := sitemap.XML(context.Background(), time.Now().UTC())
	if err != nil {
		log.Error("render sitemap", "error", err)
		return 1
	}
	if err := os.WriteFile(out, body, 0o644); err != nil {
		log.Error("write sitemap", "error", err, "path", out)
		return 1
	}
	log.Info("sitemap written", "path", out, "bytes", len(body))
	return 0
}
