package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stainsolver/stainsolver-backend/internal/app"
	"github.com/stainsolver/stainsolver-backend/internal/validation"
)

func main() {
	var reportPath string
	var concurrency int
	flag.StringVar(&reportPath, "report", validation.DefaultReportPath, "path of the JSON report")
	flag.IntVar(&concurrency, "concurrency", 8, "guides checked in parallel")
	flag.Parse()

	os.Exit(run(reportPath, concurrency))
}

func run(reportPath string, concurrency int) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	rep, err := validation.NewRunner(r.Guide, log, concurrency).Run(ctx)
	if err != nil {
		log.Error("validation run failed", "error", err)
		return 1
	}
	if err := validation.WriteReport(reportPath, rep); err != nil {
		log.Error("write report", "error", err, "path", reportPath)
		return 1
	}

	fmt.Printf("guides: %d total, %d valid, %d invalid (report: %s)\n",
		rep.Summary.Total, rep.Summary.Valid, rep.Summary.Invalid, reportPath)
	for _, f := range rep.Errors {
		fmt.Printf("  guide %d (%s/%s):\n", f.GuideID, f.StainName, f.MaterialName)
		for _, e := range f.Errors {
			fmt.Printf("    - %s\n", e)
		}
	}
	if !rep.Valid {
		return 1
	}
	return 0
}
