package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stainsolver/stainsolver-backend/internal/content"
	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/seo"
)

const DefaultReportPath = "guide-validation-report.json"

type GuideFailure struct {
	GuideID      uint     `json:"guideId"`
	StainName    string   `json:"stainName"`
	MaterialName string   `json:"materialName"`
	Errors       []string `json:"errors"`
}

type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

type Report struct {
	Valid       bool           `json:"valid"`
	Errors      []GuideFailure `json:"errors"`
	Summary     Summary        `json:"summary"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Duration    string         `json:"duration"`
}

// Runner checks every stored guide independently and aggregates the failures.
type Runner struct {
	guides      repos.GuideRepo
	log         *logger.Logger
	concurrency int
}

func NewRunner(guides repos.GuideRepo, baseLog *logger.Logger, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Runner{guides: guides, log: baseLog.With("service", "GuideValidation"), concurrency: concurrency}
}

// Run returns an error only when the guides cannot be listed; per-guide problems land in the report.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	guides, err := r.guides.List(dbctx.New(ctx))
	if err != nil {
		return Report{}, fmt.Errorf("list guides: %w", err)
	}
	r.log.Info("validating guides", "count", len(guides))

	var (
		mu       sync.Mutex
		failures []GuideFailure
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, guide := range guides {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if f, ok := CheckGuide(guide); !ok {
				mu.Lock()
				failures = append(failures, f)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].GuideID < failures[j].GuideID })
	rep := Report{
		Valid:  len(failures) == 0,
		Errors: failures,
		Summary: Summary{
			Total:   len(guides),
			Valid:   len(guides) - len(failures),
			Invalid: len(failures),
		},
		GeneratedAt: time.Now().UTC(),
		Duration:    time.Since(start).Round(time.Millisecond).String(),
	}
	if rep.Errors == nil {
		rep.Errors = []GuideFailure{}
	}
	for _, f := range failures {
		r.log.Warn("guide failed validation", "guide_id", f.GuideID, "stain", f.StainName, "material", f.MaterialName, "errors", f.Errors)
	}
	r.log.Info("guide validation finished", "total", rep.Summary.Total, "valid", rep.Summary.Valid, "invalid", rep.Summary.Invalid)
	return rep, nil
}

// CheckGuide assembles the guide content and runs the content and structured-data checks.
// Stain and Material must be preloaded.
func CheckGuide(guide *types.Guide) (GuideFailure, bool) {
	f := GuideFailure{GuideID: guide.ID}
	if guide.Stain == nil || guide.Material == nil {
		f.Errors = []string{"Stain or material data not found"}
		return f, false
	}
	f.StainName, f.MaterialName = guide.Stain.Name, guide.Material.Name

	raw := content.RawGuideFrom(guide)
	generated := content.Assemble(guide.Stain, guide.Material, raw)

	res := ValidateGuide(raw, generated)
	f.Errors = append(f.Errors, Problems(res, raw, generated)...)
	f.Errors = append(f.Errors, ValidateHowTo(seo.BuildHowTo(guide.Stain.DisplayName, guide.Material.DisplayName, generated.Steps, generated.Supplies))...)
	f.Errors = append(f.Errors, ValidateFAQPage(seo.BuildFAQPage(generated.FAQs))...)
	return f, len(f.Errors) == 0
}

func WriteReport(path string, rep Report) error {
	body, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
