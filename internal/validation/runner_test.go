package validation

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	"github.com/stainsolver/stainsolver-backend/internal/data/repos/testutil"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/domain/catalog"
)

func TestRunnerReportsEveryFailingGuide(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	coffee := testutil.SeedStain(t, ctx, db, "coffee", catalog.CategoryBeverage)
	ink := testutil.SeedStain(t, ctx, db, "ink", catalog.CategoryInk)
	cotton := testutil.SeedMaterial(t, ctx, db, "cotton", catalog.MaterialNatural)
	silk := testutil.SeedMaterial(t, ctx, db, "silk", catalog.MaterialNatural)

	testutil.SeedGuide(t, ctx, db, coffee.ID, cotton.ID, catalog.EffectivenessExcellent)
	testutil.SeedGuide(t, ctx, db, ink.ID, cotton.ID, catalog.EffectivenessFair)

	thin := &types.Guide{
		StainID:       coffee.ID,
		MaterialID:    silk.ID,
		PreTreatment:  "Blot.",
		Products:      []string{"water", "cloth"},
		WashMethod:    "Rinse.",
		Warnings:      []string{},
		Effectiveness: catalog.EffectivenessGood,
	}
	if err := db.Omit("Stain", "Material").Create(thin).Error; err != nil {
		t.Fatalf("create thin guide: %v", err)
	}

	runner := NewRunner(repos.NewGuideRepo(db, testutil.Logger(t)), testutil.Logger(t), 2)
	rep, err := runner.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Valid || rep.Summary.Total != 3 || rep.Summary.Valid != 2 || rep.Summary.Invalid != 1 {
		t.Fatalf("summary=%+v valid=%v", rep.Summary, rep.Valid)
	}
	f := rep.Errors[0]
	if f.GuideID != thin.ID || f.StainName != "coffee" || f.MaterialName != "silk" || len(f.Errors) != 2 {
		t.Fatalf("failure=%+v", f)
	}

	path := filepath.Join(t.TempDir(), DefaultReportPath)
	if err := WriteReport(path, rep); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded.Summary.Invalid != 1 {
		t.Fatalf("decoded report: err=%v summary=%+v", err, decoded.Summary)
	}
}

func TestRunnerAllValid(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	s := testutil.SeedStain(t, ctx, db, "grass", catalog.CategoryGrass)
	m := testutil.SeedMaterial(t, ctx, db, "denim", catalog.MaterialNatural)
	testutil.SeedGuide(t, ctx, db, s.ID, m.ID, catalog.EffectivenessGood)

	rep, err := NewRunner(repos.NewGuideRepo(db, testutil.Logger(t)), testutil.Logger(t), 0).Run(ctx)
	if err != nil || !rep.Valid || len(rep.Errors) != 0 || rep.Summary.Total != 1 {
		t.Fatalf("err=%v report=%+v", err, rep)
	}
}
