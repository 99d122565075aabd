package catalog

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos/testutil"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/domain/catalog"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
)

func TestStainAndMaterialRepos(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	stains := NewStainRepo(db, testutil.Logger(t))
	materials := NewMaterialRepo(db, testutil.Logger(t))

	created, err := stains.Create(dbc, []*types.Stain{
		{Name: "tea", DisplayName: "Tea", Color: "#B5651D", Category: catalog.CategoryBeverage},
		{Name: "coffee", DisplayName: "Coffee", Color: "#6F4E37", Category: catalog.CategoryBeverage},
	})
	if err != nil || len(created) != 2 {
		t.Fatalf("Create stains: err=%v len=%d", err, len(created))
	}
	if created[0].ID == 0 || created[0].Icon != "stain" {
		t.Fatalf("expected id and default icon, got %+v", created[0])
	}

	all, err := stains.List(dbc)
	if err != nil || len(all) != 2 {
		t.Fatalf("List stains: err=%v len=%d", err, len(all))
	}
	if all[0].Name != "coffee" {
		t.Fatalf("expected stains ordered by name, got %q first", all[0].Name)
	}

	if rows, err := stains.GetByNames(dbc, []string{"coffee"}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByNames: err=%v len=%d", err, len(rows))
	}
	if rows, err := stains.GetByNames(dbc, []string{"ketchup"}); err != nil || len(rows) != 0 {
		t.Fatalf("GetByNames missing: err=%v len=%d", err, len(rows))
	}
	if rows, err := stains.GetByIDs(dbc, []uint{created[1].ID}); err != nil || len(rows) != 1 || rows[0].Name != "coffee" {
		t.Fatalf("GetByIDs: err=%v rows=%v", err, rows)
	}

	_, err = stains.Create(dbc, []*types.Stain{{Name: "coffee", DisplayName: "Coffee", Color: "#000", Category: catalog.CategoryBeverage}})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}

	mats, err := materials.Create(dbc, []*types.Material{
		{Name: "cotton", DisplayName: "Cotton", Type: catalog.MaterialNatural},
	})
	if err != nil || len(mats) != 1 {
		t.Fatalf("Create materials: err=%v", err)
	}
	if rows, err := materials.GetByNames(dbc, []string{"cotton"}); err != nil || len(rows) != 1 || rows[0].Icon != "material" {
		t.Fatalf("GetByNames material: err=%v rows=%v", err, rows)
	}
}

func TestGuideRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewGuideRepo(db, testutil.Logger(t))

	coffee := testutil.SeedStain(t, ctx, db, "coffee", catalog.CategoryBeverage)
	wine := testutil.SeedStain(t, ctx, db, "wine", catalog.CategoryBeverage)
	cotton := testutil.SeedMaterial(t, ctx, db, "cotton", catalog.MaterialNatural)
	silk := testutil.SeedMaterial(t, ctx, db, "silk", catalog.MaterialNatural)
	marble := testutil.SeedMaterial(t, ctx, db, "marble", catalog.MaterialHardSurface)

	base := testutil.SeedGuide(t, ctx, db, coffee.ID, cotton.ID, catalog.EffectivenessExcellent)
	testutil.SeedGuide(t, ctx, db, coffee.ID, silk.ID, catalog.EffectivenessGood)
	testutil.SeedGuide(t, ctx, db, wine.ID, cotton.ID, catalog.EffectivenessFair)
	testutil.SeedGuide(t, ctx, db, wine.ID, marble.ID, catalog.EffectivenessPoor)

	rows, err := repo.GetByPair(dbc, coffee.ID, cotton.ID)
	if err != nil || len(rows) != 1 || rows[0].ID != base.ID {
		t.Fatalf("GetByPair: err=%v rows=%v", err, rows)
	}
	if len(rows[0].Products) != 3 || rows[0].Products[0] != "dish soap" {
		t.Fatalf("products did not round-trip: %#v", rows[0].Products)
	}
	if rows, err := repo.GetByPair(dbc, wine.ID, silk.ID); err != nil || len(rows) != 0 {
		t.Fatalf("GetByPair missing: err=%v len=%d", err, len(rows))
	}

	_, err = repo.Create(dbc, []*types.Guide{{
		StainID:       coffee.ID,
		MaterialID:    cotton.ID,
		PreTreatment:  "again",
		Products:      []string{"a"},
		WashMethod:    "again",
		Warnings:      []string{"w"},
		Effectiveness: catalog.EffectivenessGood,
	}})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected pair uniqueness violation, got %v", err)
	}

	related, err := repo.ListRelated(dbc, coffee.ID, cotton.ID, 4)
	if err != nil {
		t.Fatalf("ListRelated: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 related guides (coffee/silk, wine/cotton), got %d", len(related))
	}
	for _, g := range related {
		if g.ID == base.ID {
			t.Fatalf("related guides must exclude the guide itself")
		}
		if g.Stain == nil || g.Material == nil {
			t.Fatalf("related guides must preload stain and material")
		}
	}

	all, err := repo.List(dbc)
	if err != nil || len(all) != 4 {
		t.Fatalf("List: err=%v len=%d", err, len(all))
	}
	if all[0].Slug() != "coffee/cotton" {
		t.Fatalf("unexpected slug %q", all[0].Slug())
	}
}
