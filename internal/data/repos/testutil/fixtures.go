package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/domain/catalog"
)

func SeedStain(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, category catalog.StainCategory) *types.Stain {
	tb.Helper()
	s := &types.Stain{
		Name:        name,
		DisplayName: displayName(name),
		Color:       "#6F4E37",
		Category:    category,
		Icon:        "stain",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed stain: %v", err)
	}
	return s
}

func SeedMaterial(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, kind catalog.MaterialType) *types.Material {
	tb.Helper()
	m := &types.Material{
		Name:        name,
		DisplayName: displayName(name),
		Type:        kind,
		CareNotes:   "care",
		Description: "material",
		CommonUses:  "uses",
		Icon:        "material",
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed material: %v", err)
	}
	return m
}

func SeedGuide(tb testing.TB, ctx context.Context, tx *gorm.DB, stainID, materialID uint, eff catalog.Effectiveness) *types.Guide {
	tb.Helper()
	g := &types.Guide{
		StainID:       stainID,
		MaterialID:    materialID,
		PreTreatment:  "Blot immediately.",
		Products:      []string{"dish soap", "cold water", "cloth"},
		WashMethod:    "Apply soap. Rinse with cold water. Dry.",
		Warnings:      []string{"Never use hot water"},
		Effectiveness: eff,
	}
	if err := tx.WithContext(ctx).Omit("Stain", "Material").Create(g).Error; err != nil {
		tb.Fatalf("seed guide: %v", err)
	}
	return g
}

func displayName(slug string) string {
	if slug == "" {
		return slug
	}
	out := []byte(slug)
	if out[0] >= 'a' && out[0] <= 'z' {
		out[0] -= 'a' - 'A'
	}
	for i := range out {
		if out[i] == '-' || out[i] == '_' {
			out[i] = ' '
		}
	}
	return string(out)
}
