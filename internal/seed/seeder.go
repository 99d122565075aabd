package seed

import (
	"context"
	"fmt"

	"github.com/stainsolver/stainsolver-backend/internal/data/repos"
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/platform/dbctx"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/validation"
)

// Result counts what a seeding run inserted. Existing rows are left untouched.
type Result struct {
	StainsCreated    int
	MaterialsCreated int
	GuidesCreated    int
	GuidesExisting   int
	Skipped          []validation.GuideFailure
}

type Seeder struct {
	log       *logger.Logger
	stains    repos.StainRepo
	materials repos.MaterialRepo
	guides    repos.GuideRepo
}

func NewSeeder(baseLog *logger.Logger, stains repos.StainRepo, materials repos.MaterialRepo, guides repos.GuideRepo) *Seeder {
	return &Seeder{
		log:       baseLog.With("service", "Seeder"),
		stains:    stains,
		materials: materials,
		guides:    guides,
	}
}

// Run inserts missing stains, materials and guides. A guide failing the content checks is
// reported in Result.Skipped and not stored.
func (s *Seeder) Run(ctx context.Context, c *Catalog) (Result, error) {
	var res Result
	dbc := dbctx.New(ctx)

	stains, created, err := s.ensureStains(dbc, c.Stains)
	if err != nil {
		return res, err
	}
	res.StainsCreated = created

	materials, created, err := s.ensureMaterials(dbc, c.Materials)
	if err != nil {
		return res, err
	}
	res.MaterialsCreated = created

	for _, g := range c.Guides {
		stain, material := stains[g.StainName], materials[g.MaterialName]
		if stain == nil || material == nil {
			return res, fmt.Errorf("guide %s/%s: stain or material missing after insert", g.StainName, g.MaterialName)
		}
		existing, err := s.guides.GetByPair(dbc, stain.ID, material.ID)
		if err != nil {
			return res, fmt.Errorf("lookup guide %s/%s: %w", g.StainName, g.MaterialName, err)
		}
		if len(existing) > 0 {
			res.GuidesExisting++
			continue
		}

		row := &types.Guide{
			StainID:       stain.ID,
			Stain:         stain,
			MaterialID:    material.ID,
			Material:      material,
			PreTreatment:  g.PreTreatment,
			Products:      g.Products,
			WashMethod:    g.WashMethod,
			Warnings:      g.Warnings,
			Effectiveness: g.Effectiveness,
		}
		if f, ok := validation.CheckGuide(row); !ok {
			s.log.Warn("skipping invalid guide", "stain", g.StainName, "material", g.MaterialName, "errors", f.Errors)
			res.Skipped = append(res.Skipped, f)
			continue
		}
		if _, err := s.guides.Create(dbc, []*types.Guide{row}); err != nil {
			return res, fmt.Errorf("create guide %s/%s: %w", g.StainName, g.MaterialName, err)
		}
		res.GuidesCreated++
	}

	s.log.Info("seed finished",
		"stains_created", res.StainsCreated,
		"materials_created", res.MaterialsCreated,
		"guides_created", res.GuidesCreated,
		"guides_existing", res.GuidesExisting,
		"guides_skipped", len(res.Skipped),
	)
	return res, nil
}

func (s *Seeder) ensureStains(dbc dbctx.Context, seeds []StainSeed) (map[string]*types.Stain, int, error) {
	names := make([]string, 0, len(seeds))
	for _, sd := range seeds {
		names = append(names, sd.Name)
	}
	rows, err := s.stains.GetByNames(dbc, names)
	if err != nil {
		return nil, 0, fmt.Errorf("lookup stains: %w", err)
	}
	byName := make(map[string]*types.Stain, len(seeds))
	for _, r := range rows {
		byName[r.Name] = r
	}

	var missing []*types.Stain
	for _, sd := range seeds {
		if byName[sd.Name] != nil {
			continue
		}
		missing = append(missing, &types.Stain{
			Name:        sd.Name,
			DisplayName: sd.DisplayName,
			Color:       sd.Color,
			Category:    sd.Category,
			Description: sd.Description,
		})
	}
	created, err := s.stains.Create(dbc, missing)
	if err != nil {
		return nil, 0, fmt.Errorf("create stains: %w", err)
	}
	for _, r := range created {
		byName[r.Name] = r
	}
	return byName, len(created), nil
}

func (s *Seeder) ensureMaterials(dbc dbctx.Context, seeds []MaterialSeed) (map[string]*types.Material, int, error) {
	names := make([]string, 0, len(seeds))
	for _, sd := range seeds {
		names = append(names, sd.Name)
	}
	rows, err := s.materials.GetByNames(dbc, names)
	if err != nil {
		return nil, 0, fmt.Errorf("lookup materials: %w", err)
	}
	byName := make(map[string]*types.Material, len(seeds))
	for _, r := range rows {
		byName[r.Name] = r
	}

	var missing []*types.Material
	for _, sd := range seeds {
		if byName[sd.Name] != nil {
			continue
		}
		missing = append(missing, &types.Material{
			Name:        sd.Name,
			DisplayName: sd.DisplayName,
			Type:        sd.Type,
			CareNotes:   sd.CareNotes,
			CommonUses:  sd.CommonUses,
			Description: sd.Description,
		})
	}
	created, err := s.materials.Create(dbc, missing)
	if err != nil {
		return nil, 0, fmt.Errorf("create materials: %w", err)
	}
	for _, r := range created {
		byName[r.Name] = r
	}
	return byName, len(created), nil
}
