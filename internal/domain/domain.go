package domain

import "github.com/stainsolver/stainsolver-backend/internal/domain/catalog"

type (
	Stain         = catalog.Stain
	Material      = catalog.Material
	Guide         = catalog.Guide
	StainCategory = catalog.StainCategory
	MaterialType  = catalog.MaterialType
	Effectiveness = catalog.Effectiveness
)

const (
	EffectivenessExcellent = catalog.EffectivenessExcellent
	EffectivenessGood      = catalog.EffectivenessGood
	EffectivenessFair      = catalog.EffectivenessFair
	EffectivenessPoor      = catalog.EffectivenessPoor
)
