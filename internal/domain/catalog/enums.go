package catalog

type StainCategory string

const (
	CategoryBeverage    StainCategory = "beverage"
	CategoryFood        StainCategory = "food"
	CategoryOil         StainCategory = "oil"
	CategoryInk         StainCategory = "ink"
	CategoryDirt        StainCategory = "dirt"
	CategoryBodilyFluid StainCategory = "bodily_fluid"
	CategoryMakeup      StainCategory = "makeup"
	CategoryGrass       StainCategory = "grass"
	CategoryOther       StainCategory = "other"
)

func (c StainCategory) Valid() bool {
	switch c {
	case CategoryBeverage, CategoryFood, CategoryOil, CategoryInk, CategoryDirt,
		CategoryBodilyFluid, CategoryMakeup, CategoryGrass, CategoryOther:
		return true
	}
	return false
}

type MaterialType string

const (
	MaterialNatural     MaterialType = "natural"
	MaterialSynthetic   MaterialType = "synthetic"
	MaterialLeather     MaterialType = "leather"
	MaterialUpholstery  MaterialType = "upholstery"
	MaterialHardSurface MaterialType = "hard_surface"
	MaterialOther       MaterialType = "other"
)

func (t MaterialType) Valid() bool {
	switch t {
	case MaterialNatural, MaterialSynthetic, MaterialLeather, MaterialUpholstery, MaterialHardSurface, MaterialOther:
		return true
	}
	return false
}

// Effectiveness is the coarse authored rating of how well a guide works.
type Effectiveness string

const (
	EffectivenessExcellent Effectiveness = "excellent"
	EffectivenessGood      Effectiveness = "good"
	EffectivenessFair      Effectiveness = "fair"
	EffectivenessPoor      Effectiveness = "poor"
)

func (e Effectiveness) Valid() bool {
	switch e {
	case EffectivenessExcellent, EffectivenessGood, EffectivenessFair, EffectivenessPoor:
		return true
	}
	return false
}
