package content

import (
	"fmt"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/domain/catalog"
)

var (
	delicateMaterials = map[string]struct{}{"silk": {}, "wool": {}, "suede": {}, "leather": {}}
	oilyStains        = map[string]struct{}{"oil": {}, "grease": {}, "lipstick": {}}
)

// GenerateIntro writes the opening paragraph, adding material and stain context where it applies.
func GenerateIntro(stain *types.Stain, material *types.Material) string {
	sn, mn := stainLabel(stain), materialLabel(material)

	intro := fmt.Sprintf("Removing %[1]s stains from %[2]s can be tricky, but with the right technique, it's usually fixable. This guide walks you through step-by-step how to get rid of %[1]s stains on %[2]s using common household supplies.", sn, mn)

	if material != nil {
		if _, ok := delicateMaterials[material.Name]; ok {
			intro += fmt.Sprintf(" Since %s is a delicate material, you'll need to take extra care to avoid damaging the fibers while removing the stain.", mn)
		} else if material.Type == catalog.MaterialHardSurface {
			intro += fmt.Sprintf(" %s surfaces require special care to remove stains without causing damage to the finish or material.", capitalize(mn))
		}
	}

	if stain != nil {
		_, oily := oilyStains[stain.Name]
		_, protein := proteinStains[stain.Name]
		switch {
		case oily:
			intro += fmt.Sprintf(" %s stains contain oils that can be particularly stubborn to remove, especially after they've had time to set into the fabric.", capitalize(sn))
		case protein:
			intro += fmt.Sprintf(" As a protein-based stain, %s requires careful treatment, since hot water can make it set permanently into the fibers.", sn)
		case stain.Category == catalog.CategoryBeverage:
			intro += fmt.Sprintf(" Like most beverage stains, %s can contain sugars and tannins that bond with fibers over time, making quick action important.", sn)
		}
	}
	return intro
}
