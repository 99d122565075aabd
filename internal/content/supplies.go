package content

import (
	"unicode"
	"unicode/utf8"
)

const (
	defaultSupplyDescription = "Helps remove the stain effectively"
	defaultPaddedDescription = "Necessary for the stain removal process"
)

var supplyDescriptions = map[string]string{
	"liquid dish soap":           "Gentle degreaser that helps break down many types of stains",
	"liquid laundry detergent":   "Formulated to remove a variety of stains from fabrics",
	"powdered laundry detergent": "Contains enzymes that help break down protein-based stains",
	"distilled white vinegar":    "Mild acid that helps dissolve stains and odors",
	"hydrogen peroxide":          "Mild bleaching agent safe for many fabrics",
	"baking soda":                "Absorbent powder that helps neutralize odors and lift stains",
	"isopropyl alcohol":          "Solvent that can dissolve many oil-based stains",
	"carbonated water":           "The bubbles help lift fresh stains from fabric fibers",
	"enzymatic stain remover":    "Contains enzymes that break down specific types of stains",
	"household ammonia":          "Strong cleaner effective on grease and some stubborn stains",
	"clean white cloth":          "For blotting stains without transferring dyes",
	"soft-bristled brush":        "For gently working cleaner into stains",
	"cold water":                 "For rinsing and diluting stain-removing solutions",
	"warm water":                 "Helps activate cleaning agents for better stain removal",
	"cotton swabs":               "For precise application of cleaning solutions",
	"spray bottle":               "For applying cleaning solutions evenly",
	"paper towels":               "For absorbing excess moisture and blotting stains",
	"sponge":                     "For applying and working in cleaning solutions",
	"gloves":                     "To protect hands from cleaning chemicals",
	"lemon juice":                "Natural acid that helps brighten and remove some stains",
	"salt":                       "Abrasive agent that can help lift stains when combined with other cleaners",
	"ice cubes":                  "For hardening substances like gum or wax for easier removal",
	"stain remover stick":        "Concentrated pre-treatment for stubborn stains",
	"oxygen bleach":              "Color-safe bleach that is effective on many organic stains",
	"shaving cream":              "Contains surfactants that help lift grease and oil stains",
}

// commonSupplies are appended when a guide does not list them.
var commonSupplies = []string{"clean white cloth", "soft-bristled brush", "gloves"}

// BuildSupplies normalizes, dedupes and describes products, then pads in the common supplies.
// Empty names are dropped.
func BuildSupplies(products []string) []Supply {
	seen := make(map[string]struct{}, len(products)+len(commonSupplies))
	out := make([]Supply, 0, len(products)+len(commonSupplies))

	add := func(name, fallback string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		desc, ok := supplyDescriptions[name]
		if !ok {
			desc = fallback
		}
		out = append(out, Supply{Name: capitalize(name), Description: desc})
	}

	for _, p := range products {
		add(NormalizeProductName(p), defaultSupplyDescription)
	}
	for _, s := range commonSupplies {
		add(s, defaultPaddedDescription)
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
