package content

import "strings"

type synonym struct {
	pattern   string
	canonical string
}

// Order matters: the first pattern found in the name wins.
var productSynonyms = []synonym{
	{"dish soap", "liquid dish soap"},
	{"dishwashing liquid", "liquid dish soap"},
	{"dish washing soap", "liquid dish soap"},
	{"dishwashing soap", "liquid dish soap"},
	{"laundry detergent", "liquid laundry detergent"},
	{"detergent", "liquid laundry detergent"},
	{"washing powder", "powdered laundry detergent"},
	{"white vinegar", "distilled white vinegar"},
	{"vinegar", "distilled white vinegar"},
	{"hydrogen peroxide 3%", "hydrogen peroxide"},
	{"3% hydrogen peroxide", "hydrogen peroxide"},
	{"baking soda", "baking soda"},
	{"sodium bicarbonate", "baking soda"},
	{"rubbing alcohol", "isopropyl alcohol"},
	{"isopropyl", "isopropyl alcohol"},
	{"club soda", "carbonated water"},
	{"enzyme cleaner", "enzymatic stain remover"},
	{"enzyme stain remover", "enzymatic stain remover"},
	{"ammonia solution", "household ammonia"},
	{"diluted ammonia", "household ammonia"},
	{"white cloth", "clean white cloth"},
	{"clean cloth", "clean white cloth"},
	{"soft brush", "soft-bristled brush"},
	{"soft bristle brush", "soft-bristled brush"},
	{"rubber gloves", "gloves"},
	{"paper towel", "paper towels"},
}

var canonicalProducts = func() map[string]struct{} {
	out := make(map[string]struct{}, len(productSynonyms))
	for _, s := range productSynonyms {
		out[s.canonical] = struct{}{}
	}
	return out
}()

// NormalizeProductName canonicalizes a free-text supply name so spelling variants collapse
// into one supply entry. Canonical names map to themselves, which keeps the function idempotent.
func NormalizeProductName(name string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if _, ok := canonicalProducts[normalized]; ok {
		return normalized
	}
	for _, s := range productSynonyms {
		if normalized == s.pattern || strings.Contains(normalized, s.pattern) {
			return s.canonical
		}
	}
	return normalized
}
