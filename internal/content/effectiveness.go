package content

import (
	"fmt"
	"strings"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
)

type tierProfile struct {
	rating string
	fresh  int
	old    int
	setIn  int
	// successRate feeds GeneratedContent.SuccessRate.
	successRate int
}

var tierProfiles = map[types.Effectiveness]tierProfile{
	types.EffectivenessExcellent: {rating: "excellent (highly effective)", fresh: 95, old: 85, setIn: 75, successRate: 95},
	types.EffectivenessGood:      {rating: "good", fresh: 85, old: 70, setIn: 55, successRate: 80},
	types.EffectivenessFair:      {rating: "moderate", fresh: 70, old: 50, setIn: 35, successRate: 65},
	types.EffectivenessPoor:      {rating: "challenging", fresh: 50, old: 30, setIn: 15, successRate: 45},
}

var unknownTier = tierProfile{rating: "variable", fresh: 65, old: 45, setIn: 25, successRate: 65}

func profileFor(tier types.Effectiveness) tierProfile {
	if p, ok := tierProfiles[tier]; ok {
		return p
	}
	return unknownTier
}

var effectivenessOpeners = []string{
	"This method is rated %[1]s for %[2]s on %[3]s.",
	"For %[2]s on %[3]s, this approach is rated %[1]s.",
	"Our rating for removing %[2]s from %[3]s with this method: %[1]s.",
}

// ModelEffectiveness maps the authored tier to success rates and an explanation.
// The opener varies per stain/material pair and is stable across calls.
func ModelEffectiveness(tier types.Effectiveness, stain *types.Stain, material *types.Material) EffectivenessData {
	p := profileFor(tier)
	stainName, materialName := stainLabel(stain), materialLabel(material)

	opener := effectivenessOpeners[pick(pairSeed(stain, material), "effectiveness", len(effectivenessOpeners))]
	desc := fmt.Sprintf(opener, p.rating, stainName, materialName)

	switch tier {
	case types.EffectivenessExcellent, types.EffectivenessGood:
		desc += " It works well when applied promptly, with a high success rate for fresh stains. Even older stains respond well to this treatment in most cases."
	case types.EffectivenessFair:
		desc += " It works reasonably well on fresh stains, but older or set-in stains may require multiple treatments or professional cleaning."
	default:
		desc += fmt.Sprintf(" %s stains can be particularly difficult to remove from %s, especially after they've had time to set. For best results, treat the stain immediately and consider professional cleaning for valuable items.",
			capitalize(stainName), materialName)
	}

	return EffectivenessData{
		Rating:      p.rating,
		Description: desc,
		FreshStains: p.fresh,
		OldStains:   p.old,
		SetInStains: p.setIn,
	}
}

func pairSeed(stain *types.Stain, material *types.Material) uint64 {
	var sid, mid uint
	if stain != nil {
		sid = stain.ID
	}
	if material != nil {
		mid = material.ID
	}
	return Seed(sid, mid)
}

// stainLabel returns the lower-cased display name, falling back to the slug.
func stainLabel(s *types.Stain) string {
	if s == nil {
		return "stain"
	}
	if s.DisplayName != "" {
		return strings.ToLower(s.DisplayName)
	}
	return strings.ReplaceAll(s.Name, "_", " ")
}

func materialLabel(m *types.Material) string {
	if m == nil {
		return "material"
	}
	if m.DisplayName != "" {
		return strings.ToLower(m.DisplayName)
	}
	return strings.ReplaceAll(m.Name, "_", " ")
}
