package content

import (
	"strings"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
)

const (
	TimeQuick   = "5-10 minutes"
	TimeLong    = "15-20 minutes"
	TimeSoaking = "Several hours"

	DifficultyEasy      = "Easy"
	DifficultyModerate  = "Moderate"
	DifficultyDifficult = "Difficult"
)

// Assemble builds the page content for one guide. It never fails; quality gating happens in
// the validation package.
func Assemble(stain *types.Stain, material *types.Material, raw RawGuide) GeneratedContent {
	seed := pairSeed(stain, material)

	steps := SynthesizeSteps(raw.PreTreatment, raw.WashMethod, seed)
	warnings := raw.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return GeneratedContent{
		Intro:         GenerateIntro(stain, material),
		Steps:         steps,
		Supplies:      BuildSupplies(raw.Products),
		Warnings:      warnings,
		Effectiveness: ModelEffectiveness(raw.Effectiveness, stain, material),
		FAQs:          GenerateFAQs(stain, material, raw.PreTreatment, raw.WashMethod, warnings),
		Difficulty:    difficulty(raw.Effectiveness, len(steps)),
		TimeRequired:  timeRequired(raw.WashMethod, len(steps)),
		SuccessRate:   profileFor(raw.Effectiveness).successRate,
	}
}

func timeRequired(washMethod string, steps int) string {
	wash := strings.ToLower(washMethod)
	if strings.Contains(wash, "overnight") || strings.Contains(wash, "hours") {
		return TimeSoaking
	}
	if steps > 4 {
		return TimeLong
	}
	return TimeQuick
}

func difficulty(tier types.Effectiveness, steps int) string {
	switch {
	case tier == types.EffectivenessPoor:
		return DifficultyDifficult
	case tier == types.EffectivenessFair || steps > 5:
		return DifficultyModerate
	}
	return DifficultyEasy
}
