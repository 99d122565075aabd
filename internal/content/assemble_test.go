package content

import (
	"testing"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
)

func coffeeOnCotton(tier types.Effectiveness) RawGuide {
	return RawGuide{
		PreTreatment:  "Blot immediately.",
		Products:      []string{"dish soap", "cold water", "cloth"},
		WashMethod:    "Apply soap. Rinse with cold water. Dry.",
		Warnings:      []string{"Never use hot water"},
		Effectiveness: tier,
	}
}

func TestAssembleExcellentCoffeeOnCotton(t *testing.T) {
	stain, material := testPair()
	got := Assemble(stain, material, coffeeOnCotton(types.EffectivenessExcellent))

	if len(got.Steps) < MinSteps || len(got.Steps) > MaxSteps {
		t.Fatalf("steps=%d", len(got.Steps))
	}
	found := false
	for _, s := range got.Supplies {
		if s.Name == "Liquid dish soap" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Liquid dish soap in %+v", got.Supplies)
	}
	if got.Effectiveness.FreshStains != 95 || got.Effectiveness.SetInStains != 75 {
		t.Fatalf("effectiveness=%+v", got.Effectiveness)
	}
	if got.Difficulty != DifficultyEasy || got.SuccessRate != 95 {
		t.Fatalf("difficulty=%q successRate=%d", got.Difficulty, got.SuccessRate)
	}
	if got.TimeRequired != TimeQuick {
		t.Fatalf("timeRequired=%q", got.TimeRequired)
	}
	if len(got.Warnings) != 1 || got.Warnings[0] != "Never use hot water" {
		t.Fatalf("warnings=%v", got.Warnings)
	}
	if got.Intro == "" || len(got.FAQs) < 3 {
		t.Fatalf("intro/faqs missing: %+v", got)
	}
}

func TestAssemblePoorCoffeeOnCotton(t *testing.T) {
	stain, material := testPair()
	got := Assemble(stain, material, coffeeOnCotton(types.EffectivenessPoor))
	if got.SuccessRate != 45 || got.Difficulty != DifficultyDifficult {
		t.Fatalf("successRate=%d difficulty=%q", got.SuccessRate, got.Difficulty)
	}
}

func TestAssembleDerivedFields(t *testing.T) {
	stain, material := testPair()
	cases := []struct {
		name       string
		tier       types.Effectiveness
		wash       string
		time       string
		difficulty string
		rate       int
	}{
		{"good_short", types.EffectivenessGood, "Rinse.", TimeQuick, DifficultyEasy, 80},
		{"fair_long", types.EffectivenessFair, "Apply. Wait. Scrub. Rinse. Dry.", TimeLong, DifficultyModerate, 65},
		{"soak_overnight", types.EffectivenessGood, "Soak Overnight in cold water.", TimeSoaking, DifficultyEasy, 80},
		{"soak_hours", types.EffectivenessExcellent, "Let it sit for two hours. Rinse.", TimeSoaking, DifficultyEasy, 95},
		{"six_steps", types.EffectivenessGood, "A. B. C. D. E. F. G. H.", TimeLong, DifficultyModerate, 80},
		{"unknown_tier", types.Effectiveness(""), "Rinse.", TimeQuick, DifficultyEasy, 65},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := coffeeOnCotton(tc.tier)
			raw.WashMethod = tc.wash
			got := Assemble(stain, material, raw)
			if got.TimeRequired != tc.time || got.Difficulty != tc.difficulty || got.SuccessRate != tc.rate {
				t.Fatalf("time=%q difficulty=%q rate=%d", got.TimeRequired, got.Difficulty, got.SuccessRate)
			}
		})
	}
}

func TestAssembleNilWarnings(t *testing.T) {
	stain, material := testPair()
	raw := coffeeOnCotton(types.EffectivenessGood)
	raw.Warnings = nil
	if got := Assemble(stain, material, raw); got.Warnings == nil {
		t.Fatalf("warnings must never be nil")
	}
}
