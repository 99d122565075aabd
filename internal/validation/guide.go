package validation

import (
	"fmt"

	"github.com/stainsolver/stainsolver-backend/internal/content"
)

const (
	MinSteps    = content.MinSteps
	MaxSteps    = content.MaxSteps
	MinProducts = 3
	MinWarnings = 1
)

type Checks struct {
	HasSteps         bool `json:"hasSteps"`
	HasProducts      bool `json:"hasProducts"`
	HasWarnings      bool `json:"hasWarnings"`
	HasEffectiveness bool `json:"hasEffectiveness"`
}

type Result struct {
	Valid   bool   `json:"valid"`
	Results Checks `json:"results"`
}

// ValidateGuide applies the minimum-content thresholds to an authored guide and its generated content.
func ValidateGuide(raw content.RawGuide, generated content.GeneratedContent) Result {
	n := len(generated.Steps)
	checks := Checks{
		HasSteps:         n >= MinSteps && n <= MaxSteps,
		HasProducts:      len(raw.Products) >= MinProducts,
		HasWarnings:      len(raw.Warnings) >= MinWarnings,
		HasEffectiveness: raw.Effectiveness.Valid(),
	}
	return Result{
		Valid:   checks.HasSteps && checks.HasProducts && checks.HasWarnings && checks.HasEffectiveness,
		Results: checks,
	}
}

// Problems explains each failed check in a human-readable line.
func Problems(res Result, raw content.RawGuide, generated content.GeneratedContent) []string {
	var out []string
	if !res.Results.HasSteps {
		out = append(out, fmt.Sprintf("Guide needs between %d and %d steps, found %d", MinSteps, MaxSteps, len(generated.Steps)))
	}
	if !res.Results.HasProducts {
		out = append(out, fmt.Sprintf("Guide needs at least %d products, found %d", MinProducts, len(raw.Products)))
	}
	if !res.Results.HasWarnings {
		out = append(out, fmt.Sprintf("Guide needs at least %d warning, found %d", MinWarnings, len(raw.Warnings)))
	}
	if !res.Results.HasEffectiveness {
		out = append(out, fmt.Sprintf("Guide has unrecognized effectiveness %q", string(raw.Effectiveness)))
	}
	return out
}
