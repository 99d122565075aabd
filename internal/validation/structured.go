package validation

import (
	"fmt"
	"strings"

	"github.com/stainsolver/stainsolver-backend/internal/seo"
)

// ValidateHowTo returns one message per missing or malformed HowTo field.
func ValidateHowTo(doc seo.HowTo) []string {
	var errs []string
	if doc.Context != seo.SchemaContext {
		errs = append(errs, "HowTo schema missing @context or incorrect context value")
	}
	if doc.Type != "HowTo" {
		errs = append(errs, "HowTo schema missing @type or incorrect type value")
	}
	if blank(doc.Name) {
		errs = append(errs, "HowTo schema missing name or name is empty")
	}
	if blank(doc.Description) {
		errs = append(errs, "HowTo schema missing description or description is empty")
	}
	if len(doc.Step) == 0 {
		errs = append(errs, "HowTo schema missing steps or steps array is empty")
	}
	for i, s := range doc.Step {
		n := i + 1
		if s.Type != "HowToStep" {
			errs = append(errs, fmt.Sprintf("Step %d has missing or incorrect @type", n))
		}
		if s.Position <= 0 {
			errs = append(errs, fmt.Sprintf("Step %d has missing or incorrect position", n))
		}
		if blank(s.Name) {
			errs = append(errs, fmt.Sprintf("Step %d has missing or empty name", n))
		}
		if blank(s.Text) {
			errs = append(errs, fmt.Sprintf("Step %d has missing or empty text", n))
		}
	}
	return errs
}

func ValidateFAQPage(doc seo.FAQPage) []string {
	var errs []string
	if doc.Context != seo.SchemaContext {
		errs = append(errs, "FAQPage schema missing @context or incorrect context value")
	}
	if doc.Type != "FAQPage" {
		errs = append(errs, "FAQPage schema missing @type or incorrect type value")
	}
	if len(doc.MainEntity) == 0 {
		errs = append(errs, "FAQPage schema missing mainEntity or mainEntity array is empty")
	}
	for i, q := range doc.MainEntity {
		n := i + 1
		if q.Type != "Question" {
			errs = append(errs, fmt.Sprintf("FAQ item %d has missing or incorrect @type", n))
		}
		if blank(q.Name) {
			errs = append(errs, fmt.Sprintf("FAQ item %d has missing or empty question", n))
		}
		if q.AcceptedAnswer.Type != "Answer" {
			errs = append(errs, fmt.Sprintf("FAQ item %d has missing or incorrect acceptedAnswer", n))
		}
		if blank(q.AcceptedAnswer.Text) {
			errs = append(errs, fmt.Sprintf("FAQ item %d has missing or empty answer", n))
		}
	}
	return errs
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
