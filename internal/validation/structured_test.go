package validation

import (
	"testing"

	"github.com/stainsolver/stainsolver-backend/internal/content"
	"github.com/stainsolver/stainsolver-backend/internal/seo"
)

func TestValidateHowTo(t *testing.T) {
	doc := seo.BuildHowTo("Coffee", "Cotton", stepsOf(3), []content.Supply{{Name: "Gloves"}})
	if errs := ValidateHowTo(doc); len(errs) != 0 {
		t.Fatalf("valid doc reported %v", errs)
	}

	doc.Context = "http://schema.org"
	doc.Name = " "
	doc.Step[1].Text = ""
	doc.Step[2].Position = 0
	errs := ValidateHowTo(doc)
	want := []string{
		"HowTo schema missing @context or incorrect context value",
		"HowTo schema missing name or name is empty",
		"Step 2 has missing or empty text",
		"Step 3 has missing or incorrect position",
	}
	if len(errs) != len(want) {
		t.Fatalf("errs=%v", errs)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Fatalf("errs[%d]=%q, want %q", i, errs[i], want[i])
		}
	}

	if errs := ValidateHowTo(seo.HowTo{}); len(errs) != 5 {
		t.Fatalf("empty doc should fail every top-level check, got %v", errs)
	}
}

func TestValidateFAQPage(t *testing.T) {
	doc := seo.BuildFAQPage([]content.FAQ{{Question: "Q?", Answer: "A."}, {Question: "Q2?", Answer: "A2."}})
	if errs := ValidateFAQPage(doc); len(errs) != 0 {
		t.Fatalf("valid doc reported %v", errs)
	}

	doc.MainEntity[1].AcceptedAnswer = seo.Answer{}
	errs := ValidateFAQPage(doc)
	if len(errs) != 2 || errs[0] != "FAQ item 2 has missing or incorrect acceptedAnswer" || errs[1] != "FAQ item 2 has missing or empty answer" {
		t.Fatalf("errs=%v", errs)
	}

	if errs := ValidateFAQPage(seo.BuildFAQPage(nil)); len(errs) != 1 {
		t.Fatalf("empty FAQ page: %v", errs)
	}
}
