package content

import (
	"reflect"
	"strings"
	"testing"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/domain/catalog"
)

func TestGenerateFAQsCount(t *testing.T) {
	materialTypes := []types.MaterialType{
		catalog.MaterialNatural, catalog.MaterialSynthetic, catalog.MaterialLeather,
		catalog.MaterialUpholstery, catalog.MaterialHardSurface, catalog.MaterialOther,
	}
	categories := []types.StainCategory{
		catalog.CategoryBeverage, catalog.CategoryFood, catalog.CategoryOil, catalog.CategoryInk,
		catalog.CategoryDirt, catalog.CategoryBodilyFluid, catalog.CategoryMakeup, catalog.CategoryGrass,
		catalog.CategoryOther,
	}
	for i, mt := range materialTypes {
		for j, cat := range categories {
			stain := &types.Stain{ID: uint(j + 1), Name: "s", DisplayName: "S", Category: cat}
			material := &types.Material{ID: uint(i + 1), Name: "m", DisplayName: "M", Type: mt}
			faqs := GenerateFAQs(stain, material, "Blot.", "Wash.", []string{"Avoid heat"})
			if len(faqs) < 3 || len(faqs) > 5 {
				t.Fatalf("%s/%s: %d FAQs", mt, cat, len(faqs))
			}
			for _, f := range faqs {
				if f.Question == "" || f.Answer == "" {
					t.Fatalf("%s/%s: empty FAQ %+v", mt, cat, f)
				}
			}
		}
	}
}

func TestGenerateFAQsBranches(t *testing.T) {
	stain, material := testPair()
	faqs := GenerateFAQs(stain, material, "Blot.", "Wash.", []string{"Never use hot water"})
	if len(faqs) != 5 {
		t.Fatalf("coffee on cotton should get 5 FAQs, got %d", len(faqs))
	}
	if !strings.Contains(faqs[1].Answer, "Never use hot water.") {
		t.Fatalf("set-in answer should repeat the first warning: %q", faqs[1].Answer)
	}
	if !strings.Contains(faqs[3].Answer, "oxygen bleach") {
		t.Fatalf("cotton bleach answer expected, got %q", faqs[3].Answer)
	}
	if !strings.Contains(faqs[4].Answer, "cold water") {
		t.Fatalf("beverage temperature answer expected, got %q", faqs[4].Answer)
	}

	dirt := &types.Stain{ID: 2, Name: "mud", DisplayName: "Mud", Category: catalog.CategoryDirt}
	other := &types.Material{ID: 5, Name: "rubber", DisplayName: "Rubber", Type: catalog.MaterialOther}
	if n := len(GenerateFAQs(dirt, other, "", "", nil)); n != 3 {
		t.Fatalf("no caveats apply to mud on rubber, got %d FAQs", n)
	}
}

func TestGenerateFAQsDeterministic(t *testing.T) {
	stain, material := testPair()
	a := GenerateFAQs(stain, material, "Blot.", "Wash.", nil)
	b := GenerateFAQs(stain, material, "Blot.", "Wash.", nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("FAQs differ between calls")
	}
}

func TestGenerateIntro(t *testing.T) {
	blood := &types.Stain{ID: 4, Name: "blood", DisplayName: "Blood", Category: catalog.CategoryBodilyFluid}
	silk := &types.Material{ID: 2, Name: "silk", DisplayName: "Silk", Type: catalog.MaterialNatural}
	intro := GenerateIntro(blood, silk)
	for _, want := range []string{"Removing blood stains from silk", "delicate material", "protein-based"} {
		if !strings.Contains(intro, want) {
			t.Fatalf("intro missing %q: %q", want, intro)
		}
	}

	stain, material := testPair()
	if intro := GenerateIntro(stain, material); !strings.Contains(intro, "beverage stains") {
		t.Fatalf("beverage context expected: %q", intro)
	}
}
