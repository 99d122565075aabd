package content

import "testing"

func TestBuildSupplies(t *testing.T) {
	got := BuildSupplies([]string{"dish soap", "Dish Soap", "dishwashing liquid", "cold water", "cloth"})
	want := []Supply{
		{Name: "Liquid dish soap", Description: "Gentle degreaser that helps break down many types of stains"},
		{Name: "Cold water", Description: "For rinsing and diluting stain-removing solutions"},
		{Name: "Cloth", Description: defaultSupplyDescription},
		{Name: "Clean white cloth", Description: "For blotting stains without transferring dyes"},
		{Name: "Soft-bristled brush", Description: "For gently working cleaner into stains"},
		{Name: "Gloves", Description: "To protect hands from cleaning chemicals"},
	}
	if len(got) != len(want) {
		t.Fatalf("BuildSupplies: len=%d want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("supply %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildSuppliesDoesNotPadPresentItems(t *testing.T) {
	got := BuildSupplies([]string{"rubber gloves", "white cloth", "gloves", "soft brush"})
	if len(got) != 3 {
		t.Fatalf("expected 3 supplies, got %+v", got)
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s.Name] {
			t.Fatalf("duplicate supply %q", s.Name)
		}
		seen[s.Name] = true
	}
	for _, name := range []string{"Gloves", "Clean white cloth", "Soft-bristled brush"} {
		if !seen[name] {
			t.Fatalf("missing %q in %+v", name, got)
		}
	}
}

func TestBuildSuppliesEmpty(t *testing.T) {
	got := BuildSupplies(nil)
	if len(got) != len(commonSupplies) {
		t.Fatalf("expected only the common supplies, got %+v", got)
	}
	if got[0].Name != "Clean white cloth" {
		t.Fatalf("unexpected first supply %q", got[0].Name)
	}
}
