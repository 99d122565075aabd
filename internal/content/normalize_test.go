package content

import "testing"

func TestNormalizeProductName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dish soap", "liquid dish soap"},
		{"  Dish   Soap ", "liquid dish soap"},
		{"Blue dishwashing liquid", "liquid dish soap"},
		{"Washing Powder", "powdered laundry detergent"},
		{"laundry detergent", "liquid laundry detergent"},
		{"vinegar", "distilled white vinegar"},
		{"3% hydrogen peroxide", "hydrogen peroxide"},
		{"Club Soda", "carbonated water"},
		{"rubbing alcohol", "isopropyl alcohol"},
		{"Cotton swabs", "cotton swabs"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeProductName(tc.in); got != tc.want {
				t.Fatalf("NormalizeProductName(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeProductNameIdempotent(t *testing.T) {
	inputs := []string{
		"washing powder", "powdered laundry detergent", "liquid laundry detergent", "detergent",
		"white vinegar", "distilled white vinegar", "hydrogen peroxide 3%", "enzyme stain remover",
		"diluted ammonia", "soft brush", "rubber gloves", "paper towel", "paper towels",
		"salt", "Ice Cubes", "  mixed   CASE  name ", "sodium bicarbonate paste",
	}
	for _, in := range inputs {
		once := NormalizeProductName(in)
		if twice := NormalizeProductName(once); twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
