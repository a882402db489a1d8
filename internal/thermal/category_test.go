package thermal

import (
	"math"
	"testing"
)

func TestCategoryTable(t *testing.T) {
	cases := []struct {
		cat     Category
		name    string
		coef    float64
		targetF float64
	}{
		{Pork, "pork", 0.15, 145},
		{Steak, "steak", 0.18, 135},
		{Chicken, "chicken", 0.12, 165},
		{Fish, "fish", 0.10, 145},
		{Lamb, "lamb", 0.16, 145},
		{Category(99), "pork", 0.15, 145},
		{Category(-1), "pork", 0.15, 145},
	}
	for _, tc := range cases {
		if tc.cat.Name() != tc.name || tc.cat.Coefficient() != tc.coef || tc.cat.TargetF() != tc.targetF {
			t.Fatalf("category %d: got %s %g %g", tc.cat, tc.cat.Name(), tc.cat.Coefficient(), tc.cat.TargetF())
		}
	}
	if Category(99).Known() || !Lamb.Known() {
		t.Fatalf("Known() mismatch")
	}
}

func TestUnitConversion(t *testing.T) {
	if CelsiusToFahrenheit(100) != 212 || FahrenheitToCelsius(32) != 0 {
		t.Fatalf("fixed points wrong")
	}
	if got := Chicken.TargetC(); math.Abs(got-73.888888) > 1e-5 {
		t.Fatalf("chicken target C: %g", got)
	}
	if got := FahrenheitToCelsius(CelsiusToFahrenheit(37.5)); math.Abs(got-37.5) > 1e-12 {
		t.Fatalf("round trip: %g", got)
	}
}
