package gas

import (
	"math"
	"testing"
)

func TestAirProperties(t *testing.T) {
	g := Air()

	if g.Gamma != 1.4 {
		t.Errorf("expected gamma 1.4, got %f", g.Gamma)
	}
	if g.R != 0.287 {
		t.Errorf("expected R 0.287, got %f", g.R)
	}
	if g.Cv != 0.718 {
		t.Errorf("expected cv 0.718, got %f", g.Cv)
	}
	if g.Cp != 1.005 {
		t.Errorf("expected cp 1.005, got %f", g.Cp)
	}
}

func TestGet(t *testing.T) {
	g, err := Get("air")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name != "air" {
		t.Errorf("expected air, got %s", g.Name)
	}

	if _, err := Get("plasma"); err == nil {
		t.Error("expected error for unknown gas")
	}
}

func TestList(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatal("expected at least one gas preset")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("list not sorted: %v", names)
		}
	}
}

func TestMass(t *testing.T) {
	g := Air()

	// 100 kPa, 0.861 m³, 300 K is exactly 1 kg of air.
	m := g.Mass(100.0, 0.287*300.0/100.0, 300.0)
	if math.Abs(m-1.0) > 1e-12 {
		t.Errorf("expected 1 kg, got %.15f", m)
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	g := Air()

	v := g.Volume(1.0, 100.0, 300.0)
	m := g.Mass(100.0, v, 300.0)
	if math.Abs(m-1.0) > 1e-12 {
		t.Errorf("volume/mass round trip drifted: %.15f", m)
	}
}
