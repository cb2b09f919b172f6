package cycle

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/thermocycle/internal/gas"
)

func buildAll() []Cycle {
	return NewRegistry().BuildAll(gas.Air(), DefaultParams())
}

func TestSharedInitialState(t *testing.T) {
	wantV := 0.287 * 300.0 / 100.0

	for _, c := range buildAll() {
		s1 := c.States[0]
		if s1.P != 100.0 {
			t.Errorf("%s: expected P1 100, got %f", c.Name, s1.P)
		}
		if math.Abs(s1.V-wantV) > 1e-12 {
			t.Errorf("%s: expected V1 %f, got %f", c.Name, wantV, s1.V)
		}
		if s1.T != 300.0 {
			t.Errorf("%s: expected T1 300, got %f", c.Name, s1.T)
		}
	}
}

func TestCompressionState(t *testing.T) {
	g := gas.Air()
	p := DefaultParams()
	c := Dual(g, p)

	s1, s2 := c.States[0], c.States[1]

	wantV2 := s1.V / p.CompressionRatio
	if math.Abs(s2.V-wantV2) > 1e-9 {
		t.Errorf("expected V2 %.12f, got %.12f", wantV2, s2.V)
	}

	wantP2 := p.P1 * math.Pow(p.CompressionRatio, g.Gamma)
	if math.Abs(s2.P-wantP2)/wantP2 > 1e-12 {
		t.Errorf("expected P2 %.6f, got %.6f", wantP2, s2.P)
	}

	wantT2 := p.T1 * math.Pow(p.CompressionRatio, g.Gamma-1)
	if math.Abs(s2.T-wantT2)/wantT2 > 1e-12 {
		t.Errorf("expected T2 %.6f, got %.6f", wantT2, s2.T)
	}
}

func TestDualHeatAddition(t *testing.T) {
	g := gas.Air()
	p := DefaultParams()
	c := Dual(g, p)

	s2, s3, s4 := c.States[1], c.States[2], c.States[3]

	if math.Abs(s3.P-p.PressureRatio*s2.P)/s3.P > 1e-12 {
		t.Errorf("expected P3 = rp*P2, got %f vs %f", s3.P, p.PressureRatio*s2.P)
	}
	if s3.V != s2.V {
		t.Errorf("isochoric leg moved volume: %f -> %f", s2.V, s3.V)
	}
	if math.Abs(s4.V-p.CutoffRatio*s3.V)/s4.V > 1e-12 {
		t.Errorf("expected V4 = cutoff*V3, got %f vs %f", s4.V, p.CutoffRatio*s3.V)
	}
	if s4.P != s3.P {
		t.Errorf("isobaric leg moved pressure: %f -> %f", s3.P, s4.P)
	}
}

func TestAtkinsonStates(t *testing.T) {
	g := gas.Air()
	p := DefaultParams()
	c := Atkinson(g, p)

	s2, s3, s4 := c.States[1], c.States[2], c.States[3]

	wantT2 := 300.0 * math.Pow(12.0, 0.4)
	if math.Abs(s2.T-wantT2) > 1e-9 {
		t.Errorf("expected T2 %.6f, got %.6f", wantT2, s2.T)
	}

	if s3.T != p.PeakTemp {
		t.Errorf("expected T3 %.1f, got %f", p.PeakTemp, s3.T)
	}
	// P3 back-derived at constant volume.
	wantP3 := s2.P * p.PeakTemp / s2.T
	if math.Abs(s3.P-wantP3)/wantP3 > 1e-12 {
		t.Errorf("expected P3 %.6f, got %.6f", wantP3, s3.P)
	}

	// Full expansion ends at intake pressure.
	if s4.P != p.P1 {
		t.Errorf("expected P4 %.1f, got %f", p.P1, s4.P)
	}
	if s4.V <= c.States[0].V {
		t.Errorf("full expansion should exceed intake volume: V4=%f V1=%f", s4.V, c.States[0].V)
	}
}

func TestIdealGasConsistency(t *testing.T) {
	g := gas.Air()

	for _, c := range buildAll() {
		m := g.Mass(c.States[0].P, c.States[0].V, c.States[0].T)
		for _, s := range c.States {
			got := s.P * s.V / (g.R * s.T)
			if math.Abs(got-m)/m > 1e-9 {
				t.Errorf("%s state %s: PV/RT = %.12f, want %.12f", c.Name, s.Label, got, m)
			}
		}
	}
}

func TestCycleClosed(t *testing.T) {
	for _, c := range buildAll() {
		last := c.Legs[len(c.Legs)-1]
		if last.To != c.States[0] {
			t.Errorf("%s: last leg does not close on state 1", c.Name)
		}
		for i := 1; i < len(c.Legs); i++ {
			if c.Legs[i].From != c.Legs[i-1].To {
				t.Errorf("%s: leg %d does not start where leg %d ends", c.Name, i, i-1)
			}
		}
	}
}

func TestRegistryUnknownCycle(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("brayton")
	if err == nil {
		t.Fatal("expected error for unknown cycle")
	}
	if !errors.Is(err, ErrUnknownCycle) {
		t.Errorf("expected ErrUnknownCycle, got %v", err)
	}
}

func TestRegistryOrder(t *testing.T) {
	names := NewRegistry().List()
	want := []string{"dual", "otto", "diesel", "atkinson"}
	if len(names) != len(want) {
		t.Fatalf("expected %d cycles, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}
