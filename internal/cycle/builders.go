package cycle

import "github.com/san-kum/thermocycle/internal/gas"

// Otto builds the constant-volume heat addition cycle:
// isentropic compression, isochoric heat addition, isentropic expansion,
// isochoric heat rejection.
func Otto(g gas.Properties, p Params) Cycle {
	s1 := Initial(g, p)
	s2 := isentropicToVolume(s1, s1.V/p.CompressionRatio, g.Gamma, "2")
	s3 := isochoricToPressure(s2, p.PressureRatio*s2.P, "3")
	s4 := isentropicToVolume(s3, s1.V, g.Gamma, "4")

	return Cycle{
		Name:   "otto",
		States: []StatePoint{s1, s2, s3, s4},
		Legs: []Leg{
			{Kind: Isentropic, From: s1, To: s2, Gamma: g.Gamma},
			{Kind: Isochoric, From: s2, To: s3},
			{Kind: Isentropic, From: s3, To: s4, Gamma: g.Gamma},
			{Kind: Isochoric, From: s4, To: s1},
		},
	}
}

// Diesel builds the constant-pressure heat addition cycle:
// isentropic compression, isobaric heat addition through the cutoff ratio,
// isentropic expansion, isochoric heat rejection.
func Diesel(g gas.Properties, p Params) Cycle {
	s1 := Initial(g, p)
	s2 := isentropicToVolume(s1, s1.V/p.CompressionRatio, g.Gamma, "2")
	s3 := isobaricToVolume(s2, p.CutoffRatio*s2.V, "3")
	s4 := isentropicToVolume(s3, s1.V, g.Gamma, "4")

	return Cycle{
		Name:   "diesel",
		States: []StatePoint{s1, s2, s3, s4},
		Legs: []Leg{
			{Kind: Isentropic, From: s1, To: s2, Gamma: g.Gamma},
			{Kind: Isobaric, From: s2, To: s3},
			{Kind: Isentropic, From: s3, To: s4, Gamma: g.Gamma},
			{Kind: Isochoric, From: s4, To: s1},
		},
	}
}

// Dual builds the limited-pressure cycle, with heat added first at constant
// volume through the pressure ratio and then at constant pressure through
// the cutoff ratio. It is the only five-vertex cycle here.
func Dual(g gas.Properties, p Params) Cycle {
	s1 := Initial(g, p)
	s2 := isentropicToVolume(s1, s1.V/p.CompressionRatio, g.Gamma, "2")
	s3 := isochoricToPressure(s2, p.PressureRatio*s2.P, "3")
	s4 := isobaricToVolume(s3, p.CutoffRatio*s3.V, "4")
	s5 := isentropicToVolume(s4, s1.V, g.Gamma, "5")

	return Cycle{
		Name:   "dual",
		States: []StatePoint{s1, s2, s3, s4, s5},
		Legs: []Leg{
			{Kind: Isentropic, From: s1, To: s2, Gamma: g.Gamma},
			{Kind: Isochoric, From: s2, To: s3},
			{Kind: Isobaric, From: s3, To: s4},
			{Kind: Isentropic, From: s4, To: s5, Gamma: g.Gamma},
			{Kind: Isochoric, From: s5, To: s1},
		},
	}
}

// Atkinson builds the full-expansion cycle. Heat is added at constant volume
// up to the fixed peak temperature, the gas expands isentropically all the
// way down to intake pressure, and heat is rejected at constant pressure
// back to state 1.
func Atkinson(g gas.Properties, p Params) Cycle {
	s1 := Initial(g, p)
	s2 := isentropicToVolume(s1, s1.V/p.CompressionRatio, g.Gamma, "2")
	s3 := isochoricToTemperature(s2, p.PeakTemp, "3")
	s4 := isentropicToPressure(s3, s1.P, g.Gamma, "4")

	return Cycle{
		Name:   "atkinson",
		States: []StatePoint{s1, s2, s3, s4},
		Legs: []Leg{
			{Kind: Isentropic, From: s1, To: s2, Gamma: g.Gamma},
			{Kind: Isochoric, From: s2, To: s3},
			{Kind: Isentropic, From: s3, To: s4, Gamma: g.Gamma},
			{Kind: Isobaric, From: s4, To: s1},
		},
	}
}
