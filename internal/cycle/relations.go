package cycle

import "math"

// Closed-form process relations. Each function returns the state reached
// from s after a single process step.

// isentropicToVolume follows P·V^γ = const and T·V^(γ-1) = const to a new
// volume v.
func isentropicToVolume(s StatePoint, v, gamma float64, label string) StatePoint {
	ratio := s.V / v
	return StatePoint{
		Label: label,
		P:     s.P * math.Pow(ratio, gamma),
		V:     v,
		T:     s.T * math.Pow(ratio, gamma-1),
	}
}

// isentropicToPressure follows the same relation to a new pressure p.
func isentropicToPressure(s StatePoint, p, gamma float64, label string) StatePoint {
	return StatePoint{
		Label: label,
		P:     p,
		V:     s.V * math.Pow(s.P/p, 1/gamma),
		T:     s.T * math.Pow(p/s.P, (gamma-1)/gamma),
	}
}

// isochoricToPressure holds V; pressure and temperature scale together.
func isochoricToPressure(s StatePoint, p float64, label string) StatePoint {
	return StatePoint{
		Label: label,
		P:     p,
		V:     s.V,
		T:     s.T * p / s.P,
	}
}

// isochoricToTemperature holds V; pressure is back-derived from the target
// temperature.
func isochoricToTemperature(s StatePoint, t float64, label string) StatePoint {
	return StatePoint{
		Label: label,
		P:     s.P * t / s.T,
		V:     s.V,
		T:     t,
	}
}

// isobaricToVolume holds P; volume and temperature scale together.
func isobaricToVolume(s StatePoint, v float64, label string) StatePoint {
	return StatePoint{
		Label: label,
		P:     s.P,
		V:     v,
		T:     s.T * v / s.V,
	}
}
