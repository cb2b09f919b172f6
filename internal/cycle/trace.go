package cycle

import "math"

// DefaultSamples is the number of volume samples per continuous leg.
const DefaultSamples = 100

// Sample returns n evenly spaced (V, P) samples along the leg, endpoints
// included. Isochoric legs are vertical lines and need only their two
// endpoints; n is ignored for them.
func (l Leg) Sample(n int) Trace {
	if l.Kind == Isochoric {
		return Trace{
			{V: l.From.V, P: l.From.P},
			{V: l.To.V, P: l.To.P},
		}
	}

	if n < 2 {
		n = 2
	}

	pts := make(Trace, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		v := l.From.V + f*(l.To.V-l.From.V)
		p := l.From.P
		if l.Kind == Isentropic {
			p = l.From.P * math.Pow(l.From.V/v, l.Gamma)
		}
		pts[i] = Point{V: v, P: p}
	}

	// Endpoints must coincide with the vertices exactly, not to within the
	// power-law rounding.
	pts[0] = Point{V: l.From.V, P: l.From.P}
	pts[n-1] = Point{V: l.To.V, P: l.To.P}

	return pts
}

// Trace samples every leg in process order and concatenates them into one
// closed loop starting and ending at state 1.
func (c Cycle) Trace(n int) Trace {
	var out Trace
	for _, leg := range c.Legs {
		out = append(out, leg.Sample(n)...)
	}
	return out
}
