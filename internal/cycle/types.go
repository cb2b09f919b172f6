package cycle

import "github.com/san-kum/thermocycle/internal/gas"

// ProcessKind identifies the thermodynamic process along a leg.
type ProcessKind int

const (
	Isentropic ProcessKind = iota
	Isochoric
	Isobaric
)

func (k ProcessKind) String() string {
	switch k {
	case Isentropic:
		return "isentropic"
	case Isochoric:
		return "isochoric"
	case Isobaric:
		return "isobaric"
	default:
		return "unknown"
	}
}

// StatePoint is one cycle vertex. P is in kPa, V in m³, T in K.
type StatePoint struct {
	Label string
	P     float64
	V     float64
	T     float64
}

// Leg is a single process between two state points. Gamma is the specific
// heat ratio used to sample isentropic legs; it is zero for the other kinds.
type Leg struct {
	Kind  ProcessKind
	From  StatePoint
	To    StatePoint
	Gamma float64
}

// Point is one sampled (V, P) pair.
type Point struct {
	V float64
	P float64
}

// Trace is a sampled curve in the P-V plane.
type Trace []Point

// Cycle is a closed loop of process legs. The last leg always ends on
// States[0].
type Cycle struct {
	Name   string
	States []StatePoint
	Legs   []Leg
}

// Params holds the defining ratios and boundary conditions shared by the
// cycle builders.
type Params struct {
	P1               float64 // intake pressure, kPa
	T1               float64 // intake temperature, K
	CompressionRatio float64 // V1/V2
	PressureRatio    float64 // P3/P2 across isochoric heat addition
	CutoffRatio      float64 // volume ratio across isobaric heat addition
	ExpansionRatio   float64 // defined for parity with older parameter sets, not used by any relation
	PeakTemp         float64 // fixed Atkinson peak temperature, K
}

// DefaultParams returns the reference operating point.
func DefaultParams() Params {
	return Params{
		P1:               100.0,
		T1:               300.0,
		CompressionRatio: 12.0,
		PressureRatio:    1.7,
		CutoffRatio:      1.55,
		ExpansionRatio:   17.0,
		PeakTemp:         1320.0,
	}
}

// Initial returns state 1, common to every cycle: a unit analysis volume
// fixed by the ideal gas law at P1 and T1 for 1 kg of fluid.
func Initial(g gas.Properties, p Params) StatePoint {
	return StatePoint{
		Label: "1",
		P:     p.P1,
		V:     g.R * p.T1 / p.P1,
		T:     p.T1,
	}
}

// MinVolume returns the smallest vertex volume in the cycle.
func (c Cycle) MinVolume() float64 {
	min := c.States[0].V
	for _, s := range c.States[1:] {
		if s.V < min {
			min = s.V
		}
	}
	return min
}

// MaxVolume returns the largest vertex volume in the cycle.
func (c Cycle) MaxVolume() float64 {
	max := c.States[0].V
	for _, s := range c.States[1:] {
		if s.V > max {
			max = s.V
		}
	}
	return max
}
