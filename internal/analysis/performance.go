package analysis

import (
	"fmt"

	"github.com/san-kum/thermocycle/internal/cycle"
	"github.com/san-kum/thermocycle/internal/gas"
)

// Performance holds the energy accounting for one cycle. Heat and work are
// in kJ, MEP in kPa, Efficiency in percent.
type Performance struct {
	Mass       float64 `json:"mass"`
	HeatIn     float64 `json:"heat_in"`
	HeatOut    float64 `json:"heat_out"`
	NetWork    float64 `json:"net_work"`
	Efficiency float64 `json:"efficiency"`
	MEP        float64 `json:"mep"`
}

// Analyze computes the air-standard energy balance for a built cycle. Heat
// terms follow the textbook accounting for each cycle's heat addition and
// rejection legs: cv across isochoric legs, cp across isobaric legs.
func Analyze(g gas.Properties, c cycle.Cycle) (Performance, error) {
	s := c.States
	s1 := s[0]
	m := g.Mass(s1.P, s1.V, s1.T)

	var qin, qout float64
	switch c.Name {
	case "otto":
		qin = m * g.Cv * (s[2].T - s[1].T)
		qout = m * g.Cv * (s[3].T - s1.T)
	case "diesel":
		qin = m * g.Cp * (s[2].T - s[1].T)
		qout = m * g.Cv * (s[3].T - s1.T)
	case "dual":
		qin = m*g.Cv*(s[2].T-s[1].T) + m*g.Cp*(s[3].T-s[2].T)
		qout = m * g.Cv * (s[4].T - s1.T)
	case "atkinson":
		qin = m * g.Cv * (s[2].T - s[1].T)
		qout = m * g.Cp * (s[3].T - s1.T)
	default:
		return Performance{}, fmt.Errorf("analysis: no energy balance for cycle: %s", c.Name)
	}

	wnet := qin - qout

	return Performance{
		Mass:       m,
		HeatIn:     qin,
		HeatOut:    qout,
		NetWork:    wnet,
		Efficiency: wnet / qin * 100.0,
		MEP:        wnet / (c.MaxVolume() - c.MinVolume()),
	}, nil
}
