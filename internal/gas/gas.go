package gas

import (
	"fmt"
	"sort"
)

// Properties describes an ideal working fluid. All specific quantities are
// in kJ/(kg·K).
type Properties struct {
	Name  string
	Gamma float64 // specific heat ratio cp/cv
	R     float64 // gas constant
	Cv    float64 // specific heat at constant volume
	Cp    float64 // specific heat at constant pressure
}

// Air returns cold air-standard properties, the default working fluid.
func Air() Properties {
	return Properties{
		Name:  "air",
		Gamma: 1.4,
		R:     0.287,
		Cv:    0.718,
		Cp:    1.005,
	}
}

var presets = map[string]Properties{
	"air": Air(),
	"argon": {
		Name:  "argon",
		Gamma: 1.667,
		R:     0.2081,
		Cv:    0.3122,
		Cp:    0.5203,
	},
	"helium": {
		Name:  "helium",
		Gamma: 1.667,
		R:     2.0769,
		Cv:    3.1156,
		Cp:    5.1926,
	},
	"co2": {
		Name:  "co2",
		Gamma: 1.289,
		R:     0.1889,
		Cv:    0.657,
		Cp:    0.846,
	},
}

// Get looks up a working fluid by preset name.
func Get(name string) (Properties, error) {
	p, ok := presets[name]
	if !ok {
		return Properties{}, fmt.Errorf("gas: unknown gas: %s", name)
	}
	return p, nil
}

// List returns the available preset names, sorted.
func List() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mass returns the gas mass in kg from the ideal gas law.
// P is in kPa, V in m³, T in K.
func (p Properties) Mass(P, V, T float64) float64 {
	return P * V / (p.R * T)
}

// Volume returns the volume in m³ occupied by mass m at P and T.
func (p Properties) Volume(m, P, T float64) float64 {
	return m * p.R * T / P
}
