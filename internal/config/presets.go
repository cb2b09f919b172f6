package config

// Presets are named operating points per cycle. Fields left zero fall back
// to the defaults when applied.
var Presets = map[string]map[string]*Config{
	"otto": {
		"standard": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 12, PressureRatio: 1.7},
		},
		"low-compression": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 8, PressureRatio: 1.7},
		},
		"boosted": {
			Params: ParamsConfig{P1: 150, T1: 320, CompressionRatio: 10, PressureRatio: 2.0},
		},
	},
	"diesel": {
		"standard": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 12, CutoffRatio: 1.55},
		},
		"long-cutoff": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 18, CutoffRatio: 2.5},
		},
	},
	"dual": {
		"standard": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 12, PressureRatio: 1.7, CutoffRatio: 1.55},
		},
		"pressure-limited": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 16, PressureRatio: 1.3, CutoffRatio: 1.8},
		},
	},
	"atkinson": {
		"standard": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 12, PeakTemp: 1320},
		},
		"hot": {
			Params: ParamsConfig{P1: 100, T1: 300, CompressionRatio: 12, PeakTemp: 1600},
		},
	},
}

func GetPreset(cycleName, preset string) *Config {
	cyclePresets, ok := Presets[cycleName]
	if !ok {
		return nil
	}
	cfg, ok := cyclePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(cycleName string) []string {
	cyclePresets, ok := Presets[cycleName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(cyclePresets))
	for name := range cyclePresets {
		names = append(names, name)
	}
	return names
}
