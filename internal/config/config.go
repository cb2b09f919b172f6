package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermocycle/internal/cycle"
)

const (
	DefaultGas        = "air"
	DefaultSamples    = 100
	DefaultPlotWidth  = 10.0
	DefaultPlotHeight = 7.0
)

type Config struct {
	Gas        string       `yaml:"gas"`
	Samples    int          `yaml:"samples"`
	Output     string       `yaml:"output"`
	PlotWidth  float64      `yaml:"plot_width"`
	PlotHeight float64      `yaml:"plot_height"`
	Params     ParamsConfig `yaml:"params"`
}

type ParamsConfig struct {
	P1               float64 `yaml:"p1"`
	T1               float64 `yaml:"t1"`
	CompressionRatio float64 `yaml:"compression_ratio"`
	PressureRatio    float64 `yaml:"pressure_ratio"`
	CutoffRatio      float64 `yaml:"cutoff_ratio"`
	ExpansionRatio   float64 `yaml:"expansion_ratio"`
	PeakTemp         float64 `yaml:"peak_temp"`
}

func DefaultConfig() *Config {
	p := cycle.DefaultParams()
	return &Config{
		Gas:        DefaultGas,
		Samples:    DefaultSamples,
		Output:     "Thermodynamic_Cycles_Comparison.png",
		PlotWidth:  DefaultPlotWidth,
		PlotHeight: DefaultPlotHeight,
		Params: ParamsConfig{
			P1:               p.P1,
			T1:               p.T1,
			CompressionRatio: p.CompressionRatio,
			PressureRatio:    p.PressureRatio,
			CutoffRatio:      p.CutoffRatio,
			ExpansionRatio:   p.ExpansionRatio,
			PeakTemp:         p.PeakTemp,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Merge copies the non-zero fields of other over c. Used to lay a named
// preset over the defaults.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Gas != "" {
		c.Gas = other.Gas
	}
	if other.Samples != 0 {
		c.Samples = other.Samples
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Params.P1 != 0 {
		c.Params.P1 = other.Params.P1
	}
	if other.Params.T1 != 0 {
		c.Params.T1 = other.Params.T1
	}
	if other.Params.CompressionRatio != 0 {
		c.Params.CompressionRatio = other.Params.CompressionRatio
	}
	if other.Params.PressureRatio != 0 {
		c.Params.PressureRatio = other.Params.PressureRatio
	}
	if other.Params.CutoffRatio != 0 {
		c.Params.CutoffRatio = other.Params.CutoffRatio
	}
	if other.Params.ExpansionRatio != 0 {
		c.Params.ExpansionRatio = other.Params.ExpansionRatio
	}
	if other.Params.PeakTemp != 0 {
		c.Params.PeakTemp = other.Params.PeakTemp
	}
}

// CycleParams converts the yaml shape to the builder parameter set.
func (c *Config) CycleParams() cycle.Params {
	return cycle.Params{
		P1:               c.Params.P1,
		T1:               c.Params.T1,
		CompressionRatio: c.Params.CompressionRatio,
		PressureRatio:    c.Params.PressureRatio,
		CutoffRatio:      c.Params.CutoffRatio,
		ExpansionRatio:   c.Params.ExpansionRatio,
		PeakTemp:         c.Params.PeakTemp,
	}
}
