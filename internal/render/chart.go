package render

import (
	"bufio"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/thermocycle/internal/cycle"
)

// DefaultOutput is the comparison chart filename.
const DefaultOutput = "Thermodynamic_Cycles_Comparison.png"

// Options controls the comparison chart geometry and destination.
type Options struct {
	Title    string
	Output   string
	WidthIn  float64 // inches
	HeightIn float64 // inches
	DPI      int
	VMax     float64 // m³, fixed viewport
	PMax     float64 // kPa, fixed viewport
	Samples  int     // samples per continuous leg
}

// DefaultOptions returns the fixed chart viewport used for the four-cycle
// comparison.
func DefaultOptions() Options {
	return Options{
		Title:    "Thermodynamic Cycles Comparison",
		Output:   DefaultOutput,
		WidthIn:  10.0,
		HeightIn: 7.0,
		DPI:      300,
		VMax:     1.1,
		PMax:     6000.0,
		Samples:  cycle.DefaultSamples,
	}
}

var palette = []color.RGBA{
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // purple
}

var dashes = [][]vg.Length{
	nil,
	{vg.Points(6), vg.Points(2)},
	{vg.Points(2), vg.Points(2)},
	{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)},
}

// Compare draws every cycle trace on one linear P-V chart with solid markers
// at the vertices and writes it as a PNG.
func Compare(cycles []cycle.Cycle, opts Options) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Volume (m³)"
	p.Y.Label.Text = "Pressure (kPa)"
	p.X.Min, p.X.Max = 0, opts.VMax
	p.Y.Min, p.Y.Max = 0, opts.PMax
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, c := range cycles {
		col := palette[i%len(palette)]

		line, err := plotter.NewLine(traceXYs(c.Trace(opts.Samples)))
		if err != nil {
			return fmt.Errorf("render: %s trace: %w", c.Name, err)
		}
		line.Color = col
		line.Width = vg.Points(1.5)
		line.Dashes = dashes[i%len(dashes)]
		p.Add(line)
		p.Legend.Add(c.Name, line)

		scatter, err := plotter.NewScatter(stateXYs(c.States))
		if err != nil {
			return fmt.Errorf("render: %s markers: %w", c.Name, err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  col,
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(scatter)
	}

	return savePNG(p, opts)
}

func traceXYs(t cycle.Trace) plotter.XYs {
	xys := make(plotter.XYs, len(t))
	for i, pt := range t {
		xys[i] = plotter.XY{X: pt.V, Y: pt.P}
	}
	return xys
}

func stateXYs(states []cycle.StatePoint) plotter.XYs {
	xys := make(plotter.XYs, len(states))
	for i, s := range states {
		xys[i] = plotter.XY{X: s.V, Y: s.P}
	}
	return xys
}

// savePNG rasterizes the plot through a vgimg canvas so the output carries
// the requested DPI rather than the library default.
func savePNG(p *plot.Plot, opts Options) error {
	w := vg.Length(opts.WidthIn) * vg.Inch
	h := vg.Length(opts.HeightIn) * vg.Inch

	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("render: cannot create %s: %w", opts.Output, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(bw); err != nil {
		return fmt.Errorf("render: cannot write %s: %w", opts.Output, err)
	}
	return bw.Flush()
}
