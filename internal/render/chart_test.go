package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/thermocycle/internal/cycle"
	"github.com/san-kum/thermocycle/internal/gas"
)

func TestCompareWritesPNG(t *testing.T) {
	cycles := cycle.NewRegistry().BuildAll(gas.Air(), cycle.DefaultParams())

	opts := DefaultOptions()
	opts.Output = filepath.Join(t.TempDir(), "comparison.png")

	if err := Compare(cycles, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(opts.Output)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestCompareBadPath(t *testing.T) {
	cycles := cycle.NewRegistry().BuildAll(gas.Air(), cycle.DefaultParams())

	opts := DefaultOptions()
	opts.Output = filepath.Join(t.TempDir(), "no", "such", "dir", "chart.png")

	if err := Compare(cycles, opts); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.DPI != 300 {
		t.Errorf("expected 300 DPI, got %d", opts.DPI)
	}
	if opts.VMax != 1.1 || opts.PMax != 6000 {
		t.Errorf("unexpected viewport: V max %f, P max %f", opts.VMax, opts.PMax)
	}
	if opts.Output != "Thermodynamic_Cycles_Comparison.png" {
		t.Errorf("unexpected output name: %s", opts.Output)
	}
}
