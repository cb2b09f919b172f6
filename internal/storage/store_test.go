package storage

import (
	"testing"

	"github.com/san-kum/thermocycle/internal/analysis"
	"github.com/san-kum/thermocycle/internal/cycle"
	"github.com/san-kum/thermocycle/internal/gas"
)

func saveTestRun(t *testing.T) (*Store, string, []cycle.Cycle) {
	t.Helper()

	g := gas.Air()
	params := cycle.DefaultParams()
	cycles := cycle.NewRegistry().BuildAll(g, params)

	perf := make(map[string]analysis.Performance, len(cycles))
	for _, c := range cycles {
		p, err := analysis.Analyze(g, c)
		if err != nil {
			t.Fatalf("analyze %s: %v", c.Name, err)
		}
		perf[c.Name] = p
	}

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("air", params, cycle.DefaultSamples, cycles, perf)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	return st, runID, cycles
}

func TestSaveAndLoad(t *testing.T) {
	st, runID, _ := saveTestRun(t)

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if meta.Gas != "air" {
		t.Errorf("expected gas air, got %s", meta.Gas)
	}
	if meta.Params.CompressionRatio != 12 {
		t.Errorf("expected compression ratio 12, got %f", meta.Params.CompressionRatio)
	}
	if len(meta.Performance) != 4 {
		t.Errorf("expected 4 performance records, got %d", len(meta.Performance))
	}

	atk, ok := meta.Performance["atkinson"]
	if !ok {
		t.Fatal("missing atkinson performance")
	}
	if atk.Efficiency <= 0 || atk.Efficiency >= 100 {
		t.Errorf("round-tripped efficiency out of range: %f", atk.Efficiency)
	}
}

func TestList(t *testing.T) {
	st, runID, _ := saveTestRun(t)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("expected %s, got %s", runID, runs[0].ID)
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/never-created")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadTrace(t *testing.T) {
	st, runID, cycles := saveTestRun(t)

	for _, c := range cycles {
		trace, err := st.LoadTrace(runID, c.Name)
		if err != nil {
			t.Fatalf("load trace %s: %v", c.Name, err)
		}

		want := c.Trace(cycle.DefaultSamples)
		if len(trace) != len(want) {
			t.Errorf("%s: expected %d points, got %d", c.Name, len(want), len(trace))
		}
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Load("compare_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
