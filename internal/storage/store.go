package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/thermocycle/internal/analysis"
	"github.com/san-kum/thermocycle/internal/cycle"
)

// Store persists comparison runs under a base directory, one subdirectory
// per run with metadata.json and a sampled trace CSV per cycle.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string                          `json:"id"`
	Timestamp   time.Time                       `json:"timestamp"`
	Gas         string                          `json:"gas"`
	Samples     int                             `json:"samples"`
	Params      ParamsRecord                    `json:"params"`
	Performance map[string]analysis.Performance `json:"performance"`
}

type ParamsRecord struct {
	P1               float64 `json:"p1"`
	T1               float64 `json:"t1"`
	CompressionRatio float64 `json:"compression_ratio"`
	PressureRatio    float64 `json:"pressure_ratio"`
	CutoffRatio      float64 `json:"cutoff_ratio"`
	ExpansionRatio   float64 `json:"expansion_ratio"`
	PeakTemp         float64 `json:"peak_temp"`
}

func (s *Store) Save(gasName string, params cycle.Params, samples int, cycles []cycle.Cycle, perf map[string]analysis.Performance) (string, error) {
	runID := fmt.Sprintf("compare_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Gas:       gasName,
		Samples:   samples,
		Params: ParamsRecord{
			P1:               params.P1,
			T1:               params.T1,
			CompressionRatio: params.CompressionRatio,
			PressureRatio:    params.PressureRatio,
			CutoffRatio:      params.CutoffRatio,
			ExpansionRatio:   params.ExpansionRatio,
			PeakTemp:         params.PeakTemp,
		},
		Performance: perf,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	for _, c := range cycles {
		if err := s.saveTrace(runDir, c, samples); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) saveTrace(runDir string, c cycle.Cycle, samples int) error {
	csvPath := filepath.Join(runDir, c.Name+".csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"volume", "pressure"}); err != nil {
		return err
	}

	for _, pt := range c.Trace(samples) {
		row := []string{
			strconv.FormatFloat(pt.V, 'f', 6, 64),
			strconv.FormatFloat(pt.P, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrace reads one cycle's sampled curve back from a saved run.
func (s *Store) LoadTrace(runID, cycleName string) (cycle.Trace, error) {
	csvPath := filepath.Join(s.baseDir, runID, cycleName+".csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	trace := make(cycle.Trace, 0, len(records))
	for i := 1; i < len(records); i++ {
		v, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			continue
		}
		p, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		trace = append(trace, cycle.Point{V: v, P: p})
	}

	return trace, nil
}
