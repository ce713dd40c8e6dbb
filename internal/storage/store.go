package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/commanderjcc/hotplate/internal/plate"
	"github.com/commanderjcc/hotplate/internal/plateio"
	"github.com/commanderjcc/hotplate/internal/relax"
)

// Store persists solver runs under a base directory, one subdirectory
// per run holding metadata.json, plate.csv and deltas.csv.
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
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	Rows          int                `json:"rows"`
	Cols          int                `json:"cols"`
	BoundaryTemp  float64            `json:"boundary_temp"`
	Epsilon       float64            `json:"epsilon"`
	MaxIterations int                `json:"max_iterations"`
	Iterations    int                `json:"iterations"`
	Converged     bool               `json:"converged"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Save writes a finished run and returns its id.
func (s *Store) Save(boundaryTemp float64, cfg relax.Config, result *relax.Result) (string, error) {
	runID := fmt.Sprintf("plate_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Rows:          result.Plate.Rows(),
		Cols:          result.Plate.Cols(),
		BoundaryTemp:  boundaryTemp,
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
		Iterations:    result.Iterations,
		Converged:     result.Converged,
		Metrics:       result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := plateio.WriteFile(filepath.Join(runDir, "plate.csv"), result.Plate, plateio.DefaultFormat()); err != nil {
		return "", err
	}

	if err := s.writeDeltas(filepath.Join(runDir, "deltas.csv"), result.Deltas); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeDeltas(path string, deltas []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"iteration", "max_delta"}); err != nil {
		return err
	}
	for i, d := range deltas {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(d, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns metadata for every stored run, skipping unreadable
// entries.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, fmt.Errorf("load run %s: %w", runID, err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("load run %s: %w", runID, err)
	}
	return meta, nil
}

// LoadPlate reads back a run's final grid.
func (s *Store) LoadPlate(runID string) (*plate.Plate, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(s.baseDir, runID, "plate.csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readCommaPlate(file, meta.Rows, meta.Cols)
}

// readCommaPlate parses the fixed comma-separated plate format back
// into a grid.
func readCommaPlate(r io.Reader, rows, cols int) (*plate.Plate, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	p, err := plate.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for row := 0; row < rows; row++ {
		record, err := cr.Read()
		if err != nil {
			return nil, err
		}
		if len(record) != cols {
			return nil, fmt.Errorf("row %d: got %d cells, want %d", row, len(record), cols)
		}
		for col, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			p.Set(row, col, v)
		}
	}
	return p, nil
}

// LoadDeltas reads back a run's per-iteration max-delta history.
func (s *Store) LoadDeltas(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "deltas.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cr := csv.NewReader(file)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []float64{}, nil
	}

	deltas := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] { // skip header
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, v)
	}
	return deltas, nil
}

type runExport struct {
	RunMetadata
	Deltas []float64 `json:"deltas"`
}

// ExportJSON writes a run's metadata and delta history as indented
// JSON.
func ExportJSON(w io.Writer, meta RunMetadata, deltas []float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{RunMetadata: meta, Deltas: deltas})
}
