// Package store persists generation runs as a metadata file plus a CSV of
// the emitted values, one directory per run.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yatoub/tych/internal/stats"
)

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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	N          int       `json:"n"`
	Pendulums  int       `json:"pendulums"`
	NoiseLevel float64   `json:"noise_level"`
	Resets     int       `json:"resets"`
	Mean       float64   `json:"mean"`
	Std        float64   `json:"std"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
}

// Save writes one run directory and returns its id.
func (s *Store) Save(n, pendulums int, noiseLevel float64, resets int, values []float64) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	sum := stats.Summarize(values)
	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		N:          n,
		Pendulums:  pendulums,
		NoiseLevel: noiseLevel,
		Resets:     resets,
		Mean:       sum.Mean,
		Std:        sum.Std,
		Min:        sum.Min,
		Max:        sum.Max,
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

	csvFile, err := os.Create(filepath.Join(runDir, "values.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "value"}); err != nil {
		return "", err
	}
	for i, v := range values {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 17, 64)}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every readable run; unreadable entries are
// skipped rather than failing the listing.
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadValues(runID string) ([]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "values.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []float64{}, nil
	}

	values := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}

	return values, nil
}
