package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	values := []float64{0.1, 0.5, 0.9, 0.25}
	runID, err := st.Save(4, 3, 0.2, 1, values)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("id mismatch: %s vs %s", meta.ID, runID)
	}
	if meta.N != 4 || meta.Pendulums != 3 || meta.NoiseLevel != 0.2 || meta.Resets != 1 {
		t.Errorf("metadata fields wrong: %+v", meta)
	}
	if math.Abs(meta.Mean-0.4375) > 1e-12 {
		t.Errorf("mean = %g, want 0.4375", meta.Mean)
	}

	got, err := st.LoadValues(runID)
	if err != nil {
		t.Fatalf("load values failed: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("expected %d values, got %d", len(values), len(got))
	}
	for i := range values {
		if math.Abs(got[i]-values[i]) > 1e-15 {
			t.Errorf("value %d = %g, want %g", i, got[i], values[i])
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListSkipsCorruptRuns(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save(2, 1, 0.1, 0, []float64{0.3, 0.7}); err != nil {
		t.Fatal(err)
	}

	// A run directory with garbage metadata should be ignored.
	bad := filepath.Join(dir, "run_bad")
	if err := os.MkdirAll(bad, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bad, "metadata.json"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("run_absent"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadValues("run_absent"); err == nil {
		t.Error("expected error for missing values")
	}
}
