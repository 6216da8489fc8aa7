package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Store persists integration runs under a data directory, one
// subdirectory per run holding metadata.json and trajectory.csv.
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
	ID          string             `json:"id"`
	Integrator  string             `json:"integrator"`
	Orbit       string             `json:"orbit"`
	Timestamp   time.Time          `json:"timestamp"`
	Tau         float64            `json:"tau"`
	Tend        float64            `json:"tend"`
	GM          float64            `json:"gm"`
	Diagnostics map[string]float64 `json:"diagnostics"`
}

// Save writes one run and returns its id. Diagnostics are free-form
// scalars (energy drift, final position error, ...).
func (s *Store) Save(integrator, orbitName string, tau, tend, gm float64, diags map[string]float64, hist *orbit.History) (string, error) {
	runID := fmt.Sprintf("%s_%d", integrator, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Integrator:  integrator,
		Orbit:       orbitName,
		Timestamp:   time.Now(),
		Tau:         tau,
		Tend:        tend,
		GM:          gm,
		Diagnostics: diags,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "u", "v"}); err != nil {
		return "", err
	}
	for i := 0; i < hist.Len(); i++ {
		t, st := hist.At(i)
		row := []string{
			strconv.FormatFloat(t, 'g', -1, 64),
			strconv.FormatFloat(st.X, 'g', -1, 64),
			strconv.FormatFloat(st.Y, 'g', -1, 64),
			strconv.FormatFloat(st.U, 'g', -1, 64),
			strconv.FormatFloat(st.V, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()

	return runID, w.Error()
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
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

// LoadHistory reads back the trajectory of a stored run.
func (s *Store) LoadHistory(runID string) (*orbit.History, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("store: empty trajectory for run %s", runID)
	}

	hist := orbit.NewHistory(len(rows) - 1)
	for _, row := range rows[1:] { // skip header
		if len(row) != 5 {
			return nil, fmt.Errorf("store: malformed trajectory row in run %s", runID)
		}
		vals := make([]float64, 5)
		for i, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		hist.Append(vals[0], orbit.State{X: vals[1], Y: vals[2], U: vals[3], V: vals[4]})
	}
	return hist, nil
}
