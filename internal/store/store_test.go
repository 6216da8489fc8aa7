package store

import (
	"testing"

	"github.com/san-kum/orbitlab/internal/orbit"
)

func sampleHistory() *orbit.History {
	h := orbit.NewHistory(3)
	h.Append(0, orbit.Circular(orbit.GM))
	h.Append(0.5, orbit.State{X: -1, Y: 0, U: 0, V: -1})
	h.Append(1, orbit.Circular(orbit.GM))
	return h
}

func TestStoreRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	diags := map[string]float64{"energy_drift": 1.5e-6}
	id, err := st.Save("rk4", "circular", 0.5, 1.0, orbit.GM, diags, sampleHistory())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Integrator != "rk4" || meta.Orbit != "circular" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Tau != 0.5 || meta.Tend != 1.0 {
		t.Errorf("unexpected run parameters: %+v", meta)
	}
	if meta.Diagnostics["energy_drift"] != 1.5e-6 {
		t.Errorf("diagnostics not preserved: %v", meta.Diagnostics)
	}

	hist, err := st.LoadHistory(id)
	if err != nil {
		t.Fatalf("load history failed: %v", err)
	}
	if hist.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", hist.Len())
	}

	want := sampleHistory()
	for i := 0; i < hist.Len(); i++ {
		gt, gs := hist.At(i)
		wt, ws := want.At(i)
		if gt != wt || gs != ws {
			t.Errorf("sample %d: got (%v, %v), want (%v, %v)", i, gt, gs, wt, ws)
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save("euler", "circular", 0.1, 1.0, orbit.GM, nil, sampleHistory()); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("rk2", "circular", 0.1, 1.0, orbit.GM, nil, sampleHistory()); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("no_such_run"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadHistory("no_such_run"); err == nil {
		t.Error("expected error for missing trajectory")
	}
}
