package config

import (
	"sort"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Presets are the standard demonstration runs: one circular orbit per
// method with halving step sizes, the monthly-step RK4 orbit, and the
// eccentric ellipse where only RK4 stays accurate.
var Presets = map[string]*Config{
	"euler-circular": {
		Integrator: "euler", Orbit: "circular",
		Taus: []float64{0.1, 0.05, 0.025, 0.0125}, Tend: 1, GM: orbit.GM,
	},
	"rk2-circular": {
		Integrator: "rk2", Orbit: "circular",
		Taus: []float64{0.1, 0.05, 0.025, 0.0125}, Tend: 1, GM: orbit.GM,
	},
	"rk4-circular": {
		Integrator: "rk4", Orbit: "circular",
		Taus: []float64{0.1, 0.05, 0.025}, Tend: 1, GM: orbit.GM,
	},
	"rk4-monthly": {
		Integrator: "rk4", Orbit: "circular",
		Taus: []float64{1.0 / 12.0}, Tend: 1, GM: orbit.GM,
	},
	"rk4-elliptical": {
		Integrator: "rk4", Orbit: "elliptical",
		Taus: []float64{0.025}, Tend: 1, GM: orbit.GM,
		SemiMajor: 1.0, Ecc: 0.6,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
