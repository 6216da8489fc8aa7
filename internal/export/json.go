package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// RunData is the JSON shape of one integration run.
type RunData struct {
	Integrator string       `json:"integrator"`
	Orbit      string       `json:"orbit"`
	Tau        float64      `json:"tau"`
	Tend       float64      `json:"tend"`
	GM         float64      `json:"gm"`
	Steps      int          `json:"steps"`
	Times      []float64    `json:"times"`
	States     [][4]float64 `json:"states"`
}

// WriteJSON writes a history with its run parameters as indented JSON.
func WriteJSON(w io.Writer, integrator, orbitName string, tau, tend, gm float64, hist *orbit.History) error {
	data := RunData{
		Integrator: integrator,
		Orbit:      orbitName,
		Tau:        tau,
		Tend:       tend,
		GM:         gm,
		Steps:      hist.Len(),
		Times:      hist.Times,
		States:     make([][4]float64, hist.Len()),
	}
	for i, s := range hist.States {
		data.States[i] = [4]float64{s.X, s.Y, s.U, s.V}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
