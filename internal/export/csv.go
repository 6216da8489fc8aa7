package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// WriteCSV writes a history as rows of time,x,y,u,v with a header.
func WriteCSV(w io.Writer, hist *orbit.History) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "x", "y", "u", "v"}); err != nil {
		return err
	}

	for i := 0; i < hist.Len(); i++ {
		t, s := hist.At(i)
		row := []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
			strconv.FormatFloat(s.U, 'f', 6, 64),
			strconv.FormatFloat(s.V, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
