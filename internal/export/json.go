package export

import (
	"encoding/json"
	"io"
)

// WriteJSON serializes the full report verbatim.
func WriteJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
