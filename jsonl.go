package tabfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, t DisplayTable, _ *renderConfig) error {
	enc := json.NewEncoder(w)
	for _, rec := range t.records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
