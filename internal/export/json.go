package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/propscan/propscan/internal/extract"
)

// WriteJSON persists a batch's records as an indented JSON array. An empty
// batch writes "[]", not nothing: downstream consumers always get a document.
func WriteJSON(path string, records []extract.Record) error {
	if records == nil {
		records = []extract.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
