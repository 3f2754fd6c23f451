package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
)

// WriteJSON serializes rows as a JSON array of records and writes it to
// path, replacing any existing file. Non-ASCII characters are preserved
// rather than escaped. The file appears atomically: content is written to a
// temporary sibling and renamed into place.
func WriteJSON(path string, rows []linkedin.Row) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if rows == nil {
		rows = []linkedin.Row{}
	}
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

// WriteCSV serializes rows as comma-separated values and writes them to
// path, replacing any existing file. The first column is an unnamed
// positional index, matching the layout of the spreadsheet exports this
// tool replaced. All rows must share the given column set.
func WriteCSV(path string, columns []string, rows []linkedin.Row) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(append([]string{""}, columns...)); err != nil {
		return err
	}
	for i, row := range rows {
		record := make([]string, 0, len(columns)+1)
		record = append(record, strconv.Itoa(i))
		for _, v := range row.Values {
			record = append(record, formatValue(v))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

// formatValue renders one row value as a CSV cell. Null fields become the
// empty string; raw JSON values (array-valued fields) keep their JSON text.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case json.RawMessage:
		return string(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partially written result.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
