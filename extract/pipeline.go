// Package extract wires block enumeration, payload location, field
// extraction, and row selection into the per-document pipeline and the
// per-run orchestrator.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
)

// Ensure Pipeline implements linkedin.DocumentExtractor at compile time.
var _ linkedin.DocumentExtractor = (*Pipeline)(nil)

// Pipeline extracts rows from a single saved HTML document.
type Pipeline struct {
	// Blocks enumerates code blocks from raw HTML.
	Blocks linkedin.BlockExtractor

	// Locator finds the JSON payload among the blocks.
	Locator linkedin.Locator

	// Variant maps entity records to rows.
	Variant linkedin.Variant

	// Selector filters the extracted rows. Nil keeps every row.
	Selector linkedin.RowSelector

	// DebugDir, when set, receives a pretty-printed dump of each located
	// payload, one file per document.
	DebugDir string
}

// ExtractDocument reads the document at path and returns its selected rows.
// A payload that cannot be located is an EPAYLOAD error; callers treat it
// as fatal for the whole run.
func (p *Pipeline) ExtractDocument(ctx context.Context, path string) ([]linkedin.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	blocks, err := p.Blocks.CodeBlocks(string(data))
	if err != nil {
		return nil, err
	}

	payload, err := p.Locator.Locate(blocks)
	if err != nil {
		return nil, linkedin.Errorf(linkedin.ErrorCode(err), "%s: %s", path, linkedin.ErrorMessage(err))
	}

	if p.DebugDir != "" {
		if err := p.dumpPayload(path, payload); err != nil {
			return nil, err
		}
	}

	rows := make([]linkedin.Row, 0, len(payload.Included))
	for _, rec := range payload.Included {
		rows = append(rows, p.Variant.Extract(rec))
	}
	if p.Selector != nil {
		rows = p.Selector.Select(rows)
	}
	return rows, nil
}

// dumpPayload writes the located payload as indented JSON, named after the
// source document.
func (p *Pipeline) dumpPayload(path string, payload *linkedin.Payload) error {
	if err := os.MkdirAll(p.DebugDir, 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(payload.Raw), "", "    "); err != nil {
		return err
	}
	buf.WriteByte('\n')

	out := filepath.Join(p.DebugDir, filepath.Base(path)+".json")
	return os.WriteFile(out, buf.Bytes(), 0o644)
}
