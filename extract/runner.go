package extract

import (
	"context"
	"io"
	"log/slog"
	"os"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
	"github.com/cespare/xxhash/v2"
)

// Result aggregates the rows of one run over a directory tree.
type Result struct {
	// Rows holds the surviving rows in document-processing order.
	Rows []linkedin.Row

	// Documents is the number of documents processed.
	Documents int

	// Skipped lists duplicate snapshots that were not processed.
	Skipped []string
}

// Runner processes documents sequentially and concatenates their rows.
// Processing stops at the first error; no partial output is produced.
type Runner struct {
	// Extractor produces rows for one document.
	Extractor linkedin.DocumentExtractor

	// KeepDuplicates disables duplicate snapshot detection. By default a
	// file whose contents hash equal to an earlier file's is skipped, so a
	// page saved twice under different names contributes rows once.
	KeepDuplicates bool

	// Logger receives per-document progress. Nil discards logs.
	Logger *slog.Logger
}

// Run processes paths in order and returns the aggregated result.
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	seen := make(map[uint64]string)
	result := &Result{}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !r.KeepDuplicates {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			sum := xxhash.Sum64(data)
			if first, ok := seen[sum]; ok {
				r.logger().Info("skipping duplicate snapshot", "path", path, "duplicate_of", first)
				result.Skipped = append(result.Skipped, path)
				continue
			}
			seen[sum] = path
		}

		rows, err := r.Extractor.ExtractDocument(ctx, path)
		if err != nil {
			return nil, err
		}
		result.Rows = append(result.Rows, rows...)
		result.Documents++
	}

	return result, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
