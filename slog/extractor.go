// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
)

// Ensure LoggingExtractor implements linkedin.DocumentExtractor.
var _ linkedin.DocumentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DocumentExtractor with per-document progress
// logging.
type LoggingExtractor struct {
	next   linkedin.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkedin.DocumentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractDocument delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractDocument(ctx context.Context, path string) ([]linkedin.Row, error) {
	begin := time.Now()
	rows, err := e.next.ExtractDocument(ctx, path)
	if err != nil {
		e.logger.Error("extract", "path", path, "err", err)
		return nil, err
	}
	e.logger.Info("extract", "path", path, "rows", len(rows), "duration", time.Since(begin))
	return rows, nil
}
