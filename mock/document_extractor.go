package mock

import (
	"context"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
)

var _ linkedin.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of linkedin.DocumentExtractor.
type DocumentExtractor struct {
	ExtractDocumentFn func(ctx context.Context, path string) ([]linkedin.Row, error)
}

func (e *DocumentExtractor) ExtractDocument(ctx context.Context, path string) ([]linkedin.Row, error) {
	return e.ExtractDocumentFn(ctx, path)
}
