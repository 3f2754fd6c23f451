package linkedin

import "context"

// DocumentExtractor turns one saved HTML document into extracted rows.
// Implementations hide block enumeration, payload location, field
// extraction, and row selection. The context controls cancellation.
type DocumentExtractor interface {
	ExtractDocument(ctx context.Context, path string) ([]Row, error)
}
