package mock

import linkedin "github.com/SACCSF/NeonCRMLinkedIn"

var _ linkedin.BlockExtractor = (*BlockExtractor)(nil)

// BlockExtractor is a mock implementation of linkedin.BlockExtractor.
type BlockExtractor struct {
	CodeBlocksFn func(html string) ([]string, error)
}

func (e *BlockExtractor) CodeBlocks(html string) ([]string, error) {
	return e.CodeBlocksFn(html)
}
