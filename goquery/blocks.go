// Package goquery implements code-block enumeration on top of
// PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
)

// Ensure BlockExtractor implements linkedin.BlockExtractor at compile time.
var _ linkedin.BlockExtractor = (*BlockExtractor)(nil)

// BlockExtractor enumerates a page's <code> elements in document order.
type BlockExtractor struct{}

// NewBlockExtractor creates a new BlockExtractor.
func NewBlockExtractor() *BlockExtractor {
	return &BlockExtractor{}
}

// CodeBlocks parses html and returns the plain-text content of every <code>
// element, in document order. Nested markup is stripped and HTML entities
// are decoded, so a block that carries an escaped JSON blob comes back as
// parseable JSON text.
func (e *BlockExtractor) CodeBlocks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, linkedin.Errorf(linkedin.EINVALID, "failed to parse HTML: %v", err)
	}

	var blocks []string
	doc.Find("code").Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, sel.Text())
	})
	return blocks, nil
}
