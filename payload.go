package linkedin

import (
	"strings"

	"github.com/tidwall/gjson"
)

// payloadKey is the top-level key that identifies the payload of interest
// among a page's embedded JSON blobs.
const payloadKey = "included"

// EntityRecord is the raw JSON text of one element of the payload's
// "included" array. Records are heterogeneous (people, companies,
// navigation items, ads) and carry no enforced schema; fields are read
// defensively via path lookups.
type EntityRecord string

// Payload is the JSON blob located inside one document.
type Payload struct {
	// Index is the position of the code block the payload was found at.
	Index int

	// Raw is the payload's full JSON text, retained for debug dumps.
	Raw string

	// Included holds the entity records in payload order.
	Included []EntityRecord
}

// BlockExtractor enumerates the plain-text contents of a document's code
// blocks in document order. Index ordering must match the page's structural
// layout; the Locator depends on it.
type BlockExtractor interface {
	CodeBlocks(html string) ([]string, error)
}

// Locator finds the JSON payload among a document's code blocks.
//
// The zero value scans all blocks in document order and takes the first one
// that parses as JSON and contains a top-level "included" array. Setting
// Indices pins the search to specific block positions instead, reproducing
// the hand-tuned template offsets the page layout used to require
// (historically 20 for company pages, 14 then 16 for person search pages).
type Locator struct {
	Indices []int
}

// Locate returns the payload found in blocks, or an EPAYLOAD error if no
// candidate block holds one. A locate failure is treated as fatal by
// callers: it means the page template changed and every remaining document
// would fail the same way.
func (l Locator) Locate(blocks []string) (*Payload, error) {
	if len(blocks) == 0 {
		return nil, Errorf(EPAYLOAD, "document contains no code blocks")
	}

	if len(l.Indices) > 0 {
		for _, i := range l.Indices {
			if i < 0 || i >= len(blocks) {
				continue
			}
			if p, ok := parsePayload(i, blocks[i]); ok {
				return p, nil
			}
		}
		return nil, Errorf(EPAYLOAD, "no JSON payload with an %q array at block index(es) %v", payloadKey, l.Indices)
	}

	for i, block := range blocks {
		if p, ok := parsePayload(i, block); ok {
			return p, nil
		}
	}
	return nil, Errorf(EPAYLOAD, "no code block contains a JSON payload with an %q array", payloadKey)
}

// parsePayload attempts to interpret one code block as the payload.
func parsePayload(index int, block string) (*Payload, bool) {
	block = strings.TrimSpace(block)
	if block == "" || !gjson.Valid(block) {
		return nil, false
	}

	included := gjson.Get(block, payloadKey)
	if !included.IsArray() {
		return nil, false
	}

	var records []EntityRecord
	for _, el := range included.Array() {
		records = append(records, EntityRecord(el.Raw))
	}

	return &Payload{
		Index:    index,
		Raw:      block,
		Included: records,
	}, true
}
