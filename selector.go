package linkedin

// RowSelector decides which of a document's extracted rows survive.
// Implementations are pure; input order is preserved in the output.
type RowSelector interface {
	Select(rows []Row) []Row
}

// Ensure policies implement RowSelector at compile time.
var (
	_ RowSelector = BestRow{}
	_ RowSelector = DropThreshold{}
)

// BestRow keeps exactly the row with the most populated fields, ties broken
// by first occurrence. The payload array mixes the real record with
// navigation items and other UI artifacts; the most complete row is
// heuristically the one of interest. Used for company pages.
type BestRow struct{}

// Select implements RowSelector.
func (BestRow) Select(rows []Row) []Row {
	if len(rows) == 0 {
		return nil
	}
	best := 0
	for i, row := range rows {
		if row.NonNullCount() > rows[best].NonNullCount() {
			best = i
		}
	}
	return []Row{rows[best]}
}

// DropThreshold drops rows whose null-field count exceeds Max. Person
// search payloads hold one independently valid row per person; only
// obviously incomplete rows are discarded.
type DropThreshold struct {
	Max int
}

// Select implements RowSelector.
func (d DropThreshold) Select(rows []Row) []Row {
	var kept []Row
	for _, row := range rows {
		if row.NullCount() <= d.Max {
			kept = append(kept, row)
		}
	}
	return kept
}
