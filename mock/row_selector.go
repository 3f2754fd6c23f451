package mock

import linkedin "github.com/SACCSF/NeonCRMLinkedIn"

var _ linkedin.RowSelector = (*RowSelector)(nil)

// RowSelector is a mock implementation of linkedin.RowSelector.
type RowSelector struct {
	SelectFn func(rows []linkedin.Row) []linkedin.Row
}

func (s *RowSelector) Select(rows []linkedin.Row) []linkedin.Row {
	return s.SelectFn(rows)
}
