package domain

// Snapshot is the last/previous/week-ago/YTD view of one instrument, used by
// every table page.
type Snapshot struct {
	Value Cell
	Daily Cell
	Week  Cell
	YTD   Cell
}
