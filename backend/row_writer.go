package backend

// RowWriter is an optional optimization for bulk row updates.
// cells starts at column startX of row y.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}
