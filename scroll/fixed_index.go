package scroll

// FixedHeightIndex maps between row offsets and item indexes when every item
// occupies the same number of rows.
type FixedHeightIndex struct {
	Height int
	Count  func() int
}

// TotalHeight returns the total height for all items.
func (f FixedHeightIndex) TotalHeight() int {
	if f.Height <= 0 {
		return 0
	}
	return f.Height * f.count()
}

// IndexForOffset returns the item index covering a row offset.
func (f FixedHeightIndex) IndexForOffset(offset int) int {
	if f.Height <= 0 || offset <= 0 {
		return 0
	}
	return min(offset/f.Height, max(f.count()-1, 0))
}

// OffsetForIndex returns the first row of the given item.
func (f FixedHeightIndex) OffsetForIndex(index int) int {
	count := f.count()
	if f.Height <= 0 || index <= 0 || count == 0 {
		return 0
	}
	return min(index, count-1) * f.Height
}

// ItemsIn returns the half-open item range intersecting rows [offset, offset+rows).
func (f FixedHeightIndex) ItemsIn(offset, rows int) (first, end int) {
	count := f.count()
	if f.Height <= 0 || rows <= 0 || count == 0 {
		return 0, 0
	}
	first = f.IndexForOffset(offset)
	last := f.IndexForOffset(offset + rows - 1)
	return first, last + 1
}

func (f FixedHeightIndex) count() int {
	if f.Count == nil {
		return 0
	}
	return max(f.Count(), 0)
}
