package render

// GridCell returns the row and column of item i in a row-major grid.
func GridCell(i, columns int) (row, col int) {
	if columns <= 0 {
		columns = 1
	}
	return i / columns, i % columns
}

// GridRows groups item indexes 0..n-1 into rows of at most columns entries.
func GridRows(n, columns int) [][]int {
	if columns <= 0 {
		columns = 1
	}
	var rows [][]int
	for i := 0; i < n; i++ {
		r, _ := GridCell(i, columns)
		if r == len(rows) {
			rows = append(rows, make([]int, 0, columns))
		}
		rows[r] = append(rows[r], i)
	}
	return rows
}

// Columns picks a grid's column count: the configured value, else fallback,
// else one column per item. The result is always at least 1.
func Columns(configured, itemCount, fallback int) int {
	switch {
	case configured > 0:
		return configured
	case fallback > 0:
		return fallback
	case itemCount > 0:
		return itemCount
	}
	return 1
}
