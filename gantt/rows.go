package gantt

// Row sizing constants.
const (
	BarPadding   = 4 // vertical space kept free around a bar inside its row
	MaxBarHeight = 4
)

// Category is one distinct category with its row and colour.
type Category struct {
	Name  string
	Row   int
	Color Color
}

// CategoryLayout maps category names to rows and colours. Iteration order is
// first-seen order, which is also row order.
type CategoryLayout struct {
	order []Category
	index map[string]int
}

// AssignRows scans intervals in order. The first occurrence of a category
// fixes its row (0-based count of categories seen before it) and its colour
// (palette entry at the same first-seen index); later occurrences reuse both.
// The result depends on input order.
func AssignRows(intervals []Interval, palette Palette) *CategoryLayout {
	cl := &CategoryLayout{index: make(map[string]int)}
	colors := NewColorCycler(palette)
	for _, iv := range intervals {
		if _, ok := cl.index[iv.Category]; ok {
			continue
		}
		row := len(cl.order)
		cl.index[iv.Category] = row
		cl.order = append(cl.order, Category{Name: iv.Category, Row: row, Color: colors.Next()})
	}
	return cl
}

// Lookup returns the category entry for name.
func (cl *CategoryLayout) Lookup(name string) (Category, bool) {
	i, ok := cl.index[name]
	if !ok {
		return Category{}, false
	}
	return cl.order[i], true
}

// Row returns the row of name, or -1 if the category is unknown.
func (cl *CategoryLayout) Row(name string) int {
	if i, ok := cl.index[name]; ok {
		return i
	}
	return -1
}

// Categories returns the categories in first-seen order.
func (cl *CategoryLayout) Categories() []Category {
	out := make([]Category, len(cl.order))
	copy(out, cl.order)
	return out
}

// Len returns the number of distinct categories.
func (cl *CategoryLayout) Len() int { return len(cl.order) }

// RowCount returns the number of rows to lay out, at least 1.
func (cl *CategoryLayout) RowCount() int {
	return max(len(cl.order), 1)
}

// RowHeight divides the available height evenly between rows, truncating.
func (cl *CategoryLayout) RowHeight(availableHeight int) int {
	return availableHeight / cl.RowCount()
}

// BarHeight returns the bar thickness for a row of the given height. Rows
// too crowded to leave padding still get a 1 unit bar.
func BarHeight(rowHeight int) int {
	return max(1, min(MaxBarHeight, rowHeight-BarPadding))
}
