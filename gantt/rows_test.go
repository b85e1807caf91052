package gantt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssignRowsFirstSeenOrder(t *testing.T) {
	p := DefaultPalette()
	intervals := []Interval{
		{"A", 0, 10},
		{"B", 5, 20},
		{"A", 15, 25},
		{"C", 1, 2},
	}
	cl := AssignRows(intervals, p)

	want := []Category{
		{Name: "A", Row: 0, Color: p[0]},
		{Name: "B", Row: 1, Color: p[1]},
		{Name: "C", Row: 2, Color: p[2]},
	}
	if diff := cmp.Diff(want, cl.Categories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if cl.Row("B") != 1 {
		t.Errorf("Row(B) = %d, want 1", cl.Row("B"))
	}
	if cl.Row("missing") != -1 {
		t.Errorf("Row(missing) = %d, want -1", cl.Row("missing"))
	}
}

func TestAssignRowsDeterministic(t *testing.T) {
	intervals := []Interval{{"x", 0, 1}, {"y", 0, 1}, {"x", 2, 3}, {"z", 0, 1}}
	a := AssignRows(intervals, DefaultPalette()).Categories()
	b := AssignRows(intervals, DefaultPalette()).Categories()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same input gave different layouts (-first +second):\n%s", diff)
	}
}

func TestAssignRowsOrderSensitive(t *testing.T) {
	a := AssignRows([]Interval{{"x", 0, 1}, {"y", 0, 1}}, DefaultPalette())
	b := AssignRows([]Interval{{"y", 0, 1}, {"x", 0, 1}}, DefaultPalette())
	if a.Row("x") == b.Row("x") {
		t.Error("row of x should follow input order")
	}
	ca, _ := a.Lookup("x")
	cb, _ := b.Lookup("x")
	if ca.Color == cb.Color {
		t.Error("colour of x should follow input order")
	}
}

func TestAssignRowsPaletteWraps(t *testing.T) {
	p := Palette{{Name: "one"}, {Name: "two"}}
	cl := AssignRows([]Interval{{"a", 0, 1}, {"b", 0, 1}, {"c", 0, 1}}, p)
	c, ok := cl.Lookup("c")
	if !ok {
		t.Fatal("c not found")
	}
	if c.Color.Name != "one" || c.Row != 2 {
		t.Errorf("c = %+v, want row 2 colour one", c)
	}
}

func TestRowCountFloor(t *testing.T) {
	cl := AssignRows(nil, DefaultPalette())
	if cl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cl.Len())
	}
	if cl.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", cl.RowCount())
	}
	if got := cl.RowHeight(190); got != 190 {
		t.Errorf("RowHeight(190) = %d, want 190", got)
	}
}

func TestRowHeightTruncates(t *testing.T) {
	cl := AssignRows([]Interval{{"a", 0, 1}, {"b", 0, 1}, {"c", 0, 1}}, DefaultPalette())
	if got := cl.RowHeight(190); got != 63 {
		t.Errorf("RowHeight(190) = %d, want 63", got)
	}
}

func TestBarHeight(t *testing.T) {
	tests := []struct{ row, want int }{
		{95, 4},
		{8, 4},
		{7, 3},
		{5, 1},
		{4, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := BarHeight(tt.row); got != tt.want {
			t.Errorf("BarHeight(%d) = %d, want %d", tt.row, got, tt.want)
		}
	}
}
