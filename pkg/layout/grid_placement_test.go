package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"mondrian/pkg/html"
)

// buildGrid wires up a grid container box with one child per item style.
func buildGrid(t *testing.T, containerStyle string, itemStyles ...string) *Box {
	t.Helper()
	node := html.NewElement("div", map[string]string{"style": containerStyle})
	for _, itemStyle := range itemStyles {
		node.AddChild(html.NewElement("div", map[string]string{"style": itemStyle}))
	}
	box := BuildBoxTree(node, nil)
	if box == nil {
		t.Fatalf("container box not built from style %q", containerStyle)
	}
	return box
}

func runGrid(t *testing.T, container *Box, space AvailableSpace) (*LayoutEngine, *GridFormattingContext) {
	t.Helper()
	engine := NewLayoutEngine(800, 600)
	fc := NewGridFormattingContext(engine, container)
	fc.Run(container, LayoutModeNormal, space)
	return engine, fc
}

type placement struct {
	Row, RowSpan, Column, ColumnSpan int
}

func placements(fc *GridFormattingContext) []placement {
	var out []placement
	for i := range fc.gridItems {
		item := &fc.gridItems[i]
		out = append(out, placement{item.row, item.rowSpan, item.column, item.columnSpan})
	}
	return out
}

func TestOccupationGridNeverShrinks(t *testing.T) {
	grid := newOccupationGrid(2, 2)
	rows, columns := grid.rowCount(), grid.columnCount()

	steps := []func(){
		func() { grid.maybeAddRow(1) },
		func() { grid.maybeAddColumn(1) },
		func() { grid.maybeAddRow(4) },
		func() { grid.maybeAddColumn(3) },
		func() { grid.setOccupied(0, 3, 0, 4) },
		func() { grid.maybeAddRow(2) },
	}
	for i, step := range steps {
		step()
		if grid.rowCount() < rows || grid.columnCount() < columns {
			t.Fatalf("step %d shrank grid to %dx%d from %dx%d",
				i, grid.rowCount(), grid.columnCount(), rows, columns)
		}
		rows, columns = grid.rowCount(), grid.columnCount()
	}
	if rows != 4 || columns != 3 {
		t.Errorf("grid = %dx%d, want 4x3", rows, columns)
	}
}

func TestOccupationGridMinimumOneByOne(t *testing.T) {
	grid := newOccupationGrid(0, -3)
	if grid.rowCount() != 1 || grid.columnCount() != 1 {
		t.Errorf("grid = %dx%d, want 1x1", grid.rowCount(), grid.columnCount())
	}
}

func TestDefinitePlacementBothAxes(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px 100px; grid-template-rows: 50px 50px",
		"grid-row: 2 / 3; grid-column: 2 / 4")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(300), DefiniteSize(100)})

	want := []placement{{Row: 1, RowSpan: 1, Column: 1, ColumnSpan: 2}}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if !fc.occupationGrid.isOccupied(2, 1) {
		t.Errorf("cell (column 2, row 1) should be occupied")
	}
	if fc.occupationGrid.isOccupied(0, 0) {
		t.Errorf("cell (0, 0) should be free")
	}
}

func TestStartAfterEndSwaps(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-rows: 50px 50px 50px; grid-template-columns: 100px",
		"grid-row: 3 / 1")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(100), DefiniteSize(150)})

	want := []placement{{Row: 0, RowSpan: 2, Column: 0, ColumnSpan: 1}}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestNegativeEndLineCountsFromExplicitEnd(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px 100px 100px",
		"grid-column: 1 / -1")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(400), IndefiniteSize()})

	want := []placement{{Row: 0, RowSpan: 1, Column: 0, ColumnSpan: 4}}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestSpanFromEndLine(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-rows: 50px 50px 50px 50px; grid-template-columns: 100px",
		"grid-row: span 2 / 4")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(100), DefiniteSize(200)})

	want := []placement{{Row: 1, RowSpan: 2, Column: 0, ColumnSpan: 1}}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestTwoSpansKeepStartSide(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px 100px; grid-template-rows: 50px",
		"grid-row: 1; grid-column: span 2 / span 3")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(300), DefiniteSize(50)})

	got := placements(fc)
	if len(got) != 1 || got[0].ColumnSpan != 2 {
		t.Errorf("placements = %+v, want a single item with column span 2", got)
	}
}

func TestRowDefiniteTakesFirstFreeColumn(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px; grid-template-rows: 50px",
		"grid-row: 1; grid-column: 1",
		"grid-row: 1")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), DefiniteSize(50)})

	want := []placement{
		{Row: 0, RowSpan: 1, Column: 0, ColumnSpan: 1},
		{Row: 0, RowSpan: 1, Column: 1, ColumnSpan: 1},
	}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestRowDefiniteAppendsColumnWhenRowFull(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px; grid-template-rows: 50px",
		"grid-row: 1; grid-column: 1",
		"grid-row: 1")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(100), DefiniteSize(50)})

	got := placements(fc)
	want := []placement{
		{Row: 0, RowSpan: 1, Column: 0, ColumnSpan: 1},
		{Row: 0, RowSpan: 1, Column: 1, ColumnSpan: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if fc.occupationGrid.columnCount() < 2 {
		t.Errorf("occupancy grid should have grown to hold the appended column")
	}
}

func TestColumnDefiniteWalksDownPastOccupiedRectangles(t *testing.T) {
	// First item owns rows 1-2 of column 1; the second must land in row 3
	// even though only the first cell of the rectangle scan would collide.
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px; grid-template-rows: 50px 50px",
		"grid-row: 1 / 3; grid-column: 1",
		"grid-column: 1; grid-row: span 2")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), DefiniteSize(100)})

	want := []placement{
		{Row: 0, RowSpan: 2, Column: 0, ColumnSpan: 1},
		{Row: 2, RowSpan: 2, Column: 0, ColumnSpan: 1},
	}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnDefiniteCursorWrapsWhenMovingBack(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px",
		"grid-column: 2",
		"grid-column: 1")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), IndefiniteSize()})

	want := []placement{
		{Row: 0, RowSpan: 1, Column: 1, ColumnSpan: 1},
		{Row: 1, RowSpan: 1, Column: 0, ColumnSpan: 1},
	}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestSparseAutoPlacementIsDeterministic(t *testing.T) {
	build := func() *GridFormattingContext {
		container := buildGrid(t,
			"display: grid; grid-template-columns: 100px 100px",
			"", "", "")
		_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), IndefiniteSize()})
		return fc
	}

	want := []placement{
		{Row: 0, RowSpan: 1, Column: 0, ColumnSpan: 1},
		{Row: 0, RowSpan: 1, Column: 1, ColumnSpan: 1},
		{Row: 1, RowSpan: 1, Column: 0, ColumnSpan: 1},
	}
	first := placements(build())
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("placements mismatch (-want +got):\n%s", diff)
	}
	second := placements(build())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same input produced different placements (-first +second):\n%s", diff)
	}
}

func TestAutoPlacementCursorNeverRevisits(t *testing.T) {
	// A spanning auto item leaves a hole at (0,1); sparse packing means the
	// next item does not back-fill it once the cursor has moved past.
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px",
		"grid-column: 1",
		"grid-row: span 1; grid-column: span 2",
		"")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), IndefiniteSize()})

	got := placements(fc)
	// Item 2 cannot fit beside item 1, so it takes row 2; item 3 lands
	// after it, not back in row 1.
	want := []placement{
		{Row: 0, RowSpan: 1, Column: 0, ColumnSpan: 1},
		{Row: 1, RowSpan: 1, Column: 0, ColumnSpan: 2},
		{Row: 2, RowSpan: 1, Column: 0, ColumnSpan: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedAreaPlacement(t *testing.T) {
	container := buildGrid(t,
		`display: grid; grid-template-columns: 100px 100px; grid-template-rows: 50px 50px; grid-template-areas: "main main" "side ."`,
		"grid-area: main",
		"grid-area: side")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), DefiniteSize(100)})

	want := []placement{
		{Row: 0, RowSpan: 1, Column: 0, ColumnSpan: 2},
		{Row: 1, RowSpan: 1, Column: 0, ColumnSpan: 1},
	}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedLineFromTrackList(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px [mid] 100px 100px",
		"grid-column: mid")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(300), IndefiniteSize()})

	want := []placement{{Row: 0, RowSpan: 1, Column: 1, ColumnSpan: 1}}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownNamedLineFallsBack(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px",
		"grid-column-start: nowhere")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), IndefiniteSize()})

	want := []placement{{Row: 0, RowSpan: 1, Column: 0, ColumnSpan: 1}}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}
