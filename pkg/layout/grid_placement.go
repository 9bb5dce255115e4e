package layout

import (
	"mondrian/pkg/css"
)

// gridDimension selects the axis a sizing or placement step operates on.
type gridDimension int

const (
	dimensionColumn gridDimension = iota
	dimensionRow
)

// gridEdge distinguishes the start and end edge of a placement when
// resolving named lines.
type gridEdge int

const (
	edgeStart gridEdge = iota
	edgeEnd
)

// occupationGrid tracks which cells of the grid are taken. It only ever
// grows, and is never smaller than 1x1; rows stay rectangular.
type occupationGrid struct {
	cells [][]bool // [row][column]
}

func newOccupationGrid(columnCount, rowCount int) occupationGrid {
	if columnCount < 1 {
		columnCount = 1
	}
	if rowCount < 1 {
		rowCount = 1
	}
	cells := make([][]bool, rowCount)
	for i := range cells {
		cells[i] = make([]bool, columnCount)
	}
	return occupationGrid{cells: cells}
}

func (g *occupationGrid) rowCount() int {
	return len(g.cells)
}

func (g *occupationGrid) columnCount() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// maybeAddRow grows the grid so it has at least count rows.
func (g *occupationGrid) maybeAddRow(count int) {
	columns := g.columnCount()
	for len(g.cells) < count {
		g.cells = append(g.cells, make([]bool, columns))
	}
}

// maybeAddColumn grows every row so the grid has at least count columns.
func (g *occupationGrid) maybeAddColumn(count int) {
	if count <= g.columnCount() {
		return
	}
	for i := range g.cells {
		for len(g.cells[i]) < count {
			g.cells[i] = append(g.cells[i], false)
		}
	}
}

// setOccupied marks the half-open rectangle [columnStart,columnEnd) x
// [rowStart,rowEnd). Cells outside the grid are ignored, so negative line
// indices are harmless here.
func (g *occupationGrid) setOccupied(columnStart, columnEnd, rowStart, rowEnd int) {
	for row := 0; row < g.rowCount(); row++ {
		if row < rowStart || row >= rowEnd {
			continue
		}
		for column := 0; column < g.columnCount(); column++ {
			if column < columnStart || column >= columnEnd {
				continue
			}
			g.cells[row][column] = true
		}
	}
}

// isOccupied reports whether a single cell is taken. Callers grow the grid
// before querying; out-of-range cells read as free.
func (g *occupationGrid) isOccupied(column, row int) bool {
	if row < 0 || row >= g.rowCount() || column < 0 || column >= g.columnCount() {
		return false
	}
	return g.cells[row][column]
}

// isAreaOccupied reports whether any cell of the rectangle is taken.
func (g *occupationGrid) isAreaOccupied(columnStart, columnSpan, rowStart, rowSpan int) bool {
	for row := rowStart; row < rowStart+rowSpan; row++ {
		for column := columnStart; column < columnStart+columnSpan; column++ {
			if g.isOccupied(column, row) {
				return true
			}
		}
	}
	return false
}

// isRowRangeOccupied reports whether any of the span columns starting at
// columnStart is taken in the given row.
func (g *occupationGrid) isRowRangeOccupied(columnStart, columnSpan, row int) bool {
	for column := columnStart; column < columnStart+columnSpan; column++ {
		if g.isOccupied(column, row) {
			return true
		}
	}
	return false
}

// gridItem is a placed child: its box plus the resolved logical track
// rectangle (0-based track indices, not line numbers).
type gridItem struct {
	box        *Box
	row        int
	rowSpan    int
	column     int
	columnSpan int
}

func (item *gridItem) position(dimension gridDimension) int {
	if dimension == dimensionColumn {
		return item.column
	}
	return item.row
}

func (item *gridItem) span(dimension gridDimension) int {
	if dimension == dimensionColumn {
		return item.columnSpan
	}
	return item.rowSpan
}

// placeGridItems runs the four placement passes over the container's
// children: definite in both axes, then definite row, then definite column
// with the auto-placement cursor, then fully automatic.
func (gfc *GridFormattingContext) placeGridItems(space AvailableSpace) {
	style := gfc.container.Style
	columnCount := gfc.countTracksInList(style.GetGridTemplateColumns(), space, dimensionColumn)
	rowCount := gfc.countTracksInList(style.GetGridTemplateRows(), space, dimensionRow)
	gfc.occupationGrid = newOccupationGrid(columnCount, rowCount)
	gfc.gridAreas = buildValidGridAreas(style.GetGridTemplateAreas())

	var remaining []*Box
	for _, child := range gfc.container.Children {
		childStyle := child.Style
		rowDefinite := axisHasPosition(childStyle.GetGridRowStart(), childStyle.GetGridRowEnd())
		columnDefinite := axisHasPosition(childStyle.GetGridColumnStart(), childStyle.GetGridColumnEnd())
		if rowDefinite && columnDefinite {
			gfc.placeItemWithRowAndColumnPosition(child)
			continue
		}
		remaining = append(remaining, child)
	}

	var autoColumn []*Box
	for _, child := range remaining {
		if axisHasPosition(child.Style.GetGridRowStart(), child.Style.GetGridRowEnd()) {
			gfc.placeItemWithRowPosition(child)
			continue
		}
		autoColumn = append(autoColumn, child)
	}

	cursorX, cursorY := 0, 0
	for _, child := range autoColumn {
		if axisHasPosition(child.Style.GetGridColumnStart(), child.Style.GetGridColumnEnd()) {
			gfc.placeItemWithColumnPosition(child, &cursorX, &cursorY)
			continue
		}
		gfc.placeItemWithNoDeclaredPosition(child, &cursorX, &cursorY)
	}
}

// axisHasPosition reports whether either edge pins the item in the axis.
// Spans and auto do not pin; the item stays auto-placed in that axis.
func axisHasPosition(start, end css.GridPlacement) bool {
	return start.IsPosition() || start.IsNamedPosition() ||
		end.IsPosition() || end.IsNamedPosition()
}

// resolveLinePair turns a start/end placement pair in one axis into a
// 0-based start track index and a span count, applying negative-line
// adjustment, span transfer, named-line resolution and conflict handling.
func (gfc *GridFormattingContext) resolveLinePair(start, end css.GridPlacement, dimension gridDimension) (int, int) {
	lineCount := gfc.occupationGrid.rowCount()
	if dimension == dimensionColumn {
		lineCount = gfc.occupationGrid.columnCount()
	}

	startTrack := start.RawValue() - 1
	endTrack := end.RawValue() - 1
	// Negative line numbers count back from the end of the explicit grid.
	if endTrack < -1 {
		endTrack = lineCount + endTrack + 2
	}

	// A resolved named line behaves like a numeric position from here on.
	if end.IsNamedPosition() {
		endTrack = gfc.resolveNamedLine(end.Name, dimension, edgeEnd)
	}
	if start.IsNamedPosition() {
		startTrack = gfc.resolveNamedLine(start.Name, dimension, edgeStart)
	}
	startResolved := start.IsPosition() || start.IsNamedPosition()
	endResolved := end.IsPosition() || end.IsNamedPosition()

	span := 1
	if startResolved && end.IsSpan() {
		span = end.RawValue()
	}
	if !startResolved && endResolved {
		if start.IsSpan() {
			span = start.RawValue()
		}
		startTrack = endTrack - span
	}

	if startResolved && endResolved {
		if startTrack > endTrack {
			startTrack, endTrack = endTrack, startTrack
		}
		if startTrack != endTrack {
			span = endTrack - startTrack
		}
	}

	// Two spans cannot both hold; the start side wins.
	if start.IsSpan() && end.IsSpan() {
		span = start.RawValue()
	}

	return startTrack, span
}

// placeItemWithRowAndColumnPosition handles items definite in both axes.
// The occupancy grid grows to cover the whole placed rectangle before it is
// marked.
func (gfc *GridFormattingContext) placeItemWithRowAndColumnPosition(child *Box) {
	style := child.Style
	rowStart, rowSpan := gfc.resolveLinePair(style.GetGridRowStart(), style.GetGridRowEnd(), dimensionRow)
	columnStart, columnSpan := gfc.resolveLinePair(style.GetGridColumnStart(), style.GetGridColumnEnd(), dimensionColumn)

	gfc.occupationGrid.maybeAddRow(rowStart + rowSpan)
	gfc.occupationGrid.maybeAddColumn(columnStart + columnSpan)
	gfc.occupationGrid.setOccupied(columnStart, columnStart+columnSpan, rowStart, rowStart+rowSpan)

	gfc.gridItems = append(gfc.gridItems, gridItem{
		box:        child,
		row:        rowStart,
		rowSpan:    rowSpan,
		column:     columnStart,
		columnSpan: columnSpan,
	})
}

// placeItemWithRowPosition handles items with a definite row only: the item
// takes the first free cell of its row, or a new column past the current
// ones when the row is full.
func (gfc *GridFormattingContext) placeItemWithRowPosition(child *Box) {
	style := child.Style
	rowStart, rowSpan := gfc.resolveLinePair(style.GetGridRowStart(), style.GetGridRowEnd(), dimensionRow)
	if rowStart < 0 {
		rowStart = 0
	}

	columnSpan := 1
	if style.GetGridColumnStart().IsSpan() {
		columnSpan = style.GetGridColumnStart().RawValue()
	}

	gfc.occupationGrid.maybeAddRow(rowStart + rowSpan)
	gfc.occupationGrid.maybeAddColumn(columnSpan)

	columnStart := -1
	for column := 0; column < gfc.occupationGrid.columnCount(); column++ {
		if !gfc.occupationGrid.isOccupied(column, rowStart) {
			columnStart = column
			break
		}
	}
	if columnStart < 0 {
		columnStart = gfc.occupationGrid.columnCount()
	}
	gfc.occupationGrid.maybeAddColumn(columnStart + columnSpan)
	gfc.occupationGrid.setOccupied(columnStart, columnStart+columnSpan, rowStart, rowStart+rowSpan)

	gfc.gridItems = append(gfc.gridItems, gridItem{
		box:        child,
		row:        rowStart,
		rowSpan:    rowSpan,
		column:     columnStart,
		columnSpan: columnSpan,
	})
}

// placeItemWithColumnPosition handles items with a definite column only.
// The cursor moves to the item's column, wrapping to the next row when that
// means moving backwards, then walks down until the item's whole rectangle
// is free.
func (gfc *GridFormattingContext) placeItemWithColumnPosition(child *Box, cursorX, cursorY *int) {
	style := child.Style
	columnStart, columnSpan := gfc.resolveLinePair(style.GetGridColumnStart(), style.GetGridColumnEnd(), dimensionColumn)
	if columnStart < 0 {
		columnStart = 0
	}

	rowSpan := 1
	if style.GetGridRowStart().IsSpan() {
		rowSpan = style.GetGridRowStart().RawValue()
	}

	if columnStart < *cursorX {
		*cursorY++
	}
	*cursorX = columnStart

	gfc.occupationGrid.maybeAddColumn(columnStart + columnSpan)
	gfc.occupationGrid.maybeAddRow(*cursorY + rowSpan)
	for gfc.occupationGrid.isAreaOccupied(columnStart, columnSpan, *cursorY, rowSpan) {
		*cursorY++
		gfc.occupationGrid.maybeAddRow(*cursorY + rowSpan)
	}
	gfc.occupationGrid.setOccupied(columnStart, columnStart+columnSpan, *cursorY, *cursorY+rowSpan)

	gfc.gridItems = append(gfc.gridItems, gridItem{
		box:        child,
		row:        *cursorY,
		rowSpan:    rowSpan,
		column:     columnStart,
		columnSpan: columnSpan,
	})
}

// placeItemWithNoDeclaredPosition handles fully automatic items: a sparse
// row-major scan from the cursor for a free slot, appending a fresh row when
// none exists.
func (gfc *GridFormattingContext) placeItemWithNoDeclaredPosition(child *Box, cursorX, cursorY *int) {
	style := child.Style

	columnSpan := 1
	if style.GetGridColumnStart().IsSpan() {
		columnSpan = style.GetGridColumnStart().RawValue()
	} else if style.GetGridColumnEnd().IsSpan() {
		columnSpan = style.GetGridColumnEnd().RawValue()
	}
	rowSpan := 1
	if style.GetGridRowStart().IsSpan() {
		rowSpan = style.GetGridRowStart().RawValue()
	} else if style.GetGridRowEnd().IsSpan() {
		rowSpan = style.GetGridRowEnd().RawValue()
	}
	gfc.occupationGrid.maybeAddColumn(columnSpan)

	rowStart, columnStart, found := gfc.findUnoccupiedSlot(columnSpan, cursorX, cursorY)
	if !found {
		rowStart = gfc.occupationGrid.rowCount()
		columnStart = 0
	}
	gfc.occupationGrid.maybeAddRow(rowStart + rowSpan)
	gfc.occupationGrid.maybeAddColumn(columnStart + columnSpan)
	gfc.occupationGrid.setOccupied(columnStart, columnStart+columnSpan, rowStart, rowStart+rowSpan)

	gfc.gridItems = append(gfc.gridItems, gridItem{
		box:        child,
		row:        rowStart,
		rowSpan:    rowSpan,
		column:     columnStart,
		columnSpan: columnSpan,
	})
}

// findUnoccupiedSlot scans row-major from the cursor for a position whose
// span columns are free in the candidate row. The cursor advances as the
// scan goes, which keeps auto placement sparse: later items never revisit
// cells before the cursor.
func (gfc *GridFormattingContext) findUnoccupiedSlot(columnSpan int, cursorX, cursorY *int) (row, column int, found bool) {
	grid := &gfc.occupationGrid
	for *cursorY < grid.rowCount() {
		for *cursorX < grid.columnCount() {
			if *cursorX+columnSpan <= grid.columnCount() &&
				!grid.isRowRangeOccupied(*cursorX, columnSpan, *cursorY) {
				return *cursorY, *cursorX, true
			}
			*cursorX++
		}
		*cursorX = 0
		*cursorY++
	}
	return 0, 0, false
}

// resolveNamedLine maps a line name to a 0-based track index: named grid
// areas first, then line names from the axis track list, then the fallback
// line for the edge being resolved.
func (gfc *GridFormattingContext) resolveNamedLine(name string, dimension gridDimension, edge gridEdge) int {
	if area := gfc.findValidGridArea(name); area != nil {
		if dimension == dimensionColumn {
			if edge == edgeEnd {
				return area.columnEnd
			}
			return area.columnStart
		}
		if edge == edgeEnd {
			return area.rowEnd
		}
		return area.rowStart
	}

	trackList := gfc.container.Style.GetGridTemplateRows()
	if dimension == dimensionColumn {
		trackList = gfc.container.Style.GetGridTemplateColumns()
	}
	if index := lineIndexByName(name, trackList); index >= 0 {
		return index
	}

	if edge == edgeEnd {
		return 1
	}
	return 0
}

func lineIndexByName(name string, list css.TrackList) int {
	if list.IsEmpty() {
		return -1
	}
	for index, names := range list.ExpandedLineNames() {
		for _, candidate := range names {
			if candidate == name {
				return index
			}
		}
	}
	return -1
}
