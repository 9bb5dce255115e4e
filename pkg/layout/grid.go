package layout

import "math"

// GridFormattingContext lays out the children of a display:grid box: item
// placement onto the occupancy grid, track sizing in both axes, then
// geometry for each item. One context serves one container for one pass.
type GridFormattingContext struct {
	engine    *LayoutEngine
	container *Box

	occupationGrid occupationGrid
	gridAreas      []gridArea
	gridItems      []gridItem

	columns gridAxis
	rows    gridAxis

	automaticContentHeight float64
}

func NewGridFormattingContext(engine *LayoutEngine, container *Box) *GridFormattingContext {
	return &GridFormattingContext{engine: engine, container: container}
}

// Run places the container's children, sizes both axes (columns first, so
// row sizing can measure contents against settled widths), then resolves
// item geometry and recurses into each item.
func (gfc *GridFormattingContext) Run(box *Box, mode LayoutMode, space AvailableSpace) {
	gfc.placeGridItems(space)
	gfc.initializeGridTracks(space)
	gfc.runTrackSizing(space, dimensionColumn)
	gfc.runTrackSizing(space, dimensionRow)
	gfc.layoutItems()
	gfc.determineIntrinsicSize(space)

	total := 0.0
	for _, track := range gfc.rows.tracks {
		total += track.fullVerticalSize()
	}
	gfc.automaticContentHeight = total
}

// AutomaticContentHeight reports the row-axis extent of the finished grid.
func (gfc *GridFormattingContext) AutomaticContentHeight() float64 {
	return gfc.automaticContentHeight
}

// ColumnSizes returns the final base sizes of the column-axis physical
// track sequence, gutters included.
func (gfc *GridFormattingContext) ColumnSizes() []float64 {
	return trackBaseSizes(gfc.columns.tracks)
}

// RowSizes returns the final base sizes of the row-axis physical track
// sequence, gutters included.
func (gfc *GridFormattingContext) RowSizes() []float64 {
	return trackBaseSizes(gfc.rows.tracks)
}

func trackBaseSizes(tracks []*gridTrack) []float64 {
	sizes := make([]float64, len(tracks))
	for i, track := range tracks {
		sizes[i] = track.baseSize
	}
	return sizes
}

// layoutItems resolves each item's physical track range and lays the item
// out inside it.
func (gfc *GridFormattingContext) layoutItems() {
	for i := range gfc.gridItems {
		item := &gfc.gridItems[i]

		rowStart := gfc.gapAdjustedRow(item)
		rowSpan := item.rowSpan
		if gfc.rows.hasGaps {
			// Span content tracks and the gutters between them,
			// excluding the gutter after the last one.
			rowSpan = item.rowSpan*2 - 1
		}
		if rowStart+rowSpan > len(gfc.rows.tracks) {
			rowSpan = len(gfc.rows.tracks) - rowStart
		}

		columnStart := gfc.gapAdjustedColumn(item)
		columnSpan := item.columnSpan
		if gfc.columns.hasGaps {
			columnSpan = item.columnSpan*2 - 1
		}
		if columnStart+columnSpan > len(gfc.columns.tracks) {
			columnSpan = len(gfc.columns.tracks) - columnStart
		}

		gfc.layoutItemBox(item, rowStart, rowStart+rowSpan, columnStart, columnStart+columnSpan)
	}
}

// layoutItemBox computes the item's content box from track prefix sums and
// recurses into its contents. Items whose placement resolved before the
// first line are dropped.
func (gfc *GridFormattingContext) layoutItemBox(item *gridItem, rowStart, rowEnd, columnStart, columnEnd int) {
	if rowStart < 0 || columnStart < 0 || rowStart >= rowEnd || columnStart >= columnEnd {
		return
	}
	columns := gfc.columns.tracks
	rows := gfc.rows.tracks

	var xStart, xEnd, yStart, yEnd float64
	for i := 0; i < columnStart; i++ {
		xStart += columns[i].baseSize
	}
	for i := 0; i < columnEnd; i++ {
		xEnd += columns[i].baseSize
	}
	for i := 0; i < rowStart; i++ {
		yStart += rows[i].fullVerticalSize()
	}
	for i := 0; i < rowEnd; i++ {
		if i >= rowStart {
			yEnd += rows[i].baseSize
		} else {
			yEnd += rows[i].fullVerticalSize()
		}
	}

	startColumn := columns[columnStart]
	startRow := rows[rowStart]
	containingWidth := math.Max(0, xEnd-xStart-startColumn.borderLeft-startColumn.borderRight)
	containingHeight := yEnd - yStart

	style := item.box.Style
	width := style.GetSize("width")
	height := style.GetSize("height")
	usedWidth := containingWidth
	if !width.IsAuto() {
		usedWidth = width.ToPx(containingWidth)
	}
	usedHeight := containingHeight
	if !height.IsAuto() {
		usedHeight = height.ToPx(containingHeight)
	}

	border := style.GetBorderWidth()
	used := gfc.engine.state.For(item.box)
	used.ContentWidth = usedWidth
	used.ContentHeight = usedHeight
	used.OffsetX = xStart + startColumn.borderLeft
	used.OffsetY = yStart + startRow.borderTop
	used.BorderTop = border.Top
	used.BorderRight = border.Right
	used.BorderBottom = border.Bottom
	used.BorderLeft = border.Left

	gfc.engine.LayoutInside(item.box, LayoutModeNormal, AvailableSpace{
		Width:  DefiniteSize(usedWidth),
		Height: DefiniteSize(usedHeight),
	})
}

// determineIntrinsicSize commits the container's own size when it is being
// measured under an intrinsic sizing constraint: the sum of its content
// tracks' full sizes in the constrained axis.
func (gfc *GridFormattingContext) determineIntrinsicSize(space AvailableSpace) {
	if space.Width.IsIntrinsicSizingConstraint() {
		width := 0.0
		for _, track := range gfc.columns.tracks {
			if !track.isGap {
				width += track.fullHorizontalSize()
			}
		}
		gfc.engine.state.For(gfc.container).ContentWidth = width
	}
	if space.Height.IsIntrinsicSizingConstraint() {
		height := 0.0
		for _, track := range gfc.rows.tracks {
			if !track.isGap {
				height += track.fullVerticalSize()
			}
		}
		gfc.engine.state.For(gfc.container).ContentHeight = height
	}
}
