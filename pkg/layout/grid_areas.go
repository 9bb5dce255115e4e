package layout

// gridArea is a named rectangle of the grid carved out by
// grid-template-areas, expressed as half-open 0-based track ranges.
type gridArea struct {
	name        string
	rowStart    int
	rowEnd      int
	columnStart int
	columnEnd   int
}

// buildValidGridAreas turns the textual area matrix into named rectangles.
// Each name must cover exactly one filled rectangle; "." cells carry no
// name. Any violation discards every area, leaving named placements to fall
// back to line names.
func buildValidGridAreas(matrix [][]string) []gridArea {
	var areas []gridArea
	indexOf := func(name string) int {
		for i := range areas {
			if areas[i].name == name {
				return i
			}
		}
		return -1
	}

	for y, row := range matrix {
		for x, name := range row {
			if name == "." {
				continue
			}
			i := indexOf(name)
			if i < 0 {
				areas = append(areas, gridArea{
					name:        name,
					rowStart:    y,
					rowEnd:      y + 1,
					columnStart: x,
					columnEnd:   x + 1,
				})
				continue
			}
			area := &areas[i]
			if y+1 > area.rowEnd {
				area.rowEnd = y + 1
			}
			if x < area.columnStart {
				area.columnStart = x
			}
			if x+1 > area.columnEnd {
				area.columnEnd = x + 1
			}
		}
	}

	// Every cell of each bounding rectangle must carry that area's name,
	// otherwise the region was not a single rectangle.
	for i := range areas {
		area := &areas[i]
		for y := area.rowStart; y < area.rowEnd; y++ {
			if y >= len(matrix) {
				return nil
			}
			for x := area.columnStart; x < area.columnEnd; x++ {
				if x >= len(matrix[y]) || matrix[y][x] != area.name {
					return nil
				}
			}
		}
	}
	return areas
}

// findValidGridArea returns the named area, or nil when the name is unknown
// or validation discarded the areas.
func (gfc *GridFormattingContext) findValidGridArea(name string) *gridArea {
	for i := range gfc.gridAreas {
		if gfc.gridAreas[i].name == name {
			return &gfc.gridAreas[i]
		}
	}
	return nil
}
