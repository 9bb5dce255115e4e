package layout

import (
	"math"

	"mondrian/pkg/css"
)

// gridTrack is one track of the physical track sequence: a content track
// from the template (or an implicit one), or a gutter produced by gap.
type gridTrack struct {
	minSizingFunction css.GridSize
	maxSizingFunction css.GridSize

	baseSize            float64
	growthLimit         float64
	hasDefiniteBaseSize bool

	// Scratch state for the water-filling distribution.
	frozen               bool
	itemIncurredIncrease float64
	plannedIncrease      float64

	// Border contributions from single-span items in this track.
	borderTop    float64
	borderRight  float64
	borderBottom float64
	borderLeft   float64

	isGap bool
}

func newGridTrack(size css.GridSize) *gridTrack {
	return &gridTrack{minSizingFunction: size, maxSizingFunction: size}
}

func newGridTrackMinMax(min, max css.GridSize) *gridTrack {
	return &gridTrack{minSizingFunction: min, maxSizingFunction: max}
}

func newAutoGridTrack() *gridTrack {
	return newGridTrack(css.AutoGridSize())
}

// newGapTrack makes a gutter: fixed at the gap size, never grows.
func newGapTrack(size float64) *gridTrack {
	return &gridTrack{
		minSizingFunction: css.LengthGridSize(size),
		maxSizingFunction: css.LengthGridSize(size),
		baseSize:          size,
		growthLimit:       size,
		isGap:             true,
	}
}

func (t *gridTrack) fullHorizontalSize() float64 {
	return t.baseSize + t.borderLeft + t.borderRight
}

func (t *gridTrack) fullVerticalSize() float64 {
	return t.baseSize + t.borderTop + t.borderBottom
}

// gridAxis is the finalized track sequence of one axis. With gaps, content
// tracks sit at even physical indices with a gutter between each pair.
type gridAxis struct {
	tracks  []*gridTrack
	hasGaps bool
}

// contentCount is the number of content (non-gap) tracks.
func (a *gridAxis) contentCount() int {
	if a.hasGaps && len(a.tracks) > 0 {
		return (len(a.tracks) + 1) / 2
	}
	return len(a.tracks)
}

// physicalIndex maps a logical content-track index into the sequence.
func (a *gridAxis) physicalIndex(logical int) int {
	if a.hasGaps {
		return logical * 2
	}
	return logical
}

// contentTrack returns the content track at a logical index.
func (a *gridAxis) contentTrack(logical int) *gridTrack {
	return a.tracks[a.physicalIndex(logical)]
}

// resolveDefiniteTrackSize resolves a definite track sizing function.
// Percentages resolve against the available width, matching how template
// sizes are read at repetition-counting time.
func resolveDefiniteTrackSize(size css.GridSize, space AvailableSpace) float64 {
	if !size.IsDefinite() {
		return 0
	}
	return size.ToPx(space.Width.ToPx())
}

// countTracksInList counts the content tracks a template produces,
// expanding fixed repeats and resolving auto repeats against free space.
func (gfc *GridFormattingContext) countTracksInList(list css.TrackList, space AvailableSpace, dimension gridDimension) int {
	if len(list.Tracks) == 1 &&
		list.Tracks[0].Kind == css.TrackRepeat &&
		list.Tracks[0].Repeat.Kind != css.RepeatFixed {
		return gfc.countAutoRepeatTracks(list.Tracks[0].Repeat, space, dimension) * len(list.Tracks[0].Repeat.Tracks.Tracks)
	}

	count := 0
	for _, track := range list.Tracks {
		if track.Kind == css.TrackRepeat && track.Repeat.Kind == css.RepeatFixed {
			count += track.Repeat.Count * len(track.Repeat.Tracks.Tracks)
			continue
		}
		count++
	}
	return count
}

// countAutoRepeatTracks resolves the repetition count of an auto-fill or
// auto-fit repeat: as many whole repetitions of the repeated track set as
// the axis's free space fits, at least one.
func (gfc *GridFormattingContext) countAutoRepeatTracks(repeat css.GridRepeat, space AvailableSpace, dimension gridDimension) int {
	available := space.Width
	if dimension == dimensionRow {
		available = space.Height
	}
	if !available.IsDefinite() {
		return 1
	}

	sum := 0.0
	for _, track := range repeat.Tracks.Tracks {
		contribution := 0.0
		switch track.Kind {
		case css.TrackMinMax:
			minDefinite := track.Min.IsDefinite()
			maxDefinite := track.Max.IsDefinite()
			switch {
			case maxDefinite && !minDefinite:
				contribution = resolveDefiniteTrackSize(track.Max, space)
			case minDefinite && !maxDefinite:
				contribution = resolveDefiniteTrackSize(track.Min, space)
			case minDefinite && maxDefinite:
				contribution = math.Min(
					resolveDefiniteTrackSize(track.Min, space),
					resolveDefiniteTrackSize(track.Max, space))
			}
		default:
			contribution = resolveDefiniteTrackSize(track.Size, space)
		}
		// Guard the division below against zero-sized repetitions.
		if contribution < 1 {
			contribution = 1
		}
		sum += contribution
	}
	if sum < 1 {
		sum = 1
	}

	count := int(available.ToPx() / sum)
	if count < 1 {
		count = 1
	}
	return count
}

// tracksFromTemplate expands a template track list into track records,
// expanding repeats. count is the resolved repetition count for an auto
// repeat.
func (gfc *GridFormattingContext) tracksFromTemplate(list css.TrackList, space AvailableSpace, dimension gridDimension) []*gridTrack {
	var tracks []*gridTrack
	appendTrack := func(def css.ExplicitTrack) {
		if def.Kind == css.TrackMinMax {
			tracks = append(tracks, newGridTrackMinMax(def.Min, def.Max))
			return
		}
		tracks = append(tracks, newGridTrack(def.Size))
	}

	for _, def := range list.Tracks {
		if def.Kind != css.TrackRepeat {
			appendTrack(def)
			continue
		}
		repetitions := def.Repeat.Count
		if def.Repeat.Kind != css.RepeatFixed {
			repetitions = gfc.countAutoRepeatTracks(def.Repeat, space, dimension)
		}
		for i := 0; i < repetitions; i++ {
			for _, nested := range def.Repeat.Tracks.Tracks {
				appendTrack(nested)
			}
		}
	}
	return tracks
}

// initializeGridTracks builds both axes' physical track sequences: template
// tracks, implicit auto tracks padding out to the occupancy grid, and
// gutters interleaved when the axis has a gap.
func (gfc *GridFormattingContext) initializeGridTracks(space AvailableSpace) {
	style := gfc.container.Style

	columnTracks := gfc.tracksFromTemplate(style.GetGridTemplateColumns(), space, dimensionColumn)
	for len(columnTracks) < gfc.occupationGrid.columnCount() {
		columnTracks = append(columnTracks, newAutoGridTrack())
	}
	rowTracks := gfc.tracksFromTemplate(style.GetGridTemplateRows(), space, dimensionRow)
	for len(rowTracks) < gfc.occupationGrid.rowCount() {
		rowTracks = append(rowTracks, newAutoGridTrack())
	}

	gfc.columns = buildAxis(columnTracks, style.GetColumnGap(), space.Width)
	gfc.rows = buildAxis(rowTracks, style.GetRowGap(), space.Height)
}

// buildAxis interleaves gutters between content tracks when the axis has a
// gap. Percentage gaps resolve against the axis's definite available size.
func buildAxis(tracks []*gridTrack, gap css.Size, available AvailableSize) gridAxis {
	if gap.IsAuto() || len(tracks) < 2 {
		return gridAxis{tracks: tracks, hasGaps: !gap.IsAuto() && len(tracks) > 0}
	}
	gapPx := gap.ToPx(available.ToPx())
	sequence := make([]*gridTrack, 0, 2*len(tracks)-1)
	for i, track := range tracks {
		if i > 0 {
			sequence = append(sequence, newGapTrack(gapPx))
		}
		sequence = append(sequence, track)
	}
	return gridAxis{tracks: sequence, hasGaps: true}
}

func (gfc *GridFormattingContext) axis(dimension gridDimension) *gridAxis {
	if dimension == dimensionColumn {
		return &gfc.columns
	}
	return &gfc.rows
}

func (gfc *GridFormattingContext) availableSizeFor(space AvailableSpace, dimension gridDimension) AvailableSize {
	if dimension == dimensionColumn {
		return space.Width
	}
	return space.Height
}

// gapAdjustedColumn maps an item's logical column to its physical index.
func (gfc *GridFormattingContext) gapAdjustedColumn(item *gridItem) int {
	return gfc.columns.physicalIndex(item.column)
}

func (gfc *GridFormattingContext) gapAdjustedRow(item *gridItem) int {
	return gfc.rows.physicalIndex(item.row)
}

// spannedContentTracks collects the content tracks an item crosses in one
// axis, clipped to the tracks that exist.
func (gfc *GridFormattingContext) spannedContentTracks(item *gridItem, dimension gridDimension) []*gridTrack {
	axis := gfc.axis(dimension)
	var spanned []*gridTrack
	for logical := item.position(dimension); logical < item.position(dimension)+item.span(dimension); logical++ {
		if logical < 0 || logical >= axis.contentCount() {
			continue
		}
		spanned = append(spanned, axis.contentTrack(logical))
	}
	return spanned
}
