package layout

import (
	"fmt"
	"math"

	"mondrian/pkg/css"
)

// runTrackSizing sizes one axis: initialize, resolve intrinsic sizes,
// maximize, expand flexible tracks, stretch auto tracks.
func (gfc *GridFormattingContext) runTrackSizing(space AvailableSpace, dimension gridDimension) {
	gfc.initializeTrackSizes(space, dimension)
	gfc.resolveIntrinsicTrackSizes(space, dimension)
	gfc.maximizeTracks(space, dimension)
	gfc.expandFlexibleTracks(space, dimension)
	gfc.stretchAutoTracks(space, dimension)
}

// initializeTrackSizes gives every content track its starting base size and
// growth limit from its sizing functions. Gutters were finalized at
// construction.
func (gfc *GridFormattingContext) initializeTrackSizes(space AvailableSpace, dimension gridDimension) {
	available := gfc.availableSizeFor(space, dimension)
	for _, track := range gfc.axis(dimension).tracks {
		if track.isGap {
			continue
		}

		switch track.minSizingFunction.Kind {
		case css.GridSizeLengthPercentage:
			if !track.minSizingFunction.IsAuto() {
				track.baseSize = track.minSizingFunction.ToPx(available.ToPx())
			}
		case css.GridSizeFlexibleLength, css.GridSizeMinContent, css.GridSizeMaxContent:
			track.baseSize = 0
		default:
			panic(fmt.Sprintf("unknown min track sizing function kind %d", track.minSizingFunction.Kind))
		}

		switch track.maxSizingFunction.Kind {
		case css.GridSizeLengthPercentage:
			if track.maxSizingFunction.IsAuto() {
				track.growthLimit = math.Inf(1)
			} else {
				track.growthLimit = track.maxSizingFunction.ToPx(available.ToPx())
			}
		case css.GridSizeFlexibleLength, css.GridSizeMinContent, css.GridSizeMaxContent:
			track.growthLimit = math.Inf(1)
		default:
			panic(fmt.Sprintf("unknown max track sizing function kind %d", track.maxSizingFunction.Kind))
		}

		if track.growthLimit < track.baseSize {
			track.growthLimit = track.baseSize
		}
	}
}

// resolveIntrinsicTrackSizes sizes intrinsically-sized tracks from item
// contributions: non-spanning items first, then spanning items by ascending
// span, then spanning items crossing flexible tracks.
func (gfc *GridFormattingContext) resolveIntrinsicTrackSizes(space AvailableSpace, dimension gridDimension) {
	available := gfc.availableSizeFor(space, dimension)
	axis := gfc.axis(dimension)

	for index, track := range axis.tracks {
		if track.isGap {
			continue
		}

		var itemsOfTrack []*gridItem
		for i := range gfc.gridItems {
			item := &gfc.gridItems[i]
			if dimension == dimensionColumn {
				if gfc.gapAdjustedColumn(item) != index || item.columnSpan != 1 {
					continue
				}
				border := item.box.Style.GetBorderWidth()
				track.borderLeft = math.Max(track.borderLeft, border.Left)
				track.borderRight = math.Max(track.borderRight, border.Right)
			} else {
				if gfc.gapAdjustedRow(item) != index || item.rowSpan != 1 {
					continue
				}
				border := item.box.Style.GetBorderWidth()
				track.borderTop = math.Max(track.borderTop, border.Top)
				track.borderBottom = math.Max(track.borderBottom, border.Bottom)
			}
			itemsOfTrack = append(itemsOfTrack, item)
		}

		if !track.minSizingFunction.IsIntrinsic() && !track.maxSizingFunction.IsIntrinsic() {
			continue
		}

		switch track.minSizingFunction.Kind {
		case css.GridSizeMinContent:
			base := 0.0
			for _, item := range itemsOfTrack {
				base = math.Max(base, gfc.minContentContribution(item, dimension))
			}
			track.baseSize = base
		case css.GridSizeMaxContent:
			base := 0.0
			for _, item := range itemsOfTrack {
				base = math.Max(base, gfc.maxContentContribution(item, dimension))
			}
			track.baseSize = base
		case css.GridSizeLengthPercentage:
			if track.minSizingFunction.IsAuto() {
				base := 0.0
				switch {
				case available.IsMinContent():
					for _, item := range itemsOfTrack {
						base = math.Max(base, gfc.limitedMinContentContribution(item, dimension))
					}
				case available.IsMaxContent():
					for _, item := range itemsOfTrack {
						base = math.Max(base, gfc.limitedMaxContentContribution(item, dimension))
					}
				default:
					for _, item := range itemsOfTrack {
						base = math.Max(base, gfc.minimumContribution(item, dimension))
					}
				}
				track.baseSize = base
			}
		case css.GridSizeFlexibleLength:
			// Flexible minimums resolve in the flexible-track pass.
		default:
			panic(fmt.Sprintf("unknown min track sizing function kind %d", track.minSizingFunction.Kind))
		}

		if track.maxSizingFunction.IsMinContent() {
			growth := 0.0
			for _, item := range itemsOfTrack {
				growth = math.Max(growth, gfc.minContentContribution(item, dimension))
			}
			track.growthLimit = growth
		} else if track.maxSizingFunction.IsMaxContent() || track.maxSizingFunction.IsAuto() {
			growth := 0.0
			for _, item := range itemsOfTrack {
				growth = math.Max(growth, gfc.maxContentContribution(item, dimension))
			}
			track.growthLimit = growth
		}
		if track.growthLimit < track.baseSize {
			track.growthLimit = track.baseSize
		}
	}

	gfc.collapseEmptyAutoFitTracks(dimension)

	maxSpan := 1
	for i := range gfc.gridItems {
		if s := gfc.gridItems[i].span(dimension); s > maxSpan {
			maxSpan = s
		}
	}
	for span := 2; span <= maxSpan; span++ {
		gfc.increaseSizesForSpanningItems(dimension, span)
	}
	gfc.increaseSizesForSpanningItemsCrossingFlexibleTracks(dimension)

	for _, track := range gfc.axis(dimension).tracks {
		if math.IsInf(track.growthLimit, 1) {
			track.growthLimit = track.baseSize
		}
	}
	for _, track := range gfc.axis(dimension).tracks {
		track.hasDefiniteBaseSize = true
	}
}

// collapseEmptyAutoFitTracks zeroes out auto-fit columns with no item in
// their first cell. Only the column axis with a lone auto-fit repeat
// template collapses.
func (gfc *GridFormattingContext) collapseEmptyAutoFitTracks(dimension gridDimension) {
	if dimension != dimensionColumn {
		return
	}
	list := gfc.container.Style.GetGridTemplateColumns()
	if len(list.Tracks) != 1 ||
		list.Tracks[0].Kind != css.TrackRepeat ||
		list.Tracks[0].Repeat.Kind != css.RepeatAutoFit {
		return
	}
	for logical := 0; logical < gfc.columns.contentCount(); logical++ {
		if gfc.occupationGrid.isOccupied(logical, 0) {
			continue
		}
		track := gfc.columns.contentTrack(logical)
		track.baseSize = 0
		track.growthLimit = 0
	}
}

// distributeExtraSpaceAcrossSpannedTracks water-fills an item's size
// contribution across candidate tracks: each round shares the remaining
// deficit equally among unfrozen tracks, freezing any track that hits its
// growth limit. plannedIncrease keeps the max increase any single item
// demanded, not the sum.
func distributeExtraSpaceAcrossSpannedTracks(itemSizeContribution float64, spannedTracks []*gridTrack) {
	for _, track := range spannedTracks {
		track.itemIncurredIncrease = 0
		track.frozen = false
	}

	sum := 0.0
	for _, track := range spannedTracks {
		sum += track.baseSize
	}
	extraSpace := math.Max(0, itemSizeContribution-sum)

	for extraSpace > 0 {
		unfrozen := 0
		for _, track := range spannedTracks {
			if !track.frozen {
				unfrozen++
			}
		}
		if unfrozen == 0 {
			break
		}
		increasePerTrack := extraSpace / float64(unfrozen)
		frozeAny := false
		for _, track := range spannedTracks {
			if track.frozen {
				continue
			}
			room := track.growthLimit - track.baseSize - track.itemIncurredIncrease
			if increasePerTrack >= room {
				track.frozen = true
				frozeAny = true
				track.itemIncurredIncrease += room
				extraSpace -= room
			} else {
				track.itemIncurredIncrease += increasePerTrack
				extraSpace -= increasePerTrack
			}
		}
		// No track froze: every track took an equal share and the
		// deficit is spent.
		if !frozeAny {
			break
		}
	}

	for _, track := range spannedTracks {
		if track.itemIncurredIncrease > track.plannedIncrease {
			track.plannedIncrease = track.itemIncurredIncrease
		}
	}
}

// applyPlannedIncreases commits the accumulated planned increases of one
// distribution group and restores the growth-limit invariant for the axis.
func (gfc *GridFormattingContext) applyPlannedIncreases(dimension gridDimension, touched []*gridTrack) {
	for _, track := range touched {
		track.baseSize += track.plannedIncrease
		track.plannedIncrease = 0
	}
	for _, track := range gfc.axis(dimension).tracks {
		if track.growthLimit < track.baseSize {
			track.growthLimit = track.baseSize
		}
	}
}

// increaseSizesForSpanningItems distributes the minimum contributions of
// items with the given span across the intrinsically-minimum tracks they
// cross. The increases of all items of the span group apply together, each
// track growing by the largest increase any single item asked of it. Items
// crossing a flexible track wait for the flexible pass.
func (gfc *GridFormattingContext) increaseSizesForSpanningItems(dimension gridDimension, span int) {
	var touched []*gridTrack
	seen := make(map[*gridTrack]bool)
	for i := range gfc.gridItems {
		item := &gfc.gridItems[i]
		if item.span(dimension) != span {
			continue
		}
		spanned := gfc.spannedContentTracks(item, dimension)
		crossesFlexible := false
		var candidates []*gridTrack
		for _, track := range spanned {
			if track.minSizingFunction.IsFlexibleLength() || track.maxSizingFunction.IsFlexibleLength() {
				crossesFlexible = true
			}
			if track.minSizingFunction.IsIntrinsic() {
				candidates = append(candidates, track)
			}
		}
		if crossesFlexible {
			continue
		}

		distributeExtraSpaceAcrossSpannedTracks(gfc.minimumContribution(item, dimension), candidates)
		for _, track := range candidates {
			if !seen[track] {
				seen[track] = true
				touched = append(touched, track)
			}
		}
	}
	gfc.applyPlannedIncreases(dimension, touched)
}

// increaseSizesForSpanningItemsCrossingFlexibleTracks handles the spanning
// items skipped above, distributing only across the flexible tracks they
// cross.
func (gfc *GridFormattingContext) increaseSizesForSpanningItemsCrossingFlexibleTracks(dimension gridDimension) {
	var touched []*gridTrack
	seen := make(map[*gridTrack]bool)
	for i := range gfc.gridItems {
		item := &gfc.gridItems[i]
		if item.span(dimension) < 2 {
			continue
		}
		spanned := gfc.spannedContentTracks(item, dimension)
		var flexible []*gridTrack
		for _, track := range spanned {
			if track.minSizingFunction.IsFlexibleLength() {
				flexible = append(flexible, track)
			}
		}
		if len(flexible) == 0 {
			continue
		}

		distributeExtraSpaceAcrossSpannedTracks(gfc.limitedMinContentContribution(item, dimension), flexible)
		for _, track := range flexible {
			if !seen[track] {
				seen[track] = true
				touched = append(touched, track)
			}
		}
	}
	gfc.applyPlannedIncreases(dimension, touched)
}

// freeSpace is the axis's available size minus the sum of all track base
// sizes, floored at zero; intrinsic and indefinite sizes pass through.
func (gfc *GridFormattingContext) freeSpace(space AvailableSpace, dimension gridDimension) AvailableSize {
	available := gfc.availableSizeFor(space, dimension)
	if !available.IsDefinite() {
		return available
	}
	sum := 0.0
	for _, track := range gfc.axis(dimension).tracks {
		sum += track.baseSize
	}
	return DefiniteSize(math.Max(0, available.ToPx()-sum))
}

// maximizeTracks grows content-track base sizes toward their growth limits
// by equal increments while free space keeps shrinking.
func (gfc *GridFormattingContext) maximizeTracks(space AvailableSpace, dimension gridDimension) {
	freeSpacePx := func() float64 {
		free := gfc.freeSpace(space, dimension)
		if free.IsMaxContent() {
			return math.Inf(1)
		}
		if free.IsDefinite() {
			return free.ToPx()
		}
		return 0
	}

	var contentTracks []*gridTrack
	for _, track := range gfc.axis(dimension).tracks {
		if !track.isGap {
			contentTracks = append(contentTracks, track)
		}
	}
	if len(contentTracks) == 0 {
		return
	}

	free := freeSpacePx()
	for free > 0 {
		increasePerTrack := free / float64(len(contentTracks))
		for _, track := range contentTracks {
			track.baseSize = math.Min(track.growthLimit, track.baseSize+increasePerTrack)
		}
		next := freeSpacePx()
		if next >= free {
			break
		}
		free = next
	}
}

// expandFlexibleTracks raises each fr track's base size to its share of the
// free space. The flex fraction divides the leftover space by the number of
// flexible tracks.
func (gfc *GridFormattingContext) expandFlexibleTracks(space AvailableSpace, dimension gridDimension) {
	available := gfc.availableSizeFor(space, dimension)
	axis := gfc.axis(dimension)

	findFlexFraction := func() float64 {
		leftover := available.ToPx()
		flexibleCount := 0
		for _, track := range axis.tracks {
			if track.maxSizingFunction.IsFlexibleLength() {
				flexibleCount++
				continue
			}
			leftover -= track.baseSize
		}
		if flexibleCount < 1 {
			flexibleCount = 1
		}
		return leftover / float64(flexibleCount)
	}

	flexFraction := 0.0
	free := gfc.freeSpace(space, dimension)
	switch {
	case available.IsMinContent():
		flexFraction = 0
	case free.IsDefinite() && free.ToPx() > 0:
		flexFraction = findFlexFraction()
	}

	for _, track := range axis.tracks {
		if !track.maxSizingFunction.IsFlexibleLength() {
			continue
		}
		hypothetical := track.maxSizingFunction.Flex * flexFraction
		if hypothetical > track.baseSize {
			track.baseSize = hypothetical
		}
	}
}

// stretchAutoTracks hands remaining definite space evenly to tracks whose
// max sizing function is auto.
func (gfc *GridFormattingContext) stretchAutoTracks(space AvailableSpace, dimension gridDimension) {
	available := gfc.availableSizeFor(space, dimension)
	if !available.IsDefinite() {
		return
	}
	axis := gfc.axis(dimension)

	used := 0.0
	autoCount := 0
	for _, track := range axis.tracks {
		if !track.isGap && track.maxSizingFunction.IsAuto() {
			autoCount++
			continue
		}
		used += track.baseSize
	}
	if autoCount == 0 {
		return
	}
	remaining := math.Max(0, available.ToPx()-used)
	if remaining == 0 {
		return
	}
	share := remaining / float64(autoCount)
	for _, track := range axis.tracks {
		if !track.isGap && track.maxSizingFunction.IsAuto() {
			track.baseSize = math.Max(track.baseSize, share)
		}
	}
}
