package layout

import (
	"math"

	"mondrian/pkg/css"
)

// itemPreferredSize is the item's computed width or height for the axis.
func (gfc *GridFormattingContext) itemPreferredSize(item *gridItem, dimension gridDimension) css.Size {
	if dimension == dimensionColumn {
		return item.box.Style.GetSize("width")
	}
	return item.box.Style.GetSize("height")
}

func (gfc *GridFormattingContext) itemMinimumSize(item *gridItem, dimension gridDimension) css.Size {
	if dimension == dimensionColumn {
		return item.box.Style.GetSize("min-width")
	}
	return item.box.Style.GetSize("min-height")
}

// itemStartTrack is the content track the item starts in, clamped to the
// tracks that exist.
func (gfc *GridFormattingContext) itemStartTrack(item *gridItem, dimension gridDimension) *gridTrack {
	axis := gfc.axis(dimension)
	count := axis.contentCount()
	if count == 0 {
		return nil
	}
	logical := item.position(dimension)
	if logical < 0 {
		logical = 0
	}
	if logical >= count {
		logical = count - 1
	}
	return axis.contentTrack(logical)
}

// containingBlockSizeForItem is the base size of the item's start track,
// the extent percentages on the item resolve against during sizing.
func (gfc *GridFormattingContext) containingBlockSizeForItem(item *gridItem, dimension gridDimension) float64 {
	track := gfc.itemStartTrack(item, dimension)
	if track == nil {
		return 0
	}
	return track.baseSize
}

// availableSpaceForItem reports the space the item's contents see: definite
// in an axis once that axis's tracks have settled base sizes.
func (gfc *GridFormattingContext) availableSpaceForItem(item *gridItem) AvailableSpace {
	space := AvailableSpace{Width: IndefiniteSize(), Height: IndefiniteSize()}
	if track := gfc.itemStartTrack(item, dimensionColumn); track != nil && track.hasDefiniteBaseSize {
		space.Width = DefiniteSize(track.baseSize)
	}
	if track := gfc.itemStartTrack(item, dimensionRow); track != nil && track.hasDefiniteBaseSize {
		space.Height = DefiniteSize(track.baseSize)
	}
	return space
}

// sizeBehavesAsAuto reports whether a computed size cannot resolve yet:
// auto, or a percentage against non-definite space.
func sizeBehavesAsAuto(size css.Size, available AvailableSize) bool {
	if size.IsAuto() {
		return true
	}
	return size.IsPercent() && !available.IsDefinite()
}

func (gfc *GridFormattingContext) itemAvailableSizeFor(item *gridItem, dimension gridDimension) AvailableSize {
	space := gfc.availableSpaceForItem(item)
	if dimension == dimensionColumn {
		return space.Width
	}
	return space.Height
}

func (gfc *GridFormattingContext) minContentSize(item *gridItem, dimension gridDimension) float64 {
	if dimension == dimensionColumn {
		return gfc.engine.calculateMinContentWidth(item.box)
	}
	return gfc.engine.calculateMinContentHeight(item.box, gfc.availableSpaceForItem(item).Width)
}

func (gfc *GridFormattingContext) maxContentSize(item *gridItem, dimension gridDimension) float64 {
	if dimension == dimensionColumn {
		return gfc.engine.calculateMaxContentWidth(item.box)
	}
	return gfc.engine.calculateMaxContentHeight(item.box, gfc.availableSpaceForItem(item).Width)
}

// minContentContribution is the item's outer min-content size, or its
// resolved preferred size when that is definite.
func (gfc *GridFormattingContext) minContentContribution(item *gridItem, dimension gridDimension) float64 {
	preferred := gfc.itemPreferredSize(item, dimension)
	if sizeBehavesAsAuto(preferred, gfc.itemAvailableSizeFor(item, dimension)) {
		return gfc.minContentSize(item, dimension)
	}
	return preferred.ToPx(gfc.containingBlockSizeForItem(item, dimension))
}

func (gfc *GridFormattingContext) maxContentContribution(item *gridItem, dimension gridDimension) float64 {
	preferred := gfc.itemPreferredSize(item, dimension)
	if sizeBehavesAsAuto(preferred, gfc.itemAvailableSizeFor(item, dimension)) {
		return gfc.maxContentSize(item, dimension)
	}
	return preferred.ToPx(gfc.containingBlockSizeForItem(item, dimension))
}

// Limited contributions never undercut the item's minimum contribution.
func (gfc *GridFormattingContext) limitedMinContentContribution(item *gridItem, dimension gridDimension) float64 {
	return math.Max(
		gfc.minContentContribution(item, dimension),
		gfc.minimumContribution(item, dimension))
}

func (gfc *GridFormattingContext) limitedMaxContentContribution(item *gridItem, dimension gridDimension) float64 {
	return math.Max(
		gfc.maxContentContribution(item, dimension),
		gfc.minimumContribution(item, dimension))
}

// specifiedSizeSuggestion is the item's preferred size when it resolves to a
// definite value.
func (gfc *GridFormattingContext) specifiedSizeSuggestion(item *gridItem, dimension gridDimension) (float64, bool) {
	preferred := gfc.itemPreferredSize(item, dimension)
	if sizeBehavesAsAuto(preferred, gfc.itemAvailableSizeFor(item, dimension)) {
		return 0, false
	}
	return preferred.ToPx(gfc.containingBlockSizeForItem(item, dimension)), true
}

func (gfc *GridFormattingContext) contentSizeSuggestion(item *gridItem, dimension gridDimension) float64 {
	return gfc.minContentSize(item, dimension)
}

// contentBasedMinimumSize prefers the specified size suggestion, falling
// back to the content size suggestion.
func (gfc *GridFormattingContext) contentBasedMinimumSize(item *gridItem, dimension gridDimension) float64 {
	if specified, ok := gfc.specifiedSizeSuggestion(item, dimension); ok {
		return specified
	}
	return gfc.contentSizeSuggestion(item, dimension)
}

// automaticMinimumSize is the content-based minimum when the item sits in an
// auto-minimum track and is not a scroll container, zero otherwise.
func (gfc *GridFormattingContext) automaticMinimumSize(item *gridItem, dimension gridDimension) float64 {
	track := gfc.itemStartTrack(item, dimension)
	if track == nil {
		return 0
	}
	if track.minSizingFunction.IsAuto() && !item.box.Style.IsScrollContainer() {
		return gfc.contentBasedMinimumSize(item, dimension)
	}
	return 0
}

// minimumContribution is the smallest outer size the item can take in the
// axis: its minimum size if specified, the automatic minimum otherwise, or
// the min-content contribution when the preferred size is definite.
func (gfc *GridFormattingContext) minimumContribution(item *gridItem, dimension gridDimension) float64 {
	preferred := gfc.itemPreferredSize(item, dimension)
	if !sizeBehavesAsAuto(preferred, gfc.itemAvailableSizeFor(item, dimension)) {
		return gfc.minContentContribution(item, dimension)
	}
	minimum := gfc.itemMinimumSize(item, dimension)
	if sizeBehavesAsAuto(minimum, gfc.itemAvailableSizeFor(item, dimension)) {
		return gfc.automaticMinimumSize(item, dimension)
	}
	return minimum.ToPx(gfc.containingBlockSizeForItem(item, dimension))
}
