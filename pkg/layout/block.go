package layout

import (
	"mondrian/pkg/html"
	"strings"
)

// BlockFormattingContext is the simple vertical-stacking flow used for
// everything that is not a grid. It sizes children against the containing
// width, stacks them top to bottom, and accounts direct text runs as line
// boxes. It exists to give grid items real content to measure and position.
type BlockFormattingContext struct {
	engine                 *LayoutEngine
	container              *Box
	automaticContentHeight float64
}

func NewBlockFormattingContext(engine *LayoutEngine, container *Box) *BlockFormattingContext {
	return &BlockFormattingContext{engine: engine, container: container}
}

func (bfc *BlockFormattingContext) Run(box *Box, mode LayoutMode, space AvailableSpace) {
	containingWidth := 0.0
	if space.Width.IsDefinite() {
		containingWidth = space.Width.ToPx()
	}
	containingHeight := 0.0
	if space.Height.IsDefinite() {
		containingHeight = space.Height.ToPx()
	}

	y := 0.0
	for _, child := range box.Children {
		style := child.Style
		margin := style.GetMargin()
		padding := style.GetPadding()
		border := style.GetBorderWidth()
		horizontalExtra := margin.Left + margin.Right + padding.Left + padding.Right + border.Left + border.Right

		width := style.GetSize("width")
		contentWidth := width.ToPx(containingWidth)
		if width.IsAuto() {
			contentWidth = containingWidth - horizontalExtra
			if contentWidth < 0 {
				contentWidth = 0
			}
		}

		height := style.GetSize("height")
		childHeightSpace := IndefiniteSize()
		if !height.IsAuto() {
			childHeightSpace = DefiniteSize(height.ToPx(containingHeight))
		}
		inner := bfc.engine.LayoutInside(child, mode, AvailableSpace{
			Width:  DefiniteSize(contentWidth),
			Height: childHeightSpace,
		})
		contentHeight := height.ToPx(containingHeight)
		if height.IsAuto() {
			contentHeight = inner.AutomaticContentHeight()
		}

		used := bfc.engine.state.For(child)
		used.ContentWidth = contentWidth
		used.ContentHeight = contentHeight
		used.OffsetX = margin.Left + border.Left + padding.Left
		used.OffsetY = y + margin.Top + border.Top + padding.Top
		used.BorderTop = border.Top
		used.BorderRight = border.Right
		used.BorderBottom = border.Bottom
		used.BorderLeft = border.Left

		y += margin.Top + border.Top + padding.Top +
			contentHeight +
			padding.Bottom + border.Bottom + margin.Bottom
	}

	// Direct text runs each take a line box.
	if box.Node != nil {
		for _, nodeChild := range box.Node.Children {
			if nodeChild.Type == html.TextNode && strings.TrimSpace(nodeChild.Text) != "" {
				y += box.Style.GetLineHeight()
			}
		}
	}

	bfc.automaticContentHeight = y
}

func (bfc *BlockFormattingContext) AutomaticContentHeight() float64 {
	return bfc.automaticContentHeight
}
