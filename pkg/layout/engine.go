package layout

import (
	"mondrian/pkg/css"
	"mondrian/pkg/html"
)

// FormattingContext lays out the contents of one box. Run writes the
// resulting geometry into the engine's LayoutState; AutomaticContentHeight
// reports the content height the box would get with height:auto.
type FormattingContext interface {
	Run(box *Box, mode LayoutMode, space AvailableSpace)
	AutomaticContentHeight() float64
}

// formattingContexts maps a display type to the context that lays out boxes
// of that type. Display types with no registration fall back to block flow.
var formattingContexts = map[css.DisplayType]func(*LayoutEngine, *Box) FormattingContext{}

// RegisterFormattingContext installs the formatting context constructor for
// a display type. Later registrations for the same type win.
func RegisterFormattingContext(display css.DisplayType, create func(*LayoutEngine, *Box) FormattingContext) {
	formattingContexts[display] = create
}

func init() {
	RegisterFormattingContext(css.DisplayBlock, func(le *LayoutEngine, box *Box) FormattingContext {
		return NewBlockFormattingContext(le, box)
	})
	RegisterFormattingContext(css.DisplayGrid, func(le *LayoutEngine, box *Box) FormattingContext {
		return NewGridFormattingContext(le, box)
	})
}

// LayoutEngine drives a layout pass over a box tree and owns its state.
type LayoutEngine struct {
	viewportWidth  float64
	viewportHeight float64
	state          *LayoutState
}

func NewLayoutEngine(viewportWidth, viewportHeight float64) *LayoutEngine {
	return &LayoutEngine{
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		state:          NewLayoutState(),
	}
}

// State exposes the result store for callers that read geometry back.
func (le *LayoutEngine) State() *LayoutState {
	return le.state
}

func (le *LayoutEngine) createFormattingContext(box *Box) FormattingContext {
	if create, ok := formattingContexts[box.Style.GetDisplay()]; ok {
		return create(le, box)
	}
	return NewBlockFormattingContext(le, box)
}

// LayoutInside lays out the contents of box within the given available space
// and returns the context that did it, so callers can read the automatic
// content height.
func (le *LayoutEngine) LayoutInside(box *Box, mode LayoutMode, space AvailableSpace) FormattingContext {
	fc := le.createFormattingContext(box)
	fc.Run(box, mode, space)
	return fc
}

// Layout builds box trees for the document's top-level elements and lays
// each out against the viewport. Returns the root boxes; geometry lands in
// the engine state.
func (le *LayoutEngine) Layout(doc *html.Document) []*Box {
	var roots []*Box
	for _, child := range doc.Root.Children {
		box := BuildBoxTree(child, nil)
		if box == nil {
			continue
		}
		roots = append(roots, box)
		le.layoutRoot(box)
	}
	return roots
}

func (le *LayoutEngine) layoutRoot(box *Box) {
	style := box.Style
	margin := style.GetMargin()
	padding := style.GetPadding()
	border := style.GetBorderWidth()
	horizontalExtra := margin.Left + margin.Right + padding.Left + padding.Right + border.Left + border.Right

	width := style.GetSize("width")
	contentWidth := width.ToPx(le.viewportWidth)
	if width.IsAuto() {
		contentWidth = le.viewportWidth - horizontalExtra
		if contentWidth < 0 {
			contentWidth = 0
		}
	}

	height := style.GetSize("height")
	availableHeight := IndefiniteSize()
	if !height.IsAuto() {
		availableHeight = DefiniteSize(height.ToPx(le.viewportHeight))
	}

	used := le.state.For(box)
	used.ContentWidth = contentWidth
	used.OffsetX = margin.Left + border.Left + padding.Left
	used.OffsetY = margin.Top + border.Top + padding.Top
	used.BorderTop = border.Top
	used.BorderRight = border.Right
	used.BorderBottom = border.Bottom
	used.BorderLeft = border.Left

	fc := le.LayoutInside(box, LayoutModeNormal, AvailableSpace{
		Width:  DefiniteSize(contentWidth),
		Height: availableHeight,
	})
	if height.IsAuto() {
		used.ContentHeight = fc.AutomaticContentHeight()
	} else {
		used.ContentHeight = height.ToPx(le.viewportHeight)
	}
}
