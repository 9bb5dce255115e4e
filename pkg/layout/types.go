package layout

import (
	"mondrian/pkg/css"
	"mondrian/pkg/html"
)

// Box is a node in the box tree: a DOM element paired with its computed style.
// Text runs stay on the underlying node; only elements generate boxes.
type Box struct {
	Node     *html.Node
	Style    *css.Style
	Children []*Box
	Parent   *Box
}

// NewBox wraps a node and style without attaching children.
func NewBox(node *html.Node, style *css.Style) *Box {
	if style == nil {
		style = css.NewStyle()
	}
	return &Box{Node: node, Style: style}
}

// AddChild appends a child box and sets up the parent relationship.
func (b *Box) AddChild(child *Box) {
	child.Parent = b
	b.Children = append(b.Children, child)
}

// BuildBoxTree builds the box tree for an element node, reading computed
// style from the element's style attribute. display:none subtrees generate
// no boxes. Returns nil for non-element nodes.
func BuildBoxTree(node *html.Node, parent *Box) *Box {
	if node == nil || node.Type != html.ElementNode {
		return nil
	}
	styleAttr, _ := node.GetAttribute("style")
	style := css.ParseInlineStyle(styleAttr)
	if style.GetDisplay() == css.DisplayNone {
		return nil
	}
	box := NewBox(node, style)
	box.Parent = parent
	for _, child := range node.Children {
		if childBox := BuildBoxTree(child, box); childBox != nil {
			box.Children = append(box.Children, childBox)
		}
	}
	return box
}

// LayoutMode distinguishes a real layout pass from an intrinsic measurement
// pass.
type LayoutMode int

const (
	LayoutModeNormal LayoutMode = iota
	LayoutModeIntrinsicSizing
)
