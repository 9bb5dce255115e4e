package layout

import (
	"math"
	"strings"

	"mondrian/pkg/html"
)

// MinMaxSizes carries the min-content and max-content extents of a box in
// one axis, including its own margins, borders and padding.
type MinMaxSizes struct {
	MinContent float64
	MaxContent float64
}

// charWidthFactor approximates a glyph advance as a fraction of the font
// size. Good enough for content measurement without a font stack.
const charWidthFactor = 0.5

func textMinMaxWidths(text string, fontSize float64) MinMaxSizes {
	charWidth := fontSize * charWidthFactor
	words := strings.Fields(text)
	longest := 0
	total := 0
	for i, word := range words {
		if len(word) > longest {
			longest = len(word)
		}
		total += len(word)
		if i > 0 {
			total++ // inter-word space
		}
	}
	return MinMaxSizes{
		MinContent: float64(longest) * charWidth,
		MaxContent: float64(total) * charWidth,
	}
}

// ComputeMinMaxWidths measures a box's min-content and max-content widths.
// A definite specified width short-circuits the measurement; otherwise the
// box is as narrow as its widest unbreakable word and as wide as its longest
// unwrapped line, taking the max across stacked children.
func (le *LayoutEngine) ComputeMinMaxWidths(box *Box) MinMaxSizes {
	style := box.Style
	margin := style.GetMargin()
	padding := style.GetPadding()
	border := style.GetBorderWidth()
	horizontalExtra := margin.Left + margin.Right + padding.Left + padding.Right + border.Left + border.Right

	if width := style.GetSize("width"); width.IsLength() {
		w := width.Value + horizontalExtra
		return MinMaxSizes{MinContent: w, MaxContent: w}
	}

	var result MinMaxSizes
	for _, child := range box.Children {
		childSizes := le.ComputeMinMaxWidths(child)
		result.MinContent = math.Max(result.MinContent, childSizes.MinContent)
		result.MaxContent = math.Max(result.MaxContent, childSizes.MaxContent)
	}
	if box.Node != nil {
		for _, nodeChild := range box.Node.Children {
			if nodeChild.Type != html.TextNode || strings.TrimSpace(nodeChild.Text) == "" {
				continue
			}
			textSizes := textMinMaxWidths(nodeChild.Text, style.GetFontSize())
			result.MinContent = math.Max(result.MinContent, textSizes.MinContent)
			result.MaxContent = math.Max(result.MaxContent, textSizes.MaxContent)
		}
	}
	result.MinContent += horizontalExtra
	result.MaxContent += horizontalExtra
	return result
}

func (le *LayoutEngine) calculateMinContentWidth(box *Box) float64 {
	return le.ComputeMinMaxWidths(box).MinContent
}

func (le *LayoutEngine) calculateMaxContentWidth(box *Box) float64 {
	return le.ComputeMinMaxWidths(box).MaxContent
}

// calculateContentHeight measures the height a box takes when laid out
// against the given available width: specified height if definite, else the
// stacked heights of its children plus a line per wrapped text run.
func (le *LayoutEngine) calculateContentHeight(box *Box, availableWidth AvailableSize) float64 {
	style := box.Style
	margin := style.GetMargin()
	padding := style.GetPadding()
	border := style.GetBorderWidth()
	verticalExtra := margin.Top + margin.Bottom + padding.Top + padding.Bottom + border.Top + border.Bottom

	if height := style.GetSize("height"); height.IsLength() {
		return height.Value + verticalExtra
	}

	total := 0.0
	for _, child := range box.Children {
		total += le.calculateContentHeight(child, availableWidth)
	}
	if box.Node != nil {
		for _, nodeChild := range box.Node.Children {
			if nodeChild.Type != html.TextNode || strings.TrimSpace(nodeChild.Text) == "" {
				continue
			}
			textWidth := textMinMaxWidths(nodeChild.Text, style.GetFontSize()).MaxContent
			lines := 1.0
			if availableWidth.IsDefinite() && availableWidth.ToPx() > 0 {
				lines = math.Ceil(textWidth / availableWidth.ToPx())
				if lines < 1 {
					lines = 1
				}
			}
			total += lines * style.GetLineHeight()
		}
	}
	return total + verticalExtra
}

func (le *LayoutEngine) calculateMinContentHeight(box *Box, availableWidth AvailableSize) float64 {
	return le.calculateContentHeight(box, availableWidth)
}

func (le *LayoutEngine) calculateMaxContentHeight(box *Box, availableWidth AvailableSize) float64 {
	return le.calculateContentHeight(box, availableWidth)
}
