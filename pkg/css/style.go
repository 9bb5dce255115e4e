package css

import (
	"strconv"
	"strings"
)

type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a pixel length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// SizeKind classifies a width/height-like property value.
type SizeKind int

const (
	SizeAuto SizeKind = iota
	SizeLength
	SizePercent
)

// Size is a width/height-like value: auto, a pixel length, or a percentage.
type Size struct {
	Kind  SizeKind
	Value float64
}

func AutoSize() Size             { return Size{Kind: SizeAuto} }
func LengthSize(px float64) Size { return Size{Kind: SizeLength, Value: px} }
func PercentSize(p float64) Size { return Size{Kind: SizePercent, Value: p} }

func (s Size) IsAuto() bool    { return s.Kind == SizeAuto }
func (s Size) IsLength() bool  { return s.Kind == SizeLength }
func (s Size) IsPercent() bool { return s.Kind == SizePercent }

// ToPx resolves the size against a containing-block extent. Auto resolves to
// zero; callers decide what auto means before resolving.
func (s Size) ToPx(containingBlockSize float64) float64 {
	switch s.Kind {
	case SizeLength:
		return s.Value
	case SizePercent:
		return s.Value / 100 * containingBlockSize
	}
	return 0
}

// ParseSize parses "auto", a pixel length, or a percentage.
func ParseSize(val string) (Size, bool) {
	val = strings.TrimSpace(val)
	if val == "auto" {
		return AutoSize(), true
	}
	if strings.HasSuffix(val, "%") {
		num, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
		if err != nil {
			return Size{}, false
		}
		return PercentSize(num), true
	}
	if num, ok := ParseLength(val); ok {
		return LengthSize(num), true
	}
	return Size{}, false
}

// GetSize returns the value of a width/height-like property; absent means auto.
func (s *Style) GetSize(property string) Size {
	val, ok := s.Get(property)
	if !ok {
		return AutoSize()
	}
	if size, ok := ParseSize(val); ok {
		return size
	}
	return AutoSize()
}

// BoxEdge represents the four sides of a box (top, right, bottom, left)
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GetMargin returns the margin values for all four sides
func (s *Style) GetMargin() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("margin-top"),
		Right:  s.getLengthOrZero("margin-right"),
		Bottom: s.getLengthOrZero("margin-bottom"),
		Left:   s.getLengthOrZero("margin-left"),
	}
}

// GetPadding returns the padding values for all four sides
func (s *Style) GetPadding() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("padding-top"),
		Right:  s.getLengthOrZero("padding-right"),
		Bottom: s.getLengthOrZero("padding-bottom"),
		Left:   s.getLengthOrZero("padding-left"),
	}
}

// GetBorderWidth returns the border width for all four sides
func (s *Style) GetBorderWidth() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("border-top-width"),
		Right:  s.getLengthOrZero("border-right-width"),
		Bottom: s.getLengthOrZero("border-bottom-width"),
		Left:   s.getLengthOrZero("border-left-width"),
	}
}

// getLengthOrZero returns the length value or 0 if not found
func (s *Style) getLengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok {
		return 0
	}
	return val
}

// DisplayType represents the display property value
type DisplayType string

const (
	DisplayBlock DisplayType = "block"
	DisplayGrid  DisplayType = "grid"
	DisplayNone  DisplayType = "none"
)

// GetDisplay returns the display value (default: block)
func (s *Style) GetDisplay() DisplayType {
	if display, ok := s.Get("display"); ok {
		switch display {
		case "grid":
			return DisplayGrid
		case "none":
			return DisplayNone
		}
	}
	return DisplayBlock
}

// OverflowType represents the overflow property value
type OverflowType string

const (
	OverflowVisible OverflowType = "visible"
	OverflowHidden  OverflowType = "hidden"
	OverflowScroll  OverflowType = "scroll"
	OverflowAuto    OverflowType = "auto"
)

// GetOverflow returns the overflow value (default: visible)
func (s *Style) GetOverflow() OverflowType {
	if overflow, ok := s.Get("overflow"); ok {
		switch overflow {
		case "hidden":
			return OverflowHidden
		case "scroll":
			return OverflowScroll
		case "auto":
			return OverflowAuto
		}
	}
	return OverflowVisible
}

// IsScrollContainer reports whether the box establishes a scroll container.
// Scroll containers do not get a content-based automatic minimum size.
func (s *Style) IsScrollContainer() bool {
	return s.GetOverflow() != OverflowVisible
}

// GetFontSize returns the font-size in pixels (default: 16px)
func (s *Style) GetFontSize() float64 {
	if size, ok := s.GetLength("font-size"); ok {
		return size
	}
	return 16.0
}

// GetLineHeight returns the line-height in pixels (default: 1.2 * font-size)
func (s *Style) GetLineHeight() float64 {
	if lh, ok := s.GetLength("line-height"); ok {
		return lh
	}
	return s.GetFontSize() * 1.2
}

func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	declarations := strings.Split(styleAttr, ";")
	for _, decl := range declarations {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])

		expandShorthand(style, property, value)
	}
	return style
}

// expandShorthand expands shorthand CSS properties into individual properties
func expandShorthand(style *Style, property, value string) {
	switch property {
	case "margin":
		expandBoxProperty(style, "margin", value)
	case "padding":
		expandBoxProperty(style, "padding", value)
	case "border":
		expandBorderProperty(style, value)
	case "gap":
		// gap: <row-gap> <column-gap>?
		parts := strings.Fields(value)
		switch len(parts) {
		case 1:
			style.Set("row-gap", parts[0])
			style.Set("column-gap", parts[0])
		case 2:
			style.Set("row-gap", parts[0])
			style.Set("column-gap", parts[1])
		}
	case "grid-row":
		expandGridLineShorthand(style, "grid-row", value)
	case "grid-column":
		expandGridLineShorthand(style, "grid-column", value)
	case "grid-area":
		expandGridAreaShorthand(style, value)
	default:
		style.Set(property, value)
	}
}

// expandGridLineShorthand expands "grid-row: 1 / 3" into grid-row-start/end.
func expandGridLineShorthand(style *Style, prefix, value string) {
	parts := strings.SplitN(value, "/", 2)
	style.Set(prefix+"-start", strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		style.Set(prefix+"-end", strings.TrimSpace(parts[1]))
	}
}

// expandGridAreaShorthand expands grid-area. A single <custom-ident> names a
// grid area and contributes to all four edges; the slash form is
// row-start / column-start / row-end / column-end.
func expandGridAreaShorthand(style *Style, value string) {
	if !strings.Contains(value, "/") {
		style.Set("grid-row-start", value)
		style.Set("grid-row-end", value)
		style.Set("grid-column-start", value)
		style.Set("grid-column-end", value)
		return
	}
	parts := strings.Split(value, "/")
	props := []string{"grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end"}
	for i, part := range parts {
		if i >= len(props) {
			break
		}
		style.Set(props[i], strings.TrimSpace(part))
	}
}

// expandBoxProperty expands margin/padding shorthand
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
//
//	"10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func expandBoxProperty(style *Style, prefix, value string) {
	parts := strings.Fields(value)

	switch len(parts) {
	case 1:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-left", parts[0])
	case 2:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
	case 3:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
		style.Set(prefix+"-bottom", parts[2])
	case 4:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-bottom", parts[2])
		style.Set(prefix+"-left", parts[3])
	}
}

// expandBorderProperty expands border shorthand
// Format: "1px solid black" or "2px dotted #FF0000"
func expandBorderProperty(style *Style, value string) {
	parts := strings.Fields(value)

	for _, part := range parts {
		if strings.HasSuffix(part, "px") {
			style.Set("border-width", part)
			style.Set("border-top-width", part)
			style.Set("border-right-width", part)
			style.Set("border-bottom-width", part)
			style.Set("border-left-width", part)
		} else if part == "solid" || part == "dotted" || part == "dashed" || part == "double" {
			style.Set("border-style", part)
		} else {
			style.Set("border-color", part)
		}
	}
}
