package css

import (
	"fmt"
	"strconv"
	"strings"
)

// GridSizeKind classifies a track sizing function.
type GridSizeKind int

const (
	// GridSizeLengthPercentage is a fixed length, a percentage, or auto.
	GridSizeLengthPercentage GridSizeKind = iota
	// GridSizeFlexibleLength is an fr value.
	GridSizeFlexibleLength
	GridSizeMinContent
	GridSizeMaxContent
)

// GridSize is one track sizing function (the min or max half of a track).
type GridSize struct {
	Kind   GridSizeKind
	Length Size    // for GridSizeLengthPercentage
	Flex   float64 // for GridSizeFlexibleLength
}

func AutoGridSize() GridSize           { return GridSize{Kind: GridSizeLengthPercentage, Length: AutoSize()} }
func LengthGridSize(px float64) GridSize { return GridSize{Kind: GridSizeLengthPercentage, Length: LengthSize(px)} }
func PercentGridSize(p float64) GridSize { return GridSize{Kind: GridSizeLengthPercentage, Length: PercentSize(p)} }
func FlexGridSize(f float64) GridSize    { return GridSize{Kind: GridSizeFlexibleLength, Flex: f} }
func MinContentGridSize() GridSize       { return GridSize{Kind: GridSizeMinContent} }
func MaxContentGridSize() GridSize       { return GridSize{Kind: GridSizeMaxContent} }

func (g GridSize) IsAuto() bool {
	return g.Kind == GridSizeLengthPercentage && g.Length.IsAuto()
}

// IsDefinite reports whether the sizing function resolves to an absolute
// length given a containing-block extent.
func (g GridSize) IsDefinite() bool {
	return g.Kind == GridSizeLengthPercentage && !g.Length.IsAuto()
}

func (g GridSize) IsFlexibleLength() bool { return g.Kind == GridSizeFlexibleLength }
func (g GridSize) IsMinContent() bool     { return g.Kind == GridSizeMinContent }
func (g GridSize) IsMaxContent() bool     { return g.Kind == GridSizeMaxContent }

// IsIntrinsic reports whether the sizing function is an intrinsic sizing
// function: min-content, max-content, or auto.
func (g GridSize) IsIntrinsic() bool {
	return g.IsMinContent() || g.IsMaxContent() || g.IsAuto()
}

// ToPx resolves a definite sizing function against the given extent.
func (g GridSize) ToPx(containingBlockSize float64) float64 {
	if g.Kind != GridSizeLengthPercentage {
		return 0
	}
	return g.Length.ToPx(containingBlockSize)
}

// ParseGridSize parses a single track sizing function.
func ParseGridSize(val string) (GridSize, error) {
	val = strings.TrimSpace(val)
	switch val {
	case "auto":
		return AutoGridSize(), nil
	case "min-content":
		return MinContentGridSize(), nil
	case "max-content":
		return MaxContentGridSize(), nil
	}
	if strings.HasSuffix(val, "fr") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(val, "fr"), 64)
		if err != nil {
			return GridSize{}, fmt.Errorf("invalid flex factor %q", val)
		}
		return FlexGridSize(f), nil
	}
	if size, ok := ParseSize(val); ok {
		return GridSize{Kind: GridSizeLengthPercentage, Length: size}, nil
	}
	return GridSize{}, fmt.Errorf("invalid track size %q", val)
}

// TrackKind classifies one entry of a track list.
type TrackKind int

const (
	TrackDefault TrackKind = iota
	TrackMinMax
	TrackRepeat
)

// RepeatKind classifies the repetition count of a repeat() entry.
type RepeatKind int

const (
	RepeatFixed RepeatKind = iota
	RepeatAutoFill
	RepeatAutoFit
)

// GridRepeat is the argument list of a repeat() entry.
type GridRepeat struct {
	Kind   RepeatKind
	Count  int // for RepeatFixed
	Tracks TrackList
}

// ExplicitTrack is one entry of a declared track list: a plain sizing
// function, a minmax() pair, or a repeat().
type ExplicitTrack struct {
	Kind     TrackKind
	Size     GridSize   // TrackDefault
	Min, Max GridSize   // TrackMinMax
	Repeat   GridRepeat // TrackRepeat
}

// TrackList is an ordered track-list definition. LineNames has one entry per
// line, so len(LineNames) == len(Tracks)+1 whenever Tracks is non-empty.
type TrackList struct {
	Tracks    []ExplicitTrack
	LineNames [][]string
}

func (tl TrackList) IsEmpty() bool { return len(tl.Tracks) == 0 }

// ExpandedLineNames flattens the definition into one name set per grid line,
// expanding fixed repeat() entries. Auto-repeats contribute a single
// repetition; callers that need exact auto-repeat line indices resolve the
// count first.
func (tl TrackList) ExpandedLineNames() [][]string {
	lines := [][]string{{}}
	appendNames := func(names []string) {
		last := len(lines) - 1
		lines[last] = append(lines[last], names...)
	}
	newLine := func() {
		lines = append(lines, []string{})
	}
	lineAt := func(names [][]string, i int) []string {
		if i < len(names) {
			return names[i]
		}
		return nil
	}

	for i, track := range tl.Tracks {
		appendNames(lineAt(tl.LineNames, i))
		if track.Kind != TrackRepeat {
			newLine()
			continue
		}
		reps := 1
		if track.Repeat.Kind == RepeatFixed {
			reps = track.Repeat.Count
		}
		nested := track.Repeat.Tracks
		for rep := 0; rep < reps; rep++ {
			for j := range nested.Tracks {
				appendNames(lineAt(nested.LineNames, j))
				newLine()
			}
			appendNames(lineAt(nested.LineNames, len(nested.Tracks)))
		}
	}
	appendNames(lineAt(tl.LineNames, len(tl.Tracks)))
	return lines
}

// splitTrackListTokens splits a track-list value into tokens, keeping
// bracketed line-name groups and parenthesized arguments intact.
func splitTrackListTokens(val string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	inBrackets := false
	for _, r := range val {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case r == '[' && depth == 0:
			inBrackets = true
			current.WriteRune(r)
		case r == ']' && depth == 0:
			inBrackets = false
			current.WriteRune(r)
		case (r == ' ' || r == '\t') && depth == 0 && !inBrackets:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// ParseGridTrackList parses a grid-template-columns/rows value, e.g.
//
//	"100px [mid] repeat(2, 1fr 50px) minmax(100px, auto) min-content"
//
// "none" and the empty string parse to an empty list.
func ParseGridTrackList(val string) (TrackList, error) {
	val = strings.TrimSpace(val)
	if val == "" || val == "none" {
		return TrackList{}, nil
	}

	var list TrackList
	pendingNames := []string{}
	flushLine := func() {
		list.LineNames = append(list.LineNames, pendingNames)
		pendingNames = []string{}
	}

	for _, token := range splitTrackListTokens(val) {
		switch {
		case strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]"):
			names := strings.Fields(token[1 : len(token)-1])
			pendingNames = append(pendingNames, names...)
		case strings.HasPrefix(token, "repeat(") && strings.HasSuffix(token, ")"):
			repeat, err := parseRepeat(token[len("repeat(") : len(token)-1])
			if err != nil {
				return TrackList{}, err
			}
			flushLine()
			list.Tracks = append(list.Tracks, ExplicitTrack{Kind: TrackRepeat, Repeat: repeat})
		case strings.HasPrefix(token, "minmax(") && strings.HasSuffix(token, ")"):
			min, max, err := parseMinMax(token[len("minmax(") : len(token)-1])
			if err != nil {
				return TrackList{}, err
			}
			flushLine()
			list.Tracks = append(list.Tracks, ExplicitTrack{Kind: TrackMinMax, Min: min, Max: max})
		default:
			size, err := ParseGridSize(token)
			if err != nil {
				return TrackList{}, err
			}
			flushLine()
			list.Tracks = append(list.Tracks, ExplicitTrack{Kind: TrackDefault, Size: size})
		}
	}
	// Trailing line names, if any.
	list.LineNames = append(list.LineNames, pendingNames)
	return list, nil
}

func parseRepeat(args string) (GridRepeat, error) {
	comma := strings.Index(args, ",")
	if comma < 0 {
		return GridRepeat{}, fmt.Errorf("repeat() needs a count and a track list: %q", args)
	}
	countSpec := strings.TrimSpace(args[:comma])
	nested, err := ParseGridTrackList(args[comma+1:])
	if err != nil {
		return GridRepeat{}, err
	}
	for _, track := range nested.Tracks {
		if track.Kind == TrackRepeat {
			return GridRepeat{}, fmt.Errorf("repeat() cannot nest another repeat()")
		}
	}
	switch countSpec {
	case "auto-fill":
		return GridRepeat{Kind: RepeatAutoFill, Tracks: nested}, nil
	case "auto-fit":
		return GridRepeat{Kind: RepeatAutoFit, Tracks: nested}, nil
	}
	count, err := strconv.Atoi(countSpec)
	if err != nil || count < 1 {
		return GridRepeat{}, fmt.Errorf("invalid repeat() count %q", countSpec)
	}
	return GridRepeat{Kind: RepeatFixed, Count: count, Tracks: nested}, nil
}

func parseMinMax(args string) (GridSize, GridSize, error) {
	parts := strings.SplitN(args, ",", 2)
	if len(parts) != 2 {
		return GridSize{}, GridSize{}, fmt.Errorf("minmax() needs two arguments: %q", args)
	}
	min, err := ParseGridSize(parts[0])
	if err != nil {
		return GridSize{}, GridSize{}, err
	}
	max, err := ParseGridSize(parts[1])
	if err != nil {
		return GridSize{}, GridSize{}, err
	}
	return min, max, nil
}

// PlacementKind classifies a grid-row/column-start/end value.
type PlacementKind int

const (
	PlacementAuto PlacementKind = iota
	PlacementLine
	PlacementSpan
	PlacementNamed
)

// GridPlacement is one per-item placement property value: auto, a signed
// 1-based line number, a span, or a named line/area reference.
type GridPlacement struct {
	Kind PlacementKind
	Line int    // PlacementLine; negative counts from the explicit end
	Span int    // PlacementSpan
	Name string // PlacementNamed, or a named span
}

func AutoPlacement() GridPlacement          { return GridPlacement{Kind: PlacementAuto} }
func LinePlacement(n int) GridPlacement     { return GridPlacement{Kind: PlacementLine, Line: n} }
func SpanPlacement(n int) GridPlacement     { return GridPlacement{Kind: PlacementSpan, Span: n} }
func NamedPlacement(name string) GridPlacement {
	return GridPlacement{Kind: PlacementNamed, Name: name}
}

func (p GridPlacement) IsAuto() bool     { return p.Kind == PlacementAuto }
func (p GridPlacement) IsPosition() bool { return p.Kind == PlacementLine }
func (p GridPlacement) IsSpan() bool     { return p.Kind == PlacementSpan }

func (p GridPlacement) HasLineName() bool { return p.Name != "" }

// IsNamedPosition reports a bare line-name reference, as opposed to a span
// that carries a name.
func (p GridPlacement) IsNamedPosition() bool { return p.Kind == PlacementNamed }

// RawValue is the numeric payload of the placement: the line number for a
// position, the span count for a span, zero otherwise.
func (p GridPlacement) RawValue() int {
	switch p.Kind {
	case PlacementLine:
		return p.Line
	case PlacementSpan:
		return p.Span
	}
	return 0
}

// ParseGridPlacement parses a grid-row/column-start/end value.
func ParseGridPlacement(val string) (GridPlacement, error) {
	val = strings.TrimSpace(val)
	if val == "" || val == "auto" {
		return AutoPlacement(), nil
	}
	if strings.HasPrefix(val, "span") {
		arg := strings.TrimSpace(strings.TrimPrefix(val, "span"))
		if n, err := strconv.Atoi(arg); err == nil {
			if n < 1 {
				return GridPlacement{}, fmt.Errorf("span count must be positive: %q", val)
			}
			return SpanPlacement(n), nil
		}
		if arg == "" {
			return SpanPlacement(1), nil
		}
		// A span with only a named line behaves as a span of 1.
		return GridPlacement{Kind: PlacementSpan, Span: 1, Name: arg}, nil
	}
	if n, err := strconv.Atoi(val); err == nil {
		if n == 0 {
			return GridPlacement{}, fmt.Errorf("grid line 0 is invalid")
		}
		return LinePlacement(n), nil
	}
	return NamedPlacement(val), nil
}

// ParseGridTemplateAreas parses a grid-template-areas value: a sequence of
// quoted row strings, each a whitespace-separated list of area names where
// "." means no name.
func ParseGridTemplateAreas(val string) [][]string {
	var rows [][]string
	val = strings.TrimSpace(val)
	for len(val) > 0 {
		start := strings.IndexByte(val, '"')
		if start < 0 {
			break
		}
		end := strings.IndexByte(val[start+1:], '"')
		if end < 0 {
			break
		}
		row := strings.Fields(val[start+1 : start+1+end])
		rows = append(rows, row)
		val = val[start+end+2:]
	}
	return rows
}

// Style accessors. Malformed values behave as the property's initial value,
// matching how the rest of the style getters degrade.

func (s *Style) GetGridTemplateColumns() TrackList {
	return s.getTrackList("grid-template-columns")
}

func (s *Style) GetGridTemplateRows() TrackList {
	return s.getTrackList("grid-template-rows")
}

func (s *Style) getTrackList(property string) TrackList {
	val, ok := s.Get(property)
	if !ok {
		return TrackList{}
	}
	list, err := ParseGridTrackList(val)
	if err != nil {
		return TrackList{}
	}
	return list
}

func (s *Style) GetGridTemplateAreas() [][]string {
	val, ok := s.Get("grid-template-areas")
	if !ok {
		return nil
	}
	return ParseGridTemplateAreas(val)
}

func (s *Style) GetGridRowStart() GridPlacement    { return s.getPlacement("grid-row-start") }
func (s *Style) GetGridRowEnd() GridPlacement      { return s.getPlacement("grid-row-end") }
func (s *Style) GetGridColumnStart() GridPlacement { return s.getPlacement("grid-column-start") }
func (s *Style) GetGridColumnEnd() GridPlacement   { return s.getPlacement("grid-column-end") }

func (s *Style) getPlacement(property string) GridPlacement {
	val, ok := s.Get(property)
	if !ok {
		return AutoPlacement()
	}
	placement, err := ParseGridPlacement(val)
	if err != nil {
		return AutoPlacement()
	}
	return placement
}

// GetRowGap and GetColumnGap return the axis gap. An auto size means the gap
// is unset and no gutter tracks are synthesized.
func (s *Style) GetRowGap() Size    { return s.getGap("row-gap") }
func (s *Style) GetColumnGap() Size { return s.getGap("column-gap") }

func (s *Style) getGap(property string) Size {
	val, ok := s.Get(property)
	if !ok || val == "normal" {
		return AutoSize()
	}
	size, ok := ParseSize(val)
	if !ok {
		return AutoSize()
	}
	return size
}
