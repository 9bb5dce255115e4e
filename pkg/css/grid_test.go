package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridSize(t *testing.T) {
	tests := []struct {
		input string
		want  GridSize
	}{
		{"auto", AutoGridSize()},
		{"min-content", MinContentGridSize()},
		{"max-content", MaxContentGridSize()},
		{"100px", LengthGridSize(100)},
		{"25%", PercentGridSize(25)},
		{"2fr", FlexGridSize(2)},
		{"1.5fr", FlexGridSize(1.5)},
	}
	for _, tt := range tests {
		got, err := ParseGridSize(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := ParseGridSize("bogus")
	assert.Error(t, err)
}

func TestParseGridTrackList(t *testing.T) {
	list, err := ParseGridTrackList("100px 1fr minmax(50px, auto)")
	require.NoError(t, err)
	require.Len(t, list.Tracks, 3)
	assert.Equal(t, TrackDefault, list.Tracks[0].Kind)
	assert.Equal(t, LengthGridSize(100), list.Tracks[0].Size)
	assert.Equal(t, FlexGridSize(1), list.Tracks[1].Size)
	assert.Equal(t, TrackMinMax, list.Tracks[2].Kind)
	assert.Equal(t, LengthGridSize(50), list.Tracks[2].Min)
	assert.Equal(t, AutoGridSize(), list.Tracks[2].Max)
}

func TestParseGridTrackListNone(t *testing.T) {
	for _, input := range []string{"", "none"} {
		list, err := ParseGridTrackList(input)
		require.NoError(t, err)
		assert.True(t, list.IsEmpty(), "input %q", input)
	}
}

func TestParseGridTrackListRepeat(t *testing.T) {
	list, err := ParseGridTrackList("repeat(3, 1fr 50px)")
	require.NoError(t, err)
	require.Len(t, list.Tracks, 1)
	require.Equal(t, TrackRepeat, list.Tracks[0].Kind)
	rep := list.Tracks[0].Repeat
	assert.Equal(t, RepeatFixed, rep.Kind)
	assert.Equal(t, 3, rep.Count)
	require.Len(t, rep.Tracks.Tracks, 2)

	list, err = ParseGridTrackList("repeat(auto-fill, 100px)")
	require.NoError(t, err)
	assert.Equal(t, RepeatAutoFill, list.Tracks[0].Repeat.Kind)

	list, err = ParseGridTrackList("repeat(auto-fit, minmax(100px, 1fr))")
	require.NoError(t, err)
	assert.Equal(t, RepeatAutoFit, list.Tracks[0].Repeat.Kind)

	_, err = ParseGridTrackList("repeat(2, repeat(2, 1fr))")
	assert.Error(t, err, "nested repeat must be rejected")

	_, err = ParseGridTrackList("repeat(0, 1fr)")
	assert.Error(t, err, "repeat count below one must be rejected")
}

func TestExpandedLineNames(t *testing.T) {
	list, err := ParseGridTrackList("[a] 100px [b c] repeat(2, [x] 1fr) [d]")
	require.NoError(t, err)

	want := [][]string{{"a"}, {"b", "c", "x"}, {"x"}, {"d"}}
	assert.Equal(t, want, list.ExpandedLineNames())
}

func TestParseGridPlacement(t *testing.T) {
	tests := []struct {
		input string
		want  GridPlacement
	}{
		{"auto", AutoPlacement()},
		{"", AutoPlacement()},
		{"3", LinePlacement(3)},
		{"-1", LinePlacement(-1)},
		{"span 2", SpanPlacement(2)},
		{"span", SpanPlacement(1)},
		{"span mid", GridPlacement{Kind: PlacementSpan, Span: 1, Name: "mid"}},
		{"sidebar", NamedPlacement("sidebar")},
	}
	for _, tt := range tests {
		got, err := ParseGridPlacement(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := ParseGridPlacement("0")
	assert.Error(t, err, "line 0 is invalid")
	_, err = ParseGridPlacement("span 0")
	assert.Error(t, err, "span must be positive")
}

func TestParseGridTemplateAreas(t *testing.T) {
	got := ParseGridTemplateAreas(`"header header" "nav main"`)
	want := [][]string{{"header", "header"}, {"nav", "main"}}
	assert.Equal(t, want, got)
}

func TestGridShorthands(t *testing.T) {
	style := ParseInlineStyle("grid-row: 1 / 3; grid-column: span 2; gap: 5px 10px")
	assert.Equal(t, LinePlacement(1), style.GetGridRowStart())
	assert.Equal(t, LinePlacement(3), style.GetGridRowEnd())
	assert.Equal(t, SpanPlacement(2), style.GetGridColumnStart())
	assert.Equal(t, AutoPlacement(), style.GetGridColumnEnd())
	assert.Equal(t, LengthSize(5), style.GetRowGap())
	assert.Equal(t, LengthSize(10), style.GetColumnGap())
}

func TestGridAreaShorthand(t *testing.T) {
	style := ParseInlineStyle("grid-area: main")
	assert.Equal(t, NamedPlacement("main"), style.GetGridRowStart())
	assert.Equal(t, NamedPlacement("main"), style.GetGridRowEnd())
	assert.Equal(t, NamedPlacement("main"), style.GetGridColumnStart())
	assert.Equal(t, NamedPlacement("main"), style.GetGridColumnEnd())

	style = ParseInlineStyle("grid-area: 1 / 2 / 3 / 4")
	assert.Equal(t, LinePlacement(1), style.GetGridRowStart())
	assert.Equal(t, LinePlacement(2), style.GetGridColumnStart())
	assert.Equal(t, LinePlacement(3), style.GetGridRowEnd())
	assert.Equal(t, LinePlacement(4), style.GetGridColumnEnd())
}

func TestMalformedGridValuesDegradeToInitial(t *testing.T) {
	style := ParseInlineStyle("grid-template-columns: 100px bogus; grid-row-start: 0; row-gap: garbage")
	assert.True(t, style.GetGridTemplateColumns().IsEmpty())
	assert.Equal(t, AutoPlacement(), style.GetGridRowStart())
	assert.True(t, style.GetRowGap().IsAuto())
}
