package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildValidGridAreas(t *testing.T) {
	matrix := [][]string{
		{"header", "header"},
		{"nav", "main"},
		{"nav", "main"},
	}
	got := buildValidGridAreas(matrix)
	want := []gridArea{
		{name: "header", rowStart: 0, rowEnd: 1, columnStart: 0, columnEnd: 2},
		{name: "nav", rowStart: 1, rowEnd: 3, columnStart: 0, columnEnd: 1},
		{name: "main", rowStart: 1, rowEnd: 3, columnStart: 1, columnEnd: 2},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(gridArea{})); diff != "" {
		t.Errorf("areas mismatch (-want +got):\n%s", diff)
	}
}

func TestNonRectangularAreaDiscardsEverything(t *testing.T) {
	matrix := [][]string{
		{"a", "a"},
		{"a", "b"},
	}
	if got := buildValidGridAreas(matrix); got != nil {
		t.Errorf("L-shaped area should discard all areas, got %+v", got)
	}
}

func TestDisjointAreaDiscardsEverything(t *testing.T) {
	matrix := [][]string{
		{"a", "b", "a"},
	}
	if got := buildValidGridAreas(matrix); got != nil {
		t.Errorf("disjoint area should discard all areas, got %+v", got)
	}
}

func TestDotCellsCarryNoName(t *testing.T) {
	matrix := [][]string{
		{"a", "."},
		{".", "b"},
	}
	got := buildValidGridAreas(matrix)
	want := []gridArea{
		{name: "a", rowStart: 0, rowEnd: 1, columnStart: 0, columnEnd: 1},
		{name: "b", rowStart: 1, rowEnd: 2, columnStart: 1, columnEnd: 2},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(gridArea{})); diff != "" {
		t.Errorf("areas mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidAreasFallBackToLineNames(t *testing.T) {
	// The broken area matrix is discarded wholesale, so the named placement
	// resolves through the track list's line names instead.
	container := buildGrid(t,
		`display: grid; grid-template-columns: 100px [a] 100px; grid-template-areas: "a a" "a b"`,
		"grid-column-start: a")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(200), IndefiniteSize()})

	if fc.gridAreas != nil {
		t.Fatalf("expected no valid areas, got %+v", fc.gridAreas)
	}
	want := []placement{{Row: 0, RowSpan: 1, Column: 1, ColumnSpan: 1}}
	if diff := cmp.Diff(want, placements(fc)); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}
