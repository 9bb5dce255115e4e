package layout

import (
	"testing"

	"mondrian/pkg/html"
)

func TestItemGeometryWithGaps(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 200px; grid-template-rows: 50px; gap: 10px",
		"", "")
	engine, _ := runGrid(t, container, AvailableSpace{DefiniteSize(500), DefiniteSize(50)})

	first, ok := engine.State().Lookup(container.Children[0])
	if !ok {
		t.Fatalf("first item has no layout results")
	}
	second, ok := engine.State().Lookup(container.Children[1])
	if !ok {
		t.Fatalf("second item has no layout results")
	}

	if first.OffsetX != 0 || first.ContentWidth != 100 {
		t.Errorf("first item: offset %g width %g, want 0 and 100", first.OffsetX, first.ContentWidth)
	}
	if second.OffsetX != 110 || second.ContentWidth != 200 {
		t.Errorf("second item: offset %g width %g, want 110 and 200", second.OffsetX, second.ContentWidth)
	}
	if first.ContentHeight != 50 || second.ContentHeight != 50 {
		t.Errorf("item heights %g and %g, want 50", first.ContentHeight, second.ContentHeight)
	}
}

func TestSpanningItemGeometryIncludesInnerGap(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px 100px 100px; gap: 10px",
		"grid-row: 1; grid-column: 2 / 4")
	engine, _ := runGrid(t, container, AvailableSpace{DefiniteSize(320), IndefiniteSize()})

	used, ok := engine.State().Lookup(container.Children[0])
	if !ok {
		t.Fatalf("item has no layout results")
	}
	// Tracks 2 and 3 plus the gutter between them, not the one before.
	if used.OffsetX != 110 {
		t.Errorf("offset x = %g, want 110", used.OffsetX)
	}
	if used.ContentWidth != 210 {
		t.Errorf("content width = %g, want 210", used.ContentWidth)
	}
}

func TestAutomaticContentHeightSumsRowsAndGaps(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px; row-gap: 10px",
		"grid-row: 1; height: 40px",
		"grid-row: 2; height: 60px")
	_, fc := runGrid(t, container, AvailableSpace{DefiniteSize(100), IndefiniteSize()})

	if got := fc.AutomaticContentHeight(); got != 110 {
		t.Errorf("automatic content height = %g, want 110 (40 + 10 + 60)", got)
	}
}

func TestItemBeforeFirstLineIsDropped(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-rows: 50px; grid-template-columns: 100px",
		"grid-row: span 2 / 1; grid-column: 1")
	engine, fc := runGrid(t, container, AvailableSpace{DefiniteSize(100), DefiniteSize(50)})

	got := placements(fc)
	if len(got) != 1 || got[0].Row >= 0 {
		t.Fatalf("placements = %+v, want one item starting before the first line", got)
	}
	if _, ok := engine.State().Lookup(container.Children[0]); ok {
		t.Errorf("item resolved before the first line should get no geometry")
	}
}

func TestItemBordersInsetContentBox(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 100px",
		"border: 5px solid black")
	engine, _ := runGrid(t, container, AvailableSpace{DefiniteSize(100), IndefiniteSize()})

	used, ok := engine.State().Lookup(container.Children[0])
	if !ok {
		t.Fatalf("item has no layout results")
	}
	if used.ContentWidth != 90 {
		t.Errorf("content width = %g, want 90 (100px track minus 5px borders)", used.ContentWidth)
	}
	if used.OffsetX != 5 {
		t.Errorf("offset x = %g, want 5", used.OffsetX)
	}
	if used.BorderLeft != 5 || used.BorderTop != 5 {
		t.Errorf("borders = (%g, %g), want 5 each", used.BorderLeft, used.BorderTop)
	}
}

func TestPercentItemSizeResolvesAgainstTrack(t *testing.T) {
	container := buildGrid(t,
		"display: grid; grid-template-columns: 200px",
		"width: 50%")
	engine, _ := runGrid(t, container, AvailableSpace{DefiniteSize(200), IndefiniteSize()})

	used, ok := engine.State().Lookup(container.Children[0])
	if !ok {
		t.Fatalf("item has no layout results")
	}
	if used.ContentWidth != 100 {
		t.Errorf("content width = %g, want 100 (50%% of the 200px track)", used.ContentWidth)
	}
}

func TestGridItemContentsAreLaidOut(t *testing.T) {
	node := html.NewElement("div", map[string]string{"style": "display: grid; grid-template-columns: 200px"})
	item := html.NewElement("div", nil)
	item.AddChild(html.NewElement("div", map[string]string{"style": "width: 50px; height: 30px"}))
	node.AddChild(item)
	container := BuildBoxTree(node, nil)
	if container == nil || len(container.Children) != 1 || len(container.Children[0].Children) != 1 {
		t.Fatalf("unexpected box tree shape")
	}

	engine, _ := runGrid(t, container, AvailableSpace{DefiniteSize(200), IndefiniteSize()})

	used, ok := engine.State().Lookup(container.Children[0].Children[0])
	if !ok {
		t.Fatalf("nested child has no layout results")
	}
	if used.ContentWidth != 50 || used.ContentHeight != 30 {
		t.Errorf("nested child = %gx%g, want 50x30", used.ContentWidth, used.ContentHeight)
	}
}
