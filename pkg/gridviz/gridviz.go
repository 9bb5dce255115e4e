// Package gridviz renders a finished grid layout to an image for debugging:
// the container outline, the resolved track boundaries, and each item's
// content box. It is developer tooling; nothing in the layout pass depends
// on it.
package gridviz

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"mondrian/pkg/layout"
)

// Options control the rendering. Zero values get sensible defaults.
type Options struct {
	// Scale multiplies all layout coordinates (default 1).
	Scale float64
	// Padding is blank space around the container, in layout px (default 8).
	Padding float64
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Padding <= 0 {
		o.Padding = 8
	}
	return o
}

// Render draws the grid container and its items onto a fresh canvas.
// The container's geometry is read from state; track boundaries come from
// the formatting context that laid it out.
func Render(state *layout.LayoutState, container *layout.Box, fc *layout.GridFormattingContext, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults()
	containerUsed, ok := state.Lookup(container)
	if !ok {
		return nil, fmt.Errorf("gridviz: container has no layout results")
	}

	width := containerUsed.ContentWidth
	height := containerUsed.ContentHeight
	canvasW := int((width+2*opts.Padding)*opts.Scale) + 1
	canvasH := int((height+2*opts.Padding)*opts.Scale) + 1
	if canvasW < 1 {
		canvasW = 1
	}
	if canvasH < 1 {
		canvasH = 1
	}

	dc := gg.NewContext(canvasW, canvasH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	toCanvas := func(v float64) float64 { return (v + opts.Padding) * opts.Scale }

	// Container content box.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawRectangle(toCanvas(0), toCanvas(0), width*opts.Scale, height*opts.Scale)
	dc.Stroke()

	// Track boundaries.
	dc.SetRGB(0.75, 0.75, 0.75)
	x := 0.0
	for _, size := range fc.ColumnSizes() {
		x += size
		dc.DrawLine(toCanvas(x), toCanvas(0), toCanvas(x), toCanvas(height))
		dc.Stroke()
	}
	y := 0.0
	for _, size := range fc.RowSizes() {
		y += size
		dc.DrawLine(toCanvas(0), toCanvas(y), toCanvas(width), toCanvas(y))
		dc.Stroke()
	}

	// Item content boxes.
	for _, item := range container.Children {
		used, ok := state.Lookup(item)
		if !ok {
			continue
		}
		dc.SetRGBA(0.2, 0.45, 0.85, 0.35)
		dc.DrawRectangle(toCanvas(used.OffsetX), toCanvas(used.OffsetY),
			used.ContentWidth*opts.Scale, used.ContentHeight*opts.Scale)
		dc.Fill()
		dc.SetRGB(0.1, 0.25, 0.6)
		dc.DrawRectangle(toCanvas(used.OffsetX), toCanvas(used.OffsetY),
			used.ContentWidth*opts.Scale, used.ContentHeight*opts.Scale)
		dc.Stroke()
	}

	return dc, nil
}

// WritePNG renders the layout and encodes it as PNG to w.
func WritePNG(w io.Writer, state *layout.LayoutState, container *layout.Box, fc *layout.GridFormattingContext, opts Options) error {
	dc, err := Render(state, container, fc, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("gridviz: encoding png: %w", err)
	}
	return nil
}

// SavePNG renders the layout and writes it to a PNG file.
func SavePNG(path string, state *layout.LayoutState, container *layout.Box, fc *layout.GridFormattingContext, opts Options) error {
	dc, err := Render(state, container, fc, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("gridviz: writing %s: %w", path, err)
	}
	return nil
}
