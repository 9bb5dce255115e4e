package layout

import "fmt"

// AvailableSizeKind classifies the space a box is being sized against.
type AvailableSizeKind int

const (
	AvailableSizeDefinite AvailableSizeKind = iota
	AvailableSizeIndefinite
	AvailableSizeMinContent
	AvailableSizeMaxContent
)

// AvailableSize is the amount of space available to a box in one axis:
// a definite pixel amount, indefinite, or an intrinsic sizing constraint.
type AvailableSize struct {
	kind AvailableSizeKind
	px   float64
}

func DefiniteSize(px float64) AvailableSize {
	return AvailableSize{kind: AvailableSizeDefinite, px: px}
}

func IndefiniteSize() AvailableSize {
	return AvailableSize{kind: AvailableSizeIndefinite}
}

func MinContentSize() AvailableSize {
	return AvailableSize{kind: AvailableSizeMinContent}
}

func MaxContentSize() AvailableSize {
	return AvailableSize{kind: AvailableSizeMaxContent}
}

func (a AvailableSize) Kind() AvailableSizeKind { return a.kind }
func (a AvailableSize) IsDefinite() bool        { return a.kind == AvailableSizeDefinite }
func (a AvailableSize) IsIndefinite() bool      { return a.kind == AvailableSizeIndefinite }
func (a AvailableSize) IsMinContent() bool      { return a.kind == AvailableSizeMinContent }
func (a AvailableSize) IsMaxContent() bool      { return a.kind == AvailableSizeMaxContent }

// IsIntrinsicSizingConstraint reports whether the box is being measured
// rather than laid out against real space.
func (a AvailableSize) IsIntrinsicSizingConstraint() bool {
	return a.kind == AvailableSizeMinContent || a.kind == AvailableSizeMaxContent
}

// ToPx returns the definite amount, or 0 for anything else.
func (a AvailableSize) ToPx() float64 {
	if a.kind == AvailableSizeDefinite {
		return a.px
	}
	return 0
}

func (a AvailableSize) String() string {
	switch a.kind {
	case AvailableSizeDefinite:
		return fmt.Sprintf("%gpx", a.px)
	case AvailableSizeMinContent:
		return "min-content"
	case AvailableSizeMaxContent:
		return "max-content"
	}
	return "indefinite"
}

// AvailableSpace is the available size in both axes.
type AvailableSpace struct {
	Width  AvailableSize
	Height AvailableSize
}
