package layout

// UsedValues holds the geometry layout has committed for one box: content-box
// size, content-box offset relative to the containing block's content box,
// and the resolved border widths.
type UsedValues struct {
	ContentWidth  float64
	ContentHeight float64
	OffsetX       float64
	OffsetY       float64
	BorderTop     float64
	BorderRight   float64
	BorderBottom  float64
	BorderLeft    float64
}

// LayoutState is the shared result store a layout pass writes into. One
// state serves an entire pass; each box gets at most one UsedValues record.
type LayoutState struct {
	used map[*Box]*UsedValues
}

func NewLayoutState() *LayoutState {
	return &LayoutState{used: make(map[*Box]*UsedValues)}
}

// For returns the box's used values, creating the record on first access.
func (s *LayoutState) For(box *Box) *UsedValues {
	if uv, ok := s.used[box]; ok {
		return uv
	}
	uv := &UsedValues{}
	s.used[box] = uv
	return uv
}

// Lookup returns the box's used values without creating them.
func (s *LayoutState) Lookup(box *Box) (*UsedValues, bool) {
	uv, ok := s.used[box]
	return uv, ok
}
