package text

import "sync"

// Measurer measures strings at arbitrary sizes over one Source,
// caching a Face per size. It satisfies the renderer's Measurer
// interface.
//
// Measurer is safe for concurrent use, though the overlay core only
// ever calls it from its event loop.
type Measurer struct {
	source *Source

	mu    sync.Mutex
	faces map[float64]*Face
}

// NewMeasurer creates a Measurer over a Source.
func NewMeasurer(source *Source) *Measurer {
	return &Measurer{
		source: source,
		faces:  make(map[float64]*Face),
	}
}

// MeasureString returns the extent of s at the given font size.
// Non-positive sizes and empty strings measure to zero, which the
// renderer treats as "draw nothing".
func (m *Measurer) MeasureString(s string, size float64) (w, h float64) {
	if s == "" || size <= 0 || m.source == nil {
		return 0, 0
	}
	return m.face(size).Measure(s)
}

// face returns the cached Face for a size, creating it on first use.
// Font size changes are rare (settings edits), so the cache stays
// small.
func (m *Measurer) face(size float64) *Face {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.faces[size]
	if !ok {
		f = m.source.Face(size)
		m.faces[size] = f
	}
	return f
}
