package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
// internal mutable state and is not safe for concurrent use, but
// reusing instances across sequential calls avoids reallocating its
// buffers.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Face is a Source at a specific size. It is a lightweight value;
// create one per size as needed.
type Face struct {
	source *Source
	size   float64
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source { return f.source }

// Size returns the size of this face in points.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	if f.size <= 0 {
		return Metrics{}
	}
	out := f.shape(" ")
	// LineBounds.Descent is negative (below baseline); Metrics stores
	// the absolute distance.
	descent := fixedToFloat(out.LineBounds.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Descent: descent,
		LineGap: fixedToFloat(out.LineBounds.Gap),
	}
}

// Advance returns the total advance width of the text in points,
// after shaping (kerning and ligatures included).
func (f *Face) Advance(s string) float64 {
	if s == "" || f.size <= 0 {
		return 0
	}
	return fixedToFloat(f.shape(s).Advance)
}

// Measure returns the extent of a single line of text: the shaped
// advance width and the line height.
func (f *Face) Measure(s string) (w, h float64) {
	if s == "" || f.size <= 0 {
		return 0, 0
	}
	out := f.shape(s)
	descent := fixedToFloat(out.LineBounds.Descent)
	if descent < 0 {
		descent = -descent
	}
	h = fixedToFloat(out.LineBounds.Ascent) + descent + fixedToFloat(out.LineBounds.Gap)
	return fixedToFloat(out.Advance), h
}

// shape runs HarfBuzz shaping over the whole string as one
// left-to-right run. Watermark strings are single-line and
// single-script; hosts needing bidi or mixed scripts should measure
// with their own stack.
func (f *Face) shape(s string) shaping.Output {
	runes := []rune(s)

	// font.Face is not safe for concurrent use; each call builds a
	// cheap wrapper around the shared thread-safe *Font.
	goFace := font.NewFace(f.source.parsed)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      goFace,
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	shaperPool.Put(shaper)
	return out
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; watermark strings
// are assumed to be single-script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
