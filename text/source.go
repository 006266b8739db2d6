package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
)

// Source represents a loaded font. One Source can create multiple
// Face instances at different sizes. Source is heavyweight and should
// be shared across the application.
//
// The parsed font.Font is read-only, so a Source is safe for
// concurrent use; the per-call font.Face instances created around it
// are not, and each measurement builds its own.
type Source struct {
	data   []byte
	parsed *font.Font
	name   string
}

// NewSource creates a Source from font data (TTF or OTF). The data
// slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	// ParseTTF returns a *font.Face which embeds the thread-safe *Font.
	parsed, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &Source{
		data:   dataCopy,
		parsed: parsed.Font,
	}, nil
}

// NewSourceFromFile loads a Source from a font file path. The file's
// base name (without extension) becomes the source name.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	s, err := NewSource(data)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	s.name = strings.TrimSuffix(base, filepath.Ext(base))
	return s, nil
}

// DefaultBoldSource returns a Source over the embedded Go Bold font,
// the measurement face used when the host does not supply one.
func DefaultBoldSource() (*Source, error) {
	s, err := NewSource(gobold.TTF)
	if err != nil {
		return nil, err
	}
	s.name = "Go Bold"
	return s, nil
}

// Name returns the source name, or "" for sources created directly
// from bytes.
func (s *Source) Name() string {
	return s.name
}

// Face creates a Face at the specified size (in points). Multiple
// faces can be created from the same Source; each is a lightweight
// object sharing the Source's parsed font.
func (s *Source) Face(size float64) *Face {
	if s == nil {
		panic("text: Source is nil; check the error from NewSource")
	}
	return &Face{source: s, size: size}
}
