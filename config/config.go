// Package config persists overlay settings to disk as a single JSON
// record. Loading is infallible from the caller's perspective: a
// missing or corrupt file yields defaults. Saving is best-effort; the
// overlay tolerates failed writes and keeps its state in memory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/overlaykit/stamp"
)

// DefaultPath returns the standard settings location,
// ~/.config/stamp/overlay.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "stamp", "overlay.json"), nil
}

// Store reads and writes the settings record at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// record is the on-disk layout. It mirrors stamp.Config field for
// field, with the rectangle as four numeric fields and the color as
// four normalized channels.
//
//	{
//	  "text": "© COPYRIGHT",
//	  "angle": -30,
//	  "fontSize": 36,
//	  "opacity": 0.15,
//	  "spacing": 24,
//	  "color": {"r": 1, "g": 1, "b": 1, "a": 1},
//	  "locked": false,
//	  "frame": {"x": 100, "y": 100, "width": 480, "height": 320}
//	}
type record struct {
	Text     string      `json:"text"`
	Angle    float64     `json:"angle"`
	FontSize float64     `json:"fontSize"`
	Opacity  float64     `json:"opacity"`
	Spacing  float64     `json:"spacing"`
	Color    colorRecord `json:"color"`
	Locked   bool        `json:"locked"`
	Frame    *rectRecord `json:"frame,omitempty"`
}

type colorRecord struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type rectRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Load reads the stored configuration. A missing file, unreadable
// file, or malformed record falls back to stamp.DefaultConfig; the
// fallback is logged, never surfaced.
//
// A stored frame smaller than the live resize minimum is clamped on
// load, so a corrupted record cannot pin the window below the size a
// drag could ever produce.
func (s *Store) Load() stamp.Config {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			stamp.Logger().Warn("settings unreadable, using defaults",
				"path", s.path, "error", err)
		}
		return stamp.DefaultConfig()
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		stamp.Logger().Warn("settings malformed, using defaults",
			"path", s.path, "error", err)
		return stamp.DefaultConfig()
	}

	cfg := stamp.Config{
		Text:     rec.Text,
		Angle:    rec.Angle,
		FontSize: rec.FontSize,
		Opacity:  rec.Opacity,
		Spacing:  rec.Spacing,
		Color:    stamp.RGBA{R: rec.Color.R, G: rec.Color.G, B: rec.Color.B, A: rec.Color.A},
		Locked:   rec.Locked,
	}
	if rec.Frame != nil {
		frame := stamp.Rc(rec.Frame.X, rec.Frame.Y, rec.Frame.Width, rec.Frame.Height).
			ClampSize(stamp.MinWidth, stamp.MinHeight)
		cfg.Frame = &frame
	}
	return cfg.Normalize()
}

// Save writes the configuration, creating the parent directory if
// needed. Errors are returned for callers that want them; the overlay
// itself treats a failed write as tolerable.
func (s *Store) Save(cfg stamp.Config) error {
	cfg = cfg.Normalize()

	rec := record{
		Text:     cfg.Text,
		Angle:    cfg.Angle,
		FontSize: cfg.FontSize,
		Opacity:  cfg.Opacity,
		Spacing:  cfg.Spacing,
		Color:    colorRecord{R: cfg.Color.R, G: cfg.Color.G, B: cfg.Color.B, A: cfg.Color.A},
		Locked:   cfg.Locked,
	}
	if cfg.Frame != nil {
		rec.Frame = &rectRecord{
			X:      cfg.Frame.X,
			Y:      cfg.Frame.Y,
			Width:  cfg.Frame.W,
			Height: cfg.Frame.H,
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("config: failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write settings: %w", err)
	}
	return nil
}
