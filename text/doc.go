// Package text provides font loading and text measurement for the
// overlay. Tile steps are derived from the measured extent of the
// watermark string, so measurement runs through the same HarfBuzz
// shaping (go-text/typesetting) a compositor would use to draw it:
// kerning and ligatures affect the advance and therefore the tiling.
//
// The overlay draws its watermark bold; [DefaultBoldSource] returns a
// source over the embedded Go Bold font for hosts that do not supply
// their own.
package text
