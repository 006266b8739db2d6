// Package stamp implements the core of a tiled-watermark overlay window:
// the placement algorithm that tiles rotated text across a clipped
// viewport, and the interaction state machine that turns raw pointer
// events into window move and resize operations.
//
// # Overview
//
// stamp is windowing-toolkit agnostic. A host event source delivers
// pointer events and paint requests; stamp answers paint requests with
// a [Frame] (placements, rotation transform, clip region, paint style)
// and pointer events with new window rectangles. Applying frames to an
// actual window, building native menus, and showing settings dialogs
// are the host's job.
//
// # Quick Start
//
//	import (
//	    "github.com/overlaykit/stamp"
//	    "github.com/overlaykit/stamp/text"
//	)
//
//	src, _ := text.DefaultBoldSource()
//	r := stamp.NewRenderer(stamp.WithMeasurer(text.NewMeasurer(src)))
//	frame := r.Render(stamp.DefaultConfig(), stamp.Sz(480, 320))
//	for _, p := range frame.Placements {
//	    // draw p.Text at frame.Transform.TransformPoint(p.Pos),
//	    // clipped to frame.Clip, styled with frame.Style
//	}
//
// # Coordinate System
//
// Viewport (rendering) coordinates follow standard computer graphics
// conventions: origin at top-left, Y increases down. Window frames use
// the screen convention of the target platform: the [Rect] origin is
// the bottom-left corner and Y increases upward, so the "bottom" edge
// of a frame is the edge at Rect.Y.
//
// # Concurrency
//
// The core is single-threaded: one goroutine owns the viewport
// geometry, the drag session, and configuration reads.
// Rendering is pure and idempotent and may be coalesced freely under
// rapid successive paint requests.
package stamp
