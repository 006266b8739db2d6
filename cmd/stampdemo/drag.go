package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/overlaykit/stamp"
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Run a scripted pointer session against the interaction controller",
	Run: func(cmd *cobra.Command, args []string) {
		frame := stamp.Rc(100, 100, 480, 320)
		c := stamp.NewController()

		printFrame := func(label string, r stamp.Rect) {
			fmt.Printf("%-28s x=%.0f y=%.0f w=%.0f h=%.0f\n", label, r.X, r.Y, r.W, r.H)
		}
		printFrame("start", frame)

		// Interior drag: a plain move.
		c.PointerDown(stamp.Pt(300, 250), frame, false)
		if f, ok := c.PointerDrag(stamp.Pt(340, 280)); ok {
			printFrame("move +40,+30", f)
		}
		if f, ok := c.PointerUp(stamp.Pt(340, 280)); ok {
			frame = f
			printFrame("move committed", f)
		}

		// Corner resize that runs into the minimum size.
		p := stamp.Pt(frame.MinX()+4, frame.MinY()+4)
		c.PointerDown(p, frame, false)
		log.Debug("resize session", "edges", c.Session().Edges.String())
		if f, ok := c.PointerUp(p.Add(stamp.Pt(1000, 1000))); ok {
			frame = f
			printFrame("corner resize (clamped)", f)
		}

		// Locked: nothing starts.
		if mode := c.PointerDown(stamp.Pt(300, 250), frame, true); mode == stamp.DragNone {
			fmt.Println("locked pointer-down ignored")
		}
	},
}

func init() {
	rootCmd.AddCommand(dragCmd)
}
