package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/overlaykit/stamp"
	"github.com/overlaykit/stamp/text"
)

var (
	flagCols int
	flagRows int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw an ASCII preview of tile coverage in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store()
		if err != nil {
			return err
		}
		cfg := st.Load()

		src, err := text.DefaultBoldSource()
		if err != nil {
			return err
		}
		r := stamp.NewRenderer(stamp.WithMeasurer(text.NewMeasurer(src)))

		viewport := stamp.Sz(flagWidth, flagHeight)
		frame := r.Render(cfg, viewport)

		for _, line := range previewLines(frame, viewport, flagCols, flagRows) {
			fmt.Println(line)
		}
		fmt.Printf("%d placements, angle %.1f°\n", len(frame.Placements), cfg.Angle)
		return nil
	},
}

// previewLines maps tile anchor points onto a character canvas. Each
// cell covers viewport/cols by viewport/rows points; cells holding at
// least one clipped-in anchor are marked.
func previewLines(frame stamp.Frame, viewport stamp.Size, cols, rows int) []string {
	if cols < 2 || rows < 2 || viewport.IsEmpty() {
		return nil
	}

	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = make([]rune, cols)
		for j := range canvas[i] {
			canvas[i][j] = '·'
		}
	}

	for _, p := range frame.Placements {
		pos := frame.Transform.TransformPoint(p.Pos)
		if !frame.Clip.Contains(pos) {
			continue
		}
		col := int(pos.X / viewport.W * float64(cols))
		row := int(pos.Y / viewport.H * float64(rows))
		if col >= 0 && col < cols && row >= 0 && row < rows {
			canvas[row][col] = '#'
		}
	}

	border := "+" + strings.Repeat("-", cols) + "+"
	lines := make([]string, 0, rows+2)
	lines = append(lines, border)
	for _, rowRunes := range canvas {
		lines = append(lines, "|"+string(rowRunes)+"|")
	}
	lines = append(lines, border)
	return lines
}

func init() {
	previewCmd.Flags().IntVar(&flagCols, "cols", 64, "preview width in characters")
	previewCmd.Flags().IntVar(&flagRows, "rows", 20, "preview height in characters")
	rootCmd.AddCommand(previewCmd)
}
