package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/overlaykit/stamp"
	"github.com/overlaykit/stamp/text"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the configured watermark and print placement statistics",
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
		stepX, stepY := r.Step(cfg)

		fmt.Printf("text:        %q (%.0fpt, %s)\n", cfg.Text, cfg.FontSize, src.Name())
		fmt.Printf("viewport:    %.0fx%.0f, corner radius %.0f\n",
			viewport.W, viewport.H, frame.Clip.Radius)
		fmt.Printf("angle:       %.1f°\n", cfg.Angle)
		fmt.Printf("tile step:   %.1f x %.1f (spacing %.0f)\n", stepX, stepY, cfg.Spacing)
		fmt.Printf("placements:  %d\n", len(frame.Placements))

		visible := 0
		for _, p := range frame.Placements {
			if frame.Clip.Contains(frame.Transform.TransformPoint(p.Pos)) {
				visible++
			}
		}
		fmt.Printf("visible:     %d anchor points inside the clip\n", visible)
		fmt.Printf("style:       color (%.2f, %.2f, %.2f) alpha %.2f\n",
			frame.Style.Color.R, frame.Style.Color.G, frame.Style.Color.B, frame.Style.Color.A)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
