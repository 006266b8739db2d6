package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/overlaykit/stamp"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or reset the persisted overlay settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store()
		if err != nil {
			return err
		}
		cfg := st.Load()

		fmt.Printf("path:      %s\n", st.Path())
		fmt.Printf("text:      %q\n", cfg.Text)
		fmt.Printf("angle:     %.1f°\n", cfg.Angle)
		fmt.Printf("font size: %.0f\n", cfg.FontSize)
		fmt.Printf("opacity:   %.2f\n", cfg.Opacity)
		fmt.Printf("spacing:   %.0f\n", cfg.Spacing)
		fmt.Printf("color:     (%.2f, %.2f, %.2f, %.2f)\n",
			cfg.Color.R, cfg.Color.G, cfg.Color.B, cfg.Color.A)
		fmt.Printf("locked:    %v\n", cfg.Locked)
		if cfg.Frame != nil {
			fmt.Printf("frame:     x=%.0f y=%.0f w=%.0f h=%.0f\n",
				cfg.Frame.X, cfg.Frame.Y, cfg.Frame.W, cfg.Frame.H)
		} else {
			fmt.Println("frame:     not stored (centered default on first run)")
		}
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the settings file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store()
		if err != nil {
			return err
		}
		if err := st.Save(stamp.DefaultConfig()); err != nil {
			return err
		}
		log.Info("settings reset", "path", st.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
