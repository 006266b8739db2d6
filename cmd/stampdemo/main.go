// Command stampdemo exercises the overlay core from the terminal:
// rendering statistics, an ASCII coverage preview, a scripted drag
// session, and the persisted settings file.
package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/overlaykit/stamp"
	"github.com/overlaykit/stamp/config"
)

var (
	flagConfigPath string
	flagVerbose    bool
	flagWidth      float64
	flagHeight     float64
)

var rootCmd = &cobra.Command{
	Use:   "stampdemo",
	Short: "Exercise the stamp overlay core without a windowing toolkit",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		// Route the core's structured logging through the CLI logger.
		stamp.SetLogger(slog.New(log.Default()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "settings file path (default ~/.config/stamp/overlay.json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", 480, "viewport width")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", 320, "viewport height")
}

// store returns the settings store for the --config flag, falling back
// to the standard location.
func store() (*config.Store, error) {
	path := flagConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.NewStore(path), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
