// Command statsview renders ring chart frames without opening a window.
//
// Usage:
//
//	statsview render --frames 30 --out frames/
//	statsview svg --progress 0.5 --out chart.svg
//	statsview plan --progress 1
//	statsview play script.json --out shots/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/statsview/internal/config"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

// cfg is loaded once by the root command before any subcommand runs.
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "statsview",
	Short: "Render animated ring chart frames",
	Long: `statsview lays out a ring chart from a total and a list of values and
renders frames of its reveal animation as PNG, SVG or a plain draw listing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if anim, _ := cmd.Flags().GetString("animation"); anim != "" {
			cfg.AnimationType = anim
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.Debug = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./statsview.yaml)")
	rootCmd.PersistentFlags().String("animation", "", "animation override (rotation, sequential, bidirectional)")
	rootCmd.PersistentFlags().Bool("debug", false, "print per-frame stats to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(playCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statsview %s (%s)\n", version, commit)
	},
}
