package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/statsview"
)

var playCmd = &cobra.Command{
	Use:   "play [script.json]",
	Short: "Run a chart script headlessly, writing its screenshots as PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		tps, _ := cmd.Flags().GetInt("tps")
		if tps <= 0 {
			return fmt.Errorf("tps must be positive, got %d", tps)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := statsview.LoadScript(data)
		if err != nil {
			return err
		}
		bg, err := cfg.BackgroundColor()
		if err != nil {
			return err
		}
		view, err := newView()
		if err != nil {
			return err
		}

		runner.OnScreenshot = func(label string) error {
			w, h := view.Size()
			canvas := statsview.NewRasterCanvas(int(w), int(h), bg)
			view.Draw(canvas)
			path, err := statsview.WriteFramePNG(outDir, label, canvas.Image())
			if err != nil {
				return err
			}
			fmt.Printf("%s  progress %.3f\n", path, view.Progress())
			return nil
		}
		return runner.Run(view, 1/float32(tps))
	},
}

func init() {
	playCmd.Flags().String("out", "screenshots", "output directory for screenshots")
	playCmd.Flags().Int("tps", 60, "simulated ticks per second")
}
