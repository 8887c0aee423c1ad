package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/statsview"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	kindStyle   = lipgloss.NewStyle().Width(7)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// swatch renders a colored dot for c.
func swatch(c statsview.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●")
}

// formatOp describes one draw operation on a single line.
func formatOp(op statsview.DrawOp) string {
	kind := kindStyle.Render(op.Kind.String())
	switch op.Kind {
	case statsview.OpCircle:
		return fmt.Sprintf("%s %s center=(%.1f,%.1f) r=%.1f width=%.1f",
			kind, swatch(op.Stroke.Color), op.Center.X, op.Center.Y, op.Radius, op.Stroke.Width)
	case statsview.OpArc:
		return fmt.Sprintf("%s %s #%d start=%.2f° sweep=%.2f° %s",
			kind, swatch(op.Stroke.Color), op.Segment, op.StartAngle, op.SweepAngle, dimStyle.Render(op.Stroke.Color.Hex()))
	case statsview.OpPoint:
		return fmt.Sprintf("%s %s at=(%.1f,%.1f)",
			kind, swatch(op.Stroke.Color), op.Center.X, op.Center.Y)
	case statsview.OpText:
		return fmt.Sprintf("%s %q at=(%.1f,%.1f) size=%.1f",
			kind, op.Text, op.Center.X, op.Center.Y, op.TextStyle.Size)
	}
	return kind
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the draw operations of one frame",
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, _ := cmd.Flags().GetFloat64("progress")
		plan, err := planAt(progress)
		if err != nil {
			return err
		}
		anim, _ := statsview.ParseAnimationType(cfg.AnimationType)

		var b strings.Builder
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s @ %.3f  %dx%d  label %s",
			anim, progress, cfg.Width, cfg.Height, plan.Label)))
		b.WriteByte('\n')
		if plan.Empty() {
			b.WriteString(dimStyle.Render("(nothing to draw)"))
			b.WriteByte('\n')
		}
		for _, op := range plan.Ops {
			b.WriteString(formatOp(op))
			b.WriteByte('\n')
		}
		fmt.Print(b.String())
		return nil
	},
}

func init() {
	planCmd.Flags().Float64("progress", 1, "animation progress in [0,1]")
}
