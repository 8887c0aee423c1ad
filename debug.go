package statsview

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logOutput receives every "[statsview]" diagnostic line.
var logOutput io.Writer = os.Stderr

// debugStats holds per-frame timing and op counts.
// Only populated when View.debug is true.
type debugStats struct {
	planTime time.Duration
	drawTime time.Duration
	progress float64
	ops      int
	arcs     int
	marker   bool
}

// collect counts the operations in plan.
func (s *debugStats) collect(plan *RenderPlan) {
	if plan == nil {
		return
	}
	s.ops = len(plan.Ops)
	for i := range plan.Ops {
		switch plan.Ops[i].Kind {
		case OpArc:
			s.arcs++
		case OpPoint:
			s.marker = true
		}
	}
}

// debugLog prints timing and op stats to stderr.
func (v *View) debugLog(stats debugStats) {
	if !v.debug {
		return
	}
	_, _ = fmt.Fprintf(logOutput,
		"[statsview] plan: %v | draw: %v | total: %v\n",
		stats.planTime, stats.drawTime, stats.planTime+stats.drawTime)
	_, _ = fmt.Fprintf(logOutput,
		"[statsview] %s progress: %.3f | ops: %d | arcs: %d | marker: %t\n",
		v.style.Animation, stats.progress, stats.ops, stats.arcs, stats.marker)
}
