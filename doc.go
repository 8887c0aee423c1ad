// Package statsview renders an animated ring chart for [Ebitengine] and for
// headless targets.
//
// A chart is a ring divided into colored arcs, one per value, each covering
// its share of a total. The arcs reveal themselves over two seconds using
// one of three animations, and the summed percentage is shown in the middle.
//
// # Quick start
//
// The simplest way to show a chart is [Run], which creates a window and game
// loop for you:
//
//	style, err := statsview.NewStyle(statsview.Options{
//		Colors:        colors,
//		AnimationType: statsview.AnimationSequential,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	view := statsview.NewView(style)
//	view.SetTotal(1000)
//	view.SetValues([]float64{250, 250, 250, 250})
//	statsview.Run(view, statsview.RunConfig{Title: "Stats", Width: 400, Height: 400})
//
// For full control, embed a [View] in your own [ebiten.Game]: call
// [View.Resize] from Layout, [View.Update] from Update and [View.Draw] with
// an [EbitenCanvas] from Draw.
//
// # Layout and animation
//
// [Resolve] places the ring inside the surface. [Render] is the pure core:
// given the data, geometry, animation type, progress and [Style] it returns
// a [RenderPlan], the ordered draw operations for one frame. Progress is
// driven by an [Animator] (a linear gween tween) that the View restarts on
// every data change.
//
// # Canvases
//
// A RenderPlan can be replayed on any [Canvas]: [EbitenCanvas] for live
// windows, [RasterCanvas] for PNG output without a GPU, and [SVGCanvas] for
// vector output.
//
// [Ebitengine]: https://ebitengine.org
package statsview
