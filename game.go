package statsview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor Color

	// Font overrides the label font; nil uses Go Regular.
	Font *Font

	// Script, when set, is stepped once per frame. Its screenshot steps
	// write PNGs to ScreenshotDir ("screenshots" when empty).
	Script        *ScriptRunner
	ScreenshotDir string
}

// Game hosts a View inside an ebiten game loop. Clicking the window restarts
// the reveal animation.
type Game struct {
	view   *View
	cfg    RunConfig
	canvas *EbitenCanvas
	fps    fpsOverlay

	screenshotQueue []string
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps view for use with ebiten.RunGame.
func NewGame(view *View, cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &Game{
		view:   view,
		cfg:    cfg,
		canvas: NewEbitenCanvas(nil, cfg.Font),
	}
	if cfg.Script != nil && cfg.Script.OnScreenshot == nil {
		cfg.Script.OnScreenshot = func(label string) error {
			g.Screenshot(label)
			return nil
		}
	}
	return g
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Draw.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s := g.cfg.Script; s != nil && !s.Done() {
		s.Step(g.view)
		if err := s.Err(); err != nil {
			return err
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		g.view.Restart()
	}
	g.view.Update(dt)
	if g.cfg.ShowFPS {
		g.fps.update(float64(dt))
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.premultiplied())
	g.canvas.Target = screen
	g.view.Draw(g.canvas)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The chart always fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// flushScreenshots writes every queued label as a PNG of the current frame.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	img := captureScreen(screen)
	for _, label := range g.screenshotQueue {
		if _, err := WriteFramePNG(g.cfg.ScreenshotDir, label, img); err != nil {
			_, _ = fmt.Fprintf(logOutput, "[statsview] screenshot: %v\n", err)
		}
	}
	g.screenshotQueue = g.screenshotQueue[:0]
}

// Run opens a window and runs view until the window is closed.
func Run(view *View, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 400
	}
	if cfg.Height <= 0 {
		cfg.Height = 400
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(NewGame(view, cfg)); err != nil {
		return fmt.Errorf("statsview: run: %w", err)
	}
	return nil
}
