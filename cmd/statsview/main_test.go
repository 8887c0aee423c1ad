package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/statsview"
	"github.com/phanxgames/statsview/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Total:         1000,
		Values:        []float64{250, 250, 250, 250},
		Width:         400,
		Height:        400,
		Colors:        []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"},
		AnimationType: "sequential",
		Background:    "#ffffff",
	}
}

func TestFormatOp(t *testing.T) {
	op := statsview.DrawOp{
		Kind:       statsview.OpArc,
		StartAngle: -90,
		SweepAngle: 90,
		Segment:    2,
		Stroke:     statsview.Stroke{Color: statsview.Color{B: 1, A: 1}, Width: 5},
	}
	got := formatOp(op)
	for _, want := range []string{"arc", "#2", "start=-90.00°", "sweep=90.00°", "#0000ff"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatOp = %q, missing %q", got, want)
		}
	}

	text := formatOp(statsview.DrawOp{Kind: statsview.OpText, Text: "25.00%", TextStyle: statsview.TextStyle{Size: 40}})
	if !strings.Contains(text, `"25.00%"`) || !strings.Contains(text, "size=40.0") {
		t.Errorf("formatOp(text) = %q", text)
	}
}

func TestPlanAt(t *testing.T) {
	cfg = testConfig()
	plan, err := planAt(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Label != "100.00%" {
		t.Errorf("Label = %q", plan.Label)
	}
	if n := len(plan.Arcs()); n != 3 {
		t.Errorf("arcs = %d, want 3", n)
	}
	if !plan.HasMarker() {
		t.Error("sequential plan should carry the marker")
	}
}

func TestNewView(t *testing.T) {
	cfg = testConfig()
	v, err := newView()
	if err != nil {
		t.Fatal(err)
	}
	if w, h := v.Size(); w != 400 || h != 400 {
		t.Errorf("Size = %vx%v", w, h)
	}
	if !v.Animating() || v.Progress() != 0 {
		t.Error("new view should start its reveal at 0")
	}
}

func TestSVGCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	confPath := filepath.Join(dir, "statsview.yaml")
	conf := "total: 3500\nvalues: [450, 500, 350, 750]\ncolors: [\"#2196f3\"]\n"
	if err := os.WriteFile(confPath, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "chart.svg")

	rootCmd.SetArgs([]string{"svg", "--config", confPath, "--progress", "1", "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, "58.57%") || !strings.Contains(s, "stroke:#2196f3") {
		t.Errorf("unexpected svg:\n%s", s)
	}
}
