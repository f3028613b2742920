package ui

import (
	_ "embed"
	"fmt"

	"shape-viewer/internal/controller"
	"shape-viewer/internal/lights"
	"shape-viewer/internal/pose"
	"shape-viewer/internal/ui/css"
)

//go:embed viewer.css
var defaultCSS string

const statusRowHeight = 24

// LoadDefaultStyle installs the built-in stylesheet.
func (e *Engine) LoadDefaultStyle() error {
	sheet, err := css.Parse(defaultCSS)
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// View is everything the status panel shows.
type View struct {
	controller.Snapshot
	Lights [lights.Count]lights.Directional
	FOV    float32
}

// Status is the settings overlay: the current object, texture, animation, lights and camera.
// Labels are only reformatted when the view changes.
type Status struct {
	panel *Node
	title *Node
	rows  []*Node
	last  View
	valid bool
}

// NewStatus creates the panel nodes, styled by .status, .status-title and .status-row.
func NewStatus() *Status {
	s := &Status{
		panel: NewNode("panel", "status", "", ""),
		title: NewNode("label", "status-title", "", "Settings"),
	}
	for i := 0; i < len(statusLines(View{})); i++ {
		row := NewNode("label", "status-row", "", "")
		row.Offset.Y = float32(i * statusRowHeight)
		s.rows = append(s.rows, row)
	}
	return s
}

// Nodes returns the panel's nodes in draw order, for Engine.SetNodes.
func (s *Status) Nodes() []*Node {
	return append([]*Node{s.panel, s.title}, s.rows...)
}

// SetVisible shows or hides the whole panel.
func (s *Status) SetVisible(visible bool) {
	for _, n := range s.Nodes() {
		n.Hidden = !visible
	}
}

// Visible reports whether the panel is shown.
func (s *Status) Visible() bool {
	return !s.panel.Hidden
}

// Update refreshes the labels from v. Call once per frame before Engine.Draw.
func (s *Status) Update(v View) {
	if s.valid && v == s.last {
		return
	}
	s.last, s.valid = v, true
	for i, line := range statusLines(v) {
		s.rows[i].Text = line
	}
}

func vec(v pose.Vec3) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", v.X, v.Y, v.Z)
}

func statusLines(v View) []string {
	anim := "stopped"
	if v.Animation.Playing {
		anim = "playing"
	}
	lines := []string{
		"Geometry: " + v.Geometry.String(),
		"Method: " + v.Mode.String(),
		"Transform: " + v.Transform.String(),
		fmt.Sprintf("Animation: %s, %s x%.2f", anim, v.Animation.Motion, v.Animation.Speed),
		"Position: " + vec(v.Pose.Position),
		"Rotation: " + vec(v.Pose.Rotation),
		"Scale: " + vec(v.Pose.Scale),
		fmt.Sprintf("Texture: %s (%s) %gx%g aniso %d", v.Texture.Name, v.Texture.ColorSpace,
			v.Texture.RepeatX, v.Texture.RepeatY, v.Texture.Anisotropy),
	}
	for i, l := range v.Lights {
		lines = append(lines, fmt.Sprintf("Light %d: %s x%.1f at %s", i+1, lights.Hex(l.Color), l.Intensity, vec(l.Position)))
	}
	return append(lines, fmt.Sprintf("FOV: %.0f", v.FOV))
}
