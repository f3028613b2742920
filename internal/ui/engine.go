// Package ui draws CSS-styled 2D overlays over the 3D view. Status is the settings overlay.
package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/ui/css"
)

const defaultFontSize = 20

// Engine draws nodes in order, styled by a stylesheet. Styles are resolved once per
// SetNodes/SetStylesheet and reused every frame; only node text and visibility change per frame.
type Engine struct {
	sheet  *css.Stylesheet
	nodes  []*Node
	styles []ComputedStyle
	stale  bool
	font   rl.Font
}

// New returns an engine with no stylesheet and no nodes.
func New() *Engine {
	return &Engine{}
}

// LoadCSS replaces the stylesheet with the file at path.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := css.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.stale = true
}

// SetNodes replaces the drawn nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.stale = true
}

// LoadFont loads a TTF/OTF font for all text. Call after the window exists.
// On failure the previous font (or raylib's default) stays in use.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return fmt.Errorf("load font %s: %w", path, os.ErrNotExist)
	}
	e.Unload()
	e.font = f
	return nil
}

// Font returns the loaded font; its texture ID is zero when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// Unload frees the loaded font, if any.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

func (e *Engine) resolve() {
	e.styles = e.styles[:0]
	for _, n := range e.nodes {
		style := ResolveProps(e.sheet.Match(n.Class, n.ID))
		if style.Width > 0 {
			n.Bounds.Width = float32(style.Width)
		}
		if style.Height > 0 {
			n.Bounds.Height = float32(style.Height)
		}
		n.Bounds.X, n.Bounds.Y = float32(style.Left), float32(style.Top)
		e.styles = append(e.styles, style)
	}
	e.stale = false
}

// Draw draws every visible node: background, 1px border, then text.
func (e *Engine) Draw() {
	if e.stale {
		e.resolve()
	}
	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		if n.Hidden {
			continue
		}
		style := e.styles[i]
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}
		x += int32(n.Offset.X)
		y += int32(n.Offset.Y)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		size := style.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		tx, ty := x+style.Padding, y+style.Padding
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, n.Text, rl.NewVector2(float32(tx), float32(ty)), float32(size), 1, style.Color)
		} else {
			rl.DrawText(n.Text, tx, ty, size, style.Color)
		}
	}
}
