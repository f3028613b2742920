package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/lights"
	"shape-viewer/internal/ui/css"
)

// ComputedStyle holds the resolved values a node is drawn with.
// LeftPct/TopPct place the node at a percentage of the free screen space; -1 means Left/Top are pixels.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32 // text inset from the node's top-left
	FontSize   int32 // 0 = engine default
}

// DefaultComputedStyle is transparent with white text, no border, zero size and 4px padding.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{Color: rl.White, Border: rl.Black, LeftPct: -1, TopPct: -1, Padding: 4}
}

// ParseHexColor parses #RGB or #RRGGBB into an opaque rl.Color.
func ParseHexColor(s string) (rl.Color, bool) {
	if !strings.HasPrefix(strings.TrimSpace(s), "#") {
		return rl.Black, false
	}
	c, err := lights.ParseHex(s)
	if err != nil {
		return rl.Black, false
	}
	return rl.NewColor(c.R, c.G, c.B, c.A), true
}

// position parses a pixel or percentage offset into px or pct.
func position(v string, px, pct *int32) {
	if n, ok := css.Pct(v); ok {
		*pct = n
	} else if n, ok := css.Px(v); ok {
		*px = n
	}
}

// ResolveProps builds a ComputedStyle from matched declarations. Unknown keys and bad values are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border, out.HasBorder = c, true
			}
		case "width":
			if n, ok := css.Px(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := css.Px(v); ok {
				out.Height = n
			}
		case "left", "x":
			position(v, &out.Left, &out.LeftPct)
		case "top", "y":
			position(v, &out.Top, &out.TopPct)
		case "padding":
			if n, ok := css.Px(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := css.Px(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
