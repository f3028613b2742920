package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/texture"
)

// gpuTexture is the uploaded copy of a texture.Map at a given map version.
type gpuTexture struct {
	tex     rl.Texture2D
	version uint64
	source  string
	space   texture.ColorSpace
}

// anisotropyFilter maps an anisotropy level to the closest raylib filter at or below it.
func anisotropyFilter(n int) rl.TextureFilterMode {
	switch {
	case n >= 16:
		return rl.FilterAnisotropic16x
	case n >= 8:
		return rl.FilterAnisotropic8x
	case n >= 4:
		return rl.FilterAnisotropic4x
	case n >= 1:
		return rl.FilterTrilinear
	default:
		return rl.FilterBilinear
	}
}

// textureFor returns the GPU texture for m, uploading it when the map's image changed and
// updating its filter when only sampling settings changed. ok is false when m has no image.
func (r *Renderer) textureFor(m *texture.Map) (rl.Texture2D, bool) {
	if m == nil || m.Image == nil {
		return rl.Texture2D{}, false
	}
	g, ok := r.textures[m]
	if ok && g.version == m.Version {
		return g.tex, true
	}
	if !ok {
		g = &gpuTexture{}
		r.textures[m] = g
	}
	if g.source != m.Source || g.space != m.ColorSpace || !rl.IsTextureValid(g.tex) {
		if rl.IsTextureValid(g.tex) {
			rl.UnloadTexture(g.tex)
		}
		img := rl.NewImageFromImage(m.Image)
		g.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if rl.IsTextureValid(g.tex) {
			rl.GenTextureMipmaps(&g.tex)
		}
		g.source, g.space = m.Source, m.ColorSpace
	}
	rl.SetTextureWrap(g.tex, rl.WrapRepeat)
	rl.SetTextureFilter(g.tex, anisotropyFilter(m.Anisotropy))
	g.version = m.Version
	return g.tex, rl.IsTextureValid(g.tex)
}
