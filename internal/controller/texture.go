package controller

import (
	"context"

	"shape-viewer/internal/texture"
)

// OnTextureChange requests the catalog texture name for the object material.
// The material keeps its current map until the decode finishes.
func (c *Controller) OnTextureChange(ctx context.Context, name string) error {
	c.mustCurrent()
	canonical, _, err := texture.Lookup(name)
	if err != nil {
		return err
	}
	path, err := texture.Path(c.assets, canonical)
	if err != nil {
		return err
	}
	c.LoadTextureFile(ctx, canonical, path)
	return nil
}

// LoadTextureFile requests an arbitrary image file (e.g. a downloaded texture) under a display name.
func (c *Controller) LoadTextureFile(ctx context.Context, name, path string) {
	c.mustCurrent()
	c.tex.Name = name
	c.texPath = path
	c.requestTexture(ctx)
}

func (c *Controller) requestTexture(ctx context.Context) {
	if c.loader == nil || c.texPath == "" {
		return
	}
	c.texToken++
	c.loader.Load(ctx, texture.Request{
		Token:      c.texToken,
		Name:       c.tex.Name,
		Path:       c.texPath,
		ColorSpace: c.tex.ColorSpace,
	})
}

// OnTextureLoaded applies a finished decode to the object material. Only the result of the
// latest request is applied; older ones return ErrStaleTexture. A failed decode returns its
// error and leaves the material's map as it was.
func (c *Controller) OnTextureLoaded(res texture.Result) error {
	c.mustCurrent()
	if res.Token != c.texToken {
		return ErrStaleTexture
	}
	if res.Err != nil {
		return res.Err
	}
	c.material.Map.SetImage(res.Path, res.Image, res.ColorSpace)
	return nil
}

// SetTextureRepeat sets how many times the texture tiles across the surface.
func (c *Controller) SetTextureRepeat(x, y float32) {
	c.mustCurrent()
	c.tex.RepeatX, c.tex.RepeatY = x, y
	c.material.Map.SetRepeat(x, y)
}

// SetAnisotropy sets the anisotropic filtering level.
func (c *Controller) SetAnisotropy(n int) {
	c.mustCurrent()
	c.tex.Anisotropy = n
	c.material.Map.SetAnisotropy(n)
}

// SetColorSpace changes how the texture is decoded and reloads the current texture.
func (c *Controller) SetColorSpace(ctx context.Context, cs texture.ColorSpace) {
	c.mustCurrent()
	if cs == c.tex.ColorSpace {
		return
	}
	c.tex.ColorSpace = cs
	c.requestTexture(ctx)
}
