package texture

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// srgbGamma linearizes sRGB texels (c^2.2) through bild's gamma adjust, which raises to 1/gamma.
const srgbGamma = 1 / 2.2

// Request asks the loader to decode one texture file. Token identifies the request so the
// receiver can drop results that a newer request has superseded.
type Request struct {
	Token      uint64
	Name       string
	Path       string
	ColorSpace ColorSpace
}

// Result is a finished Request. Err is set when the file could not be read or decoded.
type Result struct {
	Request
	Image image.Image
	Err   error
}

// Loader decodes textures on background goroutines. Results are never applied from those
// goroutines; the frame loop collects them with Poll.
type Loader struct {
	results chan Result
	wg      sync.WaitGroup
	open    func(path string) (image.Image, error)
	fetch   FetchFunc
	dir     string
}

// FetchFunc downloads url into dir and returns the local file path.
type FetchFunc func(ctx context.Context, url, dir string) (string, error)

// IsRemote reports whether path is an http(s) URL rather than a local file.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// NewLoader returns a loader that buffers up to buffer finished results between polls.
func NewLoader(buffer int) *Loader {
	if buffer <= 0 {
		buffer = 8
	}
	return &Loader{results: make(chan Result, buffer), open: imgio.Open}
}

// WithFetcher lets the loader accept http(s) URLs as request paths. Remote images are
// saved under dir before decoding, and the result carries the local path.
func (l *Loader) WithFetcher(fetch FetchFunc, dir string) *Loader {
	l.fetch, l.dir = fetch, dir
	return l
}

// Load starts decoding req.Path and returns immediately. If ctx is cancelled before the
// result is delivered, the result is dropped.
func (l *Loader) Load(ctx context.Context, req Request) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		res := Result{Request: req}
		if IsRemote(req.Path) {
			res.Path, res.Err = l.download(ctx, req)
		}
		if res.Err == nil {
			res.Image, res.Err = l.decode(res.Request)
		}
		select {
		case l.results <- res:
		case <-ctx.Done():
		}
	}()
}

func (l *Loader) download(ctx context.Context, req Request) (string, error) {
	if l.fetch == nil {
		return req.Path, fmt.Errorf("texture %q: remote images are not enabled", req.Name)
	}
	local, err := l.fetch(ctx, req.Path, l.dir)
	if err != nil {
		return req.Path, fmt.Errorf("texture %q: %w", req.Name, err)
	}
	return local, nil
}

func (l *Loader) decode(req Request) (image.Image, error) {
	img, err := l.open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", req.Name, err)
	}
	if req.ColorSpace == SRGB {
		return adjust.Gamma(img, srgbGamma), nil
	}
	return img, nil
}

// Poll hands every finished result to fn without blocking and returns how many it delivered.
// Call once per frame from the frame loop.
func (l *Loader) Poll(fn func(Result)) int {
	n := 0
	for {
		select {
		case res := <-l.results:
			fn(res)
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every started load has delivered or been dropped.
func (l *Loader) Wait() {
	l.wg.Wait()
}
