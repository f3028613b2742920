package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tiles/brick.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		case "/named":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Content-Disposition", `attachment; filename="moss wall"`)
			_, _ = w.Write([]byte("jpg-bytes"))
		case "/page":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	dir := t.TempDir()

	p, err := Image(context.Background(), srv.URL+"/tiles/brick.png?v=2", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "brick.png"), p)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))

	p, err = Image(context.Background(), srv.URL+"/named", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "moss_wall.jpg"), p)

	_, err = Image(context.Background(), srv.URL+"/page", dir)
	assert.True(t, errors.Is(err, ErrNotImage))

	_, err = Image(context.Background(), srv.URL+"/missing.png", dir)
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestImageCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Image(ctx, "http://127.0.0.1:1/x.png", t.TempDir())
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "texture", sanitizeFilename(""))
	assert.Equal(t, "a_b.c", sanitizeFilename("a b.c"))
	assert.Len(t, sanitizeFilename(strings.Repeat("a", 200)), 96)
}
