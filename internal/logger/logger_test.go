package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC) }

	l.Log("cmd geometry -kind Cone")
	l.Logf("texture %q loaded", "Moon")

	want := []string{
		"[2026-03-01 12:30:00] cmd geometry -kind Cone",
		`[2026-03-01 12:30:00] texture "Moon" loaded`,
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestLogMemoryOnly(t *testing.T) {
	l := New("")
	for i := 0; i < MaxLines+10; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, MaxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 10"))
	assert.True(t, strings.HasSuffix(lines[MaxLines-1], "line 509"))
}
