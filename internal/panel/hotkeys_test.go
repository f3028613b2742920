package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotkeysRun(t *testing.T) {
	f := newFixture(t)
	for key, line := range Hotkeys {
		require.NoError(t, f.run(t, line), "hotkey %s", key)
	}
}

func TestHotkeyNames(t *testing.T) {
	for key := range Hotkeys {
		switch key {
		case "Space", "Backspace":
			continue
		}
		assert.Len(t, key, 1)
		assert.True(t, key[0] >= 'A' && key[0] <= 'Z', key)
	}
}
