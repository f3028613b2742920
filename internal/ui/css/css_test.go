package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `/* overlay
   panel */
.status { background: #181818; left: 12px; }
.status-title, .status-row { color: #d0d0d0 }
#status { top: 10% ; }
div { color: red; }
.status-row { color: #ffffff; font-size: 18px; }
`

func TestParse(t *testing.T) {
	sheet, err := Parse(sample)
	require.NoError(t, err)
	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".status", ".status-title", ".status-row", "#status", ".status-row"}, sels)
	assert.Equal(t, "10%", sheet.Rules[3].Props["top"])
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(".a { color: #fff; }\n\n.b { color: #000;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	_, err = Parse(".a { color: #fff; }\n/* x\n */ stray")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	sheet, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
}

func TestMatch(t *testing.T) {
	sheet, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"color": "#ffffff", "font-size": "18px"}, sheet.Match("status-row", ""))
	assert.Equal(t, map[string]string{"background": "#181818", "left": "12px", "top": "10%"}, sheet.Match("status", "status"))
	assert.Empty(t, sheet.Match("missing", ""))

	var none *Stylesheet
	assert.Empty(t, none.Match("status", ""))
}

func TestUnits(t *testing.T) {
	n, ok := Px(" 24px ")
	assert.True(t, ok)
	assert.Equal(t, int32(24), n)
	n, ok = Px("7")
	assert.True(t, ok)
	assert.Equal(t, int32(7), n)
	_, ok = Px("wide")
	assert.False(t, ok)

	n, ok = Pct("50%")
	assert.True(t, ok)
	assert.Equal(t, int32(50), n)
	for _, bad := range []string{"50", "101%", "-1%", "%"} {
		_, ok = Pct(bad)
		assert.False(t, ok, bad)
	}
}
