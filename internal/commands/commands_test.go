package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"hello there", nil, false},
		{"cmd", nil, false},
		{"cmd ", nil, true},
		{"cmd geometry -kind Sphere", []string{"geometry", "-kind", "Sphere"}, true},
		{`cmd anim -type "rotate y"`, []string{"anim", "-type", "rotate y"}, true},
		{`cmd texture -name "Earth Night"  -repeat-x 2`, []string{"texture", "-name", "Earth Night", "-repeat-x", "2"}, true},
		{`cmd texture -name ""`, []string{"texture", "-name", ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			args, ok := Parse(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("geometry", flag.ContinueOnError)
	kind := fs.String("kind", "", "geometry kind")
	next := fs.Bool("next", false, "cycle")
	var ran []string
	r.Register("geometry", fs, func() error {
		if *next {
			ran = append(ran, "next")
			return nil
		}
		ran = append(ran, *kind)
		return nil
	})

	require.NoError(t, r.Execute([]string{"geometry", "-kind", "Cone"}))
	require.NoError(t, r.Execute([]string{"geometry", "-next"}))
	require.NoError(t, r.Execute([]string{"geometry"}))
	assert.Equal(t, []string{"Cone", "next", ""}, ran, "flags reset between runs")

	err := r.Execute([]string{"teleport"})
	assert.True(t, errors.Is(err, ErrUnknownCommand))

	err = r.Execute([]string{"geometry", "-bogus"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "geometry")

	assert.Error(t, r.Execute(nil))
	assert.Equal(t, []string{"geometry"}, r.Names())
}

func TestExecuteLine(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register("reset", flag.NewFlagSet("reset", flag.ContinueOnError), func() error {
		called = true
		return nil
	})

	ok, err := r.ExecuteLine("just chatting")
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.False(t, called)

	ok, err = r.ExecuteLine("cmd reset")
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestUsage(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("camera", flag.ContinueOnError)
	fs.Float64("fov", 45, "field of view in degrees")
	r.Register("camera", fs, func() error { return nil })

	lines, ok := r.Usage("camera")
	require.True(t, ok)
	assert.Equal(t, []string{"-fov: field of view in degrees"}, lines)
	_, ok = r.Usage("zoom")
	assert.False(t, ok)

	err := r.Execute([]string{"camera", "-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
