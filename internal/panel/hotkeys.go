package panel

// Hotkeys maps key names to the command lines they run while the terminal is closed.
// Names are upper-case letters or one of Space, Backspace and F1 through F12.
var Hotkeys = map[string]string{
	"G":         "geometry -next",
	"M":         "method -next",
	"Space":     "anim -toggle",
	"N":         "anim -next-type",
	"T":         "affine -mode translate",
	"R":         "affine -mode rotate",
	"S":         "affine -mode scale",
	"X":         "affine -mode none",
	"Backspace": "reset",
}
