package terminal

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/commands"
	"shape-viewer/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when terminal is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxHistory       = 64
)

var (
	// Reused every frame when drawing the terminal bar to avoid per-frame color allocations.
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the command bar at the bottom of the screen, shown/hidden with ESC.
// When open it handles typing, history and drawing. When closed, Hotkeys run their command lines.
// Lines are executed through the command registry; the "cmd " prefix is optional.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	history  []string
	histPos  int

	// Hotkeys maps raylib key codes to command lines run while the terminal is closed.
	Hotkeys map[int32]string
}

// keyCode resolves a key name: an upper-case letter or digit, Space, Backspace or F1-F12.
func keyCode(name string) (int32, bool) {
	switch name {
	case "Space":
		return rl.KeySpace, true
	case "Backspace":
		return rl.KeyBackspace, true
	}
	if len(name) == 1 && (name[0] >= 'A' && name[0] <= 'Z' || name[0] >= '0' && name[0] <= '9') {
		return int32(name[0]), true
	}
	var n int32
	if _, err := fmt.Sscanf(name, "F%d", &n); err == nil && n >= 1 && n <= 12 {
		return rl.KeyF1 + n - 1, true
	}
	return 0, false
}

// BindHotkeys adds named key bindings (see keyCode) to Hotkeys.
func (t *Terminal) BindHotkeys(bindings map[string]string) error {
	if t.Hotkeys == nil {
		t.Hotkeys = make(map[int32]string, len(bindings))
	}
	for name, line := range bindings {
		key, ok := keyCode(name)
		if !ok {
			return fmt.Errorf("terminal: unknown key %q", name)
		}
		t.Hotkeys[key] = line
	}
	return nil
}

// New returns a new Terminal that logs lines and runs commands through reg. It starts closed.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the terminal is visible and capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the terminal bar. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Run executes one command line, logging the line and any error. Lines without the "cmd "
// prefix are run as commands too. "help" lists the commands; "help <name>" or -h lists its flags.
func (t *Terminal) Run(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	t.log.Log(line)
	if !strings.HasPrefix(line, "cmd ") {
		line = "cmd " + line
	}
	args, _ := commands.Parse(line)
	if len(args) > 0 && args[0] == "help" {
		t.help(args[1:])
		return
	}
	if err := t.reg.Execute(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			t.help(args[:1])
			return
		}
		t.log.Log(err.Error())
	}
}

func (t *Terminal) help(names []string) {
	if len(names) == 0 {
		t.log.Log("commands: " + strings.Join(t.reg.Names(), ", ") + " (help <command> for flags)")
		return
	}
	lines, ok := t.reg.Usage(names[0])
	if !ok {
		t.log.Logf("unknown command %q", names[0])
		return
	}
	for _, l := range lines {
		t.log.Log("  " + l)
	}
}

// Update handles ESC (toggle open/closed), hotkeys while closed, and typing, history,
// backspace and enter while open. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		t.inputBuf = ""
		return
	}
	if !t.open {
		for key, line := range t.Hotkeys {
			if rl.IsKeyPressed(key) {
				t.Run(line)
			}
		}
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) && t.histPos > 0 {
		t.histPos--
		t.inputBuf = t.history[t.histPos]
	}
	if rl.IsKeyPressed(rl.KeyDown) && t.histPos < len(t.history) {
		t.histPos++
		t.inputBuf = ""
		if t.histPos < len(t.history) {
			t.inputBuf = t.history[t.histPos]
		}
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.history = append(t.history, line)
		if len(t.history) > maxHistory {
			t.history = t.history[len(t.history)-maxHistory:]
		}
		t.histPos = len(t.history)
		t.Run(line)
	}
}

// Draw draws the terminal bar at the bottom when open, and the recent log lines above it.
// Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D overlay coordinate system.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		t.text(line, padding, y, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), float32(fontSize), 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), int32(fontSize), c)
}
