package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Width, Height int32
	Title         string
	Background    rl.Color
	// OnClose runs after the loop ends while the GL context still exists (e.g. to unload textures).
	OnClose func()
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls update
// (input, texture completions, animation), then clears to w.Background and calls draw.
// ESC is reserved for the terminal, so the window only closes via its close button.
func Run(w Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	if w.OnClose != nil {
		w.OnClose()
	}
}
