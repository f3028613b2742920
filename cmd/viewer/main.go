package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/commands"
	"shape-viewer/internal/controller"
	"shape-viewer/internal/debug"
	"shape-viewer/internal/download"
	"shape-viewer/internal/env"
	"shape-viewer/internal/fonts"
	"shape-viewer/internal/gizmo"
	"shape-viewer/internal/graphics"
	"shape-viewer/internal/logger"
	"shape-viewer/internal/panel"
	"shape-viewer/internal/scene"
	"shape-viewer/internal/terminal"
	"shape-viewer/internal/texture"
	"shape-viewer/internal/ui"
	"shape-viewer/internal/viewerconfig"
)

const (
	downloadDir = "textures/downloaded"
	stylePath   = "ui/viewer.css"
	loadBuffer  = 8
)

func main() {
	log := logger.New(logger.DefaultPath)
	if err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}
	configPath := env.Get(env.ConfigPath, viewerconfig.DefaultPath)
	prefs, err := viewerconfig.Load(configPath)
	if err != nil {
		log.Log(err.Error())
	}
	err = viewerconfig.Apply(&prefs, viewerconfig.Overrides{
		AssetsDir: env.Get(env.AssetsDir, ""),
		Geometry:  env.Get(env.Geometry, ""),
		Texture:   env.Get(env.Texture, ""),
	})
	if err != nil {
		log.Logf("config overrides: %v", err)
	}
	opts, err := viewerconfig.Options(prefs)
	if err != nil {
		log.Logf("%v; using defaults", err)
		opts = controller.DefaultOptions()
		opts.AssetsDir = prefs.AssetsDir
	}
	log.Logf("geometry %s, method %s, texture %s, assets %s", opts.Geometry, opts.Mode, opts.Texture.Name, opts.AssetsDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := texture.NewLoader(loadBuffer).WithFetcher(download.Image, filepath.Join(opts.AssetsDir, downloadDir))
	opts.Loader = loader

	scn := scene.New(opts.AssetsDir)
	scn.SetGridVisible(prefs.GridVisible)
	gz := gizmo.New(&scn.Camera)
	scn.Overlay = gz
	ctrl := controller.New(scn, gz, opts)
	if err := ctrl.OnTextureChange(ctx, opts.Texture.Name); err != nil {
		log.Logf("texture: %v", err)
	}

	reg := commands.NewRegistry()
	panel.Register(ctx, reg, ctrl, panel.Env{Lights: scn, Camera: scn})
	viewerconfig.Register(reg, configPath, &prefs, ctrl)
	term := terminal.New(log, reg)
	if err := term.BindHotkeys(panel.Hotkeys); err != nil {
		log.Log(err.Error())
	}
	scn.InputBlocked = term.IsOpen

	engine := ui.New()
	if err := engine.LoadCSS(filepath.Join(opts.AssetsDir, stylePath)); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Logf("ui: %v; using the built-in style", err)
		}
		if err := engine.LoadDefaultStyle(); err != nil {
			log.Logf("ui: %v", err)
		}
	}
	status := ui.NewStatus()
	engine.SetNodes(status.Nodes())
	dbg := debug.New(prefs.ShowFPS, prefs.ShowMemAlloc)
	fontLoaded := false

	update := func() {
		term.Update()
		if !term.IsOpen() {
			gz.Update()
		}
		scn.Update()
		loader.Poll(func(res texture.Result) {
			switch err := ctrl.OnTextureLoaded(res); {
			case errors.Is(err, controller.ErrStaleTexture):
			case err != nil:
				log.Logf("texture %s: %v", res.Name, err)
			default:
				log.Logf("texture %s loaded from %s", res.Name, res.Path)
			}
		})
		ctrl.Tick(rl.GetTime() * 1000)
		status.Update(ui.View{Snapshot: ctrl.Snapshot(), Lights: scn.Lights(), FOV: scn.FOV()})
	}
	draw := func() {
		if !fontLoaded {
			fontLoaded = true
			path, err := fonts.Find(filepath.Join(opts.AssetsDir, "fonts"), prefs.Font)
			if err == nil {
				err = engine.LoadFont(path)
			}
			if err != nil {
				log.Logf("font: %v; using the default font", err)
			} else {
				term.SetFont(engine.Font())
				dbg.SetFont(engine.Font())
			}
		}
		scn.Draw()
		engine.Draw()
		term.Draw()
		dbg.Draw()
	}
	graphics.Run(graphics.Window{
		Width:      int32(prefs.WindowWidth),
		Height:     int32(prefs.WindowHeight),
		Title:      "shape-viewer",
		Background: scene.ClearColor,
		OnClose: func() {
			cancel()
			loader.Wait()
			engine.Unload()
			scn.Unload()
		},
	}, update, draw)
}
