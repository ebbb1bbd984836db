// Package app implements the viewer main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/debug"
	"github.com/Faultbox/deskscene/internal/engine/input"
	"github.com/Faultbox/deskscene/internal/engine/renderer"
	"github.com/Faultbox/deskscene/internal/engine/scene"
	"github.com/Faultbox/deskscene/internal/engine/scene/shaders"
	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/engine/view"
	"github.com/Faultbox/deskscene/internal/engine/window"
	"github.com/Faultbox/deskscene/internal/logger"
)

// App is the running viewer.
type App struct {
	config      *config.Config
	running     bool
	window      *window.Window
	renderer    *renderer.Renderer
	program     *shader.Program
	meshes      *renderer.Meshes
	scene       *scene.Scene
	view        *view.Controller
	screenshots *debug.ScreenshotCapture
	log         *zap.Logger
}

// New opens the window, sets up OpenGL and prepares the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.program, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene shader: %w", err)
	}
	a.program.Use()

	a.view = view.NewController(cfg.Camera, cfg.Ortho, cfg.Aspect())
	a.window.OnResize = a.resize

	a.meshes = renderer.NewMeshes()
	sceneCfg := scene.DefaultConfig()
	sceneCfg.TextureDir = cfg.Scene.TextureDir
	a.scene = scene.New(sceneCfg, a.program, texture.NewRegistry(renderer.TextureUploader{}), a.meshes)
	if err := a.scene.Prepare(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to prepare scene: %w", err)
	}

	a.screenshots = debug.NewScreenshotCapture(cfg.Scene.ScreenshotDir, "deskscene")

	a.log.Info("viewer initialized")
	return a, nil
}

func (a *App) resize() {
	width, height := a.window.GetSize()
	if width <= 0 || height <= 0 {
		return
	}
	a.renderer.Resize(width, height)
	a.view.SetAspect(float32(width) / float32(height))
}

// Run runs the main loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()

		// 1. Process input
		state := a.window.Poll()
		if state.Quit {
			break
		}

		// 2. Update camera
		a.view.Update(now, state)
		if a.view.CloseRequested() {
			a.running = false
		}

		// 3. Render
		a.render()

		if state.Pressed(input.KeyF12) {
			_, _ = a.screenshots.Capture(a.renderer)
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", a.view.DeltaTime()*1000),
				zap.Stringer("mode", a.view.Mode()),
			)
			a.window.SetTitle(fmt.Sprintf("%s | %s | %d fps", a.config.Window.Title, a.view.Status(), frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("main loop stopped")
	return nil
}

func (a *App) render() {
	a.renderer.Begin()
	a.program.Use()
	a.view.Apply(a.program)
	a.scene.Render()
	a.renderer.End()
}

// Close releases all resources in reverse order of creation.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.program != nil {
		a.program.Delete()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
