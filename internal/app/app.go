// Package app runs the viewer: window, input handling and the frame loop
// that drives the scene.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/snakecube/internal/config"
	"github.com/Faultbox/snakecube/internal/engine/input"
	"github.com/Faultbox/snakecube/internal/engine/renderer"
	"github.com/Faultbox/snakecube/internal/engine/scene"
	"github.com/Faultbox/snakecube/internal/engine/window"
	"github.com/Faultbox/snakecube/internal/logger"
)

// App is the running viewer instance.
type App struct {
	running bool
	elapsed float64

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
}

// New creates the window, initializes OpenGL and builds the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Snake Cubes",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// OpenGL state (AFTER window, since the context must exist)
	if err := renderer.Init(); err != nil {
		a.window.Close()
		return nil, err
	}

	seed := cfg.Scene.Seed
	if seed == 0 {
		// Log the derived seed so an interesting run can be reproduced.
		seed = time.Now().UnixNano()
		logger.Info("derived generation seed from clock", zap.Int64("seed", seed))
	}

	a.scene, err = scene.New(scene.Config{
		ShapeCount: cfg.Scene.ShapeCount,
		Segments:   cfg.Scene.Segments,
		Seed:       seed,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.input = input.New()

	return a, nil
}

// Run starts the main loop. It returns when the window is closed or ESC is
// pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				logger.Debug("window resized",
					zap.Int("width", event.Width),
					zap.Int("height", event.Height),
				)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					a.running = false
				}
			}
		}

		a.elapsed += dt

		renderer.BeginFrame()
		// The grid is laid out from the current drawable size, so resizes
		// need no extra bookkeeping here.
		w, h := a.window.DrawableSize()
		a.scene.RenderFrame(a.elapsed, w, h)

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up scene and window resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
