// Package gui paints frames into a raylib window.
package gui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/hanoisim/internal/config"
	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/render"
)

var ErrWindowUnavailable = errors.New("gui: window could not be created")

// Window implements presenter.Display. Every method must be called from the
// goroutine that opened it.
type Window struct {
	font        rl.Font
	defaultFont bool
	closed      bool
	logger      *log.Logger
}

// Open creates the window and loads the readout font. A missing font falls
// back to raylib's built-in one.
func Open(cfg *config.Config, logger *log.Logger) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowUnavailable
	}
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	w := &Window{logger: logger}
	w.font, w.defaultFont = loadFont(cfg.FontPath, cfg.FontSize, logger)
	return w, nil
}

func loadFont(path string, size int, logger *log.Logger) (rl.Font, bool) {
	if err := checkFont(path); err != nil {
		logger.Warn("font unavailable, using default", "path", path, "err", err)
		return rl.GetFontDefault(), true
	}
	font := rl.LoadFontEx(path, int32(size), nil, 0)
	if font.Texture.ID == 0 {
		logger.Warn("font failed to load, using default", "path", path)
		return rl.GetFontDefault(), true
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, false
}

// checkFont reports why path cannot be handed to raylib, which would
// otherwise fail with only a trace log line.
func checkFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("gui: font path %s is a directory", path)
	}
	return nil
}

func (w *Window) PollClose() bool {
	if w.closed {
		return true
	}
	rl.PollInputEvents()
	return rl.WindowShouldClose()
}

// Draw paints f and presents it; raylib blocks here to hold the target FPS.
func (w *Window) Draw(f render.Frame) {
	if w.closed {
		return
	}
	rl.BeginDrawing()
	rl.ClearBackground(color(f.Background))
	for _, r := range f.Rects {
		rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y, r.W, r.H), color(r.Color))
	}
	for _, t := range f.Texts {
		rl.DrawTextEx(w.font, t.Body, rl.NewVector2(t.X, t.Y), float32(t.Size), 1, color(t.Color))
	}
	rl.EndDrawing()
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if !w.defaultFont {
		rl.UnloadFont(w.font)
	}
	rl.CloseWindow()
}

func color(c hanoi.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
