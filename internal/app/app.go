// Package app runs one icon generation: render and write the icon set,
// then optionally produce the preview sheet.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/slidey/slidey-icons/internal/iconset"
	"github.com/slidey/slidey-icons/internal/preview"
)

const previewTitle = "Slidey app icon"

type App struct {
	Config Config
	Logger Logger

	// Out receives the user-facing progress lines.
	Out io.Writer

	// ShowFramebuffer displays the preview sheet; defaults to
	// preview.ShowOnFramebuffer.
	ShowFramebuffer func(path string, img image.Image, logger preview.Logger) error
}

func New(cfg Config) *App {
	return &App{
		Config:          cfg,
		Logger:          NoopLogger{},
		Out:             os.Stdout,
		ShowFramebuffer: preview.ShowOnFramebuffer,
	}
}

// Run generates the icon set and any requested previews. Any failure
// aborts the run.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	gen := iconset.NewGenerator(app.Config.OutputDir)
	gen.Jobs = app.Config.Jobs
	gen.Logger = app.Logger
	gen.OnWritten = func(res iconset.Result) {
		app.printf("Generated: %s\n", res.Entry.Filename)
	}

	app.Logger.Infof("app", "generating icon set into %s", app.Config.OutputDir)
	results, err := gen.Generate(ctx)
	if err != nil {
		app.Logger.Errorf("app", "icon set generation failed: %v", err)
		return err
	}

	if app.Config.PreviewPath != "" || app.Config.FramebufferPath != "" {
		if err := app.preview(results); err != nil {
			return err
		}
	}

	app.printf("Icon generation complete!\n")
	return nil
}

func (app *App) preview(results []iconset.Result) error {
	items := make([]preview.Item, 0, len(results))
	for _, res := range results {
		items = append(items, preview.Item{Label: res.Entry.Filename, Image: res.Image})
	}
	sheet := preview.NewSheet(previewTitle)
	sheet.Logger = app.Logger
	img := sheet.Render(items)

	if path := app.Config.PreviewPath; path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create preview dir %s: %w", dir, err)
			}
		}
		if err := iconset.WritePNG(path, img); err != nil {
			return fmt.Errorf("write preview %s: %w", path, err)
		}
		app.printf("Preview: %s\n", path)
	}

	if path := app.Config.FramebufferPath; path != "" {
		show := app.ShowFramebuffer
		if show == nil {
			show = preview.ShowOnFramebuffer
		}
		if err := show(path, img, app.Logger); err != nil {
			app.Logger.Errorf("app", "framebuffer preview failed: %v", err)
			return err
		}
	}
	return nil
}

func (app *App) printf(format string, args ...interface{}) {
	if app.Out == nil {
		return
	}
	fmt.Fprintf(app.Out, format, args...)
}
