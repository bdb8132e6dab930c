// Package build exports the whole site as static files.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mdblog/internal/app"
	domainerr "mdblog/internal/domain/errors"
	"mdblog/internal/logging"
	"mdblog/internal/store"
)

type Builder struct {
	Pages  *app.Pages
	OutDir string
	Log    logging.Logger
}

type Result struct {
	Pages    int
	Skipped  []string
	Warnings []store.Warning
}

// Run renders every route into OutDir. A post that disappears between
// listing and rendering is skipped rather than failing the build.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	log := logging.OrNoOp(b.Log)
	if b.OutDir == "" {
		return nil, fmt.Errorf("build: output directory not set")
	}
	if err := os.MkdirAll(b.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir public: %w", err)
	}

	res := &Result{}
	st := store.New(
		store.WithLogger(log),
		store.WithWarningHandler(func(w store.Warning) {
			res.Warnings = append(res.Warnings, w)
		}),
	)
	pages := *b.Pages
	pages.Store = st
	pages.LiveReload = false

	rb := app.RouteBuilder{Store: st, Opts: pages.Opts}
	routes, err := rb.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}

	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := pages.Render(ctx, r)
		if errors.Is(err, domainerr.ErrNotFound) {
			log.Warn("post vanished during build", "slug", r.Slug)
			res.Skipped = append(res.Skipped, r.Slug)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", r, err)
		}
		if err := writeFile(b.OutDir, r.OutPath, body); err != nil {
			return nil, err
		}
		res.Pages++
		log.Debug("wrote page", "path", r.OutPath)
	}
	return res, nil
}

func writeFile(root, rel string, data []byte) error {
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
