// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the full documentation pipeline: obtain the
// reflection tree, load custom docs, convert, assemble and write.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/docgen/internal/custom"
	"github.com/pdiddy/docgen/internal/output"
	"github.com/pdiddy/docgen/internal/parse"
	"github.com/pdiddy/docgen/internal/reflection"
	"github.com/pdiddy/docgen/internal/typedoc"
	"github.com/pdiddy/docgen/pkg/types"
)

// ErrNoReflectionInput is returned when neither an existing reflection
// file nor source directories are configured.
var ErrNoReflectionInput = errors.New("no reflection input: set existingOutput or source")

// Generator holds the collaborators of a run. The zero value is not
// usable; construct with New.
type Generator struct {
	Version string
	Logger  *slog.Logger

	detectRunner func() (typedoc.Runner, error)
	now          func() time.Time
}

// New returns a Generator stamping output with version.
func New(version string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		Version:      version,
		Logger:       logger,
		detectRunner: typedoc.DetectRunner,
		now:          time.Now,
	}
}

// Run executes the pipeline for cfg and returns the assembled output. The
// output file is written only when cfg.Output is set.
func (g *Generator) Run(ctx context.Context, cfg types.Config) (types.Output, error) {
	cfg = cfg.Normalize()

	if cfg.ExistingOutput == "" && len(cfg.Source) == 0 {
		return types.Output{}, ErrNoReflectionInput
	}
	if cfg.Custom != "" {
		if _, err := custom.DetectFormat(cfg.Custom); err != nil {
			return types.Output{}, err
		}
	}

	var (
		root *reflection.Node
		docs types.CustomDocs
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		root, err = g.loadReflection(gctx, cfg)
		return err
	})
	if cfg.Custom != "" {
		grp.Go(func() error {
			g.Logger.Info("Loading custom docs files...")
			var err error
			docs, err = custom.Load(gctx, cfg.Custom, cfg.Root, g.Logger)
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return types.Output{}, err
	}

	g.Logger.Info(fmt.Sprintf("Serializing documentation with format version %d...", types.FormatVersion))
	code, err := parse.Generate(root)
	if err != nil {
		return types.Output{}, fmt.Errorf("converting reflection tree: %w", err)
	}
	g.Logger.Debug("Converted reflection tree",
		"classes", len(code.Classes), "typedefs", len(code.Typedefs), "namespaces", len(code.Namespaces))

	out := output.Assemble(code, docs, g.Version, g.now())

	if cfg.Output != "" {
		g.Logger.Info(fmt.Sprintf("Writing to %s...", cfg.Output))
		if err := output.WriteFile(cfg.Output, out, cfg.Spaces); err != nil {
			return types.Output{}, err
		}
	}

	g.Logger.Info("Done!")
	return out, nil
}

// loadReflection reads the existing reflection file when configured and
// otherwise runs TypeDoc over the source directories.
func (g *Generator) loadReflection(ctx context.Context, cfg types.Config) (*reflection.Node, error) {
	if cfg.ExistingOutput != "" {
		g.Logger.Info("Parsing using existing output file...")
		return reflection.Load(cfg.ExistingOutput)
	}

	runner, err := g.detectRunner()
	if err != nil {
		return nil, err
	}
	g.Logger.Info("Parsing source files...", "runner", runner.Name(), "sources", cfg.Source)
	return runner.Generate(ctx, cfg.Source, cfg.TSConfig)
}
