// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package typedoc detects and runs the TypeDoc CLI to produce the
// reflection JSON for a set of source directories.
package typedoc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docgen/internal/reflection"
)

const (
	binTypedoc = "typedoc"
	binNpx     = "npx"
)

// Runner produces a reflection tree from TypeScript sources.
type Runner interface {
	// Name returns the command line used to invoke TypeDoc.
	Name() string

	// Generate runs TypeDoc over sources and returns the decoded reflection
	// root. tsconfig is passed through when non-empty.
	Generate(ctx context.Context, sources []string, tsconfig string) (*reflection.Node, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}

// runner invokes TypeDoc through bin, prefixed by prefix (e.g. ["typedoc"]
// when going through npx).
type runner struct {
	bin    string
	prefix []string
	exec   executor
}

func (r *runner) Name() string {
	return strings.Join(append([]string{r.bin}, r.prefix...), " ")
}

func (r *runner) Generate(ctx context.Context, sources []string, tsconfig string) (*reflection.Node, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("running %s: no source directories", r.Name())
	}

	dir, err := os.MkdirTemp("", "docgen-typedoc-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)
	jsonPath := filepath.Join(dir, "reflection.json")

	args := make([]string, 0, len(r.prefix)+len(sources)+4)
	args = append(args, r.prefix...)
	args = append(args, "--json", jsonPath)
	if tsconfig != "" {
		args = append(args, "--tsconfig", tsconfig)
	}
	args = append(args, sources...)

	var stderr bytes.Buffer
	if err := r.exec.Run(ctx, r.bin, args, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("running %s: %w: %s", r.Name(), err, msg)
		}
		return nil, fmt.Errorf("running %s: %w", r.Name(), err)
	}

	root, err := reflection.Load(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s output: %w", r.Name(), err)
	}
	return root, nil
}

var defaultExec = &osExecutor{}

// DetectRunner prefers a typedoc binary on PATH and falls back to npx.
// Returns an error if neither is available.
func DetectRunner() (Runner, error) {
	return detectRunner(defaultExec)
}

func detectRunner(exec executor) (Runner, error) {
	if _, err := exec.LookPath(binTypedoc); err == nil {
		return &runner{bin: binTypedoc, exec: exec}, nil
	}
	if _, err := exec.LookPath(binNpx); err == nil {
		return &runner{bin: binNpx, prefix: []string{binTypedoc}, exec: exec}, nil
	}
	return nil, fmt.Errorf(
		"no TypeDoc runner available: neither %s nor %s found on PATH",
		binTypedoc, binNpx,
	)
}
