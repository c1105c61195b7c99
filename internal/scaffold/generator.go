// Package scaffold materializes the starter files for a new stageplay
// project. Templates are pure functions from a project spec to an artifact,
// so each file's content can be tested without touching the filesystem; the
// Generator is the only part that writes.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
	"github.com/stageplayjs/create-stageplay-app/internal/logging"
	"github.com/stageplayjs/create-stageplay-app/internal/project"
)

// Generator writes the rendered artifacts into the target directory.
type Generator struct {
	logger logging.Logger

	// Progress can be redirected for testing; defaults to os.Stdout.
	Progress io.Writer
}

// NewGenerator creates a generator with the given logger.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{
		logger:   logger.WithComponent("emitter"),
		Progress: os.Stdout,
	}
}

// Emit creates the project root and src directory, then writes each starter
// file exactly once. The caller is expected to have run the collision guard
// first; Emit itself refuses to proceed if the root cannot be created.
//
// A failure partway leaves whatever was already written in place. There is
// no rollback; the error names the artifact that failed.
func (g *Generator) Emit(ctx context.Context, spec *project.Spec) ([]Artifact, error) {
	artifacts, err := Artifacts(spec)
	if err != nil {
		return nil, err
	}

	if err := os.Mkdir(spec.Dir, 0o755); err != nil {
		if os.IsExist(err) {
			return nil, errors.NewExistsError(spec.Name)
		}
		return nil, errors.NewIOError("E_MKDIR", "failed to create project directory", err).WithPath(spec.Dir)
	}

	if err := os.Mkdir(filepath.Join(spec.Dir, "src"), 0o755); err != nil {
		return nil, errors.NewIOError("E_MKDIR", "failed to create src directory", err).WithPath(spec.Dir)
	}

	g.logger.Debug(ctx, "created project directories", "dir", spec.Dir)

	for _, artifact := range artifacts {
		target := filepath.Join(spec.Dir, filepath.FromSlash(artifact.Path))
		if err := os.WriteFile(target, []byte(artifact.Content), 0o644); err != nil {
			return nil, errors.NewIOError("E_WRITE", "failed to write artifact", err).WithPath(artifact.Path)
		}

		g.logger.Debug(ctx, "wrote artifact", "path", artifact.Path, "bytes", len(artifact.Content))
		fmt.Fprintf(g.progress(), "✓ Created %s\n", filepath.Join(spec.Name, filepath.FromSlash(artifact.Path)))
	}

	return artifacts, nil
}

func (g *Generator) progress() io.Writer {
	if g.Progress != nil {
		return g.Progress
	}
	return os.Stdout
}
