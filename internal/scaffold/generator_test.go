package scaffold

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
	"github.com/stageplayjs/create-stageplay-app/internal/logging"
	"github.com/stageplayjs/create-stageplay-app/internal/project"
)

func newTestGenerator() (*Generator, *bytes.Buffer) {
	var progress bytes.Buffer
	gen := NewGenerator(logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelError,
		Output: io.Discard,
	}))
	gen.Progress = &progress
	return gen, &progress
}

func TestEmit(t *testing.T) {
	tempDir := t.TempDir()
	spec := &project.Spec{Name: "demo", Dir: filepath.Join(tempDir, "demo")}

	gen, progress := newTestGenerator()

	artifacts, err := gen.Emit(context.Background(), spec)
	require.NoError(t, err)
	require.Len(t, artifacts, 4)

	assert.DirExists(t, spec.Dir)
	assert.DirExists(t, filepath.Join(spec.Dir, "src"))
	assert.FileExists(t, filepath.Join(spec.Dir, "index.html"))
	assert.FileExists(t, filepath.Join(spec.Dir, "src", "app.js"))
	assert.FileExists(t, filepath.Join(spec.Dir, "webpack.config.js"))
	assert.FileExists(t, filepath.Join(spec.Dir, "package.json"))

	// Exactly the four files plus src, nothing else.
	entries, err := os.ReadDir(spec.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	assert.Contains(t, progress.String(), "✓ Created")
	assert.Contains(t, progress.String(), filepath.Join("demo", "index.html"))
}

func TestEmitWritesInterpolatedContent(t *testing.T) {
	tempDir := t.TempDir()
	spec := &project.Spec{Name: "demo", Dir: filepath.Join(tempDir, "demo")}

	gen, _ := newTestGenerator()
	_, err := gen.Emit(context.Background(), spec)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(spec.Dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>demo")

	manifest, err := os.ReadFile(filepath.Join(spec.Dir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"name": "demo"`)
}

func TestEmitRefusesExistingDirectory(t *testing.T) {
	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "demo")
	require.NoError(t, os.Mkdir(dir, 0o755))

	marker := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("original"), 0o644))

	gen, _ := newTestGenerator()
	_, err := gen.Emit(context.Background(), &project.Spec{Name: "demo", Dir: dir})

	require.Error(t, err)
	assert.True(t, errors.IsExists(err))

	// The first run's output is untouched.
	content, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEmitTwiceFailsSecondTime(t *testing.T) {
	tempDir := t.TempDir()
	spec := &project.Spec{Name: "demo", Dir: filepath.Join(tempDir, "demo")}

	gen, _ := newTestGenerator()

	_, err := gen.Emit(context.Background(), spec)
	require.NoError(t, err)

	_, err = gen.Emit(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, errors.IsExists(err))
}
