package scaffold

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManifest(t *testing.T) {
	m := NewManifest("demo")

	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Equal(t, "module", m.Type)
}

func TestManifestScripts(t *testing.T) {
	m := NewManifest("demo")

	require.Len(t, m.Scripts, 4)
	assert.Equal(t, "webpack", m.Scripts["build"])
	assert.Equal(t, "webpack --watch", m.Scripts["watch"])
	assert.Equal(t, "serve .", m.Scripts["start"])
	assert.Equal(t, "npm-run-all --parallel watch start", m.Scripts["dev"])
}

func TestManifestDependencies(t *testing.T) {
	m := NewManifest("demo")

	require.Len(t, m.Dependencies, 1)
	assert.Equal(t, "latest", m.Dependencies["stageplay"])

	require.Len(t, m.DevDependencies, 9)
	expected := []string{
		"@babel/core",
		"@babel/preset-env",
		"babel-loader",
		"livereload",
		"npm-run-all",
		"serve",
		"webpack",
		"webpack-cli",
		"webpack-dev-server",
	}
	for _, dep := range expected {
		version, ok := m.DevDependencies[dep]
		require.True(t, ok, "missing devDependency %s", dep)
		assert.True(t, strings.HasPrefix(version, "^"), "%s should be a caret range, got %s", dep, version)
	}
}

func TestManifestRender(t *testing.T) {
	content, err := NewManifest("demo").Render()
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(content, "\n"))
	assert.True(t, strings.HasPrefix(content, "{\n  \"name\": \"demo\""))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(content), &parsed))

	assert.Equal(t, "demo", parsed["name"])
	assert.Equal(t, "module", parsed["type"])

	scripts, ok := parsed["scripts"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, scripts, 4)
	for _, script := range []string{"build", "watch", "start", "dev"} {
		assert.Contains(t, scripts, script)
	}

	deps, ok := parsed["dependencies"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, deps, 1)
}
