package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stageplayjs/create-stageplay-app/internal/project"
)

func testSpec(name string) *project.Spec {
	return &project.Spec{Name: name, Dir: "/tmp/" + name}
}

func TestIndexHTML(t *testing.T) {
	artifact, err := IndexHTML(testSpec("demo"))
	require.NoError(t, err)

	assert.Equal(t, "index.html", artifact.Path)
	assert.Contains(t, artifact.Content, "<title>demo")
	assert.Contains(t, artifact.Content, `<script type="importmap">`)
	assert.Contains(t, artifact.Content, `"stageplay": "./node_modules/stageplay/dist/stageplay.esm.js"`)
	assert.Contains(t, artifact.Content, `<div id="stage"></div>`)
	assert.Contains(t, artifact.Content, `<script type="module" src="./src/app.js"></script>`)
}

func TestAppStub(t *testing.T) {
	artifact, err := AppStub(testSpec("demo"))
	require.NoError(t, err)

	assert.Equal(t, "src/app.js", artifact.Path)
	assert.Contains(t, artifact.Content, `import { Stage } from "stageplay";`)
	assert.Contains(t, artifact.Content, "const scenes = [")
	assert.Contains(t, artifact.Content, "const actions = [")
	assert.Contains(t, artifact.Content, `mount: "#stage"`)
	assert.Contains(t, artifact.Content, "stage.play();")
}

func TestWebpackConfig(t *testing.T) {
	artifact, err := WebpackConfig(testSpec("demo"))
	require.NoError(t, err)

	assert.Equal(t, "webpack.config.js", artifact.Path)
	assert.Contains(t, artifact.Content, `mode: "production"`)
	assert.Contains(t, artifact.Content, "stageplay: \"./node_modules/stageplay/dist/stageplay.esm.js\"")
	assert.Contains(t, artifact.Content, "outputModule: true")
	assert.Contains(t, artifact.Content, `library: { type: "module" }`)
	assert.Contains(t, artifact.Content, `loader: "babel-loader"`)
	assert.Contains(t, artifact.Content, "exclude: /node_modules/")
}

func TestWebpackConfigIsNameIndependent(t *testing.T) {
	a, err := WebpackConfig(testSpec("one"))
	require.NoError(t, err)
	b, err := WebpackConfig(testSpec("two"))
	require.NoError(t, err)

	assert.Equal(t, a.Content, b.Content)
}

func TestArtifacts(t *testing.T) {
	artifacts, err := Artifacts(testSpec("demo"))
	require.NoError(t, err)

	require.Len(t, artifacts, 4)

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
		assert.NotEmpty(t, a.Content)
	}

	// Manifest is written last.
	assert.Equal(t, []string{"index.html", "src/app.js", "webpack.config.js", "package.json"}, paths)
}

func TestArtifactsInterpolateName(t *testing.T) {
	artifacts, err := Artifacts(testSpec("my-show"))
	require.NoError(t, err)

	assert.Contains(t, artifacts[0].Content, "my-show")
	assert.Contains(t, artifacts[3].Content, `"name": "my-show"`)
}
