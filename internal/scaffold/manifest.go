package scaffold

import (
	"encoding/json"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
)

// Manifest models the generated package.json: the descriptor the package
// manager and the generated scripts operate on.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ManifestVersion is the version every freshly scaffolded project starts at.
const ManifestVersion = "0.1.0"

// NewManifest builds the manifest for a project. The stageplay library is
// the single runtime dependency and rides "latest"; the toolchain
// devDependencies are pinned to caret ranges.
func NewManifest(name string) *Manifest {
	return &Manifest{
		Name:    name,
		Version: ManifestVersion,
		Type:    "module",
		Scripts: map[string]string{
			"build": "webpack",
			"watch": "webpack --watch",
			"start": "serve .",
			"dev":   "npm-run-all --parallel watch start",
		},
		Dependencies: map[string]string{
			"stageplay": "latest",
		},
		DevDependencies: map[string]string{
			"@babel/core":        "^7.24.0",
			"@babel/preset-env":  "^7.24.0",
			"babel-loader":       "^9.1.3",
			"livereload":         "^0.9.3",
			"npm-run-all":        "^4.1.5",
			"serve":              "^14.2.1",
			"webpack":            "^5.90.0",
			"webpack-cli":        "^5.1.4",
			"webpack-dev-server": "^5.0.2",
		},
	}
}

// Render serializes the manifest as indented JSON with a trailing newline,
// the shape npm itself writes.
func (m *Manifest) Render() (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", errors.NewIOError("E_MANIFEST", "failed to serialize manifest", err)
	}

	return string(data) + "\n", nil
}
