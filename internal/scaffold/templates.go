package scaffold

import (
	"bytes"
	"text/template"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
	"github.com/stageplayjs/create-stageplay-app/internal/project"
)

// Artifact is one file to be written into the new project, with its path
// relative to the project root. Artifacts are produced fully rendered and
// never mutated afterwards.
type Artifact struct {
	Path    string
	Content string
}

// TemplateContext holds the values interpolated into the starter files.
// Interpolation is literal substitution; the name has already passed
// project.ValidateName and is otherwise the caller's responsibility.
type TemplateContext struct {
	ProjectName string
}

// Starter file templates. The generated project targets the stageplay
// browser library: the HTML document maps the bare "stageplay" specifier to
// the installed ESM bundle, the app stub is a minimal working scene, and
// the webpack config rebundles the library itself as an ES module.

const indexHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.ProjectName}} &middot; stageplay</title>
    <script type="importmap">
      {
        "imports": {
          "stageplay": "./node_modules/stageplay/dist/stageplay.esm.js"
        }
      }
    </script>
  </head>
  <body>
    <div id="stage"></div>
    <script type="module" src="./src/app.js"></script>
  </body>
</html>
`

const appStubTemplate = `// {{.ProjectName}} — a starter stageplay scene.
// Edit the scenes and actions below, then run "npm run dev".
import { Stage } from "stageplay";

const scenes = [
  { id: "intro", elements: ["title", "subtitle"] },
  { id: "main", elements: ["canvas"] },
];

const actions = [
  { scene: "intro", run: "fadeIn" },
  { scene: "main", run: "play" },
];

const stage = new Stage({
  mount: "#stage",
  scenes,
  actions,
});

stage.play();
`

const webpackConfigTemplate = `export default {
  mode: "production",
  entry: {
    stageplay: "./node_modules/stageplay/dist/stageplay.esm.js",
  },
  output: {
    filename: "[name].bundle.js",
    library: { type: "module" },
    clean: true,
  },
  experiments: {
    outputModule: true,
  },
  module: {
    rules: [
      {
        test: /\.js$/,
        exclude: /node_modules/,
        use: {
          loader: "babel-loader",
          options: {
            presets: ["@babel/preset-env"],
          },
        },
      },
    ],
  },
};
`

// IndexHTML renders the HTML entry document.
func IndexHTML(spec *project.Spec) (Artifact, error) {
	return renderArtifact("index.html", indexHTMLTemplate, spec)
}

// AppStub renders the starter application module.
func AppStub(spec *project.Spec) (Artifact, error) {
	return renderArtifact("src/app.js", appStubTemplate, spec)
}

// WebpackConfig renders the bundler configuration.
func WebpackConfig(spec *project.Spec) (Artifact, error) {
	return renderArtifact("webpack.config.js", webpackConfigTemplate, spec)
}

// PackageManifest renders the package.json artifact.
func PackageManifest(spec *project.Spec) (Artifact, error) {
	content, err := NewManifest(spec.Name).Render()
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{Path: "package.json", Content: content}, nil
}

// Artifacts renders every starter file for the given spec, in the order
// they are written to disk. The manifest comes last.
func Artifacts(spec *project.Spec) ([]Artifact, error) {
	renderers := []func(*project.Spec) (Artifact, error){
		IndexHTML,
		AppStub,
		WebpackConfig,
		PackageManifest,
	}

	artifacts := make([]Artifact, 0, len(renderers))
	for _, render := range renderers {
		artifact, err := render(spec)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func renderArtifact(path, content string, spec *project.Spec) (Artifact, error) {
	tmpl, err := template.New(path).Parse(content)
	if err != nil {
		return Artifact{}, errors.NewIOError("E_TEMPLATE_PARSE", "failed to parse template", err).WithPath(path)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, TemplateContext{ProjectName: spec.Name}); err != nil {
		return Artifact{}, errors.NewIOError("E_TEMPLATE_EXEC", "failed to render template", err).WithPath(path)
	}

	return Artifact{Path: path, Content: buf.String()}, nil
}
