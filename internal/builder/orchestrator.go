package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
	"github.com/stageplayjs/create-stageplay-app/internal/logging"
	"github.com/stageplayjs/create-stageplay-app/internal/project"
)

// Step names in pipeline order.
const (
	StepInstall = "install"
	StepBuild   = "build"
)

// Outcome records the exit status of one orchestrated step.
type Outcome struct {
	Step     string
	ExitCode int
}

// Options configures an Orchestrator.
type Options struct {
	PackageManager string
	SkipInstall    bool
	SkipBuild      bool
}

// Orchestrator runs the install and build steps inside the freshly
// scaffolded project. Either step exiting non-zero aborts the run; nothing
// is retried and nothing already written is rolled back.
type Orchestrator struct {
	runner Runner
	opts   Options
	logger logging.Logger

	// Progress can be redirected for testing; defaults to os.Stdout.
	Progress io.Writer

	lookPath func(string) (string, error)
}

// New creates an orchestrator driving the given runner.
func New(runner Runner, opts Options, logger logging.Logger) *Orchestrator {
	if opts.PackageManager == "" {
		opts.PackageManager = "npm"
	}

	return &Orchestrator{
		runner:   runner,
		opts:     opts,
		logger:   logger.WithComponent("orchestrator"),
		Progress: os.Stdout,
		lookPath: exec.LookPath,
	}
}

// Preflight verifies the package manager binary is resolvable. Run before
// any filesystem write so a missing npm fails the run with a clean message
// instead of a half-scaffolded directory.
func (o *Orchestrator) Preflight() error {
	if o.opts.SkipInstall && o.opts.SkipBuild {
		return nil
	}

	if _, err := o.lookPath(o.opts.PackageManager); err != nil {
		return errors.NewConfigError("E_PM_MISSING",
			fmt.Sprintf("package manager %q not found in PATH", o.opts.PackageManager))
	}

	return nil
}

// Run executes install then build in spec.Dir and returns the outcome of
// every step that ran. The first non-zero exit stops the pipeline and is
// surfaced as a subprocess error alongside the outcomes so far.
func (o *Orchestrator) Run(ctx context.Context, spec *project.Spec) ([]Outcome, error) {
	type step struct {
		name string
		args []string
		skip bool
	}

	steps := []step{
		{name: StepInstall, args: []string{"install"}, skip: o.opts.SkipInstall},
		{name: StepBuild, args: []string{"run", "build"}, skip: o.opts.SkipBuild},
	}

	outcomes := make([]Outcome, 0, len(steps))
	for _, s := range steps {
		if s.skip {
			o.logger.Debug(ctx, "skipping step", "step", s.name)
			continue
		}

		fmt.Fprintf(o.progress(), "→ Running %s %s\n", o.opts.PackageManager, strings.Join(s.args, " "))
		o.logger.Debug(ctx, "starting step", "step", s.name, "dir", spec.Dir)

		exitCode, err := o.runner.Run(ctx, o.opts.PackageManager, s.args, spec.Dir)
		if err != nil {
			return outcomes, err
		}

		outcomes = append(outcomes, Outcome{Step: s.name, ExitCode: exitCode})
		if exitCode != 0 {
			return outcomes, errors.NewSubprocessError(s.name, exitCode)
		}

		o.logger.Debug(ctx, "step complete", "step", s.name)
	}

	return outcomes, nil
}

func (o *Orchestrator) progress() io.Writer {
	if o.Progress != nil {
		return o.Progress
	}
	return os.Stdout
}
