// Package project resolves the target of a scaffolding run from the CLI
// arguments and guards against clobbering an existing path. Both checks run
// before anything touches the filesystem.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
)

// Spec describes a single scaffolding run. It is computed once at startup
// and read-only afterwards.
type Spec struct {
	// Name is the project name exactly as the caller supplied it.
	Name string

	// Dir is the absolute path of the directory to be created.
	Dir string
}

// Resolve derives a Spec from the positional CLI arguments. The first
// argument is the project name; the target directory is name joined onto the
// current working directory.
func Resolve(args []string) (*Spec, error) {
	if len(args) == 0 {
		return nil, errors.NewUsageError("E_NO_NAME", "project name is required")
	}

	name := args[0]
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.NewIOError("E_CWD", "failed to resolve working directory", err)
	}

	dir, err := filepath.Abs(filepath.Join(cwd, name))
	if err != nil {
		return nil, errors.NewIOError("E_ABS", "failed to resolve target path", err)
	}

	return &Spec{Name: name, Dir: dir}, nil
}

// ValidateName rejects names that would escape the working directory or
// produce a directory the rest of the toolchain cannot handle. The name is
// otherwise passed through verbatim: it is interpolated literally into the
// generated files, so characters that are merely unusual stay the caller's
// choice.
func ValidateName(name string) error {
	if name == "" {
		return errors.NewUsageError("E_NO_NAME", "project name is required")
	}

	if strings.ContainsAny(name, "/\\") || strings.ContainsRune(name, os.PathSeparator) {
		return errors.NewUsageError("E_BAD_NAME",
			fmt.Sprintf("project name %q must not contain path separators", name))
	}

	if name == "." || name == ".." || strings.Contains(name, "..") {
		return errors.NewUsageError("E_BAD_NAME",
			fmt.Sprintf("project name %q must not traverse directories", name))
	}

	if strings.HasPrefix(name, "-") {
		return errors.NewUsageError("E_BAD_NAME",
			fmt.Sprintf("project name %q must not start with a dash", name))
	}

	if strings.ContainsRune(name, 0) {
		return errors.NewUsageError("E_BAD_NAME", "project name must not contain NUL bytes")
	}

	return nil
}

// CheckAvailable fails if anything already occupies dir. A file and a
// directory are rejected equally; an empty directory counts as occupied.
func CheckAvailable(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return errors.NewExistsError(filepath.Base(dir))
	}
	if os.IsNotExist(err) {
		return nil
	}

	return errors.NewIOError("E_STAT", "failed to check target path", err).WithPath(dir)
}
