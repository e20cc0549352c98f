// Package searchpath locates programs on the PATH of an environment.
package searchpath

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/bazelify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathLookup = (*Lookup)(nil)

// Lookup implements ports.PathLookup by walking the PATH entry of an environment.
type Lookup struct {
	env []string
}

// NewLookup creates a Lookup over the environment of the current process.
func NewLookup() *Lookup {
	return &Lookup{env: os.Environ()}
}

// NewLookupWithEnv creates a Lookup over the given environment in "KEY=VALUE" format.
func NewLookupWithEnv(env []string) *Lookup {
	return &Lookup{env: env}
}

// LookPath returns the first executable named name in the PATH directories.
// Names containing a path separator are checked directly and never searched.
func (l *Lookup) LookPath(name string) (string, error) {
	if name == "" {
		return "", zerr.With(zerr.Wrap(exec.ErrNotFound, "empty program name"), "name", name)
	}

	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		if err := findExecutable(name); err != nil {
			return "", zerr.With(zerr.Wrap(err, "program is not executable"), "name", name)
		}
		return name, nil
	}

	path := pathFromEnv(l.env)
	if path == "" {
		return "", zerr.With(zerr.Wrap(exec.ErrNotFound, "PATH is not set"), "name", name)
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", zerr.With(zerr.Wrap(exec.ErrNotFound, "program not found on PATH"), "name", name)
}

func pathFromEnv(env []string) string {
	// Later entries win, as with os/exec.
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}
	return path
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
