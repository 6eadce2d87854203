package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Manager is a package manager binary and its install arguments.
type Manager struct {
	Name string
	Args []string
}

// Command returns the install command line, e.g. "pnpm i".
func (m Manager) Command() string {
	return strings.TrimSpace(m.Name + " " + strings.Join(m.Args, " "))
}

// Supported package managers in preference order.
var (
	PNPM = Manager{Name: "pnpm", Args: []string{"i"}}
	Yarn = Manager{Name: "yarn"}
	NPM  = Manager{Name: "npm", Args: []string{"i"}}
)

// Preference is the order in which managers are probed. The last entry is
// the fallback used when none is found.
var Preference = []Manager{PNPM, Yarn, NPM}

// Detect returns the first manager in Preference that lookPath can resolve.
// npm is returned when nothing else is found.
func Detect(lookPath func(file string) (string, error)) Manager {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, m := range Preference[:len(Preference)-1] {
		if _, err := lookPath(m.Name); err == nil {
			return m
		}
	}
	return Preference[len(Preference)-1]
}

// Installer runs the detected package manager's install command.
type Installer struct {
	// Stdout and Stderr receive the package manager output; they default to
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// LookPath overrides executable discovery (useful for testing).
	LookPath func(file string) (string, error)
}

// Detect returns the manager Install would use.
func (in *Installer) Detect() Manager {
	return Detect(in.LookPath)
}

// Install runs the install command in dir and blocks until it exits.
// A non-zero exit status is returned as an error.
func (in *Installer) Install(ctx context.Context, dir string) (Manager, error) {
	m := in.Detect()

	stdout := in.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := in.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, m.Name, m.Args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return m, fmt.Errorf("%s exited with status %d", m.Command(), exitErr.ExitCode())
		}
		return m, fmt.Errorf("running %s: %w", m.Command(), err)
	}
	return m, nil
}
