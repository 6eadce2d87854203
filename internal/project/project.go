// Package project prepares a freshly cloned template for its new owner:
// it enters the project directory, writes the .env app title, and removes
// the template's VCS metadata, lockfiles, license, and readme.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnvFile is the name of the environment file written into the project.
const EnvFile = ".env"

// Lockfiles lists the package-manager lockfiles removed from a template so
// the detected package manager can generate its own.
var Lockfiles = []string{"pnpm-lock.yaml", "yarn.lock", "package-lock.json"}

// CleanupTargets returns every path, relative to the project root, that
// Clean removes.
func CleanupTargets() []string {
	targets := []string{".git"}
	targets = append(targets, Lockfiles...)
	return append(targets, "LICENSE", "README.md")
}

// Enter resolves dir to an absolute path and makes it the process working
// directory. It returns the absolute path.
func Enter(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	if err := os.Chdir(abs); err != nil {
		return "", fmt.Errorf("entering project directory: %w", err)
	}
	return abs, nil
}

// EnvContent returns the .env body for a project title. Vite exposes the
// variable to the app as import.meta.env.VITE_APP_TITLE.
func EnvContent(projectName string) string {
	return fmt.Sprintf("VITE_APP_TITLE = '%s'", projectName)
}

// WriteEnv writes the .env file into dir, replacing any existing one.
func WriteEnv(dir, projectName string) error {
	path := filepath.Join(dir, EnvFile)
	if err := os.WriteFile(path, []byte(EnvContent(projectName)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Clean removes the cleanup targets from dir and returns the ones that
// existed. Missing targets are skipped, so repeated calls are safe.
func Clean(dir string) ([]string, error) {
	var removed []string
	for _, name := range CleanupTargets() {
		path := filepath.Join(dir, name)
		if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", path, err)
		}
		removed = append(removed, name)
	}
	return removed, nil
}
