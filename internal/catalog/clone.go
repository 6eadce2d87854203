package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrGitNotFound is returned when git is not on PATH.
var ErrGitNotFound = errors.New("git is required but not found in PATH")

// Cloner fetches template repositories with the git CLI.
type Cloner struct {
	// Stderr receives git's progress output. Nil discards it; the output is
	// still included in the error on failure.
	Stderr io.Writer
}

// Clone clones repoURL into targetDir. The target must not exist.
//
// The clone is atomic: git writes into a fresh hidden staging directory
// next to the target, which is renamed into place on success. Only the
// staging directory created by this call is ever removed, so a failed clone
// leaves neither a half-populated project nor touches existing files.
func (c *Cloner) Clone(ctx context.Context, repoURL, targetDir string) error {
	gitBin, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}

	if _, err := os.Lstat(targetDir); err == nil {
		return fmt.Errorf("target directory %s already exists", targetDir)
	}

	parent := filepath.Dir(targetDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}
	staging, err := os.MkdirTemp(parent, "."+filepath.Base(targetDir)+"-*")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	checkout := filepath.Join(staging, "checkout")

	var output strings.Builder
	cmd := exec.CommandContext(ctx, gitBin, "clone", "--", repoURL, checkout)
	cmd.Stdout = &output
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(c.Stderr, &output)
	} else {
		cmd.Stderr = &output
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cloning %s: %w\n%s", repoURL, err, strings.TrimSpace(output.String()))
	}

	if err := os.Rename(checkout, targetDir); err != nil {
		return fmt.Errorf("finalizing clone: %w", err)
	}
	return nil
}
