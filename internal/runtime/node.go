package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeMajor is the lowest Node.js major version the templates support.
const MinNodeMajor = 14

// UnsupportedError reports a missing or too old Node.js installation.
type UnsupportedError struct {
	// Version is the raw version string reported by node, empty when node
	// could not be run.
	Version string
	Err     error
}

func (e *UnsupportedError) Error() string {
	if e.Version == "" {
		msg := fmt.Sprintf("Node.js was not found.\nCreate React App requires Node %d or higher.\nPlease install Node.", MinNodeMajor)
		if e.Err != nil {
			msg += fmt.Sprintf(" (%v)", e.Err)
		}
		return msg
	}
	return fmt.Sprintf("You are running Node %s.\nCreate React App requires Node %d or higher.\nPlease update your version of Node.", e.Version, MinNodeMajor)
}

func (e *UnsupportedError) Unwrap() error { return e.Err }

// CheckNodeVersion returns an *UnsupportedError when the leading numeric
// component of version is below MinNodeMajor. Versions are compared as
// integers, so "9.0.0" is older than "14.0.0".
func CheckNodeVersion(version string) error {
	version = strings.TrimSpace(version)
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return &UnsupportedError{Version: version, Err: fmt.Errorf("parsing node version %q: %w", version, err)}
	}
	if v.Major() < MinNodeMajor {
		return &UnsupportedError{Version: version}
	}
	return nil
}

// NodeGate verifies the host Node.js version.
type NodeGate struct {
	// LookPath and Output can be replaced in tests; they default to
	// exec.LookPath and running the binary with "--version".
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, bin string) ([]byte, error)
}

// Check resolves node on PATH, reads `node --version`, and validates it.
func (g *NodeGate) Check(ctx context.Context) error {
	lookPath := g.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	output := g.Output
	if output == nil {
		output = nodeVersionOutput
	}

	nodeBin, err := lookPath("node")
	if err != nil {
		return &UnsupportedError{Err: err}
	}

	out, err := output(ctx, nodeBin)
	if err != nil {
		return &UnsupportedError{Err: fmt.Errorf("running %s --version: %w", nodeBin, err)}
	}
	return CheckNodeVersion(string(out))
}

func nodeVersionOutput(ctx context.Context, bin string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}
