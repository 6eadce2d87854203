//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wyx2333333/create-rac/internal/branding"
	"github.com/wyx2333333/create-rac/internal/cli"
	"github.com/wyx2333333/create-rac/internal/config"
)

// TestFullFlowCreateProject runs the command end to end:
// version gate -> update notice -> prompts -> clone -> patch -> clean -> install.
func TestFullFlowCreateProject(t *testing.T) {
	gitBin, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git not found in PATH")
	}
	repo := setupTemplateRepo(t, gitBin)
	registryURL := setupRegistry(t, "9.9.9")

	env := setupTestEnv(t)
	writeConfig(t, env.HomeDir, "templates:\n  - id: default\n    name: Local template\n    url: "+repo+"\n")
	t.Setenv(branding.EnvVar(config.KeyRegistry), registryURL)

	origArgs := os.Args
	os.Args = []string{"create-rac"}
	t.Cleanup(func() { os.Args = origArgs })

	captured := redirectStdio(t, "demo-app\n\n")

	if err := cli.Execute("1.0.0", "abc1234", "2026-01-02"); err != nil {
		_, stderr := captured()
		t.Fatalf("Execute: %v\nstderr:\n%s", err, stderr)
	}
	stdout, stderr := captured()

	projectDir := filepath.Join(env.WorkDir, "demo-app")

	// Manifest renamed, other members kept.
	assertFileContains(t, filepath.Join(projectDir, "package.json"), `"name": "demo-app"`)
	assertFileContains(t, filepath.Join(projectDir, "package.json"), `"dev": "vite"`)

	// .env written without a trailing newline.
	envData, err := os.ReadFile(filepath.Join(projectDir, ".env"))
	if err != nil {
		t.Fatalf("reading .env: %v", err)
	}
	if got, want := string(envData), "VITE_APP_TITLE = 'demo-app'"; got != want {
		t.Errorf(".env = %q, want %q", got, want)
	}

	// Template artifacts removed, sources kept.
	for _, name := range []string{".git", "yarn.lock", "LICENSE", "README.md"} {
		assertFileNotExists(t, filepath.Join(projectDir, name))
	}
	assertFileExists(t, filepath.Join(projectDir, "src", "main.jsx"))
	entries, err := os.ReadDir(env.WorkDir)
	if err != nil {
		t.Fatalf("reading work dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("work dir should hold only the project, got %d entries", len(entries))
	}

	// npm was the only manager on PATH and ran inside the project.
	assertFileContains(t, filepath.Join(projectDir, ".install-args"), "npm i")

	for _, want := range []string{"Project Name", "Local template", "Complete initialization!", "Complete installation!", "Job done!"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if !strings.Contains(stderr, "Update available: 1.0.0 -> 9.9.9") {
		t.Errorf("stderr missing update notice:\n%s", stderr)
	}
}
