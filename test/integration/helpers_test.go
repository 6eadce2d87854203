//go:build integration

package integration_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds .create-rac/config.yaml
	WorkDir string // working directory the project is created in
	BinDir  string // the only PATH entry: git plus fake node and npm
}

// setupTestEnv sandboxes HOME, the working directory, and PATH. PATH holds
// the host git and fake node/npm scripts only, so a pnpm or yarn installed
// on the host is never picked.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake executables are shell scripts")
	}

	gitBin, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git not found in PATH")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}

	if err := os.Symlink(gitBin, filepath.Join(env.BinDir, "git")); err != nil {
		t.Fatalf("linking git: %v", err)
	}
	writeScript(t, filepath.Join(env.BinDir, "node"), "echo v18.17.0\n")
	writeScript(t, filepath.Join(env.BinDir, "npm"), "echo \"npm $*\" > .install-args\necho \"added 0 packages\"\n")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	t.Setenv("PATH", env.BinDir)
	testChdir(t, env.WorkDir)

	return env
}

// setupTemplateRepo creates a committed git repository that looks like a
// freshly published template. Returns the repository path.
func setupTemplateRepo(t *testing.T, gitBin string) string {
	t.Helper()

	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, "package.json"), `{
  "name": "react-awesome-template",
  "version": "0.0.0",
  "private": true,
  "scripts": {
    "dev": "vite"
  }
}
`)
	writeFile(t, filepath.Join(repo, "src", "main.jsx"), "console.log('hello')\n")
	writeFile(t, filepath.Join(repo, "yarn.lock"), "# yarn lockfile v1\n")
	writeFile(t, filepath.Join(repo, "LICENSE"), "MIT License\n")
	writeFile(t, filepath.Join(repo, "README.md"), "# react-awesome-template\n")

	git := func(args ...string) {
		t.Helper()
		base := []string{"-c", "user.name=test", "-c", "user.email=test@example.com", "-c", "commit.gpgsign=false"}
		cmd := exec.Command(gitBin, append(base, args...)...)
		cmd.Dir = repo
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
		}
	}
	git("init", "-q")
	git("add", ".")
	git("commit", "-q", "-m", "initial")

	return repo
}

// setupRegistry serves dist-tags with the given latest version.
func setupRegistry(t *testing.T, latest string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/dist-tags") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latest":"` + latest + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func writeConfig(t *testing.T, homeDir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(homeDir, ".create-rac", "config.yaml"), content)
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// redirectStdio points os.Stdin at input and captures stdout and stderr
// into files. The returned func reads what was captured.
func redirectStdio(t *testing.T, input string) func() (stdout, stderr string) {
	t.Helper()
	dir := t.TempDir()

	in := filepath.Join(dir, "stdin")
	writeFile(t, in, input)
	inFile, err := os.Open(in)
	if err != nil {
		t.Fatalf("opening stdin file: %v", err)
	}
	outFile, err := os.Create(filepath.Join(dir, "stdout"))
	if err != nil {
		t.Fatalf("creating stdout file: %v", err)
	}
	errFile, err := os.Create(filepath.Join(dir, "stderr"))
	if err != nil {
		t.Fatalf("creating stderr file: %v", err)
	}

	origIn, origOut, origErr := os.Stdin, os.Stdout, os.Stderr
	os.Stdin, os.Stdout, os.Stderr = inFile, outFile, errFile
	t.Cleanup(func() {
		os.Stdin, os.Stdout, os.Stderr = origIn, origOut, origErr
		inFile.Close()
		outFile.Close()
		errFile.Close()
	})

	return func() (string, string) {
		out, _ := os.ReadFile(outFile.Name())
		errOut, _ := os.ReadFile(errFile.Name())
		return string(out), string(errOut)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q, got:\n%s", path, substr, data)
	}
}
