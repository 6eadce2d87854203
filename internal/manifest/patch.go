package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileName is the manifest file name inside a project.
const FileName = "package.json"

// ErrInvalidManifest is returned when package.json is not a JSON object.
var ErrInvalidManifest = errors.New("invalid package.json")

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	prettyOptions = &pretty.Options{
		// Zero width keeps every array element on its own line.
		Width:  0,
		Indent: "  ",
	}
)

// PathIn returns the manifest path for a project directory.
func PathIn(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// LineEnding returns the platform line terminator appended after the
// manifest.
func LineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// PatchName sets the top-level name of the manifest at path and rewrites
// the file in place, preserving its permissions.
func PatchName(path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	data, err := readFile(path)
	if err != nil {
		return err
	}

	patched, err := SetName(data, name)
	if err != nil {
		return fmt.Errorf("patching %s: %w", path, err)
	}

	if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SetName returns data with its top-level name member set to name,
// indented with two spaces and terminated by LineEnding. Applying it twice
// with the same name yields the same bytes.
func SetName(data []byte, name string) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidManifest)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidManifest)
	}

	out, err := sjson.SetBytes(data, "name", name)
	if err != nil {
		return nil, fmt.Errorf("setting name: %w", err)
	}

	out = pretty.PrettyOptions(out, prettyOptions)
	out = bytes.TrimRight(out, "\r\n")
	return append(out, LineEnding()...), nil
}

// Name returns the top-level name of a manifest document.
func Name(data []byte) string {
	return gjson.GetBytes(bytes.TrimPrefix(data, utf8BOM), "name").String()
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
