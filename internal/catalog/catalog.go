package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/wyx2333333/create-rac/internal/config"
	"go.yaml.in/yaml/v3"
)

//go:embed templates.yaml
var builtinTemplates []byte

// DefaultID is the id of the template preselected by the prompt.
const DefaultID = "default"

// Entry is one selectable template.
type Entry struct {
	ID   string `yaml:"id" mapstructure:"id"`
	Name string `yaml:"name" mapstructure:"name"`
	URL  string `yaml:"url" mapstructure:"url"`
}

// DisplayName returns the label shown in the template list.
func (e Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// Builtin returns the templates embedded in the binary.
func Builtin() ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(builtinTemplates, &entries); err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	return entries, validate(entries)
}

// Load returns the built-in templates merged with the entries from the
// "templates" config key. config.Load must have been called.
func Load() ([]Entry, error) {
	entries, err := Builtin()
	if err != nil {
		return nil, err
	}

	var overrides []Entry
	if err := config.UnmarshalKey(config.KeyTemplates, &overrides); err != nil {
		return nil, err
	}
	if err := validate(overrides); err != nil {
		return nil, fmt.Errorf("invalid template in %s: %w", config.FilePath(), err)
	}
	return Merge(entries, overrides), nil
}

// Merge appends overrides to base. An override whose id matches an existing
// entry replaces it in place, keeping the original position.
func Merge(base, overrides []Entry) []Entry {
	merged := make([]Entry, len(base), len(base)+len(overrides))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, e := range merged {
		index[e.ID] = i
	}

	for _, o := range overrides {
		if i, ok := index[o.ID]; ok && o.ID != "" {
			merged[i] = o
			continue
		}
		index[o.ID] = len(merged)
		merged = append(merged, o)
	}
	return merged
}

func validate(entries []Entry) error {
	for i, e := range entries {
		if strings.TrimSpace(e.URL) == "" {
			return fmt.Errorf("template %d (%q) has no url", i+1, e.DisplayName())
		}
	}
	return nil
}
