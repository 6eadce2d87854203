package updater

import (
	"net/http"
	"strings"

	"github.com/wyx2333333/create-rac/internal/branding"
)

// DistTags is the body returned by the registry dist-tags endpoint.
type DistTags struct {
	Latest string `json:"latest"`
	Next   string `json:"next,omitempty"`
}

// Updater looks up the latest published version of the CLI.
type Updater struct {
	currentVersion string
	httpClient     *http.Client
	registry       string
	packageName    string
}

// Option configures an Updater.
type Option func(*Updater)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(u *Updater) {
		u.httpClient = c
	}
}

// WithRegistry sets the npm registry base URL.
func WithRegistry(registry string) Option {
	return func(u *Updater) {
		if registry != "" {
			u.registry = strings.TrimRight(registry, "/")
		}
	}
}

// WithPackage overrides the package name looked up in the registry.
func WithPackage(name string) Option {
	return func(u *Updater) {
		if name != "" {
			u.packageName = name
		}
	}
}

// New creates an Updater with the given current version and options.
// The default client has no timeout; cancel the context to abort a check.
func New(currentVersion string, opts ...Option) *Updater {
	u := &Updater{
		currentVersion: currentVersion,
		httpClient:     http.DefaultClient,
		registry:       branding.RegistryURL(),
		packageName:    branding.PackageName(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CurrentVersion returns the version this updater was created with.
func (u *Updater) CurrentVersion() string {
	return u.currentVersion
}
