package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions orders two npm-style versions.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
func CompareVersions(current, latest string) (int, error) {
	cv, err := parseVersion(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := parseVersion(latest)
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.Compare(lv), nil
}

// IsUpdateAvailable reports whether latest is strictly newer than current.
func IsUpdateAvailable(current, latest string) (bool, error) {
	cmp, err := CompareVersions(current, latest)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

// parseVersion accepts "1.2.3", "v1.2.3" and npm's "=1.2.3" spellings.
func parseVersion(version string) (*semver.Version, error) {
	version = strings.TrimSpace(version)
	version = strings.TrimLeft(version, "=v")
	if version == "" {
		return nil, fmt.Errorf("empty version")
	}
	return semver.StrictNewVersion(version)
}
