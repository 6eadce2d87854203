package updater

import (
	"context"
	"fmt"
)

// CheckForUpdate queries the registry once and returns the published
// version when it is newer than the running one. Network errors, non-200
// responses, malformed bodies, and unparsable versions are all treated as
// "no update".
func (u *Updater) CheckForUpdate(ctx context.Context) (latest string, ok bool) {
	tags, err := u.CheckLatestVersion(ctx)
	if err != nil {
		return "", false
	}

	available, err := IsUpdateAvailable(u.currentVersion, tags.Latest)
	if err != nil || !available {
		return "", false
	}
	return tags.Latest, true
}

// UpdateNotice returns the one-line advisory when an update is available.
func (u *Updater) UpdateNotice(ctx context.Context) (string, bool) {
	latest, ok := u.CheckForUpdate(ctx)
	if !ok {
		return "", false
	}
	return Notice(u.currentVersion, latest), true
}

// Notice formats the update advisory.
func Notice(current, latest string) string {
	return fmt.Sprintf("Update available: %s -> %s", current, latest)
}
