package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/wyx2333333/create-rac/internal/branding"
)

// DistTagsURL returns the dist-tags endpoint for the configured package.
func (u *Updater) DistTagsURL() string {
	return fmt.Sprintf("%s/-/package/%s/dist-tags", u.registry, u.packageName)
}

// CheckLatestVersion fetches the dist-tags of the package from the registry.
func (u *Updater) CheckLatestVersion(ctx context.Context) (*DistTags, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.DistTagsURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dist-tags: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var tags DistTags
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("parsing dist-tags JSON: %w", err)
	}
	if tags.Latest == "" {
		return nil, fmt.Errorf("dist-tags has no latest version")
	}
	return &tags, nil
}
