package cli

import (
	"fmt"

	"github.com/wyx2333333/create-rac/internal/branding"
)

func versionLine() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", branding.CLIName(), buildVersion, buildCommit, buildDate)
}
