package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wyx2333333/create-rac/internal/branding"
	"github.com/wyx2333333/create-rac/internal/catalog"
	"github.com/wyx2333333/create-rac/internal/config"
	"github.com/wyx2333333/create-rac/internal/notify"
	"github.com/wyx2333333/create-rac/internal/pkgmanager"
	"github.com/wyx2333333/create-rac/internal/prompt"
	"github.com/wyx2333333/create-rac/internal/runtime"
	"github.com/wyx2333333/create-rac/internal/scaffold"
	"github.com/wyx2333333/create-rac/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a new React project from a template repository.

It asks for a project name and a template, clones the template, sets the
package name, writes a .env with the app title, removes the template's git
history, lockfiles, LICENSE and README, then installs dependencies with
pnpm, yarn or npm (first one found).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCreate,
	}
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT and SIGTERM cancel the command context, which ends a waiting
// prompt and stops any running git or package manager process. After the
// first signal the default handlers are restored, so a second one
// terminates the process.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	context.AfterFunc(ctx, stop)
	return execute(ctx, rootCmd, version, commit, date)
}

func execute(ctx context.Context, cmd *cobra.Command, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	cmd.Version = version
	cmd.SetVersionTemplate(versionLine() + "\n")

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(notify.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr()), err)
	}
	return err
}

// reportError prints a fatal error once. The runtime message is shown
// verbatim since it is already written for the user.
func reportError(r *notify.Reporter, err error) {
	var unsupported *runtime.UnsupportedError
	if errors.As(err, &unsupported) {
		r.Error("%s", unsupported.Error())
		return
	}
	r.Error("%v", err)
}

func runCreate(cmd *cobra.Command, args []string) error {
	config.Load()

	templates, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	p := &scaffold.Pipeline{
		Gate:      &runtime.NodeGate{},
		Updater:   updater.New(buildVersion, updater.WithRegistry(config.Registry())),
		Prompter:  prompt.New(cmd.InOrStdin(), out),
		Templates: templates,
		Cloner:    &catalog.Cloner{Stderr: errOut},
		Installer: &pkgmanager.Installer{Stdout: out, Stderr: errOut},
		Reporter:  notify.NewReporter(out, errOut),
	}

	_, err = p.Run(cmd.Context())
	return err
}
