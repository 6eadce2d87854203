package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/wyx2333333/create-rac/internal/catalog"
	"github.com/wyx2333333/create-rac/internal/manifest"
	"github.com/wyx2333333/create-rac/internal/notify"
	"github.com/wyx2333333/create-rac/internal/pkgmanager"
	"github.com/wyx2333333/create-rac/internal/project"
)

// VersionGate aborts the run when the host runtime is unsupported.
type VersionGate interface {
	Check(ctx context.Context) error
}

// UpdateNotifier returns an advisory line when a newer release exists. It
// must not fail.
type UpdateNotifier interface {
	UpdateNotice(ctx context.Context) (string, bool)
}

// Prompter collects the interactive answers. Prompts return ctx.Err() when
// ctx is cancelled while waiting for input.
type Prompter interface {
	ProjectName(ctx context.Context) (string, error)
	Template(ctx context.Context, entries []catalog.Entry) (catalog.Entry, error)
}

// Cloner fetches a template repository into a new directory.
type Cloner interface {
	Clone(ctx context.Context, repoURL, targetDir string) error
}

// Installer installs the project's dependencies in dir.
type Installer interface {
	Install(ctx context.Context, dir string) (pkgmanager.Manager, error)
}

// RunContext is the state accumulated while the pipeline runs.
type RunContext struct {
	ProjectName string
	Template    catalog.Entry
	// ProjectDir is the absolute project path, set when the pipeline enters
	// the project.
	ProjectDir string
	// Removed lists the template artifacts deleted during cleanup.
	Removed []string
	Manager pkgmanager.Manager
}

// Pipeline wires the stage collaborators together.
type Pipeline struct {
	Gate      VersionGate
	Updater   UpdateNotifier
	Prompter  Prompter
	Templates []catalog.Entry
	Cloner    Cloner
	Installer Installer
	Reporter  *notify.Reporter

	stage Stage
}

// Stage returns the stage the pipeline last reached.
func (p *Pipeline) Stage() Stage {
	return p.stage
}

// Run executes every stage in order. On error the pipeline moves to
// StageFailed and the returned RunContext holds whatever was collected.
func (p *Pipeline) Run(ctx context.Context) (*RunContext, error) {
	rc := &RunContext{}
	p.stage = StageStart

	if err := p.run(ctx, rc); err != nil {
		failedAt := p.stage
		p.stage = StageFailed
		return rc, fmt.Errorf("after stage %s: %w", failedAt, err)
	}
	p.stage = StageDone
	return rc, nil
}

func (p *Pipeline) run(ctx context.Context, rc *RunContext) error {
	r := p.Reporter

	if err := p.Gate.Check(ctx); err != nil {
		return err
	}
	p.advance(StageVersionChecked)

	if p.Updater != nil {
		if notice, ok := p.Updater.UpdateNotice(ctx); ok {
			r.Warn("%s", notice)
		}
	}
	p.advance(StageUpdateChecked)

	name, err := p.Prompter.ProjectName(ctx)
	if err != nil {
		return err
	}
	rc.ProjectName = name
	p.advance(StageNameChosen)

	tmpl, err := p.Prompter.Template(ctx, p.Templates)
	if err != nil {
		return err
	}
	rc.Template = tmpl
	p.advance(StageTemplateChosen)

	r.Start("Initializing...")

	if err := p.Cloner.Clone(ctx, tmpl.URL, name); err != nil {
		return err
	}
	p.advance(StageCloned)

	manifestPath := manifest.PathIn(name)
	if err := manifest.PatchName(manifestPath, name); err != nil {
		return err
	}
	p.warnManifestIssues(manifestPath)
	p.advance(StageManifestPatched)

	dir, err := project.Enter(name)
	if err != nil {
		return err
	}
	rc.ProjectDir = dir

	if err := project.WriteEnv(dir, name); err != nil {
		return err
	}
	removed, err := project.Clean(dir)
	rc.Removed = removed
	if err != nil {
		return err
	}
	p.advance(StageCleaned)

	r.Succeed("Complete initialization!")

	r.Start("Installing packages. This might take a couple of minutes...")
	m, err := p.Installer.Install(ctx, dir)
	rc.Manager = m
	if err != nil {
		return err
	}
	p.advance(StageInstalled)
	r.Succeed("Complete installation!")

	r.Printf("🎉 Job done! Your project is ready at %s", filepath.Base(dir))
	return nil
}

func (p *Pipeline) advance(s Stage) {
	if s > p.stage {
		p.stage = s
	}
}

// warnManifestIssues reports schema problems with the patched manifest,
// typically a project name npm would not accept. They never stop the run.
func (p *Pipeline) warnManifestIssues(path string) {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		p.Reporter.Warn("Could not validate %s: %v", manifest.FileName, err)
		return
	}
	for _, issue := range result.Issues {
		p.Reporter.Warn("%s: %s", manifest.FileName, issue)
	}
}
