// Package builder runs the clean, dependency, build, pack and test steps of the engine build.
package builder

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg"
	"github.com/voxium/voxium/tools/pkg/archive"
	"github.com/voxium/voxium/tools/pkg/config"
	"github.com/voxium/voxium/tools/pkg/fsutil"
	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/shell"
)

// Options selects the steps of a build run.
type Options struct {
	Clean       bool
	InstallDeps bool
	Build       bool
	Pack        bool
	Test        bool
	Debug       bool
	// Verbose passes -v to every conan command.
	Verbose bool
	// Archive is written from the dist folder after packing if set.
	Archive string
}

// BuildType returns the conan build_type for the options.
func (o Options) BuildType() string {
	if o.Debug {
		return "Debug"
	}
	return "Release"
}

// Any reports whether at least one step is selected.
func (o Options) Any() bool {
	return o.Clean || o.InstallDeps || o.Build || o.Pack || o.Test
}

// ConanRunner runs conan commands. *conan.Conan implements it.
type ConanRunner interface {
	Run(ctx context.Context, argv []string, check bool) (*shell.Result, error)
}

// Step is a single stage of the build.
type Step struct {
	Name    string
	Enabled func(Options) bool
	Run     func(ctx context.Context, b *Builder) error
}

// Builder executes Steps in order for a project.
type Builder struct {
	Project *config.Project
	Conan   ConanRunner
	Options Options
	Steps   []Step
}

// New returns a Builder with the default steps.
func New(project *config.Project, conan ConanRunner, opts Options) *Builder {
	return &Builder{
		Project: project,
		Conan:   conan,
		Options: opts,
		Steps:   DefaultSteps(),
	}
}

// DefaultSteps returns clean, install deps, build, pack and test in that order.
func DefaultSteps() []Step {
	return []Step{
		{Name: "Cleaning", Enabled: func(o Options) bool { return o.Clean }, Run: stepClean},
		{Name: "Installing dependencies", Enabled: func(o Options) bool { return o.InstallDeps }, Run: stepInstallDeps},
		{Name: "Building", Enabled: func(o Options) bool { return o.Build }, Run: stepBuild},
		{Name: "Packing", Enabled: func(o Options) bool { return o.Pack }, Run: stepPack},
		{Name: "Testing", Enabled: func(o Options) bool { return o.Test }, Run: stepTest},
	}
}

// Run executes all enabled steps and stops at the first failure.
func (b *Builder) Run(ctx context.Context) error {
	log := logging.Log(ctx)

	for _, step := range b.Steps {
		if !step.Enabled(b.Options) {
			continue
		}

		pkg.PrintTask(step.Name)
		log.Info().Msgf("Builder: @@@ %s @@@", step.Name)

		start := time.Now()
		if err := step.Run(ctx, b); err != nil {
			pkg.PrintError(err.Error())
			return eris.Wrapf(err, "step %s failed", step.Name)
		}
		log.Debug().Dur("duration", time.Since(start)).Msgf("%s finished", step.Name)
	}

	return nil
}

func (b *Builder) conan(ctx context.Context, argv ...string) error {
	if b.Options.Verbose {
		argv = append(argv, "-v")
	}

	pkg.PrintSubtask("conan " + shell.Quote(argv))
	_, err := b.Conan.Run(ctx, append([]string{"conan"}, argv...), true)
	return err
}

func stepClean(ctx context.Context, b *Builder) error {
	return fsutil.Clean(ctx, b.Project.BuildPath(), false)
}

func stepInstallDeps(ctx context.Context, b *Builder) error {
	return b.conan(ctx, "install", b.Project.Root, "--build=missing", "-s", "build_type="+b.Options.BuildType())
}

func stepBuild(ctx context.Context, b *Builder) error {
	return b.conan(ctx, "build", b.Project.Root, "-s", "build_type="+b.Options.BuildType())
}

func stepPack(ctx context.Context, b *Builder) error {
	err := b.conan(ctx, "install", b.Project.Root, "--deployer=runtime_deploy", "-s", "build_type="+b.Options.BuildType())
	if err != nil {
		return err
	}

	if b.Options.Archive == "" {
		return nil
	}

	pkg.PrintSubtask("Archiving " + b.Project.DistPath())
	_, err = archive.Pack(ctx, b.Project.DistPath(), b.Options.Archive)
	return err
}

func stepTest(ctx context.Context, b *Builder) error {
	return nil
}
