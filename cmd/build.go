package cmd

import (
	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg/builder"
	"github.com/voxium/voxium/tools/pkg/venv"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"builder"},
	Short:   "Clean, install dependencies, build, pack and test the engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := builder.Options{}
		flags := cmd.Flags()
		for name, target := range map[string]*bool{
			"clean":        &opts.Clean,
			"install-deps": &opts.InstallDeps,
			"build":        &opts.Build,
			"pack":         &opts.Pack,
			"test":         &opts.Test,
			"debug":        &opts.Debug,
			"verbose":      &opts.Verbose,
		} {
			value, err := flags.GetBool(name)
			if err != nil {
				return err
			}
			*target = value
		}

		archive, err := flags.GetString("archive")
		if err != nil {
			return err
		}
		opts.Archive = archive

		if !opts.Any() {
			return cmd.Help()
		}

		project, err := loadProject(cmd, "")
		if err != nil {
			return err
		}

		conan, err := newConan(project, venv.New(project.Root))
		if err != nil {
			return err
		}

		return builder.New(project, conan, opts).Run(cmd.Context())
	},
}

func init() {
	flags := buildCmd.Flags()
	flags.Bool("clean", false, "remove the build directory")
	flags.BoolP("install-deps", "i", false, "install dependencies with conan")
	flags.BoolP("build", "b", false, "build the engine")
	flags.BoolP("pack", "p", false, "deploy the runtime files")
	flags.BoolP("test", "t", false, "run the tests")
	flags.BoolP("debug", "d", false, "use the Debug build type instead of Release")
	flags.String("archive", "", "after packing, write the dist folder to this .tar.xz or .tar.br file")

	rootCmd.AddCommand(buildCmd)
}
