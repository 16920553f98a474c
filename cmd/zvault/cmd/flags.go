// Copyright © 2019 ZVault contributors

package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zvault/zvault/pkg/repo"
)

type flagsT struct {
	repo struct {
		Path string
	}
	options struct {
		Storable []string
		Runtime  []string
	}
	config struct {
		Format string
	}
	root struct {
		logLevel string
		editor   string
	}
}

var zvaultFlags = flagsT{}

// patched over in tests
var (
	appFs                = afero.NewOsFs()
	outWriter  io.Writer = os.Stdout
	diagWriter io.Writer = os.Stderr
)

func addRepoFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&zvaultFlags.repo.Path, "repo", "",
		"Path to the backup repository")
}

func addOptionFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&zvaultFlags.options.Storable, "option", "o", nil,
		"Storable option token (name=value), repeatable. Use '-o help' for an overview")
	cmd.PersistentFlags().StringArrayVarP(&zvaultFlags.options.Runtime, "runtime", "O", nil,
		"Runtime option token (name=value), repeatable. Use '-O help' for an overview")
}

func addLogLevelFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&zvaultFlags.root.logLevel, "loglevel", "",
		"Log level (debug, info, warn, error, none)")
}

func addEditorFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&zvaultFlags.root.editor, "editor", "",
		"Editor command for interactive config editing. Defaults to $EDITOR, then vi")
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&zvaultFlags.config.Format, "format", "yaml",
		"Output format (yaml or json)")
}

func mustOpenRepo() *repo.Repo {
	if zvaultFlags.repo.Path == "" {
		wrapFatalln("a repository must be specified with --repo", nil)
		return nil
	}
	r, err := repo.Open(appFs, zvaultFlags.repo.Path)
	if err != nil {
		wrapFatalln("open repository", err)
		return nil
	}
	return r
}
