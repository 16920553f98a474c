package cmd

import (
	"github.com/spf13/cobra"
)

// configCmd represents all the commands related to the repository config
// document.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the repository config",
	Long: `Commands to manage the config document a repository carries.

The document holds the storable options fixed at repository initialization
(chunk sizes, bundle sizes, compression method). Use "config show" to render
it, "config edit" to change it and "config options" for an overview of the
available options.
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
