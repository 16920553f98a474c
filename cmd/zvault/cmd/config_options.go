package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zvault/zvault/pkg/config"
)

var configOptions = &cobra.Command{
	Use:       "options {storable|runtime}",
	Short:     "List the available option tokens of a category",
	Long:      `Print an overview of the option tokens accepted by -o (storable) or -O (runtime), with their defaults.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"storable", "runtime"},
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "storable":
			sessionConfig.RenderHelp(config.Storable)
		case "runtime":
			sessionConfig.RenderHelp(config.Runtime)
		default:
			wrapFatalWithCodef(1, "unknown option category %q, use storable or runtime", args[0])
			return
		}
	},
}

func init() {
	configCmd.AddCommand(configOptions)
}
