package cmd

import (
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
)

var configShow = &cobra.Command{
	Use:   "show",
	Short: "Show the repository config",
	Long:  `Render the repository's durable config document to standard output.`,
	Example: `% zvault --repo /backups/home config show
chunk_max_size: 65536
bundle_max_payload_size: 2097152
compression_method: lzma
version: 1`,
	Run: func(cmd *cobra.Command, args []string) {
		r := mustOpenRepo()
		sessionConfig.AttachStorable(r.Config())

		switch zvaultFlags.config.Format {
		case "", "yaml":
			if err := sessionConfig.Show(); err != nil {
				wrapFatalln("render config", err)
				return
			}
		case "json":
			text, err := sessionConfig.Text()
			if err != nil {
				wrapFatalln("render config", err)
				return
			}
			b, err := yaml.YAMLToJSON([]byte(text))
			if err != nil {
				wrapFatalln("convert config to json", err)
				return
			}
			fmt.Fprintln(outWriter, string(b))
		default:
			wrapFatalWithCodef(1, "unsupported output format %q, use yaml or json", zvaultFlags.config.Format)
			return
		}
	},
}

func init() {
	addFormatFlag(configShow)
	configCmd.AddCommand(configShow)
}
