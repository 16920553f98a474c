package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zvault/zvault/pkg/config"
	"github.com/zvault/zvault/pkg/editor"
)

var configEdit = &cobra.Command{
	Use:   "edit",
	Short: "Edit the repository config interactively",
	Long: `Open the repository's config document in an editor, validate the result and
replace the stored document if it parses and differs from the original.

The editor is taken from --editor, the config file, $EDITOR, or vi, in that
order. The document is replaced as a whole or not at all.`,
	Run: func(cmd *cobra.Command, args []string) {
		r := mustOpenRepo()
		sessionConfig.AttachStorable(r.Config())

		result, err := sessionConfig.EditInteractively(editor.New(zvaultFlags.root.editor))
		switch result {
		case config.EditNoChange:
			infoLogger.Println("No changes made to config")
		case config.EditAborted:
			wrapFatalln("changes not applied", err)
			return
		case config.EditCommitted:
			if err = r.Save(); err != nil {
				wrapFatalln("persisting updated config", err)
				return
			}
			infoLogger.Println("Configuration successfully updated!")
			infoLogger.Println("Updated configuration:")
			if err = sessionConfig.Show(); err != nil {
				wrapFatalln("render config", err)
				return
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configEdit)
}
