package cmd

import (
	units "github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/zvault/zvault/pkg/repo"
)

var repoInit = &cobra.Command{
	Use:   "init",
	Short: "Initialize a backup repository",
	Long: `Create the directory layout of a new repository and write its config
document. Storable options given with -o are applied to the defaults before
the document is written; they cannot be changed through -o afterwards, only
through "config edit".`,
	Example: `% zvault --repo /backups/home -o compression=lzma init`,
	Run: func(cmd *cobra.Command, args []string) {
		if zvaultFlags.repo.Path == "" {
			wrapFatalln("a repository must be specified with --repo", nil)
			return
		}
		r, err := repo.Create(appFs, zvaultFlags.repo.Path, sessionConfig.Storable())
		if err != nil {
			wrapFatalln("initialize repository", err)
			return
		}
		cfg := r.Config()
		infoLogger.Printf("Initialized repository at %s (chunks up to %s, bundles up to %s, %s compression)",
			r.Path(),
			units.BytesSize(float64(cfg.ChunkMaxSize)),
			units.BytesSize(float64(cfg.BundleMaxPayloadSize)),
			cfg.CompressionMethod,
		)
	},
}

func init() {
	rootCmd.AddCommand(repoInit)
}
