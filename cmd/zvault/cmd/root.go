// Copyright © 2019 ZVault contributors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zvault/zvault/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envConfigLocation = "ZVAULT_CONFIG"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zvault",
	Short: "zvault manages deduplicated backup repositories",
	Long: `zvault maintains backup repositories where data is split into chunks,
deduplicated and packed into compressed bundles.

Storable options (-o) are persisted into the repository config document when a
repository is initialized; runtime options (-O) affect the current invocation
only.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyOptionTokens()
	},
}

var (
	cliConfig     *CLIConfig
	sessionConfig *config.Config
	logger        *zap.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	addLogLevelFlag(rootCmd)
	addEditorFlag(rootCmd)
	addRepoFlag(rootCmd)
	addOptionFlags(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("editor", "")
	if os.Getenv(envConfigLocation) != "" {
		// Use config file from the environment.
		viper.SetConfigFile(os.Getenv(envConfigLocation))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.zvault")
		viper.AddConfigPath("/etc/zvault")
		viper.SetConfigName("zvault")
	}
	viper.SetEnvPrefix("zvault")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	_ = viper.ReadInConfig()

	var err error
	cliConfig, err = newCLIConfig()
	if err != nil {
		wrapFatalln("reading CLI config", err)
		return
	}
	cliConfig.setSessionParams(&zvaultFlags)

	logger, err = getLogger(zvaultFlags.root.logLevel)
	if err != nil {
		wrapFatalln("building logger", err)
		return
	}

	sessionConfig = config.New(
		config.WithLogger(logger),
		config.WithDiagnostics(diagWriter),
		config.WithOutput(outWriter),
	)
}

// applyOptionTokens feeds the -o and -O tokens through the option parser.
// A rejected token prints the overview for its category and ends the
// invocation; a fatal value aborts with the offending literal.
func applyOptionTokens() {
	kinds := []struct {
		kind   config.Kind
		tokens []string
	}{
		{config.Runtime, zvaultFlags.options.Runtime},
		{config.Storable, zvaultFlags.options.Storable},
	}
	for _, group := range kinds {
		for _, token := range group.tokens {
			applied, err := sessionConfig.ParseOption(token, group.kind)
			if err != nil {
				wrapFatalln("parsing options", err)
				return
			}
			if !applied {
				sessionConfig.RenderHelp(group.kind)
				osExit(1)
				return
			}
		}
	}
}

// getLogger builds the debug logger for the session. Level "none" disables
// logging entirely.
func getLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "" || logLevel == "none" {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	return zapConfig.Build()
}
