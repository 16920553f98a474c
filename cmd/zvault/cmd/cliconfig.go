package cmd

import (
	"github.com/spf13/viper"
)

// CLIConfig describes the local CLI configuration file. It holds values that
// do not change between invocations, like the repository path or the editor
// of choice.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Editor   string `json:"editor" yaml:"editor"`     // Editor command for config edit
	LogLevel string `json:"loglevel" yaml:"loglevel"` // Default log level
	Repo     string `json:"repo" yaml:"repo"`         // Default repository path
}

func newCLIConfig() (*CLIConfig, error) {
	var c CLIConfig
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// setSessionParams fills flags that were not given on the command line from
// the config file.
func (c *CLIConfig) setSessionParams(flags *flagsT) {
	if flags.repo.Path == "" {
		flags.repo.Path = c.Repo
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.editor == "" {
		flags.root.editor = c.Editor
	}
}
