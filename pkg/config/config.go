/*
 * Copyright © 2019 ZVault contributors
 *
 */

// Package config maintains the typed configuration of a repository session:
// the storable options persisted into the repository config document and the
// runtime options scoped to one invocation. Option tokens of the form "name"
// or "name=value" are resolved through a static registry and applied to the
// matching half.
//
// The package is single-threaded by design: the registry is immutable after
// construction and the record has at most one mutator (argument parsing or
// the interactive edit workflow). Hosts embedding it concurrently must
// serialize access themselves.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/zvault/zvault/pkg/compression"
	"github.com/zvault/zvault/pkg/model"
	"go.uber.org/zap"
)

// DefaultCacheSize is the restore cache size used when no cache-size option
// is given.
const DefaultCacheSize = ByteSize(40 * 1024 * 1024)

// RuntimeSettings are process-scoped values, never persisted.
type RuntimeSettings struct {
	Threads   int
	CacheSize ByteSize
	Exchange  model.ExchangeSet
}

func defaultRuntimeSettings() RuntimeSettings {
	return RuntimeSettings{
		Threads:   runtime.NumCPU(),
		CacheSize: DefaultCacheSize,
	}
}

// Config owns the two halves of a session's configuration and the registry
// used to resolve option tokens against them.
type Config struct {
	storable *model.RepoConfig
	runtime  RuntimeSettings
	selected compression.Method
	reg      *registry
	diag     io.Writer
	out      io.Writer
	l        *zap.Logger
}

// Option configures a Config at construction.
type Option func(*Config)

// WithLogger sets the debug logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.l = l
		}
	}
}

// WithDiagnostics redirects rejection messages and help output.
// Defaults to stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Config) {
		if w != nil {
			c.diag = w
		}
	}
}

// WithOutput redirects rendered config output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithStorable attaches an existing repository config document instead of the
// built-in defaults. The Config takes ownership of the record.
func WithStorable(r *model.RepoConfig) Option {
	return func(c *Config) {
		if r != nil {
			c.storable = r
		}
	}
}

// New builds a Config with default storable and runtime values. The option
// registry is constructed once here, so help output renders the live
// defaults.
func New(opts ...Option) *Config {
	c := &Config{
		storable: model.NewRepoConfig(),
		runtime:  defaultRuntimeSettings(),
		diag:     os.Stderr,
		out:      os.Stdout,
		l:        zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}
	c.reg = newRegistry(c.runtime)
	c.l.Debug("config instantiated", zap.Any("runtime", c.runtime))
	return c
}

// Storable is the durable half of the configuration.
func (c *Config) Storable() *model.RepoConfig {
	return c.storable
}

// AttachStorable replaces the durable half, e.g. after opening a repository.
func (c *Config) AttachStorable(r *model.RepoConfig) {
	if r != nil {
		c.storable = r
	}
}

// Runtime is the process-scoped half of the configuration.
func (c *Config) Runtime() *RuntimeSettings {
	return &c.runtime
}

// SelectedCompression is the capability picked by the last successful
// compression option, nil when none was parsed. It is carried here, not in
// package-global state, so encoder construction receives it explicitly.
func (c *Config) SelectedCompression() compression.Method {
	return c.selected
}

func toText(r *model.RepoConfig) (string, error) {
	b, err := model.MarshalRepoConfig(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Text renders the storable record as its structured text document.
func (c *Config) Text() (string, error) {
	return toText(c.storable)
}

// Validate is the pure syntactic check used before committing edited text.
// It never touches live state.
func (c *Config) Validate(text string) bool {
	_, err := model.UnmarshalRepoConfig([]byte(text))
	return err == nil
}

// Show writes the rendered storable record to the primary output stream.
func (c *Config) Show() error {
	text, err := c.Text()
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, text)
	return err
}
