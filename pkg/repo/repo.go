/*
 * Copyright © 2019 ZVault contributors
 *
 */

// Package repo manages a repository session: the directory layout and the
// durable config document stored inside it.
package repo

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/zvault/zvault/pkg/model"
)

// InfoFile is the name of the config document inside a repository.
const InfoFile = "info.yaml"

var (
	// ErrNotFound : the path does not hold a repository
	ErrNotFound = errors.New("repository not found")
	// ErrExists : the path already holds a repository
	ErrExists = errors.New("repository already exists")
)

var dataDirs = []string{"backups", "bundles", "index"}

// Repo is one open repository session.
type Repo struct {
	fs     afero.Fs
	path   string
	config *model.RepoConfig
}

// Open loads the config document of an existing repository.
func Open(fs afero.Fs, path string) (*Repo, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	b, err := afero.ReadFile(fs, filepath.Join(path, InfoFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "at %s", path)
		}
		return nil, errors.Wrapf(err, "read repository config at %s", path)
	}
	cfg, err := model.UnmarshalRepoConfig(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parse repository config at %s", path)
	}
	return &Repo{fs: fs, path: path, config: cfg}, nil
}

// Create initializes a repository directory tree and writes its config
// document. The supplied config is validated first.
func Create(fs afero.Fs, path string, cfg *model.RepoConfig) (*Repo, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := model.ValidateRepoConfig(*cfg); err != nil {
		return nil, err
	}
	exists, err := afero.Exists(fs, filepath.Join(path, InfoFile))
	if err != nil {
		return nil, errors.Wrapf(err, "probe repository at %s", path)
	}
	if exists {
		return nil, errors.Wrapf(ErrExists, "at %s", path)
	}
	for _, dir := range dataDirs {
		if err = fs.MkdirAll(filepath.Join(path, dir), 0o755); err != nil {
			return nil, errors.Wrapf(err, "create repository layout at %s", path)
		}
	}
	r := &Repo{fs: fs, path: path, config: cfg}
	if err = r.Save(); err != nil {
		return nil, err
	}
	return r, nil
}

// Config is the repository's durable config record. Mutations become
// persistent on Save.
func (r *Repo) Config() *model.RepoConfig {
	return r.config
}

// Path is the repository root.
func (r *Repo) Path() string {
	return r.path
}

// Save writes the config document atomically: a temp file in the repository
// directory renamed over the previous document, so a failed write never
// leaves a partial record.
func (r *Repo) Save() error {
	b, err := model.MarshalRepoConfig(r.config)
	if err != nil {
		return errors.Wrap(err, "serialize repository config")
	}
	tmp, err := afero.TempFile(r.fs, r.path, "info-*.yaml")
	if err != nil {
		return errors.Wrapf(err, "stage repository config at %s", r.path)
	}
	name := tmp.Name()
	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(name)
		return errors.Wrap(err, "write repository config")
	}
	if err = tmp.Close(); err != nil {
		_ = r.fs.Remove(name)
		return errors.Wrap(err, "close repository config")
	}
	if err = r.fs.Rename(name, filepath.Join(r.path, InfoFile)); err != nil {
		_ = r.fs.Remove(name)
		return errors.Wrap(err, "commit repository config")
	}
	return nil
}
