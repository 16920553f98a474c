/*
 * Copyright © 2019 ZVault contributors
 *
 */

package model

import (
	"fmt"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v2"
)

// ConfigVersion is the current version of the repository config document.
const ConfigVersion = 1

// RepoConfig is the durable part of a repository's configuration. It is kept
// as a human-readable yaml document inside the repository and round-trips
// through Marshal/Unmarshal without loss.
type RepoConfig struct {
	ChunkMaxSize         uint64 `json:"chunk_max_size,omitempty" yaml:"chunk_max_size,omitempty"`                   // Maximum size of a single chunk
	BundleMaxPayloadSize uint64 `json:"bundle_max_payload_size,omitempty" yaml:"bundle_max_payload_size,omitempty"` // Maximum payload bytes per bundle
	CompressionMethod    string `json:"compression_method,omitempty" yaml:"compression_method,omitempty"`           // Canonical name of the compression method for new bundles
	Version              uint64 `json:"version,omitempty" yaml:"version,omitempty"`
	_                    struct{}
}

// NewRepoConfig returns a repository config carrying the built-in defaults.
func NewRepoConfig() *RepoConfig {
	return &RepoConfig{
		ChunkMaxSize:         64 * 1024,
		BundleMaxPayloadSize: 2 * 1024 * 1024,
		CompressionMethod:    "lzma",
		Version:              ConfigVersion,
	}
}

// UnmarshalRepoConfig parses a repository config document. Unknown fields are
// a parse error: an edited document must not silently drop operator input.
func UnmarshalRepoConfig(b []byte) (*RepoConfig, error) {
	if b == nil {
		return nil, fmt.Errorf("received nil config to unmarshal")
	}
	var c RepoConfig
	err := yaml.UnmarshalStrict(b, &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MarshalRepoConfig serializes a repository config document.
func MarshalRepoConfig(c *RepoConfig) ([]byte, error) {
	b, err := yaml.Marshal(c)
	return b, err
}

// CopyFrom makes the receiver equal to other, all fields overwritten.
func (c *RepoConfig) CopyFrom(other *RepoConfig) {
	*c = *other
}

// MergeFrom overlays the fields set in other onto the receiver. Fields absent
// from other leave the receiver unchanged.
func (c *RepoConfig) MergeFrom(other *RepoConfig) error {
	return mergo.Merge(c, *other, mergo.WithOverride)
}

// ValidateRepoConfig checks the semantic constraints of a config document.
func ValidateRepoConfig(c RepoConfig) error {
	if c.ChunkMaxSize == 0 {
		return fmt.Errorf("empty field: chunk_max_size must be set")
	}
	if c.BundleMaxPayloadSize < c.ChunkMaxSize {
		return fmt.Errorf("invalid size: a bundle must hold at least one chunk, bundle_max_payload_size:%d is below chunk_max_size:%d",
			c.BundleMaxPayloadSize, c.ChunkMaxSize)
	}
	if c.CompressionMethod == "" {
		return fmt.Errorf("empty field: compression_method is empty")
	}
	return nil
}
