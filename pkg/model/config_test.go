package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepoConfigRoundTrip(t *testing.T) {
	in := NewRepoConfig()
	in.ChunkMaxSize = 128 * 1024
	in.CompressionMethod = "lzo1x_1"

	b, err := MarshalRepoConfig(in)
	require.NoError(t, err)

	out, err := UnmarshalRepoConfig(b)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRepoConfigUnmarshalErrors(t *testing.T) {
	_, err := UnmarshalRepoConfig(nil)
	require.Error(t, err)

	_, err = UnmarshalRepoConfig([]byte("{{not yaml"))
	require.Error(t, err)

	// unknown fields are a parse error, not silently dropped
	_, err = UnmarshalRepoConfig([]byte("chunk_maxsize: 12\n"))
	require.Error(t, err)
}

func TestRepoConfigCopyFrom(t *testing.T) {
	dst := NewRepoConfig()
	src := &RepoConfig{ChunkMaxSize: 1, CompressionMethod: "lzma"}

	dst.CopyFrom(src)
	require.Equal(t, src, dst)
	// full replace: fields unset in src are zeroed
	require.EqualValues(t, 0, dst.BundleMaxPayloadSize)
}

func TestRepoConfigMergeFrom(t *testing.T) {
	dst := NewRepoConfig()
	keepPayload := dst.BundleMaxPayloadSize

	err := dst.MergeFrom(&RepoConfig{CompressionMethod: "lzo1x_1", ChunkMaxSize: 4096})
	require.NoError(t, err)

	require.Equal(t, "lzo1x_1", dst.CompressionMethod)
	require.EqualValues(t, 4096, dst.ChunkMaxSize)
	// absent fields in the source leave the target unchanged
	require.Equal(t, keepPayload, dst.BundleMaxPayloadSize)
	require.EqualValues(t, ConfigVersion, dst.Version)
}

func TestValidateRepoConfig(t *testing.T) {
	require.NoError(t, ValidateRepoConfig(*NewRepoConfig()))

	bad := *NewRepoConfig()
	bad.ChunkMaxSize = 0
	require.Error(t, ValidateRepoConfig(bad))

	bad = *NewRepoConfig()
	bad.BundleMaxPayloadSize = bad.ChunkMaxSize - 1
	require.Error(t, ValidateRepoConfig(bad))

	bad = *NewRepoConfig()
	bad.CompressionMethod = ""
	require.Error(t, ValidateRepoConfig(bad))
}

func TestExchangeSet(t *testing.T) {
	var s ExchangeSet
	require.True(t, s.IsEmpty())
	require.Equal(t, "", s.String())

	s.Set(ExchangeBackups)
	s.Set(ExchangeIndex)
	require.True(t, s.Has(ExchangeBackups))
	require.False(t, s.Has(ExchangeBundles))
	require.True(t, s.Has(ExchangeIndex))
	require.Equal(t, "backups,index", s.String())

	// setting twice is idempotent
	s.Set(ExchangeBackups)
	require.Equal(t, "backups,index", s.String())
}
