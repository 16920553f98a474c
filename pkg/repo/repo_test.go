package repo

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/zvault/zvault/pkg/model"
)

func TestCreateAndOpen(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Create(fs, "/repo", model.NewRepoConfig())
	require.NoError(t, err)
	require.Equal(t, "/repo", r.Path())

	for _, dir := range []string{"backups", "bundles", "index"} {
		ok, derr := afero.DirExists(fs, filepath.Join("/repo", dir))
		require.NoError(t, derr)
		require.True(t, ok, dir)
	}

	reopened, err := Open(fs, "/repo")
	require.NoError(t, err)
	require.Equal(t, model.NewRepoConfig(), reopened.Config())
}

func TestCreateRefusesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Create(fs, "/repo", model.NewRepoConfig())
	require.NoError(t, err)

	_, err = Create(fs, "/repo", model.NewRepoConfig())
	require.ErrorIs(t, err, ErrExists)
}

func TestCreateValidates(t *testing.T) {
	fs := afero.NewMemMapFs()

	bad := model.NewRepoConfig()
	bad.CompressionMethod = ""
	_, err := Create(fs, "/repo", bad)
	require.Error(t, err)

	// nothing was written
	ok, err := afero.Exists(fs, filepath.Join("/repo", InfoFile))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOpenMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Open(fs, "/nowhere")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpenCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("/repo", InfoFile), []byte("{{nope"), 0o644))

	_, err := Open(fs, "/repo")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestSaveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Create(fs, "/repo", model.NewRepoConfig())
	require.NoError(t, err)

	r.Config().CompressionMethod = "lzo1x_1"
	require.NoError(t, r.Save())

	reopened, err := Open(fs, "/repo")
	require.NoError(t, err)
	require.Equal(t, "lzo1x_1", reopened.Config().CompressionMethod)
}
