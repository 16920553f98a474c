package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zvault/zvault/pkg/config"
)

// fakeEditor writes a shell script that stands in for the external editor.
func fakeEditor(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestEditPassthrough(t *testing.T) {
	ed := New(fakeEditor(t, ":"), withoutStdio())

	out, err := ed.Edit("compression_method: lzma\n", nil)
	require.NoError(t, err)
	require.Equal(t, "compression_method: lzma\n", out)
}

func TestEditModifies(t *testing.T) {
	ed := New(fakeEditor(t, `echo "chunk_max_size: 65536" >> "$1"`), withoutStdio())

	out, err := ed.Edit("compression_method: lzma\n", func(string) bool { return true })
	require.NoError(t, err)
	require.Equal(t, "compression_method: lzma\nchunk_max_size: 65536\n", out)
}

func TestEditInvalidThenAborted(t *testing.T) {
	ed := New(fakeEditor(t, `echo "garbage" > "$1"`),
		withoutStdio(),
		WithPrompt(strings.NewReader("n\n"), &strings.Builder{}))

	_, err := ed.Edit("compression_method: lzma\n", func(s string) bool {
		return !strings.Contains(s, "garbage")
	})
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrEditAborted)
}

func TestEditInvalidThenRetried(t *testing.T) {
	// the first pass appends garbage, the validate predicate only accepts a
	// document that grew twice, so the operator retries once
	prompt := &strings.Builder{}
	ed := New(fakeEditor(t, `echo "line" >> "$1"`),
		withoutStdio(),
		WithPrompt(strings.NewReader("y\n"), prompt))

	out, err := ed.Edit("start\n", func(s string) bool {
		return strings.Count(s, "line") >= 2
	})
	require.NoError(t, err)
	require.Equal(t, "start\nline\nline\n", out)
	require.Contains(t, prompt.String(), "Edit again?")
}

func TestEditorFailure(t *testing.T) {
	ed := New(fakeEditor(t, "exit 3"), withoutStdio())

	_, err := ed.Edit("text\n", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "editor")
}

func TestNewFallsBackToEnv(t *testing.T) {
	t.Setenv("EDITOR", "my-editor")
	require.Equal(t, "my-editor", New("").command)

	t.Setenv("EDITOR", "")
	require.Equal(t, "vi", New("").command)
}
