package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zvault/zvault/pkg/model"
)

// scriptedEditor returns a canned result and records what it was handed.
type scriptedEditor struct {
	result   string
	err      error
	sawText  string
	validate func(string) bool
}

func (e *scriptedEditor) Edit(text string, validate func(string) bool) (string, error) {
	e.sawText = text
	e.validate = validate
	if e.err != nil {
		return "", e.err
	}
	if e.result == "" {
		return text, nil
	}
	return e.result, nil
}

func TestEditNoChange(t *testing.T) {
	c, _ := testConfig(t)
	before := *c.Storable()

	ed := &scriptedEditor{}
	res, err := c.EditInteractively(ed)
	require.NoError(t, err)
	require.Equal(t, EditNoChange, res)
	require.Equal(t, before, *c.Storable())

	// the editor got the serialized record and a usable validate predicate
	text, terr := c.Text()
	require.NoError(t, terr)
	require.Equal(t, text, ed.sawText)
	require.NotNil(t, ed.validate)
	require.True(t, ed.validate(text))
	require.False(t, ed.validate("{{nope"))
}

func TestEditCommitted(t *testing.T) {
	c, _ := testConfig(t)

	candidate := model.NewRepoConfig()
	candidate.CompressionMethod = "lzo1x_1"
	candidate.ChunkMaxSize = 128 * 1024
	b, err := model.MarshalRepoConfig(candidate)
	require.NoError(t, err)

	res, err := c.EditInteractively(&scriptedEditor{result: string(b)})
	require.NoError(t, err)
	require.Equal(t, EditCommitted, res)
	require.Equal(t, candidate, c.Storable())
}

func TestEditAbortedOnParseError(t *testing.T) {
	c, _ := testConfig(t)
	before := *c.Storable()

	res, err := c.EditInteractively(&scriptedEditor{result: "{{definitely not yaml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "config not applied")
	require.Equal(t, EditAborted, res)
	require.Equal(t, before, *c.Storable())
}

func TestEditAbortedByOperator(t *testing.T) {
	c, _ := testConfig(t)
	before := *c.Storable()

	res, err := c.EditInteractively(&scriptedEditor{err: ErrEditAborted})
	require.ErrorIs(t, err, ErrEditAborted)
	require.Equal(t, EditAborted, res)
	require.Equal(t, before, *c.Storable())
}

func TestEditCanonicalizedNoChange(t *testing.T) {
	c, _ := testConfig(t)

	// the change oracle compares the candidate's canonical serialization
	// against the original text, so a re-serialized identical document is
	// reported as no change
	text, err := c.Text()
	require.NoError(t, err)
	candidate, err := model.UnmarshalRepoConfig([]byte(text))
	require.NoError(t, err)
	candidate.Version = model.ConfigVersion // same value, same document
	b, err := model.MarshalRepoConfig(candidate)
	require.NoError(t, err)
	require.Equal(t, text, string(b))

	res, err := c.EditInteractively(&scriptedEditor{result: string(b)})
	require.NoError(t, err)
	require.Equal(t, EditNoChange, res)
}
