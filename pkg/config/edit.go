package config

import (
	"errors"
	"fmt"

	"github.com/zvault/zvault/pkg/model"
)

// Editor hands a structured text document to an operator and returns the
// edited text. It may call the supplied validate predicate before returning.
// ErrEditAborted signals that the operator gave up.
type Editor interface {
	Edit(text string, validate func(string) bool) (string, error)
}

// ErrEditAborted is returned by an Editor when the operator abandons the
// edit.
var ErrEditAborted = errors.New("edit aborted")

// EditResult is the terminal state of one interactive edit.
type EditResult int

const (
	// EditAborted: the editor was abandoned or produced unparsable text;
	// the stored record is untouched
	EditAborted EditResult = iota
	// EditNoChange: the edited text matches the original; untouched
	EditNoChange
	// EditCommitted: the stored record was replaced with the edited one
	EditCommitted
)

// EditInteractively runs one edit-validate-commit pass over the storable
// record. The editor is invoked exactly once. The "did anything change"
// check compares serialized text, exactly as stored: two semantically equal
// but differently formatted documents count as a change.
func (c *Config) EditInteractively(ed Editor) (EditResult, error) {
	t0, err := toText(c.storable)
	if err != nil {
		return EditAborted, err
	}

	t1, err := ed.Edit(t0, c.Validate)
	if err != nil {
		return EditAborted, err
	}

	candidate, err := model.UnmarshalRepoConfig([]byte(t1))
	if err != nil {
		return EditAborted, fmt.Errorf("config not applied: %w", err)
	}

	t1Canonical, err := toText(candidate)
	if err != nil {
		return EditAborted, err
	}
	if t1Canonical == t0 {
		c.l.Debug("edited config matches stored config")
		return EditNoChange, nil
	}

	c.storable.CopyFrom(candidate)
	c.l.Debug("stored config replaced")
	return EditCommitted, nil
}
