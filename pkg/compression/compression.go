// Package compression maintains the registry of named compression
// capabilities a repository may select for new bundles. Capabilities are
// resolved by canonical name; which ones are present depends on what the
// binary was built with.
package compression

import (
	"io"
	"strings"

	"github.com/ulikunitz/xz/lzma"
)

// Method is one named compression capability.
type Method interface {
	// Name is the canonical name stored in the repository config
	Name() string
	// NewWriter wraps w with a compressing writer
	NewWriter(w io.Writer) (io.WriteCloser, error)
	// NewReader wraps r with a decompressing reader
	NewReader(r io.Reader) (io.Reader, error)
}

var registry []Method

// Register adds a capability to the registry. Capabilities register at
// process start, before any lookup happens.
func Register(m Method) {
	registry = append(registry, m)
}

// Find resolves a capability by canonical name, case-insensitive.
// The second return value is false when the capability is not built in.
func Find(name string) (Method, bool) {
	for _, m := range registry {
		if strings.EqualFold(m.Name(), name) {
			return m, true
		}
	}
	return nil, false
}

type lzmaMethod struct{}

func (lzmaMethod) Name() string { return "lzma" }

func (lzmaMethod) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lzma.NewWriter(w)
}

func (lzmaMethod) NewReader(r io.Reader) (io.Reader, error) {
	return lzma.NewReader(r)
}

func init() {
	// lzma ships by default. lzo1x_1 has no maintained Go implementation and
	// registers only when a build supplies one, so selecting it reports the
	// capability as missing.
	Register(lzmaMethod{})
}
