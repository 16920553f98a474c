/*
 * Copyright © 2019 ZVault contributors
 *
 */

package config

import (
	"fmt"
	"strconv"
	"strings"

	units "github.com/docker/go-units"
)

// Kind is the category of an option: persisted into the repository config or
// effective only for the current invocation. The display name is used
// uniformly for logging, lookup diagnostics and help.
type Kind int

const (
	// KindNone matches no option
	KindNone Kind = iota
	// Storable options are written into the repository config document
	Storable
	// Runtime options affect the current process only
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Storable:
		return "storable"
	case Runtime:
		return "runtime"
	default:
		return "none"
	}
}

// opCode is the internal identifier a textual option name resolves to.
type opCode int

const (
	opBadOption opCode = iota
	opChunkMaxSize
	opBundleMaxPayloadSize
	opBundleCompressionMethod
	opRuntimeThreads
	opRuntimeCacheSize
	opRuntimeExchange
)

// descriptor describes one registered option. The help text is rendered once,
// at registry construction, with the default value substituted.
type descriptor struct {
	name   string
	kind   Kind
	opcode opCode
	help   string
}

type registry struct {
	entries []descriptor
}

// keyword is the raw registration form: a help template with at most one %s
// placeholder and the pre-rendered default value text it expands to.
type keyword struct {
	name         string
	kind         Kind
	opcode       opCode
	helpTemplate string
	defaultText  string
}

// expandTemplate substitutes the single %s placeholder of a help template.
// The placeholder count and the presence of a default must agree; a mismatch
// is a programming error caught at registry construction.
func expandTemplate(tmpl, defaultText string) (string, error) {
	n := strings.Count(tmpl, "%s")
	if strings.Count(tmpl, "%") != n {
		return "", fmt.Errorf("help template carries a placeholder other than %%s: %q", tmpl)
	}
	switch {
	case n == 0 && defaultText == "":
		return tmpl, nil
	case n == 1 && defaultText != "":
		return strings.Replace(tmpl, "%s", defaultText, 1), nil
	default:
		return "", fmt.Errorf("help template has %d placeholder(s) for default %q: %q", n, defaultText, tmpl)
	}
}

// newRegistry builds the option table. Default value texts come from the live
// defaults, not from hardcoded literals.
func newRegistry(defaults RuntimeSettings) *registry {
	keywords := []keyword{
		// Storable options
		{
			name:   "chunk.max_size",
			kind:   Storable,
			opcode: opChunkMaxSize,
			helpTemplate: "Maximum chunk size used when storing chunks\n" +
				"Affects deduplication ratio directly",
		},
		{
			name:   "bundle.max_payload_size",
			kind:   Storable,
			opcode: opBundleMaxPayloadSize,
			helpTemplate: "Maximum number of bytes a bundle can hold. Only real chunk bytes are\n" +
				"counted, not metadata. Any bundle should be able to contain at least\n" +
				"one arbitrary single chunk, so this should not be smaller than\n" +
				"chunk.max_size",
		},
		{
			name:         "bundle.compression_method",
			kind:         Storable,
			opcode:       opBundleCompressionMethod,
			helpTemplate: "Compression method for new bundles",
		},

		// Shortcuts for storable options
		{
			name:         "compression",
			kind:         Storable,
			opcode:       opBundleCompressionMethod,
			helpTemplate: "Shortcut for bundle.compression_method",
		},

		// Runtime options
		{
			name:   "threads",
			kind:   Runtime,
			opcode: opRuntimeThreads,
			helpTemplate: "Maximum number of compressor threads to use in backup process\n" +
				"Default is %s on your system",
			defaultText: strconv.Itoa(defaults.Threads),
		},
		{
			name:   "cache-size",
			kind:   Runtime,
			opcode: opRuntimeCacheSize,
			helpTemplate: "Cache size to use in restore process\n" +
				"Affects restore process speed directly\n" +
				ValidSuffixes +
				"Default is %s",
			defaultText: units.BytesSize(float64(defaults.CacheSize)),
		},
		{
			name:   "exchange",
			kind:   Runtime,
			opcode: opRuntimeExchange,
			helpTemplate: "Data to exchange between repositories in import/export process\n" +
				"Can be specified multiple times\n" +
				"Valid values:\n" +
				"backups - exchange backup instructions (files in backups/ directory)\n" +
				"bundles - exchange bundles with data (files in bundles/ directory)\n" +
				"index - exchange indexes of chunks (files in index/ directory)\n" +
				"No default value, you should specify it explicitly",
		},
	}

	r := &registry{entries: make([]descriptor, 0, len(keywords))}
	for _, kw := range keywords {
		help, err := expandTemplate(kw.helpTemplate, kw.defaultText)
		if err != nil {
			panic(err)
		}
		r.entries = append(r.entries, descriptor{
			name:   kw.name,
			kind:   kw.kind,
			opcode: kw.opcode,
			help:   help,
		})
	}
	return r
}

// lookup resolves an option name, case-insensitive, within one category.
// A name registered under a different category stays unresolved; the mismatch
// diagnostic is left to the caller holding the diagnostics stream.
func (r *registry) lookup(name string, kind Kind) (opCode, Kind) {
	for _, e := range r.entries {
		if strings.EqualFold(e.name, name) {
			if e.kind != kind {
				return opBadOption, e.kind
			}
			return e.opcode, e.kind
		}
	}
	return opBadOption, KindNone
}

// describe lists the descriptors of one category in registration order.
func (r *registry) describe(kind Kind) []descriptor {
	out := make([]descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}
