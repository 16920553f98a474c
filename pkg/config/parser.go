package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zvault/zvault/pkg/compression"
	"github.com/zvault/zvault/pkg/model"
	"go.uber.org/zap"
)

// InvalidValueError reports a value bad enough that the invocation should
// abort rather than fall through to help output, notably a broken thread
// count.
type InvalidValueError struct {
	Option string
	Value  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value specified: %s", e.Option, e.Value)
}

// ParseOption resolves one "name" or "name=value" token within a category
// and applies it. It returns (true, nil) when the option was applied,
// (false, nil) when it was rejected with a diagnostic, and a non-nil error
// for fatal values. On success exactly one field of the matching half is
// mutated; on rejection nothing is.
//
// Whether a rejection aborts the invocation is the caller's decision.
func (c *Config) ParseOption(token string, kind Kind) (bool, error) {
	name, value, hasValue := strings.Cut(token, "=")
	if hasValue {
		c.l.Debug("parsing option", zap.Stringer("kind", kind), zap.String("name", name), zap.String("value", value))
	} else {
		c.l.Debug("parsing option", zap.Stringer("kind", kind), zap.String("name", name))
	}

	opcode, foundKind := c.reg.lookup(name, kind)
	if opcode == opBadOption && foundKind != KindNone {
		fmt.Fprintf(c.diag, "invalid option type specified for %s: this is a %s option, not a %s option\n",
			name, foundKind, kind)
	}

	switch opcode {
	case opBundleCompressionMethod:
		if !hasValue {
			return false, nil
		}
		return c.applyCompressionMethod(value), nil

	case opRuntimeThreads:
		if !hasValue {
			return false, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return false, &InvalidValueError{Option: "threads", Value: value}
		}
		c.runtime.Threads = n
		c.l.Debug("runtime option applied", zap.Int("threads", n))
		return true, nil

	case opRuntimeCacheSize:
		if !hasValue {
			return false, nil
		}
		size, err := ParseByteSize(value)
		if err != nil {
			fmt.Fprintf(c.diag, "invalid cache size specified (%s): %v\n%s", value, err, ValidSuffixes)
			return false, nil
		}
		c.runtime.CacheSize = size
		c.l.Debug("runtime option applied", zap.Uint64("cacheSize", uint64(size)))
		return true, nil

	case opRuntimeExchange:
		if !hasValue {
			return false, nil
		}
		switch value {
		case "backups":
			c.runtime.Exchange.Set(model.ExchangeBackups)
		case "bundles":
			c.runtime.Exchange.Set(model.ExchangeBundles)
		case "index":
			c.runtime.Exchange.Set(model.ExchangeIndex)
		default:
			fmt.Fprintf(c.diag, "invalid exchange value specified: %s\nMust be one of the following: backups, bundles, index\n", value)
			return false, nil
		}
		c.l.Debug("runtime option applied", zap.Stringer("exchange", c.runtime.Exchange))
		return true, nil

	default:
		// chunk.max_size and bundle.max_payload_size resolve but have no
		// assignment handler: they are fixed at repository creation and the
		// config document is edited directly to change them.
		return false, nil
	}
}

// applyCompressionMethod resolves a compression name or alias against the
// capability registry and records the selection.
func (c *Config) applyCompressionMethod(value string) bool {
	var canonical string
	switch value {
	case "lzma":
		canonical = "lzma"
	case "lzo", "lzo1x_1":
		canonical = "lzo1x_1"
	default:
		fmt.Fprintf(c.diag, "zvault doesn't support compression method '%s'. You may need a newer version.\n", value)
		return false
	}

	m, ok := compression.Find(canonical)
	if !ok {
		fmt.Fprintf(c.diag, "this zvault binary is built without %s support, but the format would support it. "+
			"A build carrying the %s capability can read and write such repositories.\n", canonical, canonical)
		return false
	}

	c.selected = m
	c.storable.CompressionMethod = m.Name()
	c.l.Debug("storable option applied", zap.String("compression_method", m.Name()))
	return true
}
