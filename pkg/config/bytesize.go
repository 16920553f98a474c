package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ByteSize is a non-negative count of bytes.
type ByteSize uint64

// ErrInvalidByteSize reports a size literal that does not match
// <integer><unit suffix> with a suffix from the supported table.
var ErrInvalidByteSize = errors.New("invalid byte size")

// ValidSuffixes is the guidance printed when a size literal is rejected.
const ValidSuffixes = "Valid suffixes:\n" +
	"B - multiply by 1 (bytes)\n" +
	"KiB - multiply by 1024 (kibibytes)\n" +
	"MiB - multiply by 1024*1024 (mebibytes)\n" +
	"GiB - multiply by 1024*1024*1024 (gibibytes)\n" +
	"KB - multiply by 1000 (kilobytes)\n" +
	"MB - multiply by 1000*1000 (megabytes)\n" +
	"GB - multiply by 1000*1000*1000 (gigabytes)\n"

// Binary (1024-based) and decimal (1000-based) units are both supported and
// deliberately distinct: 10MiB and 10MB are different sizes.
var suffixScales = []struct {
	suffix string
	scale  ByteSize
}{
	{"b", 1},
	{"kib", 1 << 10},
	{"mib", 1 << 20},
	{"gib", 1 << 30},
	{"kb", 1000},
	{"mb", 1000 * 1000},
	{"gb", 1000 * 1000 * 1000},
}

// ParseByteSize converts a literal like "40MiB" or "10MB" into bytes.
// The unit suffix is mandatory and matched case-insensitive; anything after
// the suffix, or a suffix outside the table, is rejected.
func ParseByteSize(text string) (ByteSize, error) {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("%w: no leading integer in %q", ErrInvalidByteSize, text)
	}
	n, err := strconv.ParseUint(text[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidByteSize, text, err)
	}
	suffix := text[i:]
	if suffix == "" {
		return 0, fmt.Errorf("%w: missing unit suffix in %q", ErrInvalidByteSize, text)
	}
	lowered := strings.ToLower(suffix)
	for _, s := range suffixScales {
		if lowered != s.suffix {
			continue
		}
		size := ByteSize(n) * s.scale
		if n != 0 && size/s.scale != ByteSize(n) {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidByteSize, text)
		}
		return size, nil
	}
	return 0, fmt.Errorf("%w: unknown suffix %q in %q", ErrInvalidByteSize, suffix, text)
}
