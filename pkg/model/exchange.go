package model

import "strings"

// ExchangeFlag is one category of repository data selected for transfer
// during import/export.
type ExchangeFlag uint8

const (
	// ExchangeBackups selects backup instructions (files under backups/)
	ExchangeBackups ExchangeFlag = 1 << iota
	// ExchangeBundles selects bundles with data (files under bundles/)
	ExchangeBundles
	// ExchangeIndex selects chunk indexes (files under index/)
	ExchangeIndex
)

// ExchangeSet accumulates exchange flags. The zero value is the empty set.
type ExchangeSet uint8

// Set adds a flag to the set.
func (s *ExchangeSet) Set(f ExchangeFlag) {
	*s |= ExchangeSet(f)
}

// Has tells whether a flag is in the set.
func (s ExchangeSet) Has(f ExchangeFlag) bool {
	return s&ExchangeSet(f) != 0
}

// IsEmpty tells whether no flag has been selected.
func (s ExchangeSet) IsEmpty() bool {
	return s == 0
}

func (s ExchangeSet) String() string {
	names := make([]string, 0, 3)
	if s.Has(ExchangeBackups) {
		names = append(names, "backups")
	}
	if s.Has(ExchangeBundles) {
		names = append(names, "bundles")
	}
	if s.Has(ExchangeIndex) {
		names = append(names, "index")
	}
	return strings.Join(names, ",")
}
