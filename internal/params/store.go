package params

import (
	"fmt"
	"sort"
	"sync"

	"revdisp/internal/domain"
)

// builders maps each supported fiscal year to its literal parameter tree.
// Adding a year means adding one builder; calculator logic never changes.
var builders = map[int]func() *Parameters{
	2023: year2023,
	2024: year2024,
	2025: year2025,
}

// Store resolves and caches the parameter tree for each fiscal year. A tree
// is built on first access and is read-only afterwards; Reset exists for
// test isolation only.
type Store struct {
	mu    sync.Mutex
	cache map[int]*Parameters
}

// NewStore creates an empty parameter store.
func NewStore() *Store {
	return &Store{cache: make(map[int]*Parameters)}
}

// Resolve returns the parameter tree for the given fiscal year, building
// and caching it on first access. Unsupported years fail with
// domain.ErrUnsupportedYear before any arithmetic runs.
func (s *Store) Resolve(year int) (*Parameters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.cache[year]; ok {
		return p, nil
	}
	build, ok := builders[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnsupportedYear, year)
	}
	p := build()
	s.cache[year] = p
	return p, nil
}

// Reset clears the cache.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[int]*Parameters)
}

// SupportedYears lists every year with a published parameter tree, sorted.
func (s *Store) SupportedYears() []int {
	years := make([]int, 0, len(builders))
	for y := range builders {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Default is the process-wide store used by the CLI and server.
var Default = NewStore()

// Resolve resolves a year against the default store.
func Resolve(year int) (*Parameters, error) { return Default.Resolve(year) }

// Reset clears the default store's cache.
func Reset() { Default.Reset() }

// SupportedYears lists the default store's supported years.
func SupportedYears() []int { return Default.SupportedYears() }
