package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bastiangx/wordbiter/pkg/dictionary"
)

// Validation failures reported by FindWords. All are caller input
// problems detected before any search work begins.
var (
	ErrViewShape    = errors.New("units and groups must have the same length")
	ErrMinLength    = errors.New("min length must be >= 1")
	ErrMaxLength    = errors.New("max length must be >= min length")
	ErrTooManyUnits = errors.New("view exceeds the unit limit")
)

// maxUnits bounds the view size so used-index and used-group sets fit
// in single uint64 masks. Real boards sit far below this.
const maxUnits = 64

// searcher holds the read-only inputs of one FindWords call.
// Per-branch state (the word so far and both masks) travels through
// walk's arguments by value, so sibling branches never observe each
// other's partial words and no undo step is needed on return.
type searcher struct {
	units  []string
	groups []int
	dict   *dictionary.Dict
	minLen int
	maxLen int
	found  map[string]struct{}
}

// FindWords enumerates every dictionary word spellable from the
// view's units, honoring group exclusion and the [minLen, maxLen]
// length window. Results come back sorted longest first, with
// equal-length words in ascending alphabetical order.
//
// The dictionary doubles as the prefix oracle: any accumulated string
// that is no longer a prefix of some word kills its whole subtree.
func FindWords(view View, dict *dictionary.Dict, minLen, maxLen int) ([]string, error) {
	if len(view.Units) != len(view.Groups) {
		return nil, fmt.Errorf("%w: %d != %d", ErrViewShape, len(view.Units), len(view.Groups))
	}
	if minLen < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrMinLength, minLen)
	}
	if maxLen < minLen {
		return nil, fmt.Errorf("%w: max %d < min %d", ErrMaxLength, maxLen, minLen)
	}
	if len(view.Units) > maxUnits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyUnits, len(view.Units), maxUnits)
	}
	for _, g := range view.Groups {
		if g < 0 || g >= maxUnits {
			return nil, fmt.Errorf("%w: group id %d out of range", ErrTooManyUnits, g)
		}
	}

	// Uppercase all units once up front so the recursion never
	// compares mixed case.
	units := make([]string, len(view.Units))
	for i, u := range view.Units {
		units[i] = strings.ToUpper(u)
	}

	s := &searcher{
		units:  units,
		groups: view.Groups,
		dict:   dict,
		minLen: minLen,
		maxLen: maxLen,
		found:  make(map[string]struct{}),
	}
	s.walk("", 0, 0)

	words := make([]string, 0, len(s.found))
	for w := range s.found {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words, nil
}

// walk extends word by every unit whose index and group are still
// free, in ascending index order. usedIdx and usedGroups are bitmasks
// keyed by unit index and group id.
func (s *searcher) walk(word string, usedIdx, usedGroups uint64) {
	// Length bound first: an over-long word cannot shrink.
	if len(word) > s.maxLen {
		return
	}

	// Dead prefix kills the entire subtree.
	if word != "" && !s.dict.HasPrefix(word) {
		return
	}

	if len(word) >= s.minLen && s.dict.Contains(word) {
		s.found[word] = struct{}{}
	}

	for i, unit := range s.units {
		idxBit := uint64(1) << uint(i)
		groupBit := uint64(1) << uint(s.groups[i])
		if usedIdx&idxBit != 0 || usedGroups&groupBit != 0 {
			continue
		}
		s.walk(word+unit, usedIdx|idxBit, usedGroups|groupBit)
	}
}
