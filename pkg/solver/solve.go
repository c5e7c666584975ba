package solver

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordbiter/pkg/dictionary"
)

// Direction selects which axis searches Solve runs.
type Direction int

const (
	Both Direction = iota
	HorizontalOnly
	VerticalOnly
)

// ParseDirection maps the user-facing direction names ("h", "v",
// "both", "horizontal", "vertical", "") onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return Both, nil
	case "h", "horizontal":
		return HorizontalOnly, nil
	case "v", "vertical":
		return VerticalOnly, nil
	}
	return Both, fmt.Errorf("unknown direction %q (want h, v or both)", s)
}

func (d Direction) String() string {
	switch d {
	case HorizontalOnly:
		return "horizontal"
	case VerticalOnly:
		return "vertical"
	}
	return "both"
}

// Input carries the three raw tile lists of one board.
type Input struct {
	Single     []string
	Horizontal []string
	Vertical   []string
}

// Options configures one Solve call.
type Options struct {
	MinLength     int
	MaxHorizontal int
	MaxVertical   int
	Direction     Direction
}

// DefaultOptions are the standard board limits: words of three
// letters and up, horizontal runs capped at 8 cells, vertical at 9.
func DefaultOptions() Options {
	return Options{
		MinLength:     3,
		MaxHorizontal: 8,
		MaxVertical:   9,
		Direction:     Both,
	}
}

// Result holds the per-axis word lists, each sorted longest first.
// An axis skipped by the direction filter comes back empty.
type Result struct {
	Horizontal []string
	Vertical   []string
}

// Total returns the combined number of words across both axes.
func (r Result) Total() int {
	return len(r.Horizontal) + len(r.Vertical)
}

// Solve runs the full board query: builds both views, then searches
// each requested axis against the shared dictionary. The dictionary's
// prefix trie is built once at load time, so both axis searches reuse
// the same pruning structure for free.
func Solve(input Input, dict *dictionary.Dict, opts Options) (Result, error) {
	h, v := BuildViews(input.Single, input.Horizontal, input.Vertical)

	log.Debug("Views built",
		"hUnits", h.Len(),
		"vUnits", v.Len(),
		"direction", opts.Direction.String())

	var result Result

	if opts.Direction != VerticalOnly {
		start := time.Now()
		words, err := FindWords(h, dict, opts.MinLength, opts.MaxHorizontal)
		if err != nil {
			return Result{}, fmt.Errorf("horizontal search: %w", err)
		}
		result.Horizontal = words
		log.Debugf("Horizontal search: %d words in %v", len(words), time.Since(start))
	}

	if opts.Direction != HorizontalOnly {
		start := time.Now()
		words, err := FindWords(v, dict, opts.MinLength, opts.MaxVertical)
		if err != nil {
			return Result{}, fmt.Errorf("vertical search: %w", err)
		}
		result.Vertical = words
		log.Debugf("Vertical search: %d words in %v", len(words), time.Since(start))
	}

	return result, nil
}
