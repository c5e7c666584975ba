// Package cli handles interactive board entry and result display.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordbiter/internal/logger"
	"github.com/bastiangx/wordbiter/internal/utils"
	"github.com/bastiangx/wordbiter/pkg/dictionary"
	"github.com/bastiangx/wordbiter/pkg/solver"
)

const separatorWidth = 50

// InputHandler prompts for the three tile lists, solves the board and
// prints the longest words per axis. Options come from flags/config.
type InputHandler struct {
	dict         *dictionary.Dict
	opts         solver.Options
	displayLimit int
	reader       *bufio.Reader
	ui           *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(dict *dictionary.Dict, opts solver.Options, displayLimit int) *InputHandler {
	return &InputHandler{
		dict:         dict,
		opts:         opts,
		displayLimit: displayLimit,
		reader:       bufio.NewReader(os.Stdin),
		ui:           logger.Default(""),
	}
}

// Start runs the interface loop: one board per round, Ctrl+C to exit.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	h.ui.Print(strings.Repeat("=", separatorWidth))
	h.ui.Printf("WordBiter -- %s words loaded (%s)", utils.FormatWithCommas(h.dict.Len()), h.dict.Source())
	h.ui.Print(strings.Repeat("=", separatorWidth))

	for {
		single, err := h.promptTiles("Single tiles (space-separated, blank for none): ", false)
		if err != nil {
			return err
		}
		horizontal, err := h.promptTiles("Horizontal tiles: ", true)
		if err != nil {
			return err
		}
		vertical, err := h.promptTiles("Vertical tiles: ", true)
		if err != nil {
			return err
		}

		if len(single)+len(horizontal)+len(vertical) == 0 {
			log.Warn("No tiles entered, try again (Ctrl+C to exit)")
			continue
		}

		h.solveBoard(solver.Input{
			Single:     single,
			Horizontal: horizontal,
			Vertical:   vertical,
		})
	}
}

// promptTiles reads one line of tiles, re-prompting until valid.
func (h *InputHandler) promptTiles(prompt string, multi bool) ([]string, error) {
	for {
		h.ui.Print(prompt)
		line, err := h.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		tiles := utils.SplitTiles(strings.TrimSpace(line))
		if bad, ok := utils.ValidateTiles(tiles, multi); !ok {
			if multi {
				log.Errorf("Invalid tile %q: need 2-%d letters", bad, utils.MaxTileLetters)
			} else {
				log.Errorf("Invalid tile %q: need 1-%d letters", bad, utils.MaxTileLetters)
			}
			continue
		}
		return tiles, nil
	}
}

// solveBoard runs both searches and displays the results.
func (h *InputHandler) solveBoard(input solver.Input) {
	start := time.Now()
	result, err := solver.Solve(input, h.dict, h.opts)
	if err != nil {
		log.Errorf("Solve failed: %v", err)
		return
	}
	elapsed := time.Since(start)

	if h.opts.Direction != solver.VerticalOnly {
		h.displayWords(result.Horizontal, "HORIZONTAL WORDS")
	}
	if h.opts.Direction != solver.HorizontalOnly {
		h.displayWords(result.Vertical, "VERTICAL WORDS")
	}

	h.ui.Printf("Found %s words in %v", utils.FormatWithCommas(result.Total()), elapsed)
	h.ui.Print("")
}

// displayWords prints the top longest words for one axis.
func (h *InputHandler) displayWords(words []string, title string) {
	h.ui.Print(strings.Repeat("=", separatorWidth))
	h.ui.Print(title)
	h.ui.Print(strings.Repeat("=", separatorWidth))

	top := words
	if len(top) > h.displayLimit {
		top = top[:h.displayLimit]
	}
	h.ui.Printf("Showing top %d longest words (out of %d total):", len(top), len(words))

	if len(top) == 0 {
		h.ui.Print("  No valid words found.")
		return
	}
	for _, word := range top {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", word)
		h.ui.Printf("  %-20s (%d letters)", clWord, len(word))
	}
}
