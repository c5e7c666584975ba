package utils

import (
	"strings"
	"unicode"
)

// MaxTileLetters caps a single multi-letter tile. Real boards use two
// or three letters per piece; anything past this is a typo.
const MaxTileLetters = 4

// IsLettersOnly checks if a string consists entirely of letters
func IsLettersOnly(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsValidTile checks if input should be accepted as a tile.
// Returns false for empty strings, non-letter content, and tiles
// longer than MaxTileLetters.
func IsValidTile(s string) bool {
	if len(s) == 0 || len(s) > MaxTileLetters {
		return false
	}
	return IsLettersOnly(s)
}

// IsValidMultiTile checks a tile declared as a horizontal or vertical
// piece, which must carry at least two letters.
func IsValidMultiTile(s string) bool {
	return len(s) >= 2 && IsValidTile(s)
}

// SplitTiles parses a space-separated tile line into uppercase tiles.
// Empty fields are dropped; no validation beyond splitting.
func SplitTiles(line string) []string {
	fields := strings.Fields(line)
	tiles := make([]string, 0, len(fields))
	for _, f := range fields {
		tiles = append(tiles, strings.ToUpper(f))
	}
	return tiles
}

// ValidateTiles checks every tile in a list, returning the first
// offending tile and false when one fails.
func ValidateTiles(tiles []string, multi bool) (string, bool) {
	for _, t := range tiles {
		if multi {
			if !IsValidMultiTile(t) {
				return t, false
			}
		} else if !IsValidTile(t) {
			return t, false
		}
	}
	return "", true
}
