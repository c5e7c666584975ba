package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordbiter/internal/utils"
)

// MinWordLength is the shortest word a loader keeps by default.
// Searches filter to their own configured minimum at run time; the
// loader floor just keeps one- and two-letter noise out of the trie.
const MinWordLength = 3

// builtinSample is the fallback word set used when no dictionary file
// can be found. Large enough for smoke testing, nothing more.
var builtinSample = []string{
	"CAT", "CATS", "SAT", "HAT", "HATS", "THE", "THAT", "THIS",
	"BAT", "BATS", "RAT", "RATS", "MAT", "MATS", "ATE", "EAT",
	"TEA", "SET", "SIT", "HIT", "HITS", "ACE", "ACT", "ACTS",
	"ART", "RATE", "RATED", "TAR", "TARE", "EAR", "ERA", "TEAR",
}

// Load reads a word list from path, detecting the file format.
// Words shorter than minLen are dropped at load time.
func Load(path string, minLen int) (*Dict, error) {
	if minLen < 1 {
		minLen = MinWordLength
	}

	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	var words []string
	switch format {
	case FormatBinary:
		words, err = readBinaryWords(path)
	default:
		words, err = readTextWords(path)
	}
	if err != nil {
		return nil, err
	}

	kept := words[:0]
	for _, w := range words {
		if len(w) >= minLen && utils.IsLettersOnly(w) {
			kept = append(kept, w)
		}
	}

	d := New(kept)
	d.source = path
	log.Debugf("Loaded %d words from %s (%s)", d.Len(), path, formatLabel(format))
	return d, nil
}

// LoadWithFallback tries each path in order and falls back to the
// builtin sample set when none can be loaded. It never fails; callers
// that need a hard error should use Load directly.
func LoadWithFallback(paths []string, minLen int) *Dict {
	for _, path := range paths {
		if !utils.FileExists(path) {
			continue
		}
		d, err := Load(path, minLen)
		if err != nil {
			log.Warnf("Skipping dictionary %s: %v", path, err)
			continue
		}
		return d
	}

	log.Warn("No dictionary file found, using builtin sample set")
	d := New(builtinSample)
	d.source = "builtin"
	return d
}

// readTextWords reads a one-word-per-line list
func readTextWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}

// readBinaryWords reads the length-prefixed binary list:
// int32 LE word count, then per word a uint16 LE length and the bytes.
func readBinaryWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return nil, fmt.Errorf("failed to read word list header: %w", err)
	}

	words := make([]string, 0, totalEntries)
	for count := 0; count < int(totalEntries); count++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return nil, fmt.Errorf("failed to read word: %w", err)
		}
		words = append(words, string(wordBytes))
	}
	return words, nil
}

// WriteBinary saves a Dict in the binary word-list format.
func WriteBinary(d *Dict, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	words := d.Words()

	if err := binary.Write(writer, binary.LittleEndian, int32(len(words))); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, w := range words {
		if err := binary.Write(writer, binary.LittleEndian, uint16(len(w))); err != nil {
			return fmt.Errorf("failed to write word length: %w", err)
		}
		if _, err := writer.WriteString(w); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}
	return writer.Flush()
}

func formatLabel(format FileFormat) string {
	if info, ok := GetFormatInfo(format); ok {
		return info.Description
	}
	return "unknown"
}
