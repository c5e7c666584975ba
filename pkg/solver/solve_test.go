package solver

import (
	"reflect"
	"testing"

	"github.com/bastiangx/wordbiter/pkg/dictionary"
)

func boardDict() *dictionary.Dict {
	return dictionary.New([]string{
		"TEA", "EAT", "ATE", "RAT", "ART", "TAR",
		"RATE", "TARE", "TEAR", "RATED",
	})
}

// Board from singles A/E/T plus the horizontal piece RD.
// Horizontally RD is one atomic token, so only the pure-single words
// are spellable. Vertically RD splits into R and D sharing a group,
// so RATED (needing both) stays unreachable while the R words appear.
func TestSolveEndToEnd(t *testing.T) {
	input := Input{
		Single:     []string{"A", "E", "T"},
		Horizontal: []string{"RD"},
	}

	result, err := Solve(input, boardDict(), DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	wantH := []string{"ATE", "EAT", "TEA"}
	if !reflect.DeepEqual(result.Horizontal, wantH) {
		t.Errorf("horizontal = %v, want %v", result.Horizontal, wantH)
	}

	wantV := []string{
		"RATE", "TARE", "TEAR",
		"ART", "ATE", "EAT", "RAT", "TAR", "TEA",
	}
	if !reflect.DeepEqual(result.Vertical, wantV) {
		t.Errorf("vertical = %v, want %v", result.Vertical, wantV)
	}

	if result.Total() != len(wantH)+len(wantV) {
		t.Errorf("Total = %d, want %d", result.Total(), len(wantH)+len(wantV))
	}
}

func TestSolveDirectionFilter(t *testing.T) {
	input := Input{
		Single:     []string{"A", "E", "T"},
		Horizontal: []string{"RD"},
	}
	dict := boardDict()

	opts := DefaultOptions()
	opts.Direction = HorizontalOnly
	result, err := Solve(input, dict, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(result.Horizontal) == 0 || len(result.Vertical) != 0 {
		t.Errorf("horizontal-only result = %v", result)
	}

	opts.Direction = VerticalOnly
	result, err = Solve(input, dict, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(result.Vertical) == 0 || len(result.Horizontal) != 0 {
		t.Errorf("vertical-only result = %v", result)
	}
}

func TestSolvePropagatesValidation(t *testing.T) {
	opts := DefaultOptions()
	opts.MinLength = 0

	_, err := Solve(Input{Single: []string{"A"}}, boardDict(), opts)
	if err == nil {
		t.Fatal("Solve accepted min length 0")
	}
}

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", Both, false},
		{"both", Both, false},
		{"h", HorizontalOnly, false},
		{"horizontal", HorizontalOnly, false},
		{"V", VerticalOnly, false},
		{"vertical", VerticalOnly, false},
		{"diagonal", Both, true},
	}

	for _, tc := range testCases {
		got, err := ParseDirection(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDirection(%q) accepted", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}
