package solver

import (
	"reflect"
	"testing"
)

func TestBuildViewsSingles(t *testing.T) {
	h, v := BuildViews([]string{"C", "A", "T"}, nil, nil)

	wantUnits := []string{"C", "A", "T"}
	wantGroups := []int{0, 1, 2}

	if !reflect.DeepEqual(h.Units, wantUnits) || !reflect.DeepEqual(h.Groups, wantGroups) {
		t.Errorf("horizontal view = %v/%v, want %v/%v", h.Units, h.Groups, wantUnits, wantGroups)
	}
	// Single tiles appear identically in both views.
	if !reflect.DeepEqual(v.Units, h.Units) || !reflect.DeepEqual(v.Groups, h.Groups) {
		t.Errorf("vertical view = %v/%v, want same as horizontal", v.Units, v.Groups)
	}
}

func TestBuildViewsHorizontalPiece(t *testing.T) {
	h, v := BuildViews([]string{"A"}, []string{"RT"}, nil)

	if want := []string{"A", "RT"}; !reflect.DeepEqual(h.Units, want) {
		t.Errorf("horizontal units = %v, want %v", h.Units, want)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(h.Groups, want) {
		t.Errorf("horizontal groups = %v, want %v", h.Groups, want)
	}

	// The piece splits letter by letter in the vertical view, every
	// fragment keeping the whole tile's group id.
	if want := []string{"A", "R", "T"}; !reflect.DeepEqual(v.Units, want) {
		t.Errorf("vertical units = %v, want %v", v.Units, want)
	}
	if want := []int{0, 1, 1}; !reflect.DeepEqual(v.Groups, want) {
		t.Errorf("vertical groups = %v, want %v", v.Groups, want)
	}
}

func TestBuildViewsVerticalPiece(t *testing.T) {
	h, v := BuildViews([]string{"A"}, nil, []string{"ST"})

	if want := []string{"A", "S", "T"}; !reflect.DeepEqual(h.Units, want) {
		t.Errorf("horizontal units = %v, want %v", h.Units, want)
	}
	if want := []int{0, 1, 1}; !reflect.DeepEqual(h.Groups, want) {
		t.Errorf("horizontal groups = %v, want %v", h.Groups, want)
	}
	if want := []string{"A", "ST"}; !reflect.DeepEqual(v.Units, want) {
		t.Errorf("vertical units = %v, want %v", v.Units, want)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(v.Groups, want) {
		t.Errorf("vertical groups = %v, want %v", v.Groups, want)
	}
}

// One group id per input tile, counted across all three lists in
// declaration order.
func TestBuildViewsGroupNumbering(t *testing.T) {
	h, v := BuildViews([]string{"A", "B"}, []string{"CD", "EF"}, []string{"GH"})

	if want := []string{"A", "B", "CD", "EF", "G", "H"}; !reflect.DeepEqual(h.Units, want) {
		t.Errorf("horizontal units = %v, want %v", h.Units, want)
	}
	if want := []int{0, 1, 2, 3, 4, 4}; !reflect.DeepEqual(h.Groups, want) {
		t.Errorf("horizontal groups = %v, want %v", h.Groups, want)
	}
	if want := []string{"A", "B", "C", "D", "E", "F", "GH"}; !reflect.DeepEqual(v.Units, want) {
		t.Errorf("vertical units = %v, want %v", v.Units, want)
	}
	if want := []int{0, 1, 2, 2, 3, 3, 4}; !reflect.DeepEqual(v.Groups, want) {
		t.Errorf("vertical groups = %v, want %v", v.Groups, want)
	}

	if h.Len() != 6 || v.Len() != 7 {
		t.Errorf("view lengths = %d/%d, want 6/7", h.Len(), v.Len())
	}
}

func TestBuildViewsEmpty(t *testing.T) {
	h, v := BuildViews(nil, nil, nil)
	if h.Len() != 0 || v.Len() != 0 {
		t.Errorf("empty input produced non-empty views: %v / %v", h, v)
	}
}
