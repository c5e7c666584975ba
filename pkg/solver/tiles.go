/*
Package solver finds every dictionary word reachable from a set of
letter tiles laid out along two axes.

Tiles come in three kinds: single letters usable on either axis, and
multi-letter pieces declared horizontal or vertical. A multi-letter
piece is one atomic unit along its own axis but falls apart into
individual letters when read along the other one. Units split from the
same piece stay mutually exclusive: a word may use at most one of
them, since they occupy the same physical tile.

BuildViews turns the three tile lists into one View per axis;
FindWords runs a pruned depth-first search over one View; Solve wires
both together for a whole board.
*/
package solver

// View is the per-axis projection of the board: a unit per placeable
// step and, parallel to it, the id of the tile each unit came from.
// Units sharing a group id exclude each other within one word.
type View struct {
	Units  []string
	Groups []int
}

// BuildViews derives the horizontal and vertical views from the three
// tile lists. One group id is assigned per input tile, so every unit
// split from a multi-letter tile shares the id of its whole-tile
// counterpart in the opposite view. Declaration order is preserved:
// singles first, then horizontal pieces, then vertical ones.
//
// Tiles must be non-empty; validation happens at the input boundary,
// not here.
func BuildViews(single, horizontal, vertical []string) (View, View) {
	var h, v View

	groupID := 0

	// Single-letter tiles appear the same in both views.
	for _, tile := range single {
		h.Units = append(h.Units, tile)
		h.Groups = append(h.Groups, groupID)
		v.Units = append(v.Units, tile)
		v.Groups = append(v.Groups, groupID)
		groupID++
	}

	// A horizontal piece is one atomic unit in the horizontal view and
	// splits into per-letter units, same group, in the vertical view.
	for _, tile := range horizontal {
		h.Units = append(h.Units, tile)
		h.Groups = append(h.Groups, groupID)

		for _, letter := range tile {
			v.Units = append(v.Units, string(letter))
			v.Groups = append(v.Groups, groupID)
		}
		groupID++
	}

	// Vertical pieces are the mirror case.
	for _, tile := range vertical {
		for _, letter := range tile {
			h.Units = append(h.Units, string(letter))
			h.Groups = append(h.Groups, groupID)
		}

		v.Units = append(v.Units, tile)
		v.Groups = append(v.Groups, groupID)
		groupID++
	}

	return h, v
}

// Len returns the number of placeable units in the view.
func (v View) Len() int {
	return len(v.Units)
}
