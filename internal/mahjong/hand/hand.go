// Package hand implements the ordered hand: an insertion-sorted multiset of
// tiles whose indices stay meaningful across insertions, so a UI (or a
// scripted agent) can address "the second 5m" rather than a tile value.
package hand

import "github.com/lamyinia/riichi/internal/mahjong/tile"

// Hand is a closed hand: an ordered slice of tiles plus an optional
// just-drawn tile. Called melds are not stored here; the caller keeps them
// (match.Seat.Melds). It does not itself enforce the
// 13/14-tile invariant described in spec §3 - callers (the match coordinator)
// own that bookkeeping, since a hand mid-call can transiently hold an odd
// count.
type Hand struct {
	tiles []tile.Tile
	drawn *tile.Tile
}

// New builds an empty ordered hand.
func New() *Hand {
	return &Hand{}
}

// less defines the total order insert() splices against: by Type first, with
// a non-red tile sorting before a red tile of the same Type so a freshly
// inserted red five lands after any plain fives already held.
func less(a, b tile.Tile) bool {
	if a.Type != b.Type {
		return a.Type < b.Type
	}
	return !a.Red && b.Red
}

// Insert places t at the first strictly-greater position, preserving the
// order of equal-or-lesser tiles already present.
func (h *Hand) Insert(t tile.Tile) {
	i := 0
	for i < len(h.tiles) && !less(t, h.tiles[i]) {
		i++
	}
	h.tiles = append(h.tiles, tile.Tile{})
	copy(h.tiles[i+1:], h.tiles[i:])
	h.tiles[i] = t
}

// RemoveAt removes and returns the tile at position i. Removal is by
// position, not by value: callers pick which physical tile (e.g. which of
// two held 5m) to discard.
func (h *Hand) RemoveAt(i int) tile.Tile {
	t := h.tiles[i]
	h.tiles = append(h.tiles[:i], h.tiles[i+1:]...)
	return t
}

// IndexOf returns the position of the first tile equal to t (red-five
// ignored), or -1 if absent.
func (h *Hand) IndexOf(t tile.Tile) int {
	for i, ht := range h.tiles {
		if ht.Equal(t) {
			return i
		}
	}
	return -1
}

// Len is the number of closed tiles, excluding the drawn tile.
func (h *Hand) Len() int {
	return len(h.tiles)
}

// Iter returns the tiles in stored order. The returned slice is a copy;
// mutating it does not affect the hand.
func (h *Hand) Iter() []tile.Tile {
	out := make([]tile.Tile, len(h.tiles))
	copy(out, h.tiles)
	return out
}

// At returns the tile stored at position i without removing it.
func (h *Hand) At(i int) tile.Tile {
	return h.tiles[i]
}

// Draw records t as the hand's drawn tile. Drawing while a drawn tile is
// already held is a programmer error (spec §3's hand invariant).
func (h *Hand) Draw(t tile.Tile) {
	if h.drawn != nil {
		panic("hand: draw called while a drawn tile is already held")
	}
	h.drawn = &t
}

// Drawn returns the currently held drawn tile, if any.
func (h *Hand) Drawn() (tile.Tile, bool) {
	if h.drawn == nil {
		return tile.Tile{}, false
	}
	return *h.drawn, true
}

// AbsorbDrawn merges the drawn tile into the ordered closed-tile sequence
// and clears the drawn slot; used once a seat commits to keeping the drawn
// tile (e.g. after a discard of something else).
func (h *Hand) AbsorbDrawn() {
	if h.drawn == nil {
		return
	}
	h.Insert(*h.drawn)
	h.drawn = nil
}

// ClearDrawn discards the drawn tile slot without inserting it, used when the
// drawn tile itself is the one discarded.
func (h *Hand) ClearDrawn() {
	h.drawn = nil
}

// All returns the closed tiles plus the drawn tile if any, in a single
// slice - the shape the hand analyzer consumes.
func (h *Hand) All() []tile.Tile {
	out := h.Iter()
	if h.drawn != nil {
		out = append(out, *h.drawn)
	}
	return out
}

// yamlHand is the persisted shape of a Hand: Tiles and Drawn mirror the
// unexported fields yaml.v3's reflection can't otherwise reach, keeping
// a snapshot round-trip lossless per spec §6.
type yamlHand struct {
	Tiles []tile.Tile `yaml:"tiles"`
	Drawn *tile.Tile  `yaml:"drawn,omitempty"`
}

func (h *Hand) MarshalYAML() (any, error) {
	return yamlHand{Tiles: h.tiles, Drawn: h.drawn}, nil
}

func (h *Hand) UnmarshalYAML(unmarshal func(any) error) error {
	var y yamlHand
	if err := unmarshal(&y); err != nil {
		return err
	}
	h.tiles = y.Tiles
	h.drawn = y.Drawn
	return nil
}
