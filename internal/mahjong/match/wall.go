// Package match implements the turn/round coordinator: wall management,
// the hand loop, call resolution, and scoring, per spec §4.F. It is
// grounded on the teacher's riichi_mahjong_4p_engine.go/turn_manager.go,
// translated from that file's event-driven actor loop (NotifyEvent/
// processEvent dispatching on share.GameEvent) into the synchronous,
// single-threaded state machine the spec mandates - the event queue and
// per-player network timers are a distributed-service concern this
// simulator's Non-goals exclude (see DESIGN.md).
package match

import (
	"sort"

	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// wallSize is the full physical deck, 136 = 34 distinct tiles * 4 copies.
const wallSize = 136

// deadWallSize is the number of tiles reserved behind the break point for
// dora/ura-dora indicators and kan replacement draws.
const deadWallSize = 14

// Wall holds the full 136-tile deck in its physical draw order, the break
// point computed from the roll of two dice, and the cursors tracking live
// draws, dora reveals, and kan replacement draws against the dead wall.
type Wall struct {
	tiles      []tile.Tile
	breakPoint int

	liveCursor int // next physical index to draw from the live wall
	liveDrawn  int // count of live draws made so far (deal + turn draws)

	deadTaken map[int]bool // dead-wall offsets (1..14, counted back from breakPoint) already consumed
	doraCount int          // omote dora indicators revealed so far (1 at round start, +1 per kan, max 5)
	uraCount  int          // ura dora indicators revealed so far (riichi win only, max 5)
}

// BreakPoint computes the wall's break point from a dice roll, per spec
// §4.F: ((d1+d2-1) mod 4) * 34 + (d1+d2)*2.
func BreakPoint(d1, d2 int) int {
	sum := d1 + d2
	return (((sum-1)%4)*34 + sum*2) % wallSize
}

// NewWall builds a freshly shuffled wall (shuffling is the caller's
// responsibility - NewWall takes tiles already in final physical order)
// broken at the point the given dice roll selects.
func NewWall(tiles []tile.Tile, d1, d2 int) *Wall {
	if len(tiles) != wallSize {
		panic("match: a wall must contain exactly 136 tiles")
	}
	bp := BreakPoint(d1, d2)
	w := &Wall{
		tiles:      tiles,
		breakPoint: bp,
		liveCursor: bp,
		deadTaken:  map[int]bool{},
	}
	w.revealDora() // the initial indicator, face up before the first discard
	return w
}

// liveRemaining is how many tiles the live wall still holds. The dead wall
// is fixed at 14 tiles regardless of how many of its slots have been
// consumed for dora/replacement draws - those come out of the same
// physical 14, not out of the live pool.
func (w *Wall) liveRemaining() int {
	return (wallSize - deadWallSize) - w.liveDrawn
}

// Draw takes the next live tile, advancing the live cursor. ok is false
// once the live wall is exhausted (the hand ends by exhaustive draw).
func (w *Wall) Draw() (t tile.Tile, ok bool) {
	if w.liveRemaining() <= 0 {
		return tile.Tile{}, false
	}
	t = w.tiles[w.liveCursor]
	w.liveCursor = (w.liveCursor + 1) % wallSize
	w.liveDrawn++
	return t, true
}

// Remaining reports the number of tiles left to draw from the live wall,
// for snapshotting and for the UI agent's status line.
func (w *Wall) Remaining() int {
	return w.liveRemaining()
}

// deadOffsetIndex maps the i-th dora/ura slot (0-indexed) to its physical
// wall index, counting backward from the break point: dora indicators sit
// at breakPoint-5, breakPoint-7, breakPoint-9, ...; the corresponding
// ura-dora indicator for each sits directly behind it at -6, -8, -10, ...
// This flat-array placement is this implementation's resolution of how a
// single linear 136-tile wall realizes the physically two-row dead wall
// stack the rules describe (the spec's formula gives only the omote
// sequence; the ura placement is this implementation's own call).
// DrawReplacement scans offsets 1..14 and skips the slots marked taken
// (revealed omote indicators and earlier replacements; ura slots are never
// marked), so the first four replacement draws take offsets 1-4, clear of
// every dora and ura slot.
func doraOffset(i int) int   { return 5 + 2*i }
func uraOffset(i int) int    { return 6 + 2*i }

func (w *Wall) physicalIndex(offsetFromBreak int) int {
	return ((w.breakPoint-offsetFromBreak)%wallSize + wallSize) % wallSize
}

// revealDora exposes the next omote dora indicator (called once at round
// start and once per declared kan, up to 5 total).
func (w *Wall) revealDora() {
	if w.doraCount >= 5 {
		return
	}
	off := doraOffset(w.doraCount)
	w.deadTaken[off] = true
	w.doraCount++
}

// RevealKanDora is called when a kan is declared; it exposes one
// additional omote dora indicator.
func (w *Wall) RevealKanDora() {
	w.revealDora()
}

// DoraIndicators returns the types of every omote dora indicator revealed
// so far, in reveal order.
func (w *Wall) DoraIndicators() []tile.Type {
	out := make([]tile.Type, w.doraCount)
	for i := range out {
		out[i] = w.tiles[w.physicalIndex(doraOffset(i))].Type
	}
	return out
}

// RevealUraDora exposes every ura-dora indicator paired with an
// already-revealed omote indicator; called once, only for a riichi win.
func (w *Wall) RevealUraDora() []tile.Type {
	w.uraCount = w.doraCount
	out := make([]tile.Type, w.uraCount)
	for i := range out {
		out[i] = w.tiles[w.physicalIndex(uraOffset(i))].Type
	}
	return out
}

// RestoreWall rebuilds a Wall from the cursor fields a snapshot persists
// (spec §6's --from-state resume): tiles must be in the same physical
// order Save captured, and the cursor/count fields must come from the
// same snapshot as tiles.
func RestoreWall(tiles []tile.Tile, breakPoint, liveDrawn, doraCount, uraCount int, deadTakenOffsets []int) *Wall {
	w := &Wall{
		tiles:      tiles,
		breakPoint: breakPoint,
		liveCursor: (breakPoint + liveDrawn) % wallSize,
		liveDrawn:  liveDrawn,
		deadTaken:  map[int]bool{},
		doraCount:  doraCount,
		uraCount:   uraCount,
	}
	for _, off := range deadTakenOffsets {
		w.deadTaken[off] = true
	}
	return w
}

// LiveDrawnCount, DoraCount, UraCount, BreakPointValue, Tiles, and
// DeadTakenOffsets expose the cursor fields a snapshot must persist
// losslessly; RestoreWall is their inverse.
func (w *Wall) LiveDrawnCount() int  { return w.liveDrawn }
func (w *Wall) DoraCount() int       { return w.doraCount }
func (w *Wall) UraCount() int        { return w.uraCount }
func (w *Wall) BreakPointValue() int { return w.breakPoint }

func (w *Wall) Tiles() []tile.Tile {
	out := make([]tile.Tile, len(w.tiles))
	copy(out, w.tiles)
	return out
}

func (w *Wall) DeadTakenOffsets() []int {
	out := make([]int, 0, len(w.deadTaken))
	for off := range w.deadTaken {
		out = append(out, off)
	}
	sort.Ints(out)
	return out
}

// DrawReplacement pulls a kan's replacement tile from the last available
// slot before the break point, scanning backward past slots already taken
// by a dora reveal or an earlier replacement draw.
func (w *Wall) DrawReplacement() (tile.Tile, bool) {
	for off := 1; off <= deadWallSize; off++ {
		if w.deadTaken[off] {
			continue
		}
		w.deadTaken[off] = true
		return w.tiles[w.physicalIndex(off)], true
	}
	return tile.Tile{}, false
}
