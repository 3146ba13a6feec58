package match

import (
	"github.com/lamyinia/riichi/internal/mahjong/agent"
	"github.com/lamyinia/riichi/internal/mahjong/analyzer"
	"github.com/lamyinia/riichi/internal/mahjong/score"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// byType wraps a bare tile type for the hand API, which addresses tiles by
// value (Tile) rather than by type, to stay red-five aware.
func byType(t tile.Type) tile.Tile { return tile.Tile{Type: t} }

func countOf(tiles []tile.Tile, t tile.Type) int {
	n := 0
	for _, tt := range tiles {
		if tt.Type == t {
			n++
		}
	}
	return n
}

func counts34(tiles []tile.Tile) analyzer.Hand34 {
	return analyzer.FromTiles(tiles)
}

// canRon reports whether seat has a legal, yaku-bearing win on winTile
// (ron requires at least one yaku per spec §4.C), and is not furiten.
func (c *Coordinator) canRon(seat *Seat, winTile tile.Tile) bool {
	if seat.Furiten || seat.TempFuriten {
		return false
	}
	all := append(seat.Hand.All(), winTile)
	h34 := counts34(all)
	fixed := len(seat.Melds)
	if !c.searcher.IsAgariAny(h34, fixed) {
		return false
	}
	res := c.evaluateWin(seat, winTile, false)
	return res.Han > 0 || res.YakumanMult > 0
}

// canPon reports whether seat holds at least two copies of t.
func canPon(seat *Seat, t tile.Type) bool {
	return countOf(seat.Hand.Iter(), t) >= 2
}

// canOpenKan reports whether seat holds at least three copies of t (a
// daiminkan, called directly off a discard).
func canOpenKan(seat *Seat, t tile.Type) bool {
	return countOf(seat.Hand.Iter(), t) >= 3
}

// chiCombinations enumerates every distinct pair of hand tiles that, with
// t, completes a sequence: the low-edge pair, the middle (kanchan) pair,
// and the high-edge pair, whichever are actually held. Matches spec §8
// scenario 1 exactly: holding 1-9m and discard 4m yields {(2m,3m),
// (3m,5m), (5m,6m)}.
func chiCombinations(seat *Seat, t tile.Type) []agent.Call {
	if !t.IsNumbered() {
		return nil
	}
	n := t.Number()
	suitBase := t - tile.Type(n-1)
	has := func(delta int) bool {
		if n+delta < 1 || n+delta > 9 {
			return false
		}
		return countOf(seat.Hand.Iter(), suitBase+tile.Type(n+delta-1)) > 0
	}
	at := func(delta int) tile.Type { return suitBase + tile.Type(n+delta-1) }

	var out []agent.Call
	if has(-2) && has(-1) {
		out = append(out, agent.Call{Kind: agent.CallChi, Tiles: []tile.Type{at(-2), at(-1)}})
	}
	if has(-1) && has(1) {
		out = append(out, agent.Call{Kind: agent.CallChi, Tiles: []tile.Type{at(-1), at(1)}})
	}
	if has(1) && has(2) {
		out = append(out, agent.Call{Kind: agent.CallChi, Tiles: []tile.Type{at(1), at(2)}})
	}
	return out
}

// offersFor computes the call menu for one non-discarding seat.
func (c *Coordinator) offersFor(seat *Seat, discarder tile.Wind, discard tile.Tile) []agent.Call {
	var out []agent.Call
	if c.canRon(seat, discard) {
		out = append(out, agent.Call{Kind: agent.CallRon})
	}
	if canPon(seat, discard.Type) {
		out = append(out, agent.Call{Kind: agent.CallPon, Tiles: []tile.Type{discard.Type, discard.Type}})
	}
	if canOpenKan(seat, discard.Type) {
		out = append(out, agent.Call{Kind: agent.CallKan, Tiles: []tile.Type{discard.Type, discard.Type, discard.Type}})
	}
	if seat.Wind == discarder.Next() {
		out = append(out, chiCombinations(seat, discard.Type)...)
	}
	return out
}

// evaluateWin assembles a score.Hand for seat winning on winTile (tsumo or
// ron) and runs the scorer.
func (c *Coordinator) evaluateWin(seat *Seat, winTile tile.Tile, tsumo bool) *score.Result {
	return score.Evaluate(c.buildWinHand(seat, winTile, tsumo))
}

// buildWinHand assembles the score.Hand the scorer and settler both need.
// Riichi3 is left at zero here: the coordinator pays riichi sticks out of
// the table pot directly (settleWin), rather than folding them into the
// per-loser points total the way pointsFor would.
func (c *Coordinator) buildWinHand(seat *Seat, winTile tile.Tile, tsumo bool) score.Hand {
	closed := seat.Hand.All()
	if !tsumo {
		closed = append(append([]tile.Tile{}, closed...), winTile)
	}
	groups := make([]score.Group, len(seat.Melds))
	for i, m := range seat.Melds {
		groups[i] = m.Group
	}

	all := append(append([]tile.Tile{}, closed...), meldTiles(seat.Melds)...)
	dora := countDora(all, c.wall.DoraIndicators())
	uradora := 0
	if seat.Riichi {
		uradora = countDora(all, c.wall.RevealUraDora())
	}

	h := score.Hand{
		ClosedTiles:  closed,
		Melds:        groups,
		WinTile:      winTile,
		Tsumo:        tsumo,
		RoundWind:    c.state.RoundWind,
		SeatWind:     tile.Wind((int(seat.Wind) - int(c.state.DealerSeat) + 4) % 4),
		IsDealer:     seat.Wind == c.state.DealerSeat,
		Riichi:       seat.Riichi,
		DoubleRiichi: seat.DoubleRiichi,
		Ippatsu:      seat.Ippatsu,
		Dora:         dora,
		UraDora:      uradora,
		Honba:        c.state.Honba,
	}
	return h
}

func meldTiles(melds []agent.Meld) []tile.Tile {
	var out []tile.Tile
	for _, m := range melds {
		n := 3
		if m.Kind == score.GroupQuad {
			n = 4
		}
		switch m.Kind {
		case score.GroupSequence:
			out = append(out, tile.Tile{Type: m.Low}, tile.Tile{Type: m.Low + 1}, tile.Tile{Type: m.Low + 2})
		default:
			for i := 0; i < n; i++ {
				out = append(out, tile.Tile{Type: m.Low})
			}
		}
	}
	return out
}

func countDora(tiles []tile.Tile, indicators []tile.Type) int {
	n := 0
	for _, t := range tiles {
		if t.Red {
			n++
		}
		for _, ind := range indicators {
			if t.Type == ind.Next() {
				n++
			}
		}
	}
	return n
}

// turnMenu computes everything seat may do on its own turn, per spec §4.F
// step 7 and §4.C's eligibility rules.
func (c *Coordinator) turnMenu(seat *Seat, drawn tile.Tile) agent.TurnMenu {
	menu := agent.TurnMenu{Hand: seat.Hand.Iter()}
	// Only a real draw (closed-kan replacement or the turn's own draw) gets
	// surfaced as Drawn; a seat that just pon'd/chi'd has no drawn tile and
	// must discard straight from its existing hand.
	if d, ok := seat.Hand.Drawn(); ok {
		menu.Drawn = &d
	}

	h34 := counts34(seat.Hand.All())
	if c.searcher.IsAgariAny(h34, len(seat.Melds)) {
		res := c.evaluateWin(seat, drawn, true)
		menu.CanTsumo = res.Han > 0 || res.YakumanMult > 0
	}

	menu.CanNineTerminals = c.canDeclareNineTerminals(seat)

	// h34 already folds in the drawn tile (hand.Hand.All appends it), so a
	// plain count-of-four/count-of-one check finds the candidates; a riichi
	// seat is offered a closed kan only if its waits stay FrozenWaits.
	for i := 0; i < tile.NumTypes; i++ {
		if h34[i] != 4 {
			continue
		}
		if seat.Riichi {
			after := h34
			after[i] = 0
			w := c.searcher.Waits(after, len(seat.Melds)+1)
			same := len(w) == len(seat.FrozenWaits)
			for j := 0; same && j < len(w); j++ {
				same = w[j] == seat.FrozenWaits[j]
			}
			if !same {
				continue
			}
		}
		menu.ClosedKanTiles = append(menu.ClosedKanTiles, tile.Type(i))
	}
	for _, m := range seat.Melds {
		if m.Kind == score.GroupTriplet && !m.Concealed && h34[m.Low] > 0 {
			menu.PromotedKanTiles = append(menu.PromotedKanTiles, m.Low)
		}
	}
	return menu
}

// canDeclareNineTerminals reports whether seat may abort with nine
// different terminal/honor tiles, only legal on an uncalled-upon first
// draw of the hand (spec §8 scenario 2).
func (c *Coordinator) canDeclareNineTerminals(seat *Seat) bool {
	if c.state.DeclaredKans > 0 || c.anyCallMadeThisHand || len(seat.River) > 0 {
		return false
	}
	if seat.Hand.Len()+1 != 14 {
		return false
	}
	seen := map[tile.Type]bool{}
	for _, t := range seat.Hand.All() {
		if t.Type.IsTerminalOrHonor() {
			seen[t.Type] = true
		}
	}
	return len(seen) >= 9
}
