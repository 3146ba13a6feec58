package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi/internal/mahjong/agent"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

func newTestCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	cfg := Config{
		Seed:          1,
		StartingScore: 25000,
		LastRoundWind: tile.WindEast, // tonpuusen: shortest match that still rotates dealer
	}
	for i := range cfg.Agents {
		cfg.Agents[i] = agent.NewRandom(rand.New(rand.NewSource(int64(i) + 1)))
	}
	return NewCoordinator(cfg)
}

func tilesOfType(types ...tile.Type) []tile.Tile {
	out := make([]tile.Tile, len(types))
	for i, ty := range types {
		out[i] = tile.Tile{Type: ty}
	}
	return out
}

func handWith(types ...tile.Type) *Seat {
	s := newSeat(tile.WindEast)
	for _, ty := range types {
		s.Hand.Insert(tile.Tile{Type: ty})
	}
	return s
}

func TestDealFreshHandDealsThirteenTilesPerSeat(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()

	for _, w := range seatsFrom(tile.WindEast) {
		assert.Equal(t, 13, c.state.seat(w).Hand.Len(), "seat %v should hold 13 tiles before the dealer's first draw", w)
	}
	// 136 - 14 dead wall - 52 dealt = 70 live tiles left to draw.
	assert.Equal(t, 70, c.wall.Remaining())
}

// Matches spec §8 scenario 1: holding 1m-9m and a 4m discard offers exactly
// the low-edge, kanchan, and high-edge chi combinations.
func TestChiCombinationsMatchesScenarioOne(t *testing.T) {
	seat := handWith(tile.Man1, tile.Man2, tile.Man3, tile.Man4, tile.Man5,
		tile.Man6, tile.Man7, tile.Man8, tile.Man9)

	combos := chiCombinations(seat, tile.Man4)
	require.Len(t, combos, 3)

	want := [][2]tile.Type{
		{tile.Man2, tile.Man3},
		{tile.Man3, tile.Man5},
		{tile.Man5, tile.Man6},
	}
	for i, w := range want {
		assert.Equal(t, agent.CallChi, combos[i].Kind)
		assert.Equal(t, []tile.Type{w[0], w[1]}, combos[i].Tiles)
	}
}

func TestChiCombinationsNoneAtTheSuitEdge(t *testing.T) {
	seat := handWith(tile.Man8, tile.Man9, tile.Man2)
	combos := chiCombinations(seat, tile.Man1)
	assert.Empty(t, combos, "1m has no tile below it, so only the high-edge shape (2m,3m) could ever apply, the hand lacks 3m, and 8m9m does not wrap to 1m")
}

func TestCanPonRequiresTwoCopies(t *testing.T) {
	seat := handWith(tile.Pin5, tile.Pin5, tile.Sou3)
	assert.True(t, canPon(seat, tile.Pin5))
	assert.False(t, canPon(seat, tile.Sou3))
}

func TestCanOpenKanRequiresThreeCopies(t *testing.T) {
	seat := handWith(tile.East, tile.East, tile.East)
	assert.True(t, canOpenKan(seat, tile.East))
	seat2 := handWith(tile.East, tile.East)
	assert.False(t, canOpenKan(seat2, tile.East))
}

// Matches spec §8 scenario 2: a first, uncalled draw with nine distinct
// terminal/honor tiles (here twelve, a kokushi one-away shape) may abort the
// hand.
func TestCanDeclareNineTerminalsOnQualifyingFirstDraw(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()
	c.anyCallMadeThisHand = false

	seat := c.state.seat(tile.WindEast)
	for seat.Hand.Len() > 0 {
		seat.Hand.RemoveAt(0)
	}
	for _, ty := range []tile.Type{
		tile.Man1, tile.Man9, tile.Pin1, tile.Pin9, tile.Sou1,
		tile.Sou9, tile.East, tile.South, tile.West, tile.North, tile.White,
		tile.Man3, tile.Man4,
	} {
		seat.Hand.Insert(tile.Tile{Type: ty})
	}
	seat.Hand.Draw(tile.Tile{Type: tile.Green})

	assert.True(t, c.canDeclareNineTerminals(seat))
}

func TestCanDeclareNineTerminalsFalseAfterACall(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()
	c.anyCallMadeThisHand = true

	seat := c.state.seat(tile.WindEast)
	assert.False(t, c.canDeclareNineTerminals(seat), "a called meld this hand rules out the nine-terminals abort regardless of hand shape")
}

func TestNearestSeatBreaksTiesInSeatingOrder(t *testing.T) {
	// Loser is East; South and North both called ron. Going around from
	// East's shimocha (South, West, North), South is hit first.
	w := nearestSeat(tile.WindEast, []tile.Wind{tile.WindNorth, tile.WindSouth})
	assert.Equal(t, tile.WindSouth, w)
}

func TestNearestSeatSingleWinner(t *testing.T) {
	w := nearestSeat(tile.WindWest, []tile.Wind{tile.WindNorth})
	assert.Equal(t, tile.WindNorth, w)
}

func TestCheckNagashiManganRequiresAnUncalledAllTerminalHonorRiver(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()

	east := c.state.seat(tile.WindEast)
	east.River = tilesOfType(tile.Man1, tile.Man9, tile.East, tile.White)

	south := c.state.seat(tile.WindSouth)
	south.River = tilesOfType(tile.Man1, tile.Man5) // a simple tile breaks it

	winners := c.checkNagashiMangan()
	assert.Contains(t, winners, tile.WindEast)
	assert.NotContains(t, winners, tile.WindSouth)
}

func TestCheckNagashiManganSkipsSeatsWithNoDiscardsYet(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()
	assert.Empty(t, c.checkNagashiMangan())
}

func TestCountDoraCountsRedFivesAndIndicatorSuccessors(t *testing.T) {
	tiles := []tile.Tile{
		{Type: tile.Man5, Red: true},
		{Type: tile.Pin4},
		{Type: tile.Sou1},
	}
	// Indicator 3p points at dora 4p; indicator 9s wraps to dora 1s.
	n := countDora(tiles, []tile.Type{tile.Pin3, tile.Sou9})
	assert.Equal(t, 3, n, "one red five plus two indicator-successor matches")
}

func TestAdvanceAfterHandRotatesDealerOnNonDealerWin(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()
	startDealer := c.state.DealerSeat
	startKyoku := c.state.Kyoku

	c.advanceAfterHand(false, true)

	assert.Equal(t, startDealer.Next(), c.state.DealerSeat)
	assert.Equal(t, startKyoku+1, c.state.Kyoku)
	assert.Equal(t, 0, c.state.Honba)
}

func TestAdvanceAfterHandDealerRepeatsAndHonbaIncrements(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()
	startDealer := c.state.DealerSeat

	c.advanceAfterHand(true, true)

	assert.Equal(t, startDealer, c.state.DealerSeat)
	assert.Equal(t, 1, c.state.Honba)
}

func TestAdvanceAfterHandEndsMatchPastLastRoundWind(t *testing.T) {
	c := newTestCoordinator(t) // LastRoundWind: East
	c.dealFreshHand()
	c.state.Kyoku = 4
	c.state.RoundWind = tile.WindEast

	c.advanceAfterHand(false, true)

	assert.True(t, c.state.GameOver, "East-4 ending in a non-dealer win should close out a tonpuusen")
}

// TestSettleExhaustiveDrawNagashiManganNonDealerPayoutSumsToEightThousand
// covers spec §8 scenario 7: a non-dealer's nagashi mangan nets exactly
// 8000, split dealer-pays-half (4000) and each non-dealer-pays-a-quarter
// (2000), not an equal three-way split of the total.
func TestSettleExhaustiveDrawNagashiManganNonDealerPayoutSumsToEightThousand(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()

	east := c.state.seat(tile.WindEast) // dealer
	south := c.state.seat(tile.WindSouth)
	west := c.state.seat(tile.WindWest)
	north := c.state.seat(tile.WindNorth)

	east.River = tilesOfType(tile.Man2)  // breaks nagashi for the dealer
	south.River = tilesOfType(tile.Man1, tile.Man9, tile.East, tile.White)
	west.River = tilesOfType(tile.Man3)  // breaks nagashi
	north.River = tilesOfType(tile.Man4) // breaks nagashi

	beforeEast, beforeSouth, beforeWest, beforeNorth := east.Score, south.Score, west.Score, north.Score

	c.settleExhaustiveDraw()

	assert.Equal(t, beforeSouth+8000, south.Score, "a non-dealer nagashi mangan nets exactly 8000")
	assert.Equal(t, beforeEast-4000, east.Score, "the dealer pays half of a non-dealer's nagashi mangan")
	assert.Equal(t, beforeWest-2000, west.Score, "each non-dealer payer pays a quarter of a non-dealer's nagashi mangan")
	assert.Equal(t, beforeNorth-2000, north.Score)
}

// TestSettleExhaustiveDrawNagashiManganDealerPayoutSumsToTwelveThousand
// covers the dealer's nagashi mangan: 12000 total, each of the three
// non-dealers paying 4000.
func TestSettleExhaustiveDrawNagashiManganDealerPayoutSumsToTwelveThousand(t *testing.T) {
	c := newTestCoordinator(t)
	c.dealFreshHand()

	east := c.state.seat(tile.WindEast) // dealer, nagashi winner
	south := c.state.seat(tile.WindSouth)
	west := c.state.seat(tile.WindWest)
	north := c.state.seat(tile.WindNorth)

	east.River = tilesOfType(tile.Man1, tile.Man9, tile.East, tile.White)
	south.River = tilesOfType(tile.Man2)
	west.River = tilesOfType(tile.Man3)
	north.River = tilesOfType(tile.Man4)

	beforeEast, beforeSouth, beforeWest, beforeNorth := east.Score, south.Score, west.Score, north.Score

	c.settleExhaustiveDraw()

	assert.Equal(t, beforeEast+12000, east.Score, "a dealer nagashi mangan nets exactly 12000")
	assert.Equal(t, beforeSouth-4000, south.Score)
	assert.Equal(t, beforeWest-4000, west.Score)
	assert.Equal(t, beforeNorth-4000, north.Score)
}

// TestUpdateFuritenOnOwnDiscardClearsTempFuritenForNonRiichiSeat covers
// spec.md:76/150: passing a legal ron blocks a non-riichi seat only until
// its own next discard, not for the rest of the hand.
func TestUpdateFuritenOnOwnDiscardClearsTempFuritenForNonRiichiSeat(t *testing.T) {
	seat := handWith(tile.Man1, tile.Man2, tile.Man3, tile.Pin4, tile.Pin4, tile.Pin4,
		tile.Sou7, tile.Sou8, tile.Sou9, tile.East, tile.East, tile.East, tile.South)
	seat.TempFuriten = true
	seat.Hand.Draw(tile.Tile{Type: tile.North})

	c := newTestCoordinator(t)
	c.applyDiscard(seat, agent.TurnResult{Kind: agent.ActionDiscard, Tile: tile.North})

	assert.False(t, seat.TempFuriten, "temporary furiten clears at this seat's own next discard")
}

// TestUpdateFuritenOnOwnDiscardLeavesPermanentFuritenForRiichiSeat covers
// the other half of spec.md:76/150: a riichi seat that ever passed a legal
// ron stays furiten for the rest of the hand, through its own discards.
func TestUpdateFuritenOnOwnDiscardLeavesPermanentFuritenForRiichiSeat(t *testing.T) {
	seat := handWith(tile.Man1, tile.Man2, tile.Man3, tile.Pin4, tile.Pin4, tile.Pin4,
		tile.Sou7, tile.Sou8, tile.Sou9, tile.East, tile.East, tile.East, tile.South)
	seat.Riichi = true
	seat.Furiten = true
	seat.Hand.Draw(tile.Tile{Type: tile.North})

	c := newTestCoordinator(t)
	c.applyDiscard(seat, agent.TurnResult{Kind: agent.ActionDiscard, Tile: tile.North})

	assert.True(t, seat.Furiten, "a riichi seat's pass-on-ron furiten lasts the rest of the hand")
}

// TestCanRonDeniesATempFuritenSeatRegardlessOfHandShape checks the
// rules.go:31 gate directly: TempFuriten alone is enough to deny ron,
// independent of Furiten.
func TestCanRonDeniesATempFuritenSeatRegardlessOfHandShape(t *testing.T) {
	c := newTestCoordinator(t)
	seat := newSeat(tile.WindEast)
	seat.TempFuriten = true

	assert.False(t, c.canRon(seat, tile.Tile{Type: tile.Man1}))
}

// TestFullHanchanWithRandomAgentsPreservesScoreSum runs a complete tonpuusen
// with four legal-but-unprincipled agents and checks the invariant spec §8
// names: total points on the table (seat scores plus riichi sticks, in
// units of 1000) never drifts from the four starting stacks' sum.
func TestFullHanchanWithRandomAgentsPreservesScoreSum(t *testing.T) {
	c := newTestCoordinator(t)
	final := c.Run()

	assert.Equal(t, 100000, final.scoreSum())
	assert.True(t, final.GameOver)
	for _, seat := range final.Seats {
		assert.LessOrEqual(t, seat.Hand.Len(), 14, "a settled hand should never retain more than 14 tiles")
	}
}
