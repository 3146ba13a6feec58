package match

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lamyinia/riichi/internal/mahjong/agent"
	"github.com/lamyinia/riichi/internal/mahjong/analyzer"
	"github.com/lamyinia/riichi/internal/mahjong/score"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// Config configures one hanchan. Agents is indexed by starting seat: seat 0
// plays East in kyoku 1, and the seat wind used for scoring moves with the
// dealer seat, so the index is "which agent occupies this starting
// position", not a fixed wind.
type Config struct {
	Agents        [4]agent.Factory
	Seed          int64
	UseRedFives   bool
	StartingScore int
	LastRoundWind tile.Wind // South for a hanchan, East for a tonpuusen
	Logger        *log.Logger
}

// Coordinator drives one complete hanchan: dealing, the turn/call loop,
// scoring, and seat/round rotation, per spec §4.F.
type Coordinator struct {
	cfg      Config
	state    *State
	wall     *Wall
	searcher *analyzer.Searcher
	agents   [4]*agent.Channels
	rng      *rand.Rand
	log      *log.Logger

	anyCallMadeThisHand bool
	riichiSeatsThisHand map[tile.Wind]bool
	firstDiscard        map[tile.Wind]tile.Type

	// resumed is true for exactly the first runHand call after
	// NewCoordinatorFromState, so that call skips dealing a fresh hand
	// and instead continues the one the snapshot was taken mid-way
	// through.
	resumed bool
}

// NewCoordinator wires up the four seat agents and an empty starting state.
// Dealing and the first wall happen in Run/runHand, not here.
func NewCoordinator(cfg Config) *Coordinator {
	if cfg.StartingScore == 0 {
		cfg.StartingScore = 25000
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	c := &Coordinator{
		cfg:      cfg,
		searcher: analyzer.NewSearcher(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		log:      cfg.Logger,

		riichiSeatsThisHand: map[tile.Wind]bool{},
		firstDiscard:        map[tile.Wind]tile.Type{},
	}

	state := &State{
		MatchID:    uuid.NewString(),
		RoundWind:  tile.WindEast,
		LastWind:   cfg.LastRoundWind,
		Kyoku:      1,
		DealerSeat: tile.WindEast,
	}
	for i := range state.Seats {
		state.Seats[i] = newSeat(tile.Wind(i))
		state.Seats[i].Score = cfg.StartingScore
	}
	c.state = state

	for i := 0; i < 4; i++ {
		c.agents[i] = cfg.Agents[i](tile.Wind(i))
	}
	return c
}

// NewCoordinatorFromState resumes a match the CLI's --from-state flag
// loaded (spec §6). Play resumes at the top of the hand loop for
// state.Turn: a snapshot's mid-call-window position (which seats have
// already answered an offer) is not part of the persisted state, so
// resuming mid-call-window replays that call window from its start
// instead - a documented simplification, see DESIGN.md.
func NewCoordinatorFromState(cfg Config, state *State) *Coordinator {
	if cfg.StartingScore == 0 {
		cfg.StartingScore = 25000
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	c := &Coordinator{
		cfg:      cfg,
		state:    state,
		wall:     RestoreWall(state.Wall, state.BreakPoint, state.LiveDrawn, state.DoraRevealed, state.UraRevealed, state.DeadTaken),
		searcher: analyzer.NewSearcher(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		log:      cfg.Logger,
		resumed:  true,
	}
	for i := 0; i < 4; i++ {
		c.agents[i] = cfg.Agents[i](tile.Wind(i))
	}
	return c
}

// State returns the coordinator's current match state with the live
// wall's cursors folded in, so that a Save taken right after is a
// faithful, resumable snapshot.
func (c *Coordinator) State() *State {
	if c.wall != nil {
		c.state.Wall = c.wall.Tiles()
		c.state.LiveDrawn = c.wall.LiveDrawnCount()
		c.state.DoraRevealed = c.wall.DoraCount()
		c.state.UraRevealed = c.wall.UraCount()
		c.state.DeadTaken = c.wall.DeadTakenOffsets()
		c.state.BreakPoint = c.wall.BreakPointValue()
	}
	return c.state
}

// Run plays hands until the match ends (kyoku 4 of the configured last
// round wind played with no repeat condition, or someone busts), per
// spec §4.F, and returns the final state.
func (c *Coordinator) Run() *State {
	for !c.state.GameOver {
		c.runHand()
	}
	c.broadcast(agent.RequestEndOfMatch, agent.Request{Kind: agent.RequestEndOfMatch})
	return c.state
}

func seatsFrom(start tile.Wind) [4]tile.Wind {
	return [4]tile.Wind{start, start.Next(), start.Next().Next(), start.Next().Next().Next()}
}

func (c *Coordinator) chan_(w tile.Wind) *agent.Channels { return c.agents[seatIndex(w)] }

func (c *Coordinator) broadcast(kind agent.RequestKind, req agent.Request) {
	req.Kind = kind
	for _, w := range seatsFrom(tile.WindEast) {
		c.chan_(w).Requests <- req
	}
}

func (c *Coordinator) snapshot(turn tile.Wind) agent.Snapshot {
	snap := agent.Snapshot{
		RoundWind:      c.state.RoundWind,
		Turn:           turn,
		Honba:          c.state.Honba,
		RiichiSticks:   c.state.RiichiPot,
		DoraIndicators: c.wall.DoraIndicators(),
		WallRemaining:  c.wall.Remaining(),
	}
	for i, s := range c.state.Seats {
		snap.Scores[i] = s.Score
		snap.Hands[i] = s.Hand.Iter()
		snap.Melds[i] = s.Melds
		snap.Rivers[i] = s.River
		snap.Riichi[i] = s.Riichi
	}
	return snap
}

func (c *Coordinator) refreshAll() {
	for _, w := range seatsFrom(tile.WindEast) {
		snap := c.snapshot(c.state.Turn)
		snap.Seat = w
		c.chan_(w).Requests <- agent.Request{Kind: agent.RequestRefresh, Snapshot: snap}
	}
}

// runHand plays exactly one hand from the initial deal to its resolution
// (win, exhaustive draw, or abortive draw), then applies scoring/payments
// and advances dealer/round-wind/honba state per spec §4.F step 8.
func (c *Coordinator) runHand() {
	turn := c.state.DealerSeat
	if c.resumed {
		c.resumed = false
		turn = c.state.Turn
	} else {
		c.dealFreshHand()
		turn = c.state.DealerSeat
		c.state.Turn = turn
	}

	c.anyCallMadeThisHand = false
	c.riichiSeatsThisHand = map[tile.Wind]bool{}
	c.firstDiscard = map[tile.Wind]tile.Type{}
	for _, s := range c.state.Seats {
		if s.Riichi {
			c.riichiSeatsThisHand[s.Wind] = true
		}
		if len(s.River) > 0 {
			c.firstDiscard[s.Wind] = s.River[0].Type
		}
	}

	dealerWon := false
	var winners []tile.Wind

	for {
		c.refreshAll()

		if c.checkAbortiveDraws() {
			c.settleAbortiveDraw()
			return
		}

		drawn, ok := c.wall.Draw()
		if !ok {
			c.settleExhaustiveDraw()
			return
		}
		seat := c.state.seat(turn)
		seat.Hand.Draw(drawn)

		action, won, winTile, handOver := c.runTurn(seat, drawn)
		if handOver {
			return // settled inside runTurn (a promoted kan was robbed)
		}
		if won {
			winners = []tile.Wind{seat.Wind}
			dealerWon = seat.Wind == c.state.DealerSeat
			c.settleWin(winners, seat.Wind, winTile, true)
			c.advanceAfterHand(dealerWon, true)
			return
		}
		if action == agent.ActionNineTerminals {
			c.settleAbortiveDraw()
			return
		}

		// runTurn has already applied the discard to seat.Hand/River and
		// left the discarded tile in c.state.LastDiscardTile.
		nextTurn, handOver := c.resolveCallWindow(turn)
		if handOver {
			return
		}
		turn = nextTurn
		c.state.Turn = turn
	}
}

// dealFreshHand builds a new shuffled wall and deals 13 tiles to each seat
// in E/S/W/N order; the dealer's 14th tile comes from the first draw of the
// turn loop, matching the teacher's distributeCard (round-robin 13, dealer
// draws separately rather than being dealt 14 directly).
func (c *Coordinator) dealFreshHand() {
	deck := tile.All136(c.cfg.UseRedFives)
	c.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	d1, d2 := c.rng.Intn(6)+1, c.rng.Intn(6)+1
	c.wall = NewWall(deck, d1, d2)
	c.state.DiceA, c.state.DiceB = d1, d2
	c.state.BreakPoint = c.wall.breakPoint

	for i := range c.state.Seats {
		s := newSeat(tile.Wind(i))
		s.Score = c.state.Seats[i].Score
		c.state.Seats[i] = s
	}
	for _, w := range seatsFrom(tile.WindEast) {
		seat := c.state.seat(w)
		for i := 0; i < 13; i++ {
			t, _ := c.wall.Draw()
			seat.Hand.Insert(t)
		}
	}
	c.state.DeclaredKans = 0
	c.state.LastDiscardValid = false
}

// runTurn sends a Turn request and applies the reply: discard (with
// optional riichi), tsumo, nine-terminals abort, or a kan declaration
// (which loops back through a fresh replacement draw before the seat must
// act again). Returns the final action taken and whether it was a win.
func (c *Coordinator) runTurn(seat *Seat, drawn tile.Tile) (kind agent.TurnActionKind, won bool, winTile tile.Tile, handOver bool) {
	for {
		menu := c.turnMenu(seat, drawn)
		c.chan_(seat.Wind).Requests <- agent.Request{Kind: agent.RequestTurn, TurnMenu: menu}
		result := <-c.chan_(seat.Wind).TurnReplies

		switch result.Kind {
		case agent.ActionTsumo:
			if !menu.CanTsumo {
				continue // illegal reply; re-prompt rather than trust a misbehaving agent
			}
			return result.Kind, true, drawn, false

		case agent.ActionNineTerminals:
			if !menu.CanNineTerminals {
				continue
			}
			return result.Kind, false, tile.Tile{}, false

		case agent.ActionClosedKan, agent.ActionPromotedKan:
			switch c.applyKan(seat, result) {
			case kanIllegal:
				continue
			case kanRobbed:
				return agent.ActionDiscard, false, tile.Tile{}, true // settled inside offerChankan
			}
			replacement, ok := c.wall.DrawReplacement()
			if !ok {
				return agent.ActionDiscard, false, tile.Tile{}, false
			}
			seat.Hand.Draw(replacement)
			drawn = replacement
			continue

		default: // ActionDiscard
			c.applyDiscard(seat, result)
			return result.Kind, false, tile.Tile{}, false
		}
	}
}

// kanOutcome is applyKan's result: whether the meld was placed, rejected as
// illegal, or (for a promoted kan) immediately robbed by a ron.
type kanOutcome int

const (
	kanApplied kanOutcome = iota
	kanIllegal
	kanRobbed
)

// applyDiscard removes the discarded tile from hand (absorbing the drawn
// tile first if the discard was a tsumogiri), records it on the river and
// as the pending call-window tile, and applies a simultaneous riichi
// declaration.
func (c *Coordinator) applyDiscard(seat *Seat, result agent.TurnResult) {
	if _, ok := seat.Hand.Drawn(); ok {
		seat.Hand.AbsorbDrawn()
	}
	seat.Ippatsu = false // the declarer's next draw has passed without a win

	idx := seat.Hand.IndexOf(byType(result.Tile))
	var discarded tile.Tile
	if idx >= 0 {
		discarded = seat.Hand.RemoveAt(idx)
	} else {
		discarded = tile.Tile{Type: result.Tile}
	}

	if result.Riichi && c.canDeclareRiichi(seat) {
		seat.Riichi = true
		seat.DoubleRiichi = len(seat.River) == 0 && !c.anyCallMadeThisHand
		seat.Score -= 1000
		c.state.RiichiPot++
		seat.FrozenWaits = c.searcher.Waits(counts34(seat.Hand.All()), len(seat.Melds))
		c.riichiSeatsThisHand[seat.Wind] = true
		seat.Ippatsu = true
	}

	seat.River = append(seat.River, discarded)
	seat.DiscardedAny[discarded.Type] = true
	if _, first := c.firstDiscard[seat.Wind]; !first {
		c.firstDiscard[seat.Wind] = discarded.Type
	}
	c.updateFuritenOnOwnDiscard(seat)

	c.state.LastDiscardSeat = seat.Wind
	c.state.LastDiscardTile = discarded.Type
	c.state.LastDiscardValid = true
}

// canDeclareRiichi checks the eligibility spec §4.C names: closed hand,
// at least 1000 points on the table, and tenpai once the discard is
// removed.
func (c *Coordinator) canDeclareRiichi(seat *Seat) bool {
	if len(seat.Melds) > 0 || seat.Riichi || seat.Score < 1000 {
		return false
	}
	return c.searcher.ShantenAll(counts34(seat.Hand.All()), 0) == 0
}

func (c *Coordinator) updateFuritenOnOwnDiscard(seat *Seat) {
	seat.TempFuriten = false
	waits := c.searcher.Waits(counts34(seat.Hand.All()), len(seat.Melds))
	for _, w := range waits {
		if seat.DiscardedAny[w] {
			seat.Furiten = true
		}
	}
}

// applyKan moves the kanned tiles from hand into a quad meld, reveals a new
// dora indicator, and clears every seat's ippatsu (a kan, open or closed,
// always breaks it here per the Open Question resolution in DESIGN.md).
func (c *Coordinator) applyKan(seat *Seat, result agent.TurnResult) kanOutcome {
	switch result.Kind {
	case agent.ActionClosedKan:
		if countOf(seat.Hand.All(), result.Tile) != 4 {
			return kanIllegal
		}
		if _, ok := seat.Hand.Drawn(); ok {
			seat.Hand.AbsorbDrawn()
		}
		for i := 0; i < 4; i++ {
			seat.Hand.RemoveAt(seat.Hand.IndexOf(byType(result.Tile)))
		}
		seat.Melds = append(seat.Melds, agent.Meld{
			Group:      score.Group{Kind: score.GroupQuad, Low: result.Tile, Concealed: true},
			CalledFrom: seat.Wind,
		})

	case agent.ActionPromotedKan:
		found := -1
		for i, m := range seat.Melds {
			if m.Kind == score.GroupTriplet && !m.Concealed && m.Low == result.Tile {
				found = i
				break
			}
		}
		if found < 0 {
			return kanIllegal
		}
		if _, ok := seat.Hand.Drawn(); ok {
			seat.Hand.AbsorbDrawn()
		}
		idx := seat.Hand.IndexOf(byType(result.Tile))
		if idx < 0 {
			return kanIllegal
		}
		seat.Hand.RemoveAt(idx)
		seat.Melds[found].Kind = score.GroupQuad

		if c.offerChankan(seat.Wind, tile.Tile{Type: result.Tile}) {
			return kanRobbed
		}
	}

	for _, s := range c.state.Seats {
		s.Ippatsu = false
	}
	c.anyCallMadeThisHand = true
	c.state.DeclaredKans++
	c.wall.RevealKanDora()
	return kanApplied
}

// offerChankan gives every other seat one chance to ron the tile a
// shouminkan (promoted kan) just exposed. Only the promoted kan can be
// robbed here; a closed kan cannot, except (by the stricter, more common
// ruleset) for a thirteen-orphans wait, which this implementation does not
// special-case - see DESIGN.md Open Questions.
func (c *Coordinator) offerChankan(kanSeat tile.Wind, t tile.Tile) bool {
	var winners []tile.Wind
	for _, w := range seatsFrom(kanSeat.Next()) {
		if w == kanSeat {
			continue
		}
		seat := c.state.seat(w)
		if c.canRon(seat, t) {
			c.chan_(w).Requests <- agent.Request{Kind: agent.RequestCallOffer, CallOffer: []agent.Call{{Kind: agent.CallRon}}}
			reply := <-c.chan_(w).CallReplies
			if !reply.Pass && reply.Call.Kind == agent.CallRon {
				winners = append(winners, w)
			}
		}
	}
	if len(winners) == 0 {
		return false
	}
	c.settleWin(winners, kanSeat, t, false)
	dealerWon := false
	for _, w := range winners {
		if w == c.state.DealerSeat {
			dealerWon = true
		}
	}
	c.advanceAfterHand(dealerWon, true)
	return true
}

// resolveCallWindow offers the three non-discarder seats a call on the
// pending discard and resolves priority: ron beats kan/pon beats chi, and
// every seat that calls ron is honored - a double or triple ron is never
// downgraded to an abortive draw (see DESIGN.md for the teacher's bug this
// replaces).
func (c *Coordinator) resolveCallWindow(discarder tile.Wind) (next tile.Wind, handOver bool) {
	discard := tile.Tile{Type: c.state.LastDiscardTile}
	order := seatsFrom(discarder.Next())

	type reply struct {
		seat tile.Wind
		r    agent.CallReply
	}
	var replies []reply
	for _, w := range order {
		if w == discarder {
			continue
		}
		offer := c.offersFor(c.state.seat(w), discarder, discard)
		c.chan_(w).Requests <- agent.Request{Kind: agent.RequestCallOffer, CallOffer: offer}
		r := <-c.chan_(w).CallReplies
		replies = append(replies, reply{w, r})

		if !r.Pass && r.Call.Kind == agent.CallRon {
			continue // handled in the ron pass below
		}
		if hadRon := c.canRon(c.state.seat(w), discard); hadRon && (r.Pass || r.Call.Kind != agent.CallRon) {
			seat := c.state.seat(w)
			if seat.Riichi {
				seat.Furiten = true // permanent for the rest of the hand, per spec.md:76/150
			} else {
				seat.TempFuriten = true // cleared at this seat's own next discard
			}
		}
	}

	var ronWinners []tile.Wind
	for _, rr := range replies {
		if !rr.r.Pass && rr.r.Call.Kind == agent.CallRon {
			ronWinners = append(ronWinners, rr.seat)
		}
	}
	if len(ronWinners) > 0 {
		c.settleWin(ronWinners, discarder, discard, false)
		dealerWon := false
		for _, w := range ronWinners {
			if w == c.state.DealerSeat {
				dealerWon = true
			}
		}
		c.advanceAfterHand(dealerWon, true)
		return discarder, true
	}

	for _, rr := range replies {
		if rr.r.Pass || rr.r.Call.Kind != agent.CallKan {
			continue
		}
		c.state.LastDiscardValid = false
		seat := c.state.seat(rr.seat)
		for i := 0; i < 3; i++ {
			seat.Hand.RemoveAt(seat.Hand.IndexOf(byType(discard.Type)))
		}
		seat.Melds = append(seat.Melds, agent.Meld{
			Group:      score.Group{Kind: score.GroupQuad, Low: discard.Type, Concealed: false},
			CalledFrom: discarder,
		})
		for _, s := range c.state.Seats {
			s.Ippatsu = false
		}
		c.anyCallMadeThisHand = true
		c.state.DeclaredKans++
		c.wall.RevealKanDora()
		if repl, ok := c.wall.DrawReplacement(); ok {
			seat.Hand.Draw(repl)
			return c.continueAfterCall(seat, repl)
		}
		return rr.seat, false
	}

	for _, rr := range replies {
		if rr.r.Pass || rr.r.Call.Kind != agent.CallPon {
			continue
		}
		c.state.LastDiscardValid = false
		seat := c.state.seat(rr.seat)
		for i := 0; i < 2; i++ {
			seat.Hand.RemoveAt(seat.Hand.IndexOf(byType(discard.Type)))
		}
		seat.Melds = append(seat.Melds, agent.Meld{
			Group:      score.Group{Kind: score.GroupTriplet, Low: discard.Type, Concealed: false},
			CalledFrom: discarder,
		})
		for _, s := range c.state.Seats {
			s.Ippatsu = false
		}
		c.anyCallMadeThisHand = true
		return c.continueAfterCall(seat, tile.Tile{})
	}

	for _, rr := range replies {
		if rr.r.Pass || rr.r.Call.Kind != agent.CallChi {
			continue
		}
		c.state.LastDiscardValid = false
		seat := c.state.seat(rr.seat)
		for _, t := range rr.r.Call.Tiles {
			seat.Hand.RemoveAt(seat.Hand.IndexOf(byType(t)))
		}
		low := discard.Type
		for _, t := range rr.r.Call.Tiles {
			if t < low {
				low = t
			}
		}
		seat.Melds = append(seat.Melds, agent.Meld{
			Group:      score.Group{Kind: score.GroupSequence, Low: low, Concealed: false},
			CalledFrom: discarder,
		})
		for _, s := range c.state.Seats {
			s.Ippatsu = false
		}
		c.anyCallMadeThisHand = true
		return c.continueAfterCall(seat, tile.Tile{})
	}

	return discarder.Next(), false
}

// continueAfterCall runs the calling seat's turn (they must now discard, or
// may tsumo/kan straight off the called tile) and reports whether that
// already ended the hand.
func (c *Coordinator) continueAfterCall(seat *Seat, drawn tile.Tile) (next tile.Wind, handOver bool) {
	_, won, winTile, over := c.runTurn(seat, drawn)
	if over {
		return seat.Wind, true
	}
	if won {
		c.settleWin([]tile.Wind{seat.Wind}, seat.Wind, winTile, true)
		c.advanceAfterHand(seat.Wind == c.state.DealerSeat, true)
		return seat.Wind, true
	}
	return seat.Wind, false
}

// settleWin scores each winner against the discarder (ron) or against the
// table (tsumo) and credits the riichi pot to the winner closest to the
// discarder in seating order, the same tie-break the teacher's
// selectStickWinnerRonA uses. Honba is paid per winner: it is already in
// each ron result's Points, and is added to every tsumo payer's share.
func (c *Coordinator) settleWin(winners []tile.Wind, loser tile.Wind, winTile tile.Tile, tsumo bool) {
	for _, w := range winners {
		seat := c.state.seat(w)
		h := c.buildWinHand(seat, winTile, tsumo)
		res := score.Evaluate(h)
		c.log.Infof("seat %s wins %s for %d (han=%d fu=%d)", w, winKindName(tsumo), res.Points, res.Han, res.Fu)

		if tsumo {
			dealerPays, koPays := score.Settle(h, res.Fu, res.Han, res.YakumanMult)
			dealerPays += 100 * c.state.Honba
			koPays += 100 * c.state.Honba
			for _, other := range seatsFrom(tile.WindEast) {
				if other == w {
					continue
				}
				pay := koPays
				if other == c.state.DealerSeat {
					pay = dealerPays
				}
				c.state.seat(other).Score -= pay
				seat.Score += pay
			}
		} else {
			c.state.seat(loser).Score -= res.Points
			seat.Score += res.Points
		}
	}

	if len(winners) > 0 {
		potWinner := c.state.seat(nearestSeat(loser, winners))
		potWinner.Score += c.state.RiichiPot * 1000
		c.state.RiichiPot = 0
	}
}

func winKindName(tsumo bool) string {
	if tsumo {
		return "by tsumo"
	}
	return "by ron"
}

// nearestSeat returns whichever of winners sits closest to loser going
// around the table, the standard multi-ron stick-payout tie-break.
func nearestSeat(loser tile.Wind, winners []tile.Wind) tile.Wind {
	order := seatsFrom(loser.Next())
	for _, w := range order {
		for _, cand := range winners {
			if cand == w {
				return cand
			}
		}
	}
	return winners[0]
}

// settleExhaustiveDraw applies nagashi mangan if any seat qualifies, or
// otherwise the tenpai/noten point split, per spec §4.F.
func (c *Coordinator) settleExhaustiveDraw() {
	nagashi := c.checkNagashiMangan()
	if len(nagashi) > 0 {
		for _, w := range nagashi {
			seat := c.state.seat(w)
			amount := 8000
			if w == c.state.DealerSeat {
				amount = 12000
			}
			for _, other := range seatsFrom(tile.WindEast) {
				if other == w {
					continue
				}
				share := amount / 3
				if w == c.state.DealerSeat {
					share = amount / 3
				} else if other == c.state.DealerSeat {
					share = amount / 2
				} else {
					share = amount / 4
				}
				c.state.seat(other).Score -= share
				seat.Score += share
			}
		}
		c.advanceAfterHand(nagashiIncludesDealer(nagashi, c.state.DealerSeat), false)
		return
	}

	var tenpai, noten []tile.Wind
	for _, w := range seatsFrom(tile.WindEast) {
		seat := c.state.seat(w)
		if c.searcher.ShantenAll(counts34(seat.Hand.All()), len(seat.Melds)) == 0 {
			tenpai = append(tenpai, w)
		} else {
			noten = append(noten, w)
		}
	}
	if len(tenpai) > 0 && len(tenpai) < 4 {
		perTenpai := 3000 / len(tenpai)
		perNoten := 3000 / len(noten)
		for _, w := range tenpai {
			c.state.seat(w).Score += perTenpai
		}
		for _, w := range noten {
			c.state.seat(w).Score -= perNoten
		}
	}

	dealerTenpai := false
	for _, w := range tenpai {
		if w == c.state.DealerSeat {
			dealerTenpai = true
		}
	}
	c.advanceAfterHand(dealerTenpai, false)
}

func nagashiIncludesDealer(winners []tile.Wind, dealer tile.Wind) bool {
	for _, w := range winners {
		if w == dealer {
			return true
		}
	}
	return false
}

// checkNagashiMangan finds every seat whose entire river is terminals and
// honors with none of it ever called by another seat.
func (c *Coordinator) checkNagashiMangan() []tile.Wind {
	calledFrom := map[tile.Wind]bool{}
	for _, s := range c.state.Seats {
		for _, m := range s.Melds {
			if !m.Concealed {
				calledFrom[m.CalledFrom] = true
			}
		}
	}
	var out []tile.Wind
	for _, w := range seatsFrom(tile.WindEast) {
		seat := c.state.seat(w)
		if len(seat.River) == 0 || calledFrom[w] {
			continue
		}
		ok := true
		for _, t := range seat.River {
			if !t.Type.IsTerminalOrHonor() {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out
}

// checkAbortiveDraws reports the abortive-draw conditions that must be
// checked before a turn's draw: four kans declared across at least two
// seats, four seats all in riichi, or all four seats discarding the same
// wind tile on their first discard of the hand.
func (c *Coordinator) checkAbortiveDraws() bool {
	if c.state.DeclaredKans >= 4 {
		seatsWithKan := map[tile.Wind]bool{}
		for _, s := range c.state.Seats {
			for _, m := range s.Melds {
				if m.Kind == score.GroupQuad {
					seatsWithKan[s.Wind] = true
				}
			}
		}
		if len(seatsWithKan) >= 2 {
			return true
		}
	}
	if len(c.riichiSeatsThisHand) == 4 {
		return true
	}
	if len(c.firstDiscard) == 4 {
		var w tile.Type
		first := true
		same := true
		for _, v := range c.firstDiscard {
			if !v.IsWindTile() {
				same = false
				break
			}
			if first {
				w = v
				first = false
			} else if v != w {
				same = false
			}
		}
		if same {
			return true
		}
	}
	return false
}

func (c *Coordinator) settleAbortiveDraw() {
	c.advanceAfterHand(true, false)
}

// advanceAfterHand applies spec §4.F's honba/dealer-rotation/round-wind
// rules: the dealer repeats (with an incremented honba) after a dealer win,
// any abortive draw, or an exhaustive draw where the dealer was tenpai or
// made nagashi mangan; otherwise the
// dealer seat rotates, honba resets unless the hand was a draw, and the
// round wind advances once kyoku 4 of the current wind has been played,
// ending the match once the configured last round wind's kyoku 4 is done.
func (c *Coordinator) advanceAfterHand(dealerContinues bool, anyWin bool) {
	if dealerContinues {
		c.state.Honba++
		return
	}
	if !anyWin {
		c.state.Honba++
	} else {
		c.state.Honba = 0
	}

	c.state.DealerSeat = c.state.DealerSeat.Next()
	c.state.Kyoku++
	if c.state.Kyoku > 4 {
		c.state.Kyoku = 1
		if c.state.RoundWind == c.state.LastWind {
			c.state.GameOver = true
			return
		}
		c.state.RoundWind = c.state.RoundWind.Next()
	}
	for _, s := range c.state.Seats {
		if s.Score < 0 {
			c.state.GameOver = true
		}
	}
}
