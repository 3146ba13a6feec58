package agent

import (
	"math/rand"

	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// NewRandom drives seat by picking uniformly among whatever the current
// offer or menu makes legal, including "pass" and "decline the extra
// options and just discard" as options of equal weight. Intended for
// soak-testing the coordinator's state machine, not for producing
// plausible play.
func NewRandom(rng *rand.Rand) Factory {
	return func(seat tile.Wind) *Channels {
		ch := newChannels()
		go runRandom(ch, rng)
		return ch
	}
}

func runRandom(ch *Channels, rng *rand.Rand) {
	for req := range ch.Requests {
		switch req.Kind {
		case RequestCallOffer:
			ch.CallReplies <- randomCallReply(req.CallOffer, rng)
		case RequestTurn:
			ch.TurnReplies <- randomTurnResult(req.TurnMenu, rng)
		case RequestEndOfMatch:
			return
		default:
		}
	}
}

func randomCallReply(offer []Call, rng *rand.Rand) CallReply {
	// "pass" is always an option, weighted the same as any offered call.
	n := rng.Intn(len(offer) + 1)
	if n == len(offer) {
		return CallReply{Pass: true}
	}
	return CallReply{Call: offer[n]}
}

func randomTurnResult(menu TurnMenu, rng *rand.Rand) TurnResult {
	type option func() TurnResult
	var options []option

	if menu.CanTsumo {
		options = append(options, func() TurnResult { return TurnResult{Kind: ActionTsumo} })
	}
	if menu.CanNineTerminals {
		options = append(options, func() TurnResult { return TurnResult{Kind: ActionNineTerminals} })
	}
	for _, t := range menu.ClosedKanTiles {
		t := t
		options = append(options, func() TurnResult { return TurnResult{Kind: ActionClosedKan, Tile: t} })
	}
	for _, t := range menu.PromotedKanTiles {
		t := t
		options = append(options, func() TurnResult { return TurnResult{Kind: ActionPromotedKan, Tile: t} })
	}
	discardable := discardCandidates(menu)
	for _, t := range discardable {
		t := t
		options = append(options, func() TurnResult { return TurnResult{Kind: ActionDiscard, Tile: t} })
	}

	if len(options) == 0 {
		panic("agent: turn menu offers no legal action")
	}
	return options[rng.Intn(len(options))]()
}

func discardCandidates(menu TurnMenu) []tile.Type {
	seen := map[tile.Type]bool{}
	var out []tile.Type
	add := func(t tile.Type) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range menu.Hand {
		add(t.Type)
	}
	if menu.Drawn != nil {
		add(menu.Drawn.Type)
	}
	return out
}
