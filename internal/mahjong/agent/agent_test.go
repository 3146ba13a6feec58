package agent

import (
	"math/rand"
	"testing"

	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

func TestScriptedAgentReplaysCallThenTurn(t *testing.T) {
	script := []ScriptedReply{
		{Call: &Call{Kind: CallPon, Tiles: []tile.Type{tile.Man5, tile.Man5}}},
		{Turn: &TurnResult{Kind: ActionDiscard, Tile: tile.Pin3}},
	}
	factory := NewScripted(script)
	ch := factory(tile.WindEast)

	ch.Requests <- Request{Kind: RequestCallOffer, CallOffer: []Call{{Kind: CallPon}}}
	reply := <-ch.CallReplies
	if reply.Pass || reply.Call.Kind != CallPon {
		t.Fatalf("expected the scripted pon reply, got %+v", reply)
	}

	ch.Requests <- Request{Kind: RequestTurn}
	turn := <-ch.TurnReplies
	if turn.Kind != ActionDiscard || turn.Tile != tile.Pin3 {
		t.Fatalf("expected scripted discard of 3p, got %+v", turn)
	}

	ch.Requests <- Request{Kind: RequestEndOfMatch}
}

func TestScriptedAgentPassIsNilCall(t *testing.T) {
	script := []ScriptedReply{{Call: nil}}
	ch := NewScripted(script)(tile.WindSouth)

	ch.Requests <- Request{Kind: RequestCallOffer, CallOffer: []Call{{Kind: CallChi}}}
	reply := <-ch.CallReplies
	if !reply.Pass {
		t.Fatalf("expected a pass reply for a nil-Call script entry")
	}
	ch.Requests <- Request{Kind: RequestEndOfMatch}
}

func TestRandomAgentCallReplyIsAlwaysLegalOrPass(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ch := NewRandom(rng)(tile.WindNorth)
	offer := []Call{{Kind: CallPon}, {Kind: CallChi, Tiles: []tile.Type{tile.Man2, tile.Man3}}}

	for i := 0; i < 20; i++ {
		ch.Requests <- Request{Kind: RequestCallOffer, CallOffer: offer}
		reply := <-ch.CallReplies
		if reply.Pass {
			continue
		}
		found := false
		for _, c := range offer {
			if c.Kind == reply.Call.Kind {
				found = true
			}
		}
		if !found {
			t.Fatalf("random agent returned a call not in the offer: %+v", reply.Call)
		}
	}
	ch.Requests <- Request{Kind: RequestEndOfMatch}
}

func TestRandomAgentTurnReplyIsAlwaysADiscardFromHand(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ch := NewRandom(rng)(tile.WindEast)
	menu := TurnMenu{
		Hand: []tile.Tile{{Type: tile.Man1}, {Type: tile.Pin9}},
	}

	for i := 0; i < 20; i++ {
		ch.Requests <- Request{Kind: RequestTurn, TurnMenu: menu}
		result := <-ch.TurnReplies
		if result.Kind != ActionDiscard {
			t.Fatalf("expected a discard when no other option is offered, got %+v", result)
		}
		if result.Tile != tile.Man1 && result.Tile != tile.Pin9 {
			t.Fatalf("discard %v not among the hand tiles", result.Tile)
		}
	}
	ch.Requests <- Request{Kind: RequestEndOfMatch}
}
