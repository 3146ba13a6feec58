package agent

import "github.com/lamyinia/riichi/internal/mahjong/tile"

// ScriptedReply is one pre-loaded answer for a scripted agent: exactly one
// of Call/Turn is consulted, matching whichever request kind is next.
type ScriptedReply struct {
	Call *Call       // nil means pass, for a call-offer request
	Turn *TurnResult // consulted for a turn request
}

// NewScripted drives seat from a fixed queue of replies, in order, one per
// call-offer or turn request received (Refresh/ScoreDisplay/EndOfMatch
// never consume a queue entry). Used to replay the concrete scenarios of
// spec §8 deterministically in tests. Running past the end of script is a
// programmer error: the test that authored the script under-counted the
// requests the scenario actually produces.
func NewScripted(script []ScriptedReply) Factory {
	return func(seat tile.Wind) *Channels {
		ch := newChannels()
		go runScripted(ch, script)
		return ch
	}
}

func runScripted(ch *Channels, script []ScriptedReply) {
	i := 0
	next := func() ScriptedReply {
		if i >= len(script) {
			panic("agent: scripted agent ran past the end of its script")
		}
		r := script[i]
		i++
		return r
	}

	for req := range ch.Requests {
		switch req.Kind {
		case RequestCallOffer:
			reply := next()
			if reply.Call == nil {
				ch.CallReplies <- CallReply{Pass: true}
			} else {
				ch.CallReplies <- CallReply{Call: *reply.Call}
			}
		case RequestTurn:
			reply := next()
			if reply.Turn == nil {
				panic("agent: scripted agent's next entry has no turn reply")
			}
			ch.TurnReplies <- *reply.Turn
		case RequestEndOfMatch:
			return
		default:
			// Refresh / ScoreDisplay: informational, no reply expected.
		}
	}
}
