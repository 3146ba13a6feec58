// Package agent defines the request/reply protocol between the match
// coordinator and one decision-maker per seat, plus the reference agents
// that ship with this repository (scripted, terminal, random) per
// spec §4.E. Each seat's agent runs on its own goroutine; the coordinator
// and the agent exchange values over the channel triple a Factory returns.
package agent

import (
	"github.com/lamyinia/riichi/internal/mahjong/score"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// RequestKind tags the payload carried by a Request.
type RequestKind int

const (
	RequestRefresh RequestKind = iota
	RequestCallOffer
	RequestTurn
	RequestScoreDisplay
	RequestEndOfMatch
)

func (k RequestKind) String() string {
	switch k {
	case RequestRefresh:
		return "refresh"
	case RequestCallOffer:
		return "call-offer"
	case RequestTurn:
		return "turn"
	case RequestScoreDisplay:
		return "score-display"
	case RequestEndOfMatch:
		return "end-of-match"
	default:
		return "unknown"
	}
}

// CallKind is one of the four interruptions a seat may declare on another
// seat's discard.
type CallKind int

const (
	CallRon CallKind = iota
	CallPon
	CallKan // open kan (daiminkan), called on a discard
	CallChi
)

// Call is one candidate response to a call offer: a concrete claim on the
// previous discard. Passing is not a Call value; it is CallReply.Pass.
type Call struct {
	Kind CallKind
	// Tiles names the hand tiles consumed alongside the called tile; for
	// chi this disambiguates which of up to three sequences is meant
	// (e.g. claiming 4m with 2m3m, 3m5m, or 5m6m already in hand).
	Tiles []tile.Type
}

// Meld is a called set sitting in front of a seat, or a self-declared
// closed kan. It reuses score.Group's shape (kind/low tile/concealed) and
// adds the seat the tile was taken from, which the scorer doesn't need but
// the coordinator and snapshot do (to render/validate the call history).
type Meld struct {
	score.Group `yaml:",inline"`
	CalledFrom  tile.Wind `yaml:"called_from"`
}

// TurnActionKind is one of the five things a seat may do on its own turn.
type TurnActionKind int

const (
	ActionDiscard TurnActionKind = iota
	ActionTsumo
	ActionNineTerminals
	ActionClosedKan
	ActionPromotedKan
)

// TurnResult is a seat's single reply to a Turn request.
type TurnResult struct {
	Kind   TurnActionKind
	Tile   tile.Type // the discarded tile, or the tile being kanned
	Riichi bool      // declare riichi simultaneously with this discard
}

// TurnMenu enumerates what a seat may legally do on its own turn; the
// coordinator computes this via the analyzer before sending the request.
type TurnMenu struct {
	CanTsumo         bool
	CanNineTerminals bool
	ClosedKanTiles   []tile.Type // tiles this seat may declare a closed kan on
	PromotedKanTiles []tile.Type // open triplets this seat may promote to a kan
	Hand             []tile.Tile
	Drawn            *tile.Tile
}

// Snapshot is the full public-plus-private game state. The coordinator
// fills it in on refresh requests only; call-offer and turn requests carry
// a zero Snapshot, so an agent reads the state from the refresh that
// precedes them. Every seat sees every hand: this is a simulator, not a
// cheat-resistant network protocol, so nothing is hidden from an agent
// that chooses to look. The yaml tags are not used for persistence: the
// snapshot package saves match.State, which does not contain a Snapshot.
type Snapshot struct {
	Seat            tile.Wind      `yaml:"seat"`
	RoundWind       tile.Wind      `yaml:"round_wind"`
	Turn            tile.Wind      `yaml:"turn"`
	Honba           int            `yaml:"honba"`
	RiichiSticks    int            `yaml:"riichi_sticks"`
	Scores          [4]int         `yaml:"scores"`
	Hands           [4][]tile.Tile `yaml:"hands"`
	Melds           [4][]Meld      `yaml:"melds"`
	Rivers          [4][]tile.Tile `yaml:"rivers"`
	Riichi          [4]bool        `yaml:"riichi"`
	DoraIndicators  []tile.Type    `yaml:"dora_indicators"`
	WallRemaining   int            `yaml:"wall_remaining"`
}

// Request is the single message shape the coordinator sends; Kind says
// which of CallOffer/TurnMenu is populated, if either.
type Request struct {
	Kind      RequestKind
	Snapshot  Snapshot
	CallOffer []Call
	TurnMenu  TurnMenu
}

// CallReply is a seat's single reply to a call offer; Pass means none of
// the offered calls were taken.
type CallReply struct {
	Call Call
	Pass bool
}

// Channels is the triple §4.E describes: the coordinator writes to
// Requests and blocks reading the matching reply channel; the agent does
// the reverse. Both reply channels are unbuffered so a reply is only
// considered sent once the coordinator has collected it.
type Channels struct {
	Requests    chan Request
	CallReplies chan CallReply
	TurnReplies chan TurnResult
}

// Factory starts an agent goroutine for seat and returns the channel
// triple the coordinator will drive it with. The goroutine exits when it
// receives a RequestEndOfMatch message.
type Factory func(seat tile.Wind) *Channels

func newChannels() *Channels {
	return &Channels{
		Requests:    make(chan Request),
		CallReplies: make(chan CallReply),
		TurnReplies: make(chan TurnResult),
	}
}
