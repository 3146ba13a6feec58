package match

import (
	"github.com/lamyinia/riichi/internal/mahjong/agent"
	"github.com/lamyinia/riichi/internal/mahjong/hand"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// Seat struct holds one player's position-stable hand, called melds,
// discard river, and riichi-related bookkeeping. hand.Hand is reused
// directly rather than re-implemented, per spec §4.B.
type Seat struct {
	Wind  tile.Wind    `yaml:"wind"`
	Hand  *hand.Hand   `yaml:"hand"`
	Melds []agent.Meld `yaml:"melds"`
	River []tile.Tile  `yaml:"river"`
	Score int          `yaml:"score"`

	Riichi       bool               `yaml:"riichi"`
	DoubleRiichi bool               `yaml:"double_riichi"`
	Ippatsu      bool               `yaml:"ippatsu"`
	FrozenWaits  []tile.Type        `yaml:"frozen_waits"` // the wait set recorded at riichi declaration
	Furiten      bool               `yaml:"furiten"`      // hand-long: a riichi pass-on-ron, or a current wait this seat has ever discarded
	TempFuriten  bool               `yaml:"temp_furiten"` // a non-riichi pass-on-ron; clears on this seat's own next discard
	DiscardedAny map[tile.Type]bool `yaml:"discarded_any"`
}

func newSeat(w tile.Wind) *Seat {
	return &Seat{
		Wind:         w,
		Hand:         hand.New(),
		DiscardedAny: map[tile.Type]bool{},
	}
}

// State is a complete, lossless match state: the persisted form the
// snapshot package round-trips per spec §6. Every field carries an
// explicit snake_case yaml tag, the same way the teacher's DTOs carry
// json tags.
type State struct {
	MatchID string `yaml:"match_id"`

	RoundWind  tile.Wind `yaml:"round_wind"`
	LastWind   tile.Wind `yaml:"last_wind"`
	Kyoku      int       `yaml:"kyoku"` // 1-4 within a round wind
	Honba      int       `yaml:"honba"`
	RiichiPot  int       `yaml:"riichi_pot"` // sticks on the table, in units of 1000
	DealerSeat tile.Wind `yaml:"dealer_seat"`

	Seats [4]*Seat `yaml:"seats"`

	Wall          []tile.Tile `yaml:"wall"`
	DiceA         int         `yaml:"dice_a"`
	DiceB         int         `yaml:"dice_b"`
	BreakPoint    int         `yaml:"break_point"`
	LiveDrawn     int         `yaml:"live_drawn"`
	DoraRevealed  int         `yaml:"dora_revealed"`
	UraRevealed   int         `yaml:"ura_revealed"`
	DeadTaken     []int       `yaml:"dead_taken"`

	Turn        tile.Wind `yaml:"turn"`
	DeclaredKans int      `yaml:"declared_kans"`

	// LastDiscard is the most recent discard available to be called on;
	// valid is false once a call has consumed it or a fresh hand is dealt.
	LastDiscardSeat  tile.Wind `yaml:"last_discard_seat"`
	LastDiscardTile  tile.Type `yaml:"last_discard_tile"`
	LastDiscardValid bool      `yaml:"last_discard_valid"`

	GameOver bool `yaml:"game_over"`
}

func seatIndex(w tile.Wind) int { return int(w) }

func (s *State) seat(w tile.Wind) *Seat { return s.Seats[seatIndex(w)] }

// scoreSum is used by tests to check the §8 invariant that scores plus
// riichi sticks on the table always equal the four starting scores' total
// (100000 at the default 25000 each).
func (s *State) scoreSum() int {
	total := s.RiichiPot * 1000
	for _, seat := range s.Seats {
		total += seat.Score
	}
	return total
}
