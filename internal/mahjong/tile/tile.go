// Package tile enumerates the 136-tile Riichi Mahjong universe: 34 distinct
// tiles (numbered man/pin/sou 1-9, plus the seven honors), adjacency for
// dora-indicator lookup, and the categorical predicates the hand analyzer
// and scorer build on.
package tile

import "fmt"

// Type is one of the 34 distinct tiles, index-compatible with a [34]uint8
// counting array (see analyzer.Hand34).
type Type uint8

const (
	Man1 Type = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Sou1
	Sou2
	Sou3
	Sou4
	Sou5
	Sou6
	Sou7
	Sou8
	Sou9
	East
	South
	West
	North
	White
	Green
	Red
	numTypes = 34
)

// NumTypes is the count of distinct tiles (34).
const NumTypes = numTypes

// Wind identifies a round or seat wind.
type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "East"
	case WindSouth:
		return "South"
	case WindWest:
		return "West"
	case WindNorth:
		return "North"
	default:
		return "Unknown"
	}
}

// Next rotates a round wind forward; used to test match termination in §4.F.
func (w Wind) Next() Wind {
	return (w + 1) % 4
}

// Type maps a Wind to its honor Type.
func (w Wind) Type() Type {
	return East + Type(w)
}

// Tile is a concrete tile instance: a Type plus the red-five flag. Red fives
// are ignored for equality, adjacency and sequence formation; they only
// contribute an extra dora.
type Tile struct {
	Type Type
	Red  bool
}

// Equal ignores the red-five flag, as spec'd.
func (t Tile) Equal(o Tile) bool {
	return t.Type == o.Type
}

func (t Tile) String() string {
	s := t.Type.String()
	if t.Red {
		return s + "(r)"
	}
	return s
}

func (t Type) String() string {
	switch {
	case t >= Man1 && t <= Man9:
		return fmt.Sprintf("%dm", int(t-Man1)+1)
	case t >= Pin1 && t <= Pin9:
		return fmt.Sprintf("%dp", int(t-Pin1)+1)
	case t >= Sou1 && t <= Sou9:
		return fmt.Sprintf("%ds", int(t-Sou1)+1)
	case t == East:
		return "1z"
	case t == South:
		return "2z"
	case t == West:
		return "3z"
	case t == North:
		return "4z"
	case t == White:
		return "5z"
	case t == Green:
		return "6z"
	case t == Red:
		return "7z"
	default:
		return "?"
	}
}

// IsNumbered reports whether t is a man/pin/sou tile.
func (t Type) IsNumbered() bool { return t <= Sou9 }

// IsHonor reports whether t is a wind or dragon.
func (t Type) IsHonor() bool { return t >= East }

// Suit identifies the suit of a numbered tile; -1 for honors.
type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	suitNone Suit = -1
)

// Suit returns the suit of a numbered tile, or suitNone for honors.
func (t Type) Suit() Suit {
	switch {
	case t >= Man1 && t <= Man9:
		return SuitMan
	case t >= Pin1 && t <= Pin9:
		return SuitPin
	case t >= Sou1 && t <= Sou9:
		return SuitSou
	default:
		return suitNone
	}
}

// Number returns the 1-9 value of a numbered tile; 0 for honors.
func (t Type) Number() int {
	switch t.Suit() {
	case SuitMan:
		return int(t-Man1) + 1
	case SuitPin:
		return int(t-Pin1) + 1
	case SuitSou:
		return int(t-Sou1) + 1
	default:
		return 0
	}
}

// IsTerminal reports whether t is a 1 or 9 numbered tile.
func (t Type) IsTerminal() bool {
	n := t.Number()
	return n == 1 || n == 9
}

// IsTerminalOrHonor reports whether t is a terminal or an honor tile.
func (t Type) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

// IsDragon reports whether t is white, green or red dragon.
func (t Type) IsDragon() bool {
	return t == White || t == Green || t == Red
}

// IsWindTile reports whether t is one of the four wind honors (any seat).
func (t Type) IsWindTile() bool {
	return t == East || t == South || t == West || t == North
}

// IsWind reports whether t is the honor tile for wind w.
func (t Type) IsWind(w Wind) bool {
	return t == w.Type()
}

// IsGreen reports whether t counts toward all-green (ryuuiisou): the green
// dragon, or a sou tile in {2,3,4,6,8}.
func (t Type) IsGreen() bool {
	if t == Green {
		return true
	}
	if t.Suit() != SuitSou {
		return false
	}
	switch t.Number() {
	case 2, 3, 4, 6, 8:
		return true
	default:
		return false
	}
}

// IsYakuhai reports whether a triplet/quad of t scores a wind or dragon yaku
// for a seat with the given round and seat wind.
func (t Type) IsYakuhai(roundWind, seatWind Wind) bool {
	if t.IsDragon() {
		return true
	}
	return t.IsWind(roundWind) || t.IsWind(seatWind)
}

// Next cycles a tile forward for dora-indicator lookup: numbered tiles wrap
// 1->2->...->9->1 within suit, winds cycle E->S->W->N->E, dragons cycle
// white->green->red->white. This cycle never governs sequence formation.
func (t Type) Next() Type {
	switch {
	case t.IsNumbered():
		suitBase := t - Type(t.Number()-1)
		return suitBase + Type(t.Number()%9)
	case t.IsWindTile():
		return East + (t-East+1)%4
	case t.IsDragon():
		return White + (t-White+1)%3
	default:
		return t
	}
}

// Prev is the inverse of Next.
func (t Type) Prev() Type {
	switch {
	case t.IsNumbered():
		suitBase := t - Type(t.Number()-1)
		n := t.Number() - 1
		if n == 0 {
			n = 9
		}
		return suitBase + Type(n-1)
	case t.IsWindTile():
		return East + (t-East+3)%4
	case t.IsDragon():
		return White + (t-White+2)%3
	default:
		return t
	}
}

// All34 returns the 34 distinct tile types in canonical order.
func All34() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// All136 returns four copies of each of the 34 distinct tiles; one copy of
// each Man5/Pin5/Sou5 is flagged red when useRedFives is set, matching the
// teacher's DeckManager.useRedFives option (see match.Wall).
func All136(useRedFives bool) []Tile {
	out := make([]Tile, 0, 136)
	for _, tt := range All34() {
		for i := 0; i < 4; i++ {
			red := useRedFives && i == 0 && (tt == Man5 || tt == Pin5 || tt == Sou5)
			out = append(out, Tile{Type: tt, Red: red})
		}
	}
	return out
}
