package analyzer

import (
	"testing"

	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

func tilesOf(types ...tile.Type) []tile.Tile {
	out := make([]tile.Tile, len(types))
	for i, t := range types {
		out[i] = tile.Tile{Type: t}
	}
	return out
}

func TestShantenCompleteHandIsMinusOne(t *testing.T) {
	// 123m 456p 789s 111z + 22z (a complete standard hand, 14 tiles)
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.Sou7, tile.Sou8, tile.Sou9,
		tile.East, tile.East, tile.East,
		tile.South, tile.South,
	))
	if got := ShantenStandard(h, 0); got != -1 {
		t.Fatalf("expected shanten -1 for a complete hand, got %d", got)
	}
}

func TestShantenTenpaiIsZero(t *testing.T) {
	// 123m 456p 789s 111z + 2z (13 tiles, waiting on South to pair)
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.Sou7, tile.Sou8, tile.Sou9,
		tile.East, tile.East, tile.East,
		tile.South,
	))
	if got := ShantenStandard(h, 0); got != 0 {
		t.Fatalf("expected tenpai (shanten 0), got %d", got)
	}
}

func TestShantenSevenPairsFormula(t *testing.T) {
	// six pairs plus one unpaired tile: chiitoi tenpai, 6 - 6 + 0 = 0.
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man1, tile.Man2, tile.Man2, tile.Man3, tile.Man3,
		tile.Man4, tile.Man4, tile.Man5, tile.Man5, tile.Man6, tile.Man6,
		tile.Man7,
	))
	if got := ShantenSevenPairs(h); got != 0 {
		t.Fatalf("expected chiitoi shanten 0, got %d", got)
	}
}

func TestShantenKokushiFormula(t *testing.T) {
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man9, tile.Pin1, tile.Pin9, tile.Sou1, tile.Sou9,
		tile.East, tile.South, tile.West, tile.North, tile.White, tile.Green,
		tile.Man2,
	))
	if got := ShantenKokushi(h); got != 1 {
		t.Fatalf("expected kokushi shanten 1 (need the pair), got %d", got)
	}
}

func TestIsAgariStandardWithCalledMeld(t *testing.T) {
	// one meld already called (fixedMelds=1): closed hand needs 3 sets + pair.
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.Sou7, tile.Sou8, tile.Sou9,
		tile.East, tile.East,
	))
	if !IsAgariStandard(h, 1) {
		t.Fatalf("expected agari with one called meld")
	}
}

func TestIsAgariChiitoiRejectsQuad(t *testing.T) {
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man1, tile.Man1, tile.Man1,
		tile.Man2, tile.Man2, tile.Man3, tile.Man3, tile.Man4, tile.Man4,
		tile.Man5, tile.Man5, tile.Man6, tile.Man6,
	))
	if IsAgariChiitoi(h) {
		t.Fatalf("a quad must not count as two pairs for chiitoi")
	}
}

func TestWaitsTanki(t *testing.T) {
	s := NewSearcher()
	// 123m 456p 789s 111z (four complete sets) + a lone White: tanki wait.
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.Sou7, tile.Sou8, tile.Sou9,
		tile.East, tile.East, tile.East,
		tile.White,
	))
	waits := s.Waits(h, 0)
	if len(waits) != 1 || waits[0] != tile.White {
		t.Fatalf("expected a single tanki wait on White, got %v", waits)
	}
}

func TestWaitsRyanmen(t *testing.T) {
	s := NewSearcher()
	// 123m 456m 456p 11z (pair) + 78s: a two-sided wait on 6s/9s.
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.Sou7, tile.Sou8,
		tile.East, tile.East,
		tile.Man4, tile.Man5, tile.Man6,
	))
	waits := s.Waits(h, 0)
	found := map[tile.Type]bool{}
	for _, w := range waits {
		found[w] = true
	}
	if !found[tile.Sou6] || !found[tile.Sou9] {
		t.Fatalf("expected a ryanmen wait on 6s/9s, got %v", waits)
	}
}

func TestClassifyWaitRyanmenKanchanPenchan(t *testing.T) {
	d := Decomposition{
		Pair: tile.East,
		Sets: []MeldSet{
			{Kind: SetSequence, Low: tile.Man4}, // 456m
			{Kind: SetSequence, Low: tile.Pin1}, // 123p: edge shape
			{Kind: SetSequence, Low: tile.Sou4}, // 456s: kanchan shape for middle
			{Kind: SetTriplet, Low: tile.Sou9},
		},
	}
	if kind, ok := ClassifyWait(d, tile.Man6); !ok || kind != WaitRyanmen {
		t.Fatalf("expected ryanmen for high end of 456m, got %v ok=%v", kind, ok)
	}
	if kind, ok := ClassifyWait(d, tile.Pin3); !ok || kind != WaitPenchan {
		t.Fatalf("expected penchan for 123p high tile, got %v ok=%v", kind, ok)
	}
	if kind, ok := ClassifyWait(d, tile.Sou5); !ok || kind != WaitKanchan {
		t.Fatalf("expected kanchan for middle of 456s, got %v ok=%v", kind, ok)
	}
	if kind, ok := ClassifyWait(d, tile.Sou9); !ok || kind != WaitShanpon {
		t.Fatalf("expected shanpon for the triplet tile, got %v ok=%v", kind, ok)
	}
	if kind, ok := ClassifyWait(d, tile.East); !ok || kind != WaitTanki {
		t.Fatalf("expected tanki for the pair tile, got %v ok=%v", kind, ok)
	}
}

func TestDecomposeStandardFindsMultipleReadings(t *testing.T) {
	// 111222333m + 11z pair, three sets needed: readable both as three
	// triplets (111/222/333) and as three identical runs (123/123/123).
	h := FromTiles(tilesOf(
		tile.Man1, tile.Man1, tile.Man1, tile.Man2, tile.Man2, tile.Man2,
		tile.Man3, tile.Man3, tile.Man3,
		tile.East, tile.East,
	))
	decomps := DecomposeStandard(h, 3)
	if len(decomps) < 2 {
		t.Fatalf("expected at least two decompositions, got %d", len(decomps))
	}
	for _, d := range decomps {
		if d.Pair != tile.East {
			t.Fatalf("expected pair on East, got %v", d.Pair)
		}
	}
}
