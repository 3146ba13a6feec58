package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi/internal/mahjong/agent"
	"github.com/lamyinia/riichi/internal/mahjong/match"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

func buildCoordinator(t *testing.T) *match.Coordinator {
	t.Helper()
	cfg := match.Config{
		Seed:          3,
		StartingScore: 25000,
		LastRoundWind: tile.WindEast,
	}
	for i := range cfg.Agents {
		cfg.Agents[i] = agent.NewScripted(nil)
	}
	return match.NewCoordinator(cfg)
}

func TestSaveLoadRoundTripsMatchState(t *testing.T) {
	c := buildCoordinator(t)
	before := c.State()

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, Save(path, before))

	after, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, before.MatchID, after.MatchID)
	assert.Equal(t, before.RoundWind, after.RoundWind)
	assert.Equal(t, before.DealerSeat, after.DealerSeat)
	assert.Equal(t, before.Kyoku, after.Kyoku)
	assert.Equal(t, before.Honba, after.Honba)
	require.Len(t, after.Seats, 4)
	for i := range before.Seats {
		assert.Equal(t, before.Seats[i].Score, after.Seats[i].Score)
		assert.Equal(t, before.Seats[i].Wind, after.Seats[i].Wind)
	}
}

func TestSaveLoadRoundTripsHandContents(t *testing.T) {
	c := buildCoordinator(t)
	// dealFreshHand is unexported; a fresh coordinator's seats start
	// empty, so insert a few tiles directly through the public Hand API
	// to exercise the hand codec round-trip.
	state := c.State()
	seat := state.Seats[0]
	seat.Hand.Insert(tile.Tile{Type: tile.Man5, Red: true})
	seat.Hand.Insert(tile.Tile{Type: tile.Pin1})
	seat.Hand.Draw(tile.Tile{Type: tile.Sou9})

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, Save(path, state))

	after, err := Load(path)
	require.NoError(t, err)

	restored := after.Seats[0].Hand
	require.Equal(t, 2, restored.Len())
	assert.Equal(t, tile.Man5, restored.At(0).Type)
	assert.True(t, restored.At(0).Red)
	assert.Equal(t, tile.Pin1, restored.At(1).Type)
	drawn, ok := restored.Drawn()
	require.True(t, ok)
	assert.Equal(t, tile.Sou9, drawn.Type)
}

func TestLoadReportsBoundaryErrorOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err, "a malformed snapshot is a boundary error, not a panic")
}
