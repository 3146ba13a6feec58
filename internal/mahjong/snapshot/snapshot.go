// Package snapshot persists and restores a complete match.State as YAML,
// per spec §6: the coordinator must support a lossless save/load of wind,
// seat rotation, hands, melds, rivers, wall, dice, honba, kyoku, scores,
// and riichi records. match.State and its nested types already carry the
// yaml tags this package relies on, the same way the teacher's service
// DTOs carry json tags for their own wire format.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lamyinia/riichi/internal/mahjong/match"
)

// Save writes state to path as YAML, overwriting any existing file.
func Save(path string, state *match.State) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("snapshot: marshaling state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: writing %s: %w", path, err)
	}
	return nil
}

// Load reads a match.State previously written by Save. A malformed file
// is a boundary error (spec §7): it is returned to the caller rather than
// panicking, since it reflects bad external input, not a broken
// in-process invariant.
func Load(path string) (*match.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: reading %s: %w", path, err)
	}
	var state match.State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("snapshot: parsing %s: %w", path, err)
	}
	return &state, nil
}
