// Command riichi runs a complete hanchan from the command line: one
// agent per seat, optional resume from a saved snapshot, and an
// optional live statsviz/gopsutil debug endpoint. Mirrors the shape of
// the teacher's hall/main.go: a cobra root command, config load before
// the run, and a background debug-server goroutine gated on a flag.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/arl/statsviz"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/spf13/cobra"

	"github.com/lamyinia/riichi/internal/config"
	"github.com/lamyinia/riichi/internal/logging"
	"github.com/lamyinia/riichi/internal/mahjong/agent"
	"github.com/lamyinia/riichi/internal/mahjong/match"
	"github.com/lamyinia/riichi/internal/mahjong/snapshot"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

var (
	configFile string
	fromState  string
	saveState  string
	debugAddr  string
)

var rootCmd = &cobra.Command{
	Use:   "riichi",
	Short: "play a simulated Riichi Mahjong hanchan",
	Long:  "riichi plays a complete hanchan with one pluggable agent per seat, per seat configuration in a YAML file.",
	RunE:  runPlay,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a YAML run configuration (seats, starting score, round wind, seed)")
	rootCmd.Flags().StringVar(&fromState, "from-state", "", "resume from a previously saved match snapshot instead of dealing a fresh match")
	rootCmd.Flags().StringVar(&saveState, "save-state", "", "write the final match state to this path when the match ends")
	rootCmd.Flags().StringVar(&debugAddr, "debug-addr", "", "if set, serve live statsviz charts on this address (e.g. :6060)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error("riichi: %v", err)
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	logging.SetLevel(cfg.LogLevel)

	addr := debugAddr
	if addr == "" {
		addr = cfg.DebugAddr
	}
	if addr != "" {
		go serveDebug(addr)
		logStartupHostInfo()
	}

	matchCfg := match.Config{
		Seed:          cfg.Seed,
		UseRedFives:   cfg.UseRedFives,
		StartingScore: cfg.StartingScore,
		LastRoundWind: parseRoundWind(cfg.LastRoundWind),
		Logger:        logging.Logger(),
	}
	for i, seat := range cfg.Seats {
		matchCfg.Agents[i] = agentFactory(seat.Kind)
	}

	var coordinator *match.Coordinator
	if fromState != "" {
		state, err := snapshot.Load(fromState)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		logging.Info("resuming match %s from %s", state.MatchID, fromState)
		coordinator = match.NewCoordinatorFromState(matchCfg, state)
	} else {
		coordinator = match.NewCoordinator(matchCfg)
	}

	final := coordinator.Run()
	logging.Info("match %s finished: dealer=%s kyoku=%d honba=%d", final.MatchID, final.DealerSeat, final.Kyoku, final.Honba)
	for _, seat := range final.Seats {
		logging.Info("seat %s: %d points", seat.Wind, seat.Score)
	}

	if saveState != "" {
		if err := snapshot.Save(saveState, coordinator.State()); err != nil {
			return fmt.Errorf("saving final state: %w", err)
		}
		logging.Info("wrote final state to %s", saveState)
	}
	return nil
}

func agentFactory(kind string) agent.Factory {
	switch kind {
	case "terminal":
		return agent.NewTerminal
	case "random":
		return agent.NewRandom(rand.New(rand.NewSource(time.Now().UnixNano())))
	default:
		logging.Warn("unrecognized agent kind %q, defaulting to random", kind)
		return agent.NewRandom(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
}

func parseRoundWind(s string) tile.Wind {
	if s == "east" {
		return tile.WindEast
	}
	return tile.WindSouth
}

// serveDebug starts the statsviz live-charts server, mirroring the
// teacher's gate/hall main.go pattern of a background metrics listener
// that the rest of the process never depends on.
func serveDebug(addr string) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		logging.Error("debug server: registering statsviz: %v", err)
		return
	}
	logging.Info("debug charts listening at http://%s/debug/statsviz/", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logging.Error("debug server: %v", err)
	}
}

// logStartupHostInfo logs one line of host CPU usage at startup, the
// same opt-in detail framework/game/monitor.go reports periodically.
func logStartupHostInfo() {
	percentages, err := cpu.Percent(200*time.Millisecond, false)
	if err != nil || len(percentages) == 0 {
		return
	}
	logging.Info("host CPU at startup: %.1f%%", percentages[0])
}
