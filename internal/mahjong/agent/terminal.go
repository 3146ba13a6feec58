package agent

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// NewTerminal drives seat from stdin: it prints the current offer or menu,
// reads one line, and parses it into a reply. Modeled on the teacher's
// interactive test client (common/scripts/discard.go): a bufio.NewReader
// input loop plus a signal.Notify goroutine so Ctrl+C exits cleanly
// instead of leaving the coordinator blocked on a reply that will never
// come.
func NewTerminal(seat tile.Wind) *Channels {
	ch := newChannels()
	go runTerminal(seat, ch)
	return ch
}

func runTerminal(seat tile.Wind, ch *Channels) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigCh
		fmt.Printf("\n[%s] interrupted, terminal agent exiting\n", seat)
		os.Exit(1)
	}()

	reader := bufio.NewReader(os.Stdin)
	for req := range ch.Requests {
		switch req.Kind {
		case RequestRefresh:
			fmt.Printf("[%s] -- refresh --\n", seat)
		case RequestScoreDisplay:
			fmt.Printf("[%s] -- hand scored, see coordinator log --\n", seat)
		case RequestCallOffer:
			ch.CallReplies <- promptCallOffer(seat, reader, req.CallOffer)
		case RequestTurn:
			ch.TurnReplies <- promptTurn(seat, reader, req.TurnMenu)
		case RequestEndOfMatch:
			fmt.Printf("[%s] match over, goodbye\n", seat)
			return
		}
	}
}

func promptCallOffer(seat tile.Wind, reader *bufio.Reader, offer []Call) CallReply {
	for {
		fmt.Printf("[%s] calls available:\n", seat)
		for i, c := range offer {
			fmt.Printf("  %d: %s %v\n", i, callKindName(c.Kind), c.Tiles)
		}
		fmt.Printf("[%s] > (index, or 'pass') ", seat)
		line, err := readLine(reader)
		if err != nil {
			log.Errorf("terminal agent %s: read error: %v", seat, err)
			return CallReply{Pass: true}
		}
		if line == "pass" || line == "" {
			return CallReply{Pass: true}
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 0 || idx >= len(offer) {
			fmt.Printf("[%s] invalid selection %q\n", seat, line)
			continue
		}
		return CallReply{Call: offer[idx]}
	}
}

func promptTurn(seat tile.Wind, reader *bufio.Reader, menu TurnMenu) TurnResult {
	for {
		fmt.Printf("[%s] hand: %v", seat, menu.Hand)
		if menu.Drawn != nil {
			fmt.Printf(" drawn: %s", menu.Drawn)
		}
		fmt.Println()
		if menu.CanTsumo {
			fmt.Printf("[%s]   'tsumo' to declare a win\n", seat)
		}
		if menu.CanNineTerminals {
			fmt.Printf("[%s]   'abort' to declare nine terminals\n", seat)
		}
		for _, t := range menu.ClosedKanTiles {
			fmt.Printf("[%s]   'kan %s' to declare a closed kan\n", seat, t)
		}
		for _, t := range menu.PromotedKanTiles {
			fmt.Printf("[%s]   'kan %s' to promote an open triplet\n", seat, t)
		}
		fmt.Printf("[%s] > (discard tile code, 'riichi <tile>', 'tsumo', 'abort', 'kan <tile>') ", seat)
		line, err := readLine(reader)
		if err != nil {
			log.Errorf("terminal agent %s: read error: %v", seat, err)
			return TurnResult{Kind: ActionDiscard, Tile: menu.Hand[0].Type}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "tsumo":
			if menu.CanTsumo {
				return TurnResult{Kind: ActionTsumo}
			}
		case "abort":
			if menu.CanNineTerminals {
				return TurnResult{Kind: ActionNineTerminals}
			}
		case "kan":
			if len(fields) != 2 {
				fmt.Printf("[%s] usage: kan <tile>\n", seat)
				continue
			}
			t, ok := parseTileCode(fields[1])
			if !ok {
				fmt.Printf("[%s] unrecognized tile %q\n", seat, fields[1])
				continue
			}
			if containsTile(menu.ClosedKanTiles, t) {
				return TurnResult{Kind: ActionClosedKan, Tile: t}
			}
			if containsTile(menu.PromotedKanTiles, t) {
				return TurnResult{Kind: ActionPromotedKan, Tile: t}
			}
			fmt.Printf("[%s] %s is not a legal kan right now\n", seat, t)
		case "riichi":
			if len(fields) != 2 {
				fmt.Printf("[%s] usage: riichi <tile>\n", seat)
				continue
			}
			t, ok := parseTileCode(fields[1])
			if !ok {
				fmt.Printf("[%s] unrecognized tile %q\n", seat, fields[1])
				continue
			}
			return TurnResult{Kind: ActionDiscard, Tile: t, Riichi: true}
		default:
			t, ok := parseTileCode(fields[0])
			if !ok {
				fmt.Printf("[%s] unrecognized command %q\n", seat, fields[0])
				continue
			}
			return TurnResult{Kind: ActionDiscard, Tile: t}
		}
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func containsTile(haystack []tile.Type, t tile.Type) bool {
	for _, x := range haystack {
		if x == t {
			return true
		}
	}
	return false
}

func callKindName(k CallKind) string {
	switch k {
	case CallRon:
		return "ron"
	case CallPon:
		return "pon"
	case CallKan:
		return "kan"
	case CallChi:
		return "chi"
	default:
		return "?"
	}
}

// parseTileCode reads the teacher-adjacent short notation "<number><suit>"
// e.g. "5m", "7p", "3s", or an honor code "1z".."7z" (E,S,W,N,White,Green,Red).
func parseTileCode(s string) (tile.Type, bool) {
	if len(s) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	switch s[len(s)-1] {
	case 'm':
		return tile.Man1 + tile.Type(n-1), true
	case 'p':
		return tile.Pin1 + tile.Type(n-1), true
	case 's':
		return tile.Sou1 + tile.Type(n-1), true
	case 'z':
		honors := []tile.Type{tile.East, tile.South, tile.West, tile.North, tile.White, tile.Green, tile.Red}
		if n > len(honors) {
			return 0, false
		}
		return honors[n-1], true
	default:
		return 0, false
	}
}
