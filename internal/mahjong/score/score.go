// Package score computes yaku, fu and points for a winning hand, per spec
// §4.D. It replaces the teacher's RiichiMahjong4p.callHuPoints/calculateFu,
// whose yaku table was almost entirely stubbed (checkPinfu/calculatePairFu/
// calculateWaitFu all TODO-and-return-0) and whose honba bonus applied a
// flat 100-per-honba regardless of ron/tsumo. The han-value table and the
// mangan-and-above breakpoints are transcribed from the reference
// implementation's yaku/points tables rather than the teacher's partial one.
package score

import (
	"sort"

	"github.com/lamyinia/riichi/internal/mahjong/analyzer"
	"github.com/lamyinia/riichi/internal/mahjong/tile"
)

// GroupKind distinguishes the three meld shapes a hand can be built from.
type GroupKind int

const (
	GroupSequence GroupKind = iota
	GroupTriplet
	GroupQuad
)

// Group is one of a winning hand's four (or fewer, for chiitoi/kokushi)
// melds: either a called meld (Concealed only for ankan) or a closed set
// from the analyzer's decomposition.
type Group struct {
	Kind      GroupKind
	Low       tile.Type // the tile itself for a triplet/quad, lowest of a run
	Concealed bool
}

func (g Group) isYaochuu() bool {
	switch g.Kind {
	case GroupSequence:
		return g.Low.Number() == 1 || g.Low.Number() == 7
	default:
		return g.Low.IsTerminalOrHonor()
	}
}

// Hand is the fully-resolved state of a winning hand, assembled by the
// match coordinator at the moment of a ron/tsumo call.
type Hand struct {
	// ClosedTiles holds the winning tile plus every tile not locked into a
	// called meld: 14-3*len(Melds) tiles, counting a kan as a single slot
	// (its fourth tile is a supplement, never part of this count).
	ClosedTiles []tile.Tile
	Melds       []Group     // called melds only; closed groups come from decomposition
	WinTile     tile.Tile
	Tsumo       bool

	RoundWind Wind
	SeatWind  Wind
	IsDealer  bool

	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Haitei       bool // win on the last drawable tile
	Houtei       bool // ron on the last discard
	Rinshan      bool // win after a kan draw
	Chankan      bool // ron on a robbed kan

	Dora    int
	UraDora int
	Honba   int
	Riichi3 int // riichi sticks on the table, paid to the winner(s)
}

// Wind is a thin alias to avoid importing tile.Wind at every call site in
// this package's exported surface while staying representation-compatible.
type Wind = tile.Wind

// Yaku identifies a scoring element. Values are stable within this package
// only; no wire format depends on them.
type Yaku int

const (
	YakuRiichi Yaku = iota
	YakuDoubleRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuTanyao
	YakuYakuhai
	YakuIipeikou
	YakuRyanpeikou
	YakuSanshokuDoujun
	YakuSanshokuDoukou
	YakuIttsu
	YakuChanta
	YakuJunchan
	YakuToitoi
	YakuSananko
	YakuSankantsu
	YakuHonroto
	YakuHonitsu
	YakuChinitsu
	YakuChiitoi
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuSuuankou
	YakuSuuankouTanki
	YakuDaisangen
	YakuShousangen
	YakuShousuushi
	YakuDaisuushi
	YakuTsuuiisou
	YakuChinroto
	YakuRyuuiisou
	YakuChuurenpoutou
	YakuJunseiChuurenpoutou
	YakuSuukantsu
	YakuKokushi
	YakuKokushiJuusanmen
	YakuKazoe
	YakuDora // not a yaku; carried in Found so callers can render a dora line
)

var yakuNames = map[Yaku]string{
	YakuRiichi: "riichi", YakuDoubleRiichi: "double riichi", YakuIppatsu: "ippatsu",
	YakuMenzenTsumo: "menzen tsumo", YakuPinfu: "pinfu", YakuTanyao: "tanyao",
	YakuYakuhai: "yakuhai", YakuIipeikou: "iipeikou", YakuRyanpeikou: "ryanpeikou",
	YakuSanshokuDoujun: "sanshoku doujun", YakuSanshokuDoukou: "sanshoku doukou",
	YakuIttsu: "ittsu", YakuChanta: "chanta", YakuJunchan: "junchan",
	YakuToitoi: "toitoi", YakuSananko: "sananko", YakuSankantsu: "sankantsu",
	YakuHonroto: "honroto", YakuHonitsu: "honitsu", YakuChinitsu: "chinitsu",
	YakuChiitoi: "chiitoitsu", YakuHaitei: "haitei raoyue", YakuHoutei: "houtei raoyui",
	YakuRinshan: "rinshan kaihou", YakuChankan: "chankan",
	YakuSuuankou: "suuankou", YakuSuuankouTanki: "suuankou tanki",
	YakuDaisangen: "daisangen", YakuShousangen: "shousangen",
	YakuShousuushi: "shousuushi", YakuDaisuushi: "daisuushi",
	YakuTsuuiisou: "tsuuiisou", YakuChinroto: "chinroutou", YakuRyuuiisou: "ryuuiisou",
	YakuChuurenpoutou: "chuurenpoutou", YakuJunseiChuurenpoutou: "junsei chuurenpoutou",
	YakuSuukantsu: "suukantsu", YakuKokushi: "kokushi musou",
	YakuKokushiJuusanmen: "kokushi musou juusanmen", YakuKazoe: "kazoe yakuman",
	YakuDora: "dora",
}

func (y Yaku) String() string {
	if s, ok := yakuNames[y]; ok {
		return s
	}
	return "unknown"
}

// Found is one detected yaku with its resolved han (0 for a yakuman entry;
// use YakumanMult instead).
type Found struct {
	Yaku       Yaku
	Han        int
	YakumanMult int
}

// Result is the fully resolved score of a winning hand.
type Result struct {
	Han         int
	Fu          int
	YakumanMult int
	Found       []Found
	Points      int // total points transferred, honba included
}

// closedSensitiveHan gives (closed, open) han for the yaku whose value
// depends on whether the hand was open, transcribed from the reference
// yaku table.
var closedSensitiveHan = map[Yaku][2]int{
	YakuSanshokuDoujun: {2, 1},
	YakuIttsu:          {2, 1},
	YakuChanta:         {2, 1},
	YakuHonitsu:        {3, 2},
	YakuJunchan:        {3, 2},
	YakuChinitsu:       {6, 5},
}

func isOpen(groups []Group) bool {
	for _, g := range groups {
		if !g.Concealed {
			return true
		}
	}
	return false
}

// Evaluate scores a winning hand, trying every applicable shape (standard,
// seven pairs, thirteen orphans for a fully closed hand) and keeping the
// highest-scoring reading, tie-broken by points then han then fu.
func Evaluate(h Hand) *Result {
	handCounts := analyzer.FromTiles(h.ClosedTiles)
	var candidates []*Result

	setsNeeded := 4 - len(h.Melds)
	if setsNeeded >= 0 {
		for _, d := range analyzer.DecomposeStandard(handCounts, setsNeeded) {
			groups := make([]Group, 0, 4)
			for _, m := range h.Melds {
				groups = append(groups, m)
			}
			for _, st := range d.Sets {
				kind := GroupSequence
				if st.Kind == analyzer.SetTriplet {
					kind = GroupTriplet
				}
				groups = append(groups, Group{Kind: kind, Low: st.Low, Concealed: true})
			}
			waitKind, ok := analyzer.ClassifyWait(d, h.WinTile.Type)
			if !ok {
				continue
			}
			candidates = append(candidates, evaluateStandard(h, groups, d.Pair, waitKind))
		}
	}

	if len(h.Melds) == 0 {
		if analyzer.IsAgariChiitoi(handCounts) {
			candidates = append(candidates, evaluateChiitoi(h, handCounts))
		}
		if analyzer.IsAgariKokushi(handCounts) {
			candidates = append(candidates, evaluateKokushi(h, handCounts))
		}
	}

	if len(candidates) == 0 {
		return &Result{}
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Han != b.Han {
			return a.Han > b.Han
		}
		return a.Fu > b.Fu
	})
	return candidates[0]
}

// demoteRonCompletedTriplet marks the triplet the winning tile completed as
// open (minkou) rather than concealed (ankou) for a ron win: the tile came
// from the discarder, not from the wall, so that group does not count
// toward sanankou/suuankou or the higher ankou fu bonus even though it sits
// among otherwise-closed groups.
func demoteRonCompletedTriplet(h Hand, groups []Group, waitKind analyzer.WaitKind) []Group {
	if h.Tsumo || waitKind != analyzer.WaitShanpon {
		return groups
	}
	out := make([]Group, len(groups))
	copy(out, groups)
	for i, g := range out {
		if g.Kind == GroupTriplet && g.Low == h.WinTile.Type && g.Concealed {
			out[i].Concealed = false
			break
		}
	}
	return out
}

func evaluateStandard(h Hand, groups []Group, pair tile.Type, waitKind analyzer.WaitKind) *Result {
	groups = demoteRonCompletedTriplet(h, groups, waitKind)
	found := detectStandardYaku(h, groups, pair, waitKind)
	han, yakumanMult := totalHan(found)
	var fu int
	if yakumanMult == 0 {
		fu = computeFu(h, groups, pair, waitKind)
	}
	points := pointsFor(han, fu, yakumanMult, h)
	return &Result{Han: han, Fu: fu, YakumanMult: yakumanMult, Found: found, Points: points}
}

func totalHan(found []Found) (han, yakumanMult int) {
	for _, f := range found {
		han += f.Han
		yakumanMult += f.YakumanMult
	}
	return
}

// --- standard-shape yaku detection ---

func detectStandardYaku(h Hand, groups []Group, pair tile.Type, waitKind analyzer.WaitKind) []Found {
	var out []Found
	open := isOpen(groups)
	add := func(y Yaku, han int) { out = append(out, Found{Yaku: y, Han: han}) }
	addYakuman := func(y Yaku, mult int) { out = append(out, Found{Yaku: y, YakumanMult: mult}) }

	if mult, ok := detectYakuman(h, groups, pair, waitKind); ok {
		for y, m := range mult {
			addYakuman(y, m)
		}
		// Yakuman hands do not also collect regular yaku or dora, per
		// standard scoring - a yakuman result is final.
		return out
	}

	if h.DoubleRiichi {
		add(YakuDoubleRiichi, 2)
	} else if h.Riichi {
		add(YakuRiichi, 1)
	}
	if h.Ippatsu {
		add(YakuIppatsu, 1)
	}
	if h.Tsumo && !open {
		add(YakuMenzenTsumo, 1)
	}
	if h.Haitei {
		add(YakuHaitei, 1)
	}
	if h.Houtei {
		add(YakuHoutei, 1)
	}
	if h.Rinshan {
		add(YakuRinshan, 1)
	}
	if h.Chankan {
		add(YakuChankan, 1)
	}

	if !open && isPinfu(groups, pair, h, waitKind) {
		add(YakuPinfu, 1)
	}
	if allSimples(groups, pair) {
		add(YakuTanyao, 1)
	}
	if han := yakuhaiHan(groups, pair, h); han > 0 {
		add(YakuYakuhai, han)
	}
	if n := iipeikouCount(groups); n == 1 && !open {
		add(YakuIipeikou, 1)
	} else if n >= 2 && !open {
		add(YakuRyanpeikou, 3)
	}
	if sanshokuDoujun(groups) {
		han := closedSensitiveHan[YakuSanshokuDoujun][0]
		if open {
			han = closedSensitiveHan[YakuSanshokuDoujun][1]
		}
		add(YakuSanshokuDoujun, han)
	}
	if sanshokuDoukou(groups) {
		add(YakuSanshokuDoukou, 2)
	}
	if ittsu(groups) {
		han := closedSensitiveHan[YakuIttsu][0]
		if open {
			han = closedSensitiveHan[YakuIttsu][1]
		}
		add(YakuIttsu, han)
	}
	chantaOK, junchanOK := chantaJunchan(groups, pair)
	if junchanOK {
		han := closedSensitiveHan[YakuJunchan][0]
		if open {
			han = closedSensitiveHan[YakuJunchan][1]
		}
		add(YakuJunchan, han)
	} else if chantaOK {
		han := closedSensitiveHan[YakuChanta][0]
		if open {
			han = closedSensitiveHan[YakuChanta][1]
		}
		add(YakuChanta, han)
	}
	if toitoi(groups) {
		add(YakuToitoi, 2)
	}
	if n := concealedTripletCount(groups); n == 3 {
		add(YakuSananko, 2)
	}
	if kantsuCount(groups) == 3 {
		add(YakuSankantsu, 2)
	}
	if honroutou(groups, pair) {
		add(YakuHonroto, 2)
	}
	if shousangen(groups, pair) {
		add(YakuShousangen, 2)
	}
	suit, honitsuOK := honitsuChinitsu(groups, pair)
	_ = suit
	if honitsuOK == 2 {
		han := closedSensitiveHan[YakuChinitsu][0]
		if open {
			han = closedSensitiveHan[YakuChinitsu][1]
		}
		add(YakuChinitsu, han)
	} else if honitsuOK == 1 {
		han := closedSensitiveHan[YakuHonitsu][0]
		if open {
			han = closedSensitiveHan[YakuHonitsu][1]
		}
		add(YakuHonitsu, han)
	}

	han, _ := totalHan(out)
	if han+h.Dora+h.UraDora >= 13 {
		out = []Found{{Yaku: YakuKazoe, YakumanMult: 1}}
		return out
	}
	if h.Dora > 0 {
		add(YakuDora, h.Dora)
	}
	if h.UraDora > 0 {
		add(YakuDora, h.UraDora)
	}
	return out
}

func detectYakuman(h Hand, groups []Group, pair tile.Type, waitKind analyzer.WaitKind) (map[Yaku]int, bool) {
	found := map[Yaku]int{}

	if n := concealedTripletCount(groups); n == 4 {
		// demoteRonCompletedTriplet already stripped the Concealed flag from
		// a shanpon-ron completion, so reaching four here means a genuine
		// four-ankou hand (tsumo, or ron completing the pair/tanki wait).
		if waitKind == analyzer.WaitTanki {
			found[YakuSuuankouTanki] = 2
		} else {
			found[YakuSuuankou] = 1
		}
	}
	if kantsuCount(groups) == 4 {
		found[YakuSuukantsu] = 1
	}
	if daisangen(groups) {
		found[YakuDaisangen] = 1
	}
	if shousuushi, daisuushi := suushi(groups, pair); daisuushi {
		found[YakuDaisuushi] = 2
	} else if shousuushi {
		found[YakuShousuushi] = 1
	}
	if tsuuiisou(groups, pair) {
		found[YakuTsuuiisou] = 1
	}
	if chinroutou(groups, pair) {
		found[YakuChinroto] = 1
	}
	if ryuuiisou(groups, pair) {
		found[YakuRyuuiisou] = 1
	}
	if junsei, chuuren := chuurenpoutou(groups, pair, h.WinTile.Type); junsei {
		found[YakuJunseiChuurenpoutou] = 2
	} else if chuuren {
		found[YakuChuurenpoutou] = 1
	}

	if len(found) == 0 {
		return nil, false
	}
	return found, true
}

// --- shape predicates ---

func allSimples(groups []Group, pair tile.Type) bool {
	if pair.IsTerminalOrHonor() {
		return false
	}
	for _, g := range groups {
		if g.Kind == GroupSequence {
			if g.Low.Number() == 1 || g.Low.Number() == 7 {
				return false
			}
			continue
		}
		if g.Low.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

func isPinfu(groups []Group, pair tile.Type, h Hand, waitKind analyzer.WaitKind) bool {
	if waitKind != analyzer.WaitRyanmen {
		return false
	}
	if pair.IsYakuhai(h.RoundWind, h.SeatWind) {
		return false
	}
	for _, g := range groups {
		if g.Kind != GroupSequence {
			return false
		}
	}
	return true
}

func yakuhaiHan(groups []Group, pair tile.Type, h Hand) int {
	han := 0
	for _, g := range groups {
		if g.Kind != GroupTriplet && g.Kind != GroupQuad {
			continue
		}
		if g.Low.IsDragon() {
			han++
		}
		if g.Low.IsWind(h.RoundWind) {
			han++
		}
		if g.Low.IsWind(h.SeatWind) {
			han++
		}
	}
	return han
}

func iipeikouCount(groups []Group) int {
	seen := map[tile.Type]int{}
	for _, g := range groups {
		if g.Kind == GroupSequence {
			seen[g.Low]++
		}
	}
	count := 0
	for _, n := range seen {
		count += n / 2
	}
	return count
}

func sanshokuDoujun(groups []Group) bool {
	bySuit := map[tile.Suit]map[int]bool{tile.SuitMan: {}, tile.SuitPin: {}, tile.SuitSou: {}}
	for _, g := range groups {
		if g.Kind != GroupSequence {
			continue
		}
		bySuit[g.Low.Suit()][g.Low.Number()] = true
	}
	for n := range bySuit[tile.SuitMan] {
		if bySuit[tile.SuitPin][n] && bySuit[tile.SuitSou][n] {
			return true
		}
	}
	return false
}

func sanshokuDoukou(groups []Group) bool {
	bySuit := map[tile.Suit]map[int]bool{tile.SuitMan: {}, tile.SuitPin: {}, tile.SuitSou: {}}
	for _, g := range groups {
		if g.Kind != GroupTriplet && g.Kind != GroupQuad {
			continue
		}
		if g.Low.Suit() == tile.SuitMan || g.Low.Suit() == tile.SuitPin || g.Low.Suit() == tile.SuitSou {
			bySuit[g.Low.Suit()][g.Low.Number()] = true
		}
	}
	for n := range bySuit[tile.SuitMan] {
		if bySuit[tile.SuitPin][n] && bySuit[tile.SuitSou][n] {
			return true
		}
	}
	return false
}

func ittsu(groups []Group) bool {
	bySuit := map[tile.Suit]map[int]bool{tile.SuitMan: {}, tile.SuitPin: {}, tile.SuitSou: {}}
	for _, g := range groups {
		if g.Kind != GroupSequence {
			continue
		}
		bySuit[g.Low.Suit()][g.Low.Number()] = true
	}
	for _, set := range bySuit {
		if set[1] && set[4] && set[7] {
			return true
		}
	}
	return false
}

func chantaJunchan(groups []Group, pair tile.Type) (chanta, junchan bool) {
	allTerminal := true
	for _, g := range groups {
		if !g.isYaochuu() {
			return false, false
		}
		if g.Kind == GroupSequence || g.Low.IsHonor() {
			allTerminal = false
		}
	}
	if !pair.IsTerminalOrHonor() {
		return false, false
	}
	if pair.IsHonor() {
		allTerminal = false
	}
	return true, allTerminal
}

func toitoi(groups []Group) bool {
	for _, g := range groups {
		if g.Kind == GroupSequence {
			return false
		}
	}
	return true
}

func concealedTripletCount(groups []Group) int {
	n := 0
	for _, g := range groups {
		if (g.Kind == GroupTriplet || g.Kind == GroupQuad) && g.Concealed {
			n++
		}
	}
	return n
}

func kantsuCount(groups []Group) int {
	n := 0
	for _, g := range groups {
		if g.Kind == GroupQuad {
			n++
		}
	}
	return n
}

func honroutou(groups []Group, pair tile.Type) bool {
	if !toitoi(groups) {
		return false
	}
	if !pair.IsTerminalOrHonor() {
		return false
	}
	for _, g := range groups {
		if !g.Low.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

// honitsuChinitsu returns 2 for chinitsu, 1 for honitsu, 0 for neither.
func honitsuChinitsu(groups []Group, pair tile.Type) (tile.Suit, int) {
	var suit tile.Suit = -1
	hasHonor := pair.IsHonor()
	if !pair.IsHonor() {
		suit = pair.Suit()
	}
	for _, g := range groups {
		t := g.Low
		if t.IsHonor() {
			hasHonor = true
			continue
		}
		if suit == -1 {
			suit = t.Suit()
		} else if suit != t.Suit() {
			return -1, 0
		}
	}
	if suit == -1 {
		return -1, 0
	}
	if hasHonor {
		return suit, 1
	}
	return suit, 2
}

func daisangen(groups []Group) bool {
	return dragonTripletCount(groups) == 3
}

func shousangen(groups []Group, pair tile.Type) bool {
	return dragonTripletCount(groups) == 2 && pair.IsDragon()
}

func dragonTripletCount(groups []Group) int {
	count := 0
	for _, g := range groups {
		if (g.Kind == GroupTriplet || g.Kind == GroupQuad) && g.Low.IsDragon() {
			count++
		}
	}
	return count
}

func suushi(groups []Group, pair tile.Type) (shousuushi, daisuushi bool) {
	count := 0
	for _, g := range groups {
		if (g.Kind == GroupTriplet || g.Kind == GroupQuad) && g.Low.IsWindTile() {
			count++
		}
	}
	if count == 4 {
		return false, true
	}
	if count == 3 && pair.IsWindTile() {
		return true, false
	}
	return false, false
}

func tsuuiisou(groups []Group, pair tile.Type) bool {
	if !pair.IsHonor() {
		return false
	}
	for _, g := range groups {
		if !g.Low.IsHonor() {
			return false
		}
	}
	return true
}

func chinroutou(groups []Group, pair tile.Type) bool {
	if !pair.IsTerminal() {
		return false
	}
	for _, g := range groups {
		if g.Kind == GroupSequence || !g.Low.IsTerminal() {
			return false
		}
	}
	return true
}

func ryuuiisou(groups []Group, pair tile.Type) bool {
	if !pair.IsGreen() {
		return false
	}
	for _, g := range groups {
		switch g.Kind {
		case GroupSequence:
			if g.Low.Suit() != tile.SuitSou || g.Low.Number() != 2 {
				return false
			}
		default:
			if !g.Low.IsGreen() {
				return false
			}
		}
	}
	return true
}

func chuurenpoutou(groups []Group, pair tile.Type, winTile tile.Type) (junsei, chuuren bool) {
	suit, purity := honitsuChinitsu(groups, pair)
	if purity != 2 {
		return false, false
	}
	counts := [10]int{}
	for _, g := range groups {
		switch g.Kind {
		case GroupSequence:
			n := g.Low.Number()
			counts[n]++
			counts[n+1]++
			counts[n+2]++
		default:
			counts[g.Low.Number()] += 3
		}
	}
	counts[pair.Number()] += 2
	required := [10]int{0, 3, 1, 1, 1, 1, 1, 1, 1, 3}
	extra := -1
	for n := 1; n <= 9; n++ {
		diff := counts[n] - required[n]
		if diff < 0 || diff > 1 {
			return false, false
		}
		if diff == 1 {
			if extra != -1 {
				return false, false
			}
			extra = n
		}
	}
	if extra == -1 {
		return false, false
	}
	_ = suit
	// junsei (pure) chuurenpoutou waits on all nine tiles of the suit; the
	// pre-win hand (1112345678999) is itself the nine-sided wait shape.
	waitsOnAll := true
	base := counts
	base[winTile.Number()]--
	for n := 1; n <= 9 && waitsOnAll; n++ {
		need := required[n]
		if base[n] < need {
			waitsOnAll = false
		}
	}
	return waitsOnAll, true
}

// --- fu computation ---

func computeFu(h Hand, groups []Group, pair tile.Type, waitKind analyzer.WaitKind) int {
	if isPinfu(groups, pair, h, waitKind) {
		if h.Tsumo {
			return 20
		}
		return 30
	}

	fu := 20
	if h.Tsumo {
		fu += 2
	} else if isOpen(groups) {
		// open ron with no pinfu still gets the base 20 (no menzen-ron bonus)
	} else {
		fu += 10 // closed ron bonus (menzen kafu)
	}

	if pair.IsDragon() || pair.IsWind(h.RoundWind) || pair.IsWind(h.SeatWind) {
		fu += 2
		if pair.IsWind(h.RoundWind) && pair.IsWind(h.SeatWind) {
			fu += 2 // double wind pair
		}
	}

	for _, g := range groups {
		if g.Kind == GroupSequence {
			continue
		}
		yaochuu := g.isYaochuu()
		switch g.Kind {
		case GroupTriplet:
			switch {
			case g.Concealed && yaochuu:
				fu += 8
			case g.Concealed:
				fu += 4
			case yaochuu:
				fu += 4
			default:
				fu += 2
			}
		case GroupQuad:
			switch {
			case g.Concealed && yaochuu:
				fu += 32
			case g.Concealed:
				fu += 16
			case yaochuu:
				fu += 16
			default:
				fu += 8
			}
		}
	}

	switch waitKind {
	case analyzer.WaitKanchan, analyzer.WaitPenchan, analyzer.WaitTanki:
		fu += 2
	}

	return roundUpTo10(fu)
}

func roundUpTo10(n int) int {
	return ((n + 9) / 10) * 10
}

func roundUpTo100(n int) int {
	return ((n + 99) / 100) * 100
}

// --- chiitoi / kokushi ---

func evaluateChiitoi(h Hand, counts analyzer.Hand34) *Result {
	var found []Found
	found = append(found, Found{Yaku: YakuChiitoi, Han: 2})
	if h.DoubleRiichi {
		found = append(found, Found{Yaku: YakuDoubleRiichi, Han: 2})
	} else if h.Riichi {
		found = append(found, Found{Yaku: YakuRiichi, Han: 1})
	}
	if h.Ippatsu {
		found = append(found, Found{Yaku: YakuIppatsu, Han: 1})
	}
	if h.Tsumo {
		found = append(found, Found{Yaku: YakuMenzenTsumo, Han: 1})
	}
	if h.Haitei {
		found = append(found, Found{Yaku: YakuHaitei, Han: 1})
	}
	if h.Houtei {
		found = append(found, Found{Yaku: YakuHoutei, Han: 1})
	}

	pairsAllTerminalHonor := true
	suit := tile.Suit(-1)
	pureSuit := true
	hasHonor := false
	for i := 0; i < tile.NumTypes; i++ {
		if counts[i] == 0 {
			continue
		}
		t := tile.Type(i)
		if !t.IsTerminalOrHonor() {
			pairsAllTerminalHonor = false
		}
		if t.IsHonor() {
			hasHonor = true
			continue
		}
		if suit == -1 {
			suit = t.Suit()
		} else if suit != t.Suit() {
			pureSuit = false
		}
	}
	if pairsAllTerminalHonor {
		found = append(found, Found{Yaku: YakuHonroto, Han: 2})
	}
	if suit != -1 && pureSuit {
		if hasHonor {
			found = append(found, Found{Yaku: YakuHonitsu, Han: 2})
		} else {
			found = append(found, Found{Yaku: YakuChinitsu, Han: 5})
		}
	}

	han, yakumanMult := totalHan(found)
	if h.Dora > 0 {
		found = append(found, Found{Yaku: YakuDora, Han: h.Dora})
		han += h.Dora
	}
	if h.UraDora > 0 {
		found = append(found, Found{Yaku: YakuDora, Han: h.UraDora})
		han += h.UraDora
	}
	fu := 25
	points := pointsFor(han, fu, yakumanMult, h)
	return &Result{Han: han, Fu: fu, YakumanMult: yakumanMult, Found: found, Points: points}
}

func evaluateKokushi(h Hand, counts analyzer.Hand34) *Result {
	tanki := counts[h.WinTile.Type] == 2
	var found []Found
	if tanki {
		found = append(found, Found{Yaku: YakuKokushiJuusanmen, YakumanMult: 2})
	} else {
		found = append(found, Found{Yaku: YakuKokushi, YakumanMult: 1})
	}
	_, yakumanMult := totalHan(found)
	points := pointsFor(0, 0, yakumanMult, h)
	return &Result{YakumanMult: yakumanMult, Found: found, Points: points}
}

// --- points ---

// basePointCap is the base-point ceiling at which the fu*2^(2+han) formula
// gives way to the named mangan-and-above brackets (kiriage mangan: a
// formula result that would exceed this is simply capped here, giving the
// same number the explicit breakpoint tables would).
const basePointCap = 2000

// Named "basic points" for han>=5, matching the reference implementation's
// mangan/haneman/baiman/sanbaiman/yakuman constants. Unlike the fu-derived
// formula these are independent of dealer/non-dealer and ron/tsumo: the
// oya/ko point totals (e.g. 12000/8000 for mangan) both factor as this same
// basic-point value times the 6x/4x ron multiplier or the dealer/ko tsumo
// shares below.
const (
	basicMangan    = 2000
	basicHaneman   = 3000
	basicBaiman    = 4000
	basicSanbaiman = 6000
	basicYakuman   = 8000
)

// basicPoints resolves the "basic points" (fu*2^(2+han), or the named
// mangan-and-above value) that every payment is a multiple of.
func basicPoints(han, fu, yakumanMult int) int {
	switch {
	case yakumanMult > 0:
		return basicYakuman * yakumanMult
	case han >= 11:
		return basicSanbaiman
	case han >= 8:
		return basicBaiman
	case han >= 6:
		return basicHaneman
	case han == 5:
		return basicMangan
	default:
		base := fu * (1 << (2 + han))
		if base > basePointCap {
			base = basePointCap
		}
		return base
	}
}

// pointsFor resolves the total points the winner collects, honba and
// riichi-stick carryover included. For a ron this is paid entirely by the
// discarder; for a tsumo it is the sum of what Settle splits across the
// three opponents.
func pointsFor(han, fu, yakumanMult int, h Hand) int {
	basic := basicPoints(han, fu, yakumanMult)
	var total int
	if h.Tsumo {
		if h.IsDealer {
			total = roundUpTo100(basic*2) * 3
		} else {
			total = roundUpTo100(basic*2) + roundUpTo100(basic)*2
		}
	} else {
		if h.IsDealer {
			total = roundUpTo100(basic * 6)
		} else {
			total = roundUpTo100(basic * 4)
		}
	}

	if h.Tsumo {
		total += 100 * h.Honba * 3
	} else {
		total += 300 * h.Honba
	}
	total += h.Riichi3 * 1000
	return total
}

// Settle splits a tsumo win's per-opponent payment (honba excluded; the
// coordinator adds 100 per honba to every payer separately). When the
// winner is the dealer, dealerPays and koPays are equal - every opponent
// pays the same dealer-scale share.
func Settle(h Hand, fu, han, yakumanMult int) (dealerPays, koPays int) {
	basic := basicPoints(han, fu, yakumanMult)
	if h.IsDealer {
		each := roundUpTo100(basic * 2)
		return each, each
	}
	return roundUpTo100(basic * 2), roundUpTo100(basic)
}
