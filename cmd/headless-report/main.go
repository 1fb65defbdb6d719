package main

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/Garsondee/tangle/internal/tangle"
)

type runStats struct {
	runIndex int
	seed     int64
	result   tangle.Result

	firstRotateTurn int // turn of the first rotation, -1 if never
	longestStraight int // longest run of moves without a rotation in between
	previewAtStart  int // chain length before any action
}

func main() {
	var runs int
	var maxTurns int
	var seedBase int64
	var seedStep int64
	var policyName string
	var width, height, cut int
	var verbose bool
	var chart bool

	flag.IntVar(&runs, "runs", 5, "number of headless games")
	flag.IntVar(&maxTurns, "max-turns", 0, "stop a game after this many moves (0 = play to the end)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&policyName, "policy", "greedy", "autoplay policy (greedy, straight)")
	flag.IntVar(&width, "width", tangle.DefaultBoardWidth, "board width")
	flag.IntVar(&height, "height", tangle.DefaultBoardHeight, "board height")
	flag.IntVar(&cut, "corner-cut", tangle.DefaultCornerCut, "corner cut (-1 = full rectangle)")
	flag.BoolVar(&verbose, "v", false, "print every game's move log")
	flag.BoolVar(&chart, "chart", false, "show a terminal score chart after the report")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if seedBase == 0 {
		fmt.Println("error: -seed-base must be non-zero")
		return
	}
	policy, err := tangle.PolicyByName(policyName)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Tangle Report ===\n")
	fmt.Printf("policy=%s runs=%d board=%dx%d cut=%d max_turns=%d seed_base=%d seed_step=%d\n\n",
		policy.Name(), runs, width, height, cut, maxTurns, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		if seed == 0 {
			seed = 1
		}
		s, err := tangle.NewSession(
			tangle.WithSeed(seed),
			tangle.WithBoardSize(width, height),
			tangle.WithCornerCut(cut),
			tangle.WithVerbose(verbose),
		)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		stats, err := runGame(i+1, s, policy, maxTurns)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(s.Log().Format())
			fmt.Println()
		}
	}

	printAggregate(all)

	if chart {
		if err := showChart(all, policy.Name()); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func runGame(runIndex int, s *tangle.Session, p tangle.Policy, maxTurns int) (runStats, error) {
	previewAtStart := len(s.Preview(0).Steps)
	r, err := tangle.Autoplay(s, p, maxTurns)
	if err != nil {
		return runStats{}, err
	}
	entries := s.Log().Entries()
	return runStats{
		runIndex:        runIndex,
		seed:            s.Seed(),
		result:          r,
		firstRotateTurn: firstTurn(entries, tangle.CategoryRotate),
		longestStraight: longestStraight(entries),
		previewAtStart:  previewAtStart,
	}, nil
}

func firstTurn(entries []tangle.MoveLogEntry, category string) int {
	for _, e := range entries {
		if e.Category == category {
			return e.Turn
		}
	}
	return -1
}

// longestStraight counts the longest run of consecutive moves with no
// rotation between them.
func longestStraight(entries []tangle.MoveLogEntry) int {
	best, cur := 0, 0
	for _, e := range entries {
		switch e.Category {
		case tangle.CategoryMove:
			cur++
			if cur > best {
				best = cur
			}
		case tangle.CategoryRotate:
			cur = 0
		}
	}
	return best
}

func printRun(rs runStats) {
	r := rs.result
	fmt.Printf("--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, r.ID)
	fmt.Printf("result: score=%d outcome=%s rotations=%d tiles_used=%d\n",
		r.Score, r.Outcome, r.Rotations, r.TilesUsed)
	fmt.Printf("markers: preview_at_start=%d first_rotate_turn=%d longest_straight=%d\n",
		rs.previewAtStart, rs.firstRotateTurn, rs.longestStraight)
	fmt.Printf("summary: %s\n\n", r.Description)
}

type scoreSummary struct {
	min, max int
	mean     float64
	median   float64
}

func summarizeScores(all []runStats) scoreSummary {
	if len(all) == 0 {
		return scoreSummary{}
	}
	scores := make([]int, 0, len(all))
	sum := 0
	for _, rs := range all {
		scores = append(scores, rs.result.Score)
		sum += rs.result.Score
	}
	slices.Sort(scores)
	n := len(scores)
	median := float64(scores[n/2])
	if n%2 == 0 {
		median = float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return scoreSummary{
		min:    scores[0],
		max:    scores[n-1],
		mean:   avg(sum, n),
		median: median,
	}
}

func outcomeCounts(all []runStats) map[tangle.Outcome]int {
	out := map[tangle.Outcome]int{}
	for _, rs := range all {
		out[rs.result.Outcome]++
	}
	return out
}

func formatOutcomeCounts(counts map[tangle.Outcome]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]tangle.Outcome, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func printAggregate(all []runStats) {
	totalRotations := 0
	totalTiles := 0
	totalPreview := 0
	for _, rs := range all {
		totalRotations += rs.result.Rotations
		totalTiles += rs.result.TilesUsed
		totalPreview += rs.previewAtStart
	}
	sc := summarizeScores(all)

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("score: min=%d max=%d mean=%.1f median=%.1f\n", sc.min, sc.max, sc.mean, sc.median)
	fmt.Printf("avg_per_run: rotations=%.1f tiles_used=%.1f preview_at_start=%.1f\n",
		avg(totalRotations, len(all)), avg(totalTiles, len(all)), avg(totalPreview, len(all)))
	fmt.Printf("outcomes: %s\n", formatOutcomeCounts(outcomeCounts(all)))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
