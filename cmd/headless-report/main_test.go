package main

import (
	"testing"

	"github.com/Garsondee/tangle/internal/tangle"
)

func stats(scores ...int) []runStats {
	out := make([]runStats, 0, len(scores))
	for i, s := range scores {
		out = append(out, runStats{runIndex: i + 1, result: tangle.Result{Score: s, Outcome: tangle.OutcomeDeadEnd}})
	}
	return out
}

func TestSummarizeScores(t *testing.T) {
	sc := summarizeScores(stats(5, 1, 9, 3))
	if sc.min != 1 || sc.max != 9 {
		t.Fatalf("expected min=1 max=9, got min=%d max=%d", sc.min, sc.max)
	}
	if sc.mean != 4.5 {
		t.Fatalf("expected mean 4.5, got %.2f", sc.mean)
	}
	if sc.median != 4 {
		t.Fatalf("expected median 4, got %.2f", sc.median)
	}

	odd := summarizeScores(stats(7, 2, 4))
	if odd.median != 4 {
		t.Fatalf("expected odd median 4, got %.2f", odd.median)
	}

	if empty := summarizeScores(nil); empty != (scoreSummary{}) {
		t.Fatalf("expected zero summary for no runs, got %+v", empty)
	}
}

func TestOutcomeCounts(t *testing.T) {
	all := stats(1, 2, 3)
	all[1].result.Outcome = tangle.OutcomeOffGrid
	counts := outcomeCounts(all)
	if counts[tangle.OutcomeDeadEnd] != 2 || counts[tangle.OutcomeOffGrid] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if got := formatOutcomeCounts(counts); got != "off_grid=1 dead_end=2" {
		t.Fatalf("unexpected formatting %q", got)
	}
	if got := formatOutcomeCounts(nil); got != "none" {
		t.Fatalf("expected none, got %q", got)
	}
}

func TestLongestStraight(t *testing.T) {
	entries := []tangle.MoveLogEntry{
		{Turn: 1, Category: tangle.CategoryMove},
		{Turn: 2, Category: tangle.CategoryMove},
		{Turn: 2, Category: tangle.CategoryRotate},
		{Turn: 3, Category: tangle.CategoryMove},
		{Turn: 4, Category: tangle.CategoryMove},
		{Turn: 5, Category: tangle.CategoryMove},
		{Turn: 5, Category: tangle.CategoryEnd},
	}
	if got := longestStraight(entries); got != 3 {
		t.Fatalf("expected longest straight 3, got %d", got)
	}
	if got := firstTurn(entries, tangle.CategoryRotate); got != 2 {
		t.Fatalf("expected first rotate at turn 2, got %d", got)
	}
	if got := firstTurn(entries, tangle.CategoryPreview); got != -1 {
		t.Fatalf("expected -1 for missing category, got %d", got)
	}
}

func TestRunGame(t *testing.T) {
	s, err := tangle.NewSession(tangle.WithSeed(77))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	rs, err := runGame(1, s, tangle.GreedyPolicy{Horizon: 16}, 0)
	if err != nil {
		t.Fatalf("run game: %v", err)
	}
	if rs.seed != 77 || rs.result.Score <= 0 {
		t.Fatalf("unexpected stats %+v", rs)
	}
	if !rs.result.Outcome.Terminal() || rs.result.Outcome == tangle.OutcomeLimit {
		t.Fatalf("expected a finished game, got %s", rs.result.Outcome)
	}
	if rs.longestStraight > rs.result.Score {
		t.Fatalf("straight run %d longer than score %d", rs.longestStraight, rs.result.Score)
	}
}

func TestScoreHistogram(t *testing.T) {
	data, labels := scoreHistogram(stats(1, 5, 9, 3), 4)
	want := []float64{2, 1, 1, 0}
	if len(data) != len(want) {
		t.Fatalf("expected %d bins, got %d", len(want), len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("bin %d: expected %.0f, got %.0f (%v)", i, want[i], data[i], data)
		}
	}
	if labels[0] != "1" || labels[1] != "4" {
		t.Fatalf("unexpected labels %v", labels)
	}

	same, _ := scoreHistogram(stats(6, 6, 6), 3)
	if same[0] != 3 {
		t.Fatalf("equal scores should share the first bin, got %v", same)
	}
	if d, l := scoreHistogram(nil, 4); d != nil || l != nil {
		t.Fatal("expected nil histogram for no runs")
	}
}
