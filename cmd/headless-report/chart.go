package main

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// scoreHistogram buckets run scores into n equal-width bins spanning
// [min, max]. Labels are the inclusive lower bound of each bin.
func scoreHistogram(all []runStats, n int) ([]float64, []string) {
	if len(all) == 0 || n <= 0 {
		return nil, nil
	}
	sc := summarizeScores(all)
	width := (sc.max - sc.min + n) / n
	if width < 1 {
		width = 1
	}
	data := make([]float64, n)
	labels := make([]string, n)
	for b := 0; b < n; b++ {
		labels[b] = fmt.Sprintf("%d", sc.min+b*width)
	}
	for _, rs := range all {
		b := (rs.result.Score - sc.min) / width
		if b >= n {
			b = n - 1
		}
		data[b]++
	}
	return data, labels
}

// showChart draws the score distribution in the terminal until q or Ctrl-C.
func showChart(all []runStats, policy string) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("init termui: %w", err)
	}
	defer ui.Close()

	w, h := ui.TerminalDimensions()
	data, labels := scoreHistogram(all, 8)

	sc := summarizeScores(all)
	p := widgets.NewParagraph()
	p.Title = "tangle"
	p.Text = fmt.Sprintf("policy=%s runs=%d mean=%.1f median=%.1f\n%s   (q to quit)",
		policy, len(all), sc.mean, sc.median, formatOutcomeCounts(outcomeCounts(all)))
	p.SetRect(0, 0, w, 5)

	bc := widgets.NewBarChart()
	bc.Title = "score distribution"
	bc.Data = data
	bc.Labels = labels
	bc.BarWidth = 6
	bc.SetRect(0, 5, w, h)

	ui.Render(p, bc)
	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			w, h = ui.TerminalDimensions()
			p.SetRect(0, 0, w, 5)
			bc.SetRect(0, 5, w, h)
			ui.Clear()
			ui.Render(p, bc)
		}
	}
	return nil
}
