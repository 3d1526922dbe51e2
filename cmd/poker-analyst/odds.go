package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/phantomop26/Poker-Analyst/analysis"
	"github.com/phantomop26/Poker-Analyst/poker"
)

type OddsCmd struct {
	Hand       string        `arg:"" help:"Hole cards, e.g. 'AsKd'"`
	Board      string        `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
	Opponents  []string      `short:"o" name:"opponent" help:"Opponent behavior archetype, repeat per seat (empty name for unbiased)"`
	Position   string        `default:"middle" help:"Table position: early, middle, late, blinds"`
	Stack      float64       `default:"100" help:"Effective stack depth in big blinds"`
	Iterations int           `short:"i" help:"Monte Carlo iterations (default scales with opponent count)"`
	Seed       *int64        `help:"Random seed for reproducible results"`
	Timeout    time.Duration `help:"Stop simulating after this duration and report the partial tally"`
	Profiles   string        `type:"existingfile" help:"HCL file with behavior profile overrides"`
	Draws      bool          `help:"Include draw analysis for incomplete boards"`
	Simple     bool          `help:"Skip behavioral and statistical adjustments"`
	Debug      bool          `help:"Enable debug logging"`
}

func (c *OddsCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	zlog := engineLogger(c.Debug)

	hole, err := poker.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hand must contain exactly 2 cards, got %d", len(hole))
	}

	var board []poker.Card
	if c.Board != "" {
		board, err = poker.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}
	if err := validateDistinct(append(append([]poker.Card{}, hole...), board...)); err != nil {
		return err
	}

	position, err := analysis.ParsePosition(c.Position)
	if err != nil {
		return err
	}

	opponents := make([]analysis.Opponent, 0, len(c.Opponents))
	for _, behavior := range c.Opponents {
		opponents = append(opponents, analysis.Opponent{Behavior: behavior})
	}
	if len(opponents) == 0 {
		opponents = append(opponents, analysis.Opponent{})
	}

	opts := analysis.Options{
		Iterations:         c.Iterations,
		Position:           position,
		StackDepth:         c.Stack,
		IncludeDraws:       c.Draws,
		CalculateVariance:  true,
		ConfidenceInterval: true,
		Timeout:            c.Timeout,
		Logger:             &zlog,
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}
	if c.Profiles != "" {
		set, err := analysis.LoadProfiles(c.Profiles)
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
		opts.Profiles = set
	}

	start := time.Now()
	var result *analysis.AdjustedResult
	if c.Simple {
		result, err = analysis.CalculateSimple(hole, board, opponents, opts)
	} else {
		result, err = analysis.Calculate(hole, board, opponents, opts)
		var degenerate *analysis.DegenerateResultError
		if errors.As(err, &degenerate) {
			logger.Warn("degenerate result, falling back to simple calculation",
				"win_pct", degenerate.WinPercentage)
			result, err = analysis.CalculateSimple(hole, board, opponents, opts)
		}
	}
	if err != nil {
		return err
	}

	displayOdds(hole, board, result, time.Since(start))
	return nil
}

func displayOdds(hole, board []poker.Card, r *analysis.AdjustedResult, elapsed time.Duration) {
	fmt.Printf("%s  %s\n", headerStyle.Render("hand"), handStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Printf("%s  %s\n", headerStyle.Render("board"), handStyle.Render(formatCards(board)))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	total := float64(r.Iterations)
	if total > 0 {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("win"),
			winStyle.Render(fmt.Sprintf("%.1f%%", float64(r.Wins)/total*100)))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("tie"),
			tieStyle.Render(fmt.Sprintf("%.1f%%", float64(r.Ties)/total*100)))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("loss"),
			valueStyle.Render(fmt.Sprintf("%.1f%%", float64(r.Losses)/total*100)))
	}
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("equity"),
		winStyle.Render(fmt.Sprintf("%.1f%% (%s)",
			r.AdjustedWinPercentage, poker.HandStrengthLabel(r.AdjustedWinPercentage))))
	if r.Interval != nil {
		fmt.Fprintf(w, "%s\t%s\n",
			labelStyle.Render(fmt.Sprintf("%.0f%% interval", r.Interval.Level*100)),
			valueStyle.Render(fmt.Sprintf("%.1f%% to %.1f%%",
				r.Interval.Lower*100, r.Interval.Upper*100)))
	}
	if r.StdDev > 0 {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("strength stddev"),
			valueStyle.Render(fmt.Sprintf("%.2f", r.StdDev)))
	}
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("confidence"),
		valueStyle.Render(fmt.Sprintf("%.2f", r.Confidence)))
	w.Flush()

	if r.Adjustments != (analysis.Adjustments{}) {
		fmt.Printf("\n%s\n", headerStyle.Render("adjustments"))
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%+.1f\n", labelStyle.Render("behavioral"), r.Adjustments.Behavioral)
		fmt.Fprintf(w, "%s\t%+.1f\n", labelStyle.Render("positional"), r.Adjustments.Positional)
		fmt.Fprintf(w, "%s\t%+.1f\n", labelStyle.Render("stack depth"), r.Adjustments.StackDepth)
		fmt.Fprintf(w, "%s\t%+.1f\n", labelStyle.Render("game theory"), r.Adjustments.GameTheory)
		w.Flush()
	}

	if r.Draws != nil {
		displayDraws(*r.Draws)
	}

	fmt.Printf("\n%d iterations in %v\n", r.Iterations, elapsed.Truncate(time.Millisecond))
}

func displayDraws(d poker.DrawAnalysis) {
	fmt.Printf("\n%s\n", headerStyle.Render("draws"))

	var names []string
	if d.FlushDraw {
		names = append(names, "flush draw")
	}
	if d.OpenEndedStraightDraw {
		names = append(names, "open-ended straight draw")
	}
	if d.GutshotStraightDraw {
		names = append(names, "gutshot straight draw")
	}
	if d.BackdoorFlush {
		names = append(names, "backdoor flush")
	}
	if d.BackdoorStraight {
		names = append(names, "backdoor straight")
	}
	if len(names) == 0 && d.Overcards == 0 {
		fmt.Println(valueStyle.Render("none"))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\n", labelStyle.Render(name))
	}
	if d.Overcards > 0 {
		fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("overcards"), d.Overcards)
	}
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("outs"), d.Outs)
	w.Flush()
}
