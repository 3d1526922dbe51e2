package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/phantomop26/Poker-Analyst/internal/randutil"
	"github.com/phantomop26/Poker-Analyst/poker"
)

// ErrInvalidInput is returned when hole cards, community cards or options
// cannot describe a legal game state.
var ErrInvalidInput = errors.New("invalid input")

const (
	baseIterations = 5000
	maxIterations  = 50000
	// simpleIterations is the reduced trial count used by CalculateSimple.
	simpleIterations = 1000

	defaultStackDepth      = 100.0
	defaultConfidenceLevel = 0.95
	maxWorkers             = 8
)

// Options configures a simulation run. The zero value gives a sensible
// default for every field.
type Options struct {
	// Iterations is the number of Monte Carlo trials. Zero means a default
	// scaled by opponent count, capped at 50000.
	Iterations int

	// Position of the player at the table. Defaults to Middle.
	Position Position

	// StackDepth is the effective stack in big blinds. Zero means 100.
	StackDepth float64

	// IncludeDraws attaches draw analysis to the result. Draws only exist
	// on flop and turn boards; preflop and river requests carry none.
	IncludeDraws bool

	CalculateVariance  bool
	ConfidenceInterval bool

	// ConfidenceLevel for the win-rate interval. Zero means 0.95.
	ConfidenceLevel float64

	// Timeout bounds wall-clock time. When it expires workers stop
	// launching trials and the partial tally is reported.
	Timeout time.Duration

	// Workers is the number of parallel simulation goroutines. Zero means
	// min(NumCPU, 8). Set to 1 together with Seed for reproducible runs.
	Workers int

	// Seed makes the run deterministic. Zero seeds from crypto/rand.
	Seed int64

	// Profiles overrides the built-in behavior archetypes.
	Profiles *ProfileSet

	Logger *zerolog.Logger
	Clock  quartz.Clock
}

// SimulationResult is the raw Monte Carlo tally before any adjustment.
type SimulationResult struct {
	Wins       int
	Ties       int
	Losses     int
	Iterations int

	// WinPercentage counts ties as half a win, in [0, 100].
	WinPercentage float64

	// HandStrengths holds the per-trial strength of the player's best hand.
	HandStrengths []float64

	Variance float64
	StdDev   float64

	// Interval is the win-rate confidence interval, present only when
	// Options.ConfidenceInterval is set.
	Interval *ConfidenceInterval
}

// AdjustedResult is a SimulationResult with the behavioral, positional,
// stack-depth and game-theory corrections applied.
type AdjustedResult struct {
	SimulationResult

	Adjustments           Adjustments
	AdjustedWinPercentage float64

	// Confidence rates how trustworthy the estimate is, in [0.1, 1.0].
	Confidence float64

	// Draws is populated when Options.IncludeDraws is set and the board
	// is still incomplete.
	Draws *poker.DrawAnalysis
}

// defaultIterations scales the trial count with opponent count, since
// multiway pots need more samples for the same precision.
func defaultIterations(numOpponents int) int {
	n := baseIterations * (1 + 0.2*float64(numOpponents))
	if n > maxIterations {
		n = maxIterations
	}
	return int(n)
}

func (o Options) normalize(numOpponents int) Options {
	if o.Iterations == 0 {
		o.Iterations = defaultIterations(numOpponents)
	}
	if o.StackDepth == 0 {
		o.StackDepth = defaultStackDepth
	}
	if o.ConfidenceLevel == 0 {
		o.ConfidenceLevel = defaultConfidenceLevel
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
		if o.Workers > maxWorkers {
			o.Workers = maxWorkers
		}
	}
	if o.Profiles == nil {
		o.Profiles = DefaultProfiles()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}
	return o
}

func validateInput(hole, community []poker.Card, opponents []Opponent, opts Options) error {
	if len(hole) != 2 {
		return fmt.Errorf("%w: need exactly 2 hole cards, got %d", ErrInvalidInput, len(hole))
	}
	switch len(community) {
	case 0, 3, 4, 5:
	default:
		return fmt.Errorf("%w: community cards must number 0, 3, 4 or 5, got %d", ErrInvalidInput, len(community))
	}
	if len(opponents) < 1 {
		return fmt.Errorf("%w: need at least one opponent", ErrInvalidInput)
	}
	// Budget against the full 5-card board every trial completes to, not the
	// cards dealt so far.
	if 2+5+2*len(opponents) > 52 {
		return fmt.Errorf("%w: %d opponents do not fit in one deck", ErrInvalidInput, len(opponents))
	}

	seen := make(map[poker.Card]bool, len(hole)+len(community))
	for _, c := range append(append([]poker.Card{}, hole...), community...) {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		seen[c] = true
	}

	if opts.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidInput)
	}
	if opts.StackDepth < 0 {
		return fmt.Errorf("%w: stack depth must be positive", ErrInvalidInput)
	}
	if opts.ConfidenceLevel != 0 && (opts.ConfidenceLevel <= 0 || opts.ConfidenceLevel >= 1) {
		return fmt.Errorf("%w: confidence level must be in (0, 1)", ErrInvalidInput)
	}
	return nil
}

// resolveProfiles maps opponent behavior names to profiles. Unknown names
// degrade that seat to unbiased sampling, logged once per distinct name.
func resolveProfiles(opponents []Opponent, set *ProfileSet, logger *zerolog.Logger) []*BehaviorProfile {
	profiles := make([]*BehaviorProfile, len(opponents))
	warned := make(map[string]bool)
	for i, opp := range opponents {
		if opp.Behavior == "" {
			continue
		}
		p, ok := set.Lookup(opp.Behavior)
		if !ok {
			if !warned[opp.Behavior] {
				logger.Warn().
					Str("behavior", opp.Behavior).
					Msg("unknown behavior archetype, sampling unbiased")
				warned[opp.Behavior] = true
			}
			continue
		}
		profile := p
		profiles[i] = &profile
	}
	return profiles
}

// Calculate runs the full equity pipeline: Monte Carlo simulation,
// statistics, and the adjustment layer.
func Calculate(hole, community []poker.Card, opponents []Opponent, opts Options) (*AdjustedResult, error) {
	opts = opts.normalize(len(opponents))
	if err := validateInput(hole, community, opponents, opts); err != nil {
		return nil, err
	}
	profiles := resolveProfiles(opponents, opts.Profiles, opts.Logger)

	sim := simulate(hole, community, profiles, opts)

	adjustments := Adjustments{
		Behavioral: behavioralAdjustment(profiles),
		Positional: opts.Position.equityAdjustment(),
		StackDepth: stackDepthAdjustment(opts.StackDepth),
		GameTheory: gameTheoryAdjustment(sim.WinPercentage, len(opponents), len(community)),
	}
	adjusted := sim.WinPercentage + adjustments.Total()
	if math.IsNaN(adjusted) || math.IsInf(adjusted, 0) {
		return nil, &DegenerateResultError{WinPercentage: adjusted}
	}
	adjusted = math.Max(0, math.Min(100, adjusted))

	result := &AdjustedResult{
		SimulationResult:      sim,
		Adjustments:           adjustments,
		AdjustedWinPercentage: adjusted,
		Confidence:            confidenceRating(sim.Iterations, sim.StdDev, adjustments),
	}
	if opts.IncludeDraws && len(community) >= 3 && len(community) < 5 {
		draws := poker.AnalyzeDraws(hole, community)
		result.Draws = &draws
	}

	opts.Logger.Debug().
		Int("iterations", sim.Iterations).
		Float64("win_pct", sim.WinPercentage).
		Float64("adjusted_pct", adjusted).
		Float64("confidence", result.Confidence).
		Msg("equity calculation complete")

	return result, nil
}

// CalculateSimple is the reduced-fidelity fallback: fewer trials, unbiased
// opponent sampling, and no adjustment layer.
func CalculateSimple(hole, community []poker.Card, opponents []Opponent, opts Options) (*AdjustedResult, error) {
	if opts.Iterations == 0 {
		opts.Iterations = simpleIterations
	}
	opts = opts.normalize(len(opponents))
	if err := validateInput(hole, community, opponents, opts); err != nil {
		return nil, err
	}

	// Every seat samples unbiased regardless of declared behavior.
	profiles := make([]*BehaviorProfile, len(opponents))
	sim := simulate(hole, community, profiles, opts)

	return &AdjustedResult{
		SimulationResult:      sim,
		AdjustedWinPercentage: sim.WinPercentage,
		Confidence:            confidenceRating(sim.Iterations, sim.StdDev, Adjustments{}),
	}, nil
}

type workerTally struct {
	wins      int
	ties      int
	losses    int
	strengths []float64
}

// simulate runs the Monte Carlo trials across a worker pool. Workers get
// independent generators seeded sequentially from the parent, and tallies
// merge in worker order, so a fixed Seed and Workers count is reproducible.
func simulate(hole, community []poker.Card, profiles []*BehaviorProfile, opts Options) SimulationResult {
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = randutil.New(opts.Seed)
	} else {
		var secure bool
		rng, secure = randutil.NewSecure()
		if !secure {
			opts.Logger.Debug().Msg("crypto seed unavailable, falling back to time seed")
		}
	}

	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = opts.Clock.Now().Add(opts.Timeout)
	}

	workers := opts.Workers
	if workers > opts.Iterations {
		workers = opts.Iterations
	}
	if workers < 1 {
		workers = 1
	}
	perWorker := opts.Iterations / workers
	remainder := opts.Iterations % workers

	tallies := make([]workerTally, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		seed := rng.Int64()
		w := w
		g.Go(func() error {
			tallies[w] = runWorker(hole, community, profiles, opts, trials, deadline, randutil.New(seed))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var result SimulationResult
	for _, t := range tallies {
		result.Wins += t.wins
		result.Ties += t.ties
		result.Losses += t.losses
		result.HandStrengths = append(result.HandStrengths, t.strengths...)
	}
	result.Iterations = result.Wins + result.Ties + result.Losses
	if result.Iterations > 0 {
		result.WinPercentage = (float64(result.Wins) + 0.5*float64(result.Ties)) / float64(result.Iterations) * 100
	}

	if opts.CalculateVariance && len(result.HandStrengths) > 0 {
		result.Variance = populationVariance(result.HandStrengths)
		result.StdDev = math.Sqrt(result.Variance)
	}
	if opts.ConfidenceInterval && result.Iterations > 0 {
		ci := confidenceInterval(result.WinPercentage/100, result.Iterations, opts.ConfidenceLevel)
		result.Interval = &ci
	}
	return result
}

func runWorker(hole, community []poker.Card, profiles []*BehaviorProfile, opts Options, trials int, deadline time.Time, rng *rand.Rand) workerTally {
	var t workerTally
	for i := 0; i < trials; i++ {
		if !deadline.IsZero() && opts.Clock.Now().After(deadline) {
			break
		}
		outcome, strength := runTrial(hole, community, profiles, opts.Position, opts.StackDepth, rng)
		switch outcome {
		case trialWin:
			t.wins++
		case trialTie:
			t.ties++
		case trialLoss:
			t.losses++
		}
		t.strengths = append(t.strengths, strength)
	}
	return t
}

type trialOutcome int

const (
	trialWin trialOutcome = iota
	trialTie
	trialLoss
)

// runTrial plays out a single hand: the board completes first, then opponents
// draw from their behavioral ranges, and seven-card best hands are compared.
// Completing the board before any biased sampling keeps the runout a uniform
// draw from the live deck whatever profiles sit at the table.
func runTrial(hole, community []poker.Card, profiles []*BehaviorProfile, position Position, stackDepth float64, rng *rand.Rand) (trialOutcome, float64) {
	d := poker.NewDeck(rng)
	d.Remove(hole...)
	d.Remove(community...)

	board := make([]poker.Card, 0, 5)
	board = append(board, community...)
	board = append(board, d.DealN(5-len(community))...)

	opponentHoles := make([][2]poker.Card, len(profiles))
	for i, profile := range profiles {
		opponentHoles[i] = sampleOpponentHand(d, profile, position, stackDepth, rng)
	}

	playerCards := make([]poker.Card, 0, 7)
	playerCards = append(playerCards, hole...)
	playerCards = append(playerCards, board...)
	playerBest := poker.BestHand(playerCards)
	strength := poker.HandStrength(playerBest, len(playerCards))

	playerWins := true
	hasTie := false
	oppCards := make([]poker.Card, 0, 7)
	for _, oppHole := range opponentHoles {
		oppCards = oppCards[:0]
		oppCards = append(oppCards, oppHole[0], oppHole[1])
		oppCards = append(oppCards, board...)
		cmp := poker.Compare(playerBest, poker.BestHand(oppCards))
		if cmp < 0 {
			playerWins = false
			break
		}
		if cmp == 0 {
			hasTie = true
		}
	}

	switch {
	case playerWins && !hasTie:
		return trialWin, strength
	case playerWins:
		return trialTie, strength
	default:
		return trialLoss, strength
	}
}
