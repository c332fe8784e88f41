package calibration

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/natcalc/internal/logging"
	"github.com/agbru/natcalc/internal/nat"
	"github.com/agbru/natcalc/internal/sysmon"
)

// busyCPUPercent is the system CPU usage above which Run warns that
// other load may skew the timings.
const busyCPUPercent = 50

// Measurement compares the algorithm used below a crossover (Baseline) with
// the one used above it (Candidate) at one operand size. Durations are per
// operation.
type Measurement struct {
	Crossover string
	Words     int
	Baseline  time.Duration
	Candidate time.Duration
}

// CandidateWins reports whether the algorithm above the crossover was
// faster.
func (m Measurement) CandidateWins() bool { return m.Candidate < m.Baseline }

// Options configures Run.
type Options struct {
	// Quick measures fewer sizes with shorter samples.
	Quick bool
	// Repetitions is the number of timing samples per algorithm and size;
	// the fastest is kept. Zero selects 3, or 1 when Quick.
	Repetitions int
	// MinDuration is the minimum length of one timing sample. Zero selects
	// 20ms, or 1ms when Quick.
	MinDuration time.Duration
	// Parallelism bounds how many crossovers are measured at once. Zero
	// selects 1, which keeps the timings free of interference.
	Parallelism int
	// Seed seeds the random operands.
	Seed int64
	// Logger receives one entry per crossover; nil means no logging.
	Logger logging.Logger
	// OnStep, when set, is called after each measured size.
	OnStep func(done, total int, label string)
}

func (o Options) withDefaults() Options {
	if o.Repetitions <= 0 {
		o.Repetitions = 3
		if o.Quick {
			o.Repetitions = 1
		}
	}
	if o.MinDuration <= 0 {
		o.MinDuration = 20 * time.Millisecond
		if o.Quick {
			o.MinDuration = time.Millisecond
		}
	}
	if o.Parallelism <= 0 {
		o.Parallelism = 1
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// Result is the outcome of a calibration run.
type Result struct {
	Profile      *CalibrationProfile
	Measurements map[string][]Measurement
}

// pair is one baseline/candidate comparison at a given size.
type pair struct {
	baseline, candidate func()
}

// search describes one crossover to measure.
type search struct {
	name     string
	sizes    []int
	fallback int
	setup    func(r *rand.Rand, words int) pair
	store    func(p *CalibrationProfile, v int)
}

func searches(quick bool) []search {
	def := nat.DefaultThresholds()
	return []search{
		{CrossoverDC, GenerateDCCandidates(quick), def.DivDCThreshold, setupDC,
			func(p *CalibrationProfile, v int) { p.DCThreshold = v }},
		{CrossoverBarrett, GenerateBarrettCandidates(quick), def.DivMU, setupBarrett(2),
			func(p *CalibrationProfile, v int) { p.BarrettThreshold = v }},
		{CrossoverBarrettBalance, GenerateBarrettBalanceCandidates(quick), def.DivMUPI, setupBarrett(8),
			func(p *CalibrationProfile, v int) { p.BarrettBalanceThreshold = v }},
		{CrossoverInvNewton, GenerateInvNewtonCandidates(quick), def.InvNewton, setupInvNewton,
			func(p *CalibrationProfile, v int) { p.InvNewtonThreshold = v }},
		{CrossoverKaratsuba, GenerateKaratsubaCandidates(quick), def.Karatsuba, setupKaratsuba,
			func(p *CalibrationProfile, v int) { p.KaratsubaThreshold = v }},
	}
}

// Run measures every crossover and returns a profile holding the results.
// The profile is not saved.
func Run(ctx context.Context, opts Options) (Result, error) {
	opts = opts.withDefaults()
	start := time.Now()
	all := searches(opts.Quick)

	load := sysmon.Sample()
	if load.CPUPercent > busyCPUPercent {
		opts.Logger.Info("host is busy, timings may be noisy", logging.Float64("cpu_percent", load.CPUPercent))
	}

	total := 0
	for _, s := range all {
		total += len(s.sizes)
	}
	var (
		mu   sync.Mutex
		done int
	)
	step := func(label string) {
		mu.Lock()
		defer mu.Unlock()
		done++
		if opts.OnStep != nil {
			opts.OnStep(done, total, label)
		}
	}

	results := make([][]Measurement, len(all))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, s := range all {
		g.Go(func() error {
			r := rand.New(rand.NewSource(opts.Seed + int64(i)))
			for _, words := range s.sizes {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := s.setup(r, words)
				m := Measurement{
					Crossover: s.name,
					Words:     words,
					Baseline:  timeOp(p.baseline, opts.Repetitions, opts.MinDuration),
					Candidate: timeOp(p.candidate, opts.Repetitions, opts.MinDuration),
				}
				results[i] = append(results[i], m)
				step(s.name)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	profile := NewProfile()
	profile.HostCPUPercent = load.CPUPercent
	res := Result{Profile: profile, Measurements: make(map[string][]Measurement, len(all))}
	for i, s := range all {
		v := pickCrossover(results[i], s.fallback)
		s.store(profile, v)
		res.Measurements[s.name] = results[i]
		opts.Logger.Info("crossover measured", logging.String("crossover", s.name), logging.Int("words", v))
	}
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	return res, nil
}

// timeOp returns the fastest per-operation time of fn over reps samples,
// each repeating fn for at least minDur.
func timeOp(fn func(), reps int, minDur time.Duration) time.Duration {
	best := time.Duration(1<<63 - 1)
	for range reps {
		iters := 0
		start := time.Now()
		var elapsed time.Duration
		for elapsed < minDur {
			fn()
			iters++
			elapsed = time.Since(start)
		}
		best = min(best, elapsed/time.Duration(iters))
	}
	return best
}

// randomNormalized returns a words-word value with the top bit set.
func randomNormalized(r *rand.Rand, words int) nat.Nat {
	ws := make([]nat.Word, words)
	for i := range ws {
		ws[i] = nat.Word(r.Uint64())
	}
	ws[words-1] |= 1 << (nat.W - 1)
	return nat.FromWords(ws)
}

// setupDC compares schoolbook with divide-and-conquer recursing down to
// half-size blocks on a 2n by n division.
func setupDC(r *rand.Rand, words int) pair {
	n, d := randomNormalized(r, 2*words), randomNormalized(r, words)
	school := nat.Thresholds{Algorithm: nat.AlgSchoolbook}
	dc := nat.Thresholds{DivDCThreshold: words / 2, Algorithm: nat.AlgDC}
	return pair{
		baseline:  func() { school.DivMod(n, d) },
		candidate: func() { dc.DivMod(n, d) },
	}
}

// setupBarrett compares divide-and-conquer with Barrett division of a
// ratio·n by n division.
func setupBarrett(ratio int) func(r *rand.Rand, words int) pair {
	return func(r *rand.Rand, words int) pair {
		n, d := randomNormalized(r, ratio*words), randomNormalized(r, words)
		dc, barrett := nat.DefaultThresholds(), nat.DefaultThresholds()
		dc.Algorithm, barrett.Algorithm = nat.AlgDC, nat.AlgBarrett
		return pair{
			baseline:  func() { dc.DivMod(n, d) },
			candidate: func() { barrett.DivMod(n, d) },
		}
	}
}

// setupInvNewton compares the exact inverse with Newton doubling from a
// half-size exact inverse.
func setupInvNewton(r *rand.Rand, words int) pair {
	d := randomNormalized(r, words)
	is := make([]nat.Word, words)
	scratch := make([]nat.Word, nat.InvertScratchLen(words))
	newton := nat.Thresholds{InvNewton: words / 2}
	return pair{
		baseline:  func() { nat.InvertBasecase(is, d, scratch) },
		candidate: func() { newton.InvertNewton(is, d, scratch) },
	}
}

// setupKaratsuba compares schoolbook with Karatsuba splitting on an n by n
// product.
func setupKaratsuba(r *rand.Rand, words int) pair {
	x, y := randomNormalized(r, words), randomNormalized(r, words)
	z := make([]nat.Word, 2*words)
	school := nat.Thresholds{Karatsuba: 2 * words}
	kara := nat.Thresholds{Karatsuba: words / 2}
	return pair{
		baseline:  func() { school.MulTo(z, x, y) },
		candidate: func() { kara.MulTo(z, x, y) },
	}
}
