package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/nat"
)

// DivisionResult is the outcome of one division algorithm.
type DivisionResult struct {
	// Algorithm is the algorithm that was forced for this run.
	Algorithm nat.DivAlgorithm
	// Quotient and Remainder are nil when Err is set.
	Quotient  nat.Nat
	Remainder nat.Nat
	Duration  time.Duration
	Err       error
	// DivisorWords is the length of the normalized divisor.
	DivisorWords int
}

// Name returns the algorithm name. Divisors of one or two words always
// take the dedicated short division paths, which are named instead.
func (r DivisionResult) Name() string {
	switch r.DivisorWords {
	case 1:
		return "single-word"
	case 2:
		return "two-word"
	}
	return r.Algorithm.String()
}

// SelectAlgorithms maps an --algo value to the algorithms to run. "all"
// selects every explicit algorithm in a fixed order.
func SelectAlgorithms(algo string) ([]nat.DivAlgorithm, error) {
	if algo == "all" {
		return []nat.DivAlgorithm{nat.AlgSchoolbook, nat.AlgDC, nat.AlgBarrett}, nil
	}
	alg, err := nat.ParseDivAlgorithm(algo)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	return []nat.DivAlgorithm{alg}, nil
}

// ExecuteDivisions divides n by d once per algorithm, concurrently. th
// supplies the crossovers; its Algorithm field is overridden per run. A
// kernel precondition failure is reported in the result's Err. Algorithms
// that had not started when ctx ended report ctx.Err(). A divisor of one or
// two words ignores the forced algorithm, so only the first one runs.
func ExecuteDivisions(ctx context.Context, algorithms []nat.DivAlgorithm, th nat.Thresholds, n, d nat.Nat) []DivisionResult {
	if dn := len(d.Norm()); dn > 0 && dn < 3 && len(algorithms) > 1 {
		algorithms = algorithms[:1]
	}
	g, ctx := errgroup.WithContext(ctx)
	results := make([]DivisionResult, len(algorithms))
	for i, alg := range algorithms {
		g.Go(func() error {
			results[i] = runDivision(ctx, alg, th, n, d)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func runDivision(ctx context.Context, alg nat.DivAlgorithm, th nat.Thresholds, n, d nat.Nat) (res DivisionResult) {
	res.Algorithm = alg
	res.DivisorWords = len(d.Norm())
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	th.Algorithm = alg
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()
	defer apperrors.RecoverPrecondition(&res.Err)
	res.Quotient, res.Remainder = th.DivMod(n, d)
	return res
}

// AnalyzeDivisionResults orders results fastest first with failures last,
// presents them and checks that every successful algorithm agrees. It
// returns the fastest successful result, or an error: the first failure
// when none succeeded, or a MismatchError.
func AnalyzeDivisionResults(results []DivisionResult, presenter ResultPresenter, verbose bool, out io.Writer) (DivisionResult, error) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})
	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}
	if len(results) == 0 || results[0].Err != nil {
		if len(results) == 0 {
			return DivisionResult{}, fmt.Errorf("no division algorithm selected")
		}
		return DivisionResult{}, results[0].Err
	}
	best := results[0]
	for _, res := range results[1:] {
		if res.Err != nil {
			continue
		}
		if res.Quotient.Cmp(best.Quotient) != 0 || res.Remainder.Cmp(best.Remainder) != 0 {
			return DivisionResult{}, apperrors.MismatchError{Algorithms: [2]string{best.Name(), res.Name()}}
		}
	}
	presenter.PresentDivision(best, verbose, out)
	return best, nil
}
