// SPDX-License-Identifier: MIT
package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/prefixcalc"
)

type (
	// Mismatch records a program the two evaluators disagreed on.
	Mismatch struct {
		Program string
		Panic   int64
		Result  int64
	}
)

// Crosscheck errors.
var (
	ErrMismatch = errors.New("evaluator disagreement")
)

const (
	// maxGenDepth bounds generated nesting; recursion depth is otherwise
	// unguarded in the evaluators.
	maxGenDepth = 4

	// corruptEvery selects the fraction of generated programs mutated into
	// invalid ones, so agreement covers the abort paths too.
	corruptEvery = 4
)

// genOperators excludes '/': a generated zero divisor would fault both
// evaluators identically & abort the whole run.
var genOperators = []byte{'+', '-', '*'}

// Generate produces a deterministic corpus of n programs for the seed, a
// corruptEvery fraction of which violate the grammar.
func Generate(seed int64, n int) []string {
	rng := rand.New(rand.NewSource(seed))

	programs := make([]string, 0, n)
	for index := 0; index < n; index++ {
		var b strings.Builder
		genExpression(rng, &b, 0)

		program := b.String()
		if index%corruptEvery == corruptEvery-1 {
			program = corrupt(rng, program)
		}

		programs = append(programs, program)
	}

	return programs
}

// genExpression appends one random expression to b.
func genExpression(rng *rand.Rand, b *strings.Builder, depth int) {
	if depth >= maxGenDepth || rng.Intn(3) == 0 {
		fmt.Fprintf(b, "%d", rng.Intn(1000))
		return
	}

	parenthesized := rng.Intn(2) == 0
	if parenthesized {
		b.WriteByte('(')
	}

	b.WriteByte(genOperators[rng.Intn(len(genOperators))])
	b.WriteByte(' ')
	genExpression(rng, b, depth+1)
	b.WriteByte(' ')
	genExpression(rng, b, depth+1)

	if parenthesized {
		b.WriteByte(')')
	}
}

// corrupt mutates a valid program into one violating the grammar.
func corrupt(rng *rand.Rand, program string) string {
	switch rng.Intn(3) {
	case 0:
		// Truncate mid-program.
		return program[:rng.Intn(len(program))]
	case 1:
		// Unknown leading operator.
		return "$ " + program
	default:
		// Unknown character somewhere inside.
		at := rng.Intn(len(program))
		return program[:at] + "$" + program[at:]
	}
}

// Crosscheck evaluates every program with both evaluators on a worker pool &
// collects any disagreement.
//
// A non-nil error wraps ErrMismatch when the evaluators diverged.
func Crosscheck(cfg *Config, programs []string, workers int) (mismatches []Mismatch, err error) {
	cfg.Validate()

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("crosscheck pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup

		panicEval  = prefixcalc.NewPanic()
		resultEval = prefixcalc.NewResult()
	)

	var submitErr error
	for _, program := range programs {
		program := program

		wg.Add(1)
		if submitErr = pool.Submit(func() {
			defer wg.Done()

			got, want := panicEval.Execute(program), resultEval.Execute(program)
			if got == want {
				return
			}

			mu.Lock()
			mismatches = append(mismatches, Mismatch{Program: program, Panic: got, Result: want})
			mu.Unlock()
		}); submitErr != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()

	if submitErr != nil {
		return nil, fmt.Errorf("crosscheck submit: %w", submitErr)
	}

	if len(mismatches) > 0 {
		slices.SortFunc(mismatches, func(a, b Mismatch) int {
			return strings.Compare(a.Program, b.Program)
		})
		cfg.Logger.Debugf("mismatched programs: %s", spew.Sdump(mismatches))

		err = fmt.Errorf("%w: %d of %d programs", ErrMismatch, len(mismatches), len(programs))
	}

	return
}
