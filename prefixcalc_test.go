// SPDX-License-Identifier: MIT
package prefixcalc

import (
	"testing"

	"gitlab.com/fisherprime/prefixcalc/scan"
)

func variants() map[string]Parser {
	return map[string]Parser{
		"panic":  NewPanic(),
		"result": NewResult(),
	}
}

func TestParser_Execute(t *testing.T) {
	tests := []struct {
		name    string
		program string
		want    int64
	}{
		{name: "single number", program: "5", want: 5},
		{name: "flat addition", program: "+ 2 3", want: 5},
		{name: "nested groups", program: "+ (+ 2 (* 4 5)) 3", want: 25},
		{name: "subtraction below zero", program: "- 2 3", want: -1},
		{name: "division truncates", program: "/ 7 2", want: 3},
		{name: "grouped number", program: "( 42 )", want: 42},
		{name: "computed zero", program: "- 2 2", want: 0},
		{name: "trailing input ignored", program: "5 junk", want: 5},
		{name: "missing operand", program: "+ 2", want: 0},
		{name: "invalid leading operator", program: "$ 1 2", want: 0},
		{name: "missing closing paren", program: "(+ 1 2", want: 0},
		{name: "wrong closing delimiter", program: "(+ 1 2]", want: 0},
		{name: "empty program", program: "", want: 0},
	}
	for variant, parser := range variants() {
		for _, tt := range tests {
			t.Run(variant+"/"+tt.name, func(t *testing.T) {
				if got := parser.Execute(tt.program); got != tt.want {
					t.Errorf("Execute() = %v, want %v", got, tt.want)
				}
			})
		}
	}
}

// panicAbort drives the unwinding variant's grammar directly, reporting the
// fault kind & the consumed prefix length at the abort.
func panicAbort(t *testing.T, program string) (kind ErrorKind, pos int) {
	t.Helper()

	c := panicCalc{cur: scan.New(program)}
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected abort for %q", program)
			}

			fault, ok := r.(parseFault)
			if !ok {
				panic(r)
			}
			kind = fault.kind
		}()

		c.expression()
	}()

	return kind, c.cur.Pos()
}

// resultAbort drives the tagged variant's grammar directly, reporting the
// fault kind & the consumed prefix length at the abort.
func resultAbort(t *testing.T, program string) (ErrorKind, int) {
	t.Helper()

	c := resultCalc{cur: scan.New(program)}
	value := c.expression()
	if !value.isErr {
		t.Fatalf("expected abort for %q", program)
	}

	return value.kind, c.cur.Pos()
}

// TestVariants_AbortAgreement pins both variants to the same failure
// classification & the same consumed prefix at the failure point.
func TestVariants_AbortAgreement(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		wantKind ErrorKind
		wantPos  int
	}{
		{name: "empty program", program: "", wantKind: UnexpectedEndOfInput, wantPos: 0},
		{name: "missing operand", program: "+ 2", wantKind: UnexpectedEndOfInput, wantPos: 3},
		{name: "invalid leading operator", program: "$ 1 2", wantKind: InvalidOperator, wantPos: 1},
		{name: "invalid nested operator", program: "+ 1 ^", wantKind: InvalidOperator, wantPos: 5},
		{name: "missing closing paren", program: "(+ 1 2", wantKind: UnexpectedEndOfInput, wantPos: 6},
		{name: "wrong closing delimiter", program: "(+ 1 2]", wantKind: InvalidCharacter, wantPos: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pKind, pPos := panicAbort(t, tt.program)
			rKind, rPos := resultAbort(t, tt.program)

			if pKind != tt.wantKind || pPos != tt.wantPos {
				t.Errorf("panic variant aborted with (%v, %d), want (%v, %d)", pKind, pPos, tt.wantKind, tt.wantPos)
			}
			if rKind != pKind || rPos != pPos {
				t.Errorf("result variant aborted with (%v, %d), panic variant with (%v, %d)", rKind, rPos, pKind, pPos)
			}
		})
	}
}

func TestParser_WhitespaceInsensitive(t *testing.T) {
	// Runs of whitespace before an expression & before a closing paren must
	// not change the value.
	programs := []string{
		"+ 2 (* 4 5)",
		"  + 2 ( * 4 5 )",
		"+\t2\t( *\t4 5\t)",
		"+ \n2 (* 4\n 5 \n)",
	}
	const want = int64(22)

	for variant, parser := range variants() {
		for _, program := range programs {
			if got := parser.Execute(program); got != want {
				t.Errorf("%s variant: Execute(%q) = %v, want %v", variant, program, got, want)
			}
		}
	}
}

func TestParser_ExecuteIdempotent(t *testing.T) {
	programs := []string{"+ (+ 2 (* 4 5)) 3", "$ 1 2", ""}

	for variant, parser := range variants() {
		for _, program := range programs {
			first := parser.Execute(program)
			if second := parser.Execute(program); second != first {
				t.Errorf("%s variant: Execute(%q) = %v, then %v", variant, program, first, second)
			}
		}
	}
}

func TestParser_DivideByZeroPanics(t *testing.T) {
	// Zero divisors are not guarded; the host runtime error propagates out
	// of both variants identically.
	for variant, parser := range variants() {
		t.Run(variant, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a runtime panic for a zero divisor")
				}
			}()

			parser.Execute("/ 7 0")
		})
	}
}

// TestNumber_EmptyDigitRun pins the grammar quirk: an empty digit sequence
// is a legal number with value 0.
func TestNumber_EmptyDigitRun(t *testing.T) {
	pc := panicCalc{cur: scan.New("")}
	if got := pc.number(); got != 0 {
		t.Errorf("panic variant: number() = %v, want 0", got)
	}

	rc := resultCalc{cur: scan.New("abc")}
	if got := rc.number(); got.isErr || got.ok != 0 {
		t.Errorf("result variant: number() = %+v, want 0", got)
	}
}

func BenchmarkPanicParser_Execute(b *testing.B) {
	benchmarkExecute(b, NewPanic())
}

func BenchmarkResultParser_Execute(b *testing.B) {
	benchmarkExecute(b, NewResult())
}

func benchmarkExecute(b *testing.B, parser Parser) {
	programs := map[string]string{
		"ok":  "+ (+ 2 (* 4 5)) 3",
		"err": "+ (+ 2 (* 4 $)) 3",
	}

	for name, program := range programs {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(program)))

			var state uint64
			for n := 0; n < b.N; n++ {
				state += uint64(parser.Execute(program))
			}
			_ = state
		})
	}
}
