// SPDX-License-Identifier: MIT
package prefixcalc

import "gitlab.com/fisherprime/prefixcalc/scan"

type (
	// PanicParser evaluates programs with unwinding-based error propagation:
	// a grammar violation at any depth panics straight to the Execute
	// boundary, skipping every pending frame.
	PanicParser struct{}

	// parseFault carries an ErrorKind through the unwind. It is the only
	// panic value Execute intercepts.
	parseFault struct {
		kind ErrorKind
	}

	// panicCalc holds the per-call parse state; nothing outlives Execute.
	panicCalc struct {
		cur scan.Cursor
	}
)

// NewPanic instantiates the unwinding-variant Parser. The returned value is
// stateless & safe for reuse across calls.
func NewPanic() Parser { return PanicParser{} }

// Execute evaluates one program, returning 0 on any grammar violation.
//
// The recover is scoped to this one call & intercepts only parse faults;
// anything else, including the runtime error for a zero divisor, is
// re-raised.
func (PanicParser) Execute(program string) (value int64) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		fault, ok := r.(parseFault)
		if !ok {
			panic(r)
		}

		fLogger.Debugf("parse aborted: %v", fault.kind)
		value = 0
	}()

	c := panicCalc{cur: scan.New(program)}

	return c.expression()
}

func (c *panicCalc) expression() int64 {
	c.cur.SkipWhitespace()

	switch b := c.cur.Peek(); {
	case b == '(':
		c.next()
		c.cur.SkipWhitespace()
		value := c.expression()
		c.cur.SkipWhitespace()
		c.expect(')')

		return value
	case scan.IsDigit(b):
		return c.number()
	default:
		return c.innerExpression()
	}
}

func (c *panicCalc) innerExpression() int64 {
	op := c.operator()
	left := c.expression()
	right := c.expression()

	switch op {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpMul:
		return left * right
	case OpDiv:
		return left / right
	default:
		panic(parseFault{kind: InvalidOperator})
	}
}

func (c *panicCalc) operator() Op {
	switch c.next() {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	default:
		panic(parseFault{kind: InvalidOperator})
	}
}

// number folds a digit run into an accumulator.
//
// An empty run yields 0 & overflow wraps; the grammar imposes no minimum
// digit count & no range check.
func (c *panicCalc) number() int64 {
	var value int64
	for scan.IsDigit(c.cur.Peek()) {
		b := c.next()
		value = value*10 + int64(b-'0')
	}

	return value
}

func (c *panicCalc) expect(want byte) {
	if b := c.next(); b != want {
		panic(parseFault{kind: InvalidCharacter})
	}
}

func (c *panicCalc) next() byte {
	b, ok := c.cur.Next()
	if !ok {
		panic(parseFault{kind: UnexpectedEndOfInput})
	}

	return b
}
