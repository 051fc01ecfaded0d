// SPDX-License-Identifier: MIT
package prefixcalc

import "gitlab.com/fisherprime/prefixcalc/scan"

type (
	// ResultParser evaluates programs with tagged-result error propagation:
	// every parse step returns a result, every call site inspects the
	// discriminant & forwards a failure upward before any sibling work.
	ResultParser struct{}

	// result is a two-case container: a value of T or an ErrorKind,
	// selected by isErr. Only the selected case is meaningful; the other
	// holds its zero value & must not be read.
	result[T any] struct {
		ok    T
		kind  ErrorKind
		isErr bool
	}

	// resultCalc holds the per-call parse state; nothing outlives Execute.
	resultCalc struct {
		cur scan.Cursor
	}
)

func success[T any](v T) result[T] { return result[T]{ok: v} }

func failure[T any](k ErrorKind) result[T] { return result[T]{kind: k, isErr: true} }

// NewResult instantiates the tagged-variant Parser. The returned value is
// stateless & safe for reuse across calls.
func NewResult() Parser { return ResultParser{} }

// Execute evaluates one program, returning 0 on any grammar violation.
//
// There is no recover here; the runtime error for a zero divisor propagates
// to the caller, matching the unwinding variant.
func (ResultParser) Execute(program string) int64 {
	c := resultCalc{cur: scan.New(program)}

	value := c.expression()
	if value.isErr {
		fLogger.Debugf("parse aborted: %v", value.kind)
		return 0
	}

	return value.ok
}

func (c *resultCalc) expression() result[int64] {
	c.cur.SkipWhitespace()

	switch b := c.cur.Peek(); {
	case b == '(':
		// Peek confirmed '(', this next cannot fail.
		c.next()
		c.cur.SkipWhitespace()
		value := c.expression()
		if value.isErr {
			return value
		}
		c.cur.SkipWhitespace()
		if closing := c.expect(')'); closing.isErr {
			return failure[int64](closing.kind)
		}

		return value
	case scan.IsDigit(b):
		return c.number()
	default:
		return c.innerExpression()
	}
}

func (c *resultCalc) innerExpression() result[int64] {
	op := c.operator()
	if op.isErr {
		return failure[int64](op.kind)
	}

	left := c.expression()
	if left.isErr {
		return left
	}

	right := c.expression()
	if right.isErr {
		return right
	}

	switch op.ok {
	case OpAdd:
		return success(left.ok + right.ok)
	case OpSub:
		return success(left.ok - right.ok)
	case OpMul:
		return success(left.ok * right.ok)
	case OpDiv:
		return success(left.ok / right.ok)
	default:
		return failure[int64](InvalidOperator)
	}
}

func (c *resultCalc) operator() result[Op] {
	b := c.next()
	if b.isErr {
		return failure[Op](b.kind)
	}

	switch b.ok {
	case '+':
		return success(OpAdd)
	case '-':
		return success(OpSub)
	case '*':
		return success(OpMul)
	case '/':
		return success(OpDiv)
	default:
		return failure[Op](InvalidOperator)
	}
}

// number folds a digit run into an accumulator.
//
// An empty run yields 0 & overflow wraps; the grammar imposes no minimum
// digit count & no range check.
func (c *resultCalc) number() result[int64] {
	var value int64
	for scan.IsDigit(c.cur.Peek()) {
		b := c.next()
		if b.isErr {
			return failure[int64](b.kind)
		}

		value = value*10 + int64(b.ok-'0')
	}

	return success(value)
}

func (c *resultCalc) expect(want byte) result[byte] {
	b := c.next()
	if b.isErr {
		return b
	}

	if b.ok != want {
		return failure[byte](InvalidCharacter)
	}

	return b
}

func (c *resultCalc) next() result[byte] {
	b, ok := c.cur.Next()
	if !ok {
		return failure[byte](UnexpectedEndOfInput)
	}

	return success(b)
}
