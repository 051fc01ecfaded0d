// SPDX-License-Identifier: MIT

// Package prefixcalc evaluates single-line prefix S-expression arithmetic
// programs, e.g. "+ (+ 2 (* 4 5)) 3".
//
// The package ships two interchangeable evaluators that share one grammar and
// one cursor but propagate grammar violations differently: [PanicParser]
// unwinds to the execution boundary via panic/recover, [ResultParser] threads
// an explicit tagged result through every call site. Their consumed input,
// results & abort positions are identical on all inputs; only the propagation
// mechanism differs.
//
// A failed parse collapses to 0 at the boundary, indistinguishable from a
// legitimately computed 0. A successful parse of a prefix of the program
// ignores any trailing input. Division by zero is not guarded; it panics with
// Go's native integer-division runtime error in both variants. These are
// preserved quirks of the reference behavior, not defects to harden away.
package prefixcalc

import "github.com/sirupsen/logrus"

type (
	// Parser is the execution boundary: it maps a one-line program to its
	// value, or to 0 on any grammar violation.
	Parser interface {
		Execute(program string) int64
	}

	// Op identifies an arithmetic operation.
	Op int

	// ErrorKind classifies a grammar violation.
	//
	// Kinds carry no payload, position or message; the classification is
	// the entire error-reporting surface.
	ErrorKind int
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_     Op = iota // Consume 0 to start actual numbering at 1.
	OpAdd           // '+'
	OpSub           // '-'
	OpMul           // '*'
	OpDiv           // '/'
)

const (
	_                    ErrorKind = iota // Consume 0 to start actual numbering at 1.
	InvalidOperator                       // Unrecognized operator character.
	InvalidCharacter                      // Expected delimiter, found something else.
	UnexpectedEndOfInput                  // Consumed past the end of the program.
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "invalid operation"
	}
}

func (k ErrorKind) String() string {
	switch k {
	case InvalidOperator:
		return "invalid operator"
	case InvalidCharacter:
		return "invalid character"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	default:
		return "unknown error kind"
	}
}
