// Package algebra provides the scalar rings, tensor index machinery and the
// generic polynomial core shared by the Lorentz-invariant and gamma algebras.
package algebra

import "strconv"

// Scalar is the constraint satisfied by coefficient rings. The calculator
// instantiates it with Rational (exact mode) and Float (IEEE mode).
type Scalar[S any] interface {
	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) S
	Neg() S

	// Sign reports -1, 0 or +1. Invalid values report 0.
	Sign() int
	IsZero() bool
	Equal(S) bool

	// FromInt builds a ring element from an integer constant. The receiver
	// only selects the type; its value is ignored.
	FromInt(int64) S

	// Float converts to float64 for numeric cross-checks.
	Float() float64

	// Latex renders the value, and LatexImag renders the value times the
	// imaginary unit, as LaTeX fragments.
	Latex() string
	LatexImag() string
}

// Float is the IEEE double coefficient ring.
type Float float64

func (f Float) Add(g Float) Float { return f + g }
func (f Float) Sub(g Float) Float { return f - g }
func (f Float) Mul(g Float) Float { return f * g }
func (f Float) Div(g Float) Float { return f / g }
func (f Float) Neg() Float        { return -f }

func (f Float) Sign() int {
	if f > 0 {
		return 1
	}
	if f < 0 {
		return -1
	}
	return 0
}

func (f Float) IsZero() bool        { return f == 0 }
func (f Float) Equal(g Float) bool  { return f == g }
func (Float) FromInt(n int64) Float { return Float(n) }
func (f Float) Float() float64      { return float64(f) }

func (f Float) Latex() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f Float) LatexImag() string {
	if f == 1 {
		return "I"
	}
	if f == -1 {
		return "-I"
	}
	return f.Latex() + "I"
}
