package symbolic

import (
	"fmt"
	"strconv"

	"dirac-calc/algebra"
)

// Mode fixes the coefficient ring of an evaluation: how number tokens are
// scanned and parsed.
type Mode[S algebra.Scalar[S]] struct {
	// AllowDot admits a decimal point inside number tokens.
	AllowDot bool
	// Parse converts a scanned number token to a scalar.
	Parse func(string) (S, error)
}

// RationalMode scans plain digit runs into exact rationals.
func RationalMode() Mode[algebra.Rational] {
	return Mode[algebra.Rational]{
		Parse: func(s string) (algebra.Rational, error) {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return algebra.Rational{}, fmt.Errorf("symbolic: %q: %v: %w",
					s, err, ErrTokenize)
			}
			return algebra.RatInt(n), nil
		},
	}
}

// FloatMode scans digit runs with an optional decimal point into doubles.
func FloatMode() Mode[algebra.Float] {
	return Mode[algebra.Float]{
		AllowDot: true,
		Parse: func(s string) (algebra.Float, error) {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, fmt.Errorf("symbolic: %q: %v: %w", s, err, ErrTokenize)
			}
			return algebra.Float(f), nil
		},
	}
}
