package fierz

import (
	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
	"dirac-calc/li"
)

// Coeff is the coefficient ring of Fierz expressions: Lorentz-invariant
// polynomials over exact rationals.
type Coeff = li.TensorPolynomial[algebra.Rational]

// Term is a coefficient times a product of bilinears.
type Term struct {
	Coeff   Coeff
	Factors []Bilinear
}

// Expression is a sum of multilinear spinor terms with Lorentz-invariant
// coefficients.
type Expression struct {
	Terms []Term
}

// Add returns e + other.
func (e Expression) Add(other Expression) Expression {
	var res Expression
	res.Terms = append(res.Terms, e.Terms...)
	res.Terms = append(res.Terms, other.Terms...)
	return res
}

// Sub returns e - other.
func (e Expression) Sub(other Expression) Expression {
	res := Expression{Terms: append([]Term(nil), e.Terms...)}
	for _, t := range other.Terms {
		res.Terms = append(res.Terms, Term{Coeff: t.Coeff.Neg(), Factors: t.Factors})
	}
	return res
}

// Neg returns -e.
func (e Expression) Neg() Expression {
	res := Expression{Terms: make([]Term, len(e.Terms))}
	for i, t := range e.Terms {
		res.Terms[i] = Term{Coeff: t.Coeff.Neg(), Factors: t.Factors}
	}
	return res
}

// MaxIndexTag returns the largest dummy generation used by a term's
// coefficient, so fresh tags can be minted past it.
func MaxIndexTag(term Term) int {
	max := -int(^uint(0)>>1) - 1
	for _, coeffTerm := range term.Coeff.Terms {
		for _, factor := range coeffTerm.Factors {
			for _, idx := range factor.Indices() {
				if idx.ID.IsTag() && idx.ID.Tag().Gen > max {
					max = idx.ID.Tag().Gen
				}
			}
		}
	}
	return max
}

// fierzWeight is the basis-completeness weight of bilinear i in the
// rearrangement: -1/4 for scalar, vector and the pseudoscalars, -1/8 for the
// tensor, +1/4 for the pseudovector.
func fierzWeight(i int) algebra.Rational {
	m := algebra.NewRational(-1, 4)
	if i == BilTensor {
		m = algebra.NewRational(-1, 8)
	}
	if i == BilPseudoVector {
		m = m.Neg()
	}
	return m
}

// FierzTransformed rearranges the bilinears at positions pos and pos+1 of
// every term: the pair is replaced by the sum over the Dirac basis of
// weighted triplet reductions, with a fresh dummy generation joining the two
// new bilinears. Terms too short to transform are passed through.
func (e Expression) FierzTransformed(pos int) (Expression, error) {
	var res Expression
	res.Terms = make([]Term, 0, len(e.Terms))

	for _, term := range e.Terms {
		if pos+1 >= len(term.Factors) {
			res.Terms = append(res.Terms, term)
			continue
		}

		tag := MaxIndexTag(term) + 1

		for i := 0; i < 5; i++ {
			weight := algebra.Real(fierzWeight(i))

			frag, err := TaggedBilinear(i, tag, true)
			if err != nil {
				return Expression{}, err
			}
			dual, err := TaggedBilinear(i, tag, false)
			if err != nil {
				return Expression{}, err
			}

			left, err := Kernel(term.Factors[pos])
			if err != nil {
				return Expression{}, err
			}
			mid, err := Kernel(dual)
			if err != nil {
				return Expression{}, err
			}
			right, err := Kernel(term.Factors[pos+1])
			if err != nil {
				return Expression{}, err
			}

			reduced, err := gammaalg.Reduce(left.Mul(mid).Mul(right))
			if err != nil {
				return Expression{}, err
			}

			for j := 0; j < 5; j++ {
				coeff, err := term.Coeff.Scale(weight).Mul(reduced.Coeffs[j])
				if err != nil {
					return Expression{}, err
				}

				mapped := Term{Coeff: coeff}
				mapped.Factors = append(mapped.Factors, term.Factors...)
				repl, err := TaggedBilinear(j, 0, true)
				if err != nil {
					return Expression{}, err
				}
				mapped.Factors[pos] = repl
				mapped.Factors[pos+1] = frag
				res.Terms = append(res.Terms, mapped)
			}
		}
	}

	return res, nil
}
