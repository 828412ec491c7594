package gammaalg

import (
	"fmt"

	"dirac-calc/algebra"
	"dirac-calc/li"
)

// CanonicalExpr is the unique linear combination over the Dirac basis
// {1, gamma, sigma, gamma5*gamma, gamma5} with Lorentz-invariant polynomial
// coefficients. The free index of the gamma component, the ordered index pair
// of the sigma component and the free index of the gamma5*gamma component are
// fixed once at construction; the reducer expresses all bound chain indices
// in terms of them.
type CanonicalExpr[S algebra.Scalar[S]] struct {
	Coeffs [5]li.TensorPolynomial[S]

	VectorIndex       algebra.Index
	TensorIndices     [2]algebra.Index
	PseudoVectorIndex algebra.Index
}

// NewCanonicalExpr returns a zero expression with the standard free indices.
func NewCanonicalExpr[S algebra.Scalar[S]]() CanonicalExpr[S] {
	return CanonicalExpr[S]{
		VectorIndex:       algebra.TagIndex(0, 0, true),
		TensorIndices:     [2]algebra.Index{algebra.TagIndex(0, 1, true), algebra.TagIndex(0, 2, true)},
		PseudoVectorIndex: algebra.TagIndex(0, 0, true),
	}
}

// IsZero reports whether every coefficient vanishes.
func (e *CanonicalExpr[S]) IsZero() bool {
	for i := range e.Coeffs {
		if !e.Coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// IsScalar reports whether the expression equals s times the unit matrix.
func (e *CanonicalExpr[S]) IsScalar(s S) bool {
	for i := 1; i < 5; i++ {
		if !e.Coeffs[i].IsZero() {
			return false
		}
	}
	return len(e.Coeffs[0].Terms) == 1 &&
		len(e.Coeffs[0].Terms[0].Factors) == 0 &&
		e.Coeffs[0].Terms[0].Coeff.Equal(algebra.Real(s))
}

// ApplySymmetry merges the terms of the sigma coefficient using the
// antisymmetry of sigma: a term also matches the copy of another term
// obtained by swapping the two free sigma indices and negating.
func (e *CanonicalExpr[S]) ApplySymmetry() {
	i1 := e.TensorIndices[0].Flip()
	i2 := e.TensorIndices[1].Flip()

	e.Coeffs[2].MergeTerms(func(t1, t2 li.Term[S]) (li.Term[S], bool) {
		swapped := li.Term[S]{Coeff: t2.Coeff.Neg()}
		swapped.Factors = make([]li.Tensor, len(t2.Factors))
		for f, factor := range t2.Factors {
			c := factor.Clone()
			idx := c.Indices()
			for i := range idx {
				switch idx[i] {
				case i1:
					c.ReplaceIndex(i, i2)
				case i2:
					c.ReplaceIndex(i, i1)
				}
			}
			swapped.Factors[f] = c
		}
		return li.TryMerge(t1, swapped)
	})
}

// Reduce folds a gamma polynomial to canonical form by expanding products of
// Dirac matrices through the structure matrices.
func Reduce[S algebra.Scalar[S]](p Polynomial[S]) (CanonicalExpr[S], error) {
	expr := NewCanonicalExpr[S]()

	for _, term := range p.Terms {
		coeff := li.FromComplex[S](term.Coeff)

		// Split the term into an invariant coefficient and the chain of
		// structure matrices, minting a fresh generation tag per matrix.
		gammaCount := 0
		var factors []Matrix[S]
		for _, factor := range term.Factors {
			if (li.Basis{}).Allows(factor.ID()) {
				t, err := li.NewTensor(factor.ID(), factor.Indices()...)
				if err != nil {
					return CanonicalExpr[S]{}, err
				}
				coeff = coeff.MulTensor(t)
				continue
			}

			if !factor.Complete() {
				return CanonicalExpr[S]{}, fmt.Errorf(
					"gammaalg: not enough indices for %s: %w",
					factor.ID(), algebra.ErrMalformedTensor)
			}

			next := gammaCount + 1
			idx := factor.Indices()
			switch factor.ID() {
			case Gamma:
				factors = append(factors, GammaMatrix[S](idx[0], gammaCount, next))
			case Sigma:
				m, err := SigmaMatrix[S](idx[0], idx[1], gammaCount, next)
				if err != nil {
					return CanonicalExpr[S]{}, err
				}
				factors = append(factors, m)
			case Gamma5:
				factors = append(factors, Gamma5Matrix[S](gammaCount, next))
			default:
				return CanonicalExpr[S]{}, fmt.Errorf("gammaalg: %s: %w",
					factor.ID(), algebra.ErrUnknownBasisID)
			}
			gammaCount = next
		}

		if len(factors) == 0 {
			sum, err := expr.Coeffs[0].Add(coeff)
			if err != nil {
				return CanonicalExpr[S]{}, err
			}
			expr.Coeffs[0] = sum
			continue
		}

		// Multiply the chain right to left starting from the first column of
		// the rightmost matrix.
		termRepr := factors[len(factors)-1].Col(0)
		for i := len(factors) - 2; i >= 0; i-- {
			v, err := factors[i].MulVec(termRepr)
			if err != nil {
				return CanonicalExpr[S]{}, err
			}
			termRepr = v
		}

		scaled, err := ScaleVec(coeff, termRepr)
		if err != nil {
			return CanonicalExpr[S]{}, err
		}
		for i := 0; i < 5; i++ {
			sum, err := expr.Coeffs[i].Add(scaled[i])
			if err != nil {
				return CanonicalExpr[S]{}, err
			}
			expr.Coeffs[i] = sum
		}
	}

	return expr, nil
}
