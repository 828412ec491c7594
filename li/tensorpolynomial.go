package li

import (
	"fmt"

	"dirac-calc/algebra"
	"dirac-calc/measure"
)

// TensorPolynomial is a polynomial over the Lorentz-invariant basis with
// complex coefficients. Every operation that introduces new terms runs the
// canonicalization pipeline: zero filtering, epsilon-power expansion, index
// contraction and term merging.
type TensorPolynomial[S algebra.Scalar[S]] struct {
	algebra.Polynomial[algebra.Complex[S], Tensor]
}

// Term is a single summand of a TensorPolynomial.
type Term[S algebra.Scalar[S]] = algebra.Term[algebra.Complex[S], Tensor]

// Zero returns the empty polynomial.
func Zero[S algebra.Scalar[S]]() TensorPolynomial[S] {
	return TensorPolynomial[S]{}
}

// FromComplex returns the constant polynomial c; the zero constant has no
// terms.
func FromComplex[S algebra.Scalar[S]](c algebra.Complex[S]) TensorPolynomial[S] {
	var p TensorPolynomial[S]
	if !c.IsZero() {
		p.Terms = append(p.Terms, Term[S]{Coeff: c})
	}
	return p
}

// FromTensor returns the polynomial with the single term 1*t.
func FromTensor[S algebra.Scalar[S]](t Tensor) TensorPolynomial[S] {
	var p TensorPolynomial[S]
	p.Terms = append(p.Terms, Term[S]{
		Coeff:   algebra.One[S](),
		Factors: []Tensor{t},
	})
	return p
}

// EtaPoly returns the metric (or Kronecker delta, for mixed positions)
// contracting mu with nu, as a polynomial.
func EtaPoly[S algebra.Scalar[S]](mu, nu algebra.Index) TensorPolynomial[S] {
	return FromTensor[S](MetricTensor(mu, nu))
}

// EpsilonPoly returns the Levi-Civita symbol as a polynomial.
func EpsilonPoly[S algebra.Scalar[S]](kappa, lambda, mu, nu algebra.Index) TensorPolynomial[S] {
	return FromTensor[S](EpsilonTensor(kappa, lambda, mu, nu))
}

// IsZero reports whether the polynomial has no non-zero term.
func (p TensorPolynomial[S]) IsZero() bool {
	for _, t := range p.Terms {
		if !t.Coeff.IsZero() {
			return false
		}
	}
	return true
}

// Add returns p + q in canonical form.
func (p TensorPolynomial[S]) Add(q TensorPolynomial[S]) (TensorPolynomial[S], error) {
	res := TensorPolynomial[S]{Polynomial: algebra.Sum(p.Polynomial, q.Polynomial)}
	if err := res.Canonicalize(); err != nil {
		return TensorPolynomial[S]{}, err
	}
	return res, nil
}

// Sub returns p - q in canonical form.
func (p TensorPolynomial[S]) Sub(q TensorPolynomial[S]) (TensorPolynomial[S], error) {
	res := TensorPolynomial[S]{Polynomial: algebra.Diff(p.Polynomial, q.Polynomial)}
	if err := res.Canonicalize(); err != nil {
		return TensorPolynomial[S]{}, err
	}
	return res, nil
}

// Mul returns p * q in canonical form.
func (p TensorPolynomial[S]) Mul(q TensorPolynomial[S]) (TensorPolynomial[S], error) {
	res := TensorPolynomial[S]{Polynomial: algebra.Prod(p.Polynomial, q.Polynomial)}
	if err := res.Canonicalize(); err != nil {
		return TensorPolynomial[S]{}, err
	}
	return res, nil
}

// Neg returns -p. Negation cannot create new structure, so the result is not
// recanonicalized.
func (p TensorPolynomial[S]) Neg() TensorPolynomial[S] {
	return TensorPolynomial[S]{Polynomial: algebra.Negate(p.Polynomial)}
}

// Scale multiplies every coefficient by c.
func (p TensorPolynomial[S]) Scale(c algebra.Complex[S]) TensorPolynomial[S] {
	return TensorPolynomial[S]{Polynomial: algebra.ScaleLeft(c, p.Polynomial)}
}

// MulTensor appends t as a factor to every term.
func (p TensorPolynomial[S]) MulTensor(t Tensor) TensorPolynomial[S] {
	res := TensorPolynomial[S]{}
	res.Terms = make([]Term[S], len(p.Terms))
	for i, term := range p.Terms {
		factors := make([]Tensor, 0, len(term.Factors)+1)
		factors = append(factors, term.Factors...)
		factors = append(factors, t)
		res.Terms[i] = Term[S]{Coeff: term.Coeff, Factors: factors}
	}
	return res
}

// Canonicalize runs the pipeline in place: drop zero terms, expand squares of
// the Levi-Civita symbol, contract dual index pairs, merge equivalent terms.
func (p *TensorPolynomial[S]) Canonicalize() error {
	measure.Global.Add("li.canonicalize", 1)

	kept := p.Terms[:0]
	for _, t := range p.Terms {
		if !t.Coeff.IsZero() {
			kept = append(kept, t)
		}
	}
	p.Terms = kept

	if err := p.expandEpsilonPowers(); err != nil {
		return err
	}
	if err := p.contractIndices(); err != nil {
		return err
	}
	p.MergeTerms(TryMerge[S])
	return nil
}

// expandEpsilonPowers rewrites every pair of Levi-Civita factors in a term as
// a signed sum over the 24 permutations of metric products, leaving each term
// at most linear in epsilon.
func (p *TensorPolynomial[S]) expandEpsilonPowers() error {
	var out []Term[S]
	for _, term := range p.Terms {
		expanded, err := expandTermEpsilons(term)
		if err != nil {
			return err
		}
		out = append(out, expanded...)
	}
	p.Terms = out
	return nil
}

func expandTermEpsilons[S algebra.Scalar[S]](term Term[S]) ([]Term[S], error) {
	// Pieces of the term distributed so far: starts as the bare coefficient.
	parts := []Term[S]{{Coeff: term.Coeff}}
	var epsCache *Tensor

	appendFactor := func(t Tensor) {
		for i := range parts {
			parts[i].Factors = append(parts[i].Factors[:len(parts[i].Factors):len(parts[i].Factors)], t)
		}
	}

	for _, factor := range term.Factors {
		switch factor.ID() {
		case Eta, Delta:
			appendFactor(factor)
		case Epsilon:
			if epsCache == nil {
				f := factor
				epsCache = &f
				continue
			}
			cached := *epsCache
			if !factor.Complete() || !cached.Complete() {
				return nil, fmt.Errorf("li: Levi-Civita symbol must have four indices: %w",
					algebra.ErrMalformedTensor)
			}
			measure.Global.Add("li.eps_expansions", 1)

			cachedIdx := cached.Indices()
			factorIdx := factor.Indices()
			var expansion []Term[S]
			algebra.ForPermutations(4, func(perm algebra.Permutation) {
				coeff := algebra.One[S]()
				if perm.IsEven {
					coeff = coeff.Neg()
				}
				t := Term[S]{Coeff: coeff}
				for i := 0; i < 4; i++ {
					t.Factors = append(t.Factors,
						MetricTensor(cachedIdx[i], factorIdx[perm.Map[i]]))
				}
				expansion = append(expansion, t)
			})

			distributed := make([]Term[S], 0, len(parts)*len(expansion))
			for _, part := range parts {
				for _, exp := range expansion {
					distributed = append(distributed, algebra.MulTerm(part, exp))
				}
			}
			parts = distributed
			epsCache = nil
		default:
			return nil, fmt.Errorf("li: %s: %w", factor.ID(), algebra.ErrUnknownBasisID)
		}
	}

	if epsCache != nil {
		appendFactor(*epsCache)
	}
	return parts, nil
}

// contractIndices contracts every dual index pair of every term; terms that
// contract to zero are dropped.
func (p *TensorPolynomial[S]) contractIndices() error {
	out := p.Terms[:0]
	for _, term := range p.Terms {
		res, keep, err := ContractTerm(term)
		if err != nil {
			return err
		}
		if keep {
			out = append(out, res)
		}
	}
	p.Terms = out
	return nil
}

// ContractTerm contracts dual index pairs inside a single term. The second
// return value is false when the term vanishes: a zero coefficient, or a
// Levi-Civita factor left with equal or dual indices.
func ContractTerm[S algebra.Scalar[S]](src Term[S]) (Term[S], bool, error) {
	if src.Coeff.IsZero() {
		return Term[S]{}, false, nil
	}
	if len(src.Factors) == 0 {
		return src, true, nil
	}

	res := Term[S]{Coeff: src.Coeff}

	var metrics, epsilons []Tensor
	for _, factor := range src.Factors {
		switch factor.ID() {
		case Epsilon:
			if len(factor.Indices()) != 4 {
				return Term[S]{}, false, fmt.Errorf(
					"li: Levi-Civita symbol must have four indices: %w",
					algebra.ErrMalformedTensor)
			}
			epsilons = append(epsilons, factor.Clone())
		case Eta, Delta:
			if len(factor.Indices()) != 2 {
				return Term[S]{}, false, fmt.Errorf(
					"li: metric must have two indices: %w",
					algebra.ErrMalformedTensor)
			}
			metrics = append(metrics, factor.Clone())
		default:
			return Term[S]{}, false, fmt.Errorf("li: %s: %w",
				factor.ID(), algebra.ErrUnknownBasisID)
		}
	}

	for len(metrics) > 0 {
		first := metrics[0]
		metrics = metrics[1:]

		i1 := first.Indices()[0]
		i2 := first.Indices()[1]

		// Trace: a metric contracted with itself.
		if i1.Dual(i2) {
			res.Coeff = res.Coeff.Mul(algebra.FromInt[S](4))
			continue
		}

		merged := false

		// Contract with another metric factor.
		for m := range metrics {
			if merged {
				break
			}
			idx := metrics[m].Indices()
			repl := make([]algebra.Index, 0, len(idx))
			for _, i := range idx {
				switch {
				case i.Dual(i1) && !merged:
					repl = append(repl, i2)
					merged = true
				case i.Dual(i2) && !merged:
					repl = append(repl, i1)
					merged = true
				default:
					repl = append(repl, i)
				}
			}
			if !merged {
				continue
			}
			hasUpper, hasLower := false, false
			for _, i := range repl {
				if i.Upper {
					hasUpper = true
				} else {
					hasLower = true
				}
			}
			id := Eta
			if hasUpper && hasLower {
				id = Delta
			}
			t, err := NewTensor(id, repl...)
			if err != nil {
				return Term[S]{}, false, err
			}
			metrics[m] = t
		}

		// Contract into a Levi-Civita factor.
		for e := range epsilons {
			if merged {
				break
			}
			idx := epsilons[e].Indices()
			for i := range idx {
				switch {
				case idx[i].Dual(i1) && !merged:
					epsilons[e].ReplaceIndex(i, i2)
					merged = true
				case idx[i].Dual(i2) && !merged:
					epsilons[e].ReplaceIndex(i, i1)
					merged = true
				}
			}
		}

		if !merged {
			res.Factors = append(res.Factors, first)
		}
	}

	for _, eps := range epsilons {
		idx := eps.Indices()
		for i := 0; i < len(idx); i++ {
			for j := i + 1; j < len(idx); j++ {
				if idx[i].Dual(idx[j]) || idx[i] == idx[j] {
					return Term[S]{}, false, nil
				}
			}
		}
		res.Factors = append(res.Factors, eps)
	}

	return res, true, nil
}

// Merger decides whether two terms combine into one.
type Merger[S algebra.Scalar[S]] func(t1, t2 Term[S]) (Term[S], bool)

// TryMerge combines two terms whose factor sequences are equal up to a
// position permutation. Matching permutations of Levi-Civita indices
// contribute their parity: an odd overall parity subtracts the coefficients
// instead of adding them.
func TryMerge[S algebra.Scalar[S]](t1, t2 Term[S]) (Term[S], bool) {
	if len(t1.Factors) != len(t2.Factors) {
		return Term[S]{}, false
	}
	measure.Global.Add("li.merge_attempts", 1)

	even := true
	unmatched := make([]int, 0, len(t2.Factors))
	for i := range t2.Factors {
		unmatched = append(unmatched, i)
	}

	for i := range t1.Factors {
		matched := -1
		for pos, j := range unmatched {
			perm, ok := t1.Factors[i].MappingTo(t2.Factors[j])
			if !ok {
				continue
			}
			matched = pos
			if t1.Factors[i].ID() == Epsilon {
				even = even == perm.IsEven
			}
			break
		}
		if matched < 0 {
			return Term[S]{}, false
		}
		unmatched = append(unmatched[:matched], unmatched[matched+1:]...)
	}

	res := Term[S]{Coeff: t1.Coeff, Factors: t1.Factors}
	if even {
		res.Coeff = res.Coeff.Add(t2.Coeff)
	} else {
		res.Coeff = res.Coeff.Sub(t2.Coeff)
	}
	return res, true
}

// MergeTerms folds the term list pairwise with the merger; every successful
// merge strictly reduces the term count.
func (p *TensorPolynomial[S]) MergeTerms(merger Merger[S]) {
	var out []Term[S]
	rest := p.Terms
	for len(rest) > 0 {
		first := rest[0]
		rest = rest[1:]

		var keep []Term[S]
		for _, other := range rest {
			if merged, ok := merger(first, other); ok {
				first = merged
			} else {
				keep = append(keep, other)
			}
		}
		out = append(out, first)
		rest = keep
	}
	p.Terms = out
}
