package fierz

import (
	"dirac-calc/algebra"
)

// IndexIDMap replaces index identifiers wholesale, keeping positions.
type IndexIDMap map[algebra.IndexID]algebra.IndexID

// Multilinear is an ordered product of bilinears.
type Multilinear []Bilinear

// renameBilinear maps the identifiers of a bilinear's indices through repl.
func renameBilinear(b Bilinear, repl IndexIDMap) (Bilinear, error) {
	mapped := make([]algebra.Index, 0, len(b.Indices()))
	for _, idx := range b.Indices() {
		if id, ok := repl[idx.ID]; ok {
			mapped = append(mapped, algebra.Index{ID: id, Upper: idx.Upper})
		} else {
			mapped = append(mapped, idx)
		}
	}
	return NewBilinear(b.ID(), mapped...)
}

// renameMultilinear maps every bilinear of a product.
func renameMultilinear(m Multilinear, repl IndexIDMap) (Multilinear, error) {
	res := make(Multilinear, 0, len(m))
	for _, b := range m {
		mapped, err := renameBilinear(b, repl)
		if err != nil {
			return nil, err
		}
		res = append(res, mapped)
	}
	return res, nil
}

// renameCoeff maps index identifiers inside a Lorentz-invariant coefficient.
func renameCoeff(src Coeff, repl IndexIDMap) Coeff {
	if len(repl) == 0 {
		return src
	}
	var res Coeff
	for _, srcTerm := range src.Terms {
		dest := srcTerm
		dest.Factors = nil
		for _, srcFac := range srcTerm.Factors {
			fac := srcFac.Clone()
			for i, idx := range fac.Indices() {
				if id, ok := repl[idx.ID]; ok {
					fac.ReplaceIndex(i, algebra.Index{ID: id, Upper: idx.Upper})
				}
			}
			dest.Factors = append(dest.Factors, fac)
		}
		res.Terms = append(res.Terms, dest)
	}
	return res
}

// contractedIndices lists the identifiers contracted between the bilinears of
// a term, or between the bilinears and its coefficient. These are the dummy
// ids that may be renamed when comparing two terms.
func contractedIndices(term Term) []algebra.IndexID {
	free := make(map[algebra.Index]struct{})
	found := make(map[algebra.IndexID]struct{})
	var res []algebra.IndexID

	record := func(id algebra.IndexID) {
		if _, seen := found[id]; !seen {
			found[id] = struct{}{}
			res = append(res, id)
		}
	}

	for _, b := range term.Factors {
		for _, idx := range b.Indices() {
			dual := idx.Flip()
			if _, ok := free[dual]; ok {
				record(idx.ID)
				delete(free, dual)
			}
			free[idx] = struct{}{}
		}
	}

	if len(term.Coeff.Terms) > 0 {
		coeffIndices := make(map[algebra.Index]struct{})
		for _, factor := range term.Coeff.Terms[0].Factors {
			for _, idx := range factor.Indices() {
				coeffIndices[idx] = struct{}{}
			}
		}
		for idx := range coeffIndices {
			if _, ok := free[idx.Flip()]; ok {
				record(idx.ID)
			}
		}
	}

	return res
}

// equivalenceFactor compares two products of bilinears as unordered
// collections, honoring the antisymmetry of the tensor bilinear: a factor
// also matches its index-swapped copy at the price of a sign. Returns the
// accumulated sign and whether the products are equivalent.
func equivalenceFactor(m1, m2 Multilinear) (algebra.Complex[algebra.Rational], bool) {
	one := algebra.One[algebra.Rational]()
	if len(m1) != len(m2) {
		return algebra.Complex[algebra.Rational]{}, false
	}

	factor := one
	rest := append(Multilinear(nil), m2...)

	for _, b1 := range m1 {
		matched := -1
		for i, b2 := range rest {
			if b2.Equal(b1) {
				matched = i
				break
			}
			if b2.ID() == b1.ID() && b1.ID() == BilTensor {
				i1, i2 := b1.Indices(), b2.Indices()
				if len(i1) == 2 && len(i2) == 2 && i1[0] == i2[1] && i1[1] == i2[0] {
					factor = factor.Neg()
					matched = i
					break
				}
			}
		}
		if matched < 0 {
			return algebra.Complex[algebra.Rational]{}, false
		}
		rest = append(rest[:matched], rest[matched+1:]...)
	}

	return factor, true
}

// tryMerge combines two terms when their bilinear products are equivalent
// modulo a renaming of contracted dummy identifiers and tensor-bilinear
// antisymmetry. The merged coefficient absorbs the equivalence sign and the
// renamed coefficient of the second term.
func tryMerge(t1, t2 Term) (Term, bool, error) {
	if len(t2.Factors) != len(t1.Factors) {
		return Term{}, false, nil
	}

	contracted1 := contractedIndices(t1)
	contracted2 := contractedIndices(t2)
	if len(contracted1) != len(contracted2) {
		return Term{}, false, nil
	}

	if len(contracted1) == 0 {
		factor, ok := equivalenceFactor(t1.Factors, t2.Factors)
		if !ok {
			return Term{}, false, nil
		}
		coeff, err := t1.Coeff.Add(t2.Coeff.Scale(factor))
		if err != nil {
			return Term{}, false, err
		}
		return Term{Coeff: coeff, Factors: t1.Factors}, true, nil
	}

	// Search dummy renamings for one that aligns the products.
	var (
		found   bool
		factor  algebra.Complex[algebra.Rational]
		mapping IndexIDMap
		permErr error
	)
	algebra.ForPermutations(len(contracted1), func(perm algebra.Permutation) {
		if found || permErr != nil {
			return
		}
		maybe := make(IndexIDMap, len(contracted2))
		for i := range contracted2 {
			maybe[contracted2[i]] = contracted1[perm.Map[i]]
		}
		mapped, err := renameMultilinear(t2.Factors, maybe)
		if err != nil {
			permErr = err
			return
		}
		if f, ok := equivalenceFactor(mapped, t1.Factors); ok {
			found = true
			factor = f
			mapping = maybe
		}
	})
	if permErr != nil {
		return Term{}, false, permErr
	}
	if !found {
		return Term{}, false, nil
	}

	coeff, err := t1.Coeff.Add(renameCoeff(t2.Coeff, mapping).Scale(factor))
	if err != nil {
		return Term{}, false, err
	}
	return Term{Coeff: coeff, Factors: t1.Factors}, true, nil
}

// CollectTerms merges the terms of an expression when symmetries allow. The
// argument must be Lorentz invariant: free indices make the merge order
// dependent.
func CollectTerms(src Expression) (Expression, error) {
	var res Expression

	rest := append([]Term(nil), src.Terms...)
	for len(rest) > 0 {
		first := rest[0]
		rest = rest[1:]

		var keep []Term
		for _, other := range rest {
			merged, ok, err := tryMerge(first, other)
			if err != nil {
				return Expression{}, err
			}
			if ok {
				first = merged
			} else {
				keep = append(keep, other)
			}
		}
		res.Terms = append(res.Terms, first)
		rest = keep
	}

	return res, nil
}
