package algebra

// Coeff is the constraint on polynomial coefficients.
type Coeff[C any] interface {
	Add(C) C
	Mul(C) C
	Neg() C
	IsZero() bool
}

// Term is a coefficient times an ordered product of factors.
type Term[C Coeff[C], F any] struct {
	Coeff   C
	Factors []F
}

// MulTerm concatenates factor sequences and multiplies coefficients.
func MulTerm[C Coeff[C], F any](a, b Term[C, F]) Term[C, F] {
	res := Term[C, F]{Coeff: a.Coeff.Mul(b.Coeff)}
	res.Factors = append(res.Factors, a.Factors...)
	res.Factors = append(res.Factors, b.Factors...)
	return res
}

// NegTerm negates the coefficient; factors are shared.
func NegTerm[C Coeff[C], F any](t Term[C, F]) Term[C, F] {
	return Term[C, F]{Coeff: t.Coeff.Neg(), Factors: t.Factors}
}

// Polynomial is an ordered sum of terms over an arbitrary factor type.
// The helpers below never canonicalize; concrete polynomial types wrap them
// and recanonicalize after every construction that introduces new terms.
type Polynomial[C Coeff[C], F any] struct {
	Terms []Term[C, F]
}

// Sum concatenates the term lists.
func Sum[C Coeff[C], F any](p1, p2 Polynomial[C, F]) Polynomial[C, F] {
	res := Polynomial[C, F]{}
	res.Terms = append(res.Terms, p1.Terms...)
	res.Terms = append(res.Terms, p2.Terms...)
	return res
}

// Diff concatenates p1 with the negation of p2.
func Diff[C Coeff[C], F any](p1, p2 Polynomial[C, F]) Polynomial[C, F] {
	res := Polynomial[C, F]{}
	res.Terms = append(res.Terms, p1.Terms...)
	for _, t := range p2.Terms {
		res.Terms = append(res.Terms, NegTerm(t))
	}
	return res
}

// Negate flips the sign of every term.
func Negate[C Coeff[C], F any](p Polynomial[C, F]) Polynomial[C, F] {
	res := Polynomial[C, F]{Terms: make([]Term[C, F], len(p.Terms))}
	for i, t := range p.Terms {
		res.Terms[i] = NegTerm(t)
	}
	return res
}

// Prod distributes term products pairwise.
func Prod[C Coeff[C], F any](p1, p2 Polynomial[C, F]) Polynomial[C, F] {
	res := Polynomial[C, F]{}
	if len(p1.Terms) == 0 || len(p2.Terms) == 0 {
		return res
	}
	res.Terms = make([]Term[C, F], 0, len(p1.Terms)*len(p2.Terms))
	for _, t1 := range p1.Terms {
		for _, t2 := range p2.Terms {
			res.Terms = append(res.Terms, MulTerm(t1, t2))
		}
	}
	return res
}

// ScaleLeft multiplies every coefficient by c on the left.
func ScaleLeft[C Coeff[C], F any](c C, p Polynomial[C, F]) Polynomial[C, F] {
	res := Polynomial[C, F]{Terms: make([]Term[C, F], len(p.Terms))}
	for i, t := range p.Terms {
		res.Terms[i] = Term[C, F]{Coeff: c.Mul(t.Coeff), Factors: t.Factors}
	}
	return res
}

// ScaleRight multiplies every coefficient by c on the right. Coefficients may
// be non-commutative in the most general instantiation.
func ScaleRight[C Coeff[C], F any](p Polynomial[C, F], c C) Polynomial[C, F] {
	res := Polynomial[C, F]{Terms: make([]Term[C, F], len(p.Terms))}
	for i, t := range p.Terms {
		res.Terms[i] = Term[C, F]{Coeff: t.Coeff.Mul(c), Factors: t.Factors}
	}
	return res
}
