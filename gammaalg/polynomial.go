package gammaalg

import "dirac-calc/algebra"

// Polynomial is a gamma-ring element: a polynomial of Dirac matrices and
// Lorentz-invariant symbols with complex coefficients. Unlike the
// Lorentz-invariant polynomials it has no canonical form of its own; products
// of non-commuting matrices are kept as written until reduction.
type Polynomial[S algebra.Scalar[S]] struct {
	algebra.Polynomial[algebra.Complex[S], Tensor]
}

// Term is a single summand of a gamma polynomial.
type Term[S algebra.Scalar[S]] = algebra.Term[algebra.Complex[S], Tensor]

// FromTensor promotes a basis element to a polynomial.
func FromTensor[S algebra.Scalar[S]](t Tensor) Polynomial[S] {
	var p Polynomial[S]
	p.Terms = append(p.Terms, Term[S]{
		Coeff:   algebra.One[S](),
		Factors: []Tensor{t},
	})
	return p
}

// FromComplex returns the constant polynomial c.
func FromComplex[S algebra.Scalar[S]](c algebra.Complex[S]) Polynomial[S] {
	var p Polynomial[S]
	p.Terms = append(p.Terms, Term[S]{Coeff: c})
	return p
}

func (p Polynomial[S]) Add(q Polynomial[S]) Polynomial[S] {
	return Polynomial[S]{Polynomial: algebra.Sum(p.Polynomial, q.Polynomial)}
}

func (p Polynomial[S]) Sub(q Polynomial[S]) Polynomial[S] {
	return Polynomial[S]{Polynomial: algebra.Diff(p.Polynomial, q.Polynomial)}
}

func (p Polynomial[S]) Mul(q Polynomial[S]) Polynomial[S] {
	return Polynomial[S]{Polynomial: algebra.Prod(p.Polynomial, q.Polynomial)}
}

func (p Polynomial[S]) Neg() Polynomial[S] {
	return Polynomial[S]{Polynomial: algebra.Negate(p.Polynomial)}
}

// Scale multiplies every coefficient by c on the left.
func (p Polynomial[S]) Scale(c algebra.Complex[S]) Polynomial[S] {
	return Polynomial[S]{Polynomial: algebra.ScaleLeft(c, p.Polynomial)}
}

// ScaleRight multiplies every coefficient by c on the right.
func (p Polynomial[S]) ScaleRight(c algebra.Complex[S]) Polynomial[S] {
	return Polynomial[S]{Polynomial: algebra.ScaleRight(p.Polynomial, c)}
}
