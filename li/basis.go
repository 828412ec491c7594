// Package li implements polynomials over the Lorentz-invariant tensor basis
// {eta, delta, epsilon} with automatic epsilon-power expansion, index
// contraction and term merging.
package li

import "dirac-calc/algebra"

// Basis element identifiers.
const (
	Eta     = "\\eta"
	Delta   = "\\delta"
	Epsilon = "\\epsilon"
)

// Basis is the Lorentz-invariant tensor basis.
type Basis struct{}

// Allows reports whether id names a basis element.
func (Basis) Allows(id string) bool {
	return id == Eta || id == Delta || id == Epsilon
}

// MaxIndexCount returns the index capacity of a basis element.
func (Basis) MaxIndexCount(id string) int {
	switch id {
	case Epsilon:
		return 4
	case Eta, Delta:
		return 2
	}
	return 0
}

// Tensor is a Lorentz-invariant basis tensor.
type Tensor = algebra.Tensor[string, Basis]

// NewTensor builds a basis tensor, validating id and index count.
func NewTensor(id string, indices ...algebra.Index) (Tensor, error) {
	return algebra.NewTensor[string, Basis](id, indices)
}

// MetricTensor builds the complete rank-2 tensor contracting mu with nu: the
// metric when the positions agree, the Kronecker delta when they differ.
func MetricTensor(mu, nu algebra.Index) Tensor {
	id := Eta
	if mu.Upper != nu.Upper {
		id = Delta
	}
	t, _ := NewTensor(id, mu, nu)
	return t
}

// EpsilonTensor builds the complete Levi-Civita symbol.
func EpsilonTensor(kappa, lambda, mu, nu algebra.Index) Tensor {
	t, _ := NewTensor(Epsilon, kappa, lambda, mu, nu)
	return t
}
