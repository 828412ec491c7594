// Package gammaalg implements the gamma-matrix ring: polynomials of Dirac
// matrices and Lorentz-invariant symbols, the 5x5 structure matrices encoding
// left multiplication by the basis matrices, and the reduction of arbitrary
// products to the canonical five-component form.
package gammaalg

import (
	"strings"

	"dirac-calc/algebra"
	"dirac-calc/li"
)

// Dirac basis identifiers.
const (
	Gamma  = "\\gamma"
	Sigma  = "\\sigma"
	Gamma5 = "\\gamma5"
)

// Basis is the gamma ring basis: the Dirac matrices gamma, sigma and gamma5
// together with the Lorentz-invariant symbols. Any other backslash-prefixed
// literal is admitted as an index-less user symbol so that expressions may
// name it; reduction of such a symbol reports an unknown-basis error.
type Basis struct{}

func (Basis) Allows(id string) bool {
	return strings.HasPrefix(id, "\\") && len(id) > 1
}

func (Basis) MaxIndexCount(id string) int {
	if (li.Basis{}).Allows(id) {
		return (li.Basis{}).MaxIndexCount(id)
	}
	switch id {
	case Sigma:
		return 2
	case Gamma:
		return 1
	}
	return 0
}

// IsDirac reports whether id names one of the Dirac basis matrices.
func IsDirac(id string) bool {
	return id == Gamma || id == Sigma || id == Gamma5
}

// Tensor is a basis element of the gamma ring.
type Tensor = algebra.Tensor[string, Basis]

// NewTensor builds a gamma-ring tensor, validating id and index count.
func NewTensor(id string, indices ...algebra.Index) (Tensor, error) {
	return algebra.NewTensor[string, Basis](id, indices)
}
