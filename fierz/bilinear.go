// Package fierz generates Fierz identities: it represents products of Dirac
// bilinears, rearranges them with the Fierz transformation driven by the
// symbolic kernel, and prints the resulting identities as LaTeX equations.
package fierz

import (
	"fmt"

	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
)

// Bilinear basis identifiers: 0 scalar, 1 vector, 2 tensor, 3 pseudovector,
// 4 pseudoscalar.
const (
	BilScalar = iota
	BilVector
	BilTensor
	BilPseudoVector
	BilPseudoScalar
)

// BilinearBasis admits the five Dirac bilinear types with their tensor
// ranks.
type BilinearBasis struct{}

func (BilinearBasis) Allows(id int) bool { return id >= 0 && id < 5 }

func (BilinearBasis) MaxIndexCount(id int) int {
	switch id {
	case BilVector, BilPseudoVector:
		return 1
	case BilTensor:
		return 2
	}
	return 0
}

// Bilinear is a basis matrix sandwiched between spinors; the identifier
// selects the matrix type and the indices are its tensor indices.
type Bilinear = algebra.Tensor[int, BilinearBasis]

// NewBilinear builds a bilinear, validating id and index count.
func NewBilinear(id int, indices ...algebra.Index) (Bilinear, error) {
	return algebra.NewTensor[int, BilinearBasis](id, indices)
}

// TaggedBilinear builds a bilinear whose indices are dummy tags of the given
// generation.
func TaggedBilinear(id, tag int, upper bool) (Bilinear, error) {
	switch id {
	case BilScalar, BilPseudoScalar:
		return NewBilinear(id)
	case BilVector, BilPseudoVector:
		return NewBilinear(id, algebra.TagIndex(tag, 0, upper))
	case BilTensor:
		return NewBilinear(id,
			algebra.TagIndex(tag, 1, upper), algebra.TagIndex(tag, 2, upper))
	}
	return Bilinear{}, fmt.Errorf("fierz: bilinear id %d: %w",
		id, algebra.ErrUnknownBasisID)
}

// Kernel returns the matrix expression sandwiched between the spinors of a
// bilinear, as a gamma polynomial.
func Kernel(b Bilinear) (gammaalg.Polynomial[algebra.Rational], error) {
	switch b.ID() {
	case BilScalar:
		return gammaalg.FromComplex[algebra.Rational](algebra.One[algebra.Rational]()), nil
	case BilVector:
		t, err := gammaalg.NewTensor(gammaalg.Gamma, b.Indices()...)
		if err != nil {
			return gammaalg.Polynomial[algebra.Rational]{}, err
		}
		return gammaalg.FromTensor[algebra.Rational](t), nil
	case BilTensor:
		t, err := gammaalg.NewTensor(gammaalg.Sigma, b.Indices()...)
		if err != nil {
			return gammaalg.Polynomial[algebra.Rational]{}, err
		}
		return gammaalg.FromTensor[algebra.Rational](t), nil
	case BilPseudoVector:
		g, err := gammaalg.NewTensor(gammaalg.Gamma, b.Indices()...)
		if err != nil {
			return gammaalg.Polynomial[algebra.Rational]{}, err
		}
		g5, err := gammaalg.NewTensor(gammaalg.Gamma5)
		if err != nil {
			return gammaalg.Polynomial[algebra.Rational]{}, err
		}
		return gammaalg.FromTensor[algebra.Rational](g5).
			Mul(gammaalg.FromTensor[algebra.Rational](g)), nil
	case BilPseudoScalar:
		t, err := gammaalg.NewTensor(gammaalg.Gamma5)
		if err != nil {
			return gammaalg.Polynomial[algebra.Rational]{}, err
		}
		return gammaalg.FromTensor[algebra.Rational](t), nil
	}
	return gammaalg.Polynomial[algebra.Rational]{}, fmt.Errorf(
		"fierz: bilinear id %d: %w", b.ID(), algebra.ErrUnknownBasisID)
}
