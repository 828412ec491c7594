package symbolic

import (
	"fmt"

	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
)

// LiteralI is the reserved literal denoting the imaginary unit.
const LiteralI = "\\I"

// OperandKind discriminates the operand union.
type OperandKind int

const (
	OperandLiteral OperandKind = iota
	OperandNumber
	OperandTensor
	OperandPoly
)

// Operand is an interpreter value: an unresolved literal, a complex number,
// a gamma-ring tensor, or a gamma polynomial.
type Operand[S algebra.Scalar[S]] struct {
	Kind   OperandKind
	Lit    string
	Num    algebra.Complex[S]
	Tensor gammaalg.Tensor
	Poly   gammaalg.Polynomial[S]
}

// OpList is an ordered sequence of operands modeling juxtaposition before it
// collapses to a product.
type OpList[S algebra.Scalar[S]] []Operand[S]

// LiteralOperand wraps an unresolved literal.
func LiteralOperand[S algebra.Scalar[S]](lit string) Operand[S] {
	return Operand[S]{Kind: OperandLiteral, Lit: lit}
}

// NumberOperand wraps a complex scalar.
func NumberOperand[S algebra.Scalar[S]](c algebra.Complex[S]) Operand[S] {
	return Operand[S]{Kind: OperandNumber, Num: c}
}

// TensorOperand wraps a gamma-ring tensor.
func TensorOperand[S algebra.Scalar[S]](t gammaalg.Tensor) Operand[S] {
	return Operand[S]{Kind: OperandTensor, Tensor: t}
}

// PolyOperand wraps a gamma polynomial.
func PolyOperand[S algebra.Scalar[S]](p gammaalg.Polynomial[S]) Operand[S] {
	return Operand[S]{Kind: OperandPoly, Poly: p}
}

// Resolve maps a literal to its value: the imaginary unit for the reserved
// literal, a gamma-ring tensor otherwise.
func Resolve[S algebra.Scalar[S]](lit string) (Operand[S], error) {
	if lit == LiteralI {
		return NumberOperand(algebra.I[S]()), nil
	}
	t, err := gammaalg.NewTensor(lit)
	if err != nil {
		return Operand[S]{}, err
	}
	return TensorOperand[S](t), nil
}

// GetPoly converts the operand to a gamma polynomial; literals resolve first.
func GetPoly[S algebra.Scalar[S]](op Operand[S]) (gammaalg.Polynomial[S], error) {
	switch op.Kind {
	case OperandTensor:
		return gammaalg.FromTensor[S](op.Tensor), nil
	case OperandPoly:
		return op.Poly, nil
	case OperandLiteral:
		res, err := Resolve[S](op.Lit)
		if err != nil {
			return gammaalg.Polynomial[S]{}, err
		}
		return GetPoly(res)
	}
	return gammaalg.Polynomial[S]{}, fmt.Errorf(
		"symbolic: a number is not a gamma polynomial: %w", ErrNonNumericInArithmetic)
}

// GetTensor converts a tensor or literal operand to a gamma-ring tensor.
func GetTensor[S algebra.Scalar[S]](op Operand[S]) (gammaalg.Tensor, error) {
	switch op.Kind {
	case OperandTensor:
		return op.Tensor, nil
	case OperandLiteral:
		return gammaalg.NewTensor(op.Lit)
	}
	return gammaalg.Tensor{}, fmt.Errorf(
		"symbolic: %w", ErrSubscriptTargetNotTensor)
}
