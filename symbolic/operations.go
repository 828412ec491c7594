package symbolic

import (
	"fmt"

	"dirac-calc/algebra"
)

// The binary and unary operations of the interpreter. Operand lists longer
// than one are collapsed to a product before an arithmetic operation applies;
// literals resolve on first use.

// BinaryOp combines two single operands.
type BinaryOp[S algebra.Scalar[S]] func(a, b Operand[S]) (Operand[S], error)

// arithmeticBinary unwraps the operand lists common to all arithmetic
// operations: each side is productized down to a single operand first.
func arithmeticBinary[S algebra.Scalar[S]](first, second OpList[S], op BinaryOp[S]) (OpList[S], error) {
	if len(first) == 0 || len(second) == 0 {
		return nil, fmt.Errorf("symbolic: empty binary operation argument: %w",
			ErrMissingOperand)
	}
	if len(first) > 1 {
		p, err := ToProduct(first)
		if err != nil {
			return nil, err
		}
		first = p
	}
	if len(second) > 1 {
		p, err := ToProduct(second)
		if err != nil {
			return nil, err
		}
		second = p
	}
	res, err := op(first[0], second[0])
	if err != nil {
		return nil, err
	}
	return OpList[S]{res}, nil
}

// SumOperands adds two operands.
func SumOperands[S algebra.Scalar[S]](op1, op2 Operand[S]) (Operand[S], error) {
	if op1.Kind == OperandLiteral {
		res, err := Resolve[S](op1.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return SumOperands(res, op2)
	}
	if op2.Kind == OperandLiteral {
		res, err := Resolve[S](op2.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return SumOperands(op1, res)
	}

	if op1.Kind == OperandNumber {
		if op2.Kind != OperandNumber {
			return Operand[S]{}, fmt.Errorf(
				"symbolic: adding a number and a non-numeric value: %w",
				ErrNonNumericInArithmetic)
		}
		return NumberOperand(op1.Num.Add(op2.Num)), nil
	}
	if op2.Kind == OperandNumber {
		return Operand[S]{}, fmt.Errorf(
			"symbolic: adding a number and a non-numeric value: %w",
			ErrNonNumericInArithmetic)
	}

	p1, err := GetPoly(op1)
	if err != nil {
		return Operand[S]{}, err
	}
	p2, err := GetPoly(op2)
	if err != nil {
		return Operand[S]{}, err
	}
	return PolyOperand(p1.Add(p2)), nil
}

// DiffOperands subtracts op2 from op1.
func DiffOperands[S algebra.Scalar[S]](op1, op2 Operand[S]) (Operand[S], error) {
	if op1.Kind == OperandLiteral {
		res, err := Resolve[S](op1.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return DiffOperands(res, op2)
	}
	if op2.Kind == OperandLiteral {
		res, err := Resolve[S](op2.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return DiffOperands(op1, res)
	}

	if op1.Kind == OperandNumber {
		if op2.Kind != OperandNumber {
			return Operand[S]{}, fmt.Errorf(
				"symbolic: subtracting a number and a non-numeric value: %w",
				ErrNonNumericInArithmetic)
		}
		return NumberOperand(op1.Num.Sub(op2.Num)), nil
	}
	if op2.Kind == OperandNumber {
		return Operand[S]{}, fmt.Errorf(
			"symbolic: subtracting a number and a non-numeric value: %w",
			ErrNonNumericInArithmetic)
	}

	p1, err := GetPoly(op1)
	if err != nil {
		return Operand[S]{}, err
	}
	p2, err := GetPoly(op2)
	if err != nil {
		return Operand[S]{}, err
	}
	return PolyOperand(p1.Sub(p2)), nil
}

// ProdOperands multiplies two operands.
func ProdOperands[S algebra.Scalar[S]](op1, op2 Operand[S]) (Operand[S], error) {
	if op1.Kind == OperandLiteral {
		res, err := Resolve[S](op1.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return ProdOperands(res, op2)
	}
	if op2.Kind == OperandLiteral {
		res, err := Resolve[S](op2.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return ProdOperands(op1, res)
	}

	numFirst := op1.Kind == OperandNumber
	numSecond := op2.Kind == OperandNumber
	switch {
	case numFirst && numSecond:
		return NumberOperand(op1.Num.Mul(op2.Num)), nil
	case numFirst:
		p, err := GetPoly(op2)
		if err != nil {
			return Operand[S]{}, err
		}
		return PolyOperand(p.Scale(op1.Num)), nil
	case numSecond:
		p, err := GetPoly(op1)
		if err != nil {
			return Operand[S]{}, err
		}
		return PolyOperand(p.ScaleRight(op2.Num)), nil
	}

	p1, err := GetPoly(op1)
	if err != nil {
		return Operand[S]{}, err
	}
	p2, err := GetPoly(op2)
	if err != nil {
		return Operand[S]{}, err
	}
	return PolyOperand(p1.Mul(p2)), nil
}

// DivOperands divides op1 by op2; the divisor must be a number.
func DivOperands[S algebra.Scalar[S]](op1, op2 Operand[S]) (Operand[S], error) {
	if op1.Kind == OperandLiteral {
		res, err := Resolve[S](op1.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return DivOperands(res, op2)
	}
	if op2.Kind == OperandLiteral {
		res, err := Resolve[S](op2.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return DivOperands(op1, res)
	}

	if op2.Kind != OperandNumber {
		return Operand[S]{}, fmt.Errorf("symbolic: %w", ErrNonDivisibleOperand)
	}
	if op1.Kind == OperandNumber {
		return NumberOperand(op1.Num.Div(op2.Num)), nil
	}

	p, err := GetPoly(op1)
	if err != nil {
		return Operand[S]{}, err
	}
	return PolyOperand(p.ScaleRight(algebra.One[S]().Div(op2.Num))), nil
}

// NegOperand negates a single operand.
func NegOperand[S algebra.Scalar[S]](op Operand[S]) (Operand[S], error) {
	if op.Kind == OperandLiteral {
		res, err := Resolve[S](op.Lit)
		if err != nil {
			return Operand[S]{}, err
		}
		return NegOperand(res)
	}
	if op.Kind == OperandNumber {
		return NumberOperand(op.Num.Neg()), nil
	}
	p, err := GetPoly(op)
	if err != nil {
		return Operand[S]{}, err
	}
	return PolyOperand(p.Neg()), nil
}

// Sum adds two operand lists.
func Sum[S algebra.Scalar[S]](first, second OpList[S]) (OpList[S], error) {
	return arithmeticBinary(first, second, SumOperands[S])
}

// Diff subtracts two operand lists.
func Diff[S algebra.Scalar[S]](first, second OpList[S]) (OpList[S], error) {
	return arithmeticBinary(first, second, DiffOperands[S])
}

// Prod multiplies two operand lists.
func Prod[S algebra.Scalar[S]](first, second OpList[S]) (OpList[S], error) {
	return arithmeticBinary(first, second, ProdOperands[S])
}

// Div divides two operand lists.
func Div[S algebra.Scalar[S]](first, second OpList[S]) (OpList[S], error) {
	return arithmeticBinary(first, second, DivOperands[S])
}

// Neg negates an operand list, productizing a longer list first.
func Neg[S algebra.Scalar[S]](arg OpList[S]) (OpList[S], error) {
	if len(arg) == 0 {
		return nil, fmt.Errorf("symbolic: empty negation argument: %w",
			ErrMissingOperand)
	}
	if len(arg) > 1 {
		p, err := ToProduct(arg)
		if err != nil {
			return nil, err
		}
		arg = p
	}
	res, err := NegOperand(arg[0])
	if err != nil {
		return nil, err
	}
	return OpList[S]{res}, nil
}

// Join concatenates two operand lists; the splice operation.
func Join[S algebra.Scalar[S]](first, second OpList[S]) (OpList[S], error) {
	res := make(OpList[S], 0, len(first)+len(second))
	res = append(res, first...)
	res = append(res, second...)
	return res, nil
}

// toIndices converts a list of literal operands to tensor indices.
func toIndices[S algebra.Scalar[S]](list OpList[S], upper bool) ([]algebra.Index, error) {
	indices := make([]algebra.Index, 0, len(list))
	for _, op := range list {
		if op.Kind != OperandLiteral {
			return nil, fmt.Errorf("symbolic: %w", ErrIndexNotLiteral)
		}
		indices = append(indices, algebra.Index{ID: algebra.NameID(op.Lit), Upper: upper})
	}
	return indices, nil
}

func script[S algebra.Scalar[S]](head, indices OpList[S], upper bool) (OpList[S], error) {
	if len(head) != 1 {
		return nil, fmt.Errorf("symbolic: subscript applies to a single value: %w",
			ErrSubscriptTargetNotTensor)
	}
	t, err := GetTensor(head[0])
	if err != nil {
		return nil, err
	}
	idx, err := toIndices(indices, upper)
	if err != nil {
		return nil, err
	}
	res, err := t.WithIndices(idx...)
	if err != nil {
		return nil, err
	}
	return OpList[S]{TensorOperand[S](res)}, nil
}

// Subscript appends lower indices to a literal or tensor.
func Subscript[S algebra.Scalar[S]](head, indices OpList[S]) (OpList[S], error) {
	return script(head, indices, false)
}

// Superscript appends upper indices to a literal or tensor.
func Superscript[S algebra.Scalar[S]](head, indices OpList[S]) (OpList[S], error) {
	return script(head, indices, true)
}

// ToProduct folds an operand list into a single product operand.
func ToProduct[S algebra.Scalar[S]](ops OpList[S]) (OpList[S], error) {
	if len(ops) == 0 {
		return ops, nil
	}
	value := NumberOperand(algebra.One[S]())
	for _, op := range ops {
		res, err := ProdOperands(value, op)
		if err != nil {
			return nil, err
		}
		value = res
	}
	return OpList[S]{value}, nil
}
