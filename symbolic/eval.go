package symbolic

import (
	"fmt"

	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
	"dirac-calc/li"
)

// EvalOperand promotes a single operand to canonical form.
func EvalOperand[S algebra.Scalar[S]](value Operand[S]) (gammaalg.CanonicalExpr[S], error) {
	if value.Kind == OperandLiteral {
		res, err := Resolve[S](value.Lit)
		if err != nil {
			return gammaalg.CanonicalExpr[S]{}, err
		}
		value = res
	}
	if value.Kind == OperandNumber {
		res := gammaalg.NewCanonicalExpr[S]()
		res.Coeffs[0] = li.FromComplex(value.Num)
		return res, nil
	}
	poly, err := GetPoly(value)
	if err != nil {
		return gammaalg.CanonicalExpr[S]{}, err
	}
	return gammaalg.Reduce(poly)
}

// EvalList promotes the final operand list of an execution to canonical
// form, productizing it first when needed.
func EvalList[S algebra.Scalar[S]](ops OpList[S]) (gammaalg.CanonicalExpr[S], error) {
	if len(ops) == 0 {
		return gammaalg.CanonicalExpr[S]{}, fmt.Errorf("symbolic: empty expression: %w",
			ErrInconsistentExpression)
	}
	if len(ops) > 1 {
		p, err := ToProduct(ops)
		if err != nil {
			return gammaalg.CanonicalExpr[S]{}, err
		}
		ops = p
	}
	return EvalOperand(ops[0])
}

// Eval parses, compiles, executes and reduces an expression string.
func Eval[S algebra.Scalar[S]](expr string, mode Mode[S]) (gammaalg.CanonicalExpr[S], error) {
	input := NewStringInput(expr, mode)
	var compiler Compiler[S]
	if err := compiler.Compile(input); err != nil {
		return gammaalg.CanonicalExpr[S]{}, err
	}

	var interp Interpreter[S]
	if err := interp.Exec(compiler.OpCode()); err != nil {
		return gammaalg.CanonicalExpr[S]{}, err
	}

	stack := interp.Stack()
	if len(stack) != 1 {
		return gammaalg.CanonicalExpr[S]{}, fmt.Errorf("symbolic: %w",
			ErrInconsistentExpression)
	}
	return EvalList(stack[0])
}

// Compute evaluates an expression and renders it as LaTeX, applying the
// sigma antisymmetry pass when requested.
func Compute[S algebra.Scalar[S]](expr string, mode Mode[S], applySymmetry bool,
	dummyName string, lineTerms int) (string, error) {

	res, err := Eval(expr, mode)
	if err != nil {
		return "", err
	}
	if applySymmetry {
		res.ApplySymmetry()
	}
	printer := NewExprPrinter[S](dummyName, lineTerms)
	return printer.Latexify(&res), nil
}
