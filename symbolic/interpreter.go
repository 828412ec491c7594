package symbolic

import (
	"fmt"

	"dirac-calc/algebra"
)

// Interpreter executes postfix op-code over a stack of operand lists.
type Interpreter[S algebra.Scalar[S]] struct {
	stack []OpList[S]
}

// Stack exposes the value stack; a well-formed expression leaves exactly one
// list on it.
func (in *Interpreter[S]) Stack() []OpList[S] { return in.stack }

// Exec runs a sequence of tokens.
func (in *Interpreter[S]) Exec(tokens []Token[S]) error {
	for _, t := range tokens {
		if err := in.ExecToken(t); err != nil {
			return err
		}
	}
	return nil
}

// ExecToken processes a single token: values push a singleton list,
// operations pop their arity and push the result.
func (in *Interpreter[S]) ExecToken(token Token[S]) error {
	switch token.Kind {
	case KindNumber:
		in.push(OpList[S]{NumberOperand(algebra.Real(token.Num))})
		return nil
	case KindLiteral:
		in.push(OpList[S]{LiteralOperand[S](token.Lit)})
		return nil
	}
	return in.execOp(token.Op)
}

func (in *Interpreter[S]) execOp(op Op) error {
	switch op {
	case OpPlus:
		return in.performBinary(Sum[S])
	case OpMinus:
		return in.performBinary(Diff[S])
	case OpUMinus:
		return in.performUnary(Neg[S])
	case OpMul:
		return in.performBinary(Prod[S])
	case OpDiv:
		return in.performBinary(Div[S])
	case OpSubs:
		return in.performBinary(Subscript[S])
	case OpSuper:
		return in.performBinary(Superscript[S])
	case OpSplice:
		return in.performBinary(Join[S])
	}
	return fmt.Errorf("symbolic: unsupported operation %s: %w", op, ErrInternal)
}

func (in *Interpreter[S]) push(l OpList[S]) {
	in.stack = append(in.stack, l)
}

func (in *Interpreter[S]) performBinary(op func(first, second OpList[S]) (OpList[S], error)) error {
	n := len(in.stack)
	if n < 2 {
		return fmt.Errorf("symbolic: not enough arguments for a binary operation: %w",
			ErrMissingOperand)
	}
	first, second := in.stack[n-2], in.stack[n-1]
	res, err := op(first, second)
	if err != nil {
		return err
	}
	in.stack = in.stack[:n-2]
	in.push(res)
	return nil
}

func (in *Interpreter[S]) performUnary(op func(arg OpList[S]) (OpList[S], error)) error {
	n := len(in.stack)
	if n < 1 {
		return fmt.Errorf("symbolic: not enough arguments for a unary operation: %w",
			ErrMissingOperand)
	}
	res, err := op(in.stack[n-1])
	if err != nil {
		return err
	}
	in.stack = in.stack[:n-1]
	in.push(res)
	return nil
}
