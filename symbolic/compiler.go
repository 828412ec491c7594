package symbolic

import (
	"fmt"

	"dirac-calc/algebra"
)

// Precedence levels, low to high.
type Precedence int

const (
	PrecBracket Precedence = iota
	PrecAdditive
	PrecMultiplicative
	PrecUnary
	PrecSubscript
)

// OpPrecedence returns the precedence level of an operation.
func OpPrecedence(op Op) (Precedence, error) {
	switch op {
	case OpLBrace, OpRBrace:
		return PrecBracket, nil
	case OpPlus, OpMinus:
		return PrecAdditive, nil
	case OpMul, OpDiv, OpSplice:
		return PrecMultiplicative, nil
	case OpUMinus:
		return PrecUnary, nil
	case OpSubs, OpSuper:
		return PrecSubscript, nil
	}
	return 0, fmt.Errorf("symbolic: no precedence for %s: %w", op, ErrInternal)
}

type compilerState int

const (
	stateEmpty compilerState = iota
	stateLBrace
	stateRBrace
	stateOperator
	stateValue
)

// Compiler transforms a token sequence in natural order into reverse Polish
// (postfix) order suitable for the stack interpreter. A shunting-yard variant
// with a small state machine that promotes leading minus to unary, inserts
// splice operators for juxtaposed values, and rejects malformed operator
// sequences.
type Compiler[S algebra.Scalar[S]] struct {
	state   compilerState
	body    []Token[S]
	opStack []Op
	lastOp  Op
}

// OpCode returns the compiled body in postfix order.
func (c *Compiler[S]) OpCode() []Token[S] { return c.body }

// Compile drains the input and flushes the operator stack.
func (c *Compiler[S]) Compile(input *StringInput[S]) error {
	for {
		token, ok, err := input.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := c.PushToken(token); err != nil {
			return err
		}
	}
	return c.PopAll()
}

// PushToken feeds a single token.
func (c *Compiler[S]) PushToken(token Token[S]) error {
	if token.IsOp() {
		return c.PushOp(token.Op)
	}
	return c.pushValue(token)
}

// isNewSubexpr reports the beginning of an expression or a position right
// after an opening bracket.
func (c *Compiler[S]) isNewSubexpr() bool {
	return c.state == stateEmpty || c.state == stateLBrace
}

// pushValue emits a value, splicing it onto a preceding value or closing
// bracket: \a\b compiles as \a & \b and }\a as } & \a.
func (c *Compiler[S]) pushValue(token Token[S]) error {
	if c.state == stateValue || c.state == stateRBrace {
		if err := c.PushOp(OpSplice); err != nil {
			return err
		}
	}
	c.body = append(c.body, token)
	c.state = stateValue
	return nil
}

// PushOp feeds an operation.
func (c *Compiler[S]) PushOp(op Op) error {
	if op == OpNop {
		return fmt.Errorf("symbolic: invalid operation: %w", ErrInternal)
	}

	// Promote minus to unary at the beginning of a (sub)expression.
	if op == OpMinus && c.isNewSubexpr() {
		c.doPush(OpUMinus)
		return nil
	}

	// Reject malformed operator sequences. An opening bracket may stand
	// anywhere and a closing bracket may be followed by anything.
	if op != OpLBrace {
		if c.state == stateEmpty {
			return fmt.Errorf("symbolic: expressions cannot start with %s: %w",
				op, ErrConsecutiveOperators)
		}
		afterBracket := c.state == stateLBrace
		if afterBracket || c.state == stateOperator {
			closing := op == OpRBrace
			switch {
			case closing && afterBracket:
				return fmt.Errorf("symbolic: %w", ErrEmptyBracket)
			case !closing && afterBracket:
				return fmt.Errorf("symbolic: %s cannot follow an opening bracket: %w",
					op, ErrConsecutiveOperators)
			case closing && !afterBracket:
				return fmt.Errorf("symbolic: closing bracket after %s: %w",
					c.lastOp, ErrConsecutiveOperators)
			default:
				return fmt.Errorf("symbolic: %s and %s: %w",
					c.lastOp, op, ErrConsecutiveOperators)
			}
		}
	}

	if op == OpLBrace {
		// A bracket group juxtaposed onto a value or another group is a
		// product: {a}{b} compiles as {a} & {b}.
		if c.state == stateValue || c.state == stateRBrace {
			if err := c.PushOp(OpSplice); err != nil {
				return err
			}
		}
		c.doPush(op)
		return nil
	}

	if op == OpRBrace {
		if err := c.popUntil(func() (bool, error) {
			if len(c.opStack) == 0 {
				return false, fmt.Errorf("symbolic: %w", ErrUnmatchedCloseBracket)
			}
			return c.opStack[len(c.opStack)-1] == OpLBrace, nil
		}); err != nil {
			return err
		}
		c.opStack = c.opStack[:len(c.opStack)-1]
		c.state = stateRBrace
		c.lastOp = op
		return nil
	}

	prec, err := OpPrecedence(op)
	if err != nil {
		return err
	}
	if err := c.popUntil(func() (bool, error) {
		if len(c.opStack) == 0 {
			return true, nil
		}
		prev, err := OpPrecedence(c.opStack[len(c.opStack)-1])
		if err != nil {
			return false, err
		}
		return prec > prev, nil
	}); err != nil {
		return err
	}
	c.doPush(op)
	return nil
}

// doPush pushes an operation unconditionally.
func (c *Compiler[S]) doPush(op Op) {
	c.opStack = append(c.opStack, op)
	c.lastOp = op
	switch op {
	case OpLBrace:
		c.state = stateLBrace
	case OpRBrace:
		c.state = stateRBrace
	default:
		c.state = stateOperator
	}
}

// popUntil flushes operations from the stack to the body until cond holds.
func (c *Compiler[S]) popUntil(cond func() (bool, error)) error {
	for {
		done, err := cond()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		top := c.opStack[len(c.opStack)-1]
		c.opStack = c.opStack[:len(c.opStack)-1]
		c.body = append(c.body, OpToken[S](top))
	}
}

// PopAll drains the operator stack as if at the end of the expression.
func (c *Compiler[S]) PopAll() error {
	return c.popUntil(func() (bool, error) {
		if len(c.opStack) == 0 {
			return true, nil
		}
		top := c.opStack[len(c.opStack)-1]
		if top == OpLBrace {
			return false, fmt.Errorf("symbolic: %w", ErrUnmatchedOpenBracket)
		}
		if top == OpUMinus {
			if len(c.body) == 0 {
				return false, fmt.Errorf("symbolic: unary minus requires an argument: %w",
					ErrMissingOperand)
			}
		} else if len(c.body) < 2 {
			return false, fmt.Errorf("symbolic: %s requires two arguments: %w",
				top, ErrMissingOperand)
		}
		return false, nil
	})
}
