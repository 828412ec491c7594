package symbolic

import "errors"

// Error taxonomy of the expression pipeline. Each evaluation stage surfaces
// its first error and aborts; no partial results escape.
var (
	// Tokenizer.
	ErrTokenize = errors.New("tokenize error")

	// Compiler.
	ErrUnmatchedOpenBracket  = errors.New("unmatched opening bracket")
	ErrUnmatchedCloseBracket = errors.New("unmatched closing bracket")
	ErrEmptyBracket          = errors.New("empty bracket")
	ErrConsecutiveOperators  = errors.New("consecutive operators")
	ErrMissingOperand        = errors.New("missing operand")

	// Interpreter and evaluator.
	ErrInconsistentExpression   = errors.New("inconsistent expression")
	ErrNonNumericInArithmetic   = errors.New("non-numeric value in arithmetic")
	ErrNonDivisibleOperand      = errors.New("can only divide by a number")
	ErrSubscriptTargetNotTensor = errors.New("subscript target is not a tensor")
	ErrIndexNotLiteral          = errors.New("tensor index must be a literal")

	// Invariant violations.
	ErrInternal = errors.New("internal error")
)
