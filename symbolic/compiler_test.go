package symbolic

import (
	"errors"
	"testing"

	"dirac-calc/algebra"
)

func compileRat(t *testing.T, src string) []Token[algebra.Rational] {
	t.Helper()
	var c Compiler[algebra.Rational]
	if err := c.Compile(NewStringInput(src, RationalMode())); err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return c.OpCode()
}

func compileErr(t *testing.T, src string) error {
	t.Helper()
	var c Compiler[algebra.Rational]
	err := c.Compile(NewStringInput(src, RationalMode()))
	if err == nil {
		t.Fatalf("compile %q: expected an error", src)
	}
	return err
}

func opsOf[S algebra.Scalar[S]](tokens []Token[S]) []Op {
	var ops []Op
	for _, tok := range tokens {
		if tok.IsOp() {
			ops = append(ops, tok.Op)
		}
	}
	return ops
}

func TestTokenizer(t *testing.T) {
	in := NewStringInput("\\gamma^\\mu + 12", RationalMode())

	tok, ok, err := in.Next()
	if err != nil || !ok || tok.Kind != KindLiteral || tok.Lit != "\\gamma" {
		t.Fatalf("token 1: %+v, %v, %v", tok, ok, err)
	}
	tok, ok, _ = in.Next()
	if !ok || tok.Op != OpSuper {
		t.Fatalf("token 2: %+v", tok)
	}
	tok, ok, _ = in.Next()
	if !ok || tok.Lit != "\\mu" {
		t.Fatalf("token 3: %+v", tok)
	}
	tok, ok, _ = in.Next()
	if !ok || tok.Op != OpPlus {
		t.Fatalf("token 4: %+v", tok)
	}
	tok, ok, _ = in.Next()
	if !ok || tok.Kind != KindNumber || !tok.Num.Equal(algebra.RatInt(12)) {
		t.Fatalf("token 5: %+v", tok)
	}
	if _, ok, _ = in.Next(); ok {
		t.Fatal("expected end of input")
	}
}

func TestTokenizerErrors(t *testing.T) {
	if _, _, err := NewStringInput("abc", RationalMode()).Next(); !errors.Is(err, ErrTokenize) {
		t.Fatalf("bare word: got %v", err)
	}
	if _, _, err := NewStringInput("@", RationalMode()).Next(); !errors.Is(err, ErrTokenize) {
		t.Fatalf("bad character: got %v", err)
	}
	if _, _, err := NewStringInput("1.2.3", FloatMode()).Next(); !errors.Is(err, ErrTokenize) {
		t.Fatalf("malformed float: got %v", err)
	}
}

func TestFloatModeScansDot(t *testing.T) {
	tok, ok, err := NewStringInput("1.5", FloatMode()).Next()
	if err != nil || !ok || !tok.Num.Equal(algebra.Float(1.5)) {
		t.Fatalf("float token: %+v, %v, %v", tok, ok, err)
	}
	// Rational mode stops at the dot and then rejects it.
	in := NewStringInput("1.5", RationalMode())
	rtok, _, err := in.Next()
	if err != nil || !rtok.Num.Equal(algebra.RatInt(1)) {
		t.Fatalf("rational digits: %+v, %v", rtok, err)
	}
	if _, _, err = in.Next(); !errors.Is(err, ErrTokenize) {
		t.Fatalf("rational dot: got %v", err)
	}
}

func TestCompilerPostfixOrder(t *testing.T) {
	code := compileRat(t, "\\a + \\b * \\c")
	// Postfix: a b c * +
	if len(code) != 5 {
		t.Fatalf("op-code %+v", code)
	}
	want := []Op{OpMul, OpPlus}
	got := opsOf(code)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("operator order %v, want %v", got, want)
	}
}

func TestCompilerSpliceInsertion(t *testing.T) {
	code := compileRat(t, "\\a\\b")
	got := opsOf(code)
	if len(got) != 1 || got[0] != OpSplice {
		t.Fatalf("juxtaposition must compile to a splice, got %v", got)
	}

	code = compileRat(t, "{\\a}\\b")
	got = opsOf(code)
	if len(got) != 1 || got[0] != OpSplice {
		t.Fatalf("bracket juxtaposition must splice, got %v", got)
	}
}

func TestCompilerUnaryMinus(t *testing.T) {
	code := compileRat(t, "-\\a")
	got := opsOf(code)
	if len(got) != 1 || got[0] != OpUMinus {
		t.Fatalf("leading minus must be unary, got %v", got)
	}

	code = compileRat(t, "{-\\a}")
	got = opsOf(code)
	if len(got) != 1 || got[0] != OpUMinus {
		t.Fatalf("minus after an opening bracket must be unary, got %v", got)
	}

	code = compileRat(t, "\\a - \\b")
	got = opsOf(code)
	if len(got) != 1 || got[0] != OpMinus {
		t.Fatalf("infix minus must stay binary, got %v", got)
	}
}

func TestCompilerErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind error
	}{
		{"{\\a", ErrUnmatchedOpenBracket},
		{"\\a}", ErrUnmatchedCloseBracket},
		{"{}", ErrEmptyBracket},
		{"\\a + * \\b", ErrConsecutiveOperators},
		{"\\a +", ErrMissingOperand},
		{"+\\a", ErrConsecutiveOperators},
		{"{\\a +} \\b", ErrConsecutiveOperators},
	}
	for _, c := range cases {
		if err := compileErr(t, c.src); !errors.Is(err, c.kind) {
			t.Fatalf("compile %q: got %v, want %v", c.src, err, c.kind)
		}
	}
}

func TestInterpreterStackDiscipline(t *testing.T) {
	code := compileRat(t, "1 + 2 * 3")
	var in Interpreter[algebra.Rational]
	if err := in.Exec(code); err != nil {
		t.Fatalf("exec: %v", err)
	}
	if len(in.Stack()) != 1 {
		t.Fatalf("stack depth %d after execution, want 1", len(in.Stack()))
	}
	res := in.Stack()[0]
	if len(res) != 1 || res[0].Kind != OperandNumber ||
		!res[0].Num.Equal(algebra.FromInt[algebra.Rational](7)) {
		t.Fatalf("1 + 2*3 = %+v, want 7", res)
	}
}

func TestInterpreterArityErrors(t *testing.T) {
	var in Interpreter[algebra.Rational]
	err := in.ExecToken(OpToken[algebra.Rational](OpPlus))
	if !errors.Is(err, ErrMissingOperand) {
		t.Fatalf("plus on an empty stack: got %v", err)
	}
}

func TestDivisionRequiresNumber(t *testing.T) {
	_, err := Eval("\\gamma^\\mu / \\gamma^\\nu", RationalMode())
	if !errors.Is(err, ErrNonDivisibleOperand) {
		t.Fatalf("tensor divisor: got %v", err)
	}
}

func TestSubscriptTargetChecks(t *testing.T) {
	_, err := Eval("2_\\mu", RationalMode())
	if !errors.Is(err, ErrSubscriptTargetNotTensor) {
		t.Fatalf("number subscript: got %v", err)
	}
	_, err = Eval("\\gamma^2", RationalMode())
	if !errors.Is(err, ErrIndexNotLiteral) {
		t.Fatalf("numeric index: got %v", err)
	}
	_, err = Eval("\\gamma^{\\mu\\nu}", RationalMode())
	if !errors.Is(err, algebra.ErrTooManyIndices) {
		t.Fatalf("gamma with two indices: got %v", err)
	}
}
