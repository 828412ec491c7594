package symbolic

import (
	"errors"
	"strings"
	"testing"

	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
)

type rat = algebra.Rational

func evalRat(t *testing.T, src string) gammaalg.CanonicalExpr[rat] {
	t.Helper()
	expr, err := Eval(src, RationalMode())
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	expr.ApplySymmetry()
	return expr
}

func TestEvalScalarIdentities(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"\\gamma^\\mu \\gamma_\\mu", 4},
		{"\\gamma5 \\gamma5", 1},
		{"\\epsilon_{\\mu\\nu\\rho\\sigma} \\epsilon^{\\mu\\nu\\rho\\sigma}", -24},
		{"2 + 3", 5},
		{"{1/2} {4}", 2},
	}
	for _, c := range cases {
		expr := evalRat(t, c.src)
		if !expr.IsScalar(algebra.RatInt(c.want)) {
			t.Fatalf("%q = %+v, want %d", c.src, expr.Coeffs, c.want)
		}
	}
}

func TestEvalAnticommutator(t *testing.T) {
	expr := evalRat(t, "\\gamma^\\mu \\gamma^\\nu + \\gamma^\\nu \\gamma^\\mu")
	for i := 1; i < 5; i++ {
		if !expr.Coeffs[i].IsZero() {
			t.Fatalf("component %d nonzero: %+v", i, expr.Coeffs[i].Terms)
		}
	}
	terms := expr.Coeffs[0].Terms
	if len(terms) != 1 || !terms[0].Coeff.Equal(algebra.FromInt[rat](2)) {
		t.Fatalf("scalar part %+v, want 2 eta", terms)
	}
}

func TestEvalCommutatorMatchesBracketed(t *testing.T) {
	plain := evalRat(t, "\\gamma^\\mu \\gamma^\\nu - \\gamma^\\nu \\gamma^\\mu")
	bracketed := evalRat(t, "{\\gamma^\\mu \\gamma^\\nu} - {\\gamma^\\nu \\gamma^\\mu}")
	if Fingerprint(&plain) != Fingerprint(&bracketed) {
		t.Fatal("bracketing must not change the canonical result")
	}
	if plain.Coeffs[2].IsZero() {
		t.Fatal("commutator must have a sigma component")
	}
}

func TestEvalPrecedenceRoundTrip(t *testing.T) {
	a := evalRat(t, "1 + 2 * 3")
	b := evalRat(t, "1 + {2 * 3}")
	if !a.IsScalar(algebra.RatInt(7)) {
		t.Fatalf("1 + 2*3 = %+v", a.Coeffs)
	}
	if Fingerprint(&a) != Fingerprint(&b) {
		t.Fatal("precedence round trip failed")
	}
}

func TestEvalHalfSumDecomposition(t *testing.T) {
	full := evalRat(t, "\\gamma^\\mu \\gamma^\\nu")
	split := evalRat(t,
		"{1/2}{\\gamma^\\mu \\gamma^\\nu + \\gamma^\\nu \\gamma^\\mu}"+
			" + {1/2}{\\gamma^\\mu \\gamma^\\nu - \\gamma^\\nu \\gamma^\\mu}")
	if Fingerprint(&full) != Fingerprint(&split) {
		t.Fatal("symmetric/antisymmetric split must reassemble the product")
	}
}

func TestEvalImaginaryUnit(t *testing.T) {
	expr := evalRat(t, "\\I \\I")
	if !expr.IsScalar(algebra.RatInt(-1)) {
		t.Fatalf("I*I = %+v, want -1", expr.Coeffs)
	}
}

func TestEvalUnaryMinus(t *testing.T) {
	expr := evalRat(t, "-{2 + 1}")
	if !expr.IsScalar(algebra.RatInt(-3)) {
		t.Fatalf("-(2+1) = %+v", expr.Coeffs)
	}
}

func TestEvalDivision(t *testing.T) {
	expr := evalRat(t, "\\gamma^\\mu \\gamma_\\mu / 2")
	if !expr.IsScalar(algebra.RatInt(2)) {
		t.Fatalf("4/2 = %+v", expr.Coeffs)
	}
}

func TestEvalFloatMode(t *testing.T) {
	expr, err := Eval("0.5 \\gamma^\\mu \\gamma_\\mu", FloatMode())
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !expr.IsScalar(algebra.Float(2)) {
		t.Fatalf("float 0.5*4 = %+v", expr.Coeffs)
	}
}

func TestEvalNumberPlusTensorRejected(t *testing.T) {
	_, err := Eval("1 + \\gamma^\\mu", RationalMode())
	if !errors.Is(err, ErrNonNumericInArithmetic) {
		t.Fatalf("number + tensor: got %v", err)
	}
}

func TestEvalInconsistency(t *testing.T) {
	_, err := Eval("", RationalMode())
	if err == nil {
		t.Fatal("empty input must fail")
	}
}

func TestComputeRendersLatex(t *testing.T) {
	out, err := Compute("\\gamma^\\mu \\gamma_\\mu", RationalMode(), true, "\\omega", 0)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out != "4" {
		t.Fatalf("compute = %q, want \"4\"", out)
	}

	out, err = Compute("\\gamma^\\mu", RationalMode(), true, "\\omega", 0)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !strings.Contains(out, "\\gamma^{\\omega_{1}}") {
		t.Fatalf("gamma output %q lacks the free index", out)
	}
	if !strings.Contains(out, "\\delta") {
		t.Fatalf("gamma output %q lacks the delta coefficient", out)
	}
}

func TestFingerprintDistinguishes(t *testing.T) {
	a := evalRat(t, "\\gamma^\\mu")
	b := evalRat(t, "\\gamma^\\nu")
	if Fingerprint(&a) == Fingerprint(&b) {
		t.Fatal("distinct expressions must fingerprint apart")
	}
	a2 := evalRat(t, "\\gamma^\\mu")
	if Fingerprint(&a) != Fingerprint(&a2) {
		t.Fatal("equal expressions must fingerprint alike")
	}
}
