package algebra

import "testing"

func TestRationalNormalization(t *testing.T) {
	cases := []struct {
		num  int64
		den  uint64
		wNum int64
		wDen uint64
	}{
		{6, 4, 3, 2},
		{-6, 4, -3, 2},
		{9, 3, 3, 1},
		{0, 7, 0, 1},
		{12, 12, 1, 1},
		{7, 1, 7, 1},
	}
	for _, c := range cases {
		r := NewRational(c.num, c.den)
		if r.Num() != c.wNum || r.Den() != c.wDen {
			t.Fatalf("NewRational(%d, %d) = %d/%d, want %d/%d",
				c.num, c.den, r.Num(), r.Den(), c.wNum, c.wDen)
		}
		if g := gcd(r.AbsNum(), r.Den()); r.Num() != 0 && g != 1 {
			t.Fatalf("%v not in lowest terms", r)
		}
	}
}

func TestRationalArithmetic(t *testing.T) {
	half := NewRational(1, 2)
	third := NewRational(1, 3)

	if got := half.Add(third); !got.Equal(NewRational(5, 6)) {
		t.Fatalf("1/2 + 1/3 = %v", got)
	}
	if got := half.Sub(third); !got.Equal(NewRational(1, 6)) {
		t.Fatalf("1/2 - 1/3 = %v", got)
	}
	if got := half.Mul(third); !got.Equal(NewRational(1, 6)) {
		t.Fatalf("1/2 * 1/3 = %v", got)
	}
	if got := half.Div(third); !got.Equal(NewRational(3, 2)) {
		t.Fatalf("(1/2) / (1/3) = %v", got)
	}
	if got := half.Neg(); !got.Equal(NewRational(-1, 2)) {
		t.Fatalf("-(1/2) = %v", got)
	}
}

func TestRationalDivBySigned(t *testing.T) {
	// Division by a negative value keeps the denominator unsigned.
	got := NewRational(1, 2).Div(NewRational(-3, 4))
	if got.Den() == 0 || got.Num() >= 0 {
		t.Fatalf("(1/2)/(-3/4) = %v, want negative numerator", got)
	}
	if !got.Equal(NewRational(-2, 3)) {
		t.Fatalf("(1/2)/(-3/4) = %v, want -2/3", got)
	}
}

func TestRationalInvalid(t *testing.T) {
	bad := NewRational(1, 0)
	if bad.Finite() {
		t.Fatal("1/0 reported finite")
	}
	if bad.Equal(bad) {
		t.Fatal("invalid values must not compare equal")
	}
	if bad.Less(RatInt(1)) || RatInt(1).Less(bad) {
		t.Fatal("ordering against invalid must be false")
	}
	if sum := bad.Add(RatInt(1)); sum.Finite() {
		t.Fatal("arithmetic must propagate the invalid state")
	}
	if div := RatInt(1).Div(RatInt(0)); div.Finite() {
		t.Fatal("division by zero must be invalid")
	}
}

func TestRationalOrdering(t *testing.T) {
	if !NewRational(1, 3).Less(NewRational(1, 2)) {
		t.Fatal("1/3 < 1/2 expected")
	}
	if !NewRational(-1, 2).Less(NewRational(-1, 3)) {
		t.Fatal("-1/2 < -1/3 expected")
	}
	if NewRational(2, 4).Less(NewRational(1, 2)) {
		t.Fatal("equal values must not be less")
	}
}

func TestRationalLatex(t *testing.T) {
	cases := []struct {
		r    Rational
		want string
	}{
		{RatInt(3), "3"},
		{RatInt(-3), "-3"},
		{NewRational(1, 2), "\\frac{1}{2}"},
		{NewRational(-3, 2), "-\\frac{3}{2}"},
	}
	for _, c := range cases {
		if got := c.r.Latex(); got != c.want {
			t.Fatalf("Latex(%v) = %q, want %q", c.r, got, c.want)
		}
	}

	if got := NewRational(-1, 2).LatexImag(); got != "-\\frac{I}{2}" {
		t.Fatalf("LatexImag(-1/2) = %q", got)
	}
	if got := RatInt(1).LatexImag(); got != "I" {
		t.Fatalf("LatexImag(1) = %q", got)
	}
	if got := RatInt(3).LatexImag(); got != "3I" {
		t.Fatalf("LatexImag(3) = %q", got)
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := NewComplex(RatInt(1), RatInt(2))
	b := NewComplex(RatInt(3), RatInt(-1))

	if got := a.Mul(b); !got.Equal(NewComplex(RatInt(5), RatInt(5))) {
		t.Fatalf("(1+2I)(3-I) = %v", got)
	}
	if got := a.Mul(b).Div(b); !got.Equal(a) {
		t.Fatalf("division does not invert multiplication: %v", got)
	}
	if got := I[Rational]().Mul(I[Rational]()); !got.Equal(FromInt[Rational](-1)) {
		t.Fatalf("I*I = %v", got)
	}
	if !Zero[Rational]().IsZero() || One[Rational]().IsZero() {
		t.Fatal("zero/one misclassified")
	}
}
