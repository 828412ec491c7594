package fierz

import (
	"strings"
	"testing"

	"dirac-calc/algebra"
	"dirac-calc/li"
)

func one() Coeff {
	return li.FromComplex(algebra.One[algebra.Rational]())
}

func tagged(t *testing.T, id, tag int, upper bool) Bilinear {
	t.Helper()
	b, err := TaggedBilinear(id, tag, upper)
	if err != nil {
		t.Fatalf("tagged bilinear: %v", err)
	}
	return b
}

func TestBilinearBasisLimits(t *testing.T) {
	if _, err := NewBilinear(5); err == nil {
		t.Fatal("id 5 must be rejected")
	}
	if _, err := NewBilinear(BilScalar, algebra.UpperIndex(algebra.NameID("\\mu"))); err == nil {
		t.Fatal("scalar bilinear must hold no indices")
	}
	b := tagged(t, BilTensor, 1, true)
	if len(b.Indices()) != 2 || !b.Complete() {
		t.Fatalf("tensor bilinear %+v", b)
	}
}

func TestKernelShapes(t *testing.T) {
	for id := 0; id < 5; id++ {
		b := tagged(t, id, 1, true)
		k, err := Kernel(b)
		if err != nil {
			t.Fatalf("kernel(%d): %v", id, err)
		}
		if len(k.Terms) == 0 {
			t.Fatalf("kernel(%d) empty", id)
		}
	}
}

func TestScalarFierzTransform(t *testing.T) {
	// (S x S) rearranges into the five diagonal bilinear pairs.
	var lhs Expression
	lhs.Terms = append(lhs.Terms, Term{
		Coeff: one(),
		Factors: []Bilinear{
			tagged(t, BilScalar, -1, false),
			tagged(t, BilScalar, -1, true),
		},
	})

	rhs, err := lhs.FierzTransformed(0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if len(rhs.Terms) != 25 {
		t.Fatalf("%d transformed terms, want 25", len(rhs.Terms))
	}

	var nonZero []Term
	for _, term := range rhs.Terms {
		if !term.Coeff.IsZero() {
			nonZero = append(nonZero, term)
		}
	}
	if len(nonZero) != 5 {
		t.Fatalf("%d nonzero transformed terms, want 5", len(nonZero))
	}

	// The scalar-scalar term carries the weight -1/4.
	for _, term := range nonZero {
		if term.Factors[0].ID() == BilScalar && term.Factors[1].ID() == BilScalar {
			if len(term.Coeff.Terms) != 1 {
				t.Fatalf("scalar pair coefficient %+v", term.Coeff.Terms)
			}
			want := algebra.Real(algebra.NewRational(-1, 4))
			if !term.Coeff.Terms[0].Coeff.Equal(want) {
				t.Fatalf("scalar pair coefficient %v, want -1/4",
					term.Coeff.Terms[0].Coeff)
			}
			return
		}
	}
	t.Fatal("scalar-scalar pair missing from the transform")
}

func TestFierzTransformShortTermPassThrough(t *testing.T) {
	var e Expression
	e.Terms = append(e.Terms, Term{
		Coeff:   one(),
		Factors: []Bilinear{tagged(t, BilScalar, -1, true)},
	})
	res, err := e.FierzTransformed(0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if len(res.Terms) != 1 || res.Terms[0].Factors[0].ID() != BilScalar {
		t.Fatalf("single-factor term must pass through, got %+v", res.Terms)
	}
}

func TestEquivalenceFactorTensorSwap(t *testing.T) {
	a := algebra.UpperIndex(algebra.NameID("\\mu"))
	b := algebra.UpperIndex(algebra.NameID("\\nu"))
	t1, err := NewBilinear(BilTensor, a, b)
	if err != nil {
		t.Fatalf("bilinear: %v", err)
	}
	t2, err := NewBilinear(BilTensor, b, a)
	if err != nil {
		t.Fatalf("bilinear: %v", err)
	}

	factor, ok := equivalenceFactor(Multilinear{t1}, Multilinear{t2})
	if !ok {
		t.Fatal("swapped tensor bilinears must be equivalent")
	}
	if !factor.Equal(algebra.FromInt[algebra.Rational](-1)) {
		t.Fatalf("swap factor %v, want -1", factor)
	}
}

func TestCollectTermsMergesDuplicates(t *testing.T) {
	mk := func() Term {
		return Term{
			Coeff: one(),
			Factors: []Bilinear{
				tagged(t, BilScalar, -1, false),
				tagged(t, BilScalar, -1, true),
			},
		}
	}
	var e Expression
	e.Terms = append(e.Terms, mk(), mk())

	res, err := CollectTerms(e)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(res.Terms) != 1 {
		t.Fatalf("%d collected terms, want 1", len(res.Terms))
	}
	c := res.Terms[0].Coeff
	if len(c.Terms) != 1 || !c.Terms[0].Coeff.Equal(algebra.FromInt[algebra.Rational](2)) {
		t.Fatalf("collected coefficient %+v, want 2", c.Terms)
	}
}

func TestContractedIndices(t *testing.T) {
	lo := tagged(t, BilVector, 3, false)
	hi := tagged(t, BilVector, 3, true)
	term := Term{Coeff: one(), Factors: []Bilinear{lo, hi}}
	ids := contractedIndices(term)
	if len(ids) != 1 {
		t.Fatalf("contracted ids %v, want one", ids)
	}
	if !ids[0].IsTag() || ids[0].Tag().Gen != 3 {
		t.Fatalf("contracted id %v", ids[0])
	}
}

func TestPrinterIdentity(t *testing.T) {
	var lhs Expression
	lhs.Terms = append(lhs.Terms, Term{
		Coeff: one(),
		Factors: []Bilinear{
			tagged(t, BilScalar, -1, false),
			tagged(t, BilScalar, -1, true),
		},
	})
	rhs, err := lhs.FierzTransformed(0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	identity := Identity{
		Left:  lhs,
		LeftSpinorIndices: []SpinorIndices{
			{Bar: "i_1", Ket: "i_2"}, {Bar: "i_2", Ket: "i_1"},
		},
		Right: rhs,
		RightSpinorIndices: []SpinorIndices{
			{Bar: "i_1", Ket: "i_1"}, {Bar: "i_2", Ket: "i_2"},
		},
	}

	prn := NewPrinter("\\lambda", 3)
	tex, err := prn.LatexifyIdentity(identity)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	for _, want := range []string{
		"\\begin{equation}", "\\begin{split}", "\\bar{\\psi}_{i_1}", "=",
	} {
		if !strings.Contains(tex, want) {
			t.Fatalf("identity %q missing %q", tex, want)
		}
	}
}
