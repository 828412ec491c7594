package li

import (
	"errors"
	"testing"

	"dirac-calc/algebra"
)

type rat = algebra.Rational

func up(name string) algebra.Index {
	return algebra.UpperIndex(algebra.NameID(name))
}

func down(name string) algebra.Index {
	return algebra.LowerIndex(algebra.NameID(name))
}

func scalarCoeff(t *testing.T, p TensorPolynomial[rat]) algebra.Complex[rat] {
	t.Helper()
	if len(p.Terms) != 1 || len(p.Terms[0].Factors) != 0 {
		t.Fatalf("not a scalar polynomial: %+v", p.Terms)
	}
	return p.Terms[0].Coeff
}

func TestMetricTrace(t *testing.T) {
	p := EtaPoly[rat](up("\\mu"), down("\\mu"))
	if err := p.Canonicalize(); err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	if c := scalarCoeff(t, p); !c.Equal(algebra.FromInt[rat](4)) {
		t.Fatalf("eta^mu_mu = %v, want 4", c)
	}
}

func TestMetricContraction(t *testing.T) {
	// eta^{mu alpha} eta_{alpha nu} contracts to delta^mu_nu.
	p, err := EtaPoly[rat](up("\\mu"), up("\\alpha")).
		Mul(EtaPoly[rat](down("\\alpha"), down("\\nu")))
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	if len(p.Terms) != 1 || len(p.Terms[0].Factors) != 1 {
		t.Fatalf("contraction left %+v", p.Terms)
	}
	factor := p.Terms[0].Factors[0]
	if factor.ID() != Delta {
		t.Fatalf("contracted id = %s, want delta", factor.ID())
	}
	for _, idx := range factor.Indices() {
		if idx.ID != algebra.NameID("\\mu") && idx.ID != algebra.NameID("\\nu") {
			t.Fatalf("unexpected surviving index %v", idx)
		}
	}
}

func TestContractionClosure(t *testing.T) {
	// After canonicalization no dual pair may survive between metric factors.
	p, err := EtaPoly[rat](up("\\mu"), up("\\alpha")).
		Mul(EtaPoly[rat](down("\\alpha"), down("\\beta")))
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	q, err := p.Mul(EtaPoly[rat](up("\\beta"), up("\\nu")))
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	for _, term := range q.Terms {
		for i, f1 := range term.Factors {
			for _, idx1 := range f1.Indices() {
				for j, f2 := range term.Factors {
					if i == j {
						continue
					}
					for _, idx2 := range f2.Indices() {
						if idx1.Dual(idx2) {
							t.Fatalf("dual pair %v survived in %+v", idx1, term)
						}
					}
				}
			}
		}
	}
}

func TestEpsilonSquareContraction(t *testing.T) {
	// eps_{mu nu rho sigma} eps^{mu nu rho sigma} = -24.
	lower := EpsilonPoly[rat](down("\\mu"), down("\\nu"), down("\\rho"), down("\\sigma"))
	upper := EpsilonPoly[rat](up("\\mu"), up("\\nu"), up("\\rho"), up("\\sigma"))
	p, err := lower.Mul(upper)
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	if c := scalarCoeff(t, p); !c.Equal(algebra.FromInt[rat](-24)) {
		t.Fatalf("eps*eps = %v, want -24", c)
	}
}

func TestEpsilonLinearity(t *testing.T) {
	// No canonical term may hold two epsilon factors.
	lower := EpsilonPoly[rat](down("a"), down("b"), down("c"), down("d"))
	upper := EpsilonPoly[rat](up("e"), up("f"), up("g"), up("h"))
	p, err := lower.Mul(upper)
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	for _, term := range p.Terms {
		count := 0
		for _, f := range term.Factors {
			if f.ID() == Epsilon {
				count++
			}
		}
		if count > 1 {
			t.Fatalf("term with %d epsilon factors: %+v", count, term)
		}
	}
}

func TestEpsilonRepeatedIndexVanishes(t *testing.T) {
	p := EpsilonPoly[rat](up("a"), up("a"), up("b"), up("c"))
	if err := p.Canonicalize(); err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	if len(p.Terms) != 0 {
		t.Fatalf("eps with a repeated index must vanish, got %+v", p.Terms)
	}
}

func TestMergeSymmetricMetric(t *testing.T) {
	p, err := EtaPoly[rat](up("\\mu"), up("\\nu")).
		Add(EtaPoly[rat](up("\\nu"), up("\\mu")))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c := p.Terms[0].Coeff; len(p.Terms) != 1 || !c.Equal(algebra.FromInt[rat](2)) {
		t.Fatalf("eta + eta(swapped) = %+v, want one term with coefficient 2", p.Terms)
	}
}

func TestMergeEpsilonParity(t *testing.T) {
	// eps(a,b,c,d) + eps(b,a,c,d) = 0 by antisymmetry.
	p, err := EpsilonPoly[rat](up("a"), up("b"), up("c"), up("d")).
		Add(EpsilonPoly[rat](up("b"), up("a"), up("c"), up("d")))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !p.IsZero() {
		t.Fatalf("antisymmetric sum must vanish, got %+v", p.Terms)
	}
}

func TestMalformedTensorRejected(t *testing.T) {
	short, err := NewTensor(Epsilon, up("a"), up("b"))
	if err != nil {
		t.Fatalf("incomplete epsilon must be constructible: %v", err)
	}
	full := EpsilonTensor(up("c"), up("d"), up("e"), up("f"))

	var p TensorPolynomial[rat]
	p.Terms = append(p.Terms, Term[rat]{
		Coeff:   algebra.One[rat](),
		Factors: []Tensor{short, full},
	})
	if err := p.Canonicalize(); !errors.Is(err, algebra.ErrMalformedTensor) {
		t.Fatalf("incomplete epsilon in a square: got %v", err)
	}
}

func TestTensorCompleteness(t *testing.T) {
	// Every tensor the canonicalizer emits is complete.
	lower := EpsilonPoly[rat](down("\\mu"), down("\\nu"), down("\\rho"), down("\\sigma"))
	upper := EpsilonPoly[rat](up("\\mu"), up("\\nu"), up("\\alpha"), up("\\beta"))
	p, err := lower.Mul(upper)
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	for _, term := range p.Terms {
		for _, f := range term.Factors {
			if !f.Complete() {
				t.Fatalf("incomplete canonical factor %v", f)
			}
		}
	}
}

func BenchmarkEpsilonSquare(b *testing.B) {
	lower := EpsilonPoly[rat](down("\\mu"), down("\\nu"), down("\\rho"), down("\\sigma"))
	upper := EpsilonPoly[rat](up("\\mu"), up("\\nu"), up("\\rho"), up("\\sigma"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lower.Mul(upper); err != nil {
			b.Fatal(err)
		}
	}
}
