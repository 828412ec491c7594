package exprgen

import (
	"testing"

	"dirac-calc/symbolic"
)

func TestGeneratorDeterminism(t *testing.T) {
	g1, err := NewGenerator([]byte("seed"))
	if err != nil {
		t.Fatalf("generator: %v", err)
	}
	g2, err := NewGenerator([]byte("seed"))
	if err != nil {
		t.Fatalf("generator: %v", err)
	}
	for i := 0; i < 10; i++ {
		a := g1.Expression(3, 2)
		b := g2.Expression(3, 2)
		if a != b {
			t.Fatalf("same seed diverged:\n%s\n%s", a, b)
		}
	}
}

func TestGeneratorOutputEvaluates(t *testing.T) {
	g, err := NewGenerator([]byte("eval-seed"))
	if err != nil {
		t.Fatalf("generator: %v", err)
	}
	for i := 0; i < 20; i++ {
		expr := g.Expression(2, 3)
		if _, err := symbolic.Eval(expr, symbolic.RationalMode()); err != nil {
			t.Fatalf("generated expression %q failed to evaluate: %v", expr, err)
		}
	}
}

func TestGeneratorChainLength(t *testing.T) {
	g, err := NewGenerator([]byte("len-seed"))
	if err != nil {
		t.Fatalf("generator: %v", err)
	}
	chain := g.Chain(4)
	if chain == "" {
		t.Fatal("empty chain")
	}
	if _, err := symbolic.Eval(chain, symbolic.RationalMode()); err != nil {
		t.Fatalf("chain %q failed to evaluate: %v", chain, err)
	}
}
