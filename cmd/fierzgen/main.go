// Command fierzgen generates fourth- and sixth-order Fierz identities and
// writes them as a standalone LaTeX document.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dirac-calc/algebra"
	"dirac-calc/fierz"
	"dirac-calc/li"
)

func one() fierz.Coeff {
	return li.FromComplex(algebra.One[algebra.Rational]())
}

func mustBilinear(id int, indices ...algebra.Index) fierz.Bilinear {
	b, err := fierz.NewBilinear(id, indices...)
	if err != nil {
		log.Fatalf("fierzgen: %v", err)
	}
	return b
}

func mustTagged(id, tag int, upper bool) fierz.Bilinear {
	b, err := fierz.TaggedBilinear(id, tag, upper)
	if err != nil {
		log.Fatalf("fierzgen: %v", err)
	}
	return b
}

// fourthOrder writes the five fourth-order identities.
func fourthOrder(out *os.File) {
	fmt.Fprintln(out, "\\section{Fourth order Fierz identities}")

	leftIndices := []fierz.SpinorIndices{{Bar: "i_1", Ket: "i_2"}, {Bar: "i_2", Ket: "i_1"}}
	rightIndices := []fierz.SpinorIndices{{Bar: "i_1", Ket: "i_1"}, {Bar: "i_2", Ket: "i_2"}}

	for i := 0; i < 5; i++ {
		var lhs fierz.Expression
		lhs.Terms = append(lhs.Terms, fierz.Term{
			Coeff:   one(),
			Factors: []fierz.Bilinear{mustTagged(i, -1, false), mustTagged(i, -1, true)},
		})

		rhs, err := lhs.FierzTransformed(0)
		if err != nil {
			log.Fatalf("fierzgen: transform: %v", err)
		}

		identity := fierz.Identity{
			Left:               lhs,
			LeftSpinorIndices:  leftIndices,
			Right:              rhs,
			RightSpinorIndices: rightIndices,
		}

		prn := fierz.NewPrinter("\\lambda", 3)
		tex, err := prn.LatexifyIdentity(identity)
		if err != nil {
			log.Fatalf("fierzgen: print: %v", err)
		}
		fmt.Fprintln(out, tex)
	}
}

// hexaBasis builds the eleven sixth-order basis expressions.
func hexaBasis() []fierz.Expression {
	basis := make([]fierz.Expression, 11)
	for i := 0; i < 5; i++ {
		basis[i].Terms = append(basis[i].Terms, fierz.Term{
			Coeff: one(),
			Factors: []fierz.Bilinear{
				mustTagged(fierz.BilScalar, -1, false),
				mustTagged(i, -1, false),
				mustTagged(i, -1, true),
			},
		})
	}

	lower := make([]algebra.Index, 4)
	upper := make([]algebra.Index, 4)
	for i, name := range []string{"\\kappa", "\\lambda", "\\mu", "\\nu"} {
		lower[i] = algebra.LowerIndex(algebra.NameID(name))
		upper[i] = algebra.UpperIndex(algebra.NameID(name))
	}

	basis[5].Terms = append(basis[5].Terms, fierz.Term{
		Coeff: one(),
		Factors: []fierz.Bilinear{
			mustBilinear(fierz.BilPseudoScalar),
			mustBilinear(fierz.BilVector, lower[0]),
			mustBilinear(fierz.BilPseudoVector, upper[0]),
		},
	})
	basis[6].Terms = append(basis[6].Terms, fierz.Term{
		Coeff: one(),
		Factors: []fierz.Bilinear{
			mustBilinear(fierz.BilVector, lower[1]),
			mustBilinear(fierz.BilVector, lower[2]),
			mustBilinear(fierz.BilTensor, upper[1], upper[2]),
		},
	})
	basis[7].Terms = append(basis[7].Terms, fierz.Term{
		Coeff: one(),
		Factors: []fierz.Bilinear{
			mustBilinear(fierz.BilPseudoVector, lower[1]),
			mustBilinear(fierz.BilPseudoVector, lower[2]),
			mustBilinear(fierz.BilTensor, upper[1], upper[2]),
		},
	})

	eps := li.FromTensor[algebra.Rational](li.EpsilonTensor(lower[0], lower[1], lower[2], lower[3]))
	basis[8].Terms = append(basis[8].Terms, fierz.Term{
		Coeff: eps,
		Factors: []fierz.Bilinear{
			mustBilinear(fierz.BilVector, upper[0]),
			mustBilinear(fierz.BilPseudoVector, upper[1]),
			mustBilinear(fierz.BilTensor, upper[2], upper[3]),
		},
	})
	basis[9].Terms = append(basis[9].Terms, fierz.Term{
		Coeff: eps,
		Factors: []fierz.Bilinear{
			mustBilinear(fierz.BilPseudoScalar),
			mustBilinear(fierz.BilTensor, upper[0], upper[1]),
			mustBilinear(fierz.BilTensor, upper[2], upper[3]),
		},
	})
	basis[10].Terms = append(basis[10].Terms, fierz.Term{
		Coeff: one(),
		Factors: []fierz.Bilinear{
			mustBilinear(fierz.BilTensor, lower[0], upper[1]),
			mustBilinear(fierz.BilTensor, lower[1], upper[2]),
			mustBilinear(fierz.BilTensor, lower[2], upper[0]),
		},
	})
	return basis
}

// sixthOrder writes the three rearrangements of every basis expression.
func sixthOrder(out *os.File) {
	fmt.Fprintln(out, "\\section{Sixth-order Fierz identities}")

	leftIndices := [][]fierz.SpinorIndices{
		{{Bar: "i_1", Ket: "i_1"}, {Bar: "i_2", Ket: "i_3"}, {Bar: "i_3", Ket: "i_2"}},
		{{Bar: "i_1", Ket: "i_2"}, {Bar: "i_2", Ket: "i_1"}, {Bar: "i_3", Ket: "i_3"}},
		{{Bar: "i_1", Ket: "i_2"}, {Bar: "i_2", Ket: "i_3"}, {Bar: "i_3", Ket: "i_1"}},
	}
	rightIndices := []fierz.SpinorIndices{
		{Bar: "i_1", Ket: "i_1"}, {Bar: "i_2", Ket: "i_2"}, {Bar: "i_3", Ket: "i_3"},
	}

	for _, expr := range hexaBasis() {
		rights := make([]fierz.Expression, 3)

		r0, err := expr.FierzTransformed(1)
		if err != nil {
			log.Fatalf("fierzgen: transform: %v", err)
		}
		if rights[0], err = fierz.CollectTerms(r0); err != nil {
			log.Fatalf("fierzgen: collect: %v", err)
		}

		r1, err := expr.FierzTransformed(0)
		if err != nil {
			log.Fatalf("fierzgen: transform: %v", err)
		}
		if rights[1], err = fierz.CollectTerms(r1); err != nil {
			log.Fatalf("fierzgen: collect: %v", err)
		}

		r2, err := r1.FierzTransformed(1)
		if err != nil {
			log.Fatalf("fierzgen: transform: %v", err)
		}
		if rights[2], err = fierz.CollectTerms(r2); err != nil {
			log.Fatalf("fierzgen: collect: %v", err)
		}

		for i := 0; i < 3; i++ {
			identity := fierz.Identity{
				Left:               expr,
				LeftSpinorIndices:  leftIndices[i],
				Right:              rights[i],
				RightSpinorIndices: rightIndices,
			}
			prn := fierz.NewPrinter("\\sigma", 2)
			tex, err := prn.LatexifyIdentity(identity)
			if err != nil {
				log.Fatalf("fierzgen: print: %v", err)
			}
			fmt.Fprintln(out, tex)
		}
	}
}

func main() {
	outPath := flag.String("o", "fierz.tex", "output path for the LaTeX document")
	flag.Parse()

	fmt.Println("Sixth-order Fierz identities generator")

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("fierzgen: %v", err)
	}
	defer out.Close()

	fmt.Fprintln(out, "\\documentclass[aps,prd,a4paper]{revtex4-2}")
	fmt.Fprintln(out, "\\usepackage[T1]{fontenc}")
	fmt.Fprintln(out, "\\usepackage{underscore}")
	fmt.Fprintln(out, "\\usepackage{amsmath}")
	fmt.Fprintln(out, "\\usepackage{amssymb}")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "\\begin{document}")

	fourthOrder(out)
	sixthOrder(out)

	fmt.Fprintln(out, "\\end{document}")
	fmt.Printf("identities written to %s\n", *outPath)
}
