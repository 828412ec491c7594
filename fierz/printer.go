package fierz

import (
	"fmt"
	"strings"

	"dirac-calc/algebra"
	"dirac-calc/symbolic"
)

// Printer renders Fierz expressions and identities as LaTeX, delegating
// tensor and coefficient rendering to the expression printer.
type Printer struct {
	*symbolic.ExprPrinter[algebra.Rational]
}

// NewPrinter builds a printer with the given dummy index template and terms
// per line.
func NewPrinter(dummyIndexName string, lineSize int) *Printer {
	return &Printer{
		ExprPrinter: symbolic.NewExprPrinter[algebra.Rational](dummyIndexName, lineSize),
	}
}

// LatexifyBilinear renders a single spinor bilinear.
func (p *Printer) LatexifyBilinear(b Bilinear, spinor SpinorIndices) string {
	var sb strings.Builder
	sb.WriteString("\\bar{\\psi}_{" + spinor.Bar + "}")

	switch b.ID() {
	case BilVector:
		sb.WriteString(p.LatexifyTensor("\\gamma", b.Indices()))
	case BilTensor:
		sb.WriteString(p.LatexifyTensor("\\sigma", b.Indices()))
	case BilPseudoVector:
		sb.WriteString("\\gamma^5")
		sb.WriteString(p.LatexifyTensor("\\gamma", b.Indices()))
	case BilPseudoScalar:
		sb.WriteString("\\gamma^5")
	}

	sb.WriteString("\\psi_{" + spinor.Ket + "}")
	return sb.String()
}

// LatexifyMultilinear renders a product of bilinears.
func (p *Printer) LatexifyMultilinear(m []Bilinear, spinors []SpinorIndices) (string, error) {
	if len(spinors) < len(m) {
		return "", fmt.Errorf("fierz: %d bilinears but %d spinor index pairs",
			len(m), len(spinors))
	}
	var sb strings.Builder
	for i, b := range m {
		sb.WriteString(p.LatexifyBilinear(b, spinors[i]))
	}
	return sb.String(), nil
}

// LatexifyTerm renders one expression term: the bracketed coefficient
// followed by its bilinears.
func (p *Printer) LatexifyTerm(term Term, spinors []SpinorIndices) ([]symbolic.LatexTerm, error) {
	if term.Coeff.IsZero() {
		return nil, nil
	}

	coeffTerms := p.LatexifyPoly(term.Coeff)
	if len(coeffTerms) > 1 {
		coeffTerms[0].Body = "\\left[" + coeffTerms[0].Body
		coeffTerms[0].Sign = "+"
		coeffTerms[len(coeffTerms)-1].Body += "\\right]"
	}

	tail, err := p.LatexifyMultilinear(term.Factors, spinors)
	if err != nil {
		return nil, err
	}
	if len(coeffTerms) == 0 {
		return nil, nil
	}
	coeffTerms[len(coeffTerms)-1].Body += tail
	return coeffTerms, nil
}

// LatexifyExpression renders a whole expression.
func (p *Printer) LatexifyExpression(e Expression, spinors []SpinorIndices) (string, error) {
	var groups symbolic.TermGroups
	for _, term := range e.Terms {
		terms, err := p.LatexifyTerm(term, spinors)
		if err != nil {
			return "", err
		}
		groups = append(groups, terms)
	}
	return p.LatexifyGroups(groups), nil
}

// LatexifyIdentity renders an identity as an equation in a split
// environment.
func (p *Printer) LatexifyIdentity(identity Identity) (string, error) {
	if len(identity.Left.Terms) == 0 {
		return "", fmt.Errorf("fierz: identity with empty left-hand side")
	}

	var left symbolic.TermGroups
	for _, term := range identity.Left.Terms {
		terms, err := p.LatexifyTerm(term, identity.LeftSpinorIndices)
		if err != nil {
			return "", err
		}
		left = append(left, terms)
	}
	if len(left) > 0 && len(left[0]) == 0 {
		left = symbolic.TermGroups{{{Sign: "=", Body: "0"}}}
	}

	var right symbolic.TermGroups
	for _, term := range identity.Right.Terms {
		terms, err := p.LatexifyTerm(term, identity.RightSpinorIndices)
		if err != nil {
			return "", err
		}
		right = append(right, terms)
	}
	for len(right) > 0 && len(right[0]) == 0 {
		right = right[1:]
	}
	if len(right) == 0 {
		right = symbolic.TermGroups{{{Body: "0"}}}
	}
	right[0][0].Sign = "="

	parts := append(symbolic.TermGroups{}, left...)
	parts = append(parts, right...)

	var sb strings.Builder
	sb.WriteString("\\begin{equation}\n\\begin{split}\n")
	sb.WriteString(p.LatexifyGroups(parts))
	sb.WriteString("\n\\end{split}\n\\end{equation}\n")
	return sb.String(), nil
}
