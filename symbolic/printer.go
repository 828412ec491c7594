package symbolic

import (
	"strconv"
	"strings"

	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
	"dirac-calc/li"
)

// LaTeX fragments used by the printer.
const (
	leftSquareBracket  = "\\left["
	rightSquareBracket = "\\right]"
	leftBracket        = "\\left("
	rightBracket       = "\\right)"
)

// LatexTerm is the rendering of a single polynomial term: a sign that may be
// prepended ("+" or empty) and the term body.
type LatexTerm struct {
	Sign string
	Body string
}

// TermGroups collects the rendered terms of several polynomials.
type TermGroups [][]LatexTerm

// ExprPrinter converts canonical expressions to LaTeX. Non-string index
// identifiers are mapped to numbered dummy names; the table grows as indices
// are encountered and is the only mutable state.
type ExprPrinter[S algebra.Scalar[S]] struct {
	dummyIndexName string
	lineSize       int
	indexTagMap    map[algebra.IndexTag]string
}

// NewExprPrinter builds a printer. dummyIndexName is the template for dummy
// indices (the first tag encountered prints as name_{1} and so on). When
// lineSize is non-zero the printer inserts a LaTeX line break after every
// lineSize terms, as if inside a split environment.
func NewExprPrinter[S algebra.Scalar[S]](dummyIndexName string, lineSize int) *ExprPrinter[S] {
	return &ExprPrinter[S]{
		dummyIndexName: dummyIndexName,
		lineSize:       lineSize,
		indexTagMap:    make(map[algebra.IndexTag]string),
	}
}

// MapIndexID renders an index identifier: user labels print as themselves,
// dummy tags through the numbered-name table.
func (p *ExprPrinter[S]) MapIndexID(id algebra.IndexID) string {
	if !id.IsTag() {
		return id.Name()
	}
	tag := id.Tag()
	if s, ok := p.indexTagMap[tag]; ok {
		return s
	}
	s := p.dummyIndexName + "_{" + strconv.Itoa(len(p.indexTagMap)+1) + "}"
	p.indexTagMap[tag] = s
	return s
}

// LatexifyTensor renders a tensor head with its indices, concatenating
// adjacent indices of equal position into shared sub/superscript groups.
func (p *ExprPrinter[S]) LatexifyTensor(head string, indices []algebra.Index) string {
	type fragment struct {
		upper bool
		body  string
	}
	var frags []fragment
	for _, idx := range indices {
		if len(frags) == 0 || frags[len(frags)-1].upper != idx.Upper {
			frags = append(frags, fragment{upper: idx.Upper})
		}
		frags[len(frags)-1].body += p.MapIndexID(idx.ID)
	}

	value := head
	for i, frag := range frags {
		if i > 0 {
			value = "{" + value + "}"
		}
		mark := "_"
		if frag.upper {
			mark = "^"
		}
		value += mark + "{" + frag.body + "}"
	}
	return value
}

// latexifyComplex renders a complex coefficient.
func (p *ExprPrinter[S]) latexifyComplex(c algebra.Complex[S]) string {
	hasReal := !c.Re.IsZero()
	hasImag := !c.Im.IsZero()

	var b strings.Builder
	if hasReal {
		b.WriteString(c.Re.Latex())
		if c.Im.Sign() > 0 {
			b.WriteString(" + ")
		} else if c.Im.Sign() < 0 {
			b.WriteString(" - ")
		}
	}
	if hasImag {
		im := c.Im
		if hasReal && im.Sign() < 0 {
			im = im.Neg()
		}
		b.WriteString(im.LatexImag())
	}
	return b.String()
}

// signOf returns the sign fragment prepended to a term in a sum: "+" when
// the leading coefficient renders without its own minus, empty otherwise.
func signOf[S algebra.Scalar[S]](c algebra.Complex[S]) string {
	reSign, imSign := c.Re.Sign(), c.Im.Sign()
	switch {
	case reSign != 0 && imSign != 0:
		return "+"
	case imSign == 0:
		if reSign > 0 {
			return "+"
		}
		return ""
	default:
		if imSign > 0 {
			return "+"
		}
		return ""
	}
}

// LatexifyPoly renders a Lorentz-invariant polynomial term by term.
func (p *ExprPrinter[S]) LatexifyPoly(poly li.TensorPolynomial[S]) []LatexTerm {
	one := algebra.One[S]()
	var terms []LatexTerm
	for _, term := range poly.Terms {
		if term.Coeff.IsZero() {
			continue
		}

		var body strings.Builder
		for _, factor := range term.Factors {
			body.WriteString(p.LatexifyTensor(factor.ID(), factor.Indices()))
		}

		lt := LatexTerm{Sign: signOf(term.Coeff), Body: body.String()}
		switch {
		case term.Coeff.Equal(one):
		case term.Coeff.Equal(one.Neg()):
			lt.Body = "-" + lt.Body
		default:
			coeff := p.latexifyComplex(term.Coeff)
			if !term.Coeff.Re.IsZero() && !term.Coeff.Im.IsZero() {
				coeff = leftBracket + coeff + rightBracket
			}
			lt.Body = coeff + lt.Body
		}
		terms = append(terms, lt)
	}
	return terms
}

// JoinTerms concatenates rendered terms with their signs.
func JoinTerms(latexTerms []LatexTerm) string {
	var b strings.Builder
	first := true
	for _, term := range latexTerms {
		if term.Body == "" {
			continue
		}
		if !first {
			b.WriteString(" " + term.Sign + " ")
		}
		first = false
		b.WriteString(term.Body)
	}
	return b.String()
}

// Latexify renders a canonical expression.
func (p *ExprPrinter[S]) Latexify(expr *gammaalg.CanonicalExpr[S]) string {
	var unit S
	if expr.IsZero() {
		return "0"
	}
	if expr.IsScalar(unit.FromInt(1)) {
		return "1"
	}
	if expr.IsScalar(unit.FromInt(-1)) {
		return "-1"
	}

	groups := TermGroups{
		p.LatexifyPoly(expr.Coeffs[0]),
		p.LatexifyPoly(expr.Coeffs[1]),
		p.LatexifyPoly(expr.Coeffs[2]),
		p.LatexifyPoly(expr.Coeffs[3]),
		p.LatexifyPoly(expr.Coeffs[4]),
	}

	// Coefficients with several terms go inside square brackets.
	for i := 1; i < 5; i++ {
		if len(groups[i]) > 1 {
			groups[i][0].Body = leftSquareBracket + groups[i][0].Body
			groups[i][0].Sign = "+"
			groups[i][len(groups[i])-1].Body += rightSquareBracket
		}
	}

	if len(groups[1]) > 0 {
		groups[1][len(groups[1])-1].Body +=
			p.LatexifyTensor("\\gamma", []algebra.Index{expr.VectorIndex})
	}
	if len(groups[2]) > 0 {
		groups[2][len(groups[2])-1].Body +=
			p.LatexifyTensor("\\sigma", expr.TensorIndices[:])
	}
	if len(groups[3]) > 0 {
		groups[3][len(groups[3])-1].Body += "\\gamma^5" +
			p.LatexifyTensor("\\gamma", []algebra.Index{expr.PseudoVectorIndex})
	}
	if len(groups[4]) > 0 {
		groups[4][len(groups[4])-1].Body += "\\gamma^5"
	}

	return p.LatexifyGroups(groups)
}

// LatexifyGroups joins term groups, inserting line breaks per the printer's
// line size.
func (p *ExprPrinter[S]) LatexifyGroups(groups TermGroups) string {
	var all []LatexTerm
	termCount := 0
	for i := range groups {
		for j := range groups[i] {
			term := groups[i][j]

			if p.lineSize > 0 {
				if termCount == 0 {
					term.Body = "&" + term.Body
				} else if termCount%p.lineSize == 0 {
					lineBreak := "\\\\\n&"
					if j > 0 && i > 0 {
						lineBreak = "\\right.\\\\\n&\\left."
					}
					if term.Sign == "" {
						term.Body = lineBreak + term.Body
					} else {
						term.Body = lineBreak + term.Sign + term.Body
					}
				}
			}

			all = append(all, term)
			termCount++
		}
	}

	if len(all) == 0 {
		return "0"
	}
	return JoinTerms(all)
}
