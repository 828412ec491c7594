// Package numeric evaluates gamma-matrix expressions in the explicit 4x4
// Dirac representation over complex128. It exists to cross-check the
// symbolic kernel: a canonical expression evaluated at concrete index values
// must equal the matrix product it came from. Matrix products go through the
// complex BLAS.
package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"

	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
	"dirac-calc/li"
)

// Matrix is a dense 4x4 complex matrix.
type Matrix = cblas128.General

// NewMatrix returns a zero 4x4 matrix.
func NewMatrix() Matrix {
	return Matrix{Rows: 4, Cols: 4, Stride: 4, Data: make([]complex128, 16)}
}

// Identity returns the unit matrix.
func Identity() Matrix {
	m := NewMatrix()
	for i := 0; i < 4; i++ {
		m.Data[i*4+i] = 1
	}
	return m
}

// Eta is the metric diag(+,-,-,-); identical with both indices up or down.
func Eta(mu, nu int) float64 {
	if mu != nu {
		return 0
	}
	if mu == 0 {
		return 1
	}
	return -1
}

// EpsLower is the Levi-Civita symbol with all indices lowered and the
// convention eps_{0123} = +1, the orientation the structure matrices encode
// together with gamma^5 = i gamma^0 gamma^1 gamma^2 gamma^3.
func EpsLower(a, b, c, d int) int {
	idx := [4]int{a, b, c, d}
	sign := 1
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if idx[i] == idx[j] {
				return 0
			}
			if idx[i] > idx[j] {
				idx[i], idx[j] = idx[j], idx[i]
				sign = -sign
			}
		}
	}
	return sign
}

// GammaUpper returns gamma^mu in the Dirac representation.
func GammaUpper(mu int) Matrix {
	m := NewMatrix()
	set := func(r, c int, v complex128) { m.Data[r*4+c] = v }
	switch mu {
	case 0:
		set(0, 0, 1)
		set(1, 1, 1)
		set(2, 2, -1)
		set(3, 3, -1)
	case 1:
		set(0, 3, 1)
		set(1, 2, 1)
		set(2, 1, -1)
		set(3, 0, -1)
	case 2:
		set(0, 3, -1i)
		set(1, 2, 1i)
		set(2, 1, 1i)
		set(3, 0, -1i)
	case 3:
		set(0, 2, 1)
		set(1, 3, -1)
		set(2, 0, -1)
		set(3, 1, 1)
	}
	return m
}

// Gamma5 returns gamma^5 = i gamma^0 gamma^1 gamma^2 gamma^3.
func Gamma5() Matrix {
	m := NewMatrix()
	m.Data[0*4+2] = 1
	m.Data[1*4+3] = 1
	m.Data[2*4+0] = 1
	m.Data[3*4+1] = 1
	return m
}

// Mul multiplies two matrices.
func Mul(a, b Matrix) Matrix {
	c := NewMatrix()
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 0, c)
	return c
}

// AddScaled accumulates dst += alpha*a entrywise.
func AddScaled(dst Matrix, alpha complex128, a Matrix) {
	for i := range dst.Data {
		dst.Data[i] += alpha * a.Data[i]
	}
}

// Scale returns alpha*a.
func Scale(alpha complex128, a Matrix) Matrix {
	m := NewMatrix()
	for i := range a.Data {
		m.Data[i] = alpha * a.Data[i]
	}
	return m
}

// Sub returns a - b.
func Sub(a, b Matrix) Matrix {
	m := NewMatrix()
	for i := range a.Data {
		m.Data[i] = a.Data[i] - b.Data[i]
	}
	return m
}

// SigmaUpper returns sigma^{mu nu} = (i/2)[gamma^mu, gamma^nu] with both
// indices upper.
func SigmaUpper(mu, nu int) Matrix {
	comm := Sub(Mul(GammaUpper(mu), GammaUpper(nu)), Mul(GammaUpper(nu), GammaUpper(mu)))
	return Scale(0.5i, comm)
}

// Assignment maps index identifiers to concrete values in 0..3.
type Assignment map[algebra.IndexID]int

// with returns a copy of the assignment extended by one binding.
func (a Assignment) with(id algebra.IndexID, v int) Assignment {
	res := make(Assignment, len(a)+1)
	for k, val := range a {
		res[k] = val
	}
	res[id] = v
	return res
}

// EvalTensor evaluates a Lorentz-invariant basis tensor at concrete index
// values. Raised epsilon indices pick up metric signs.
func EvalTensor(t li.Tensor, assign Assignment) (complex128, error) {
	idx := t.Indices()
	vals := make([]int, len(idx))
	for i, index := range idx {
		v, ok := assign[index.ID]
		if !ok {
			return 0, fmt.Errorf("numeric: unassigned index %v", index.ID)
		}
		vals[i] = v
	}

	switch t.ID() {
	case li.Eta:
		if len(vals) != 2 {
			return 0, fmt.Errorf("numeric: metric needs two indices: %w",
				algebra.ErrMalformedTensor)
		}
		return complex(Eta(vals[0], vals[1]), 0), nil
	case li.Delta:
		if len(vals) != 2 {
			return 0, fmt.Errorf("numeric: delta needs two indices: %w",
				algebra.ErrMalformedTensor)
		}
		if vals[0] == vals[1] {
			return 1, nil
		}
		return 0, nil
	case li.Epsilon:
		if len(vals) != 4 {
			return 0, fmt.Errorf("numeric: epsilon needs four indices: %w",
				algebra.ErrMalformedTensor)
		}
		v := float64(EpsLower(vals[0], vals[1], vals[2], vals[3]))
		for i, index := range idx {
			if index.Upper {
				v *= Eta(vals[i], vals[i])
			}
		}
		return complex(v, 0), nil
	}
	return 0, fmt.Errorf("numeric: %s: %w", t.ID(), algebra.ErrUnknownBasisID)
}

// EvalPoly evaluates a Lorentz-invariant polynomial at concrete index
// values.
func EvalPoly[S algebra.Scalar[S]](p li.TensorPolynomial[S], assign Assignment) (complex128, error) {
	var sum complex128
	for _, term := range p.Terms {
		v := complex(term.Coeff.Re.Float(), term.Coeff.Im.Float())
		for _, factor := range term.Factors {
			f, err := EvalTensor(factor, assign)
			if err != nil {
				return 0, err
			}
			v *= f
		}
		sum += v
	}
	return sum, nil
}

// EvalCanonical evaluates a canonical expression to a 4x4 matrix. The
// assignment binds the expression's user-visible free indices; the canonical
// free indices of the gamma, sigma and gamma5*gamma components are summed
// over internally.
func EvalCanonical[S algebra.Scalar[S]](e *gammaalg.CanonicalExpr[S], assign Assignment) (Matrix, error) {
	res := NewMatrix()

	c0, err := EvalPoly(e.Coeffs[0], assign)
	if err != nil {
		return Matrix{}, err
	}
	AddScaled(res, c0, Identity())

	for v := 0; v < 4; v++ {
		c, err := EvalPoly(e.Coeffs[1], assign.with(e.VectorIndex.ID, v))
		if err != nil {
			return Matrix{}, err
		}
		AddScaled(res, c, GammaUpper(v))
	}

	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			sub := assign.with(e.TensorIndices[0].ID, a).with(e.TensorIndices[1].ID, b)
			c, err := EvalPoly(e.Coeffs[2], sub)
			if err != nil {
				return Matrix{}, err
			}
			AddScaled(res, c, SigmaUpper(a, b))
		}
	}

	g5 := Gamma5()
	for v := 0; v < 4; v++ {
		c, err := EvalPoly(e.Coeffs[3], assign.with(e.PseudoVectorIndex.ID, v))
		if err != nil {
			return Matrix{}, err
		}
		AddScaled(res, c, Mul(g5, GammaUpper(v)))
	}

	c4, err := EvalPoly(e.Coeffs[4], assign)
	if err != nil {
		return Matrix{}, err
	}
	AddScaled(res, c4, g5)

	return res, nil
}
