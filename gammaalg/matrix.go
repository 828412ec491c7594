package gammaalg

import (
	"dirac-calc/algebra"
	"dirac-calc/li"
	"dirac-calc/measure"
)

// Matrix is a 5x5 matrix over Lorentz-invariant polynomials. The three
// constructors below produce the structure matrices of left multiplication by
// gamma, sigma and gamma5 in the Dirac basis {1, gamma, sigma, gamma5*gamma,
// gamma5}; row and column dummy indices are tagged with the left and right
// generation numbers so that distinct factors of a product never share
// dummies.
type Matrix[S algebra.Scalar[S]] [5][5]li.TensorPolynomial[S]

// Vector is a column over Lorentz-invariant polynomials.
type Vector[S algebra.Scalar[S]] [5]li.TensorPolynomial[S]

// metricTerm builds a single-term polynomial: coeff times a product of
// metrics contracting the given index pairs. The result is canonical by
// construction since row and column tags never produce dual pairs.
func metricTerm[S algebra.Scalar[S]](coeff algebra.Complex[S], pairs ...[2]algebra.Index) li.TensorPolynomial[S] {
	t := li.Term[S]{Coeff: coeff}
	for _, p := range pairs {
		t.Factors = append(t.Factors, li.MetricTensor(p[0], p[1]))
	}
	var res li.TensorPolynomial[S]
	res.Terms = append(res.Terms, t)
	return res
}

// epsTerm builds coeff times a Levi-Civita symbol.
func epsTerm[S algebra.Scalar[S]](coeff algebra.Complex[S], kappa, lambda, mu, nu algebra.Index) li.TensorPolynomial[S] {
	var res li.TensorPolynomial[S]
	res.Terms = append(res.Terms, li.Term[S]{
		Coeff:   coeff,
		Factors: []li.Tensor{li.EpsilonTensor(kappa, lambda, mu, nu)},
	})
	return res
}

func join[S algebra.Scalar[S]](ps ...li.TensorPolynomial[S]) li.TensorPolynomial[S] {
	var res li.TensorPolynomial[S]
	for _, p := range ps {
		res.Terms = append(res.Terms, p.Terms...)
	}
	return res
}

type tagIndices struct {
	nu, nu1, nu2       algebra.Index
	lambda, lam1, lam2 algebra.Index
}

func tagsFor(left, right int) tagIndices {
	return tagIndices{
		nu:     algebra.TagIndex(right, 0, true),
		nu1:    algebra.TagIndex(right, 1, true),
		nu2:    algebra.TagIndex(right, 2, true),
		lambda: algebra.TagIndex(left, 0, false),
		lam1:   algebra.TagIndex(left, 1, false),
		lam2:   algebra.TagIndex(left, 2, false),
	}
}

// GammaMatrix returns the structure matrix of left multiplication by
// gamma^mu.
func GammaMatrix[S algebra.Scalar[S]](mu algebra.Index, left, right int) Matrix[S] {
	x := tagsFor(left, right)
	one := algebra.One[S]()
	i := algebra.I[S]()
	half := algebra.FromInt[S](1).Div(algebra.FromInt[S](2))

	var res Matrix[S]
	res[0][1] = metricTerm(one, [2]algebra.Index{mu, x.nu})
	res[1][0] = metricTerm(one, [2]algebra.Index{mu, x.lambda})
	res[1][2] = join(
		metricTerm(i, [2]algebra.Index{mu, x.nu1}, [2]algebra.Index{x.nu2, x.lambda}),
		metricTerm(i.Neg(), [2]algebra.Index{mu, x.nu2}, [2]algebra.Index{x.nu1, x.lambda}),
	)
	res[2][1] = join(
		metricTerm(i.Mul(half).Neg(), [2]algebra.Index{mu, x.lam1}, [2]algebra.Index{x.nu, x.lam2}),
		metricTerm(i.Mul(half), [2]algebra.Index{mu, x.lam2}, [2]algebra.Index{x.nu, x.lam1}),
	)
	res[2][3] = epsTerm(half, mu, x.nu, x.lam1, x.lam2)
	res[3][2] = epsTerm(one.Neg(), mu, x.nu1, x.nu2, x.lambda)
	res[3][4] = metricTerm(one.Neg(), [2]algebra.Index{mu, x.lambda})
	res[4][3] = metricTerm(one.Neg(), [2]algebra.Index{mu, x.nu})
	return res
}

// Gamma5Matrix returns the structure matrix of left multiplication by
// gamma^5.
func Gamma5Matrix[S algebra.Scalar[S]](left, right int) Matrix[S] {
	x := tagsFor(left, right)
	one := algebra.One[S]()
	i := algebra.I[S]()
	half := algebra.FromInt[S](1).Div(algebra.FromInt[S](2))

	var res Matrix[S]
	res[0][4] = li.FromComplex[S](one)
	res[1][3] = metricTerm(one, [2]algebra.Index{x.nu, x.lambda})
	res[2][2] = epsTerm(i.Mul(half).Neg(), x.nu1, x.nu2, x.lam1, x.lam2)
	res[3][1] = metricTerm(one, [2]algebra.Index{x.nu, x.lambda})
	res[4][0] = li.FromComplex[S](one)
	return res
}

// SigmaMatrix returns the structure matrix of left multiplication by
// sigma^{mu1 mu2}, derived from sigma^{mu nu} = (i/2)[gamma^mu, gamma^nu] by
// composing gamma structure matrices. The intermediate generation tag is
// negative so it can never collide with the tags the reducer mints; it is
// fully contracted away by the products.
func SigmaMatrix[S algebra.Scalar[S]](mu1, mu2 algebra.Index, left, right int) (Matrix[S], error) {
	mid := -(left + 1)
	ihalf := algebra.I[S]().Div(algebra.FromInt[S](2))

	ab, err := GammaMatrix[S](mu1, left, mid).Mul(GammaMatrix[S](mu2, mid, right))
	if err != nil {
		return Matrix[S]{}, err
	}
	ba, err := GammaMatrix[S](mu2, left, mid).Mul(GammaMatrix[S](mu1, mid, right))
	if err != nil {
		return Matrix[S]{}, err
	}

	var res Matrix[S]
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			diff, err := ab[i][j].Sub(ba[i][j])
			if err != nil {
				return Matrix[S]{}, err
			}
			res[i][j] = diff.Scale(ihalf)
		}
	}
	return res, nil
}

// Mul multiplies two structure matrices, canonicalizing every entry.
func (m Matrix[S]) Mul(o Matrix[S]) (Matrix[S], error) {
	measure.Global.Add("gammaalg.matmul", 1)
	var res Matrix[S]
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			acc := li.Zero[S]()
			for k := 0; k < 5; k++ {
				if len(m[i][k].Terms) == 0 || len(o[k][j].Terms) == 0 {
					continue
				}
				p, err := m[i][k].Mul(o[k][j])
				if err != nil {
					return Matrix[S]{}, err
				}
				acc, err = acc.Add(p)
				if err != nil {
					return Matrix[S]{}, err
				}
			}
			res[i][j] = acc
		}
	}
	return res, nil
}

// Col extracts column j.
func (m Matrix[S]) Col(j int) Vector[S] {
	var v Vector[S]
	for i := 0; i < 5; i++ {
		v[i] = m[i][j]
	}
	return v
}

// MulVec multiplies the matrix into a column, canonicalizing every entry of
// the result.
func (m Matrix[S]) MulVec(v Vector[S]) (Vector[S], error) {
	measure.Global.Add("gammaalg.matvec", 1)
	var res Vector[S]
	for i := 0; i < 5; i++ {
		acc := li.Zero[S]()
		for k := 0; k < 5; k++ {
			if len(m[i][k].Terms) == 0 || len(v[k].Terms) == 0 {
				continue
			}
			p, err := m[i][k].Mul(v[k])
			if err != nil {
				return Vector[S]{}, err
			}
			acc, err = acc.Add(p)
			if err != nil {
				return Vector[S]{}, err
			}
		}
		res[i] = acc
	}
	return res, nil
}

// ScaleVec multiplies every component by the polynomial coeff.
func ScaleVec[S algebra.Scalar[S]](coeff li.TensorPolynomial[S], v Vector[S]) (Vector[S], error) {
	var res Vector[S]
	for i := 0; i < 5; i++ {
		p, err := coeff.Mul(v[i])
		if err != nil {
			return Vector[S]{}, err
		}
		res[i] = p
	}
	return res, nil
}
