package algebra

// Complex is a complex number over the scalar ring S.
type Complex[S Scalar[S]] struct {
	Re S
	Im S
}

// NewComplex builds re + im*I.
func NewComplex[S Scalar[S]](re, im S) Complex[S] {
	return Complex[S]{Re: re, Im: im}
}

// Real builds re + 0*I.
func Real[S Scalar[S]](re S) Complex[S] {
	var z S
	return Complex[S]{Re: re, Im: z.FromInt(0)}
}

// Zero returns the additive identity.
func Zero[S Scalar[S]]() Complex[S] {
	var z S
	return Complex[S]{Re: z.FromInt(0), Im: z.FromInt(0)}
}

// One returns the multiplicative identity.
func One[S Scalar[S]]() Complex[S] {
	var z S
	return Complex[S]{Re: z.FromInt(1), Im: z.FromInt(0)}
}

// I returns the imaginary unit.
func I[S Scalar[S]]() Complex[S] {
	var z S
	return Complex[S]{Re: z.FromInt(0), Im: z.FromInt(1)}
}

// FromInt returns n as a complex scalar.
func FromInt[S Scalar[S]](n int64) Complex[S] {
	var z S
	return Complex[S]{Re: z.FromInt(n), Im: z.FromInt(0)}
}

func (c Complex[S]) Add(o Complex[S]) Complex[S] {
	return Complex[S]{Re: c.Re.Add(o.Re), Im: c.Im.Add(o.Im)}
}

func (c Complex[S]) Sub(o Complex[S]) Complex[S] {
	return Complex[S]{Re: c.Re.Sub(o.Re), Im: c.Im.Sub(o.Im)}
}

func (c Complex[S]) Mul(o Complex[S]) Complex[S] {
	return Complex[S]{
		Re: c.Re.Mul(o.Re).Sub(c.Im.Mul(o.Im)),
		Im: c.Re.Mul(o.Im).Add(c.Im.Mul(o.Re)),
	}
}

func (c Complex[S]) Div(o Complex[S]) Complex[S] {
	norm := o.Re.Mul(o.Re).Add(o.Im.Mul(o.Im))
	return Complex[S]{
		Re: c.Re.Mul(o.Re).Add(c.Im.Mul(o.Im)).Div(norm),
		Im: c.Im.Mul(o.Re).Sub(c.Re.Mul(o.Im)).Div(norm),
	}
}

func (c Complex[S]) Neg() Complex[S] {
	return Complex[S]{Re: c.Re.Neg(), Im: c.Im.Neg()}
}

// ScaleS multiplies by a real scalar.
func (c Complex[S]) ScaleS(s S) Complex[S] {
	return Complex[S]{Re: c.Re.Mul(s), Im: c.Im.Mul(s)}
}

func (c Complex[S]) IsZero() bool {
	return c.Re.IsZero() && c.Im.IsZero()
}

func (c Complex[S]) Equal(o Complex[S]) bool {
	return c.Re.Equal(o.Re) && c.Im.Equal(o.Im)
}
