package fierz

// SpinorIndices names the row and column spinor indices of one bilinear.
type SpinorIndices struct {
	Bar string
	Ket string
}

// Identity is a printable Fierz identity: left- and right-hand expressions
// with the spinor index assignments of their bilinears.
type Identity struct {
	Left              Expression
	LeftSpinorIndices []SpinorIndices

	Right              Expression
	RightSpinorIndices []SpinorIndices
}
