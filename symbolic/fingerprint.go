package symbolic

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"dirac-calc/algebra"
	"dirac-calc/gammaalg"
)

// Fingerprint hashes the rendering of a canonical expression under fixed
// printer settings into a compact hex digest. Two expressions evaluated
// through the same pipeline compare equal iff their digests do; the digest is
// structural, so representations that differ only by term order hash apart.
func Fingerprint[S algebra.Scalar[S]](expr *gammaalg.CanonicalExpr[S]) string {
	printer := NewExprPrinter[S]("\\omega", 0)
	h := sha3.NewShake256()
	h.Write([]byte(printer.Latexify(expr)))
	sum := make([]byte, 32)
	h.Read(sum)
	return hex.EncodeToString(sum)
}
