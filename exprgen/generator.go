// Package exprgen produces random calculator expressions for benchmarks and
// property tests. All randomness is drawn from a keyed PRNG so that a seed
// reproduces the exact expression stream.
package exprgen

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Default pool of index labels.
var defaultLabels = []string{
	"\\mu", "\\nu", "\\rho", "\\sigma1", "\\alpha", "\\beta", "\\kappa", "\\tau",
}

// Generator emits random gamma-chain expressions.
type Generator struct {
	prng   utils.PRNG
	labels []string
}

// NewGenerator builds a generator. An empty seed gives a fresh random
// stream; a non-empty seed keys the PRNG for reproducible output.
func NewGenerator(seed []byte) (*Generator, error) {
	var (
		prng utils.PRNG
		err  error
	)
	if len(seed) == 0 {
		prng, err = utils.NewPRNG()
	} else {
		prng, err = utils.NewKeyedPRNG(seed)
	}
	if err != nil {
		return nil, fmt.Errorf("exprgen: prng: %w", err)
	}
	return &Generator{prng: prng, labels: defaultLabels}, nil
}

func (g *Generator) randUint64() uint64 {
	var buf [8]byte
	g.prng.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func (g *Generator) intn(n int) int {
	return int(g.randUint64() % uint64(n))
}

func (g *Generator) label() string {
	return g.labels[g.intn(len(g.labels))]
}

func (g *Generator) position() string {
	if g.intn(2) == 0 {
		return "_"
	}
	return "^"
}

// Chain returns a random product of length Dirac matrices.
func (g *Generator) Chain(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		switch g.intn(3) {
		case 0:
			fmt.Fprintf(&sb, "\\gamma%s%s ", g.position(), g.label())
		case 1:
			fmt.Fprintf(&sb, "\\sigma%s{%s%s} ", g.position(), g.label(), g.label())
		default:
			sb.WriteString("\\gamma5 ")
		}
	}
	return strings.TrimSpace(sb.String())
}

// Expression returns a random sum of terms chains of the given length, each
// scaled by a small rational prefactor.
func (g *Generator) Expression(terms, chainLen int) string {
	var sb strings.Builder
	for i := 0; i < terms; i++ {
		if i > 0 {
			if g.intn(2) == 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
		}
		fmt.Fprintf(&sb, "{%d/%d}{%s}", 1+g.intn(9), 1+g.intn(9), g.Chain(chainLen))
	}
	return sb.String()
}
