package algebra

import (
	"errors"
	"fmt"
)

// Basis error taxonomy.
var (
	ErrUnknownBasisID  = errors.New("tensor identifier not in basis")
	ErrTooManyIndices  = errors.New("too many tensor indices")
	ErrMalformedTensor = errors.New("malformed tensor")
	ErrIndexRange      = errors.New("tensor index position out of range")
)

// Basis describes a tensor ring basis over identifiers of type ID.
type Basis[ID comparable] interface {
	Allows(ID) bool
	MaxIndexCount(ID) int
}

// Tensor is a basis element of a tensor ring: an identifier from the basis B
// plus an ordered list of indices, never more than the basis allows for that
// identifier. Incomplete tensors are legal intermediates, produced by the
// subscript and superscript operations.
type Tensor[ID comparable, B Basis[ID]] struct {
	id         ID
	indices    []Index
	maxIndices int
}

// NewTensor builds a tensor after checking the identifier against the basis
// and the index count against the basis limit.
func NewTensor[ID comparable, B Basis[ID]](id ID, indices []Index) (Tensor[ID, B], error) {
	var b B
	if !b.Allows(id) {
		return Tensor[ID, B]{}, fmt.Errorf("algebra: %v: %w", id, ErrUnknownBasisID)
	}
	max := b.MaxIndexCount(id)
	if len(indices) > max {
		return Tensor[ID, B]{}, fmt.Errorf("algebra: %v holds at most %d indices: %w",
			id, max, ErrTooManyIndices)
	}
	t := Tensor[ID, B]{id: id, maxIndices: max}
	t.indices = append(t.indices, indices...)
	return t, nil
}

func (t Tensor[ID, B]) ID() ID { return t.id }

// Indices returns the index list. Callers must not mutate it.
func (t Tensor[ID, B]) Indices() []Index { return t.indices }

func (t Tensor[ID, B]) MaxIndices() int { return t.maxIndices }

// Complete reports whether the tensor carries its full index count.
func (t Tensor[ID, B]) Complete() bool {
	return len(t.indices) >= t.maxIndices
}

// WithIndices returns a copy with the given indices appended, guarding the
// basis limit.
func (t Tensor[ID, B]) WithIndices(indices ...Index) (Tensor[ID, B], error) {
	if len(t.indices)+len(indices) > t.maxIndices {
		return Tensor[ID, B]{}, fmt.Errorf("algebra: %v holds at most %d indices: %w",
			t.id, t.maxIndices, ErrTooManyIndices)
	}
	res := Tensor[ID, B]{id: t.id, maxIndices: t.maxIndices}
	res.indices = append(res.indices, t.indices...)
	res.indices = append(res.indices, indices...)
	return res, nil
}

// ReplaceIndex swaps the index at pos for repl; the only mutator.
func (t *Tensor[ID, B]) ReplaceIndex(pos int, repl Index) error {
	if pos < 0 || pos >= len(t.indices) {
		return fmt.Errorf("algebra: position %d: %w", pos, ErrIndexRange)
	}
	t.indices[pos] = repl
	return nil
}

// Clone returns a deep copy; tensors share no index storage afterwards.
func (t Tensor[ID, B]) Clone() Tensor[ID, B] {
	res := Tensor[ID, B]{id: t.id, maxIndices: t.maxIndices}
	res.indices = append(res.indices, t.indices...)
	return res
}

func (t Tensor[ID, B]) Equal(o Tensor[ID, B]) bool {
	if t.id != o.id || len(t.indices) != len(o.indices) {
		return false
	}
	for i := range t.indices {
		if t.indices[i] != o.indices[i] {
			return false
		}
	}
	return true
}

// MappingTo searches for a permutation p such that t.indices[p.Map[i]] equals
// o.indices[i] for every i, returning it with its parity, or false when the
// tensors are not equivalent modulo index reordering.
func (t Tensor[ID, B]) MappingTo(o Tensor[ID, B]) (Permutation, bool) {
	if t.id != o.id || len(t.indices) != len(o.indices) {
		return Permutation{}, false
	}

	var res Permutation
	found := false
	ForPermutations(len(t.indices), func(perm Permutation) {
		if found {
			return
		}
		for i := range t.indices {
			if t.indices[perm.Map[i]] != o.indices[i] {
				return
			}
		}
		res = perm
		found = true
	})
	return res, found
}
