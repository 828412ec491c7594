package algebra

// IndexTag identifies a dummy index: Gen is the generation number of the node
// that minted it and Slot the position within that node's basis element.
type IndexTag struct {
	Gen  int
	Slot int
}

// IndexID is a tensor index identifier: either a user-visible label or a
// dummy tag. The zero value is the empty label.
type IndexID struct {
	name  string
	tag   IndexTag
	isTag bool
}

// NameID builds an identifier from a user label.
func NameID(name string) IndexID {
	return IndexID{name: name}
}

// TagID builds an identifier from a dummy tag.
func TagID(tag IndexTag) IndexID {
	return IndexID{tag: tag, isTag: true}
}

func (id IndexID) IsTag() bool   { return id.isTag }
func (id IndexID) Name() string  { return id.name }
func (id IndexID) Tag() IndexTag { return id.tag }

// Index is a tensor index: an identifier plus an upper/lower position.
type Index struct {
	ID    IndexID
	Upper bool
}

// LowerIndex returns a lower index with the given identifier.
func LowerIndex(id IndexID) Index { return Index{ID: id} }

// UpperIndex returns an upper index with the given identifier.
func UpperIndex(id IndexID) Index { return Index{ID: id, Upper: true} }

// TagIndex builds an index from a dummy tag.
func TagIndex(gen, slot int, upper bool) Index {
	return Index{ID: TagID(IndexTag{Gen: gen, Slot: slot}), Upper: upper}
}

// Dual reports whether the two indices carry the same identifier in opposite
// positions; such a pair may be contracted.
func (i Index) Dual(o Index) bool {
	return i.ID == o.ID && i.Upper != o.Upper
}

// Flip returns the same identifier in the opposite position.
func (i Index) Flip() Index {
	return Index{ID: i.ID, Upper: !i.Upper}
}
