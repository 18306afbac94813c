package table

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// RowID identifies a row. Integer ids are carried in their decimal form.
type RowID string

// RowSet is a set of row ids that iterates in insertion order.
// The zero value is an empty set. RowSet values are never shared between
// State values; every mutation goes through Clone first.
type RowSet struct {
	set *linkedhashset.Set
}

// NewRowSet returns a set containing ids in the given order.
func NewRowSet(ids ...RowID) RowSet {
	s := RowSet{set: linkedhashset.New()}
	for _, id := range ids {
		s.set.Add(id)
	}
	return s
}

// Len returns the number of ids in the set.
func (s RowSet) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// Has reports whether id is a member.
func (s RowSet) Has(id RowID) bool {
	if s.set == nil {
		return false
	}
	return s.set.Contains(id)
}

// IDs returns members in insertion order.
func (s RowSet) IDs() []RowID {
	if s.set == nil {
		return nil
	}
	values := s.set.Values()
	ids := make([]RowID, 0, len(values))
	for _, v := range values {
		ids = append(ids, v.(RowID))
	}
	return ids
}

// Clone returns an independent copy.
func (s RowSet) Clone() RowSet {
	return NewRowSet(s.IDs()...)
}

// With returns a copy that also contains id.
func (s RowSet) With(id RowID) RowSet {
	next := s.Clone()
	next.set.Add(id)
	return next
}

// Without returns a copy that does not contain id.
func (s RowSet) Without(id RowID) RowSet {
	next := s.Clone()
	next.set.Remove(id)
	return next
}

// Toggle returns a copy with id's membership flipped.
func (s RowSet) Toggle(id RowID) RowSet {
	if s.Has(id) {
		return s.Without(id)
	}
	return s.With(id)
}

// Equal reports whether both sets hold the same members, ignoring order.
func (s RowSet) Equal(other RowSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.IDs() {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
