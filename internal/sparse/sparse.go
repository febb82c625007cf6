// Package sparse provides a sparse set of NFA state IDs.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of members in insertion order. The matcher uses the
// dense list as a FIFO worklist: states appended while the list is being
// walked are visited later in the same walk.
package sparse

// SparseSet is a set of uint32 values drawn from [0, capacity).
type SparseSet struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // members in insertion order
}

// NewSparseSet creates a set able to hold values in [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense)) //nolint:gosec // len(dense) <= capacity, which is a uint32
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// At returns the i-th member in insertion order.
func (s *SparseSet) At(i int) uint32 {
	return s.dense[i]
}

// Len returns the number of members.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set has no members.
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Clear removes all members in O(1).
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}
