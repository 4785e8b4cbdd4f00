package blockidset

import (
	"sort"
	"strings"
)

// BlockIDSet is an unsorted unique collection of block ids
type BlockIDSet map[string]struct{}

// New creates and returns an empty BlockIDSet
func New() BlockIDSet {
	return BlockIDSet{}
}

// NewFromSlice creates and returns a BlockIDSet containing the given ids
func NewFromSlice(blockIDs ...string) BlockIDSet {
	set := make(BlockIDSet, len(blockIDs))
	for _, blockID := range blockIDs {
		set.Add(blockID)
	}
	return set
}

// Add adds a block id to the set
func (bis BlockIDSet) Add(blockID string) {
	bis[blockID] = struct{}{}
}

// Remove removes a block id from the set
func (bis BlockIDSet) Remove(blockID string) {
	delete(bis, blockID)
}

// Contains returns true if the set contains the given block id
func (bis BlockIDSet) Contains(blockID string) bool {
	_, ok := bis[blockID]
	return ok
}

// Subtract returns the difference between the BlockIDSet and another BlockIDSet
func (bis BlockIDSet) Subtract(other BlockIDSet) BlockIDSet {
	diff := New()
	for blockID := range bis {
		if !other.Contains(blockID) {
			diff.Add(blockID)
		}
	}
	return diff
}

// ContainsAllInSlice returns true if this set contains all ids in the given slice
func (bis BlockIDSet) ContainsAllInSlice(blockIDs []string) bool {
	for _, blockID := range blockIDs {
		if !bis.Contains(blockID) {
			return false
		}
	}
	return true
}

// ToSlice converts this BlockIDSet to a slice sorted by id
func (bis BlockIDSet) ToSlice() []string {
	slice := make([]string, 0, len(bis))
	for blockID := range bis {
		slice = append(slice, blockID)
	}
	sort.Strings(slice)
	return slice
}

// Length returns the length of this BlockIDSet
func (bis BlockIDSet) Length() int {
	return len(bis)
}

func (bis BlockIDSet) String() string {
	return "[" + strings.Join(bis.ToSlice(), ", ") + "]"
}
