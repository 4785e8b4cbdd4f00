package multiset

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/go-muhash"
)

// Multiset is a MuHash multiset hash. Its hash depends only on the elements
// it holds, never on the order they were added in.
type Multiset struct {
	ms *muhash.MuHash
}

// New returns an empty Multiset
func New() *Multiset {
	return &Multiset{ms: muhash.NewMuHash()}
}

// Add adds element to the multiset
func (m *Multiset) Add(element []byte) {
	m.ms.Add(element)
}

// Hash returns the hash of the current elements
func (m *Multiset) Hash() *externalapi.DomainHash {
	finalized := [externalapi.DomainHashSize]byte(m.ms.Finalize())
	return externalapi.NewDomainHashFromByteArray(&finalized)
}
