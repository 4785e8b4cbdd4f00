package serialization

import (
	"sort"

	"github.com/kaspanet/ghostledger/domain/consensus/model"
)

func sortedAnticoneSizeKeys(sizes map[string]model.KType) []string {
	keys := make([]string, 0, len(sizes))
	for blockID := range sizes {
		keys = append(keys, blockID)
	}
	sort.Strings(keys)
	return keys
}
