package ghostdagmanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/blockidset"
)

// pastCache memoizes the past of the blocks queried during a single
// GHOSTDAG run
type pastCache struct {
	dagTopologyManager model.DAGTopologyManager
	stagingArea        *model.StagingArea
	pasts              map[string]blockidset.BlockIDSet
}

func newPastCache(dagTopologyManager model.DAGTopologyManager, stagingArea *model.StagingArea) *pastCache {
	return &pastCache{
		dagTopologyManager: dagTopologyManager,
		stagingArea:        stagingArea,
		pasts:              make(map[string]blockidset.BlockIDSet),
	}
}

// isAncestorOf returns true if blockIDA is in the past of blockIDB
func (pc *pastCache) isAncestorOf(blockIDA, blockIDB string) (bool, error) {
	past, ok := pc.pasts[blockIDB]
	if !ok {
		ancestors, err := pc.dagTopologyManager.Ancestors(pc.stagingArea, blockIDB)
		if err != nil {
			return false, err
		}
		past = blockidset.NewFromSlice(ancestors...)
		pc.pasts[blockIDB] = past
	}
	return past.Contains(blockIDA), nil
}
