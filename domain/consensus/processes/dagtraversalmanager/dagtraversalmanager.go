package dagtraversalmanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/blockidset"
	"github.com/pkg/errors"
)

// dagTraversalManager exposes methods for traversing blocks
// in the DAG
type dagTraversalManager struct {
	blockStore         model.BlockStore
	dagTopologyManager model.DAGTopologyManager
	ghostdagDataStore  model.GHOSTDAGDataStore
	genesisID          string
}

// New instantiates a new DAGTraversalManager
func New(
	blockStore model.BlockStore,
	dagTopologyManager model.DAGTopologyManager,
	ghostdagDataStore model.GHOSTDAGDataStore,
	genesisID string) model.DAGTraversalManager {

	return &dagTraversalManager{
		blockStore:         blockStore,
		dagTopologyManager: dagTopologyManager,
		ghostdagDataStore:  ghostdagDataStore,
		genesisID:          genesisID,
	}
}

// Anticone returns the blocks that are neither ancestors nor descendants
// of blockID, sorted by id. It is recomputed from the graph on every call.
func (dtm *dagTraversalManager) Anticone(stagingArea *model.StagingArea, blockID string) ([]string, error) {
	if !dtm.blockStore.HasBlock(stagingArea, blockID) {
		return nil, errors.Errorf("block %s does not exist", blockID)
	}

	ancestors, err := dtm.dagTopologyManager.Ancestors(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	descendants, err := dtm.dagTopologyManager.Descendants(stagingArea, blockID)
	if err != nil {
		return nil, err
	}

	anticone := blockidset.NewFromSlice(dtm.blockStore.BlockIDs(stagingArea)...)
	anticone.Remove(blockID)
	anticone = anticone.Subtract(blockidset.NewFromSlice(ancestors...))
	anticone = anticone.Subtract(blockidset.NewFromSlice(descendants...))
	return anticone.ToSlice(), nil
}

// SelectedParentChain returns blockID followed by its selected parent, the
// selected parent's selected parent, and so on down to genesis
func (dtm *dagTraversalManager) SelectedParentChain(stagingArea *model.StagingArea, blockID string) ([]string, error) {
	chain := []string{blockID}
	current := blockID
	for current != dtm.genesisID {
		ghostdagData, err := dtm.ghostdagDataStore.Get(stagingArea, current)
		if err != nil {
			return nil, err
		}
		current = ghostdagData.SelectedParent()
		chain = append(chain, current)
	}
	return chain, nil
}
