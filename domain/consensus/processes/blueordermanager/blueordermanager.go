package blueordermanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
)

// blueOrderManager derives block colors from the virtual block and orders
// the blue blocks
type blueOrderManager struct {
	blockStore         model.BlockStore
	dagTopologyManager model.DAGTopologyManager
	ghostdagManager    model.GHOSTDAGManager
	ghostdagDataStore  model.GHOSTDAGDataStore
	blockColorStore    model.BlockColorStore
	genesisID          string
}

// New instantiates a new BlueOrderManager
func New(
	blockStore model.BlockStore,
	dagTopologyManager model.DAGTopologyManager,
	ghostdagManager model.GHOSTDAGManager,
	ghostdagDataStore model.GHOSTDAGDataStore,
	blockColorStore model.BlockColorStore,
	genesisID string) model.BlueOrderManager {

	return &blueOrderManager{
		blockStore:         blockStore,
		dagTopologyManager: dagTopologyManager,
		ghostdagManager:    ghostdagManager,
		ghostdagDataStore:  ghostdagDataStore,
		blockColorStore:    blockColorStore,
		genesisID:          genesisID,
	}
}
