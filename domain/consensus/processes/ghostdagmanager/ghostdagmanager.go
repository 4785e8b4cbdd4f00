package ghostdagmanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
)

// ghostdagManager resolves and manages GHOSTDAG block data
type ghostdagManager struct {
	dagTopologyManager  model.DAGTopologyManager
	dagTraversalManager model.DAGTraversalManager
	ghostdagDataStore   model.GHOSTDAGDataStore
	k                   model.KType
	genesisID           string
}

// New instantiates a new GHOSTDAGManager
func New(
	dagTopologyManager model.DAGTopologyManager,
	dagTraversalManager model.DAGTraversalManager,
	ghostdagDataStore model.GHOSTDAGDataStore,
	k model.KType,
	genesisID string) model.GHOSTDAGManager {

	return &ghostdagManager{
		dagTopologyManager:  dagTopologyManager,
		dagTraversalManager: dagTraversalManager,
		ghostdagDataStore:   ghostdagDataStore,
		k:                   k,
		genesisID:           genesisID,
	}
}
