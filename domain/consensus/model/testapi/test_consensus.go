package testapi

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/dagconfig"
)

// TestConsensus wraps the Consensus interface with some methods that are needed by tests only
type TestConsensus interface {
	externalapi.Consensus

	DAGParams() *dagconfig.Params
	DatabaseContext() model.DBManager

	// AddBlock inserts a block without transactions with the given id and parents
	AddBlock(blockID string, parentIDs ...string) (*externalapi.BlockInsertionResult, error)
	AddBlockWithTransactions(blockID string, parentIDs []string,
		transactions []*externalapi.Transaction) (*externalapi.BlockInsertionResult, error)
	BlockColor(blockID string) externalapi.BlockColor

	BlockStore() model.BlockStore
	GHOSTDAGDataStore() model.GHOSTDAGDataStore
	BlockColorStore() model.BlockColorStore
	AccountStore() model.AccountStore
	ExecutionRecordStore() model.ExecutionRecordStore
	TransactionStatusStore() model.TransactionStatusStore

	DAGTopologyManager() model.DAGTopologyManager
	DAGTraversalManager() model.DAGTraversalManager
	GHOSTDAGManager() model.GHOSTDAGManager
	BlueOrderManager() model.BlueOrderManager
	TransactionExecutor() model.TransactionExecutor
	RollbackManager() model.RollbackManager
}
