package consensus

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
)

func (tc *testConsensus) DatabaseContext() model.DBManager {
	return tc.databaseContext
}

func (tc *testConsensus) BlockStore() model.BlockStore {
	return tc.blockStore
}

func (tc *testConsensus) GHOSTDAGDataStore() model.GHOSTDAGDataStore {
	return tc.ghostdagDataStore
}

func (tc *testConsensus) BlockColorStore() model.BlockColorStore {
	return tc.blockColorStore
}

func (tc *testConsensus) AccountStore() model.AccountStore {
	return tc.accountStore
}

func (tc *testConsensus) ExecutionRecordStore() model.ExecutionRecordStore {
	return tc.executionRecordStore
}

func (tc *testConsensus) TransactionStatusStore() model.TransactionStatusStore {
	return tc.transactionStatusStore
}

func (tc *testConsensus) DAGTopologyManager() model.DAGTopologyManager {
	return tc.dagTopologyManager
}

func (tc *testConsensus) DAGTraversalManager() model.DAGTraversalManager {
	return tc.dagTraversalManager
}

func (tc *testConsensus) GHOSTDAGManager() model.GHOSTDAGManager {
	return tc.ghostdagManager
}

func (tc *testConsensus) BlueOrderManager() model.BlueOrderManager {
	return tc.blueOrderManager
}

func (tc *testConsensus) TransactionExecutor() model.TransactionExecutor {
	return tc.transactionExecutor
}

func (tc *testConsensus) RollbackManager() model.RollbackManager {
	return tc.rollbackManager
}
