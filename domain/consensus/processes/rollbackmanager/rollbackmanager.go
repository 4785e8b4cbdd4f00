package rollbackmanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
)

// rollbackManager undoes the effects of executed blocks
type rollbackManager struct {
	blockStore             model.BlockStore
	blueOrderManager       model.BlueOrderManager
	transactionExecutor    model.TransactionExecutor
	accountStore           model.AccountStore
	executionRecordStore   model.ExecutionRecordStore
	transactionStatusStore model.TransactionStatusStore
}

// New instantiates a new RollbackManager
func New(
	blockStore model.BlockStore,
	blueOrderManager model.BlueOrderManager,
	transactionExecutor model.TransactionExecutor,
	accountStore model.AccountStore,
	executionRecordStore model.ExecutionRecordStore,
	transactionStatusStore model.TransactionStatusStore) model.RollbackManager {

	return &rollbackManager{
		blockStore:             blockStore,
		blueOrderManager:       blueOrderManager,
		transactionExecutor:    transactionExecutor,
		accountStore:           accountStore,
		executionRecordStore:   executionRecordStore,
		transactionStatusStore: transactionStatusStore,
	}
}
