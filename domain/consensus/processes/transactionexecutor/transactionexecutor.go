package transactionexecutor

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
)

// transactionExecutor applies the transactions of blue blocks to the
// account ledger and records what every applied transaction overwrote
type transactionExecutor struct {
	blockStore             model.BlockStore
	blueOrderManager       model.BlueOrderManager
	accountStore           model.AccountStore
	executionRecordStore   model.ExecutionRecordStore
	transactionStatusStore model.TransactionStatusStore
}

// New instantiates a new TransactionExecutor
func New(
	blockStore model.BlockStore,
	blueOrderManager model.BlueOrderManager,
	accountStore model.AccountStore,
	executionRecordStore model.ExecutionRecordStore,
	transactionStatusStore model.TransactionStatusStore) model.TransactionExecutor {

	return &transactionExecutor{
		blockStore:             blockStore,
		blueOrderManager:       blueOrderManager,
		accountStore:           accountStore,
		executionRecordStore:   executionRecordStore,
		transactionStatusStore: transactionStatusStore,
	}
}
