package transactionexecutor

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/ghostledger/infrastructure/logger"
)

// ExecuteBlueChain executes every blue block that was not executed yet, in
// blue order. Blocks that already have an execution record are skipped.
func (te *transactionExecutor) ExecuteBlueChain(stagingArea *model.StagingArea) ([]*externalapi.BlockExecutionResult, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ExecuteBlueChain")
	defer onEnd()

	orderedBlueBlocks, err := te.blueOrderManager.OrderedBlueBlocks(stagingArea)
	if err != nil {
		return nil, err
	}

	results := []*externalapi.BlockExecutionResult{}
	for _, blockID := range orderedBlueBlocks {
		if te.executionRecordStore.Has(stagingArea, blockID) {
			continue
		}
		result, err := te.executeBlock(stagingArea, blockID)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (te *transactionExecutor) executeBlock(stagingArea *model.StagingArea, blockID string) (
	*externalapi.BlockExecutionResult, error) {

	block, err := te.blockStore.Block(stagingArea, blockID)
	if err != nil {
		return nil, err
	}

	record := &externalapi.ExecutionRecord{
		BlockID:  blockID,
		Sequence: te.executionRecordStore.NextSequence(stagingArea),
		Entries:  []*externalapi.ExecutionRecordEntry{},
	}
	result := &externalapi.BlockExecutionResult{
		BlockID:               blockID,
		AppliedTransactionIDs: []string{},
		Failures:              []*externalapi.TransactionFailure{},
	}
	statuses := make([]*externalapi.TransactionStatus, len(block.Transactions))

	for i, tx := range block.Transactions {
		entry, err := te.executeTransaction(stagingArea, tx)
		if err != nil {
			if !ruleerrors.IsRuleError(err) {
				return nil, err
			}
			log.Debugf("Transaction %s of block %s failed: %s", tx.ID, blockID, err)
			statuses[i] = &externalapi.TransactionStatus{
				TransactionID: tx.ID,
				Code:          externalapi.TransactionStatusFailed,
				Reason:        err.Error(),
			}
			result.Failures = append(result.Failures, &externalapi.TransactionFailure{
				TransactionID: tx.ID,
				Err:           err,
			})
			continue
		}

		record.Entries = append(record.Entries, entry)
		statuses[i] = &externalapi.TransactionStatus{
			TransactionID: tx.ID,
			Code:          externalapi.TransactionStatusExecuted,
		}
		result.AppliedTransactionIDs = append(result.AppliedTransactionIDs, tx.ID)
	}

	te.executionRecordStore.Stage(stagingArea, record)
	te.transactionStatusStore.Stage(stagingArea, blockID, statuses)

	log.Debugf("Executed block %s: %d applied, %d failed",
		blockID, len(result.AppliedTransactionIDs), len(result.Failures))
	return result, nil
}

// executeTransaction validates tx against the current ledger and applies
// it. The returned entry holds the values the transaction overwrote.
func (te *transactionExecutor) executeTransaction(stagingArea *model.StagingArea,
	tx *externalapi.Transaction) (*externalapi.ExecutionRecordEntry, error) {

	sender, err := te.Account(stagingArea, tx.From)
	if err != nil {
		return nil, err
	}
	receiver, err := te.Account(stagingArea, tx.To)
	if err != nil {
		return nil, err
	}

	err = checkTransaction(tx, sender, receiver)
	if err != nil {
		return nil, err
	}

	entry := &externalapi.ExecutionRecordEntry{
		TransactionID:         tx.ID,
		From:                  tx.From,
		To:                    tx.To,
		Amount:                tx.Amount,
		SenderBalanceBefore:   sender.Balance,
		SenderNonceBefore:     sender.Nonce,
		ReceiverBalanceBefore: receiver.Balance,
	}

	if tx.From == tx.To {
		sender.Nonce++
		te.accountStore.Stage(stagingArea, sender)
		return entry, nil
	}

	sender.Balance -= tx.Amount
	sender.Nonce++
	receiver.Balance += tx.Amount
	te.accountStore.Stage(stagingArea, sender)
	te.accountStore.Stage(stagingArea, receiver)
	return entry, nil
}
