package rollbackmanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

// RevertBlock restores every account touched by the given block to its
// value before the block was executed, and deletes the block's execution
// record. Blocks executed after it are not checked; they must be reverted
// first by the caller.
func (rm *rollbackManager) RevertBlock(stagingArea *model.StagingArea, blockID string) error {
	if !rm.blockStore.HasBlock(stagingArea, blockID) {
		return errors.Wrapf(ruleerrors.ErrBlockNotFound, "block %s does not exist", blockID)
	}
	if !rm.executionRecordStore.Has(stagingArea, blockID) {
		return errors.Wrapf(ruleerrors.ErrBlockNotExecuted, "block %s has no execution record", blockID)
	}

	record, err := rm.executionRecordStore.Get(stagingArea, blockID)
	if err != nil {
		return err
	}

	for i := len(record.Entries) - 1; i >= 0; i-- {
		err := rm.revertEntry(stagingArea, record.Entries[i])
		if err != nil {
			return err
		}
	}
	rm.executionRecordStore.Delete(stagingArea, blockID)

	statuses, ok := rm.transactionStatusStore.Get(stagingArea, blockID)
	if ok {
		for _, status := range statuses {
			if status.Code == externalapi.TransactionStatusExecuted {
				status.Code = externalapi.TransactionStatusReverted
			}
		}
		rm.transactionStatusStore.Stage(stagingArea, blockID, statuses)
	}

	log.Debugf("Reverted block %s (%d transactions)", blockID, len(record.Entries))
	return nil
}

// revertEntry restores the receiver first, so that for a self transfer the
// sender's values win
func (rm *rollbackManager) revertEntry(stagingArea *model.StagingArea, entry *externalapi.ExecutionRecordEntry) error {
	receiver, err := rm.accountStore.Get(stagingArea, entry.To)
	if err != nil {
		return err
	}
	receiver.Balance = entry.ReceiverBalanceBefore
	rm.accountStore.Stage(stagingArea, receiver)

	sender, err := rm.accountStore.Get(stagingArea, entry.From)
	if err != nil {
		return err
	}
	sender.Balance = entry.SenderBalanceBefore
	sender.Nonce = entry.SenderNonceBefore
	rm.accountStore.Stage(stagingArea, sender)
	return nil
}
