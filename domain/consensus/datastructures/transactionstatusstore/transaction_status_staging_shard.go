package transactionstatusstore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

type transactionStatusStagingShard struct {
	store    *transactionStatusStore
	toUpdate map[string][]*externalapi.TransactionStatus
}

func (tss *transactionStatusStore) stagingShard(stagingArea *model.StagingArea) *transactionStatusStagingShard {
	return stagingArea.GetOrCreateShard(model.StagingShardIDTransactionStatus, func() model.StagingShard {
		return &transactionStatusStagingShard{
			store:    tss,
			toUpdate: make(map[string][]*externalapi.TransactionStatus),
		}
	}).(*transactionStatusStagingShard)
}

func (tsss *transactionStatusStagingShard) Commit(dbTx model.DBTransaction) error {
	for blockID, statuses := range tsss.toUpdate {
		err := dbTx.Put(tsss.store.bucket.Key([]byte(blockID)), serialization.SerializeTransactionStatuses(statuses))
		if err != nil {
			return err
		}
		tsss.store.statuses[blockID] = statuses
	}
	return nil
}
