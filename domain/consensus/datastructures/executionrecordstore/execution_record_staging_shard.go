package executionrecordstore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

type executionRecordStagingShard struct {
	store    *executionRecordStore
	toAdd    map[string]*externalapi.ExecutionRecord
	toDelete map[string]struct{}
}

func (ers *executionRecordStore) stagingShard(stagingArea *model.StagingArea) *executionRecordStagingShard {
	return stagingArea.GetOrCreateShard(model.StagingShardIDExecutionRecord, func() model.StagingShard {
		return &executionRecordStagingShard{
			store:    ers,
			toAdd:    make(map[string]*externalapi.ExecutionRecord),
			toDelete: make(map[string]struct{}),
		}
	}).(*executionRecordStagingShard)
}

func (erss *executionRecordStagingShard) Commit(dbTx model.DBTransaction) error {
	for blockID := range erss.toDelete {
		err := dbTx.Delete(erss.store.bucket.Key([]byte(blockID)))
		if err != nil {
			return err
		}
		delete(erss.store.records, blockID)
	}
	for blockID, record := range erss.toAdd {
		err := dbTx.Put(erss.store.bucket.Key([]byte(blockID)), serialization.SerializeExecutionRecord(record))
		if err != nil {
			return err
		}
		erss.store.records[blockID] = record
	}
	return nil
}

func (erss *executionRecordStagingShard) isStaged() bool {
	return len(erss.toAdd) != 0 || len(erss.toDelete) != 0
}
