package ghostdagdatastore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
)

type ghostdagDataStagingShard struct {
	store *ghostdagDataStore
	toAdd map[string]*model.BlockGHOSTDAGData
}

func (gds *ghostdagDataStore) stagingShard(stagingArea *model.StagingArea) *ghostdagDataStagingShard {
	return stagingArea.GetOrCreateShard(model.StagingShardIDGHOSTDAG, func() model.StagingShard {
		return &ghostdagDataStagingShard{
			store: gds,
			toAdd: make(map[string]*model.BlockGHOSTDAGData),
		}
	}).(*ghostdagDataStagingShard)
}

func (gdss *ghostdagDataStagingShard) Commit(dbTx model.DBTransaction) error {
	for blockID, blockGHOSTDAGData := range gdss.toAdd {
		err := dbTx.Put(gdss.store.bucket.Key([]byte(blockID)), serialization.SerializeBlockGHOSTDAGData(blockGHOSTDAGData))
		if err != nil {
			return err
		}
		gdss.store.cache[blockID] = blockGHOSTDAGData
	}
	return nil
}
