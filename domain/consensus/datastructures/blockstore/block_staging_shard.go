package blockstore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

type blockStagingShard struct {
	store *blockStore
	toAdd map[string]*externalapi.Block
	order []string
}

func (bs *blockStore) stagingShard(stagingArea *model.StagingArea) *blockStagingShard {
	return stagingArea.GetOrCreateShard(model.StagingShardIDBlock, func() model.StagingShard {
		return &blockStagingShard{
			store: bs,
			toAdd: make(map[string]*externalapi.Block),
		}
	}).(*blockStagingShard)
}

func (bss *blockStagingShard) Commit(dbTx model.DBTransaction) error {
	for _, blockID := range bss.order {
		block := bss.toAdd[blockID]
		insertionIndex := uint64(len(bss.store.blockIDs))
		err := dbTx.Put(bss.store.bucket.Key([]byte(blockID)), serialization.SerializeBlock(block, insertionIndex))
		if err != nil {
			return err
		}
		bss.store.add(block)
	}
	return nil
}

func (bss *blockStagingShard) isStaged() bool {
	return len(bss.toAdd) != 0
}
