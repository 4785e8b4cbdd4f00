package blockcolorstore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

type blockColorStagingShard struct {
	store    *blockColorStore
	toUpdate map[string]externalapi.BlockColor
}

func (bcs *blockColorStore) stagingShard(stagingArea *model.StagingArea) *blockColorStagingShard {
	return stagingArea.GetOrCreateShard(model.StagingShardIDBlockColor, func() model.StagingShard {
		return &blockColorStagingShard{
			store:    bcs,
			toUpdate: make(map[string]externalapi.BlockColor),
		}
	}).(*blockColorStagingShard)
}

func (bcss *blockColorStagingShard) Commit(dbTx model.DBTransaction) error {
	for blockID, color := range bcss.toUpdate {
		if committed, ok := bcss.store.colors[blockID]; ok && committed == color {
			continue
		}
		err := dbTx.Put(bcss.store.bucket.Key([]byte(blockID)), serialization.SerializeBlockColor(color))
		if err != nil {
			return err
		}
		bcss.store.colors[blockID] = color
	}
	return nil
}
