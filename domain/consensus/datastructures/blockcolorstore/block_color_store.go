package blockcolorstore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

var bucketName = []byte("block-colors")

// blockColorStore represents a store of the current color of every block
type blockColorStore struct {
	bucket model.DBBucket
	colors map[string]externalapi.BlockColor
}

// New instantiates a new BlockColorStore and loads its contents from dbContext
func New(dbContext model.DBReader) (model.BlockColorStore, error) {
	bcs := &blockColorStore{
		bucket: database.MakeBucket(bucketName),
		colors: make(map[string]externalapi.BlockColor),
	}

	cursor, err := dbContext.Cursor(bcs.bucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return nil, err
		}
		colorBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		color, err := serialization.DeserializeBlockColor(colorBytes)
		if err != nil {
			return nil, err
		}
		bcs.colors[string(key.Suffix())] = color
	}
	return bcs, nil
}

// Stage stages the color of the given block
func (bcs *blockColorStore) Stage(stagingArea *model.StagingArea, blockID string, color externalapi.BlockColor) {
	bcs.stagingShard(stagingArea).toUpdate[blockID] = color
}

func (bcs *blockColorStore) IsStaged(stagingArea *model.StagingArea) bool {
	return len(bcs.stagingShard(stagingArea).toUpdate) != 0
}

// Get returns the color of the given block, or BlockColorUnclassified if
// it was never colored
func (bcs *blockColorStore) Get(stagingArea *model.StagingArea, blockID string) externalapi.BlockColor {
	if color, ok := bcs.stagingShard(stagingArea).toUpdate[blockID]; ok {
		return color
	}
	if color, ok := bcs.colors[blockID]; ok {
		return color
	}
	return externalapi.BlockColorUnclassified
}
