package ghostdagdatastore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/pkg/errors"
)

var bucketName = []byte("block-ghostdag-data")

// ghostdagDataStore represents a store of BlockGHOSTDAGData
type ghostdagDataStore struct {
	bucket model.DBBucket
	cache  map[string]*model.BlockGHOSTDAGData
}

// New instantiates a new GHOSTDAGDataStore and loads its contents from dbContext
func New(dbContext model.DBReader) (model.GHOSTDAGDataStore, error) {
	gds := &ghostdagDataStore{
		bucket: database.MakeBucket(bucketName),
		cache:  make(map[string]*model.BlockGHOSTDAGData),
	}

	cursor, err := dbContext.Cursor(gds.bucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return nil, err
		}
		dataBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		blockGHOSTDAGData, err := serialization.DeserializeBlockGHOSTDAGData(dataBytes)
		if err != nil {
			return nil, err
		}
		gds.cache[string(key.Suffix())] = blockGHOSTDAGData
	}
	return gds, nil
}

// Stage stages the given blockGHOSTDAGData for the given blockID
func (gds *ghostdagDataStore) Stage(stagingArea *model.StagingArea, blockID string, blockGHOSTDAGData *model.BlockGHOSTDAGData) {
	gds.stagingShard(stagingArea).toAdd[blockID] = blockGHOSTDAGData
}

func (gds *ghostdagDataStore) IsStaged(stagingArea *model.StagingArea) bool {
	return len(gds.stagingShard(stagingArea).toAdd) != 0
}

// Has returns whether GHOSTDAG data exists for the given blockID
func (gds *ghostdagDataStore) Has(stagingArea *model.StagingArea, blockID string) bool {
	if _, ok := gds.stagingShard(stagingArea).toAdd[blockID]; ok {
		return true
	}
	_, ok := gds.cache[blockID]
	return ok
}

// Get gets the blockGHOSTDAGData associated with the given blockID
func (gds *ghostdagDataStore) Get(stagingArea *model.StagingArea, blockID string) (*model.BlockGHOSTDAGData, error) {
	if blockGHOSTDAGData, ok := gds.stagingShard(stagingArea).toAdd[blockID]; ok {
		return blockGHOSTDAGData, nil
	}
	if blockGHOSTDAGData, ok := gds.cache[blockID]; ok {
		return blockGHOSTDAGData, nil
	}
	return nil, errors.Wrapf(database.ErrNotFound, "GHOSTDAG data of block %s not found", blockID)
}
