package executionrecordstore

import (
	"sort"

	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

var bucketName = []byte("execution-records")

// executionRecordStore represents a store of the undo records of executed
// blocks. A block has at most one live record.
type executionRecordStore struct {
	bucket  model.DBBucket
	records map[string]*externalapi.ExecutionRecord
}

// New instantiates a new ExecutionRecordStore and loads its contents from dbContext
func New(dbContext model.DBReader) (model.ExecutionRecordStore, error) {
	ers := &executionRecordStore{
		bucket:  database.MakeBucket(bucketName),
		records: make(map[string]*externalapi.ExecutionRecord),
	}

	cursor, err := dbContext.Cursor(ers.bucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	for ok := cursor.First(); ok; ok = cursor.Next() {
		recordBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		record, err := serialization.DeserializeExecutionRecord(recordBytes)
		if err != nil {
			return nil, err
		}
		ers.records[record.BlockID] = record
	}
	return ers, nil
}

// Stage stages the given record, replacing a staged deletion of the same block
func (ers *executionRecordStore) Stage(stagingArea *model.StagingArea, record *externalapi.ExecutionRecord) {
	stagingShard := ers.stagingShard(stagingArea)
	delete(stagingShard.toDelete, record.BlockID)
	stagingShard.toAdd[record.BlockID] = record.Clone()
}

// Delete stages the deletion of the record of the given block
func (ers *executionRecordStore) Delete(stagingArea *model.StagingArea, blockID string) {
	stagingShard := ers.stagingShard(stagingArea)
	if _, ok := stagingShard.toAdd[blockID]; ok {
		delete(stagingShard.toAdd, blockID)
		if _, committed := ers.records[blockID]; !committed {
			return
		}
	}
	stagingShard.toDelete[blockID] = struct{}{}
}

func (ers *executionRecordStore) IsStaged(stagingArea *model.StagingArea) bool {
	return ers.stagingShard(stagingArea).isStaged()
}

// Has returns whether the given block has a live execution record
func (ers *executionRecordStore) Has(stagingArea *model.StagingArea, blockID string) bool {
	stagingShard := ers.stagingShard(stagingArea)
	if _, ok := stagingShard.toAdd[blockID]; ok {
		return true
	}
	if _, ok := stagingShard.toDelete[blockID]; ok {
		return false
	}
	_, ok := ers.records[blockID]
	return ok
}

// Get returns a clone of the execution record of the given block
func (ers *executionRecordStore) Get(stagingArea *model.StagingArea, blockID string) (*externalapi.ExecutionRecord, error) {
	stagingShard := ers.stagingShard(stagingArea)
	if record, ok := stagingShard.toAdd[blockID]; ok {
		return record.Clone(), nil
	}
	if _, ok := stagingShard.toDelete[blockID]; !ok {
		if record, ok := ers.records[blockID]; ok {
			return record.Clone(), nil
		}
	}
	return nil, errors.Wrapf(database.ErrNotFound, "execution record of block %s not found", blockID)
}

// Records returns all live records ordered by their execution sequence
func (ers *executionRecordStore) Records(stagingArea *model.StagingArea) []*externalapi.ExecutionRecord {
	stagingShard := ers.stagingShard(stagingArea)
	records := make([]*externalapi.ExecutionRecord, 0, len(ers.records)+len(stagingShard.toAdd))
	for blockID, record := range ers.records {
		if _, ok := stagingShard.toDelete[blockID]; ok {
			continue
		}
		if _, ok := stagingShard.toAdd[blockID]; ok {
			continue
		}
		records = append(records, record.Clone())
	}
	for _, record := range stagingShard.toAdd {
		records = append(records, record.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Sequence < records[j].Sequence
	})
	return records
}

// NextSequence returns the sequence number the next executed block should get
func (ers *executionRecordStore) NextSequence(stagingArea *model.StagingArea) uint64 {
	records := ers.Records(stagingArea)
	if len(records) == 0 {
		return 1
	}
	return records[len(records)-1].Sequence + 1
}
