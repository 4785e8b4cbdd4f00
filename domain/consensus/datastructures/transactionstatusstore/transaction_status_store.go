package transactionstatusstore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

var bucketName = []byte("transaction-statuses")

// transactionStatusStore represents a store of the transaction statuses of
// every block that was ever executed
type transactionStatusStore struct {
	bucket   model.DBBucket
	statuses map[string][]*externalapi.TransactionStatus
}

// New instantiates a new TransactionStatusStore and loads its contents from dbContext
func New(dbContext model.DBReader) (model.TransactionStatusStore, error) {
	tss := &transactionStatusStore{
		bucket:   database.MakeBucket(bucketName),
		statuses: make(map[string][]*externalapi.TransactionStatus),
	}

	cursor, err := dbContext.Cursor(tss.bucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return nil, err
		}
		statusesBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		statuses, err := serialization.DeserializeTransactionStatuses(statusesBytes)
		if err != nil {
			return nil, err
		}
		tss.statuses[string(key.Suffix())] = statuses
	}
	return tss, nil
}

// Stage stages the statuses of the transactions of the given block
func (tss *transactionStatusStore) Stage(stagingArea *model.StagingArea, blockID string,
	statuses []*externalapi.TransactionStatus) {

	tss.stagingShard(stagingArea).toUpdate[blockID] = cloneStatuses(statuses)
}

func (tss *transactionStatusStore) IsStaged(stagingArea *model.StagingArea) bool {
	return len(tss.stagingShard(stagingArea).toUpdate) != 0
}

// Get returns the statuses of the transactions of the given block, and
// false if none were ever stored
func (tss *transactionStatusStore) Get(stagingArea *model.StagingArea, blockID string) ([]*externalapi.TransactionStatus, bool) {
	if statuses, ok := tss.stagingShard(stagingArea).toUpdate[blockID]; ok {
		return cloneStatuses(statuses), true
	}
	if statuses, ok := tss.statuses[blockID]; ok {
		return cloneStatuses(statuses), true
	}
	return nil, false
}

func cloneStatuses(statuses []*externalapi.TransactionStatus) []*externalapi.TransactionStatus {
	clone := make([]*externalapi.TransactionStatus, len(statuses))
	for i, status := range statuses {
		clone[i] = status.Clone()
	}
	return clone
}
