package executionrecordstore

import (
	"testing"

	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/infrastructure/db/database/ldb"
)

func TestExecutionRecordStore(t *testing.T) {
	db, err := ldb.NewInMemoryLevelDB(8)
	if err != nil {
		t.Fatalf("NewInMemoryLevelDB: %s", err)
	}
	defer db.Close()
	dbManager := database.New(db)

	store, err := New(dbManager)
	if err != nil {
		t.Fatalf("New: %s", err)
	}

	stagingArea := model.NewStagingArea()
	for _, blockID := range []string{"b", "a", "c"} {
		store.Stage(stagingArea, &externalapi.ExecutionRecord{
			BlockID:  blockID,
			Sequence: store.NextSequence(stagingArea),
			Entries: []*externalapi.ExecutionRecordEntry{
				{TransactionID: "t-" + blockID, From: "x", To: "y", Amount: 1},
			},
		})
	}
	store.Delete(stagingArea, "c")

	dbTx, err := dbManager.Begin()
	if err != nil {
		t.Fatalf("Begin: %s", err)
	}
	err = stagingArea.Commit(dbTx)
	if err != nil {
		t.Fatalf("Commit: %s", err)
	}
	err = dbTx.Commit()
	if err != nil {
		t.Fatalf("Commit: %s", err)
	}

	reloaded, err := New(dbManager)
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	stagingArea = model.NewStagingArea()
	records := reloaded.Records(stagingArea)
	if len(records) != 2 || records[0].BlockID != "b" || records[1].BlockID != "a" {
		t.Fatalf("Expected records of b and a in execution order but got %+v", records)
	}
	if reloaded.Has(stagingArea, "c") {
		t.Fatalf("Expected the record of c to be deleted")
	}
	if reloaded.NextSequence(stagingArea) != records[1].Sequence+1 {
		t.Fatalf("Unexpected next sequence %d", reloaded.NextSequence(stagingArea))
	}

	reloaded.Delete(stagingArea, "a")
	if reloaded.Has(stagingArea, "a") {
		t.Fatalf("Expected a staged deletion to hide the record")
	}
	if !reloaded.Has(model.NewStagingArea(), "a") {
		t.Fatalf("Expected a staged deletion not to affect other staging areas")
	}
	record, err := reloaded.Get(stagingArea, "b")
	if err != nil {
		t.Fatalf("Get: %s", err)
	}
	if record.Entries[0].TransactionID != "t-b" {
		t.Fatalf("Unexpected record %+v", record)
	}
}
