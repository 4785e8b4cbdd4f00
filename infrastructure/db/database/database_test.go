package database_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/kaspanet/ghostledger/infrastructure/db/database"
)

func TestDatabasePutGetDelete(t *testing.T) {
	testForAllDatabaseTypes(t, "TestDatabasePutGetDelete", testDatabasePutGetDelete)
}

func testDatabasePutGetDelete(t *testing.T, db database.Database, testName string) {
	key := database.MakeBucket([]byte("accounts")).Key([]byte("alice"))

	_, err := db.Get(key)
	if !database.IsNotFoundError(err) {
		t.Fatalf("%s: Get of a missing key returned %v instead of ErrNotFound", testName, err)
	}

	err = db.Put(key, []byte("100"))
	if err != nil {
		t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
	}
	value, err := db.Get(key)
	if err != nil {
		t.Fatalf("%s: Get unexpectedly failed: %s", testName, err)
	}
	if !bytes.Equal(value, []byte("100")) {
		t.Fatalf("%s: Get returned %s instead of 100", testName, value)
	}

	err = db.Delete(key)
	if err != nil {
		t.Fatalf("%s: Delete unexpectedly failed: %s", testName, err)
	}
	exists, err := db.Has(key)
	if err != nil {
		t.Fatalf("%s: Has unexpectedly failed: %s", testName, err)
	}
	if exists {
		t.Fatalf("%s: key still exists after Delete", testName)
	}
}

func TestTransactionCommitAndRollback(t *testing.T) {
	testForAllDatabaseTypes(t, "TestTransactionCommitAndRollback", testTransactionCommitAndRollback)
}

func testTransactionCommitAndRollback(t *testing.T, db database.Database, testName string) {
	bucket := database.MakeBucket([]byte("blocks"))
	committedKey := bucket.Key([]byte("committed"))
	rolledBackKey := bucket.Key([]byte("rolledBack"))

	dbTx, err := db.Begin()
	if err != nil {
		t.Fatalf("%s: Begin unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Put(committedKey, []byte("value"))
	if err != nil {
		t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
	}
	exists, err := db.Has(committedKey)
	if err != nil {
		t.Fatalf("%s: Has unexpectedly failed: %s", testName, err)
	}
	if exists {
		t.Fatalf("%s: uncommitted value is visible outside the transaction", testName)
	}
	err = dbTx.Commit()
	if err != nil {
		t.Fatalf("%s: Commit unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Commit()
	if err == nil {
		t.Fatalf("%s: second Commit unexpectedly succeeded", testName)
	}
	err = dbTx.RollbackUnlessClosed()
	if err != nil {
		t.Fatalf("%s: RollbackUnlessClosed on a closed transaction failed: %s", testName, err)
	}

	dbTx, err = db.Begin()
	if err != nil {
		t.Fatalf("%s: Begin unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Put(rolledBackKey, []byte("value"))
	if err != nil {
		t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Rollback()
	if err != nil {
		t.Fatalf("%s: Rollback unexpectedly failed: %s", testName, err)
	}
	err = dbTx.Put(rolledBackKey, []byte("value"))
	if err == nil {
		t.Fatalf("%s: Put into a closed transaction unexpectedly succeeded", testName)
	}

	exists, err = db.Has(committedKey)
	if err != nil || !exists {
		t.Fatalf("%s: committed key is missing (err: %v)", testName, err)
	}
	exists, err = db.Has(rolledBackKey)
	if err != nil || exists {
		t.Fatalf("%s: rolled back key exists (err: %v)", testName, err)
	}
}

func TestCursorStaysInsideBucket(t *testing.T) {
	testForAllDatabaseTypes(t, "TestCursorStaysInsideBucket", testCursorStaysInsideBucket)
}

func testCursorStaysInsideBucket(t *testing.T, db database.Database, testName string) {
	bucket := database.MakeBucket([]byte("inside"))
	entries := populateDatabaseForTest(t, db, bucket, testName)
	populateDatabaseForTest(t, db, database.MakeBucket([]byte("outside")), testName)

	cursor, err := db.Cursor(bucket)
	if err != nil {
		t.Fatalf("%s: Cursor unexpectedly failed: %s", testName, err)
	}
	defer cursor.Close()

	count := 0
	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			t.Fatalf("%s: Key unexpectedly failed: %s", testName, err)
		}
		value, err := cursor.Value()
		if err != nil {
			t.Fatalf("%s: Value unexpectedly failed: %s", testName, err)
		}
		expected := entries[count]
		if !bytes.Equal(key.Suffix(), expected.key.Suffix()) || !bytes.Equal(value, expected.value) {
			t.Fatalf("%s: entry %d: expected %s=%s, got %s=%s", testName, count,
				expected.key.Suffix(), expected.value, key.Suffix(), value)
		}
		count++
	}
	if count != len(entries) {
		t.Fatalf("%s: cursor returned %d entries instead of %d", testName, count, len(entries))
	}

	err = cursor.Seek(bucket.Key([]byte("key5")))
	if err != nil {
		t.Fatalf("%s: Seek unexpectedly failed: %s", testName, err)
	}
	err = cursor.Seek(bucket.Key([]byte("missing")))
	if !database.IsNotFoundError(err) {
		t.Fatalf("%s: Seek of a missing key returned %v instead of ErrNotFound", testName, err)
	}
}

func TestBucketPath(t *testing.T) {
	bucket := database.MakeBucket([]byte("a")).Bucket([]byte("b"))
	key := bucket.Key([]byte("c"))
	if string(key.Bytes()) != "a/b/c" {
		t.Fatalf("unexpected key bytes %q", key.Bytes())
	}
	if fmt.Sprintf("%s", key) != "612f622f63" {
		t.Fatalf("unexpected key string %s", key)
	}
	if string(database.MakeBucket(nil).Key([]byte("x")).Bytes()) != "x" {
		t.Fatalf("an empty bucket must not add a separator")
	}
}
