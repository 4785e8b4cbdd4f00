package consensus

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/pkg/errors"
)

var kKey = database.MakeBucket([]byte("metadata")).Key([]byte("k"))

// checkAndStoreK stores k on a fresh database and otherwise makes sure it
// equals the k the database was created with
func checkAndStoreK(dbManager model.DBManager, k model.KType) error {
	exists, err := dbManager.Has(kKey)
	if err != nil {
		return err
	}
	if !exists {
		return dbManager.Put(kKey, []byte{byte(k)})
	}

	kBytes, err := dbManager.Get(kKey)
	if err != nil {
		return err
	}
	if len(kBytes) != 1 {
		return errors.Errorf("malformed k entry of length %d", len(kBytes))
	}
	if storedK := model.KType(kBytes[0]); storedK != k {
		return errors.Errorf("the database was created with k=%d while k=%d is configured", storedK, k)
	}
	return nil
}
