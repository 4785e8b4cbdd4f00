package accountstore

import (
	"sort"

	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

var bucketName = []byte("accounts")

// accountStore represents a store of accounts. Accounts are never deleted.
type accountStore struct {
	bucket   model.DBBucket
	accounts map[string]*externalapi.Account
}

// New instantiates a new AccountStore and loads its contents from dbContext
func New(dbContext model.DBReader) (model.AccountStore, error) {
	as := &accountStore{
		bucket:   database.MakeBucket(bucketName),
		accounts: make(map[string]*externalapi.Account),
	}

	cursor, err := dbContext.Cursor(as.bucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	for ok := cursor.First(); ok; ok = cursor.Next() {
		accountBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		account, err := serialization.DeserializeAccount(accountBytes)
		if err != nil {
			return nil, err
		}
		as.accounts[account.ID] = account
	}
	return as, nil
}

// Stage stages a clone of the given account, overwriting any previous
// version of it
func (as *accountStore) Stage(stagingArea *model.StagingArea, account *externalapi.Account) {
	as.stagingShard(stagingArea).toUpdate[account.ID] = account.Clone()
}

func (as *accountStore) IsStaged(stagingArea *model.StagingArea) bool {
	return len(as.stagingShard(stagingArea).toUpdate) != 0
}

// Has returns whether the given account exists
func (as *accountStore) Has(stagingArea *model.StagingArea, accountID string) bool {
	if _, ok := as.stagingShard(stagingArea).toUpdate[accountID]; ok {
		return true
	}
	_, ok := as.accounts[accountID]
	return ok
}

// Get returns a clone of the given account
func (as *accountStore) Get(stagingArea *model.StagingArea, accountID string) (*externalapi.Account, error) {
	if account, ok := as.stagingShard(stagingArea).toUpdate[accountID]; ok {
		return account.Clone(), nil
	}
	if account, ok := as.accounts[accountID]; ok {
		return account.Clone(), nil
	}
	return nil, errors.Wrapf(database.ErrNotFound, "account %s not found", accountID)
}

// AccountIDs returns the ids of all accounts, sorted
func (as *accountStore) AccountIDs(stagingArea *model.StagingArea) []string {
	stagingShard := as.stagingShard(stagingArea)
	accountIDs := make([]string, 0, len(as.accounts)+len(stagingShard.toUpdate))
	for accountID := range as.accounts {
		accountIDs = append(accountIDs, accountID)
	}
	for accountID := range stagingShard.toUpdate {
		if _, ok := as.accounts[accountID]; !ok {
			accountIDs = append(accountIDs, accountID)
		}
	}
	sort.Strings(accountIDs)
	return accountIDs
}
