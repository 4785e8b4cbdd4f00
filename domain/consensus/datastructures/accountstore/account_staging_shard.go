package accountstore

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

type accountStagingShard struct {
	store    *accountStore
	toUpdate map[string]*externalapi.Account
}

func (as *accountStore) stagingShard(stagingArea *model.StagingArea) *accountStagingShard {
	return stagingArea.GetOrCreateShard(model.StagingShardIDAccount, func() model.StagingShard {
		return &accountStagingShard{
			store:    as,
			toUpdate: make(map[string]*externalapi.Account),
		}
	}).(*accountStagingShard)
}

func (ass *accountStagingShard) Commit(dbTx model.DBTransaction) error {
	for accountID, account := range ass.toUpdate {
		err := dbTx.Put(ass.store.bucket.Key([]byte(accountID)), serialization.SerializeAccount(account))
		if err != nil {
			return err
		}
		ass.store.accounts[accountID] = account
	}
	return nil
}
