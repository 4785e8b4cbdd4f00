package transactionexecutor

import (
	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/multiset"
	"github.com/pkg/errors"
)

// AddAccount creates a new account with the given balance and a zero nonce
func (te *transactionExecutor) AddAccount(stagingArea *model.StagingArea, accountID string, balance uint64) error {
	if te.accountStore.Has(stagingArea, accountID) {
		return errors.Wrapf(ruleerrors.ErrAccountExists, "account %s already exists", accountID)
	}
	te.accountStore.Stage(stagingArea, &externalapi.Account{
		ID:      accountID,
		Balance: balance,
		Nonce:   0,
	})
	return nil
}

// Account returns a copy of the given account
func (te *transactionExecutor) Account(stagingArea *model.StagingArea, accountID string) (*externalapi.Account, error) {
	account, err := te.accountStore.Get(stagingArea, accountID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, errors.Wrapf(ruleerrors.ErrAccountNotFound, "account %s does not exist", accountID)
		}
		return nil, err
	}
	return account, nil
}

// Accounts returns copies of all accounts, sorted by id
func (te *transactionExecutor) Accounts(stagingArea *model.StagingArea) ([]*externalapi.Account, error) {
	accountIDs := te.accountStore.AccountIDs(stagingArea)
	accounts := make([]*externalapi.Account, len(accountIDs))
	for i, accountID := range accountIDs {
		account, err := te.accountStore.Get(stagingArea, accountID)
		if err != nil {
			return nil, err
		}
		accounts[i] = account
	}
	return accounts, nil
}

// StateCommitment returns the multiset hash of all accounts. It does not
// depend on the order in which accounts were created or updated.
func (te *transactionExecutor) StateCommitment(stagingArea *model.StagingArea) (*externalapi.DomainHash, error) {
	accounts, err := te.Accounts(stagingArea)
	if err != nil {
		return nil, err
	}
	accountsMultiset := multiset.New()
	for _, account := range accounts {
		accountsMultiset.Add(serialization.SerializeAccount(account))
	}
	return accountsMultiset.Hash(), nil
}

// TransactionStatuses returns the status of every transaction of the given
// block, in block order. Transactions of a block that was never executed
// are Pending.
func (te *transactionExecutor) TransactionStatuses(stagingArea *model.StagingArea, blockID string) (
	[]*externalapi.TransactionStatus, error) {

	block, err := te.blockStore.Block(stagingArea, blockID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, errors.Wrapf(ruleerrors.ErrBlockNotFound, "block %s does not exist", blockID)
		}
		return nil, err
	}

	if statuses, ok := te.transactionStatusStore.Get(stagingArea, blockID); ok {
		return statuses, nil
	}

	statuses := make([]*externalapi.TransactionStatus, len(block.Transactions))
	for i, tx := range block.Transactions {
		statuses[i] = &externalapi.TransactionStatus{
			TransactionID: tx.ID,
			Code:          externalapi.TransactionStatusPending,
		}
	}
	return statuses, nil
}
