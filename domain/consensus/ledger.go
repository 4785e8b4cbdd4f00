package consensus

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

// ExecuteBlueChain executes every blue block that was not executed yet,
// in blue order
func (s *consensus) ExecuteBlueChain() ([]*externalapi.BlockExecutionResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	stagingArea := model.NewStagingArea()
	results, err := s.transactionExecutor.ExecuteBlueChain(stagingArea)
	if err != nil {
		return nil, err
	}
	err = s.commitAllChanges(stagingArea)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// RevertBlock undoes the effects of the given executed block
func (s *consensus) RevertBlock(blockID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stagingArea := model.NewStagingArea()
	err := s.rollbackManager.RevertBlock(stagingArea, blockID)
	if err != nil {
		return err
	}
	return s.commitAllChanges(stagingArea)
}

// ResolveExecution reverts the blocks whose execution no longer agrees
// with the blue order and executes the blue order from there
func (s *consensus) ResolveExecution() (*externalapi.ExecutionResolution, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	stagingArea := model.NewStagingArea()
	resolution, err := s.rollbackManager.ResolveExecution(stagingArea)
	if err != nil {
		return nil, err
	}
	err = s.commitAllChanges(stagingArea)
	if err != nil {
		return nil, err
	}
	return resolution, nil
}

// TransactionStatuses returns the status of every transaction of the
// given block
func (s *consensus) TransactionStatuses(blockID string) ([]*externalapi.TransactionStatus, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.transactionExecutor.TransactionStatuses(model.NewStagingArea(), blockID)
}

// AddAccount creates an account with the given balance
func (s *consensus) AddAccount(accountID string, balance uint64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stagingArea := model.NewStagingArea()
	err := s.transactionExecutor.AddAccount(stagingArea, accountID, balance)
	if err != nil {
		return err
	}
	return s.commitAllChanges(stagingArea)
}

// GetAccount returns a copy of the given account
func (s *consensus) GetAccount(accountID string) (*externalapi.Account, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.transactionExecutor.Account(model.NewStagingArea(), accountID)
}

// Accounts returns copies of all accounts, sorted by id
func (s *consensus) Accounts() ([]*externalapi.Account, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.transactionExecutor.Accounts(model.NewStagingArea())
}

// StateCommitment returns the multiset hash of all accounts
func (s *consensus) StateCommitment() (*externalapi.DomainHash, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.transactionExecutor.StateCommitment(model.NewStagingArea())
}
