package rollbackmanager_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/ghostledger/domain/consensus"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/model/testapi"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/testutils"
	"github.com/pkg/errors"
)

func transfer(id, from, to string, amount, nonce uint64) *externalapi.Transaction {
	return &externalapi.Transaction{ID: id, From: from, To: to, Amount: amount, Nonce: nonce}
}

func TestRevertBlock(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, consensusConfig *consensus.Config) {
		factory := consensus.NewFactory()
		tc, teardown, err := factory.NewTestConsensus(consensusConfig, "TestRevertBlock")
		if err != nil {
			t.Fatalf("Error setting up consensus: %+v", err)
		}
		defer teardown(false)

		err = tc.AddAccount("alice", 100)
		if err != nil {
			t.Fatalf("AddAccount: %+v", err)
		}
		err = tc.AddAccount("bob", 50)
		if err != nil {
			t.Fatalf("AddAccount: %+v", err)
		}
		accountsBefore, err := tc.Accounts()
		if err != nil {
			t.Fatalf("Accounts: %+v", err)
		}
		commitmentBefore, err := tc.StateCommitment()
		if err != nil {
			t.Fatalf("StateCommitment: %+v", err)
		}

		_, err = tc.AddBlockWithTransactions("B1", []string{consensusConfig.GenesisID()}, []*externalapi.Transaction{
			transfer("t1", "alice", "bob", 30, 0),
			transfer("t2", "bob", "alice", 10, 0),
			transfer("t3", "alice", "alice", 5, 1),
			transfer("t4", "bob", "alice", 1000, 1),
		})
		if err != nil {
			t.Fatalf("AddBlockWithTransactions: %+v", err)
		}
		_, err = tc.ExecuteBlueChain()
		if err != nil {
			t.Fatalf("ExecuteBlueChain: %+v", err)
		}

		commitmentAfterExecution, err := tc.StateCommitment()
		if err != nil {
			t.Fatalf("StateCommitment: %+v", err)
		}
		if commitmentAfterExecution.Equal(commitmentBefore) {
			t.Fatalf("Expected the state commitment to change after execution")
		}

		err = tc.RevertBlock("B1")
		if err != nil {
			t.Fatalf("RevertBlock: %+v", err)
		}

		accountsAfter, err := tc.Accounts()
		if err != nil {
			t.Fatalf("Accounts: %+v", err)
		}
		if !reflect.DeepEqual(accountsBefore, accountsAfter) {
			t.Fatalf("Expected accounts %s but got %s", spew.Sdump(accountsBefore), spew.Sdump(accountsAfter))
		}
		commitmentAfterRevert, err := tc.StateCommitment()
		if err != nil {
			t.Fatalf("StateCommitment: %+v", err)
		}
		if !commitmentAfterRevert.Equal(commitmentBefore) {
			t.Fatalf("Expected state commitment %s after revert but got %s", commitmentBefore, commitmentAfterRevert)
		}

		statuses, err := tc.TransactionStatuses("B1")
		if err != nil {
			t.Fatalf("TransactionStatuses: %+v", err)
		}
		expectedCodes := []externalapi.TransactionStatusCode{
			externalapi.TransactionStatusReverted,
			externalapi.TransactionStatusReverted,
			externalapi.TransactionStatusReverted,
			externalapi.TransactionStatusFailed,
		}
		for i, status := range statuses {
			if status.Code != expectedCodes[i] {
				t.Fatalf("Expected status %s for transaction %s but got %s",
					expectedCodes[i], status.TransactionID, status.Code)
			}
		}

		blockInfo, err := tc.GetBlockInfo("B1")
		if err != nil {
			t.Fatalf("GetBlockInfo: %+v", err)
		}
		if blockInfo.IsExecuted {
			t.Fatalf("Expected B1 not to be executed after revert")
		}

		err = tc.RevertBlock("B1")
		if !errors.Is(err, ruleerrors.ErrBlockNotExecuted) {
			t.Fatalf("Expected ErrBlockNotExecuted but got %v", err)
		}
		err = tc.RevertBlock("missing")
		if !errors.Is(err, ruleerrors.ErrBlockNotFound) {
			t.Fatalf("Expected ErrBlockNotFound but got %v", err)
		}

		// The block can be executed again after a revert
		results, err := tc.ExecuteBlueChain()
		if err != nil {
			t.Fatalf("ExecuteBlueChain: %+v", err)
		}
		if len(results) != 1 || results[0].BlockID != "B1" {
			t.Fatalf("Expected B1 to be executed again: %s", spew.Sdump(results))
		}
		commitmentAfterReexecution, err := tc.StateCommitment()
		if err != nil {
			t.Fatalf("StateCommitment: %+v", err)
		}
		if !commitmentAfterReexecution.Equal(commitmentAfterExecution) {
			t.Fatalf("Expected re-execution to reach the same state")
		}
	})
}

func buildReorgDAG(t *testing.T, tc testapi.TestConsensus, executeInBetween bool) {
	for accountID, balance := range map[string]uint64{"alice": 100, "bob": 0} {
		err := tc.AddAccount(accountID, balance)
		if err != nil {
			t.Fatalf("AddAccount: %+v", err)
		}
	}

	_, err := tc.AddBlockWithTransactions("B1", []string{"genesis"},
		[]*externalapi.Transaction{transfer("t1", "alice", "bob", 10, 0)})
	if err != nil {
		t.Fatalf("AddBlockWithTransactions: %+v", err)
	}
	_, err = tc.AddBlockWithTransactions("B2", []string{"genesis"},
		[]*externalapi.Transaction{transfer("t2", "alice", "bob", 20, 0)})
	if err != nil {
		t.Fatalf("AddBlockWithTransactions: %+v", err)
	}

	if executeInBetween {
		_, err = tc.ExecuteBlueChain()
		if err != nil {
			t.Fatalf("ExecuteBlueChain: %+v", err)
		}
	}

	// C1 makes B2's side the heaviest, turning B1 red
	_, err = tc.AddBlockWithTransactions("C1", []string{"B2"},
		[]*externalapi.Transaction{transfer("t3", "alice", "bob", 5, 1)})
	if err != nil {
		t.Fatalf("AddBlockWithTransactions: %+v", err)
	}
}

func TestResolveExecution(t *testing.T) {
	factory := consensus.NewFactory()
	tc, teardown, err := factory.NewTestConsensus(testutils.ConfigWithK(0), "TestResolveExecution")
	if err != nil {
		t.Fatalf("Error setting up consensus: %+v", err)
	}
	defer teardown(false)
	buildReorgDAG(t, tc, true)

	resolution, err := tc.ResolveExecution()
	if err != nil {
		t.Fatalf("ResolveExecution: %+v", err)
	}
	if !reflect.DeepEqual(resolution.RevertedBlockIDs, []string{"B1"}) {
		t.Fatalf("Expected B1 to be reverted but got %v", resolution.RevertedBlockIDs)
	}
	var executed []string
	for _, result := range resolution.Executed {
		executed = append(executed, result.BlockID)
	}
	if !reflect.DeepEqual(executed, []string{"B2", "C1"}) {
		t.Fatalf("Expected B2 and C1 to be executed but got %v", executed)
	}

	freshFactory := consensus.NewFactory()
	fresh, freshTeardown, err := freshFactory.NewTestConsensus(testutils.ConfigWithK(0), "TestResolveExecutionFresh")
	if err != nil {
		t.Fatalf("Error setting up consensus: %+v", err)
	}
	defer freshTeardown(false)
	buildReorgDAG(t, fresh, false)
	_, err = fresh.ExecuteBlueChain()
	if err != nil {
		t.Fatalf("ExecuteBlueChain: %+v", err)
	}

	resolvedAccounts, err := tc.Accounts()
	if err != nil {
		t.Fatalf("Accounts: %+v", err)
	}
	freshAccounts, err := fresh.Accounts()
	if err != nil {
		t.Fatalf("Accounts: %+v", err)
	}
	if !reflect.DeepEqual(resolvedAccounts, freshAccounts) {
		t.Fatalf("Expected resolved accounts %s to equal a fresh execution %s",
			spew.Sdump(resolvedAccounts), spew.Sdump(freshAccounts))
	}

	resolution, err = tc.ResolveExecution()
	if err != nil {
		t.Fatalf("ResolveExecution: %+v", err)
	}
	if len(resolution.RevertedBlockIDs) != 0 || len(resolution.Executed) != 0 {
		t.Fatalf("Expected a second resolution to do nothing: %s", spew.Sdump(resolution))
	}
}
