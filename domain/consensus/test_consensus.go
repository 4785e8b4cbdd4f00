package consensus

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/dagconfig"
	"github.com/kaspanet/ghostledger/infrastructure/db/database"
)

type testConsensus struct {
	*consensus
	dagParams *dagconfig.Params
	database  database.Database
}

func (tc *testConsensus) DAGParams() *dagconfig.Params {
	return tc.dagParams
}

// AddBlock inserts a block without transactions with the given id and
// parents
func (tc *testConsensus) AddBlock(blockID string, parentIDs ...string) (*externalapi.BlockInsertionResult, error) {
	return tc.AddBlockWithTransactions(blockID, parentIDs, nil)
}

// AddBlockWithTransactions inserts a block with the given id, parents and
// transactions
func (tc *testConsensus) AddBlockWithTransactions(blockID string, parentIDs []string,
	transactions []*externalapi.Transaction) (*externalapi.BlockInsertionResult, error) {

	if transactions == nil {
		transactions = []*externalapi.Transaction{}
	}
	return tc.InsertBlock(&externalapi.Block{
		ID:           blockID,
		Parents:      parentIDs,
		Transactions: transactions,
	})
}

// BlockColor returns the current color of the given block
func (tc *testConsensus) BlockColor(blockID string) externalapi.BlockColor {
	tc.lock.RLock()
	defer tc.lock.RUnlock()

	return tc.blueOrderManager.Color(model.NewStagingArea(), blockID)
}
