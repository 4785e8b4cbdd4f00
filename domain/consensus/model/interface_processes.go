package model

import "github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"

// DAGTopologyManager exposes methods for querying relationships
// between blocks in the DAG
type DAGTopologyManager interface {
	Parents(stagingArea *StagingArea, blockID string) ([]string, error)
	Children(stagingArea *StagingArea, blockID string) ([]string, error)
	IsAncestorOf(stagingArea *StagingArea, blockIDA string, blockIDB string) (bool, error)
	Ancestors(stagingArea *StagingArea, blockID string) ([]string, error)
	Descendants(stagingArea *StagingArea, blockID string) ([]string, error)
	Tips(stagingArea *StagingArea) ([]string, error)
}

// DAGTraversalManager exposes methods for traversing blocks
// in the DAG
type DAGTraversalManager interface {
	Anticone(stagingArea *StagingArea, blockID string) ([]string, error)
	SelectedParentChain(stagingArea *StagingArea, blockID string) ([]string, error)
}

// GHOSTDAGManager resolves and manages GHOSTDAG block data
type GHOSTDAGManager interface {
	GHOSTDAG(stagingArea *StagingArea, blockID string) error
	VirtualGHOSTDAG(stagingArea *StagingArea, tips []string) (*BlockGHOSTDAGData, error)
	ChooseSelectedParent(stagingArea *StagingArea, blockIDs ...string) (string, error)
	Less(blockIDA string, ghostdagDataA *BlockGHOSTDAGData,
		blockIDB string, ghostdagDataB *BlockGHOSTDAGData) bool
}

// BlueOrderManager derives the current block colors from the virtual
// block and the canonical order of the blue blocks
type BlueOrderManager interface {
	UpdateColors(stagingArea *StagingArea) ([]*externalapi.BlockColorChange, error)
	Color(stagingArea *StagingArea, blockID string) externalapi.BlockColor
	Weight(stagingArea *StagingArea, blockID string) (uint64, error)
	OrderedBlueBlocks(stagingArea *StagingArea) ([]string, error)
	BlueOrderHash(stagingArea *StagingArea) (*externalapi.DomainHash, error)
}

// TransactionExecutor applies the transactions of blue blocks to the
// account ledger
type TransactionExecutor interface {
	ExecuteBlueChain(stagingArea *StagingArea) ([]*externalapi.BlockExecutionResult, error)
	AddAccount(stagingArea *StagingArea, accountID string, balance uint64) error
	Account(stagingArea *StagingArea, accountID string) (*externalapi.Account, error)
	Accounts(stagingArea *StagingArea) ([]*externalapi.Account, error)
	StateCommitment(stagingArea *StagingArea) (*externalapi.DomainHash, error)
	TransactionStatuses(stagingArea *StagingArea, blockID string) ([]*externalapi.TransactionStatus, error)
}

// RollbackManager undoes the effects of executed blocks
type RollbackManager interface {
	RevertBlock(stagingArea *StagingArea, blockID string) error
	ResolveExecution(stagingArea *StagingArea) (*externalapi.ExecutionResolution, error)
}
