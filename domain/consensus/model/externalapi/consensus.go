package externalapi

// Consensus maintains the block DAG, its ordering and the account ledger
// driven by that ordering
type Consensus interface {
	InsertBlock(block *Block) (*BlockInsertionResult, error)

	GetBlock(blockID string) (*Block, error)
	GetBlockInfo(blockID string) (*BlockInfo, error)
	ParentsOf(blockID string) ([]string, error)
	ChildrenOf(blockID string) ([]string, error)
	Anticone(blockID string) ([]string, error)
	SelectedParentChain(blockID string) ([]string, error)
	Tips() ([]string, error)
	GetOrderedBlueBlocks() ([]string, error)
	BlueOrderHash() (*DomainHash, error)

	ExecuteBlueChain() ([]*BlockExecutionResult, error)
	RevertBlock(blockID string) error
	ResolveExecution() (*ExecutionResolution, error)
	TransactionStatuses(blockID string) ([]*TransactionStatus, error)

	AddAccount(accountID string, balance uint64) error
	GetAccount(accountID string) (*Account, error)
	Accounts() ([]*Account, error)
	StateCommitment() (*DomainHash, error)
}
