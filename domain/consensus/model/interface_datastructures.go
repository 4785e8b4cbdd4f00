package model

import "github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"

// Store is a common interface for data stores
type Store interface {
	IsStaged(stagingArea *StagingArea) bool
}

// BlockStore represents a store of blocks together with their child
// adjacency
type BlockStore interface {
	Store
	Stage(stagingArea *StagingArea, block *externalapi.Block)
	HasBlock(stagingArea *StagingArea, blockID string) bool
	Block(stagingArea *StagingArea, blockID string) (*externalapi.Block, error)
	Children(stagingArea *StagingArea, blockID string) ([]string, error)
	BlockIDs(stagingArea *StagingArea) []string
	Count(stagingArea *StagingArea) uint64
}

// GHOSTDAGDataStore represents a store of BlockGHOSTDAGData
type GHOSTDAGDataStore interface {
	Store
	Stage(stagingArea *StagingArea, blockID string, blockGHOSTDAGData *BlockGHOSTDAGData)
	Has(stagingArea *StagingArea, blockID string) bool
	Get(stagingArea *StagingArea, blockID string) (*BlockGHOSTDAGData, error)
}

// BlockColorStore represents a store of the current block colors
type BlockColorStore interface {
	Store
	Stage(stagingArea *StagingArea, blockID string, color externalapi.BlockColor)
	Get(stagingArea *StagingArea, blockID string) externalapi.BlockColor
}

// AccountStore represents a store of accounts
type AccountStore interface {
	Store
	Stage(stagingArea *StagingArea, account *externalapi.Account)
	Has(stagingArea *StagingArea, accountID string) bool
	Get(stagingArea *StagingArea, accountID string) (*externalapi.Account, error)
	AccountIDs(stagingArea *StagingArea) []string
}

// ExecutionRecordStore represents a store of the undo records of executed blocks
type ExecutionRecordStore interface {
	Store
	Stage(stagingArea *StagingArea, record *externalapi.ExecutionRecord)
	Delete(stagingArea *StagingArea, blockID string)
	Has(stagingArea *StagingArea, blockID string) bool
	Get(stagingArea *StagingArea, blockID string) (*externalapi.ExecutionRecord, error)
	Records(stagingArea *StagingArea) []*externalapi.ExecutionRecord
	NextSequence(stagingArea *StagingArea) uint64
}

// TransactionStatusStore represents a store of per-block transaction statuses
type TransactionStatusStore interface {
	Store
	Stage(stagingArea *StagingArea, blockID string, statuses []*externalapi.TransactionStatus)
	Get(stagingArea *StagingArea, blockID string) ([]*externalapi.TransactionStatus, bool)
}
