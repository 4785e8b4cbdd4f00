package consensus

import (
	"sync"

	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/ghostledger/infrastructure/logger"
	"github.com/pkg/errors"
)

type consensus struct {
	lock            *sync.RWMutex
	databaseContext model.DBManager
	genesisID       string

	blockStore             model.BlockStore
	ghostdagDataStore      model.GHOSTDAGDataStore
	blockColorStore        model.BlockColorStore
	accountStore           model.AccountStore
	executionRecordStore   model.ExecutionRecordStore
	transactionStatusStore model.TransactionStatusStore

	dagTopologyManager  model.DAGTopologyManager
	dagTraversalManager model.DAGTraversalManager
	ghostdagManager     model.GHOSTDAGManager
	blueOrderManager    model.BlueOrderManager
	transactionExecutor model.TransactionExecutor
	rollbackManager     model.RollbackManager
}

// InsertBlock adds the given block to the DAG, classifies it and
// re-derives the color of every block. Nothing is changed if an error
// is returned.
func (s *consensus) InsertBlock(block *externalapi.Block) (*externalapi.BlockInsertionResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	stagingArea := model.NewStagingArea()
	result, err := s.insertBlock(stagingArea, block)
	if err != nil {
		return nil, err
	}
	err = s.commitAllChanges(stagingArea)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *consensus) insertBlock(stagingArea *model.StagingArea, block *externalapi.Block) (
	*externalapi.BlockInsertionResult, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "insertBlock")
	defer onEnd()

	err := s.validateBlockStructure(stagingArea, block)
	if err != nil {
		return nil, err
	}

	s.blockStore.Stage(stagingArea, block)

	err = s.ghostdagManager.GHOSTDAG(stagingArea, block.ID)
	if err != nil {
		return nil, err
	}

	colorChanges, err := s.blueOrderManager.UpdateColors(stagingArea)
	if err != nil {
		return nil, err
	}

	blockInfo, err := s.getBlockInfo(stagingArea, block.ID)
	if err != nil {
		return nil, err
	}

	log.Debugf("Inserted block %s with weight %d (%s)", block.ID, blockInfo.Weight, blockInfo.Color)
	return &externalapi.BlockInsertionResult{
		BlockInfo:    blockInfo,
		ColorChanges: colorChanges,
	}, nil
}

func (s *consensus) validateBlockStructure(stagingArea *model.StagingArea, block *externalapi.Block) error {
	if block.ID == "" {
		return errors.WithStack(ruleerrors.ErrEmptyBlockID)
	}
	if s.blockStore.HasBlock(stagingArea, block.ID) {
		return errors.Wrapf(ruleerrors.ErrDuplicateBlock, "block %s already exists", block.ID)
	}
	if len(block.Parents) == 0 && block.ID != s.genesisID {
		return errors.Wrapf(ruleerrors.ErrInvalidParentSet, "block %s has no parents", block.ID)
	}

	seen := make(map[string]struct{}, len(block.Parents))
	var missingParentIDs []string
	for _, parent := range block.Parents {
		if _, ok := seen[parent]; ok {
			return errors.Wrapf(ruleerrors.ErrInvalidParentSet, "block %s lists parent %s more than once",
				block.ID, parent)
		}
		seen[parent] = struct{}{}

		if !s.blockStore.HasBlock(stagingArea, parent) {
			missingParentIDs = append(missingParentIDs, parent)
		}
	}
	if len(missingParentIDs) > 0 {
		return ruleerrors.NewErrMissingParents(missingParentIDs)
	}
	return nil
}

func (s *consensus) commitAllChanges(stagingArea *model.StagingArea) error {
	dbTx, err := s.databaseContext.Begin()
	if err != nil {
		return err
	}
	defer dbTx.RollbackUnlessClosed()

	err = stagingArea.Commit(dbTx)
	if err != nil {
		return err
	}
	return dbTx.Commit()
}

// GetBlock returns the block with the given id
func (s *consensus) GetBlock(blockID string) (*externalapi.Block, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stagingArea := model.NewStagingArea()
	err := s.checkBlockExists(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	block, err := s.blockStore.Block(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	return block.Clone(), nil
}

// GetBlockInfo returns the classification of the given block. For an
// unknown block only Exists is set, to false.
func (s *consensus) GetBlockInfo(blockID string) (*externalapi.BlockInfo, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stagingArea := model.NewStagingArea()
	if !s.blockStore.HasBlock(stagingArea, blockID) {
		return &externalapi.BlockInfo{Exists: false}, nil
	}
	return s.getBlockInfo(stagingArea, blockID)
}

func (s *consensus) getBlockInfo(stagingArea *model.StagingArea, blockID string) (*externalapi.BlockInfo, error) {
	ghostdagData, err := s.ghostdagDataStore.Get(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	blockInfo := &externalapi.BlockInfo{
		Exists:         true,
		Color:          s.blueOrderManager.Color(stagingArea, blockID),
		SelectedParent: ghostdagData.SelectedParent(),
		Weight:         ghostdagData.Weight(),
		MergeSetBlues:  ghostdagData.MergeSetBlues(),
		MergeSetReds:   ghostdagData.MergeSetReds(),
		IsExecuted:     s.executionRecordStore.Has(stagingArea, blockID),
	}
	return blockInfo.Clone(), nil
}

// ParentsOf returns the parents of the given block in the order they were
// listed on insertion
func (s *consensus) ParentsOf(blockID string) ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stagingArea := model.NewStagingArea()
	err := s.checkBlockExists(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	parents, err := s.dagTopologyManager.Parents(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	return append([]string{}, parents...), nil
}

// ChildrenOf returns the children of the given block in insertion order
func (s *consensus) ChildrenOf(blockID string) ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stagingArea := model.NewStagingArea()
	err := s.checkBlockExists(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	return s.dagTopologyManager.Children(stagingArea, blockID)
}

// Anticone returns the blocks that are neither ancestors nor descendants
// of the given block, sorted by id
func (s *consensus) Anticone(blockID string) ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stagingArea := model.NewStagingArea()
	err := s.checkBlockExists(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	return s.dagTraversalManager.Anticone(stagingArea, blockID)
}

// SelectedParentChain returns the given block followed by its selected
// parent, that block's selected parent and so on down to genesis
func (s *consensus) SelectedParentChain(blockID string) ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stagingArea := model.NewStagingArea()
	err := s.checkBlockExists(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	return s.dagTraversalManager.SelectedParentChain(stagingArea, blockID)
}

// Tips returns the blocks without children, sorted by id
func (s *consensus) Tips() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.dagTopologyManager.Tips(model.NewStagingArea())
}

// GetOrderedBlueBlocks returns the blue blocks sorted by weight, ties
// broken by id
func (s *consensus) GetOrderedBlueBlocks() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.blueOrderManager.OrderedBlueBlocks(model.NewStagingArea())
}

// BlueOrderHash returns a digest of GetOrderedBlueBlocks
func (s *consensus) BlueOrderHash() (*externalapi.DomainHash, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.blueOrderManager.BlueOrderHash(model.NewStagingArea())
}

func (s *consensus) checkBlockExists(stagingArea *model.StagingArea, blockID string) error {
	if !s.blockStore.HasBlock(stagingArea, blockID) {
		return errors.Wrapf(ruleerrors.ErrBlockNotFound, "block %s does not exist", blockID)
	}
	return nil
}
