package blockstore

import (
	"sort"

	"github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/database/serialization"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

var bucketName = []byte("blocks")

// blockStore represents a store of blocks. Every committed block is kept in
// memory together with the child adjacency, which is not persisted and is
// rebuilt from the parents on load.
type blockStore struct {
	bucket   model.DBBucket
	blocks   map[string]*externalapi.Block
	children map[string][]string
	blockIDs []string
}

// New instantiates a new BlockStore and loads every block found in dbContext
func New(dbContext model.DBReader) (model.BlockStore, error) {
	bs := &blockStore{
		bucket:   database.MakeBucket(bucketName),
		blocks:   make(map[string]*externalapi.Block),
		children: make(map[string][]string),
		blockIDs: []string{},
	}
	err := bs.loadAll(dbContext)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (bs *blockStore) loadAll(dbContext model.DBReader) error {
	cursor, err := dbContext.Cursor(bs.bucket)
	if err != nil {
		return err
	}
	defer cursor.Close()

	type indexedBlock struct {
		block          *externalapi.Block
		insertionIndex uint64
	}
	var loaded []indexedBlock
	for ok := cursor.First(); ok; ok = cursor.Next() {
		blockBytes, err := cursor.Value()
		if err != nil {
			return err
		}
		block, insertionIndex, err := serialization.DeserializeBlock(blockBytes)
		if err != nil {
			return err
		}
		loaded = append(loaded, indexedBlock{block: block, insertionIndex: insertionIndex})
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].insertionIndex < loaded[j].insertionIndex
	})
	for i, entry := range loaded {
		if entry.insertionIndex != uint64(i) {
			return errors.Errorf("block %s has insertion index %d while %d was expected",
				entry.block.ID, entry.insertionIndex, i)
		}
		bs.add(entry.block)
	}
	log.Debugf("Loaded %d blocks", len(loaded))
	return nil
}

func (bs *blockStore) add(block *externalapi.Block) {
	bs.blocks[block.ID] = block
	bs.blockIDs = append(bs.blockIDs, block.ID)
	for _, parent := range block.Parents {
		bs.children[parent] = append(bs.children[parent], block.ID)
	}
}

// Stage stages the given block. The store keeps a clone of it.
func (bs *blockStore) Stage(stagingArea *model.StagingArea, block *externalapi.Block) {
	stagingShard := bs.stagingShard(stagingArea)
	stagingShard.toAdd[block.ID] = block.Clone()
	stagingShard.order = append(stagingShard.order, block.ID)
}

func (bs *blockStore) IsStaged(stagingArea *model.StagingArea) bool {
	return bs.stagingShard(stagingArea).isStaged()
}

// HasBlock returns whether a block with the given id exists in the store
func (bs *blockStore) HasBlock(stagingArea *model.StagingArea, blockID string) bool {
	if _, ok := bs.stagingShard(stagingArea).toAdd[blockID]; ok {
		return true
	}
	_, ok := bs.blocks[blockID]
	return ok
}

// Block gets the block associated with the given id
func (bs *blockStore) Block(stagingArea *model.StagingArea, blockID string) (*externalapi.Block, error) {
	if block, ok := bs.stagingShard(stagingArea).toAdd[blockID]; ok {
		return block, nil
	}
	if block, ok := bs.blocks[blockID]; ok {
		return block, nil
	}
	return nil, errors.Wrapf(database.ErrNotFound, "block %s not found", blockID)
}

// Children returns the ids of the blocks that list blockID as a parent,
// in insertion order
func (bs *blockStore) Children(stagingArea *model.StagingArea, blockID string) ([]string, error) {
	if !bs.HasBlock(stagingArea, blockID) {
		return nil, errors.Wrapf(database.ErrNotFound, "block %s not found", blockID)
	}

	committedChildren := bs.children[blockID]
	children := make([]string, len(committedChildren))
	copy(children, committedChildren)

	stagingShard := bs.stagingShard(stagingArea)
	for _, stagedID := range stagingShard.order {
		for _, parent := range stagingShard.toAdd[stagedID].Parents {
			if parent == blockID {
				children = append(children, stagedID)
				break
			}
		}
	}
	return children, nil
}

// BlockIDs returns the ids of all blocks in insertion order
func (bs *blockStore) BlockIDs(stagingArea *model.StagingArea) []string {
	stagingShard := bs.stagingShard(stagingArea)
	blockIDs := make([]string, 0, len(bs.blockIDs)+len(stagingShard.order))
	blockIDs = append(blockIDs, bs.blockIDs...)
	return append(blockIDs, stagingShard.order...)
}

// Count returns the number of blocks in the store
func (bs *blockStore) Count(stagingArea *model.StagingArea) uint64 {
	return uint64(len(bs.blockIDs) + len(bs.stagingShard(stagingArea).order))
}
