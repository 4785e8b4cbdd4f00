package dagtopologymanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/blockidset"
)

// dagTopologyManager exposes methods for querying relationships
// between blocks in the DAG
type dagTopologyManager struct {
	blockStore model.BlockStore
}

// New instantiates a new DAGTopologyManager
func New(blockStore model.BlockStore) model.DAGTopologyManager {
	return &dagTopologyManager{
		blockStore: blockStore,
	}
}

// Parents returns the DAG parents of the given blockID
func (dtm *dagTopologyManager) Parents(stagingArea *model.StagingArea, blockID string) ([]string, error) {
	block, err := dtm.blockStore.Block(stagingArea, blockID)
	if err != nil {
		return nil, err
	}
	return block.Parents, nil
}

// Children returns the DAG children of the given blockID
func (dtm *dagTopologyManager) Children(stagingArea *model.StagingArea, blockID string) ([]string, error) {
	return dtm.blockStore.Children(stagingArea, blockID)
}

// IsAncestorOf returns true if blockIDA is a DAG ancestor of blockIDB.
// A block is not its own ancestor.
func (dtm *dagTopologyManager) IsAncestorOf(stagingArea *model.StagingArea, blockIDA string, blockIDB string) (bool, error) {
	found := false
	err := dtm.traverse(stagingArea, blockIDB, dtm.Parents, func(blockID string) bool {
		if blockID == blockIDA {
			found = true
			return false
		}
		return true
	})
	return found, err
}

// Ancestors returns every block reachable from blockID through parent links,
// sorted by id
func (dtm *dagTopologyManager) Ancestors(stagingArea *model.StagingArea, blockID string) ([]string, error) {
	ancestors := blockidset.New()
	err := dtm.traverse(stagingArea, blockID, dtm.Parents, func(ancestor string) bool {
		ancestors.Add(ancestor)
		return true
	})
	if err != nil {
		return nil, err
	}
	return ancestors.ToSlice(), nil
}

// Descendants returns every block reachable from blockID through child
// links, sorted by id
func (dtm *dagTopologyManager) Descendants(stagingArea *model.StagingArea, blockID string) ([]string, error) {
	descendants := blockidset.New()
	err := dtm.traverse(stagingArea, blockID, dtm.Children, func(descendant string) bool {
		descendants.Add(descendant)
		return true
	})
	if err != nil {
		return nil, err
	}
	return descendants.ToSlice(), nil
}

// Tips returns the blocks without children, sorted by id
func (dtm *dagTopologyManager) Tips(stagingArea *model.StagingArea) ([]string, error) {
	tips := blockidset.New()
	for _, blockID := range dtm.blockStore.BlockIDs(stagingArea) {
		children, err := dtm.blockStore.Children(stagingArea, blockID)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			tips.Add(blockID)
		}
	}
	return tips.ToSlice(), nil
}

// traverse walks breadth-first from the neighbours of start, visiting every
// reachable block once and excluding start. The walk stops early when visit
// returns false.
func (dtm *dagTopologyManager) traverse(stagingArea *model.StagingArea, start string,
	neighbours func(*model.StagingArea, string) ([]string, error), visit func(string) bool) error {

	visited := blockidset.NewFromSlice(start)
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		next, err := neighbours(stagingArea, current)
		if err != nil {
			return err
		}
		for _, blockID := range next {
			if visited.Contains(blockID) {
				continue
			}
			visited.Add(blockID)
			if !visit(blockID) {
				return nil
			}
			queue = append(queue, blockID)
		}
	}
	return nil
}
