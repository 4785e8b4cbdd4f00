package ghostdagmanager

import (
	"sort"

	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/blockidset"
)

// mergeSetWithoutSelectedParent returns the blocks of
// anticone(selectedParent) ∩ past(new block), most preferred first.
// A nil newBlockPast stands for the virtual block, whose past is the
// whole DAG.
func (gm *ghostdagManager) mergeSetWithoutSelectedParent(stagingArea *model.StagingArea,
	selectedParent string, newBlockPast blockidset.BlockIDSet) ([]string, error) {

	selectedParentAnticone, err := gm.dagTraversalManager.Anticone(stagingArea, selectedParent)
	if err != nil {
		return nil, err
	}

	mergeSet := make([]string, 0, len(selectedParentAnticone))
	for _, blockID := range selectedParentAnticone {
		if newBlockPast == nil || newBlockPast.Contains(blockID) {
			mergeSet = append(mergeSet, blockID)
		}
	}

	err = gm.sortMergeSet(stagingArea, mergeSet)
	if err != nil {
		return nil, err
	}
	return mergeSet, nil
}

func (gm *ghostdagManager) sortMergeSet(stagingArea *model.StagingArea, mergeSet []string) error {
	ghostdagDatas := make(map[string]*model.BlockGHOSTDAGData, len(mergeSet))
	for _, blockID := range mergeSet {
		ghostdagData, err := gm.ghostdagDataStore.Get(stagingArea, blockID)
		if err != nil {
			return err
		}
		ghostdagDatas[blockID] = ghostdagData
	}

	sort.Slice(mergeSet, func(i, j int) bool {
		return gm.Less(mergeSet[j], ghostdagDatas[mergeSet[j]], mergeSet[i], ghostdagDatas[mergeSet[i]])
	})
	return nil
}
