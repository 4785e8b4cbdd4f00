package ghostdagmanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/pkg/errors"
)

// ChooseSelectedParent returns the block with the highest weight, breaking
// ties in favor of the lexicographically smallest id
func (gm *ghostdagManager) ChooseSelectedParent(stagingArea *model.StagingArea, blockIDs ...string) (string, error) {
	if len(blockIDs) == 0 {
		return "", errors.New("cannot choose a selected parent out of no blocks")
	}

	selectedParent := blockIDs[0]
	selectedParentGHOSTDAGData, err := gm.ghostdagDataStore.Get(stagingArea, selectedParent)
	if err != nil {
		return "", err
	}
	for _, blockID := range blockIDs[1:] {
		blockGHOSTDAGData, err := gm.ghostdagDataStore.Get(stagingArea, blockID)
		if err != nil {
			return "", err
		}
		if gm.Less(selectedParent, selectedParentGHOSTDAGData, blockID, blockGHOSTDAGData) {
			selectedParent = blockID
			selectedParentGHOSTDAGData = blockGHOSTDAGData
		}
	}
	return selectedParent, nil
}

// Less returns true if block A is less preferred than block B: it has a
// lower weight, or the same weight and a greater id
func (gm *ghostdagManager) Less(blockIDA string, ghostdagDataA *model.BlockGHOSTDAGData,
	blockIDB string, ghostdagDataB *model.BlockGHOSTDAGData) bool {

	weightA := ghostdagDataA.Weight()
	weightB := ghostdagDataB.Weight()
	if weightA == weightB {
		return blockIDA > blockIDB
	}
	return weightA < weightB
}
