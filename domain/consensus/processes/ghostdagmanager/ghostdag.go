package ghostdagmanager

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/blockidset"
	"github.com/kaspanet/ghostledger/infrastructure/logger"
	"github.com/pkg/errors"
)

// blockGHOSTDAGData is the mutable counterpart of model.BlockGHOSTDAGData
// used while a block is being classified
type blockGHOSTDAGData struct {
	weight             uint64
	selectedParent     string
	mergeSetBlues      []string
	mergeSetReds       []string
	bluesAnticoneSizes map[string]model.KType
}

func (bg *blockGHOSTDAGData) toModel() *model.BlockGHOSTDAGData {
	return model.NewBlockGHOSTDAGData(bg.weight, bg.selectedParent, bg.mergeSetBlues, bg.mergeSetReds, bg.bluesAnticoneSizes)
}

// chainBlock is a block of the selected parent chain of the block being
// classified. The block being classified itself has isNewBlock set.
type chainBlock struct {
	blockID        string
	isNewBlock     bool
	selectedParent string
	mergeSetBlues  []string
}

// GHOSTDAG runs the GHOSTDAG protocol and stages the resulting BlockGHOSTDAGData.
// The function classifies the merge set of the new block by iterating over the
// blocks in the anticone of its selected parent (the parent with the highest
// weight) that are in its past, and adds any block to the merge set blues if
// by adding it these conditions will not be violated:
//
// 1) |anticone-of-candidate-block ∩ blue-set-of-newBlock| ≤ K
//
// 2) For every blue block in blue-set-of-newBlock:
//    |(anticone-of-blue-block ∩ blue-set-newBlock) ∪ {candidate-block}| ≤ K.
//    We validate this condition by maintaining a map bluesAnticoneSizes for
//    each block which holds all the blue anticone sizes that were affected by
//    the new added blue blocks.
//    So to find out what is |anticone-of-blue ∩ blue-set-of-newBlock| we just iterate in
//    the selected parent chain of newBlock until we find an existing entry in
//    bluesAnticoneSizes.
//
// For further details see the article https://eprint.iacr.org/2018/104.pdf
func (gm *ghostdagManager) GHOSTDAG(stagingArea *model.StagingArea, blockID string) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "GHOSTDAG")
	defer onEnd()

	parents, err := gm.dagTopologyManager.Parents(stagingArea, blockID)
	if err != nil {
		return err
	}

	if len(parents) == 0 {
		if blockID != gm.genesisID {
			return errors.Wrapf(ruleerrors.ErrInvalidParentSet, "block %s has no parents", blockID)
		}
		gm.ghostdagDataStore.Stage(stagingArea, blockID,
			model.NewBlockGHOSTDAGData(0, blockID, []string{}, []string{}, map[string]model.KType{}))
		return nil
	}

	ancestors, err := gm.dagTopologyManager.Ancestors(stagingArea, blockID)
	if err != nil {
		return err
	}
	newBlockData, err := gm.run(stagingArea, parents, blockidset.NewFromSlice(ancestors...))
	if err != nil {
		return err
	}

	log.Tracef("GHOSTDAG data of block %s: %s", blockID, logger.NewLogClosure(func() string {
		return spew.Sdump(newBlockData)
	}))
	gm.ghostdagDataStore.Stage(stagingArea, blockID, newBlockData)
	return nil
}

// VirtualGHOSTDAG classifies a transient block whose parents are the given
// tips. Its past is the whole DAG, so its blue set is the blue set of the
// DAG as a whole. Nothing is staged.
func (gm *ghostdagManager) VirtualGHOSTDAG(stagingArea *model.StagingArea, tips []string) (*model.BlockGHOSTDAGData, error) {
	if len(tips) == 0 {
		return nil, errors.Wrap(ruleerrors.ErrInvalidParentSet, "the virtual block must have at least one parent")
	}
	return gm.run(stagingArea, tips, nil)
}

func (gm *ghostdagManager) run(stagingArea *model.StagingArea, parents []string,
	newBlockPast blockidset.BlockIDSet) (*model.BlockGHOSTDAGData, error) {

	for _, parent := range parents {
		if !gm.ghostdagDataStore.Has(stagingArea, parent) {
			return nil, errors.Wrapf(ruleerrors.ErrUnclassifiedParent, "parent %s has no GHOSTDAG data", parent)
		}
	}

	selectedParent, err := gm.ChooseSelectedParent(stagingArea, parents...)
	if err != nil {
		return nil, err
	}

	newBlockData := &blockGHOSTDAGData{
		selectedParent:     selectedParent,
		mergeSetBlues:      []string{selectedParent},
		mergeSetReds:       []string{},
		bluesAnticoneSizes: map[string]model.KType{selectedParent: 0},
	}

	mergeSet, err := gm.mergeSetWithoutSelectedParent(stagingArea, selectedParent, newBlockPast)
	if err != nil {
		return nil, err
	}

	pasts := newPastCache(gm.dagTopologyManager, stagingArea)
	for _, blueCandidate := range mergeSet {
		isBlue, candidateAnticoneSize, candidateBluesAnticoneSizes, err :=
			gm.checkBlueCandidate(stagingArea, newBlockData, blueCandidate, pasts)
		if err != nil {
			return nil, err
		}

		if isBlue {
			// No k-cluster violation found, we can now set the candidate block as blue
			newBlockData.mergeSetBlues = append(newBlockData.mergeSetBlues, blueCandidate)
			newBlockData.bluesAnticoneSizes[blueCandidate] = candidateAnticoneSize
			for blue, blueAnticoneSize := range candidateBluesAnticoneSizes {
				newBlockData.bluesAnticoneSizes[blue] = blueAnticoneSize + 1
			}
		} else {
			newBlockData.mergeSetReds = append(newBlockData.mergeSetReds, blueCandidate)
		}
	}

	selectedParentGHOSTDAGData, err := gm.ghostdagDataStore.Get(stagingArea, selectedParent)
	if err != nil {
		return nil, err
	}
	newBlockData.weight = selectedParentGHOSTDAGData.Weight() + uint64(len(newBlockData.mergeSetBlues))
	return newBlockData.toModel(), nil
}

func (gm *ghostdagManager) checkBlueCandidate(stagingArea *model.StagingArea, newBlockData *blockGHOSTDAGData,
	blueCandidate string, pasts *pastCache) (isBlue bool, candidateAnticoneSize model.KType,
	candidateBluesAnticoneSizes map[string]model.KType, err error) {

	// The maximum length of mergeSetBlues can be K+1 because
	// it contains the selected parent.
	if model.KType(len(newBlockData.mergeSetBlues)) == gm.k+1 {
		return false, 0, nil, nil
	}

	candidateBluesAnticoneSizes = make(map[string]model.KType, gm.k)

	// Iterate over all blocks in the blue set of newBlock that are not in the past
	// of blueCandidate, and check for each one of them if blueCandidate potentially
	// enlarges their blue anticone to be over K, or that they enlarge the blue anticone
	// of blueCandidate to be over K.
	current := chainBlock{
		isNewBlock:     true,
		selectedParent: newBlockData.selectedParent,
		mergeSetBlues:  newBlockData.mergeSetBlues,
	}
	for {
		isBlue, isRed, err := gm.checkBlueCandidateWithChainBlock(stagingArea, newBlockData, current,
			blueCandidate, candidateBluesAnticoneSizes, &candidateAnticoneSize, pasts)
		if err != nil {
			return false, 0, nil, err
		}
		if isBlue {
			break
		}
		if isRed {
			return false, 0, nil, nil
		}
		if !current.isNewBlock && current.blockID == gm.genesisID {
			return false, 0, nil, errors.Errorf("reached genesis without finding an ancestor of %s", blueCandidate)
		}

		selectedParentGHOSTDAGData, err := gm.ghostdagDataStore.Get(stagingArea, current.selectedParent)
		if err != nil {
			return false, 0, nil, err
		}
		current = chainBlock{
			blockID:        current.selectedParent,
			selectedParent: selectedParentGHOSTDAGData.SelectedParent(),
			mergeSetBlues:  selectedParentGHOSTDAGData.MergeSetBlues(),
		}
	}

	return true, candidateAnticoneSize, candidateBluesAnticoneSizes, nil
}

func (gm *ghostdagManager) checkBlueCandidateWithChainBlock(stagingArea *model.StagingArea,
	newBlockData *blockGHOSTDAGData, current chainBlock, blueCandidate string,
	candidateBluesAnticoneSizes map[string]model.KType, candidateAnticoneSize *model.KType,
	pasts *pastCache) (isBlue, isRed bool, err error) {

	// If blueCandidate is in the future of the chain block, it means
	// that all remaining blues are in the past of the chain block and thus
	// in the past of blueCandidate. In this case we know for sure that
	// the anticone of blueCandidate will not exceed K, and we can mark
	// it as blue.
	//
	// The new block is always in the future of blueCandidate, so there's
	// no point in checking it.
	if !current.isNewBlock {
		isAncestorOfBlueCandidate, err := pasts.isAncestorOf(current.blockID, blueCandidate)
		if err != nil {
			return false, false, err
		}
		if isAncestorOfBlueCandidate {
			return true, false, nil
		}
	}

	for _, block := range current.mergeSetBlues {
		// Skip blocks that exist in the past of blueCandidate.
		isAncestorOfBlueCandidate, err := pasts.isAncestorOf(block, blueCandidate)
		if err != nil {
			return false, false, err
		}
		if isAncestorOfBlueCandidate {
			continue
		}

		// Candidates are visited most preferred first, so an accepted blue
		// may be in the future of blueCandidate. Such a block is not in its
		// anticone either.
		isDescendantOfBlueCandidate, err := pasts.isAncestorOf(blueCandidate, block)
		if err != nil {
			return false, false, err
		}
		if isDescendantOfBlueCandidate {
			continue
		}

		candidateBluesAnticoneSizes[block], err = gm.blueAnticoneSize(stagingArea, block, newBlockData)
		if err != nil {
			return false, false, err
		}
		*candidateAnticoneSize++

		if *candidateAnticoneSize > gm.k {
			// k-cluster violation: The candidate's blue anticone exceeded k
			return false, true, nil
		}

		if candidateBluesAnticoneSizes[block] == gm.k {
			// k-cluster violation: A block in candidate's blue anticone already
			// has k blue blocks in its own anticone
			return false, true, nil
		}

		// This is a sanity check that validates that a blue
		// block's blue anticone is not already larger than K.
		if candidateBluesAnticoneSizes[block] > gm.k {
			return false, false, errors.New("found blue anticone size larger than k")
		}
	}

	return false, false, nil
}

// blueAnticoneSize returns the blue anticone size of 'block' from the worldview of 'context'.
// Expects 'block' to be in the blue set of 'context'
func (gm *ghostdagManager) blueAnticoneSize(stagingArea *model.StagingArea,
	block string, context *blockGHOSTDAGData) (model.KType, error) {

	if blueAnticoneSize, ok := context.bluesAnticoneSizes[block]; ok {
		return blueAnticoneSize, nil
	}

	current := context.selectedParent
	for {
		currentGHOSTDAGData, err := gm.ghostdagDataStore.Get(stagingArea, current)
		if err != nil {
			return 0, err
		}
		if blueAnticoneSize, ok := currentGHOSTDAGData.BluesAnticoneSizes()[block]; ok {
			return blueAnticoneSize, nil
		}
		if current == gm.genesisID {
			break
		}
		current = currentGHOSTDAGData.SelectedParent()
	}
	return 0, errors.Errorf("block %s is not in blue set of the given context", block)
}
