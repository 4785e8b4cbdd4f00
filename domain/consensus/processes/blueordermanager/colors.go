package blueordermanager

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/blockidset"
	"github.com/kaspanet/ghostledger/infrastructure/logger"
)

// UpdateColors classifies a virtual block over the current tips and stages
// the color of every block accordingly: the blocks in the virtual's blue
// set are Blue and all others are Red. It returns the colors that changed,
// in block insertion order.
func (bom *blueOrderManager) UpdateColors(stagingArea *model.StagingArea) ([]*externalapi.BlockColorChange, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "UpdateColors")
	defer onEnd()

	tips, err := bom.dagTopologyManager.Tips(stagingArea)
	if err != nil {
		return nil, err
	}
	virtualGHOSTDAGData, err := bom.ghostdagManager.VirtualGHOSTDAG(stagingArea, tips)
	if err != nil {
		return nil, err
	}
	blueSet, err := bom.blueSet(stagingArea, virtualGHOSTDAGData)
	if err != nil {
		return nil, err
	}

	var changes []*externalapi.BlockColorChange
	for _, blockID := range bom.blockStore.BlockIDs(stagingArea) {
		color := externalapi.BlockColorRed
		if blueSet.Contains(blockID) {
			color = externalapi.BlockColorBlue
		}
		previous := bom.blockColorStore.Get(stagingArea, blockID)
		if previous == color {
			continue
		}
		bom.blockColorStore.Stage(stagingArea, blockID, color)
		changes = append(changes, &externalapi.BlockColorChange{
			BlockID:  blockID,
			Previous: previous,
			Current:  color,
		})
	}

	log.Tracef("Color changes: %s", logger.NewLogClosure(func() string {
		return spew.Sdump(changes)
	}))
	return changes, nil
}

// blueSet returns the virtual's merge set blues together with the blue sets
// of every block on its selected parent chain
func (bom *blueOrderManager) blueSet(stagingArea *model.StagingArea,
	virtualGHOSTDAGData *model.BlockGHOSTDAGData) (blockidset.BlockIDSet, error) {

	blueSet := blockidset.NewFromSlice(virtualGHOSTDAGData.MergeSetBlues()...)
	current := virtualGHOSTDAGData.SelectedParent()
	for {
		blueSet.Add(current)
		currentGHOSTDAGData, err := bom.ghostdagDataStore.Get(stagingArea, current)
		if err != nil {
			return nil, err
		}
		for _, blue := range currentGHOSTDAGData.MergeSetBlues() {
			blueSet.Add(blue)
		}
		if current == bom.genesisID {
			break
		}
		current = currentGHOSTDAGData.SelectedParent()
	}
	return blueSet, nil
}

// Color returns the current color of the given block
func (bom *blueOrderManager) Color(stagingArea *model.StagingArea, blockID string) externalapi.BlockColor {
	return bom.blockColorStore.Get(stagingArea, blockID)
}
