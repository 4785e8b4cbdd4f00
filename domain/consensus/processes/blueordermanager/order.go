package blueordermanager

import (
	"sort"

	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/hashes"
)

// Weight returns the number of blue blocks in the past of the given block
func (bom *blueOrderManager) Weight(stagingArea *model.StagingArea, blockID string) (uint64, error) {
	ghostdagData, err := bom.ghostdagDataStore.Get(stagingArea, blockID)
	if err != nil {
		return 0, err
	}
	return ghostdagData.Weight(), nil
}

// OrderedBlueBlocks returns the blue blocks sorted by weight, ties broken by id
func (bom *blueOrderManager) OrderedBlueBlocks(stagingArea *model.StagingArea) ([]string, error) {
	weights := make(map[string]uint64)
	var blues []string
	for _, blockID := range bom.blockStore.BlockIDs(stagingArea) {
		if bom.blockColorStore.Get(stagingArea, blockID) != externalapi.BlockColorBlue {
			continue
		}
		weight, err := bom.Weight(stagingArea, blockID)
		if err != nil {
			return nil, err
		}
		weights[blockID] = weight
		blues = append(blues, blockID)
	}

	sort.Slice(blues, func(i, j int) bool {
		if weights[blues[i]] == weights[blues[j]] {
			return blues[i] < blues[j]
		}
		return weights[blues[i]] < weights[blues[j]]
	})
	return blues, nil
}

// BlueOrderHash returns a digest of OrderedBlueBlocks
func (bom *blueOrderManager) BlueOrderHash(stagingArea *model.StagingArea) (*externalapi.DomainHash, error) {
	orderedBlueBlocks, err := bom.OrderedBlueBlocks(stagingArea)
	if err != nil {
		return nil, err
	}
	writer := hashes.NewBlueOrderHashWriter()
	for _, blockID := range orderedBlueBlocks {
		writer.WriteString(blockID)
	}
	return writer.Finalize(), nil
}
