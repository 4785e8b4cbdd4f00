package rollbackmanager

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/infrastructure/logger"
)

// ResolveExecution brings the ledger in line with the current blue order.
// It keeps the longest prefix of the execution sequence that agrees with
// the blue order, reverts every block executed after that prefix (latest
// first) and then executes the rest of the blue order.
func (rm *rollbackManager) ResolveExecution(stagingArea *model.StagingArea) (*externalapi.ExecutionResolution, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ResolveExecution")
	defer onEnd()

	records := rm.executionRecordStore.Records(stagingArea)
	orderedBlueBlocks, err := rm.blueOrderManager.OrderedBlueBlocks(stagingArea)
	if err != nil {
		return nil, err
	}

	commonPrefixLength := 0
	for commonPrefixLength < len(records) && commonPrefixLength < len(orderedBlueBlocks) &&
		records[commonPrefixLength].BlockID == orderedBlueBlocks[commonPrefixLength] {

		commonPrefixLength++
	}

	resolution := &externalapi.ExecutionResolution{
		RevertedBlockIDs: []string{},
	}
	for i := len(records) - 1; i >= commonPrefixLength; i-- {
		err := rm.RevertBlock(stagingArea, records[i].BlockID)
		if err != nil {
			return nil, err
		}
		resolution.RevertedBlockIDs = append(resolution.RevertedBlockIDs, records[i].BlockID)
	}

	resolution.Executed, err = rm.transactionExecutor.ExecuteBlueChain(stagingArea)
	if err != nil {
		return nil, err
	}

	if len(resolution.RevertedBlockIDs) > 0 {
		log.Infof("Execution resolved: reverted %d blocks and executed %d blocks",
			len(resolution.RevertedBlockIDs), len(resolution.Executed))
	}
	return resolution, nil
}
