package externalapi

// ExecutionRecordEntry holds what a single applied transaction overwrote
type ExecutionRecordEntry struct {
	TransactionID         string
	From                  string
	To                    string
	Amount                uint64
	SenderBalanceBefore   uint64
	SenderNonceBefore     uint64
	ReceiverBalanceBefore uint64
}

// ExecutionRecord is the undo log of an executed block. Entries are in
// application order. Sequence orders records by execution time.
type ExecutionRecord struct {
	BlockID  string
	Sequence uint64
	Entries  []*ExecutionRecordEntry
}

// Clone returns a deep clone of ExecutionRecord
func (record *ExecutionRecord) Clone() *ExecutionRecord {
	entriesClone := make([]*ExecutionRecordEntry, len(record.Entries))
	for i, entry := range record.Entries {
		entryClone := *entry
		entriesClone[i] = &entryClone
	}
	return &ExecutionRecord{
		BlockID:  record.BlockID,
		Sequence: record.Sequence,
		Entries:  entriesClone,
	}
}

// TransactionFailure is a transaction that was skipped during execution
type TransactionFailure struct {
	TransactionID string
	Err           error
}

// BlockExecutionResult summarizes the execution of a single block
type BlockExecutionResult struct {
	BlockID               string
	AppliedTransactionIDs []string
	Failures              []*TransactionFailure
}

// ExecutionResolution is returned from ResolveExecution. RevertedBlockIDs
// are in the order they were reverted.
type ExecutionResolution struct {
	RevertedBlockIDs []string
	Executed         []*BlockExecutionResult
}
