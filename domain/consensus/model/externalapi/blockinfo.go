package externalapi

// BlockInfo contains the classification of a block as seen by the ledger
type BlockInfo struct {
	Exists         bool
	Color          BlockColor
	SelectedParent string
	Weight         uint64
	MergeSetBlues  []string
	MergeSetReds   []string
	IsExecuted     bool
}

// Clone returns a clone of BlockInfo
func (bi *BlockInfo) Clone() *BlockInfo {
	return &BlockInfo{
		Exists:         bi.Exists,
		Color:          bi.Color,
		SelectedParent: bi.SelectedParent,
		Weight:         bi.Weight,
		MergeSetBlues:  append([]string(nil), bi.MergeSetBlues...),
		MergeSetReds:   append([]string(nil), bi.MergeSetReds...),
		IsExecuted:     bi.IsExecuted,
	}
}

// BlockColorChange describes a block whose color was changed by an insertion.
// For the inserted block itself Previous is BlockColorUnclassified.
type BlockColorChange struct {
	BlockID  string
	Previous BlockColor
	Current  BlockColor
}

// BlockInsertionResult is auxiliary data returned from InsertBlock
type BlockInsertionResult struct {
	BlockInfo    *BlockInfo
	ColorChanges []*BlockColorChange
}
