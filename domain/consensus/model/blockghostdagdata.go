package model

// KType defines the size of GHOSTDAG consensus algorithm K parameter.
type KType byte

// BlockGHOSTDAGData represents GHOSTDAG data for some block. It is computed
// once, when the block is inserted, and never changes afterwards.
type BlockGHOSTDAGData struct {
	weight             uint64
	selectedParent     string
	mergeSetBlues      []string
	mergeSetReds       []string
	bluesAnticoneSizes map[string]KType
}

// NewBlockGHOSTDAGData creates a new instance of BlockGHOSTDAGData
func NewBlockGHOSTDAGData(
	weight uint64,
	selectedParent string,
	mergeSetBlues []string,
	mergeSetReds []string,
	bluesAnticoneSizes map[string]KType) *BlockGHOSTDAGData {

	return &BlockGHOSTDAGData{
		weight:             weight,
		selectedParent:     selectedParent,
		mergeSetBlues:      mergeSetBlues,
		mergeSetReds:       mergeSetReds,
		bluesAnticoneSizes: bluesAnticoneSizes,
	}
}

// Weight returns the number of blue blocks in the past of the block
func (bgd *BlockGHOSTDAGData) Weight() uint64 {
	return bgd.weight
}

// SelectedParent returns the SelectedParent of the block
func (bgd *BlockGHOSTDAGData) SelectedParent() string {
	return bgd.selectedParent
}

// MergeSetBlues returns the MergeSetBlues of the block, the selected parent
// first (except for genesis, whose MergeSetBlues is empty)
func (bgd *BlockGHOSTDAGData) MergeSetBlues() []string {
	return bgd.mergeSetBlues
}

// MergeSetReds returns the MergeSetReds of the block
func (bgd *BlockGHOSTDAGData) MergeSetReds() []string {
	return bgd.mergeSetReds
}

// BluesAnticoneSizes returns a map between the blocks in its MergeSetBlues and the size of their anticone
func (bgd *BlockGHOSTDAGData) BluesAnticoneSizes() map[string]KType {
	return bgd.bluesAnticoneSizes
}

// MergeSet returns the whole MergeSet of the block (equivalent to MergeSetBlues+MergeSetReds)
func (bgd *BlockGHOSTDAGData) MergeSet() []string {
	mergeSet := make([]string, len(bgd.mergeSetBlues)+len(bgd.mergeSetReds))
	copy(mergeSet, bgd.mergeSetBlues)
	copy(mergeSet[len(bgd.mergeSetBlues):], bgd.mergeSetReds)
	return mergeSet
}
