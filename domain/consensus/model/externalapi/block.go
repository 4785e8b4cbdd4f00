package externalapi

// Block is an immutable DAG vertex. Parents is an ordered set and is empty
// only for the genesis block. WeightHint and Timestamp are informational.
type Block struct {
	ID           string
	Parents      []string
	Transactions []*Transaction
	WeightHint   uint64
	Timestamp    int64
}

// Clone returns a deep clone of Block
func (block *Block) Clone() *Block {
	if block == nil {
		return nil
	}
	parentsClone := make([]string, len(block.Parents))
	copy(parentsClone, block.Parents)

	transactionsClone := make([]*Transaction, len(block.Transactions))
	for i, tx := range block.Transactions {
		transactionsClone[i] = tx.Clone()
	}

	return &Block{
		ID:           block.ID,
		Parents:      parentsClone,
		Transactions: transactionsClone,
		WeightHint:   block.WeightHint,
		Timestamp:    block.Timestamp,
	}
}

// Equal returns whether block equals to other
func (block *Block) Equal(other *Block) bool {
	if block == nil || other == nil {
		return block == other
	}
	if block.ID != other.ID || block.WeightHint != other.WeightHint || block.Timestamp != other.Timestamp {
		return false
	}
	if len(block.Parents) != len(other.Parents) || len(block.Transactions) != len(other.Transactions) {
		return false
	}
	for i, parent := range block.Parents {
		if parent != other.Parents[i] {
			return false
		}
	}
	for i, tx := range block.Transactions {
		if !tx.Equal(other.Transactions[i]) {
			return false
		}
	}
	return true
}

// BlockColor is the classification of a block.
type BlockColor uint8

// Block colors
const (
	BlockColorUnclassified BlockColor = iota
	BlockColorBlue
	BlockColorRed
)

func (color BlockColor) String() string {
	switch color {
	case BlockColorBlue:
		return "Blue"
	case BlockColorRed:
		return "Red"
	default:
		return "Unclassified"
	}
}
