package serialization

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	ghostdagFieldWeight             protowire.Number = 1
	ghostdagFieldSelectedParent     protowire.Number = 2
	ghostdagFieldMergeSetBlues      protowire.Number = 3
	ghostdagFieldMergeSetReds       protowire.Number = 4
	ghostdagFieldBluesAnticoneSizes protowire.Number = 5

	anticoneSizeFieldBlockID protowire.Number = 1
	anticoneSizeFieldSize    protowire.Number = 2
)

// SerializeBlockGHOSTDAGData encodes GHOSTDAG data. Blues anticone sizes
// are written sorted by block id so the encoding is stable.
func SerializeBlockGHOSTDAGData(data *model.BlockGHOSTDAGData) []byte {
	b := appendVarintField(nil, ghostdagFieldWeight, data.Weight())
	b = appendStringField(b, ghostdagFieldSelectedParent, data.SelectedParent())
	for _, blue := range data.MergeSetBlues() {
		b = appendStringField(b, ghostdagFieldMergeSetBlues, blue)
	}
	for _, red := range data.MergeSetReds() {
		b = appendStringField(b, ghostdagFieldMergeSetReds, red)
	}
	for _, blockID := range sortedAnticoneSizeKeys(data.BluesAnticoneSizes()) {
		entry := appendStringField(nil, anticoneSizeFieldBlockID, blockID)
		entry = appendVarintField(entry, anticoneSizeFieldSize, uint64(data.BluesAnticoneSizes()[blockID]))
		b = appendNestedField(b, ghostdagFieldBluesAnticoneSizes, entry)
	}
	return b
}

// DeserializeBlockGHOSTDAGData decodes the output of SerializeBlockGHOSTDAGData
func DeserializeBlockGHOSTDAGData(b []byte) (*model.BlockGHOSTDAGData, error) {
	var weight uint64
	var selectedParent string
	mergeSetBlues := []string{}
	mergeSetReds := []string{}
	bluesAnticoneSizes := make(map[string]model.KType)

	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case ghostdagFieldWeight:
			return consumeVarint(num, typ, b, &weight)
		case ghostdagFieldSelectedParent:
			return consumeString(num, typ, b, &selectedParent)
		case ghostdagFieldMergeSetBlues:
			return consumeRepeatedString(num, typ, b, &mergeSetBlues)
		case ghostdagFieldMergeSetReds:
			return consumeRepeatedString(num, typ, b, &mergeSetReds)
		case ghostdagFieldBluesAnticoneSizes:
			return consumeNested(num, typ, b, func(nested []byte) error {
				var blockID string
				var size uint64
				err := consumeMessage(nested, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
					switch num {
					case anticoneSizeFieldBlockID:
						return consumeString(num, typ, b, &blockID)
					case anticoneSizeFieldSize:
						return consumeVarint(num, typ, b, &size)
					default:
						return skipField(num, typ, b)
					}
				})
				if err != nil {
					return err
				}
				if size > uint64(^model.KType(0)) {
					return errors.Errorf("blue anticone size %d of %s overflows KType", size, blockID)
				}
				bluesAnticoneSizes[blockID] = model.KType(size)
				return nil
			})
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to deserialize GHOSTDAG data")
	}
	return model.NewBlockGHOSTDAGData(weight, selectedParent, mergeSetBlues, mergeSetReds, bluesAnticoneSizes), nil
}
