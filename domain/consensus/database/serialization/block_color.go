package serialization

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const blockColorFieldColor protowire.Number = 1

// SerializeBlockColor encodes a block color
func SerializeBlockColor(color externalapi.BlockColor) []byte {
	return appendVarintField(nil, blockColorFieldColor, uint64(color))
}

// DeserializeBlockColor decodes the output of SerializeBlockColor
func DeserializeBlockColor(b []byte) (externalapi.BlockColor, error) {
	var color uint64
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != blockColorFieldColor {
			return skipField(num, typ, b)
		}
		return consumeVarint(num, typ, b, &color)
	})
	if err != nil {
		return externalapi.BlockColorUnclassified, errors.Wrap(err, "failed to deserialize block color")
	}
	if color > uint64(externalapi.BlockColorRed) {
		return externalapi.BlockColorUnclassified, errors.Errorf("unknown block color %d", color)
	}
	return externalapi.BlockColor(color), nil
}
