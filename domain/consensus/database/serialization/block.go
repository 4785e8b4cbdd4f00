package serialization

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	blockFieldID             protowire.Number = 1
	blockFieldParents        protowire.Number = 2
	blockFieldTransactions   protowire.Number = 3
	blockFieldWeightHint     protowire.Number = 4
	blockFieldTimestamp      protowire.Number = 5
	blockFieldInsertionIndex protowire.Number = 6

	transactionFieldID     protowire.Number = 1
	transactionFieldFrom   protowire.Number = 2
	transactionFieldTo     protowire.Number = 3
	transactionFieldAmount protowire.Number = 4
	transactionFieldNonce  protowire.Number = 5
)

// SerializeBlock encodes a block together with its insertion index, which
// is used to restore insertion order when the database is loaded.
func SerializeBlock(block *externalapi.Block, insertionIndex uint64) []byte {
	b := appendStringField(nil, blockFieldID, block.ID)
	for _, parent := range block.Parents {
		b = appendStringField(b, blockFieldParents, parent)
	}
	for _, tx := range block.Transactions {
		b = appendNestedField(b, blockFieldTransactions, serializeTransaction(tx))
	}
	b = appendVarintField(b, blockFieldWeightHint, block.WeightHint)
	b = appendVarintField(b, blockFieldTimestamp, protowire.EncodeZigZag(block.Timestamp))
	b = appendVarintField(b, blockFieldInsertionIndex, insertionIndex)
	return b
}

// DeserializeBlock decodes the output of SerializeBlock
func DeserializeBlock(b []byte) (block *externalapi.Block, insertionIndex uint64, err error) {
	block = &externalapi.Block{
		Parents:      []string{},
		Transactions: []*externalapi.Transaction{},
	}
	var timestamp uint64
	err = consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case blockFieldID:
			return consumeString(num, typ, b, &block.ID)
		case blockFieldParents:
			return consumeRepeatedString(num, typ, b, &block.Parents)
		case blockFieldTransactions:
			return consumeNested(num, typ, b, func(nested []byte) error {
				tx, err := deserializeTransaction(nested)
				if err != nil {
					return err
				}
				block.Transactions = append(block.Transactions, tx)
				return nil
			})
		case blockFieldWeightHint:
			return consumeVarint(num, typ, b, &block.WeightHint)
		case blockFieldTimestamp:
			return consumeVarint(num, typ, b, &timestamp)
		case blockFieldInsertionIndex:
			return consumeVarint(num, typ, b, &insertionIndex)
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to deserialize block")
	}
	block.Timestamp = protowire.DecodeZigZag(timestamp)
	return block, insertionIndex, nil
}

func serializeTransaction(tx *externalapi.Transaction) []byte {
	b := appendStringField(nil, transactionFieldID, tx.ID)
	b = appendStringField(b, transactionFieldFrom, tx.From)
	b = appendStringField(b, transactionFieldTo, tx.To)
	b = appendVarintField(b, transactionFieldAmount, tx.Amount)
	b = appendVarintField(b, transactionFieldNonce, tx.Nonce)
	return b
}

func deserializeTransaction(b []byte) (*externalapi.Transaction, error) {
	tx := &externalapi.Transaction{}
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case transactionFieldID:
			return consumeString(num, typ, b, &tx.ID)
		case transactionFieldFrom:
			return consumeString(num, typ, b, &tx.From)
		case transactionFieldTo:
			return consumeString(num, typ, b, &tx.To)
		case transactionFieldAmount:
			return consumeVarint(num, typ, b, &tx.Amount)
		case transactionFieldNonce:
			return consumeVarint(num, typ, b, &tx.Nonce)
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to deserialize transaction")
	}
	return tx, nil
}
