package serialization

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	recordFieldBlockID  protowire.Number = 1
	recordFieldSequence protowire.Number = 2
	recordFieldEntries  protowire.Number = 3

	entryFieldTransactionID         protowire.Number = 1
	entryFieldFrom                  protowire.Number = 2
	entryFieldTo                    protowire.Number = 3
	entryFieldAmount                protowire.Number = 4
	entryFieldSenderBalanceBefore   protowire.Number = 5
	entryFieldSenderNonceBefore     protowire.Number = 6
	entryFieldReceiverBalanceBefore protowire.Number = 7
)

// SerializeExecutionRecord encodes an execution record
func SerializeExecutionRecord(record *externalapi.ExecutionRecord) []byte {
	b := appendStringField(nil, recordFieldBlockID, record.BlockID)
	b = appendVarintField(b, recordFieldSequence, record.Sequence)
	for _, entry := range record.Entries {
		e := appendStringField(nil, entryFieldTransactionID, entry.TransactionID)
		e = appendStringField(e, entryFieldFrom, entry.From)
		e = appendStringField(e, entryFieldTo, entry.To)
		e = appendVarintField(e, entryFieldAmount, entry.Amount)
		e = appendVarintField(e, entryFieldSenderBalanceBefore, entry.SenderBalanceBefore)
		e = appendVarintField(e, entryFieldSenderNonceBefore, entry.SenderNonceBefore)
		e = appendVarintField(e, entryFieldReceiverBalanceBefore, entry.ReceiverBalanceBefore)
		b = appendNestedField(b, recordFieldEntries, e)
	}
	return b
}

// DeserializeExecutionRecord decodes the output of SerializeExecutionRecord
func DeserializeExecutionRecord(b []byte) (*externalapi.ExecutionRecord, error) {
	record := &externalapi.ExecutionRecord{Entries: []*externalapi.ExecutionRecordEntry{}}
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case recordFieldBlockID:
			return consumeString(num, typ, b, &record.BlockID)
		case recordFieldSequence:
			return consumeVarint(num, typ, b, &record.Sequence)
		case recordFieldEntries:
			return consumeNested(num, typ, b, func(nested []byte) error {
				entry, err := deserializeExecutionRecordEntry(nested)
				if err != nil {
					return err
				}
				record.Entries = append(record.Entries, entry)
				return nil
			})
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to deserialize execution record")
	}
	return record, nil
}

func deserializeExecutionRecordEntry(b []byte) (*externalapi.ExecutionRecordEntry, error) {
	entry := &externalapi.ExecutionRecordEntry{}
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case entryFieldTransactionID:
			return consumeString(num, typ, b, &entry.TransactionID)
		case entryFieldFrom:
			return consumeString(num, typ, b, &entry.From)
		case entryFieldTo:
			return consumeString(num, typ, b, &entry.To)
		case entryFieldAmount:
			return consumeVarint(num, typ, b, &entry.Amount)
		case entryFieldSenderBalanceBefore:
			return consumeVarint(num, typ, b, &entry.SenderBalanceBefore)
		case entryFieldSenderNonceBefore:
			return consumeVarint(num, typ, b, &entry.SenderNonceBefore)
		case entryFieldReceiverBalanceBefore:
			return consumeVarint(num, typ, b, &entry.ReceiverBalanceBefore)
		default:
			return skipField(num, typ, b)
		}
	})
	return entry, err
}
