package serialization

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	statusesFieldStatus protowire.Number = 1

	statusFieldTransactionID protowire.Number = 1
	statusFieldCode          protowire.Number = 2
	statusFieldReason        protowire.Number = 3
)

// SerializeTransactionStatuses encodes the statuses of a block's transactions
func SerializeTransactionStatuses(statuses []*externalapi.TransactionStatus) []byte {
	var b []byte
	for _, status := range statuses {
		s := appendStringField(nil, statusFieldTransactionID, status.TransactionID)
		s = appendVarintField(s, statusFieldCode, uint64(status.Code))
		if status.Reason != "" {
			s = appendStringField(s, statusFieldReason, status.Reason)
		}
		b = appendNestedField(b, statusesFieldStatus, s)
	}
	return b
}

// DeserializeTransactionStatuses decodes the output of SerializeTransactionStatuses
func DeserializeTransactionStatuses(b []byte) ([]*externalapi.TransactionStatus, error) {
	statuses := []*externalapi.TransactionStatus{}
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != statusesFieldStatus {
			return skipField(num, typ, b)
		}
		return consumeNested(num, typ, b, func(nested []byte) error {
			status := &externalapi.TransactionStatus{}
			var code uint64
			err := consumeMessage(nested, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
				switch num {
				case statusFieldTransactionID:
					return consumeString(num, typ, b, &status.TransactionID)
				case statusFieldCode:
					return consumeVarint(num, typ, b, &code)
				case statusFieldReason:
					return consumeString(num, typ, b, &status.Reason)
				default:
					return skipField(num, typ, b)
				}
			})
			if err != nil {
				return err
			}
			if code > uint64(externalapi.TransactionStatusReverted) {
				return errors.Errorf("unknown transaction status code %d", code)
			}
			status.Code = externalapi.TransactionStatusCode(code)
			statuses = append(statuses, status)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to deserialize transaction statuses")
	}
	return statuses, nil
}
