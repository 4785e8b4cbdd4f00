package serialization

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	accountFieldID      protowire.Number = 1
	accountFieldBalance protowire.Number = 2
	accountFieldNonce   protowire.Number = 3
)

// SerializeAccount encodes an account. The encoding is also the element
// added to the state commitment multiset.
func SerializeAccount(account *externalapi.Account) []byte {
	b := appendStringField(nil, accountFieldID, account.ID)
	b = appendVarintField(b, accountFieldBalance, account.Balance)
	b = appendVarintField(b, accountFieldNonce, account.Nonce)
	return b
}

// DeserializeAccount decodes the output of SerializeAccount
func DeserializeAccount(b []byte) (*externalapi.Account, error) {
	account := &externalapi.Account{}
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case accountFieldID:
			return consumeString(num, typ, b, &account.ID)
		case accountFieldBalance:
			return consumeVarint(num, typ, b, &account.Balance)
		case accountFieldNonce:
			return consumeVarint(num, typ, b, &account.Nonce)
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to deserialize account")
	}
	return account, nil
}
