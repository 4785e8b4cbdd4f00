package externalapi

import "fmt"

// Transaction moves Amount from the From account to the To account. Nonce
// must equal the sender's nonce at the time of execution.
type Transaction struct {
	ID     string
	From   string
	To     string
	Amount uint64
	Nonce  uint64
}

// Clone returns a clone of Transaction
func (tx *Transaction) Clone() *Transaction {
	if tx == nil {
		return nil
	}
	clone := *tx
	return &clone
}

// Equal returns whether tx equals to other
func (tx *Transaction) Equal(other *Transaction) bool {
	if tx == nil || other == nil {
		return tx == other
	}
	return *tx == *other
}

func (tx *Transaction) String() string {
	return fmt.Sprintf("%s(%s->%s %d nonce %d)", tx.ID, tx.From, tx.To, tx.Amount, tx.Nonce)
}

// TransactionStatusCode is the execution state of a transaction inside a block.
type TransactionStatusCode uint8

// Transaction status codes
const (
	TransactionStatusPending TransactionStatusCode = iota
	TransactionStatusExecuted
	TransactionStatusFailed
	TransactionStatusReverted
)

var transactionStatusCodeStrings = map[TransactionStatusCode]string{
	TransactionStatusPending:  "Pending",
	TransactionStatusExecuted: "Executed",
	TransactionStatusFailed:   "Failed",
	TransactionStatusReverted: "Reverted",
}

func (code TransactionStatusCode) String() string {
	if s, ok := transactionStatusCodeStrings[code]; ok {
		return s
	}
	return fmt.Sprintf("TransactionStatusCode(%d)", uint8(code))
}

// TransactionStatus is the status of one transaction of a block. Reason is
// set for failed transactions only.
type TransactionStatus struct {
	TransactionID string
	Code          TransactionStatusCode
	Reason        string
}

// Clone returns a clone of TransactionStatus
func (status *TransactionStatus) Clone() *TransactionStatus {
	clone := *status
	return &clone
}
