package transactionexecutor

import (
	"math"

	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

func checkTransaction(tx *externalapi.Transaction, sender, receiver *externalapi.Account) error {
	err := checkAmount(tx)
	if err != nil {
		return err
	}
	err = checkNonce(tx, sender)
	if err != nil {
		return err
	}
	err = checkBalance(tx, sender)
	if err != nil {
		return err
	}
	return checkReceiverOverflow(tx, receiver)
}

func checkAmount(tx *externalapi.Transaction) error {
	if tx.Amount == 0 {
		return errors.Wrapf(ruleerrors.ErrInvalidAmount, "transaction %s transfers nothing", tx.ID)
	}
	return nil
}

func checkNonce(tx *externalapi.Transaction, sender *externalapi.Account) error {
	if tx.Nonce != sender.Nonce {
		return errors.Wrapf(ruleerrors.ErrInvalidNonce, "transaction %s has nonce %d while "+
			"the nonce of %s is %d", tx.ID, tx.Nonce, sender.ID, sender.Nonce)
	}
	return nil
}

func checkBalance(tx *externalapi.Transaction, sender *externalapi.Account) error {
	if tx.Amount > sender.Balance {
		return errors.Wrapf(ruleerrors.ErrInsufficientBalance, "transaction %s transfers %d while "+
			"the balance of %s is %d", tx.ID, tx.Amount, sender.ID, sender.Balance)
	}
	return nil
}

// checkReceiverOverflow ignores self transfers, which leave the balance
// unchanged
func checkReceiverOverflow(tx *externalapi.Transaction, receiver *externalapi.Account) error {
	if tx.From == tx.To {
		return nil
	}
	if receiver.Balance > math.MaxUint64-tx.Amount {
		return errors.Wrapf(ruleerrors.ErrBalanceOverflow, "transaction %s would overflow "+
			"the balance of %s", tx.ID, receiver.ID)
	}
	return nil
}
