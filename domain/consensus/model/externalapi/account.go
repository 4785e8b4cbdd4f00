package externalapi

import "fmt"

// Account is a ledger entry. Nonce counts the transactions applied from it.
type Account struct {
	ID      string
	Balance uint64
	Nonce   uint64
}

// Clone returns a clone of Account
func (account *Account) Clone() *Account {
	if account == nil {
		return nil
	}
	clone := *account
	return &clone
}

// Equal returns whether account equals to other
func (account *Account) Equal(other *Account) bool {
	if account == nil || other == nil {
		return account == other
	}
	return *account == *other
}

func (account *Account) String() string {
	return fmt.Sprintf("%s(balance: %d, nonce: %d)", account.ID, account.Balance, account.Nonce)
}
