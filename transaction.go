package finances

import (
	"fmt"
	"time"
)

// Transaction is a single dated monetary movement of an Account.
//
// A positive Amount is a credit, a negative one a debit.
type Transaction struct {
	Amount      Money
	Category    string
	Description string
	Date        time.Time
}

// NewTransaction creates a transaction dated now.
func NewTransaction(amount Money, category, description string) *Transaction {
	return &Transaction{
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        now(),
	}
}

// TransactionPatch lists the fields to overwrite in a Transaction.
// A nil field is left untouched.
type TransactionPatch struct {
	Amount      *Money
	Category    *string
	Description *string
	Date        *time.Time
}

// Apply overwrites tx fields with the ones set in p.
//
// Patching the Amount changes the balance of the owning account, as the
// balance is always derived from the transactions.
func (tx *Transaction) Apply(p TransactionPatch) {
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Category != nil {
		tx.Category = *p.Category
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
}

// String returns the one line description used in statements,
// e.g. "Transação: Hamburguer do NESFood R$56.25 (Comidas)".
func (tx *Transaction) String() string {
	return fmt.Sprintf("Transação: %s %s (%s)", tx.Description, tx.Amount.BRL(), tx.Category)
}
