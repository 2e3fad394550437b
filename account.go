package finances

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Account is a named list of transactions owned by a Client.
//
// In an Account transactions are kept in insertion order, which is their
// creation order unless a date has been patched afterward.
type Account struct {
	ClientID     uuid.UUID // owner, not a strong reference
	Name         string
	transactions []*Transaction
}

// AddTransaction records a new transaction dated now and returns it.
func (a *Account) AddTransaction(amount Money, category, description string) *Transaction {
	tx := NewTransaction(amount, category, description)
	a.transactions = append(a.transactions, tx)
	return tx
}

// Balance returns the sum of all transaction amounts.
func (a *Account) Balance() Money {
	var b Money
	for _, tx := range a.transactions {
		b = b.Add(tx.Amount)
	}
	return b
}

// All iterates over the transactions in insertion order.
func (a *Account) All() iter.Seq[*Transaction] { return slices.Values(a.transactions) }

// Len returns the number of transactions.
func (a *Account) Len() int { return len(a.transactions) }

// Transaction returns the i-th transaction, or nil if out of range.
func (a *Account) Transaction(i int) *Transaction {
	if i < 0 || i >= len(a.transactions) {
		return nil
	}
	return a.transactions[i]
}

// Filter selects transactions of an Account.
//
// The zero Filter selects every transaction.
type Filter struct {
	From *time.Time // inclusive, nil for no lower bound
	To   *time.Time // inclusive, nil for no upper bound
	// Category is a regular expression searched, case-insensitively, in the
	// transaction category: "Bolsa" matches "Bolsa de Estudos".
	// Empty matches every category.
	Category string
}

// Since returns a copy of f with a lower bound.
func (f Filter) Since(t time.Time) Filter { f.From = &t; return f }

// Until returns a copy of f with an upper bound.
func (f Filter) Until(t time.Time) Filter { f.To = &t; return f }

// InCategory returns a copy of f with a category pattern.
func (f Filter) InCategory(pattern string) Filter { f.Category = pattern; return f }

// accept compiles the filter into a predicate.
func (f Filter) accept() (func(*Transaction) bool, error) {
	var re *regexp.Regexp
	if f.Category != "" {
		var err error
		re, err = regexp.Compile("(?i)" + f.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", ErrInvalidFilter, f.Category, err)
		}
	}
	return func(tx *Transaction) bool {
		if f.From != nil && tx.Date.Before(*f.From) {
			return false
		}
		if f.To != nil && tx.Date.After(*f.To) {
			return false
		}
		return re == nil || re.MatchString(tx.Category)
	}, nil
}

// Transactions returns, in insertion order, the transactions selected by f.
func (a *Account) Transactions(f Filter) ([]*Transaction, error) {
	accept, err := f.accept()
	if err != nil {
		return nil, err
	}
	var list []*Transaction
	for _, tx := range a.transactions {
		if accept(tx) {
			list = append(list, tx)
		}
	}
	return list, nil
}
