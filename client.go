package finances

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Client owns accounts and investments.
type Client struct {
	ID          uuid.UUID
	Name        string
	accounts    []*Account
	investments []*Investment
}

// NewClient creates a client without accounts nor investments.
func NewClient(name string) *Client {
	return &Client{ID: uuid.New(), Name: name}
}

// AddAccount opens a new account and returns it.
func (c *Client) AddAccount(name string) *Account {
	a := &Account{ClientID: c.ID, Name: name}
	c.accounts = append(c.accounts, a)
	return a
}

// Account returns the first account with that name.
func (c *Client) Account(name string) (*Account, error) {
	for _, a := range c.accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w %q for client %q", ErrUnknownAccount, name, c.Name)
}

// Accounts returns the accounts in opening order.
func (c *Client) Accounts() []*Account { return slices.Clone(c.accounts) }

// Investments returns the investments, sold ones included, in insertion order.
func (c *Client) Investments() []*Investment { return slices.Clone(c.investments) }

// AddInvestment appends an investment created for this client.
func (c *Client) AddInvestment(inv *Investment) error {
	if inv.ClientID != c.ID {
		return fmt.Errorf("%w: %s %q", ErrForeignInvestment, inv.ID, inv.Type)
	}
	c.investments = append(c.investments, inv)
	return nil
}

// NetWorth returns the sum of all account balances and of the current value of all investments.
func (c *Client) NetWorth() Money { return c.NetWorthAt(now()) }

// NetWorthAt is like NetWorth with investments valued on a given time.
func (c *Client) NetWorthAt(on time.Time) Money {
	var total Money
	for _, a := range c.accounts {
		total = total.Add(a.Balance())
	}
	for _, inv := range c.investments {
		total = total.Add(inv.ValueAt(on))
	}
	return total
}
