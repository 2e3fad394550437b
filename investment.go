package finances

import (
	"time"

	"github.com/google/uuid"
)

// SaleCategory is the category of the transaction crediting a sold investment.
const SaleCategory = "Investiment"

// Investment is a principal compounding monthly at a fixed rate until sold.
type Investment struct {
	ID            uuid.UUID
	ClientID      uuid.UUID // owner, not a strong reference
	Type          string
	InitialAmount Money
	Purchased     time.Time
	MonthlyRate   Rate
}

// NewInvestment creates an investment for client, purchased now.
//
// It is not added to the client: see Client.AddInvestment.
func NewInvestment(client *Client, kind string, amount Money, rate Rate) *Investment {
	return &Investment{
		ID:            uuid.New(),
		ClientID:      client.ID,
		Type:          kind,
		InitialAmount: amount,
		Purchased:     now(),
		MonthlyRate:   rate,
	}
}

// MonthsHeld returns the number of whole months elapsed between the purchase and on.
//
// The current month only counts once its day of month has been reached.
// It is negative when on is before the purchase.
func (inv *Investment) MonthsHeld(on time.Time) int {
	p := inv.Purchased
	months := (on.Year()-p.Year())*12 + int(on.Month()-p.Month())
	if on.Day() < p.Day() {
		months--
	}
	return months
}

// ValueAt returns the value of the investment on a given time.
func (inv *Investment) ValueAt(on time.Time) Money {
	return inv.InitialAmount.Mul(inv.MonthlyRate.Pow(inv.MonthsHeld(on)))
}

// Value returns the current value of the investment.
func (inv *Investment) Value() Money { return inv.ValueAt(now()) }

// ProjectAt returns the value the investment will have 'months' after on.
func (inv *Investment) ProjectAt(on time.Time, months int) Money {
	return inv.ValueAt(on).Mul(inv.MonthlyRate.Pow(months))
}

// AnnualReturn returns the monthly rate times twelve.
func (inv *Investment) AnnualReturn() Percent { return inv.MonthlyRate.Annual() }

// Sold reports whether the principal has been withdrawn.
func (inv *Investment) Sold() bool { return inv.InitialAmount.IsZero() }

// Sell credits the current value to target and zeroes the principal.
//
// Selling twice credits a zero amount the second time.
func (inv *Investment) Sell(target *Account) *Transaction {
	tx := target.AddTransaction(inv.Value(), SaleCategory, inv.Type)
	inv.InitialAmount = Money{}
	return tx
}

// PurchaseString returns the purchase timestamp as statements print it.
func (inv *Investment) PurchaseString() string { return pythonTime(inv.Purchased) }
