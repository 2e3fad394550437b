package renderer

import (
	"io"
	"time"

	"github.com/etnz/finances"
)

// Investments is the data of the investment reports.
// Numbers are handled using the exact decimal types, so that they already
// contain their renderers (String, BRL).
type Investments struct {
	// Client is the name of the client.
	Client string `json:"client"`
	// On is the time investments are valued.
	On time.Time `json:"on"`
	// Investments lists every investment, sold ones included.
	Investments []InvestmentLine `json:"investments"`
}

// InvestmentLine is the state of a single investment.
type InvestmentLine struct {
	Type         string           `json:"type"`
	Purchased    string           `json:"purchased"`
	Months       int              `json:"months"`
	AnnualReturn finances.Percent `json:"annualReturn"`
	Initial      finances.Money   `json:"initial"`
	Value        finances.Money   `json:"value"`
	InOneYear    finances.Money   `json:"inOneYear"`
	InFiveYears  finances.Money   `json:"inFiveYears"`
}

// NewInvestments values the investments of a client on a given time.
func NewInvestments(c *finances.Client, on time.Time) *Investments {
	r := &Investments{Client: c.Name, On: on}
	for _, inv := range c.Investments() {
		r.Investments = append(r.Investments, InvestmentLine{
			Type:         inv.Type,
			Purchased:    inv.PurchaseString(),
			Months:       inv.MonthsHeld(on),
			AnnualReturn: inv.AnnualReturn(),
			Initial:      inv.InitialAmount,
			Value:        inv.ValueAt(on),
			InOneYear:    inv.ProjectAt(on, 12),
			InFiveYears:  inv.ProjectAt(on, 60),
		})
	}
	return r
}

// WriteInvestmentReport writes the investment statement of c to w.
func WriteInvestmentReport(w io.Writer, c *finances.Client, on time.Time) error {
	_, err := io.WriteString(w, RenderInvestmentReport(NewInvestments(c, on)))
	return err
}

// WriteFutureValueReport writes the projection of the investments of c to w.
func WriteFutureValueReport(w io.Writer, c *finances.Client, on time.Time) error {
	_, err := io.WriteString(w, RenderFutureValueReport(NewInvestments(c, on)))
	return err
}
