package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/finances"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the net worth of a client with the breakdown per
// account and per investment.
func SummaryMarkdown(c *finances.Client, on time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s on %s", c.Name, on.Format("2006-01-02")))
	doc.PlainText(fmt.Sprintf("Net worth: %s", md.Bold(c.NetWorthAt(on).BRL())))

	if accounts := c.Accounts(); len(accounts) > 0 {
		doc.H2("Accounts")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Account", "Transactions", "Balance"},
		}
		for _, a := range accounts {
			table.Rows = append(table.Rows, []string{
				a.Name,
				strconv.Itoa(a.Len()),
				a.Balance().BRL(),
			})
		}
		doc.Table(table)
	}

	if investments := c.Investments(); len(investments) > 0 {
		doc.H2("Investments")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Type", "Purchased", "Months", "Principal", "Value"},
		}
		for _, inv := range investments {
			value := inv.ValueAt(on).BRL()
			if inv.Sold() {
				value = "sold"
			}
			table.Rows = append(table.Rows, []string{
				inv.Type,
				inv.Purchased.Format("2006-01-02"),
				strconv.Itoa(inv.MonthsHeld(on)),
				inv.InitialAmount.BRL(),
				value,
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
