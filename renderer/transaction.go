package renderer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/etnz/finances"
	md "github.com/nao1215/markdown"
)

// Transactions renders transactions of an account as a markdown table.
//
// Rows are numbered with the position of the transaction in the account,
// the number commands use to designate a transaction.
func Transactions(a *finances.Account, txs []*finances.Transaction) string {
	index := make(map[*finances.Transaction]int, a.Len())
	i := 0
	for tx := range a.All() {
		index[tx] = i
		i++
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(a.Name)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"#", "Date", "Category", "Description", "Amount"},
	}
	var total finances.Money
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(index[tx]),
			tx.Date.Format("2006-01-02 15:04"),
			escapeCell(tx.Category),
			escapeCell(tx.Description),
			tx.Amount.BRL(),
		})
		total = total.Add(tx.Amount)
	}
	table.Rows = append(table.Rows, []string{"", "", "", md.Bold("Total"), md.Bold(total.BRL())})
	doc.Table(table)
	return doc.String()
}

// escapeCell keeps user text from breaking the table.
func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
