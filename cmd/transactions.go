package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/finances"
	"github.com/etnz/finances/renderer"
	"github.com/google/subcommands"
)

// addTxCmd records a transaction in an account.
type addTxCmd struct {
	account     string
	category    string
	description string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a transaction in an account" }
func (*addTxCmd) Usage() string {
	return `fin add-tx [-a <account>] -c <category> [-m <description>] <amount>

  Records a transaction dated now. A negative amount is a debit, it must
  follow '--' so that it is not read as a flag:

    fin add-tx -c Comidas -- -56.25
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&c.category, "c", "", "Category of the transaction.")
	f.StringVar(&c.description, "m", "", "Description of the transaction.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: add-tx takes exactly one amount.")
		return subcommands.ExitUsageError
	}
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -c is required.")
		return subcommands.ExitUsageError
	}
	amount, err := finances.ParseMoney(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	return update(func(client *finances.Client) error {
		a, err := selectAccount(client, c.account)
		if err != nil {
			return err
		}
		tx := a.AddTransaction(amount, c.category, c.description)
		Logger.Info().Str("account", a.Name).Int("index", a.Len()-1).Msg(tx.String())
		return nil
	})
}

// updateTxCmd patches fields of a recorded transaction.
type updateTxCmd struct {
	account     string
	index       int
	category    string
	description string
	amount      string
	date        string
}

func (*updateTxCmd) Name() string     { return "update-tx" }
func (*updateTxCmd) Synopsis() string { return "change fields of a recorded transaction" }
func (*updateTxCmd) Usage() string {
	return `fin update-tx [-a <account>] -i <index> [-c <category>] [-m <description>] [-amount <amount>] [-date <date>]

  Overwrites only the fields given on the command line. The index is the
  number displayed by 'fin tx'. Changing the amount changes the balance.
`
}

func (c *updateTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name. Defaults to the only account if one exists.")
	f.IntVar(&c.index, "i", -1, "Index of the transaction in the account.")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.description, "m", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.date, "date", "", "New date.")
}

// patch builds the patch from the flags actually set.
func (c *updateTxCmd) patch(f *flag.FlagSet) (p finances.TransactionPatch, err error) {
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "c":
			p.Category = &c.category
		case "m":
			p.Description = &c.description
		case "amount":
			var m finances.Money
			m, err = finances.ParseMoney(c.amount)
			p.Amount = &m
		case "date":
			var t time.Time
			t, err = parseTime(c.date)
			p.Date = &t
		}
	})
	return p, err
}

func (c *updateTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 0 {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}
	p, err := c.patch(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if p == (finances.TransactionPatch{}) {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, use -c, -m, -amount or -date.")
		return subcommands.ExitUsageError
	}

	return update(func(client *finances.Client) error {
		a, err := selectAccount(client, c.account)
		if err != nil {
			return err
		}
		tx := a.Transaction(c.index)
		if tx == nil {
			return fmt.Errorf("account %q has no transaction #%d", a.Name, c.index)
		}
		tx.Apply(p)
		Logger.Info().Str("account", a.Name).Int("index", c.index).Msg(tx.String())
		return nil
	})
}

// txCmd lists the transactions of an account.
type txCmd struct {
	account  string
	start    string
	end      string
	category string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of an account" }
func (*txCmd) Usage() string {
	return `fin tx [-a <account>] [-s <start_date>] [-e <end_date>] [-c <category>]

  Lists transactions in the order they were recorded. The category is a
  case-insensitive regular expression: "bolsa" matches "Bolsa de Estudos".
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.account, "a", "", "Account name. Defaults to the only account if one exists.")
	f.StringVar(&p.start, "s", "", "Only transactions on or after this date.")
	f.StringVar(&p.end, "e", "", "Only transactions on or before this date (the whole day is included).")
	f.StringVar(&p.category, "c", "", "Only transactions whose category matches.")
}

func (p *txCmd) filter() (finances.Filter, error) {
	filter := finances.Filter{Category: p.category}
	if p.start != "" {
		from, err := parseTime(p.start)
		if err != nil {
			return filter, fmt.Errorf("parsing start date: %w", err)
		}
		filter = filter.Since(from)
	}
	if p.end != "" {
		to, err := parseTime(p.end)
		if err != nil {
			return filter, fmt.Errorf("parsing end date: %w", err)
		}
		if !isTimestamp(p.end) {
			// a plain date includes the whole day.
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter = filter.Until(to)
	}
	return filter, nil
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := p.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client, err := DecodeClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, err := selectAccount(client, p.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	txs, err := a.Transactions(filter)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Transactions(a, txs))
	return subcommands.ExitSuccess
}
