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

// investCmd buys a new investment.
type investCmd struct {
	kind string
	rate string
	date string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "add an investment compounding monthly" }
func (*investCmd) Usage() string {
	return `fin invest -type <type> -rate <monthly factor> [-date <purchase date>] <amount>

  Adds an investment of <amount> compounding every month by the rate factor:
  1.03 means +3% a month. The purchase is dated now unless -date is given.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Type of investment, e.g. \"Renda Fixa CDB\".")
	f.StringVar(&c.rate, "rate", "", "Monthly multiplicative rate of return, e.g. 1.03.")
	f.StringVar(&c.date, "date", "", "Purchase date. Defaults to now.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: invest takes exactly one amount.")
		return subcommands.ExitUsageError
	}
	if c.kind == "" || c.rate == "" {
		fmt.Fprintln(os.Stderr, "Error: -type and -rate are required.")
		return subcommands.ExitUsageError
	}
	amount, err := finances.ParseMoney(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := finances.ParseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rate: %v\n", err)
		return subcommands.ExitUsageError
	}
	var purchased *time.Time
	if c.date != "" {
		t, err := parseTime(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		purchased = &t
	}

	return update(func(client *finances.Client) error {
		inv := finances.NewInvestment(client, c.kind, amount, rate)
		if purchased != nil {
			inv.Purchased = *purchased
		}
		if err := client.AddInvestment(inv); err != nil {
			return err
		}
		Logger.Info().
			Str("type", inv.Type).
			Str("amount", inv.InitialAmount.BRL()).
			Str("annual", inv.AnnualReturn().String()).
			Int("index", len(client.Investments())-1).
			Msg("investment added")
		return nil
	})
}

// sellCmd sells an investment into an account.
type sellCmd struct {
	account string
	index   int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell an investment, crediting its value to an account" }
func (*sellCmd) Usage() string {
	return `fin sell [-a <account>] -i <investment index>

  Credits the current value of the investment to the account, with the
  category "Investiment", and zeroes its principal. The investment stays
  listed with a zero value.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to credit. Defaults to the only account if one exists.")
	f.IntVar(&c.index, "i", -1, "Index of the investment, as listed by 'fin report'.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 0 {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}
	return update(func(client *finances.Client) error {
		investments := client.Investments()
		if c.index >= len(investments) {
			return fmt.Errorf("client %q has no investment #%d", client.Name, c.index)
		}
		a, err := selectAccount(client, c.account)
		if err != nil {
			return err
		}
		inv := investments[c.index]
		if inv.Sold() {
			Logger.Warn().Str("type", inv.Type).Msg("investment already sold, crediting a zero amount")
		}
		tx := inv.Sell(a)
		Logger.Info().Str("account", a.Name).Msg(tx.String())
		return nil
	})
}

// reportCmd prints the investment statement.
type reportCmd struct {
	date string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the statement of every investment" }
func (*reportCmd) Usage() string {
	return `fin report [-d <date>]

  Displays, for every investment, its purchase date, type, annual return,
  invested amount and current value.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Value investments on this date instead of now.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := optionalTime(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	client, err := DecodeClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := renderer.WriteInvestmentReport(stdout, client, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// futureCmd prints the projection of every investment.
type futureCmd struct {
	date string
}

func (*futureCmd) Name() string     { return "future" }
func (*futureCmd) Synopsis() string { return "display the value of every investment in one and five years" }
func (*futureCmd) Usage() string {
	return `fin future [-d <date>]

  Displays, for every investment, its current value and its projected value
  12 and 60 months ahead.
`
}

func (c *futureCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Project from this date instead of now.")
}

func (c *futureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := optionalTime(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	client, err := DecodeClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := renderer.WriteFutureValueReport(stdout, client, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
