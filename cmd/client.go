package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/finances"
	"github.com/etnz/finances/renderer"
	"github.com/google/subcommands"
)

type initCmd struct {
	name  string
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the client file" }
func (*initCmd) Usage() string {
	return `fin init -name <client name> [-f]

  Creates a client file for a new client, without accounts nor investments.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the client.")
	f.BoolVar(&c.force, "f", false, "Overwrite an existing client file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(ClientFile()); !c.force && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: client file %q already exists, use -f to overwrite it.\n", ClientFile())
		return subcommands.ExitFailure
	}

	client := finances.NewClient(c.name)
	if err := EncodeClient(client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Logger.Info().Str("client", client.Name).Str("id", client.ID.String()).Msg("client created")
	return subcommands.ExitSuccess
}

type addAccountCmd struct{}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "open a new account" }
func (*addAccountCmd) Usage() string {
	return `fin add-account <name>

  Opens a new account, with a zero balance.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: add-account takes exactly one account name.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	return update(func(client *finances.Client) error {
		if _, err := client.Account(name); err == nil {
			return fmt.Errorf("account %q already exists", name)
		}
		client.AddAccount(name)
		Logger.Info().Str("account", name).Msg("account opened")
		return nil
	})
}

type worthCmd struct {
	date string
}

func (*worthCmd) Name() string     { return "worth" }
func (*worthCmd) Synopsis() string { return "display the client net worth" }
func (*worthCmd) Usage() string {
	return `fin worth [-d <date>]

  Displays the sum of all account balances and of all investment values.
`
}

func (c *worthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Value investments on this date instead of now.")
}

func (c *worthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := optionalTime(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	client, err := DecodeClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, client.NetWorthAt(on).BRL())
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the net worth with accounts and investments" }
func (*summaryCmd) Usage() string {
	return `fin summary [-d <date>]

  Displays the net worth, the balance of each account and the value of each investment.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Value investments on this date instead of now.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := optionalTime(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	client, err := DecodeClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(client, on))
	return subcommands.ExitSuccess
}
