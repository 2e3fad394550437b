// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finances"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvClientFile = "FIN_CLIENT_FILE"
	EnvVerbose    = "FIN_VERBOSE"

	defaultClientFile = "client.jsonl"
)

// Groups lists the groups of Commands in help order.
var Groups = []string{"client", "transactions", "investments", "help"}

// Commands lists all the subcommands, by group.
var Commands = map[string][]subcommands.Command{
	"client": {
		&initCmd{},
		&addAccountCmd{},
		&worthCmd{},
		&summaryCmd{},
		&getCmd{},
	},
	"transactions": {
		&addTxCmd{},
		&updateTxCmd{},
		&txCmd{},
	},
	"investments": {
		&investCmd{},
		&sellCmd{},
		&reportCmd{},
		&futureCmd{},
	},
	"help": {
		&topicCmd{},
	},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range Groups {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var clientFile = flag.String("client-file", "", "Path to the client file (JSONL format). Defaults to $"+EnvClientFile+" or "+defaultClientFile)
var Verbose = flag.Bool("v", false, "Verbose logging. Defaults to $"+EnvVerbose)

// stdout is where commands print their result.
var stdout io.Writer = os.Stdout

// Logger is the application logger, writing to stderr.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// Setup loads the configuration: a .env file in the working directory, if
// any, then the environment for every flag left unset.
// It must be called after flags have been parsed.
func Setup() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		Logger.Warn().Err(err).Msg("could not load .env file")
	}
	if *clientFile == "" {
		*clientFile = os.Getenv(EnvClientFile)
	}
	if *clientFile == "" {
		*clientFile = defaultClientFile
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvVerbose)); err == nil && v {
		*Verbose = true
	}
	if *Verbose {
		Logger = Logger.Level(zerolog.DebugLevel)
	}
	Logger.Debug().Str("client-file", *clientFile).Msg("configuration loaded")
}

// ClientFile returns the path of the client file.
func ClientFile() string {
	if *clientFile == "" {
		return defaultClientFile
	}
	return *clientFile
}

// DecodeClient reads the client from the client file.
func DecodeClient() (*finances.Client, error) {
	filename := ClientFile()
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("client file %q does not exist, create it with 'fin init': %w", filename, err)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open client file %q: %w", filename, err)
	}
	defer f.Close()

	c, err := finances.DecodeClient(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode client file %q: %w", filename, err)
	}
	Logger.Debug().Str("file", filename).Str("client", c.Name).Msg("client decoded")
	return c, nil
}

// EncodeClient replaces the client file with c.
//
// The file is written next to the target then renamed, so that a failure
// never leaves a truncated client file.
func EncodeClient(c *finances.Client) error {
	filename := ClientFile()
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".fin-*.jsonl")
	if err != nil {
		return fmt.Errorf("could not create temporary client file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := finances.EncodeClient(tmp, c); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode client: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write client file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("could not replace client file %q: %w", filename, err)
	}
	Logger.Debug().Str("file", filename).Msg("client encoded")
	return nil
}

// update decodes the client, applies f and encodes the client back.
func update(f func(c *finances.Client) error) subcommands.ExitStatus {
	c, err := DecodeClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := f(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeClient(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// selectAccount returns the account named 'name', or the only account when name is empty.
func selectAccount(c *finances.Client, name string) (*finances.Account, error) {
	if name != "" {
		return c.Account(name)
	}
	accounts := c.Accounts()
	switch len(accounts) {
	case 0:
		return nil, fmt.Errorf("client %q has no account, create one with 'fin add-account'", c.Name)
	case 1:
		return accounts[0], nil
	default:
		return nil, fmt.Errorf("client %q has %d accounts, select one with -a", c.Name, len(accounts))
	}
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		Logger.Debug().Err(err).Msg("markdown renderer unavailable")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		Logger.Debug().Err(err).Msg("could not render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
