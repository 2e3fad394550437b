package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// getCmd queries the client with a JSONPath expression.
type getCmd struct{}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "query the client with a JSONPath expression" }
func (*getCmd) Usage() string {
	return `fin get <jsonpath>

  Evaluates a JSONPath expression on the client document and prints the
  result as JSON. For instance:

    fin get '$.netWorth'
    fin get '$.accounts[?(@.name=="Banco NES")].balance'
    fin get '$.investments[*].value'

  See 'fin topic query' for the document structure.
`
}

func (c *getCmd) SetFlags(f *flag.FlagSet) {}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: get takes exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	client, err := DecodeClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// jsonpath works on the generic representation of the document.
	raw, err := json.Marshal(client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling client: %v\n", err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing client document: %v\n", err)
		return subcommands.ExitFailure
	}

	val, err := jsonpath.Get(path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
