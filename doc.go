// Package finances models personal finances: a Client owns Accounts and
// Investments, an Account records Transactions, and an Investment
// compounds at a fixed monthly rate until it is sold.
//
// The model is in-memory and single threaded: callers sharing a Client
// between goroutines must serialize access to it. Amounts are exact
// decimals, rounded only when printed.
//
// This package serves as the foundational logic for the `fin` command-line
// tool, which persists a Client in a JSONL file between invocations.
package finances
