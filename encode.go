package finances

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Records kinds of the JSONL client file.
const (
	recordClient     = "client"
	recordAccount    = "account"
	recordTx         = "tx"
	recordInvestment = "investment"
)

// timestampFormat keeps the full precision of the timestamps.
const timestampFormat = time.RFC3339Nano

// The client file is a JSONL file, one record per line, each record starting with its kind:
//
//	{"record":"client","id":"…","name":"Rodrigo"}
//	{"record":"account","name":"Banco NES"}
//	{"record":"tx","date":"…","category":"Bolsa de Estudos","amount":5000}
//	{"record":"investment","id":"…","type":"Renda Fixa CDB","date":"…","amount":180.5,"rate":1.03}
//
// A tx record belongs to the last account record above it.

// jrecord is the union of all record fields, as read from the file.
type jrecord struct {
	Record      string          `json:"record"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Rate        decimal.Decimal `json:"rate"`
}

// EncodeClient writes the client, its accounts, their transactions and its investments in JSONL format.
func EncodeClient(w io.Writer, c *Client) error {
	if err := record(recordClient).Set("id", c.ID).Set("name", c.Name).WriteLine(w); err != nil {
		return err
	}
	for _, a := range c.accounts {
		if err := record(recordAccount).Set("name", a.Name).WriteLine(w); err != nil {
			return err
		}
		for _, tx := range a.transactions {
			err := record(recordTx).
				SetTime("date", tx.Date).
				Set("category", tx.Category).
				SetNonZero("description", tx.Description).
				Set("amount", tx.Amount).
				WriteLine(w)
			if err != nil {
				return err
			}
		}
	}
	for _, inv := range c.investments {
		err := record(recordInvestment).
			Set("id", inv.ID).
			Set("type", inv.Type).
			SetTime("date", inv.Purchased).
			Set("amount", inv.InitialAmount).
			Set("rate", inv.MonthlyRate).
			WriteLine(w)
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeClient reads a client encoded by EncodeClient.
func DecodeClient(r io.Reader) (*Client, error) {
	var c *Client
	var current *Account

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec jrecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", lineno, string(line), err)
		}
		if c == nil && rec.Record != recordClient {
			return nil, fmt.Errorf("format error on line %d: want a %q record first, got %q", lineno, recordClient, rec.Record)
		}

		switch rec.Record {
		case recordClient:
			if c != nil {
				return nil, fmt.Errorf("format error on line %d: client is already defined", lineno)
			}
			id, err := uuid.Parse(rec.ID)
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: invalid client id: %w", lineno, err)
			}
			c = &Client{ID: id, Name: rec.Name}
		case recordAccount:
			current = c.AddAccount(rec.Name)
		case recordTx:
			if current == nil {
				return nil, fmt.Errorf("format error on line %d: transaction outside of an account", lineno)
			}
			on, err := time.Parse(timestampFormat, rec.Date)
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: invalid date: %w", lineno, err)
			}
			current.transactions = append(current.transactions, &Transaction{
				Amount:      M(rec.Amount),
				Category:    rec.Category,
				Description: rec.Description,
				Date:        on,
			})
		case recordInvestment:
			id, err := uuid.Parse(rec.ID)
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: invalid investment id: %w", lineno, err)
			}
			on, err := time.Parse(timestampFormat, rec.Date)
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: invalid date: %w", lineno, err)
			}
			c.investments = append(c.investments, &Investment{
				ID:            id,
				ClientID:      c.ID,
				Type:          rec.Type,
				InitialAmount: M(rec.Amount),
				Purchased:     on,
				MonthlyRate:   R(rec.Rate),
			})
		default:
			return nil, fmt.Errorf("format error on line %d: unknown record %q", lineno, rec.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("format error: no %q record", recordClient)
	}
	return c, nil
}

// MarshalJSON returns a nested view of the client, with balances and
// current values, suitable for queries.
func (c *Client) MarshalJSON() ([]byte, error) {
	on := now()

	accounts := make([]*object, 0, len(c.accounts))
	for _, a := range c.accounts {
		txs := make([]*object, 0, len(a.transactions))
		for _, tx := range a.transactions {
			txs = append(txs, new(object).
				SetTime("date", tx.Date).
				Set("category", tx.Category).
				Set("description", tx.Description).
				Set("amount", tx.Amount))
		}
		accounts = append(accounts, new(object).
			Set("name", a.Name).
			Set("balance", a.Balance()).
			Set("transactions", txs))
	}

	investments := make([]*object, 0, len(c.investments))
	for _, inv := range c.investments {
		investments = append(investments, new(object).
			Set("id", inv.ID).
			Set("type", inv.Type).
			SetTime("purchased", inv.Purchased).
			Set("initialAmount", inv.InitialAmount).
			Set("monthlyRate", inv.MonthlyRate).
			Set("months", inv.MonthsHeld(on)).
			Set("value", inv.ValueAt(on).Round()).
			Set("sold", inv.Sold()))
	}

	return new(object).
		Set("id", c.ID).
		Set("name", c.Name).
		Set("netWorth", c.NetWorthAt(on).Round()).
		Set("accounts", accounts).
		Set("investments", investments).
		MarshalJSON()
}
