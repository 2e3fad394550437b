package finances

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeClient(t *testing.T) {
	setNow(t, time.Date(2025, 1, 15, 9, 30, 5, 123456789, time.UTC))
	c := NewClient("Rodrigo")
	a := c.AddAccount("Banco NES")
	a.AddTransaction(M(5000), "Bolsa de Estudos", "")
	a.AddTransaction(M(-56.25), "Comidas", "Hamburguer do NESFood")
	c.AddAccount("Poupança")
	if err := c.AddInvestment(NewInvestment(c, "Renda Fixa CDB", M(180.5), R(1.03))); err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := EncodeClient(&b, c); err != nil {
		t.Fatalf("EncodeClient() unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("EncodeClient() wrote %d lines, want 6:\n%s", len(lines), b.String())
	}
	wantTx := `{"record":"tx","date":"2025-01-15T09:30:05.123456789Z","category":"Comidas","description":"Hamburguer do NESFood","amount":-56.25}`
	if lines[3] != wantTx {
		t.Errorf("tx line = %s\nwant %s", lines[3], wantTx)
	}

	got, err := DecodeClient(&b)
	if err != nil {
		t.Fatalf("DecodeClient() unexpected error: %v", err)
	}
	if got.ID != c.ID || got.Name != c.Name {
		t.Errorf("client = %v %q, want %v %q", got.ID, got.Name, c.ID, c.Name)
	}
	if len(got.Accounts()) != 2 {
		t.Fatalf("decoded %d accounts, want 2", len(got.Accounts()))
	}
	nes := got.Accounts()[0]
	if nes.Len() != 2 || !nes.Balance().Equal(M(4943.75)) {
		t.Errorf("Banco NES: %d transactions, balance %v", nes.Len(), nes.Balance())
	}
	if nes.ClientID != c.ID {
		t.Errorf("account owner = %v, want %v", nes.ClientID, c.ID)
	}
	if tx := nes.Transaction(1); tx.String() != "Transação: Hamburguer do NESFood R$-56.25 (Comidas)" || !tx.Date.Equal(now()) {
		t.Errorf("decoded transaction %q on %v", tx, tx.Date)
	}
	invs := got.Investments()
	if len(invs) != 1 {
		t.Fatalf("decoded %d investments, want 1", len(invs))
	}
	inv, want := invs[0], c.Investments()[0]
	if inv.ID != want.ID || inv.ClientID != c.ID || inv.Type != want.Type ||
		!inv.InitialAmount.Equal(want.InitialAmount) || !inv.MonthlyRate.Equal(want.MonthlyRate) ||
		!inv.Purchased.Equal(want.Purchased) {
		t.Errorf("decoded investment %+v, want %+v", inv, want)
	}
}

func TestDecodeClientErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "no \"client\" record"},
		{"not json", "{", "line 1"},
		{"account first", `{"record":"account","name":"x"}`, "want a \"client\" record first"},
		{"bad id", `{"record":"client","id":"nope","name":"x"}`, "invalid client id"},
		{"orphan tx", `{"record":"client","id":"5f2b1c52-0d3b-4c55-9a31-2f1a0ad33f44","name":"x"}
{"record":"tx","date":"2025-01-01T00:00:00Z","category":"c","amount":1}`, "line 2: transaction outside of an account"},
		{"unknown", `{"record":"client","id":"5f2b1c52-0d3b-4c55-9a31-2f1a0ad33f44","name":"x"}
{"record":"loan"}`, "unknown record \"loan\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeClient(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("DecodeClient() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestClientMarshalJSON(t *testing.T) {
	setNow(t, day(2025, 1, 15))
	c := NewClient("Rodrigo")
	c.AddAccount("Banco NES").AddTransaction(M(5000), "Bolsa de Estudos", "")
	if err := c.AddInvestment(NewInvestment(c, "Renda Fixa CDB", M(180.5), R(1.03))); err != nil {
		t.Fatal(err)
	}
	setNow(t, day(2025, 2, 15))

	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	var doc struct {
		Name     string  `json:"name"`
		NetWorth float64 `json:"netWorth"`
		Accounts []struct {
			Balance float64 `json:"balance"`
		} `json:"accounts"`
		Investments []struct {
			Months int     `json:"months"`
			Value  float64 `json:"value"`
		} `json:"investments"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("Unmarshal(%s) unexpected error: %v", b, err)
	}
	if doc.Name != "Rodrigo" || doc.NetWorth != 5185.92 || len(doc.Accounts) != 1 || doc.Accounts[0].Balance != 5000 {
		t.Errorf("unexpected document %s", b)
	}
	if len(doc.Investments) != 1 || doc.Investments[0].Months != 1 || doc.Investments[0].Value != 185.92 {
		t.Errorf("unexpected investments in %s", b)
	}
}
