package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/finances"
)

// rodrigo returns the historical example client, with an
// investment purchased on 2025-01-15 09:30:05.
func rodrigo(t *testing.T) *finances.Client {
	t.Helper()
	c := finances.NewClient("Rodrigo")
	a := c.AddAccount("Banco NES")
	a.AddTransaction(finances.M(5000), "Bolsa de Estudos", "")

	inv := finances.NewInvestment(c, "Renda Fixa CDB", finances.M(180.5), finances.R(1.03))
	inv.Purchased = time.Date(2025, 1, 15, 9, 30, 5, 0, time.UTC)
	if err := c.AddInvestment(inv); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestInvestmentReport(t *testing.T) {
	c := rodrigo(t)
	on := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	var b bytes.Buffer
	if err := WriteInvestmentReport(&b, c, on); err != nil {
		t.Fatalf("WriteInvestmentReport() unexpected error: %v", err)
	}
	want := `--------------------
Data de compra: 2025-01-15 09:30:05
Tipo de investimento: Renda Fixa CDB
Rendimento Anual: 12.36%
Dinheiro investido: R$180.50
Valor atual do investimento: R$180.50
--------------------
`
	if got := b.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFutureValueReport(t *testing.T) {
	c := rodrigo(t)

	tests := []struct {
		name string
		on   time.Time
		want string
	}{
		{
			name: "at purchase",
			on:   time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			want: `--------------------
Tipo do investimento: Renda Fixa CDB
Valor investido inicialmente: 180.50
Valor Atual: 180.50
Valor em um ano: 257.35
Valor em 5 anos: 1,063.43
--------------------
`,
		},
		{
			name: "two months later",
			on:   time.Date(2025, 3, 15, 9, 30, 5, 0, time.UTC),
			want: `--------------------
Tipo do investimento: Renda Fixa CDB
Valor investido inicialmente: 180.50
Valor Atual: 191.49
Valor em um ano: 273.02
Valor em 5 anos: 1,128.20
--------------------
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := WriteFutureValueReport(&b, c, tt.on); err != nil {
				t.Fatalf("WriteFutureValueReport() unexpected error: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestReportsWithoutInvestments(t *testing.T) {
	c := finances.NewClient("Ana")
	r := NewInvestments(c, time.Now())
	if got := RenderInvestmentReport(r); got != "" {
		t.Errorf("RenderInvestmentReport() = %q, want empty", got)
	}
	if got := RenderFutureValueReport(r); got != "" {
		t.Errorf("RenderFutureValueReport() = %q, want empty", got)
	}
}

func TestSoldInvestmentReport(t *testing.T) {
	c := rodrigo(t)
	a, err := c.Account("Banco NES")
	if err != nil {
		t.Fatal(err)
	}
	c.Investments()[0].Sell(a)

	got := RenderInvestmentReport(NewInvestments(c, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	for _, want := range []string{"Dinheiro investido: R$0.00\n", "Valor atual do investimento: R$0.00\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("report does not contain %q:\n%s", want, got)
		}
	}
}

func TestTransactions(t *testing.T) {
	c := finances.NewClient("Rodrigo")
	a := c.AddAccount("Banco NES")
	a.AddTransaction(finances.M(5000), "Bolsa de Estudos", "")
	a.AddTransaction(finances.M(-56.25), "Comidas", "Hamburguer | fritas")
	a.AddTransaction(finances.M(5000), "Bolsa de Estudos", "")
	for tx := range a.All() {
		tx.Date = time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	}

	txs, err := a.Transactions(finances.Filter{Category: "comidas"})
	if err != nil {
		t.Fatal(err)
	}
	got := Transactions(a, txs)
	for _, want := range []string{
		"# Banco NES",
		"Hamburguer",
		"R$-56.25",
		"**Total**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Bolsa") {
		t.Errorf("listing contains filtered out transactions:\n%s", got)
	}

	if got := Transactions(a, nil); !strings.Contains(got, "No transactions.") {
		t.Errorf("empty listing = %q", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	c := rodrigo(t)
	got := SummaryMarkdown(c, time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"# Rodrigo on 2025-02-15",
		"R$5,185.92",
		"## Accounts",
		"Banco NES",
		"R$5,000.00",
		"## Investments",
		"Renda Fixa CDB",
		"R$185.92",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary does not contain %q:\n%s", want, got)
		}
	}
}

func TestFutureValueReportLargeProjection(t *testing.T) {
	c := finances.NewClient("Rodrigo")
	inv := finances.NewInvestment(c, "Cripto", finances.M(1000000), finances.R(1.6))
	inv.Purchased = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if err := c.AddInvestment(inv); err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := WriteFutureValueReport(&b, c, inv.Purchased); err != nil {
		t.Fatalf("WriteFutureValueReport() unexpected error: %v", err)
	}
	if got := b.String(); !strings.Contains(got, "Valor em 5 anos: 1,766,847,064,778,") {
		t.Errorf("five years projection is wrong:\n%s", got)
	}
}
