package finances

import (
	"errors"
	"testing"
)

// TestRodrigo replays the historical example of the package.
func TestRodrigo(t *testing.T) {
	setNow(t, day(2025, 5, 2))

	c := NewClient("Rodrigo")
	c.AddAccount("Banco NES")
	a := c.Accounts()[0]
	a.AddTransaction(M(5000), "Bolsa de Estudos", "")

	txs, err := a.Transactions(Filter{Category: "Bolsa"})
	if err != nil {
		t.Fatalf("Transactions() unexpected error: %v", err)
	}
	if len(txs) != 1 || txs[0].Category != "Bolsa de Estudos" {
		t.Fatalf("Transactions(Bolsa) = %v, want the scholarship", txs)
	}
	if !a.Balance().Equal(M(5000)) {
		t.Errorf("Balance() = %v, want 5000", a.Balance())
	}

	inv := NewInvestment(c, "Renda Fixa CDB", M(180.5), R(1.03))
	if err := c.AddInvestment(inv); err != nil {
		t.Fatalf("AddInvestment() unexpected error: %v", err)
	}
	if got := c.NetWorth(); !got.Equal(M(5180.5)) {
		t.Errorf("NetWorth() = %v, want 5,180.50", got)
	}
}

func TestNetWorth(t *testing.T) {
	setNow(t, day(2025, 1, 15))
	c := NewClient("Rodrigo")
	checking := c.AddAccount("Banco NES")
	savings := c.AddAccount("Poupança")
	checking.AddTransaction(M(1000), "Salário", "")
	checking.AddTransaction(M(-250), "Aluguel", "")
	savings.AddTransaction(M(300), "Reserva", "")

	cdb := NewInvestment(c, "CDB", M(100), R(1.1))
	sold := NewInvestment(c, "Ações", M(50), R(1.2))
	for _, inv := range []*Investment{cdb, sold} {
		if err := c.AddInvestment(inv); err != nil {
			t.Fatal(err)
		}
	}
	sold.Sell(savings) // credits 50

	on := day(2025, 3, 15)
	want := checking.Balance().Add(savings.Balance()).Add(cdb.ValueAt(on)).Add(sold.ValueAt(on))
	if got := c.NetWorthAt(on); !got.Equal(want) {
		t.Errorf("NetWorthAt() = %v, want %v", got, want)
	}
	// 750 + 350 + 100*1.1^2 + 0
	if got := c.NetWorthAt(on); !got.Equal(M(1221)) {
		t.Errorf("NetWorthAt() = %v, want 1,221.00", got.Decimal())
	}
	if len(c.Investments()) != 2 {
		t.Errorf("sold investments must stay listed, got %d", len(c.Investments()))
	}
}

func TestAddForeignInvestment(t *testing.T) {
	rodrigo, ana := NewClient("Rodrigo"), NewClient("Ana")
	inv := NewInvestment(ana, "CDB", M(100), R(1.01))

	if err := rodrigo.AddInvestment(inv); !errors.Is(err, ErrForeignInvestment) {
		t.Errorf("AddInvestment() error = %v, want ErrForeignInvestment", err)
	}
	if len(rodrigo.Investments()) != 0 {
		t.Errorf("foreign investment was added")
	}
}

func TestClientAccount(t *testing.T) {
	c := NewClient("Rodrigo")
	want := c.AddAccount("Banco NES")

	got, err := c.Account("Banco NES")
	if err != nil || got != want {
		t.Errorf("Account(Banco NES) = %v, %v", got, err)
	}
	if _, err := c.Account("Banco XYZ"); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("Account(Banco XYZ) error = %v, want ErrUnknownAccount", err)
	}
}
