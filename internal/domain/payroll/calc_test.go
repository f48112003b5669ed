package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeNet(t *testing.T) {
	gross := decimal.NewFromInt(10000)
	bonus := decimal.NewFromInt(500)
	deduction := decimal.NewFromInt(200)

	net := ComputeNet(gross, bonus, deduction)
	if !net.Equal(decimal.NewFromInt(10300)) {
		t.Fatalf("expected net 10300, got %s", net)
	}
}

func TestComputeNetZeroExtras(t *testing.T) {
	gross := decimal.NewFromInt(3500)

	net := ComputeNet(gross, decimal.Zero, decimal.Zero)
	if !net.Equal(gross) {
		t.Fatalf("expected net %s, got %s", gross, net)
	}
}

func TestComputeNetNoGuard(t *testing.T) {
	// The calculator itself is unguarded; over-deduction is rejected
	// by the service before anything is stored.
	net := ComputeNet(decimal.NewFromInt(10000), decimal.NewFromInt(500), decimal.NewFromInt(11000))
	if !net.Equal(decimal.NewFromInt(-500)) {
		t.Fatalf("expected net -500, got %s", net)
	}
}
