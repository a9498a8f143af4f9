package finance

import (
	"reflect"
	"testing"
	"time"

	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestLaborAmount(t *testing.T) {
	if got := LaborAmount(d("8"), d("350")); !got.Equal(d("2800")) {
		t.Fatalf("expected 2800, got %s", got)
	}
	if got := LaborAmount(d("0.5"), d("333.33")); !got.Equal(d("166.67")) {
		t.Fatalf("expected 166.67, got %s", got)
	}
}

func TestMaterialAmount(t *testing.T) {
	t.Run("with vat", func(t *testing.T) {
		if got := MaterialAmount(d("5"), d("1200"), dp("20")); !got.Equal(d("7200")) {
			t.Fatalf("expected 7200, got %s", got)
		}
	})

	t.Run("nil vat", func(t *testing.T) {
		if got := MaterialAmount(d("5"), d("1200"), nil); !got.Equal(d("6000")) {
			t.Fatalf("expected 6000, got %s", got)
		}
	})

	t.Run("zero vat", func(t *testing.T) {
		if got := MaterialAmount(d("2.5"), d("10"), dp("0")); !got.Equal(d("25")) {
			t.Fatalf("expected 25, got %s", got)
		}
	})
}

func TestOfferTotals(t *testing.T) {
	items := []entities.OfferItem{
		{Quantity: d("2"), UnitPrice: d("50000"), VatRate: d("20")},
		{Quantity: d("1"), UnitPrice: d("20000"), VatRate: d("0")},
	}
	sub, vat, grand := OfferTotals(items)
	if !sub.Equal(d("120000")) || !vat.Equal(d("20000")) || !grand.Equal(d("140000")) {
		t.Fatalf("unexpected totals %s %s %s", sub, vat, grand)
	}
	if !items[0].LineTotal.Equal(d("100000")) {
		t.Fatalf("expected line total filled, got %s", items[0].LineTotal)
	}
}

func sampleInput() Input {
	return Input{
		Job: entities.Job{LaborCostTotal: d("7300"), MaterialCostTotal: d("46200")},
		Offers: []entities.Offer{
			{Status: entities.OfferStatusAccepted, GrandTotal: d("120000")},
			{Status: entities.OfferStatusRejected, GrandTotal: d("999999")},
		},
		Payments: []entities.Payment{
			{Type: entities.PaymentTypeCollection, Amount: d("30000")},
			{Type: entities.PaymentTypeCollection, Amount: d("20000")},
		},
	}
}

func TestDerive(t *testing.T) {
	t.Run("profit formula end to end", func(t *testing.T) {
		s := Derive(sampleInput())
		if !s.TotalProjectCost.Equal(d("53500")) {
			t.Fatalf("expected cost 53500, got %s", s.TotalProjectCost)
		}
		if !s.RemainingReceivable.Equal(d("70000")) {
			t.Fatalf("expected remaining 70000, got %s", s.RemainingReceivable)
		}
		if !s.NetProfit.Equal(d("-3500")) {
			t.Fatalf("expected net profit -3500, got %s", s.NetProfit)
		}
		if !s.ExpectedProfit.Equal(d("66500")) {
			t.Fatalf("expected expected profit 66500, got %s", s.ExpectedProfit)
		}
		if !s.ProfitMargin.Equal(d("-2.92")) {
			t.Fatalf("expected margin -2.92, got %s", s.ProfitMargin)
		}
	})

	t.Run("signed contract takes precedence", func(t *testing.T) {
		in := sampleInput()
		in.Contracts = []entities.Contract{
			{Status: entities.ContractStatusSigned, TotalAmount: d("150000")},
			{Status: entities.ContractStatusDraft, TotalAmount: d("1")},
		}
		s := Derive(in)
		if !s.ReceivableBase.Equal(d("150000")) || !s.RemainingReceivable.Equal(d("100000")) {
			t.Fatalf("unexpected base %s remaining %s", s.ReceivableBase, s.RemainingReceivable)
		}
	})

	t.Run("expense payments add to cost", func(t *testing.T) {
		in := sampleInput()
		in.Payments = append(in.Payments, entities.Payment{Type: entities.PaymentTypeExpense, Amount: d("1500")})
		s := Derive(in)
		if !s.TotalExpensePayments.Equal(d("1500")) || !s.TotalProjectCost.Equal(d("55000")) {
			t.Fatalf("unexpected expense %s cost %s", s.TotalExpensePayments, s.TotalProjectCost)
		}
	})

	t.Run("zero base gives zero margin", func(t *testing.T) {
		s := Derive(Input{Job: entities.Job{LaborCostTotal: d("100")}})
		if !s.ProfitMargin.IsZero() || !s.NetProfit.Equal(d("-100")) {
			t.Fatalf("unexpected margin %s net %s", s.ProfitMargin, s.NetProfit)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		in := sampleInput()
		first, second := Derive(in), Derive(in)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical summaries:\n%+v\n%+v", first, second)
		}
	})
}

func TestBreakdowns(t *testing.T) {
	ali := &entities.Worker{ID: "w1", FirstName: "Ali", LastName: "Kaya"}
	veli := &entities.Worker{ID: "w2", FirstName: "Veli"}
	entries := []entities.LaborEntry{
		{WorkerID: "w2", Worker: veli, Hours: d("4"), TotalAmount: d("1000")},
		{WorkerID: "w1", Worker: ali, Hours: d("8"), TotalAmount: d("2800")},
		{WorkerID: "w1", Worker: ali, Hours: d("2"), TotalAmount: d("700")},
	}

	t.Run("workers", func(t *testing.T) {
		got := WorkerBreakdown(entries)
		if len(got) != 2 || got[0].WorkerName != "Ali Kaya" {
			t.Fatalf("unexpected breakdown: %+v", got)
		}
		if got[0].EntryCount != 2 || !got[0].TotalHours.Equal(d("10")) || !got[0].TotalAmount.Equal(d("3500")) {
			t.Fatalf("unexpected worker total: %+v", got[0])
		}
	})

	t.Run("suppliers", func(t *testing.T) {
		acme := &entities.Supplier{ID: "s1", Name: "Acme Steel"}
		got := SummarizePurchases([]entities.MaterialPurchase{
			{SupplierID: "s1", Supplier: acme, TotalAmount: d("7200")},
			{SupplierID: "s1", Supplier: acme, TotalAmount: d("800")},
			{SupplierID: "s2", Supplier: &entities.Supplier{ID: "s2", Name: "Bolt Co"}, TotalAmount: d("100")},
		})
		if got.Count != 3 || !got.TotalAmount.Equal(d("8100")) || len(got.SupplierTotals) != 2 {
			t.Fatalf("unexpected summary: %+v", got)
		}
		if got.SupplierTotals[0].SupplierName != "Acme Steel" || got.SupplierTotals[0].PurchaseCount != 2 {
			t.Fatalf("unexpected supplier total: %+v", got.SupplierTotals[0])
		}
	})

	t.Run("worker debts", func(t *testing.T) {
		w1 := "w1"
		w3 := "w3"
		debts := WorkerDebts(entries, []entities.Payment{
			{Type: entities.PaymentTypeExpense, WorkerID: &w1, Amount: d("3000")},
			{Type: entities.PaymentTypeCollection, WorkerID: &w1, Amount: d("99")},
			{Type: entities.PaymentTypeExpense, WorkerID: &w3, Amount: d("50")},
		})
		if len(debts) != 3 {
			t.Fatalf("expected 3 workers, got %+v", debts)
		}
		byID := map[string]WorkerDebt{}
		for _, debt := range debts {
			byID[debt.WorkerID] = debt
		}
		if !byID["w1"].Remaining.Equal(d("500")) || !byID["w2"].Remaining.Equal(d("1000")) || !byID["w3"].Remaining.Equal(d("-50")) {
			t.Fatalf("unexpected debts: %+v", byID)
		}
	})

	t.Run("labor summary of nothing is zero", func(t *testing.T) {
		s := SummarizeLabor(nil)
		if s.Count != 0 || !s.TotalAmount.IsZero() || !s.TotalHours.IsZero() {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})
}

func TestClassifyPlans(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	plans := []entities.PaymentPlan{
		{ID: "late", DueDate: now.AddDate(0, 0, -2), Status: entities.PaymentPlanStatusPending},
		{ID: "soon", DueDate: now.AddDate(0, 0, 2), Status: entities.PaymentPlanStatusPending},
		{ID: "far", DueDate: now.AddDate(0, 1, 0), Status: entities.PaymentPlanStatusPending},
		{ID: "paid", DueDate: now.AddDate(0, 0, -2), Status: entities.PaymentPlanStatusPaid},
	}
	overdue, upcoming := ClassifyPlans(plans, now)
	if len(overdue) != 1 || overdue[0].ID != "late" {
		t.Fatalf("unexpected overdue: %+v", overdue)
	}
	if len(upcoming) != 1 || upcoming[0].ID != "soon" {
		t.Fatalf("unexpected upcoming: %+v", upcoming)
	}
}
