package export

import (
	"bytes"
	"testing"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/domain/finance"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestExcelReportRenderer_RenderJobReport(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	worker := &entities.Worker{ID: "w1", FirstName: "Ali", LastName: "Kaya", RoleType: entities.WorkerRoleMaster}
	vat := decimal.NewFromInt(20)

	report := finance.JobReport{
		GeneratedAt: day,
		Job:         entities.Job{ReferenceCode: "JOB-2026-0001", CustomerName: "Ayse", Status: entities.JobStatusInProgress},
		Summary:     finance.Summary{NetProfit: decimal.RequireFromString("1250.5")},
		Labor: []entities.LaborEntry{{
			WorkerID: "w1", Worker: worker, WorkDate: day,
			Hours: decimal.NewFromInt(8), HourlyRate: decimal.NewFromInt(150), TotalAmount: decimal.NewFromInt(1200),
		}},
		Purchases: []entities.MaterialPurchase{{
			SupplierID: "s1", Supplier: &entities.Supplier{Name: "Demir AS"}, MaterialName: "Sheet 2mm",
			Quantity: decimal.NewFromInt(10), Unit: "adet", UnitPrice: decimal.NewFromInt(100), VatRate: &vat,
			TotalAmount: decimal.NewFromInt(1200), PurchaseDate: day,
		}},
		Payments: []entities.Payment{{
			Type: entities.PaymentTypeCollection, Party: entities.PaymentPartyCustomer, Method: entities.PaymentMethodCash,
			Amount: decimal.NewFromInt(5000), Currency: entities.CurrencyTRY, PaymentDate: day,
		}},
		Workers: []finance.WorkerTotal{{WorkerID: "w1", WorkerName: "Ali Kaya", EntryCount: 1}},
	}

	r := NewExcelReportRenderer()
	if r.FileExtension() != ".xlsx" {
		t.Fatalf("expected .xlsx, got %s", r.FileExtension())
	}

	content, err := r.RenderJobReport(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("expected a readable workbook, got %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SheetSummary, SheetLabor, SheetMaterials, SheetPayments}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("expected sheets %v, got %v", want, sheets)
		}
	}

	t.Run("summary", func(t *testing.T) {
		if v, _ := f.GetCellValue(SheetSummary, "B2"); v != "JOB-2026-0001" {
			t.Fatalf("expected reference code, got %q", v)
		}
		if v, _ := f.GetCellValue(SheetSummary, "A17"); v != "Net profit" {
			t.Fatalf("expected net profit label, got %q", v)
		}
		if v, _ := f.GetCellValue(SheetSummary, "B17"); v != "1250.5" {
			t.Fatalf("expected 1250.5, got %q", v)
		}
	})

	t.Run("detail sheets", func(t *testing.T) {
		if v, _ := f.GetCellValue(SheetLabor, "B2"); v != "Ali Kaya" {
			t.Fatalf("expected worker name, got %q", v)
		}
		if v, _ := f.GetCellValue(SheetLabor, "F2"); v != "1200" {
			t.Fatalf("expected labor total 1200, got %q", v)
		}
		if v, _ := f.GetCellValue(SheetMaterials, "C2"); v != "Sheet 2mm" {
			t.Fatalf("expected material name, got %q", v)
		}
		if v, _ := f.GetCellValue(SheetPayments, "E2"); v != "5000" {
			t.Fatalf("expected payment amount 5000, got %q", v)
		}
	})
}
