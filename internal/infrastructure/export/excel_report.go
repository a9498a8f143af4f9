// Package export renders job reports into downloadable documents.
package export

import (
	"fmt"

	"metalshop/internal/domain/finance"
	"metalshop/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetLabor     = "Labor"
	SheetMaterials = "Materials"
	SheetPayments  = "Payments"

	dateLayout = "2006-01-02"
)

// ExcelReportRenderer writes a job report as an .xlsx workbook with one
// summary sheet and one sheet per cost source.
type ExcelReportRenderer struct{}

var _ interfaces.IJobReportRenderer = (*ExcelReportRenderer)(nil)

func NewExcelReportRenderer() *ExcelReportRenderer {
	return &ExcelReportRenderer{}
}

func (r *ExcelReportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *ExcelReportRenderer) FileExtension() string {
	return ".xlsx"
}

func (r *ExcelReportRenderer) RenderJobReport(report finance.JobReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetLabor, SheetMaterials, SheetPayments} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	w := sheetWriter{f: f, headerStyle: headerStyle}
	w.summary(report)
	w.labor(report)
	w.materials(report)
	w.payments(report)
	if w.err != nil {
		return nil, w.err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so the sheet builders read as plain
// sequences of cell writes.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (w *sheetWriter) set(sheet string, col, row int, value any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if d, ok := value.(decimal.Decimal); ok {
		value = d.InexactFloat64()
	}
	w.err = w.f.SetCellValue(sheet, cell, value)
}

func (w *sheetWriter) header(sheet string, row int, labels ...string) {
	for i, label := range labels {
		w.set(sheet, i+1, row, label)
	}
	if w.err != nil || len(labels) == 0 {
		return
	}
	last, _ := excelize.ColumnNumberToName(len(labels))
	w.err = w.f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), w.headerStyle)
	if w.err == nil {
		w.err = w.f.SetColWidth(sheet, "A", last, 20)
	}
}

func (w *sheetWriter) summary(r finance.JobReport) {
	s := r.Summary
	rows := [][2]any{
		{"Reference", r.Job.ReferenceCode},
		{"Title", r.Job.Title},
		{"Customer", r.Job.CustomerDisplayName()},
		{"Status", string(r.Job.Status)},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"", ""},
		{"Accepted offer total", s.AcceptedOfferTotal},
		{"Contract total", s.ContractTotal},
		{"Receivable base", s.ReceivableBase},
		{"Total collection", s.TotalCollection},
		{"Remaining receivable", s.RemainingReceivable},
		{"Labor cost", s.LaborCostTotal},
		{"Material cost", s.MaterialCostTotal},
		{"Expense payments", s.TotalExpensePayments},
		{"Total project cost", s.TotalProjectCost},
		{"Net profit", s.NetProfit},
		{"Expected profit", s.ExpectedProfit},
		{"Profit margin %", s.ProfitMargin},
	}
	w.header(SheetSummary, 1, "Item", "Value")
	for i, kv := range rows {
		w.set(SheetSummary, 1, i+2, kv[0])
		w.set(SheetSummary, 2, i+2, kv[1])
	}

	row := len(rows) + 3
	w.header(SheetSummary, row, "Worker", "Entries", "Hours", "Amount")
	for _, wt := range r.Workers {
		row++
		w.set(SheetSummary, 1, row, wt.WorkerName)
		w.set(SheetSummary, 2, row, wt.EntryCount)
		w.set(SheetSummary, 3, row, wt.TotalHours)
		w.set(SheetSummary, 4, row, wt.TotalAmount)
	}

	row += 2
	w.header(SheetSummary, row, "Supplier", "Purchases", "Amount")
	for _, st := range r.Suppliers {
		row++
		w.set(SheetSummary, 1, row, st.SupplierName)
		w.set(SheetSummary, 2, row, st.PurchaseCount)
		w.set(SheetSummary, 3, row, st.TotalAmount)
	}
}

func (w *sheetWriter) labor(r finance.JobReport) {
	w.header(SheetLabor, 1, "Date", "Worker", "Role", "Hours", "Hourly rate", "Total", "Description")
	for i, e := range r.Labor {
		row := i + 2
		name, role := e.WorkerID, ""
		if e.Worker != nil {
			name, role = e.Worker.FullName(), string(e.Worker.RoleType)
		}
		w.set(SheetLabor, 1, row, e.WorkDate.Format(dateLayout))
		w.set(SheetLabor, 2, row, name)
		w.set(SheetLabor, 3, row, role)
		w.set(SheetLabor, 4, row, e.Hours)
		w.set(SheetLabor, 5, row, e.HourlyRate)
		w.set(SheetLabor, 6, row, e.TotalAmount)
		w.set(SheetLabor, 7, row, e.Description)
	}
}

func (w *sheetWriter) materials(r finance.JobReport) {
	w.header(SheetMaterials, 1, "Date", "Supplier", "Material", "Quantity", "Unit", "Unit price", "VAT %", "Total", "Invoice")
	for i, p := range r.Purchases {
		row := i + 2
		supplier := p.SupplierID
		if p.Supplier != nil {
			supplier = p.Supplier.Name
		}
		vat := decimal.Zero
		if p.VatRate != nil {
			vat = *p.VatRate
		}
		w.set(SheetMaterials, 1, row, p.PurchaseDate.Format(dateLayout))
		w.set(SheetMaterials, 2, row, supplier)
		w.set(SheetMaterials, 3, row, p.DisplayName())
		w.set(SheetMaterials, 4, row, p.Quantity)
		w.set(SheetMaterials, 5, row, p.Unit)
		w.set(SheetMaterials, 6, row, p.UnitPrice)
		w.set(SheetMaterials, 7, row, vat)
		w.set(SheetMaterials, 8, row, p.TotalAmount)
		w.set(SheetMaterials, 9, row, p.InvoiceNo)
	}
}

func (w *sheetWriter) payments(r finance.JobReport) {
	w.header(SheetPayments, 1, "Date", "Type", "Party", "Method", "Amount", "Currency", "Description")
	for i, p := range r.Payments {
		row := i + 2
		w.set(SheetPayments, 1, row, p.PaymentDate.Format(dateLayout))
		w.set(SheetPayments, 2, row, string(p.Type))
		w.set(SheetPayments, 3, row, string(p.Party))
		w.set(SheetPayments, 4, row, string(p.Method))
		w.set(SheetPayments, 5, row, p.Amount)
		w.set(SheetPayments, 6, row, string(p.Currency))
		w.set(SheetPayments, 7, row, p.Description)
	}
}
