package finance

import (
	"sort"
	"time"

	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// UpcomingWindow is how far ahead an unpaid installment counts as upcoming.
const UpcomingWindow = 7 * 24 * time.Hour

type WorkerTotal struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	EntryCount  int             `json:"entry_count"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type SupplierTotal struct {
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	PurchaseCount int             `json:"purchase_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// WorkerDebt is what a worker earned through labor entries against what was
// paid to them as expense payments.
type WorkerDebt struct {
	WorkerID   string          `json:"worker_id"`
	WorkerName string          `json:"worker_name"`
	Earned     decimal.Decimal `json:"earned"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
}

type LaborSummary struct {
	Count       int             `json:"count"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type PurchaseSummary struct {
	Count          int             `json:"count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	SupplierTotals []SupplierTotal `json:"supplier_totals"`
}

// WorkerBreakdown groups labor entries by worker, ordered by worker name.
func WorkerBreakdown(entries []entities.LaborEntry) []WorkerTotal {
	byID := map[string]*WorkerTotal{}
	for _, e := range entries {
		wt, ok := byID[e.WorkerID]
		if !ok {
			wt = &WorkerTotal{WorkerID: e.WorkerID, TotalHours: decimal.Zero, TotalAmount: decimal.Zero}
			if e.Worker != nil {
				wt.WorkerName = e.Worker.FullName()
			}
			byID[e.WorkerID] = wt
		}
		wt.EntryCount++
		wt.TotalHours = wt.TotalHours.Add(e.Hours)
		wt.TotalAmount = wt.TotalAmount.Add(e.TotalAmount)
	}

	out := make([]WorkerTotal, 0, len(byID))
	for _, wt := range byID {
		out = append(out, *wt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkerName != out[j].WorkerName {
			return out[i].WorkerName < out[j].WorkerName
		}
		return out[i].WorkerID < out[j].WorkerID
	})
	return out
}

// SupplierBreakdown groups material purchases by supplier, ordered by name.
func SupplierBreakdown(purchases []entities.MaterialPurchase) []SupplierTotal {
	byID := map[string]*SupplierTotal{}
	for _, p := range purchases {
		st, ok := byID[p.SupplierID]
		if !ok {
			st = &SupplierTotal{SupplierID: p.SupplierID, TotalAmount: decimal.Zero}
			if p.Supplier != nil {
				st.SupplierName = p.Supplier.Name
			}
			byID[p.SupplierID] = st
		}
		st.PurchaseCount++
		st.TotalAmount = st.TotalAmount.Add(p.TotalAmount)
	}

	out := make([]SupplierTotal, 0, len(byID))
	for _, st := range byID {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SupplierName != out[j].SupplierName {
			return out[i].SupplierName < out[j].SupplierName
		}
		return out[i].SupplierID < out[j].SupplierID
	})
	return out
}

// WorkerDebts matches labor earnings with expense payments linked to the
// same worker. Workers that only appear in payments are included too.
func WorkerDebts(entries []entities.LaborEntry, payments []entities.Payment) []WorkerDebt {
	byID := map[string]*WorkerDebt{}
	get := func(id string, w *entities.Worker) *WorkerDebt {
		d, ok := byID[id]
		if !ok {
			d = &WorkerDebt{WorkerID: id, Earned: decimal.Zero, Paid: decimal.Zero}
			byID[id] = d
		}
		if d.WorkerName == "" && w != nil {
			d.WorkerName = w.FullName()
		}
		return d
	}

	for _, e := range entries {
		d := get(e.WorkerID, e.Worker)
		d.Earned = d.Earned.Add(e.TotalAmount)
	}
	for _, p := range payments {
		if p.Type != entities.PaymentTypeExpense || p.WorkerID == nil || *p.WorkerID == "" {
			continue
		}
		d := get(*p.WorkerID, p.Worker)
		d.Paid = d.Paid.Add(p.Amount)
	}

	out := make([]WorkerDebt, 0, len(byID))
	for _, d := range byID {
		d.Remaining = d.Earned.Sub(d.Paid)
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkerName != out[j].WorkerName {
			return out[i].WorkerName < out[j].WorkerName
		}
		return out[i].WorkerID < out[j].WorkerID
	})
	return out
}

func SummarizeLabor(entries []entities.LaborEntry) LaborSummary {
	s := LaborSummary{Count: len(entries), TotalHours: decimal.Zero, TotalAmount: decimal.Zero}
	for _, e := range entries {
		s.TotalHours = s.TotalHours.Add(e.Hours)
		s.TotalAmount = s.TotalAmount.Add(e.TotalAmount)
	}
	return s
}

func SummarizePurchases(purchases []entities.MaterialPurchase) PurchaseSummary {
	s := PurchaseSummary{Count: len(purchases), TotalAmount: decimal.Zero}
	for _, p := range purchases {
		s.TotalAmount = s.TotalAmount.Add(p.TotalAmount)
	}
	s.SupplierTotals = SupplierBreakdown(purchases)
	return s
}

// ClassifyPlans splits unpaid installments into overdue and upcoming ones.
func ClassifyPlans(plans []entities.PaymentPlan, now time.Time) (overdue, upcoming []entities.PaymentPlan) {
	for _, p := range plans {
		switch {
		case p.IsOverdue(now):
			overdue = append(overdue, p)
		case p.IsUpcoming(now, UpcomingWindow):
			upcoming = append(upcoming, p)
		}
	}
	return overdue, upcoming
}
