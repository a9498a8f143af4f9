package finance

import (
	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Input is the set of rows the summary of one job is derived from.
type Input struct {
	Job       entities.Job
	Offers    []entities.Offer
	Contracts []entities.Contract
	Payments  []entities.Payment
}

// Summary is the read-side financial view of a job. It is never persisted.
type Summary struct {
	AcceptedOfferTotal   decimal.Decimal `json:"accepted_offer_total"`
	ContractTotal        decimal.Decimal `json:"contract_total"`
	ReceivableBase       decimal.Decimal `json:"receivable_base"`
	TotalCollection      decimal.Decimal `json:"total_collection"`
	TotalExpensePayments decimal.Decimal `json:"total_expense_payments"`
	LaborCostTotal       decimal.Decimal `json:"labor_cost_total"`
	MaterialCostTotal    decimal.Decimal `json:"material_cost_total"`
	TotalProjectCost     decimal.Decimal `json:"total_project_cost"`
	RemainingReceivable  decimal.Decimal `json:"remaining_receivable"`
	NetProfit            decimal.Decimal `json:"net_profit"`
	ExpectedProfit       decimal.Decimal `json:"expected_profit"`
	ProfitMargin         decimal.Decimal `json:"profit_margin"`
}

// Derive computes the summary from the job's running totals and its offers,
// contracts and payments.
//
// The receivable base is the signed contract total when it is non-zero and
// the accepted offer total otherwise. ProfitMargin is a percentage of that
// base and is zero when the base is zero.
func Derive(in Input) Summary {
	s := Summary{
		AcceptedOfferTotal:   decimal.Zero,
		ContractTotal:        decimal.Zero,
		TotalCollection:      decimal.Zero,
		TotalExpensePayments: decimal.Zero,
		LaborCostTotal:       in.Job.LaborCostTotal,
		MaterialCostTotal:    in.Job.MaterialCostTotal,
	}

	for _, o := range in.Offers {
		if o.Status == entities.OfferStatusAccepted {
			s.AcceptedOfferTotal = s.AcceptedOfferTotal.Add(o.GrandTotal)
		}
	}
	for _, c := range in.Contracts {
		if c.Status == entities.ContractStatusSigned {
			s.ContractTotal = s.ContractTotal.Add(c.TotalAmount)
		}
	}
	for _, p := range in.Payments {
		switch p.Type {
		case entities.PaymentTypeCollection:
			s.TotalCollection = s.TotalCollection.Add(p.Amount)
		case entities.PaymentTypeExpense:
			s.TotalExpensePayments = s.TotalExpensePayments.Add(p.Amount)
		}
	}

	s.ReceivableBase = s.AcceptedOfferTotal
	if !s.ContractTotal.IsZero() {
		s.ReceivableBase = s.ContractTotal
	}

	s.TotalProjectCost = s.LaborCostTotal.Add(s.MaterialCostTotal).Add(s.TotalExpensePayments)
	s.RemainingReceivable = s.ReceivableBase.Sub(s.TotalCollection)
	s.NetProfit = s.TotalCollection.Sub(s.TotalProjectCost)
	s.ExpectedProfit = s.ReceivableBase.Sub(s.TotalProjectCost)
	s.ProfitMargin = decimal.Zero
	if !s.ReceivableBase.IsZero() {
		s.ProfitMargin = s.NetProfit.Div(s.ReceivableBase).Mul(hundred).Round(2)
	}
	return s
}
