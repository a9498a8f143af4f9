package entities

import (
	"errors"
	"testing"
	"time"
)

func TestJobStatus(t *testing.T) {
	t.Run("parse is case insensitive", func(t *testing.T) {
		st, ok := ParseJobStatus(" inprogress ")
		if !ok || st != JobStatusInProgress {
			t.Fatalf("expected InProgress, got %q %v", st, ok)
		}
		if _, ok := ParseJobStatus("Archived"); ok {
			t.Fatalf("expected unknown status to fail")
		}
	})

	t.Run("progress per status", func(t *testing.T) {
		cases := map[JobStatus]int{
			JobStatusNew:        10,
			JobStatusContracted: 50,
			JobStatusInProgress: 70,
			JobStatusCompleted:  100,
			JobStatusCancelled:  0,
		}
		for st, want := range cases {
			if got := st.Progress(); got != want {
				t.Fatalf("%s: expected %d, got %d", st, want, got)
			}
		}
	})

	t.Run("statuses returns a copy", func(t *testing.T) {
		all := JobStatuses()
		all[0] = "Changed"
		if JobStatuses()[0] != JobStatusNew {
			t.Fatalf("expected internal list untouched")
		}
	})
}

func TestValidateTransition(t *testing.T) {
	allowed := [][2]JobStatus{
		{JobStatusNew, JobStatusOfferInProgress},
		{JobStatusOfferSent, JobStatusApproved},
		{JobStatusApproved, JobStatusInProgress},
		{JobStatusInProgress, JobStatusCompleted},
		{JobStatusInProgress, JobStatusCancelled},
		{JobStatusCancelled, JobStatusNew},
		{JobStatusCompleted, JobStatusCompleted},
	}
	for _, tr := range allowed {
		if err := ValidateTransition(tr[0], tr[1]); err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tr[0], tr[1], err)
		}
	}

	rejected := [][2]JobStatus{
		{JobStatusNew, JobStatusCompleted},
		{JobStatusCompleted, JobStatusCancelled},
		{JobStatusCompleted, JobStatusInProgress},
		{JobStatusNew, "Bogus"},
	}
	for _, tr := range rejected {
		if err := ValidateTransition(tr[0], tr[1]); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("%s -> %s: expected ErrInvalidStatusTransition, got %v", tr[0], tr[1], err)
		}
	}
}

func TestDeletionPolicy(t *testing.T) {
	for _, et := range []EntityType{EntityWorker, EntitySupplier, EntityMaterial} {
		if et.DeletionPolicy() != DeletionArchive {
			t.Fatalf("%s: expected archive policy", et)
		}
	}
	for _, et := range []EntityType{EntityJob, EntityLaborEntry, EntityMaterialPurchase, EntityPayment, EntityOffer} {
		if et.DeletionPolicy() != DeletionErase {
			t.Fatalf("%s: expected erase policy", et)
		}
	}
}

func TestPaymentPlan(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	week := 7 * 24 * time.Hour

	past := PaymentPlan{DueDate: now.AddDate(0, 0, -1), Status: PaymentPlanStatusPending}
	soon := PaymentPlan{DueDate: now.AddDate(0, 0, 3), Status: PaymentPlanStatusPending}
	later := PaymentPlan{DueDate: now.AddDate(0, 0, 30), Status: PaymentPlanStatusPending}
	paid := PaymentPlan{DueDate: now.AddDate(0, 0, -1), Status: PaymentPlanStatusPaid}

	if !past.IsOverdue(now) || past.IsUpcoming(now, week) {
		t.Fatalf("expected past plan overdue only")
	}
	if soon.IsOverdue(now) || !soon.IsUpcoming(now, week) {
		t.Fatalf("expected soon plan upcoming only")
	}
	if later.IsOverdue(now) || later.IsUpcoming(now, week) {
		t.Fatalf("expected later plan neither")
	}
	if paid.IsOverdue(now) || paid.IsUpcoming(now, week) {
		t.Fatalf("expected paid plan neither")
	}
}

func TestMaterialPurchase_DisplayName(t *testing.T) {
	id := "mat-1"
	p := MaterialPurchase{MaterialID: &id, MaterialName: "free text", Material: &Material{Name: "Sheet 2mm"}}
	if !p.IsCatalogLinked() || p.DisplayName() != "Sheet 2mm" {
		t.Fatalf("expected catalog name, got %q", p.DisplayName())
	}

	free := MaterialPurchase{MaterialName: "Bolts"}
	if free.IsCatalogLinked() || free.DisplayName() != "Bolts" {
		t.Fatalf("expected free text name, got %q", free.DisplayName())
	}
}
