package usecase

import (
	"context"
	"errors"
	"testing"

	"metalshop/internal/domain/entities"
)

func TestOfferUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("totals are computed from items", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		uc := NewOfferUseCase(repos, nil)

		o, err := uc.Create(ctx, OfferInput{
			JobID: job.ID,
			Title: "Railing",
			Items: []OfferItemInput{
				{ProductName: "Railing", Quantity: dec("2"), Unit: "m", UnitPrice: dec("1000"), VatRate: dec("20")},
				{ProductName: "Install", Quantity: dec("1"), Unit: "adet", UnitPrice: dec("500")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OfferStatusDraft {
			t.Fatalf("expected Draft, got %s", o.Status)
		}
		if !o.Subtotal.Equal(dec("2500")) || !o.VatTotal.Equal(dec("400")) || !o.GrandTotal.Equal(dec("2900")) {
			t.Fatalf("unexpected totals: %s %s %s", o.Subtotal, o.VatTotal, o.GrandTotal)
		}
	})

	t.Run("update replaces the item list", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		uc := NewOfferUseCase(repos, nil)

		o, err := uc.Create(ctx, OfferInput{JobID: job.ID, Items: []OfferItemInput{
			{ProductName: "A", Quantity: dec("1"), Unit: "adet", UnitPrice: dec("10")},
			{ProductName: "B", Quantity: dec("1"), Unit: "adet", UnitPrice: dec("20")},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := uc.Update(ctx, o.ID, OfferInput{JobID: job.ID, Items: []OfferItemInput{
			{ProductName: "C", Quantity: dec("3"), Unit: "adet", UnitPrice: dec("100")},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.GrandTotal.Equal(dec("300")) {
			t.Fatalf("expected 300, got %s", updated.GrandTotal)
		}

		got, err := uc.Get(ctx, o.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].ProductName != "C" {
			t.Fatalf("expected single item C, got %+v", got.Items)
		}
	})

	t.Run("accepted offer becomes the receivable base", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		uc := NewOfferUseCase(repos, nil)

		o, err := uc.Create(ctx, OfferInput{JobID: job.ID, Items: []OfferItemInput{
			{ProductName: "Gate", Quantity: dec("1"), Unit: "adet", UnitPrice: dec("8000"), VatRate: dec("20")},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.UpdateStatus(ctx, o.ID, "accepted"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs := NewJobUseCase(repos, nil, nil, false)
		detail, err := jobs.Summary(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !detail.Financials.ReceivableBase.Equal(dec("9600")) {
			t.Fatalf("expected base 9600, got %s", detail.Financials.ReceivableBase)
		}

		signContract(t, repos, job.ID, "9000")
		detail, err = jobs.Summary(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !detail.Financials.ReceivableBase.Equal(dec("9000")) {
			t.Fatalf("expected signed contract to win, got %s", detail.Financials.ReceivableBase)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewOfferUseCase(Repositories{}, nil)
		if _, err := uc.Create(ctx, OfferInput{JobID: "j", Currency: "GBP"}); !errors.Is(err, ErrInvalidOffer) {
			t.Fatalf("expected ErrInvalidOffer, got %v", err)
		}
		if _, err := uc.Create(ctx, OfferInput{JobID: "j", Items: []OfferItemInput{{ProductName: "A", Quantity: dec("0"), UnitPrice: dec("1")}}}); !errors.Is(err, ErrInvalidOffer) {
			t.Fatalf("expected ErrInvalidOffer, got %v", err)
		}
		if _, err := uc.UpdateStatus(ctx, "o", "Lost"); !errors.Is(err, ErrInvalidOffer) {
			t.Fatalf("expected ErrInvalidOffer, got %v", err)
		}
	})
}

func TestContractUseCase_SignedAt(t *testing.T) {
	ctx := context.Background()
	repos := newSQLiteRepos(t)
	job := seedJob(t, repos)
	uc := NewContractUseCase(repos, nil)

	c, err := uc.Create(ctx, ContractInput{JobID: job.ID, TotalAmount: dec("5000")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != entities.ContractStatusDraft || c.SignedAt != nil {
		t.Fatalf("expected unsigned draft, got %+v", c)
	}

	signed, err := uc.UpdateStatus(ctx, c.ID, "Signed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signed.SignedAt == nil {
		t.Fatalf("expected SignedAt to be stamped")
	}

	if err := uc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Get(ctx, c.ID); !errors.Is(err, ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}
