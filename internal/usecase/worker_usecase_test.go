package usecase

import (
	"context"
	"errors"
	"testing"

	"metalshop/internal/domain/entities"
	mock_interfaces "metalshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkerUseCase_Create(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		uc := NewWorkerUseCase(Repositories{}, nil)
		_, err := uc.Create(context.Background(), WorkerInput{FirstName: "Ali", RoleType: "Boss"})
		if !errors.Is(err, ErrInvalidWorker) {
			t.Fatalf("expected ErrInvalidWorker, got %v", err)
		}
	})

	t.Run("missing first name", func(t *testing.T) {
		uc := NewWorkerUseCase(Repositories{}, nil)
		_, err := uc.Create(context.Background(), WorkerInput{FirstName: "  ", RoleType: "Master"})
		if !errors.Is(err, ErrInvalidWorker) {
			t.Fatalf("expected ErrInvalidWorker, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockITransactor(ctrl)
		workers := mock_interfaces.NewMockIWorkerRepository(ctrl)
		uc := NewWorkerUseCase(Repositories{Tx: tx, Workers: workers}, nil)

		runInline(tx)
		workers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Worker{})).Return(entities.Worker{}, errors.New("db"))

		_, err := uc.Create(context.Background(), WorkerInput{FirstName: "Ali", RoleType: "laborer"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkerUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("archive hides from active list", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		uc := NewWorkerUseCase(repos, nil)
		ali := seedWorker(t, repos, "Ali", "200")
		seedWorker(t, repos, "Veli", "150")

		archived, err := uc.Archive(ctx, ali.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if archived.IsActive {
			t.Fatalf("expected archived worker")
		}
		active, err := uc.ListActive(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(active) != 1 || active[0].FirstName != "Veli" {
			t.Fatalf("expected only Veli, got %+v", active)
		}

		if _, err := uc.Activate(ctx, ali.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		active, _ = uc.ListActive(ctx)
		if len(active) != 2 {
			t.Fatalf("expected 2 active workers, got %d", len(active))
		}
	})

	t.Run("hard delete refuses used workers", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		uc := NewWorkerUseCase(repos, nil)
		job := seedJob(t, repos)
		used := seedWorker(t, repos, "Ali", "200")
		unused := seedWorker(t, repos, "Veli", "150")

		if _, err := NewLaborEntryUseCase(repos, nil).Create(ctx, LaborEntryInput{JobID: job.ID, WorkerID: used.ID, WorkDate: workDay, Hours: dec("1")}); err != nil {
			t.Fatalf("seed labor: %v", err)
		}

		if err := uc.HardDelete(ctx, used.ID); !errors.Is(err, ErrWorkerHasEntries) {
			t.Fatalf("expected ErrWorkerHasEntries, got %v", err)
		}
		if err := uc.HardDelete(ctx, unused.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Get(ctx, unused.ID); !errors.Is(err, ErrWorkerNotFound) {
			t.Fatalf("expected ErrWorkerNotFound, got %v", err)
		}
	})

	t.Run("statement nets settlements against earnings", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		uc := NewWorkerUseCase(repos, nil)
		job := seedJob(t, repos)
		ali := seedWorker(t, repos, "Ali", "200")

		labor := NewLaborEntryUseCase(repos, nil)
		for _, h := range []string{"8", "4"} {
			if _, err := labor.Create(ctx, LaborEntryInput{JobID: job.ID, WorkerID: ali.ID, WorkDate: workDay, Hours: dec(h)}); err != nil {
				t.Fatalf("seed labor: %v", err)
			}
		}
		payments := NewPaymentUseCase(repos, nil, OnlineCollectionOptions{}, nil)
		if _, err := payments.SettleWorker(ctx, WorkerSettlementInput{WorkerID: ali.ID, JobID: job.ID, Amount: dec("1000")}); err != nil {
			t.Fatalf("settle worker: %v", err)
		}

		st, err := uc.Statement(ctx, ali.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !st.Earned.Equal(dec("2400")) || !st.Paid.Equal(dec("1000")) || !st.Balance.Equal(dec("1400")) {
			t.Fatalf("unexpected statement: earned %s paid %s balance %s", st.Earned, st.Paid, st.Balance)
		}
		if len(st.Entries) != 2 || len(st.Payments) != 1 {
			t.Fatalf("expected 2 entries and 1 payment, got %d and %d", len(st.Entries), len(st.Payments))
		}
	})
}

func TestCatalogUseCases(t *testing.T) {
	ctx := context.Background()

	t.Run("supplier email is checked", func(t *testing.T) {
		uc := NewSupplierUseCase(Repositories{}, nil)
		if _, err := uc.Create(ctx, SupplierInput{Name: "Demir AS", Email: "not-an-email"}); !errors.Is(err, ErrInvalidSupplier) {
			t.Fatalf("expected ErrInvalidSupplier, got %v", err)
		}
	})

	t.Run("supplier search", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		uc := NewSupplierUseCase(repos, nil)
		seedSupplier(t, repos, "Demir AS")
		seedSupplier(t, repos, "Boya Ltd")

		list, err := uc.List(ctx, CatalogQuery{Search: "demir"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].Name != "Demir AS" {
			t.Fatalf("expected Demir AS, got %+v", list)
		}
	})

	t.Run("material defaults", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		m, err := NewMaterialUseCase(repos, nil).Create(ctx, MaterialInput{Name: "Bolt M8"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Unit != entities.DefaultMaterialUnit || !m.DefaultVatRate.Equal(dec("20")) {
			t.Fatalf("expected default unit and vat, got %s %s", m.Unit, m.DefaultVatRate)
		}
	})

	t.Run("material repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockITransactor(ctrl)
		materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(Repositories{Tx: tx, Materials: materials}, nil)

		runInline(tx)
		materials.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
			func(_ context.Context, m entities.Material) (entities.Material, error) {
				if m.Name != "Bolt M8" || !m.IsActive {
					t.Fatalf("unexpected material: %+v", m)
				}
				return entities.Material{}, errors.New("db")
			},
		)

		if _, err := uc.Create(ctx, MaterialInput{Name: "Bolt M8"}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("archived material is rejected for purchases", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		supplier := seedSupplier(t, repos, "Demir AS")
		materials := NewMaterialUseCase(repos, nil)
		m, err := materials.Create(ctx, MaterialInput{Name: "Bolt M8", DefaultUnitPrice: dec("2")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := materials.Archive(ctx, m.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = NewMaterialPurchaseUseCase(repos, nil).Create(ctx, MaterialPurchaseInput{
			JobID: job.ID, SupplierID: supplier.ID, MaterialID: strPtr(m.ID), Quantity: dec("5"),
		})
		if !errors.Is(err, ErrMaterialInactive) {
			t.Fatalf("expected ErrMaterialInactive, got %v", err)
		}
	})
}
