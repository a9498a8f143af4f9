package usecase

import (
	"context"
	"testing"

	"metalshop/internal/adapter/persistence/repository"
	"metalshop/internal/domain/entities"
	"metalshop/internal/infrastructure/database/databasetest"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func strPtr(s string) *string { return &s }

// newSQLiteRepos wires every repository against a fresh migrated database.
func newSQLiteRepos(t *testing.T) Repositories {
	t.Helper()
	db := databasetest.NewSQLite(t)
	return Repositories{
		Tx:                repository.NewGormTransactor(db),
		Jobs:              repository.NewJobGormRepository(db),
		LaborEntries:      repository.NewLaborEntryGormRepository(db),
		MaterialPurchases: repository.NewMaterialPurchaseGormRepository(db),
		Payments:          repository.NewPaymentGormRepository(db),
		Offers:            repository.NewOfferGormRepository(db),
		Contracts:         repository.NewContractGormRepository(db),
		PaymentPlans:      repository.NewPaymentPlanGormRepository(db),
		Files:             repository.NewFileGormRepository(db),
		Workers:           repository.NewWorkerGormRepository(db),
		Suppliers:         repository.NewSupplierGormRepository(db),
		Materials:         repository.NewMaterialGormRepository(db),
		AuditLogs:         repository.NewAuditLogGormRepository(db),
		Users:             repository.NewUserGormRepository(db),
	}
}

func seedJob(t *testing.T, repos Repositories) entities.Job {
	t.Helper()
	job, err := NewJobUseCase(repos, nil, nil, false).Create(context.Background(), JobInput{
		Title:        "Balcony railing",
		CustomerName: "Mustafa",
		Phone:        "05321234567",
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func seedWorker(t *testing.T, repos Repositories, name, rate string) entities.Worker {
	t.Helper()
	w, err := NewWorkerUseCase(repos, nil).Create(context.Background(), WorkerInput{
		FirstName:         name,
		RoleType:          string(entities.WorkerRoleMaster),
		HourlyRateDefault: dec(rate),
	})
	if err != nil {
		t.Fatalf("seed worker: %v", err)
	}
	return w
}

func seedSupplier(t *testing.T, repos Repositories, name string) entities.Supplier {
	t.Helper()
	s, err := NewSupplierUseCase(repos, nil).Create(context.Background(), SupplierInput{Name: name})
	if err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	return s
}

func reloadJob(t *testing.T, repos Repositories, id string) entities.Job {
	t.Helper()
	job, err := repos.Jobs.GetByID(context.Background(), id)
	if err != nil || job.ID == "" {
		t.Fatalf("reload job %s: %v", id, err)
	}
	return job
}
