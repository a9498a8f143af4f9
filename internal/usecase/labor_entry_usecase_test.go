package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"
	mock_interfaces "metalshop/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var workDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

// failingRecompute lets every call through except the running total rewrite.
type failingRecompute struct {
	interfaces.IJobRepository
}

func (failingRecompute) RecomputeCostTotal(context.Context, string, entities.CostCategory) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("recompute failed")
}

func runInline(tx *mock_interfaces.MockITransactor) {
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) },
	)
}

func TestLaborEntryUseCase_CreateValidation(t *testing.T) {
	uc := NewLaborEntryUseCase(Repositories{}, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   LaborEntryInput
		want error
	}{
		{name: "missing job", in: LaborEntryInput{WorkerID: "w", WorkDate: workDay, Hours: dec("1")}, want: ErrInvalidJobID},
		{name: "missing worker", in: LaborEntryInput{JobID: "j", WorkDate: workDay, Hours: dec("1")}, want: ErrInvalidLaborEntry},
		{name: "missing date", in: LaborEntryInput{JobID: "j", WorkerID: "w", Hours: dec("1")}, want: ErrInvalidLaborEntry},
		{name: "hours below minimum", in: LaborEntryInput{JobID: "j", WorkerID: "w", WorkDate: workDay, Hours: dec("0.25")}, want: ErrInvalidLaborEntry},
		{name: "negative rate", in: LaborEntryInput{JobID: "j", WorkerID: "w", WorkDate: workDay, Hours: dec("1"), HourlyRate: decPtr("-5")}, want: ErrInvalidLaborEntry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("validation errors match ErrValidation", func(t *testing.T) {
		_, err := uc.Create(ctx, LaborEntryInput{JobID: "j"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestLaborEntryUseCase_CreateWithMocks(t *testing.T) {
	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockITransactor(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewLaborEntryUseCase(Repositories{Tx: tx, Jobs: jobs}, nil)

		runInline(tx)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.Create(context.Background(), LaborEntryInput{JobID: "job-1", WorkerID: "w-1", WorkDate: workDay, Hours: dec("2")})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("inactive worker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockITransactor(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		workers := mock_interfaces.NewMockIWorkerRepository(ctrl)
		uc := NewLaborEntryUseCase(Repositories{Tx: tx, Jobs: jobs, Workers: workers}, nil)

		runInline(tx)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		workers.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Worker{ID: "w-1", IsActive: false}, nil)

		_, err := uc.Create(context.Background(), LaborEntryInput{JobID: "job-1", WorkerID: "w-1", WorkDate: workDay, Hours: dec("2")})
		if !errors.Is(err, ErrWorkerInactive) {
			t.Fatalf("expected ErrWorkerInactive, got %v", err)
		}
	})

	t.Run("uses worker default rate and recomputes labor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockITransactor(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		workers := mock_interfaces.NewMockIWorkerRepository(ctrl)
		labor := mock_interfaces.NewMockILaborEntryRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewLaborEntryUseCase(Repositories{Tx: tx, Jobs: jobs, Workers: workers, LaborEntries: labor, AuditLogs: audit}, metrics)

		runInline(tx)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		workers.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Worker{ID: "w-1", FirstName: "Ali", HourlyRateDefault: dec("250"), IsActive: true}, nil)
		labor.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LaborEntry{})).DoAndReturn(
			func(_ context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
				if !e.HourlyRate.Equal(dec("250")) || !e.TotalAmount.Equal(dec("625")) {
					t.Fatalf("unexpected entry amounts: %+v", e)
				}
				return e, nil
			},
		)
		metrics.EXPECT().TrackCostRecompute(string(entities.CostCategoryLabor)).Return(func() {})
		jobs.EXPECT().RecomputeCostTotal(gomock.Any(), "job-1", entities.CostCategoryLabor).Return(dec("625"), nil)
		audit.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.AuditLog{})).DoAndReturn(
			func(_ context.Context, a entities.AuditLog) error {
				if a.Action != entities.AuditActionCreate || a.Entity != entities.EntityLaborEntry || a.JobID == nil || *a.JobID != "job-1" {
					t.Fatalf("unexpected audit entry: %+v", a)
				}
				return nil
			},
		)
		metrics.EXPECT().RecordOperation(string(entities.EntityLaborEntry), "create")

		e, err := uc.Create(context.Background(), LaborEntryInput{JobID: " job-1 ", WorkerID: "w-1", WorkDate: workDay, Hours: dec("2.5")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestLaborEntryUseCase_RunningTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("create update delete keep the job total in sync", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		ali := seedWorker(t, repos, "Ali", "200")
		veli := seedWorker(t, repos, "Veli", "150")
		uc := NewLaborEntryUseCase(repos, nil)

		first, err := uc.Create(ctx, LaborEntryInput{JobID: job.ID, WorkerID: ali.ID, WorkDate: workDay, Hours: dec("8")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Create(ctx, LaborEntryInput{JobID: job.ID, WorkerID: veli.ID, WorkDate: workDay, Hours: dec("4"), HourlyRate: decPtr("175.50")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := reloadJob(t, repos, job.ID).LaborCostTotal; !got.Equal(dec("2302")) {
			t.Fatalf("expected 2302 after creates, got %s", got)
		}

		hours := dec("10")
		updated, err := uc.Update(ctx, first.ID, LaborEntryPatch{Hours: &hours})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.TotalAmount.Equal(dec("2000")) {
			t.Fatalf("expected row total 2000, got %s", updated.TotalAmount)
		}
		if got := reloadJob(t, repos, job.ID).LaborCostTotal; !got.Equal(dec("2702")) {
			t.Fatalf("expected 2702 after update, got %s", got)
		}

		if err := uc.Delete(ctx, second.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := reloadJob(t, repos, job.ID).LaborCostTotal; !got.Equal(dec("2000")) {
			t.Fatalf("expected 2000 after delete, got %s", got)
		}

		list, err := uc.ListByJob(ctx, job.ID, LaborEntryQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Summary.Count != 1 || !list.Summary.TotalAmount.Equal(dec("2000")) {
			t.Fatalf("unexpected summary: %+v", list.Summary)
		}
	})

	t.Run("failed recompute leaves no row behind", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		ali := seedWorker(t, repos, "Ali", "200")

		broken := repos
		broken.Jobs = failingRecompute{IJobRepository: repos.Jobs}
		uc := NewLaborEntryUseCase(broken, nil)

		if _, err := uc.Create(ctx, LaborEntryInput{JobID: job.ID, WorkerID: ali.ID, WorkDate: workDay, Hours: dec("3")}); err == nil {
			t.Fatalf("expected recompute error")
		}

		entries, err := repos.LaborEntries.ListByJob(ctx, job.ID, entities.LaborEntryFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("expected rollback, got %d entries", len(entries))
		}
		if got := reloadJob(t, repos, job.ID).LaborCostTotal; !got.IsZero() {
			t.Fatalf("expected untouched total, got %s", got)
		}
		audit, err := repos.AuditLogs.ListByJob(ctx, job.ID, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, a := range audit {
			if a.Entity == entities.EntityLaborEntry {
				t.Fatalf("expected no labor audit entry, got %+v", a)
			}
		}
	})

	t.Run("unknown entry", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		uc := NewLaborEntryUseCase(repos, nil)
		if err := uc.Delete(ctx, "missing"); !errors.Is(err, ErrLaborEntryNotFound) {
			t.Fatalf("expected ErrLaborEntryNotFound, got %v", err)
		}
		if _, err := uc.Get(ctx, "missing"); !errors.Is(err, ErrLaborEntryNotFound) {
			t.Fatalf("expected ErrLaborEntryNotFound, got %v", err)
		}
	})

	t.Run("role filter", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		uc := NewLaborEntryUseCase(repos, nil)
		if _, err := uc.ListByJob(ctx, job.ID, LaborEntryQuery{RoleType: "Boss"}); !errors.Is(err, ErrInvalidLaborEntry) {
			t.Fatalf("expected ErrInvalidLaborEntry, got %v", err)
		}
	})
}

func TestLaborEntryUseCase_UpdateRejectsArchivedWorker(t *testing.T) {
	ctx := context.Background()
	repos := newSQLiteRepos(t)
	job := seedJob(t, repos)
	ali := seedWorker(t, repos, "Ali", "200")
	veli := seedWorker(t, repos, "Veli", "150")
	uc := NewLaborEntryUseCase(repos, nil)

	entry, err := uc.Create(ctx, LaborEntryInput{JobID: job.ID, WorkerID: ali.ID, WorkDate: workDay, Hours: dec("8")})
	if err != nil {
		t.Fatalf("seed labor: %v", err)
	}
	if _, err := NewWorkerUseCase(repos, nil).Archive(ctx, veli.ID); err != nil {
		t.Fatalf("archive worker: %v", err)
	}

	_, err = uc.Update(ctx, entry.ID, LaborEntryPatch{WorkerID: strPtr(veli.ID)})
	if !errors.Is(err, ErrWorkerInactive) {
		t.Fatalf("expected ErrWorkerInactive, got %v", err)
	}
	if got := reloadJob(t, repos, job.ID).LaborCostTotal; !got.Equal(dec("1600")) {
		t.Fatalf("expected labor total 1600, got %s", got)
	}
}
