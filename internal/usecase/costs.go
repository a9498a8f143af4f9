package usecase

import (
	"context"
	"fmt"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"
)

type noopRecorder struct{}

func (noopRecorder) RecordOperation(string, string) {}
func (noopRecorder) RecordAuthAttempt(bool) {}
func (noopRecorder) TrackCostRecompute(string) func() { return func() {} }

func recorderOrNoop(m interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if m == nil {
		return noopRecorder{}
	}
	return m
}

// recomputeCost rewrites the job's running total for category. It is the
// last step of every labor or material mutation and must run with the
// transaction context of that mutation.
func recomputeCost(ctx context.Context, jobs interfaces.IJobRepository, m interfaces.IMetricsRecorder, jobID string, category entities.CostCategory) error {
	done := m.TrackCostRecompute(string(category))
	defer done()

	if _, err := jobs.RecomputeCostTotal(ctx, jobID, category); err != nil {
		return fmt.Errorf("recompute %s total of job %s: %w", category, jobID, err)
	}
	return nil
}
