package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase"
)

func TestMapUseCaseError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"job not found", usecase.ErrJobNotFound, http.StatusNotFound, "JOB_NOT_FOUND"},
		{"wrapped worker not found", fmt.Errorf("load: %w", usecase.ErrWorkerNotFound), http.StatusNotFound, "WORKER_NOT_FOUND"},
		{"invalid job id", usecase.ErrInvalidJobID, http.StatusBadRequest, "INVALID_JOB_ID"},
		{"transition", fmt.Errorf("%w: New -> Completed", entities.ErrInvalidStatusTransition), http.StatusConflict, "INVALID_STATUS_TRANSITION"},
		{"archived worker", usecase.ErrWorkerInactive, http.StatusConflict, "WORKER_ARCHIVED"},
		{"worker in use", usecase.ErrWorkerHasEntries, http.StatusConflict, "WORKER_IN_USE"},
		{"plan paid", usecase.ErrPaymentPlanAlreadyPaid, http.StatusConflict, "PAYMENT_PLAN_ALREADY_PAID"},
		{"nothing to collect", usecase.ErrNothingToCollect, http.StatusConflict, "NOTHING_TO_COLLECT"},
		{"rejected charge", usecase.ErrPaymentGatewayRejected, http.StatusPaymentRequired, "PAYMENT_REJECTED"},
		{"gateway off", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE"},
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"registration closed", usecase.ErrRegistrationClosed, http.StatusForbidden, "REGISTRATION_CLOSED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapUseCaseError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestMapUseCaseError_ValidationReason(t *testing.T) {
	err := &usecase.ValidationError{Sentinel: usecase.ErrInvalidLaborEntry, Reason: "hours must be at least 0.5"}
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus != http.StatusBadRequest || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected 400 VALIDATION_ERROR, got %d %s", appErr.HTTPStatus, appErr.Code)
	}
	if appErr.Message != "hours must be at least 0.5" {
		t.Fatalf("expected reason as message, got %q", appErr.Message)
	}
	if !errors.Is(appErr, usecase.ErrInvalidLaborEntry) {
		t.Fatalf("expected wrapped sentinel")
	}
}
