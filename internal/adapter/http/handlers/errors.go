package handlers

import (
	"errors"
	"net/http"

	"metalshop/internal/domain/entities"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameter", http.StatusBadRequest)
)

type notFoundError struct {
	err  error
	code string
}

var notFoundErrors = []notFoundError{
	{usecase.ErrJobNotFound, "JOB_NOT_FOUND"},
	{usecase.ErrLaborEntryNotFound, "LABOR_ENTRY_NOT_FOUND"},
	{usecase.ErrMaterialPurchaseNotFound, "MATERIAL_PURCHASE_NOT_FOUND"},
	{usecase.ErrPaymentNotFound, "PAYMENT_NOT_FOUND"},
	{usecase.ErrOfferNotFound, "OFFER_NOT_FOUND"},
	{usecase.ErrContractNotFound, "CONTRACT_NOT_FOUND"},
	{usecase.ErrPaymentPlanNotFound, "PAYMENT_PLAN_NOT_FOUND"},
	{usecase.ErrFileNotFound, "FILE_NOT_FOUND"},
	{usecase.ErrWorkerNotFound, "WORKER_NOT_FOUND"},
	{usecase.ErrSupplierNotFound, "SUPPLIER_NOT_FOUND"},
	{usecase.ErrMaterialNotFound, "MATERIAL_NOT_FOUND"},
}

// mapUseCaseError turns a use case error into the envelope error. Validation
// failures keep their reason as the message.
func mapUseCaseError(err error) *pkg.AppError {
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf.err) {
			return pkg.NewDomainError(nf.code, capitalize(nf.err.Error()), err, http.StatusNotFound)
		}
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Reason, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainError("INVALID_JOB_ID", "Invalid job id", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Status change not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkerInactive):
		return pkg.NewDomainError("WORKER_ARCHIVED", "Worker is archived", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSupplierInactive):
		return pkg.NewDomainError("SUPPLIER_ARCHIVED", "Supplier is archived", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrMaterialInactive):
		return pkg.NewDomainError("MATERIAL_ARCHIVED", "Material is archived", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkerHasEntries):
		return pkg.NewDomainError("WORKER_IN_USE", "Worker has labor entries or payments, archive it instead", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentPlanAlreadyPaid):
		return pkg.NewDomainError("PAYMENT_PLAN_ALREADY_PAID", "Payment plan already paid", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCollect):
		return pkg.NewDomainError("NOTHING_TO_COLLECT", "Nothing left to collect for this job", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainError("PAYMENT_REJECTED", "Payment rejected by the provider", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Online payments are not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrReportRenderer):
		return pkg.NewDomainError("REPORT_UNAVAILABLE", "Report export is not available", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRegistrationClosed):
		return pkg.NewDomainError("REGISTRATION_CLOSED", "Registration is disabled", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainError("USERNAME_TAKEN", "Username already taken", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError logs the failure and writes the mapped envelope.
func respondError(c *gin.Context, op string, err error) {
	appErr := mapUseCaseError(err)
	log := logger.FromGin(c)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(op+" failed", zap.Error(err))
	} else {
		log.Info(op+" rejected", zap.String("code", appErr.Code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondBadRequest(c *gin.Context, appErr *pkg.AppError, err error) {
	if err != nil {
		appErr = appErr.WithMessage(appErr.Message + ": " + err.Error())
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
