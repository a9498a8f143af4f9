package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/domain/finance"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPayment                 = errors.New("invalid payment")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrNothingToCollect               = errors.New("nothing left to collect")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayRejected         = errors.New("payment rejected by gateway")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const sandboxFallbackPayerEmail = "test_user_br@testuser.com"

type PaymentInput struct {
	JobID       string
	Type        string
	Party       string
	Method      string
	Amount      decimal.Decimal
	Currency    string
	PaymentDate time.Time
	Description string
	WorkerID    *string
	SupplierID  *string
}

// WorkerSettlementInput pays a worker part of their labor earnings in cash.
type WorkerSettlementInput struct {
	WorkerID    string
	JobID       string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Description string
}

// OnlineCollectionInput charges the customer through the gateway. A nil
// Amount collects the remaining receivable of the job.
type OnlineCollectionInput struct {
	JobID   string
	Amount  *decimal.Decimal
	Payload json.RawMessage
}

// OnlineCollectionOptions tune how provider payloads are checked and
// completed. Mock mode accepts empty payloads.
type OnlineCollectionOptions struct {
	MockMode        bool
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

type IPaymentUseCase interface {
	Create(ctx context.Context, in PaymentInput) (entities.Payment, error)
	SettleWorker(ctx context.Context, in WorkerSettlementInput) (entities.Payment, error)
	CollectOnline(ctx context.Context, in OnlineCollectionInput) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.Payment, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repos   Repositories
	gateway interfaces.IPaymentGateway
	opts    OnlineCollectionOptions
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repos Repositories, gateway interfaces.IPaymentGateway, opts OnlineCollectionOptions, metrics interfaces.IMetricsRecorder) *PaymentUseCase {
	return &PaymentUseCase{
		repos:   repos,
		gateway: gateway,
		opts:    opts,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) Create(ctx context.Context, in PaymentInput) (entities.Payment, error) {
	log := logger.FromContext(ctx)

	p, err := u.buildPayment(in)
	if err != nil {
		return entities.Payment{}, err
	}

	created, err := u.insert(ctx, p)
	if err != nil {
		log.Info("[payment][usecase] create failed", zap.String("job_id", p.JobID), zap.Error(err))
		return entities.Payment{}, err
	}
	log.Info("[payment][usecase] create success",
		zap.String("job_id", created.JobID), zap.String("payment_id", created.ID), zap.String("type", string(created.Type)))
	return created, nil
}

// SettleWorker records a cash expense paid to a worker against the job it
// was earned on.
func (u *PaymentUseCase) SettleWorker(ctx context.Context, in WorkerSettlementInput) (entities.Payment, error) {
	workerID := strings.TrimSpace(in.WorkerID)
	if workerID == "" {
		return entities.Payment{}, invalid(ErrInvalidPayment, "worker is required")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = "Worker settlement"
	}
	return u.Create(ctx, PaymentInput{
		JobID:       in.JobID,
		Type:        string(entities.PaymentTypeExpense),
		Party:       string(entities.PaymentPartyWorker),
		Method:      string(entities.PaymentMethodCash),
		Amount:      in.Amount,
		PaymentDate: in.PaymentDate,
		Description: description,
		WorkerID:    &workerID,
	})
}

// CollectOnline charges the customer through the payment gateway and
// records the result as an online collection. The gateway is called before
// the transaction opens; a rejected charge records nothing.
func (u *PaymentUseCase) CollectOnline(ctx context.Context, in OnlineCollectionInput) (entities.Payment, error) {
	log := logger.FromContext(ctx)
	log.Info("[payment][usecase] collect-online start", zap.String("job_id", in.JobID), zap.Int("payload_len", len(in.Payload)))

	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}
	payload := in.Payload
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.opts.MockMode {
			return entities.Payment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}

	job, err := loadJob(ctx, u.repos.Jobs, in.JobID)
	if err != nil {
		return entities.Payment{}, err
	}
	amount, err := u.collectableAmount(ctx, job, in.Amount)
	if err != nil {
		return entities.Payment{}, err
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Info("[payment][usecase] payload is not an object", zap.String("job_id", job.ID))
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id", zap.String("job_id", job.ID))
			return entities.Payment{}, ErrInvalidProviderPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing payer", zap.String("job_id", job.ID))
			return entities.Payment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = job.ReferenceCode
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Job %s", job.ReferenceCode)
	}
	// The amount always comes from the job, never from the client payload.
	reqMap["transaction_amount"] = amount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Warn("[payment][usecase] payment gateway failed", zap.String("job_id", job.ID), zap.Error(err))
		return entities.Payment{}, classifyGatewayError(err)
	}
	if isRejectedProviderStatus(providerStatus) {
		log.Info("[payment][usecase] payment rejected",
			zap.String("job_id", job.ID), zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))
		return entities.Payment{}, ErrPaymentGatewayRejected
	}

	p := entities.Payment{
		ID:                uuid.NewString(),
		JobID:             job.ID,
		Type:              entities.PaymentTypeCollection,
		Party:             entities.PaymentPartyCustomer,
		Method:            entities.PaymentMethodOnline,
		Amount:            amount,
		Currency:          entities.CurrencyTRY,
		PaymentDate:       u.now(),
		Description:       fmt.Sprintf("Online collection %s", providerID),
		ProviderReference: providerID,
		ProviderStatus:    providerStatus,
	}
	if len(providerResp) > 0 && json.Valid(providerResp) {
		p.ProviderPayload = datatypes.JSON(providerResp)
	}

	created, err := u.insert(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] collected online but failed to record",
			zap.String("job_id", job.ID), zap.String("provider_payment_id", providerID), zap.Error(err))
		return entities.Payment{}, err
	}
	log.Info("[payment][usecase] collect-online success",
		zap.String("job_id", job.ID), zap.String("payment_id", created.ID),
		zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))
	return created, nil
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return invalid(ErrInvalidPayment, "id is required")
	}

	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.repos.Payments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return ErrPaymentNotFound
		}
		if err := u.repos.Payments.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityPayment,
			entityID: id,
			jobID:    p.JobID,
			metadata: map[string]any{"type": p.Type, "amount": p.Amount},
		})
	})
	if err != nil {
		log.Info("[payment][usecase] delete failed", zap.String("payment_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityPayment), "delete")
	return nil
}

func (u *PaymentUseCase) Get(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, invalid(ErrInvalidPayment, "id is required")
	}
	p, err := u.repos.Payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Payment, error) {
	job, err := loadJob(ctx, u.repos.Jobs, jobID)
	if err != nil {
		return nil, err
	}
	return u.repos.Payments.ListByJob(ctx, job.ID)
}

func (u *PaymentUseCase) buildPayment(in PaymentInput) (entities.Payment, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	if in.JobID == "" {
		return entities.Payment{}, ErrInvalidJobID
	}

	typ := entities.PaymentType(strings.TrimSpace(in.Type))
	if !typ.Valid() {
		return entities.Payment{}, invalid(ErrInvalidPayment, "type must be Collection or Expense")
	}
	party := entities.PaymentParty(strings.TrimSpace(in.Party))
	if !party.Valid() {
		return entities.Payment{}, invalid(ErrInvalidPayment, "unknown party %q", in.Party)
	}
	method := entities.PaymentMethod(strings.TrimSpace(in.Method))
	if !method.Valid() {
		return entities.Payment{}, invalid(ErrInvalidPayment, "unknown payment method %q", in.Method)
	}
	currency, err := parseCurrency(in.Currency, ErrInvalidPayment)
	if err != nil {
		return entities.Payment{}, err
	}
	amount := in.Amount.Round(2)
	if !amount.IsPositive() {
		return entities.Payment{}, invalid(ErrInvalidPayment, "amount must be at least 0.01")
	}

	p := entities.Payment{
		ID:          uuid.NewString(),
		JobID:       in.JobID,
		Type:        typ,
		Party:       party,
		Method:      method,
		Amount:      amount,
		Currency:    currency,
		PaymentDate: in.PaymentDate,
		Description: strings.TrimSpace(in.Description),
		WorkerID:    trimmedPtr(in.WorkerID),
		SupplierID:  trimmedPtr(in.SupplierID),
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = u.now()
	}
	return p, nil
}

// insert checks the links of p and stores it with its audit entry.
func (u *PaymentUseCase) insert(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	var created entities.Payment
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadJob(ctx, u.repos.Jobs, p.JobID); err != nil {
			return err
		}
		if p.WorkerID != nil {
			if _, err := loadWorker(ctx, u.repos.Workers, *p.WorkerID); err != nil {
				return err
			}
		}
		if p.SupplierID != nil {
			if _, err := loadSupplier(ctx, u.repos.Suppliers, *p.SupplierID); err != nil {
				return err
			}
		}

		now := u.now()
		p.CreatedAt, p.UpdatedAt = now, now
		var err error
		created, err = u.repos.Payments.Create(ctx, p)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityPayment,
			entityID: created.ID,
			jobID:    created.JobID,
			details:  fmt.Sprintf("%s %s %s", created.Type, created.Amount, created.Currency),
			metadata: map[string]any{"party": created.Party, "method": created.Method},
		})
	})
	if err != nil {
		return entities.Payment{}, err
	}
	u.metrics.RecordOperation(string(entities.EntityPayment), "create")
	return created, nil
}

// collectableAmount is the requested amount, or the job's remaining
// receivable when none was requested.
func (u *PaymentUseCase) collectableAmount(ctx context.Context, job entities.Job, requested *decimal.Decimal) (decimal.Decimal, error) {
	if requested != nil {
		amount := requested.Round(2)
		if !amount.IsPositive() {
			return decimal.Zero, invalid(ErrInvalidPayment, "amount must be at least 0.01")
		}
		return amount, nil
	}

	offers, err := u.repos.Offers.ListByJob(ctx, job.ID)
	if err != nil {
		return decimal.Zero, err
	}
	contracts, err := u.repos.Contracts.ListByJob(ctx, job.ID)
	if err != nil {
		return decimal.Zero, err
	}
	payments, err := u.repos.Payments.ListByJob(ctx, job.ID)
	if err != nil {
		return decimal.Zero, err
	}
	remaining := finance.Derive(finance.Input{Job: job, Offers: offers, Contracts: contracts, Payments: payments}).RemainingReceivable.Round(2)
	if !remaining.IsPositive() {
		return decimal.Zero, ErrNothingToCollect
	}
	return remaining, nil
}

// ensurePayerDefaults fills payer.type and, on sandbox credentials, a test
// payer email when neither payer id nor email was sent.
func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if u.opts.TestPayerEmail != "" {
		payer["email"] = u.opts.TestPayerEmail
	} else if u.opts.Sandbox {
		payer["email"] = sandboxFallbackPayerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox payer user id for its
// email, which is what the sandbox accepts.
func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.Sandbox || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func isRejectedProviderStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "rejected", "cancelled", "refunded", "charged_back":
		return true
	}
	return false
}

// classifyGatewayError maps provider error bodies onto sentinels the HTTP
// layer understands. Unknown errors pass through unchanged.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
