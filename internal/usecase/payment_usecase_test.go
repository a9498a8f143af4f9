package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"metalshop/internal/domain/entities"
	mock_interfaces "metalshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func signContract(t *testing.T, repos Repositories, jobID, amount string) {
	t.Helper()
	uc := NewContractUseCase(repos, nil)
	c, err := uc.Create(context.Background(), ContractInput{JobID: jobID, ContractNo: "C-1", TotalAmount: dec(amount)})
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	if _, err := uc.UpdateStatus(context.Background(), c.ID, string(entities.ContractStatusSigned)); err != nil {
		t.Fatalf("sign contract: %v", err)
	}
}

func TestPaymentUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		uc := NewPaymentUseCase(Repositories{}, nil, OnlineCollectionOptions{}, nil)
		cases := []struct {
			name string
			in   PaymentInput
		}{
			{name: "bad type", in: PaymentInput{JobID: "j", Type: "Gift", Party: "Customer", Method: "Cash", Amount: dec("1")}},
			{name: "bad party", in: PaymentInput{JobID: "j", Type: "Collection", Party: "Bank", Method: "Cash", Amount: dec("1")}},
			{name: "bad method", in: PaymentInput{JobID: "j", Type: "Collection", Party: "Customer", Method: "Barter", Amount: dec("1")}},
			{name: "bad currency", in: PaymentInput{JobID: "j", Type: "Collection", Party: "Customer", Method: "Cash", Currency: "GBP", Amount: dec("1")}},
			{name: "zero amount", in: PaymentInput{JobID: "j", Type: "Collection", Party: "Customer", Method: "Cash", Amount: dec("0")}},
			{name: "sub-cent amount", in: PaymentInput{JobID: "j", Type: "Collection", Party: "Customer", Method: "Cash", Amount: dec("0.004")}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Create(ctx, tc.in); !errors.Is(err, ErrInvalidPayment) {
					t.Fatalf("expected ErrInvalidPayment, got %v", err)
				}
			})
		}
	})

	t.Run("collection lowers the remaining receivable", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		signContract(t, repos, job.ID, "10000")
		uc := NewPaymentUseCase(repos, nil, OnlineCollectionOptions{}, nil)

		p, err := uc.Create(ctx, PaymentInput{
			JobID: job.ID, Type: "Collection", Party: "Customer", Method: "BankTransfer", Amount: dec("2500"), PaymentDate: workDay,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Currency != entities.CurrencyTRY {
			t.Fatalf("expected default currency TRY, got %s", p.Currency)
		}

		detail, err := NewJobUseCase(repos, nil, nil, false).Summary(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !detail.Financials.RemainingReceivable.Equal(dec("7500")) {
			t.Fatalf("expected remaining 7500, got %s", detail.Financials.RemainingReceivable)
		}
	})

	t.Run("amount is stored in cents", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		uc := NewPaymentUseCase(repos, nil, OnlineCollectionOptions{}, nil)

		p, err := uc.Create(ctx, PaymentInput{JobID: job.ID, Type: "Expense", Party: "Other", Method: "Cash", Amount: dec("10.005")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, err := repos.Payments.GetByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.Amount.Equal(dec("10.01")) {
			t.Fatalf("expected 10.01, got %s", stored.Amount)
		}
	})

	t.Run("unknown worker link", func(t *testing.T) {
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		uc := NewPaymentUseCase(repos, nil, OnlineCollectionOptions{}, nil)

		_, err := uc.SettleWorker(ctx, WorkerSettlementInput{WorkerID: "ghost", JobID: job.ID, Amount: dec("100")})
		if !errors.Is(err, ErrWorkerNotFound) {
			t.Fatalf("expected ErrWorkerNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_CollectOnline(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(Repositories{}, nil, OnlineCollectionOptions{}, nil)
		if _, err := uc.CollectOnline(ctx, OnlineCollectionInput{JobID: "j"}); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing payment method outside mock mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repos, gw, OnlineCollectionOptions{}, nil)

		_, err := uc.CollectOnline(ctx, OnlineCollectionInput{JobID: job.ID, Amount: decPtr("10"), Payload: json.RawMessage(`{"payer":{"email":"a@b.com"}}`)})
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("sub-cent amount is rejected before charging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repos, gw, OnlineCollectionOptions{MockMode: true}, nil)

		_, err := uc.CollectOnline(ctx, OnlineCollectionInput{JobID: job.ID, Amount: decPtr("0.004")})
		if !errors.Is(err, ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
		list, err := repos.Payments.ListByJob(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected no payments, got %d", len(list))
		}
	})

	t.Run("collects the remaining receivable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		signContract(t, repos, job.ID, "4200")
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repos, gw, OnlineCollectionOptions{MockMode: true}, nil)

		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("expected json payload, got %v", err)
				}
				if m["external_reference"] != job.ReferenceCode {
					t.Fatalf("expected external_reference %s, got %v", job.ReferenceCode, m["external_reference"])
				}
				if m["transaction_amount"] != float64(4200) {
					t.Fatalf("expected transaction_amount 4200, got %v", m["transaction_amount"])
				}
				return "987654", "approved", json.RawMessage(`{"id":987654,"status":"approved"}`), nil
			},
		)

		p, err := uc.CollectOnline(ctx, OnlineCollectionInput{JobID: job.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Method != entities.PaymentMethodOnline || p.Type != entities.PaymentTypeCollection {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.ProviderReference != "987654" || p.ProviderStatus != "approved" {
			t.Fatalf("expected provider fields, got %q %q", p.ProviderReference, p.ProviderStatus)
		}
		if !p.Amount.Equal(dec("4200")) {
			t.Fatalf("expected 4200, got %s", p.Amount)
		}

		if _, err := uc.CollectOnline(ctx, OnlineCollectionInput{JobID: job.ID}); !errors.Is(err, ErrNothingToCollect) {
			t.Fatalf("expected ErrNothingToCollect, got %v", err)
		}
	})

	t.Run("rejected charge records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repos := newSQLiteRepos(t)
		job := seedJob(t, repos)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repos, gw, OnlineCollectionOptions{MockMode: true}, nil)

		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "rejected", json.RawMessage(`{}`), nil)

		if _, err := uc.CollectOnline(ctx, OnlineCollectionInput{JobID: job.ID, Amount: decPtr("100")}); !errors.Is(err, ErrPaymentGatewayRejected) {
			t.Fatalf("expected ErrPaymentGatewayRejected, got %v", err)
		}
		payments, err := uc.ListByJob(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 0 {
			t.Fatalf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			name string
			body string
			want error
		}{
			{name: "unauthorized", body: `{"status":401,"error":"unauthorized"}`, want: ErrPaymentGatewayUnauthorized},
			{name: "bad request", body: `{"status":400,"error":"bad_request"}`, want: ErrPaymentGatewayBadRequest},
			{name: "customer not found", body: `{"message":"Customer not found"}`, want: ErrPaymentGatewayCustomerNotFound},
			{name: "invalid users", body: `{"code":2034}`, want: ErrPaymentGatewayInvalidUsers},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repos := newSQLiteRepos(t)
				job := seedJob(t, repos)
				gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
				uc := NewPaymentUseCase(repos, gw, OnlineCollectionOptions{MockMode: true}, nil)

				gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(tc.body))

				if _, err := uc.CollectOnline(ctx, OnlineCollectionInput{JobID: job.ID, Amount: decPtr("50")}); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestPaymentUseCase_SandboxPayer(t *testing.T) {
	uc := &PaymentUseCase{opts: OnlineCollectionOptions{Sandbox: true, TestPayerUserID: "42", TestPayerEmail: "buyer@test.com"}}

	t.Run("swaps configured test user id for email", func(t *testing.T) {
		m := map[string]any{"payer": map[string]any{"id": "42"}}
		uc.normalizeSandboxPayer(m)
		payer := m["payer"].(map[string]any)
		if payer["email"] != "buyer@test.com" {
			t.Fatalf("expected test email, got %v", payer["email"])
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("fills payer defaults", func(t *testing.T) {
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" || payer["email"] != "buyer@test.com" {
			t.Fatalf("unexpected payer: %v", payer)
		}
	})
}
