package routes

import (
	"context"
	"fmt"
	"time"

	"metalshop/internal/adapter/http/handlers"
	"metalshop/internal/adapter/persistence/repository"
	"metalshop/internal/infrastructure/auth"
	"metalshop/internal/infrastructure/config"
	"metalshop/internal/infrastructure/database"
	"metalshop/internal/infrastructure/export"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/infrastructure/metrics"
	"metalshop/internal/infrastructure/payments"
	"metalshop/internal/usecase"
	"metalshop/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type application struct {
	handlers Handlers
	tokens   *auth.TokenManager
	metrics  *metrics.Metrics
}

func build(cfg *config.Config) (*application, error) {
	ctx := context.Background()
	log := logger.GetLogger()

	db, err := database.ConnectGorm(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	auditRepo, err := newAuditRepository(ctx, cfg, db)
	if err != nil {
		return nil, err
	}

	repos := usecase.Repositories{
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
		AuditLogs:         auditRepo,
		Users:             repository.NewUserGormRepository(db),
	}

	tokens, err := auth.NewTokenManager(cfg.JWT.SigningKey, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	m := metrics.New(cfg.Metrics.Prefix, prometheus.NewRegistry())

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Warn("[routes] mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	authUseCase := usecase.NewAuthUseCase(repos.Users, tokens, m, cfg.Business.AllowRegistration)
	if err := authUseCase.SeedAdmin(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	paymentUseCase := usecase.NewPaymentUseCase(repos, gateway, usecase.OnlineCollectionOptions{
		MockMode:        cfg.Payments.MockMode,
		Sandbox:         cfg.Payments.Sandbox(),
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, m)

	h := Handlers{
		Jobs: handlers.NewJobHandler(
			usecase.NewJobUseCase(repos, export.NewExcelReportRenderer(), m, cfg.Business.StrictStatusTransitions),
			usecase.NewAuditUseCase(repos.AuditLogs),
		),
		LaborEntries:      handlers.NewLaborEntryHandler(usecase.NewLaborEntryUseCase(repos, m)),
		MaterialPurchases: handlers.NewMaterialPurchaseHandler(usecase.NewMaterialPurchaseUseCase(repos, m)),
		Payments:          handlers.NewPaymentHandler(paymentUseCase, cfg.Payments.MockMode),
		Offers:            handlers.NewOfferHandler(usecase.NewOfferUseCase(repos, m)),
		Contracts:         handlers.NewContractHandler(usecase.NewContractUseCase(repos, m)),
		PaymentPlans:      handlers.NewPaymentPlanHandler(usecase.NewPaymentPlanUseCase(repos, m)),
		Files:             handlers.NewFileHandler(usecase.NewFileUseCase(repos, m)),
		Workers:           handlers.NewWorkerHandler(usecase.NewWorkerUseCase(repos, m)),
		Suppliers:         handlers.NewSupplierHandler(usecase.NewSupplierUseCase(repos, m)),
		Materials:         handlers.NewMaterialHandler(usecase.NewMaterialUseCase(repos, m)),
		Dashboard:         handlers.NewDashboardHandler(usecase.NewDashboardUseCase(repos)),
		Auth:              handlers.NewAuthHandler(authUseCase),
	}

	return &application{handlers: h, tokens: tokens, metrics: m}, nil
}

// newAuditRepository picks the audit store. The DynamoDB backend keeps the
// audit trail outside the relational database.
func newAuditRepository(ctx context.Context, cfg *config.Config, db *gorm.DB) (interfaces.IAuditLogRepository, error) {
	if cfg.Audit.Backend != config.AuditBackendDynamoDB {
		return repository.NewAuditLogGormRepository(db), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	logger.GetLogger().Info("[routes] audit log on dynamodb", zap.String("table", cfg.Audit.TableName))
	return repository.NewAuditLogDynamoRepository(ddb, cfg.Audit.TableName), nil
}
