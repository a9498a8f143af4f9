package usecase

import "metalshop/internal/usecase/interfaces"

// Repositories bundles the ports the use cases are built from. Each use case
// only touches the fields it needs.
type Repositories struct {
	Tx                interfaces.ITransactor
	Jobs              interfaces.IJobRepository
	LaborEntries      interfaces.ILaborEntryRepository
	MaterialPurchases interfaces.IMaterialPurchaseRepository
	Payments          interfaces.IPaymentRepository
	Offers            interfaces.IOfferRepository
	Contracts         interfaces.IContractRepository
	PaymentPlans      interfaces.IPaymentPlanRepository
	Files             interfaces.IFileRepository
	Workers           interfaces.IWorkerRepository
	Suppliers         interfaces.ISupplierRepository
	Materials         interfaces.IMaterialRepository
	AuditLogs         interfaces.IAuditLogRepository
	Users             interfaces.IUserRepository
}
