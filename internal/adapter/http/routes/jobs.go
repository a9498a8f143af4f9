package routes

import "github.com/gin-gonic/gin"

const (
	PathJobs              = "/jobs"
	PathLaborEntries      = "/labor-entries"
	PathMaterialPurchases = "/material-purchases"
	PathPayments          = "/payments"
	PathOffers            = "/offers"
	PathContracts         = "/contracts"
	PathPaymentPlans      = "/payment-plans"
	PathFiles             = "/files"
	PathDashboard         = "/dashboard"
)

func addJobRoutes(rg *gin.RouterGroup, h Handlers) {
	if h.Jobs == nil {
		return
	}
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.Jobs.CreateJob)
		jobs.GET("", h.Jobs.ListJobs)
		jobs.GET("/:id", h.Jobs.GetJob)
		jobs.PUT("/:id", h.Jobs.UpdateJob)
		jobs.DELETE("/:id", h.Jobs.DeleteJob)
		jobs.PATCH("/:id/status", h.Jobs.UpdateJobStatus)
		jobs.GET("/:id/summary", h.Jobs.GetJobSummary)
		jobs.GET("/:id/report", h.Jobs.ExportJobReport)
		jobs.GET("/:id/audit", h.Jobs.ListJobAudit)
	}
}

// addJobChildrenRoutes mounts the rows owned by a job: creation and listing
// are nested under /jobs/:id, single-row operations live at the top level.
func addJobChildrenRoutes(rg *gin.RouterGroup, h Handlers) {
	jobs := rg.Group(PathJobs + "/:id")

	if h.LaborEntries != nil {
		jobs.POST(PathLaborEntries, h.LaborEntries.CreateLaborEntry)
		jobs.GET(PathLaborEntries, h.LaborEntries.ListLaborEntries)

		entries := rg.Group(PathLaborEntries)
		entries.GET("/:id", h.LaborEntries.GetLaborEntry)
		entries.PATCH("/:id", h.LaborEntries.UpdateLaborEntry)
		entries.DELETE("/:id", h.LaborEntries.DeleteLaborEntry)
	}

	if h.MaterialPurchases != nil {
		jobs.POST(PathMaterialPurchases, h.MaterialPurchases.CreateMaterialPurchase)
		jobs.GET(PathMaterialPurchases, h.MaterialPurchases.ListMaterialPurchases)

		purchases := rg.Group(PathMaterialPurchases)
		purchases.GET("/:id", h.MaterialPurchases.GetMaterialPurchase)
		purchases.PATCH("/:id", h.MaterialPurchases.UpdateMaterialPurchase)
		purchases.DELETE("/:id", h.MaterialPurchases.DeleteMaterialPurchase)
	}

	if h.Payments != nil {
		jobs.POST(PathPayments, h.Payments.CreatePayment)
		jobs.GET(PathPayments, h.Payments.ListPayments)
		jobs.POST("/collections/online", h.Payments.CollectOnline)

		payments := rg.Group(PathPayments)
		payments.GET("/:id", h.Payments.GetPayment)
		payments.DELETE("/:id", h.Payments.DeletePayment)
	}

	if h.Offers != nil {
		jobs.POST(PathOffers, h.Offers.CreateOffer)
		jobs.GET(PathOffers, h.Offers.ListOffers)

		offers := rg.Group(PathOffers)
		offers.GET("/:id", h.Offers.GetOffer)
		offers.PUT("/:id", h.Offers.UpdateOffer)
		offers.PATCH("/:id/status", h.Offers.UpdateOfferStatus)
		offers.DELETE("/:id", h.Offers.DeleteOffer)
	}

	if h.Contracts != nil {
		jobs.POST(PathContracts, h.Contracts.CreateContract)
		jobs.GET(PathContracts, h.Contracts.ListContracts)

		contracts := rg.Group(PathContracts)
		contracts.GET("/:id", h.Contracts.GetContract)
		contracts.PUT("/:id", h.Contracts.UpdateContract)
		contracts.PATCH("/:id/status", h.Contracts.UpdateContractStatus)
		contracts.DELETE("/:id", h.Contracts.DeleteContract)
	}

	if h.PaymentPlans != nil {
		jobs.POST(PathPaymentPlans, h.PaymentPlans.CreatePaymentPlan)
		jobs.GET(PathPaymentPlans, h.PaymentPlans.ListPaymentPlans)

		plans := rg.Group(PathPaymentPlans)
		plans.PATCH("/:id/paid", h.PaymentPlans.MarkPaymentPlanPaid)
		plans.DELETE("/:id", h.PaymentPlans.DeletePaymentPlan)
	}

	if h.Files != nil {
		jobs.POST(PathFiles, h.Files.CreateFile)
		jobs.GET(PathFiles, h.Files.ListFiles)
		rg.DELETE(PathFiles+"/:id", h.Files.DeleteFile)
	}
}
