package routes

import "github.com/gin-gonic/gin"

const (
	PathWorkers   = "/workers"
	PathSuppliers = "/suppliers"
	PathMaterials = "/materials"
)

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	if h.Workers != nil {
		workers := rg.Group(PathWorkers)
		{
			workers.POST("", h.Workers.CreateWorker)
			workers.GET("", h.Workers.ListWorkers)
			workers.GET("/active", h.Workers.ListActiveWorkers)
			workers.GET("/:id", h.Workers.GetWorker)
			workers.PUT("/:id", h.Workers.UpdateWorker)
			workers.DELETE("/:id", h.Workers.DeleteWorker)
			workers.PATCH("/:id/archive", h.Workers.ArchiveWorker)
			workers.PATCH("/:id/activate", h.Workers.ActivateWorker)
			workers.GET("/:id/statement", h.Workers.GetWorkerStatement)
		}
		if h.Payments != nil {
			workers.POST("/:id/settlements", h.Payments.SettleWorker)
		}
	}

	if h.Suppliers != nil {
		suppliers := rg.Group(PathSuppliers)
		{
			suppliers.POST("", h.Suppliers.CreateSupplier)
			suppliers.GET("", h.Suppliers.ListSuppliers)
			suppliers.GET("/active", h.Suppliers.ListActiveSuppliers)
			suppliers.GET("/:id", h.Suppliers.GetSupplier)
			suppliers.PUT("/:id", h.Suppliers.UpdateSupplier)
			suppliers.PATCH("/:id/archive", h.Suppliers.ArchiveSupplier)
			suppliers.PATCH("/:id/activate", h.Suppliers.ActivateSupplier)
		}
	}

	if h.Materials != nil {
		materials := rg.Group(PathMaterials)
		{
			materials.POST("", h.Materials.CreateMaterial)
			materials.GET("", h.Materials.ListMaterials)
			materials.GET("/active", h.Materials.ListActiveMaterials)
			materials.GET("/:id", h.Materials.GetMaterial)
			materials.PUT("/:id", h.Materials.UpdateMaterial)
			materials.PATCH("/:id/archive", h.Materials.ArchiveMaterial)
			materials.PATCH("/:id/activate", h.Materials.ActivateMaterial)
		}
	}
}
