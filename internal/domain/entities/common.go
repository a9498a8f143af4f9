package entities

import "time"

// EntityType names a persisted aggregate. It is the audit log "entity"
// value and selects how the aggregate is deleted.
type EntityType string

const (
	EntityJob              EntityType = "job"
	EntityLaborEntry       EntityType = "labor_entry"
	EntityMaterialPurchase EntityType = "material_purchase"
	EntityPayment          EntityType = "payment"
	EntityOffer            EntityType = "offer"
	EntityContract         EntityType = "contract"
	EntityPaymentPlan      EntityType = "payment_plan"
	EntityFile             EntityType = "file"
	EntityWorker           EntityType = "worker"
	EntitySupplier         EntityType = "supplier"
	EntityMaterial         EntityType = "material"
)

// DeletionPolicy tells how a delete request is carried out for an entity type.
type DeletionPolicy string

const (
	// DeletionArchive flips IsActive to false and keeps the row.
	DeletionArchive DeletionPolicy = "archive"
	// DeletionErase removes the row.
	DeletionErase DeletionPolicy = "erase"
)

// DeletionPolicy returns the policy for the entity type. Catalog entities are
// archivable; jobs and their child rows are erasable.
func (t EntityType) DeletionPolicy() DeletionPolicy {
	switch t {
	case EntityWorker, EntitySupplier, EntityMaterial:
		return DeletionArchive
	default:
		return DeletionErase
	}
}

// CostCategory selects which running total of a job is recomputed.
type CostCategory string

const (
	CostCategoryLabor    CostCategory = "labor"
	CostCategoryMaterial CostCategory = "material"
)

func (c CostCategory) Valid() bool {
	return c == CostCategoryLabor || c == CostCategoryMaterial
}

// Currency is stored with monetary rows but never converted.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// DateRange bounds list queries on the row's business date. Nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
