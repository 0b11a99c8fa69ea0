package clean

import (
	"github.com/dkrause/famrecon/internal/model"
	"github.com/dkrause/famrecon/internal/normalize"
	"github.com/dkrause/famrecon/internal/table"
)

// TM normalizes the raw TM sheet. The charge number and position
// columns are validated here but rewritten later by the charge block
// reconstruction.
func TM(raw *table.Table) *table.Table {
	t := remap(raw, model.TMColumnOrder, model.TMHeaderMapping)

	t.Apply("vo_id", normalize.NumericID)
	t.Apply("pzn", normalize.NumericID)
	t.Apply("am_name", normalize.MedicineName)
	t.Apply("charge_nr", normalize.MedicineName)
	t.Apply("position", normalize.IntCell)
	t.Apply("factor_indicator", normalize.IntCell)
	t.Apply("price_indicator", normalize.IntCell)
	t.Apply("partial_quantity_price", normalize.PartialQuantityPrice)

	t.SetColumn("quantity_factor", normalize.QuantityFactors(t.Column("quantity_factor")))
	return t
}
