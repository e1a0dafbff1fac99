package northwest

import "github.com/vsinha/nwcorner/pkg/domain/entities"

// CostAccumulator keeps the running total of allocated quantity times unit cost.
// Addition is exact; no rounding or tolerance is applied.
type CostAccumulator struct {
	total entities.Quantity
}

// NewCostAccumulator creates an accumulator starting at zero
func NewCostAccumulator() *CostAccumulator {
	return &CostAccumulator{total: entities.ZeroQuantity}
}

// Add accumulates quantity*unitCost and returns the new running total
func (c *CostAccumulator) Add(quantity, unitCost entities.Quantity) entities.Quantity {
	c.total = c.total.Add(quantity.Mul(unitCost))
	return c.total
}

// Total returns the running total
func (c *CostAccumulator) Total() entities.Quantity {
	return c.total
}

// Reset sets the running total back to zero
func (c *CostAccumulator) Reset() {
	c.total = entities.ZeroQuantity
}
