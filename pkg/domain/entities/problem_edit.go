package entities

import "fmt"

// Editing defaults for suppliers and consumers added to a problem
const (
	DefaultEntryQuantity = 100
	DefaultUnitCost      = 1
	MinEntries           = 1
	MaxEntries           = 10
)

// DefaultProblem returns the three-by-three problem the planner starts with
func DefaultProblem() Problem {
	return Problem{
		Supply: SupplyVector{NewQuantity(100), NewQuantity(150), NewQuantity(200)},
		Demand: DemandVector{NewQuantity(120), NewQuantity(130), NewQuantity(200)},
		Costs: CostMatrix{
			{NewQuantity(2), NewQuantity(3), NewQuantity(1)},
			{NewQuantity(5), NewQuantity(4), NewQuantity(8)},
			{NewQuantity(5), NewQuantity(6), NewQuantity(8)},
		},
	}
}

// The edit operations below never modify the receiver; each returns a new Problem.

// WithSupplier appends a supplier offering DefaultEntryQuantity at DefaultUnitCost
// to every consumer.
func (p Problem) WithSupplier() Problem {
	out := p.Clone()
	out.Supply = append(out.Supply, NewQuantity(DefaultEntryQuantity))
	out.Costs = append(out.Costs, filledRow(len(out.Demand), NewQuantity(DefaultUnitCost)))
	return out
}

// WithoutSupplier drops the last supplier. A single supplier is never removed.
func (p Problem) WithoutSupplier() Problem {
	out := p.Clone()
	if len(out.Supply) <= MinEntries {
		return out
	}
	out.Supply = out.Supply[:len(out.Supply)-1]
	if len(out.Costs) > len(out.Supply) {
		out.Costs = out.Costs[:len(out.Supply)]
	}
	return out
}

// WithConsumer appends a consumer requiring DefaultEntryQuantity at DefaultUnitCost
// from every supplier.
func (p Problem) WithConsumer() Problem {
	out := p.Clone()
	out.Demand = append(out.Demand, NewQuantity(DefaultEntryQuantity))
	for i := range out.Costs {
		out.Costs[i] = append(out.Costs[i], NewQuantity(DefaultUnitCost))
	}
	return out
}

// WithoutConsumer drops the last consumer. A single consumer is never removed.
func (p Problem) WithoutConsumer() Problem {
	out := p.Clone()
	if len(out.Demand) <= MinEntries {
		return out
	}
	out.Demand = out.Demand[:len(out.Demand)-1]
	for i, row := range out.Costs {
		if len(row) > len(out.Demand) {
			out.Costs[i] = row[:len(out.Demand)]
		}
	}
	return out
}

// ResizeSuppliers grows or shrinks the supplier list to exactly n entries
func (p Problem) ResizeSuppliers(n int) (Problem, error) {
	if n < MinEntries || n > MaxEntries {
		return Problem{}, fmt.Errorf("supplier count %d not in [%d, %d]: %w",
			n, MinEntries, MaxEntries, ErrCountOutOfRange)
	}
	out := p.Clone()
	for len(out.Supply) < n {
		out = out.WithSupplier()
	}
	for len(out.Supply) > n {
		out = out.WithoutSupplier()
	}
	return out, nil
}

// ResizeConsumers grows or shrinks the consumer list to exactly n entries
func (p Problem) ResizeConsumers(n int) (Problem, error) {
	if n < MinEntries || n > MaxEntries {
		return Problem{}, fmt.Errorf("consumer count %d not in [%d, %d]: %w",
			n, MinEntries, MaxEntries, ErrCountOutOfRange)
	}
	out := p.Clone()
	for len(out.Demand) < n {
		out = out.WithConsumer()
	}
	for len(out.Demand) > n {
		out = out.WithoutConsumer()
	}
	return out, nil
}

// WithSupply replaces the quantity offered by supplier i
func (p Problem) WithSupply(i int, q Quantity) (Problem, error) {
	if i < 0 || i >= len(p.Supply) {
		return Problem{}, fmt.Errorf("supplier %d: %w", i, ErrIndexOutOfRange)
	}
	out := p.Clone()
	out.Supply[i] = q
	return out, nil
}

// WithDemand replaces the quantity required by consumer j
func (p Problem) WithDemand(j int, q Quantity) (Problem, error) {
	if j < 0 || j >= len(p.Demand) {
		return Problem{}, fmt.Errorf("consumer %d: %w", j, ErrIndexOutOfRange)
	}
	out := p.Clone()
	out.Demand[j] = q
	return out, nil
}

// WithCost replaces the unit cost of the route from supplier i to consumer j
func (p Problem) WithCost(i, j int, q Quantity) (Problem, error) {
	if i < 0 || i >= len(p.Costs) || j < 0 || j >= len(p.Costs[i]) {
		return Problem{}, fmt.Errorf("cost cell (%d, %d): %w", i, j, ErrIndexOutOfRange)
	}
	out := p.Clone()
	out.Costs[i][j] = q
	return out, nil
}

func filledRow(n int, value Quantity) []Quantity {
	row := make([]Quantity, n)
	for j := range row {
		row[j] = value
	}
	return row
}
