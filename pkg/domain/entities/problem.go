package entities

import "fmt"

// SupplyVector holds the quantity available at each supplier
type SupplyVector []Quantity

// DemandVector holds the quantity required by each consumer
type DemandVector []Quantity

// CostMatrix holds unit transport costs, indexed [supplier][consumer]
type CostMatrix [][]Quantity

// Total returns the sum of all supplier quantities
func (v SupplyVector) Total() Quantity {
	return Sum(v)
}

// Total returns the sum of all consumer quantities
func (v DemandVector) Total() Quantity {
	return Sum(v)
}

// Clone returns a deep copy of the cost matrix
func (m CostMatrix) Clone() CostMatrix {
	if m == nil {
		return nil
	}
	out := make(CostMatrix, len(m))
	for i, row := range m {
		out[i] = append([]Quantity(nil), row...)
	}
	return out
}

// Problem describes a transportation problem: what each supplier offers, what
// each consumer needs and the unit cost of every supplier/consumer route.
type Problem struct {
	Supply SupplyVector `json:"supply"`
	Demand DemandVector `json:"demand"`
	Costs  CostMatrix   `json:"costs"`
}

// NewProblem creates a validated Problem. The slices are copied.
func NewProblem(supply SupplyVector, demand DemandVector, costs CostMatrix) (*Problem, error) {
	p := Problem{
		Supply: append(SupplyVector(nil), supply...),
		Demand: append(DemandVector(nil), demand...),
		Costs:  costs.Clone(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Suppliers returns the number of suppliers
func (p Problem) Suppliers() int {
	return len(p.Supply)
}

// Consumers returns the number of consumers
func (p Problem) Consumers() int {
	return len(p.Demand)
}

// IsBalanced reports whether total supply equals total demand
func (p Problem) IsBalanced() bool {
	return p.Supply.Total().Equal(p.Demand.Total())
}

// Clone returns a deep copy that shares no memory with p
func (p Problem) Clone() Problem {
	return Problem{
		Supply: append(SupplyVector(nil), p.Supply...),
		Demand: append(DemandVector(nil), p.Demand...),
		Costs:  p.Costs.Clone(),
	}
}

// Validate checks the problem shape and values. Empty problems are reported
// first, then dimension mismatches, then negative entries.
func (p Problem) Validate() error {
	if len(p.Supply) == 0 {
		return fmt.Errorf("no suppliers: %w", ErrEmptyProblem)
	}
	if len(p.Demand) == 0 {
		return fmt.Errorf("no consumers: %w", ErrEmptyProblem)
	}

	if len(p.Costs) != len(p.Supply) {
		return fmt.Errorf("cost matrix has %d rows, expected %d: %w",
			len(p.Costs), len(p.Supply), ErrDimensionMismatch)
	}
	for i, row := range p.Costs {
		if len(row) != len(p.Demand) {
			return fmt.Errorf("cost row %d has %d columns, expected %d: %w",
				i, len(row), len(p.Demand), ErrDimensionMismatch)
		}
	}

	for i, q := range p.Supply {
		if q.IsNegative() {
			return fmt.Errorf("supply[%d] = %s: %w", i, q, ErrNegativeValue)
		}
	}
	for j, q := range p.Demand {
		if q.IsNegative() {
			return fmt.Errorf("demand[%d] = %s: %w", j, q, ErrNegativeValue)
		}
	}
	for i, row := range p.Costs {
		for j, c := range row {
			if c.IsNegative() {
				return fmt.Errorf("costs[%d][%d] = %s: %w", i, j, c, ErrNegativeValue)
			}
		}
	}

	return nil
}
