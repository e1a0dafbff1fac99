package testing

import (
	"fmt"
	"math/rand"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// Quantities converts integer values into quantities
func Quantities(values ...int64) []entities.Quantity {
	out := make([]entities.Quantity, len(values))
	for i, v := range values {
		out[i] = entities.NewQuantity(v)
	}
	return out
}

// Matrix builds a cost matrix from integer rows
func Matrix(rows ...[]int64) entities.CostMatrix {
	m := make(entities.CostMatrix, len(rows))
	for i, row := range rows {
		m[i] = Quantities(row...)
	}
	return m
}

// Allocation builds an allocation matrix from integer rows
func Allocation(rows ...[]int64) entities.AllocationMatrix {
	return entities.AllocationMatrix(Matrix(rows...))
}

// BuildBalancedScenario returns the balanced three-by-three problem with a known
// total cost of 2420
func BuildBalancedScenario() entities.Problem {
	return entities.Problem{
		Supply: Quantities(100, 150, 200),
		Demand: Quantities(120, 130, 200),
		Costs:  Matrix([]int64{2, 3, 1}, []int64{5, 4, 8}, []int64{5, 6, 8}),
	}
}

// BuildExcessSupplyScenario returns a problem needing a fictitious consumer of 15
func BuildExcessSupplyScenario() entities.Problem {
	return entities.Problem{
		Supply: Quantities(10, 20),
		Demand: Quantities(15),
		Costs:  Matrix([]int64{1}, []int64{1}),
	}
}

// BuildExcessDemandScenario returns a problem needing a fictitious supplier of 50
func BuildExcessDemandScenario() entities.Problem {
	return entities.Problem{
		Supply: Quantities(70, 30),
		Demand: Quantities(40, 60, 50),
		Costs:  Matrix([]int64{3, 1, 7}, []int64{2, 6, 4}),
	}
}

// BuildTieScenario returns a problem whose first allocation exhausts a
// supplier and a consumer at the same time
func BuildTieScenario() entities.Problem {
	return entities.Problem{
		Supply: Quantities(5, 5),
		Demand: Quantities(5, 5),
		Costs:  Matrix([]int64{1, 2}, []int64{3, 4}),
	}
}

// RandomProblem builds a valid, usually unbalanced problem with up to maxRows
// suppliers and maxCols consumers. Zero quantities are included on purpose.
func RandomProblem(r *rand.Rand, maxRows, maxCols int) entities.Problem {
	rows := 1 + r.Intn(maxRows)
	cols := 1 + r.Intn(maxCols)

	p := entities.Problem{
		Supply: make(entities.SupplyVector, rows),
		Demand: make(entities.DemandVector, cols),
		Costs:  make(entities.CostMatrix, rows),
	}
	for i := range p.Supply {
		p.Supply[i] = entities.NewQuantity(int64(r.Intn(300)))
		p.Costs[i] = make([]entities.Quantity, cols)
		for j := range p.Costs[i] {
			p.Costs[i][j] = entities.NewQuantity(int64(r.Intn(11)))
		}
	}
	for j := range p.Demand {
		p.Demand[j] = entities.NewQuantity(int64(r.Intn(300)))
	}
	return p
}

// CheckInvariants verifies that solution is a complete basic feasible
// allocation of balanced: supplies and demands are met exactly, the total cost
// matches the allocation and at most rows+cols-1 cells are positive.
func CheckInvariants(balanced entities.BalancedProblem, solution *entities.Solution) error {
	alloc := solution.FinalAllocation
	if alloc.Rows() != balanced.Rows() || (alloc.Rows() > 0 && alloc.Cols() != balanced.Cols()) {
		return fmt.Errorf("allocation is %dx%d, problem is %dx%d",
			alloc.Rows(), alloc.Cols(), balanced.Rows(), balanced.Cols())
	}

	for i, s := range balanced.Supply {
		if got := alloc.RowSum(i); !got.Equal(s) {
			return fmt.Errorf("supplier %d ships %s, supply is %s", i, got, s)
		}
	}
	for j, d := range balanced.Demand {
		if got := alloc.ColSum(j); !got.Equal(d) {
			return fmt.Errorf("consumer %d receives %s, demand is %s", j, got, d)
		}
	}

	if cost := alloc.Cost(balanced.Costs); !cost.Equal(solution.TotalCost) {
		return fmt.Errorf("total cost %s does not match allocation cost %s", solution.TotalCost, cost)
	}

	if limit := balanced.Rows() + balanced.Cols() - 1; alloc.PositiveCells() > limit {
		return fmt.Errorf("%d positive cells exceed basic limit %d", alloc.PositiveCells(), limit)
	}
	return nil
}
