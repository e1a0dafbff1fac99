package entities

import "fmt"

// Cell addresses one supplier/consumer route
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// AllocationMatrix holds the quantity shipped on each route, indexed [supplier][consumer]
type AllocationMatrix [][]Quantity

// NewAllocationMatrix creates an all-zero rows x cols allocation
func NewAllocationMatrix(rows, cols int) AllocationMatrix {
	m := make(AllocationMatrix, rows)
	for i := range m {
		m[i] = filledRow(cols, ZeroQuantity)
	}
	return m
}

// ZeroRow returns n zero quantities
func ZeroRow(n int) []Quantity {
	return filledRow(n, ZeroQuantity)
}

// Clone returns a deep copy of the allocation
func (m AllocationMatrix) Clone() AllocationMatrix {
	out := make(AllocationMatrix, len(m))
	for i, row := range m {
		out[i] = append([]Quantity(nil), row...)
	}
	return out
}

func (m AllocationMatrix) Rows() int {
	return len(m)
}

func (m AllocationMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// RowSum returns the total shipped from supplier i
func (m AllocationMatrix) RowSum(i int) Quantity {
	return Sum(m[i])
}

// ColSum returns the total shipped to consumer j
func (m AllocationMatrix) ColSum(j int) Quantity {
	total := ZeroQuantity
	for _, row := range m {
		total = total.Add(row[j])
	}
	return total
}

// PositiveCells counts the routes carrying a strictly positive quantity
func (m AllocationMatrix) PositiveCells() int {
	count := 0
	for _, row := range m {
		for _, q := range row {
			if q.IsPositive() {
				count++
			}
		}
	}
	return count
}

// Cost returns the sum of allocation[i][j] * costs[i][j] over all routes
func (m AllocationMatrix) Cost(costs CostMatrix) Quantity {
	total := ZeroQuantity
	for i, row := range m {
		for j, q := range row {
			total = total.Add(q.Mul(costs[i][j]))
		}
	}
	return total
}

// Equal reports whether both matrices have the same shape and numerically equal entries
func (m AllocationMatrix) Equal(other AllocationMatrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if !m[i][j].Equal(other[i][j]) {
				return false
			}
		}
	}
	return true
}
