package entities

// Step is an immutable snapshot taken after one allocation decision
type Step struct {
	Allocation     AllocationMatrix `json:"allocation"`
	CumulativeCost Quantity         `json:"cumulative_cost"`
	Cell           Cell             `json:"cell"`
}

// Solution is the complete, eagerly computed result of a North-West Corner run
type Solution struct {
	Steps           []Step           `json:"steps"`
	FinalAllocation AllocationMatrix `json:"final_allocation"`
	TotalCost       Quantity         `json:"total_cost"`
	Fictitious      Fictitious       `json:"fictitious"`

	// Problem is the balanced problem the allocation refers to, kept so the
	// presentation layer can label fictitious rows and columns.
	Problem BalancedProblem `json:"problem"`
}

// StepCount returns the number of allocation decisions taken
func (s *Solution) StepCount() int {
	return len(s.Steps)
}
