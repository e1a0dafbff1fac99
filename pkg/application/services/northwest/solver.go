package northwest

import "github.com/vsinha/nwcorner/pkg/domain/entities"

// SolverState represents where a Solver is in its walk
type SolverState int

const (
	StateInitial SolverState = iota
	StateAllocating
	StateDone
)

// String method for SolverState enum
func (s SolverState) String() string {
	switch s {
	case StateInitial:
		return "Initial"
	case StateAllocating:
		return "Allocating"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Solver walks a balanced problem from the top-left cell to the bottom-right
// one, allocating as much as possible to each visited cell. A Solver is used
// for a single walk and is not safe for concurrent use.
type Solver struct {
	problem entities.BalancedProblem

	row, col        int
	remainingSupply []entities.Quantity
	remainingDemand []entities.Quantity
	allocation      entities.AllocationMatrix
	cost            *CostAccumulator
	state           SolverState
}

// NewSolver creates a solver for p. The problem is assumed to be valid and
// balanced; it is not modified.
func NewSolver(p entities.BalancedProblem) *Solver {
	return &Solver{
		problem:         p,
		remainingSupply: append([]entities.Quantity(nil), p.Supply...),
		remainingDemand: append([]entities.Quantity(nil), p.Demand...),
		allocation:      entities.NewAllocationMatrix(p.Rows(), p.Cols()),
		cost:            NewCostAccumulator(),
		state:           StateInitial,
	}
}

// State returns the current solver state
func (s *Solver) State() SolverState {
	return s.state
}

// Next performs one allocation and returns the resulting Step. It returns
// false once the walk has left the grid.
func (s *Solver) Next() (entities.Step, bool) {
	if s.state == StateInitial {
		s.state = StateAllocating
		s.checkBounds()
	}
	if s.state == StateDone {
		return entities.Step{}, false
	}

	i, j := s.row, s.col
	quantity := s.remainingSupply[i].Min(s.remainingDemand[j])

	s.allocation[i][j] = quantity
	runningCost := s.cost.Add(quantity, s.problem.Costs[i][j])

	s.remainingSupply[i] = s.remainingSupply[i].Sub(quantity)
	s.remainingDemand[j] = s.remainingDemand[j].Sub(quantity)

	step := entities.Step{
		Allocation:     s.allocation.Clone(),
		CumulativeCost: runningCost,
		Cell:           entities.Cell{Row: i, Col: j},
	}

	// Both checks run every iteration: on a tie the walk moves diagonally
	// without emitting a zero allocation for the skipped cell.
	if s.remainingSupply[i].IsZero() {
		s.row++
	}
	if s.remainingDemand[j].IsZero() {
		s.col++
	}
	s.checkBounds()

	return step, true
}

// Run walks the problem to completion and returns every Step in order
func (s *Solver) Run() []entities.Step {
	steps := make([]entities.Step, 0, maxSteps(s.problem))
	for {
		step, ok := s.Next()
		if !ok {
			return steps
		}
		steps = append(steps, step)
	}
}

// Allocation returns a copy of the current allocation
func (s *Solver) Allocation() entities.AllocationMatrix {
	return s.allocation.Clone()
}

// TotalCost returns the running cost of the allocations made so far
func (s *Solver) TotalCost() entities.Quantity {
	return s.cost.Total()
}

func (s *Solver) checkBounds() {
	if s.row >= s.problem.Rows() || s.col >= s.problem.Cols() {
		s.state = StateDone
	}
}

// maxSteps is the rows+cols-1 bound on the number of iterations
func maxSteps(p entities.BalancedProblem) int {
	if p.Rows() == 0 || p.Cols() == 0 {
		return 0
	}
	return p.Rows() + p.Cols() - 1
}
