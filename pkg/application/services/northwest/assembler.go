package northwest

import "github.com/vsinha/nwcorner/pkg/domain/entities"

// Solve runs the North-West Corner method on a balanced problem and returns the
// complete trace. It is a pure function: concurrent calls share no state.
func Solve(p entities.BalancedProblem) *entities.Solution {
	solver := NewSolver(p)
	steps := solver.Run()
	return Assemble(p, steps, solver.Allocation(), solver.TotalCost())
}

// Assemble packages a finished walk into a Solution. The fictitious metadata is
// taken unchanged from the balanced problem.
func Assemble(
	p entities.BalancedProblem,
	steps []entities.Step,
	final entities.AllocationMatrix,
	totalCost entities.Quantity,
) *entities.Solution {
	if final == nil {
		final = entities.NewAllocationMatrix(p.Rows(), p.Cols())
	}
	return &entities.Solution{
		Steps:           steps,
		FinalAllocation: final,
		TotalCost:       totalCost,
		Fictitious:      p.Fictitious,
		Problem: entities.BalancedProblem{
			Problem:    p.Problem.Clone(),
			Fictitious: p.Fictitious,
		},
	}
}
