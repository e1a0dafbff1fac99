package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/nwcorner/pkg/application/services"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

func main() {
	ctx := context.Background()

	// Three warehouses and four shops; the warehouses hold 60 units more than
	// the shops need, so a fictitious shop absorbs the surplus.
	problem, err := entities.NewProblem(
		entities.SupplyVector{entities.NewQuantity(180), entities.NewQuantity(120), entities.NewQuantity(160)},
		entities.DemandVector{entities.NewQuantity(90), entities.NewQuantity(110), entities.NewQuantity(70), entities.NewQuantity(130)},
		entities.CostMatrix{
			{entities.NewQuantity(4), entities.NewQuantity(6), entities.NewQuantity(9), entities.NewQuantity(5)},
			{entities.NewQuantity(7), entities.NewQuantity(3), entities.NewQuantity(4), entities.NewQuantity(8)},
			{entities.NewQuantity(5), entities.NewQuantity(8), entities.NewQuantity(6), entities.NewQuantity(2)},
		},
	)
	if err != nil {
		fmt.Printf("❌ Invalid problem: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🚚 Planning deliveries by the North-West Corner method...")
	fmt.Printf("Supply: %s, Demand: %s\n", problem.Supply.Total(), problem.Demand.Total())
	fmt.Println()

	solution, err := services.NewTransportService().Solve(ctx, *problem)
	if err != nil {
		fmt.Printf("❌ Solve failed: %v\n", err)
		os.Exit(1)
	}

	if f := solution.Fictitious; f.Kind != entities.FictitiousNone {
		fmt.Printf("⚠️  Balanced with %s at index %d\n\n", f.Kind, f.Index)
	}

	fmt.Println("📦 Allocation steps:")
	for i, step := range solution.Steps {
		q := step.Allocation[step.Cell.Row][step.Cell.Col]
		label := fmt.Sprintf("warehouse %d → shop %d", step.Cell.Row+1, step.Cell.Col+1)
		if solution.Fictitious.IsConsumer(step.Cell.Col) {
			label = fmt.Sprintf("warehouse %d → surplus", step.Cell.Row+1)
		}
		fmt.Printf("  %d. %-28s %6s units, running cost %s\n", i+1, label, q, step.CumulativeCost)
	}
	fmt.Println()

	fmt.Printf("💰 Total cost: %s\n", solution.TotalCost)
	fmt.Printf("Routes used: %d of at most %d\n",
		solution.FinalAllocation.PositiveCells(),
		solution.Problem.Rows()+solution.Problem.Cols()-1)
}
