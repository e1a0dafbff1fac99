package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/nwcorner/pkg/application/dto"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

const cellWidth = 10

// RowLabel names supplier i, marking the fictitious supplier with "*"
func RowLabel(b entities.BalancedProblem, i int) string {
	label := fmt.Sprintf("S%d", i+1)
	if b.Fictitious.IsSupplier(i) {
		label += "*"
	}
	return label
}

// ColLabel names consumer j, marking the fictitious consumer with "*"
func ColLabel(b entities.BalancedProblem, j int) string {
	label := fmt.Sprintf("C%d", j+1)
	if b.Fictitious.IsConsumer(j) {
		label += "*"
	}
	return label
}

// FictitiousNote describes the balancing entity, or returns "" when none was added
func FictitiousNote(f entities.Fictitious) string {
	switch f.Kind {
	case entities.AddedConsumer:
		return fmt.Sprintf("fictitious consumer C%d* added to absorb excess supply", f.Index+1)
	case entities.AddedSupplier:
		return fmt.Sprintf("fictitious supplier S%d* added to cover excess demand", f.Index+1)
	default:
		return ""
	}
}

// WriteReport writes the full text report for one solved problem
func WriteReport(w io.Writer, result *dto.SolveResult) error {
	return writeReport(w, result, plainTheme())
}

func writeReport(w io.Writer, result *dto.SolveResult, th theme) error {
	var sb strings.Builder
	solution := result.Solution
	balanced := solution.Problem

	title := fmt.Sprintf("📊 Transportation Problem: %s", result.Name)
	fmt.Fprintf(&sb, "%s\n%s\n\n", th.title(title), strings.Repeat("=", 40))

	if result.RunID != "" {
		fmt.Fprintf(&sb, "Run ID: %s\n", result.RunID)
	}
	fmt.Fprintf(&sb, "Suppliers: %d\n", result.Problem.Suppliers())
	fmt.Fprintf(&sb, "Consumers: %d\n", result.Problem.Consumers())
	fmt.Fprintf(&sb, "Total Supply: %s\n", result.Problem.Supply.Total())
	fmt.Fprintf(&sb, "Total Demand: %s\n", result.Problem.Demand.Total())
	if result.Problem.IsBalanced() {
		fmt.Fprintf(&sb, "Status: balanced\n")
	} else {
		fmt.Fprintf(&sb, "Status: unbalanced\n")
	}
	if note := FictitiousNote(solution.Fictitious); note != "" {
		fmt.Fprintf(&sb, "⚠️  %s\n", th.warning(note))
	}
	fmt.Fprintf(&sb, "Steps: %d\n", solution.StepCount())
	fmt.Fprintf(&sb, "%s\n", th.total(fmt.Sprintf("Total Cost: %s", solution.TotalCost)))
	if result.SolveTime > 0 {
		fmt.Fprintf(&sb, "Solve Time: %v\n", result.SolveTime)
	}
	sb.WriteString("\n")

	sb.WriteString(th.heading("📋 Allocation:") + "\n")
	writeGrid(&sb, balanced, solution.FinalAllocation, true)
	sb.WriteString("\n")

	if solution.StepCount() > 0 {
		sb.WriteString(th.heading("📈 Steps:") + "\n")
		fmt.Fprintf(&sb, "%-6s %-14s %-12s %-15s\n", "Step", "Route", "Quantity", "Cumulative Cost")
		fmt.Fprintf(&sb, "%-6s %-14s %-12s %-15s\n", "------", "--------------", "------------", "---------------")
		for i, step := range solution.Steps {
			fmt.Fprintf(&sb, "%-6d %-14s %-12s %-15s\n",
				i+1,
				routeLabel(balanced, step.Cell),
				step.Allocation[step.Cell.Row][step.Cell.Col],
				step.CumulativeCost)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderStep writes a single intermediate snapshot, used by playback
func RenderStep(w io.Writer, b entities.BalancedProblem, index int, step entities.Step) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Step %d: %s ships %s, cumulative cost %s\n",
		index+1,
		routeLabel(b, step.Cell),
		step.Allocation[step.Cell.Row][step.Cell.Col],
		step.CumulativeCost)
	writeGrid(&sb, b, step.Allocation, true)
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func routeLabel(b entities.BalancedProblem, c entities.Cell) string {
	return fmt.Sprintf("%s → %s", RowLabel(b, c.Row), ColLabel(b, c.Col))
}

// writeGrid prints a per-route matrix with supply on the right and demand
// below. With blankZero, empty routes are shown as "-".
func writeGrid(sb *strings.Builder, b entities.BalancedProblem, values entities.AllocationMatrix, blankZero bool) {
	fmt.Fprintf(sb, "%-8s", "")
	for j := 0; j < b.Cols(); j++ {
		fmt.Fprintf(sb, "%*s", cellWidth, ColLabel(b, j))
	}
	fmt.Fprintf(sb, "%*s\n", cellWidth, "Supply")

	for i := 0; i < b.Rows(); i++ {
		fmt.Fprintf(sb, "%-8s", RowLabel(b, i))
		for j := 0; j < b.Cols(); j++ {
			cell := values[i][j].String()
			if blankZero && values[i][j].IsZero() {
				cell = "-"
			}
			fmt.Fprintf(sb, "%*s", cellWidth, cell)
		}
		fmt.Fprintf(sb, "%*s\n", cellWidth, b.Supply[i])
	}

	fmt.Fprintf(sb, "%-8s", "Demand")
	for j := 0; j < b.Cols(); j++ {
		fmt.Fprintf(sb, "%*s", cellWidth, b.Demand[j])
	}
	sb.WriteString("\n")
}

// WriteProblem writes the unit cost grid of p with supply, demand and balance status
func WriteProblem(w io.Writer, p entities.Problem) error {
	var sb strings.Builder
	b := entities.BalancedProblem{Problem: p, Fictitious: entities.NoFictitious()}

	sb.WriteString("Unit costs:\n")
	writeGrid(&sb, b, entities.AllocationMatrix(p.Costs), false)
	fmt.Fprintf(&sb, "\nTotal Supply: %s\n", p.Supply.Total())
	fmt.Fprintf(&sb, "Total Demand: %s\n", p.Demand.Total())

	switch p.Supply.Total().Cmp(p.Demand.Total()) {
	case 0:
		sb.WriteString("Status: balanced\n")
	case 1:
		sb.WriteString("Status: unbalanced, a fictitious consumer will be added\n")
	default:
		sb.WriteString("Status: unbalanced, a fictitious supplier will be added\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
