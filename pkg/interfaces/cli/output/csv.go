package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vsinha/nwcorner/pkg/application/dto"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// generateCSVOutput writes allocation.csv and steps.csv into the output directory
func generateCSVOutput(w io.Writer, result *dto.SolveResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	allocFile, err := createOutputFile(config.OutputDir, "allocation.csv")
	if err != nil {
		return err
	}
	defer allocFile.Close()
	if err := writeAllocationCSV(allocFile, result.Solution); err != nil {
		return fmt.Errorf("failed to write allocation CSV: %w", err)
	}

	stepsFile, err := createOutputFile(config.OutputDir, "steps.csv")
	if err != nil {
		return err
	}
	defer stepsFile.Close()
	if err := writeStepsCSV(stepsFile, result.Solution); err != nil {
		return fmt.Errorf("failed to write steps CSV: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(w, "💾 CSV results saved to:\n")
		fmt.Fprintf(w, "  Allocation: %s\n", allocFile.Name())
		fmt.Fprintf(w, "  Steps: %s\n", stepsFile.Name())
	}
	return nil
}

// writeAllocationCSV writes the final allocation in the problem grid layout
func writeAllocationCSV(out io.Writer, solution *entities.Solution) error {
	b := solution.Problem
	writer := csv.NewWriter(out)

	header := make([]string, 0, b.Cols()+2)
	header = append(header, "supplier")
	for j := 0; j < b.Cols(); j++ {
		header = append(header, ColLabel(b, j))
	}
	header = append(header, "supply")
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := 0; i < b.Rows(); i++ {
		record := make([]string, 0, b.Cols()+2)
		record = append(record, RowLabel(b, i))
		for j := 0; j < b.Cols(); j++ {
			record = append(record, solution.FinalAllocation[i][j].String())
		}
		record = append(record, b.Supply[i].String())
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	demand := make([]string, 0, b.Cols()+2)
	demand = append(demand, "demand")
	for j := 0; j < b.Cols(); j++ {
		demand = append(demand, b.Demand[j].String())
	}
	demand = append(demand, "")
	if err := writer.Write(demand); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

// writeStepsCSV writes one record per allocation decision
func writeStepsCSV(out io.Writer, solution *entities.Solution) error {
	b := solution.Problem
	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"step", "row", "col", "supplier", "consumer", "quantity", "cumulative_cost"}); err != nil {
		return err
	}

	for i, step := range solution.Steps {
		record := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(step.Cell.Row),
			strconv.Itoa(step.Cell.Col),
			RowLabel(b, step.Cell.Row),
			ColLabel(b, step.Cell.Col),
			step.Allocation[step.Cell.Row][step.Cell.Col].String(),
			step.CumulativeCost.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
