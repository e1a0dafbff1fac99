package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// Writer writes transportation problems in the grid format read by Loader
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteProblem writes p with consumers labelled C1..Cn and suppliers S1..Sm
func (w *Writer) WriteProblem(out io.Writer, p entities.Problem) error {
	cw := csv.NewWriter(out)

	header := make([]string, 0, p.Consumers()+2)
	header = append(header, supplierHeader)
	for j := 0; j < p.Consumers(); j++ {
		header = append(header, fmt.Sprintf("C%d", j+1))
	}
	header = append(header, supplyHeader)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range p.Costs {
		record := make([]string, 0, len(header))
		record = append(record, fmt.Sprintf("S%d", i+1))
		for _, c := range row {
			record = append(record, c.String())
		}
		record = append(record, p.Supply[i].String())
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write supplier row %d: %w", i+1, err)
		}
	}

	demand := make([]string, 0, len(header))
	demand = append(demand, demandLabel)
	for _, d := range p.Demand {
		demand = append(demand, d.String())
	}
	demand = append(demand, "")
	if err := cw.Write(demand); err != nil {
		return fmt.Errorf("failed to write demand row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
