package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// Column and row markers of the problem grid:
//
//	supplier,C1,C2,supply
//	S1,2,3,100
//	S2,5,4,150
//	demand,120,130,
const (
	supplierHeader = "supplier"
	supplyHeader   = "supply"
	demandLabel    = "demand"
)

// Loader handles loading transportation problems from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProblem loads a problem from a CSV file
func (l *Loader) LoadProblem(filename string) (*entities.Problem, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open problem file %s: %w", filename, err)
	}
	defer file.Close()

	p, err := l.ReadProblem(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// ReadProblem reads a problem grid: a header row, one row per supplier with its
// unit costs and supply, and a final demand row.
func (l *Loader) ReadProblem(r io.Reader) (*entities.Problem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read problem CSV: %w", err)
	}

	if len(records) < 3 {
		return nil, fmt.Errorf("problem CSV must have a header, at least one supplier row and a demand row")
	}

	header := records[0]
	if !validateHeader(header) {
		return nil, fmt.Errorf("problem CSV header mismatch. Expected: %s,<consumers...>,%s, Got: %v",
			supplierHeader, supplyHeader, header)
	}
	consumers := len(header) - 2

	supplierRows := records[1 : len(records)-1]
	supply := make(entities.SupplyVector, 0, len(supplierRows))
	costs := make(entities.CostMatrix, 0, len(supplierRows))

	for i, record := range supplierRows {
		row := i + 2
		if len(record) != len(header) {
			return nil, fmt.Errorf("problem CSV row %d: expected %d columns, got %d", row, len(header), len(record))
		}
		if isDemandRow(record) {
			return nil, fmt.Errorf("problem CSV row %d: demand row must be last", row)
		}

		costRow, err := parseQuantities(record[1 : 1+consumers])
		if err != nil {
			return nil, fmt.Errorf("problem CSV row %d: invalid cost: %w", row, err)
		}
		q, err := entities.ParseQuantity(strings.TrimSpace(record[len(record)-1]))
		if err != nil {
			return nil, fmt.Errorf("problem CSV row %d: invalid supply: %w", row, err)
		}

		costs = append(costs, costRow)
		supply = append(supply, q)
	}

	last := records[len(records)-1]
	lastRow := len(records)
	if !isDemandRow(last) {
		return nil, fmt.Errorf("problem CSV row %d: expected %s row, got %q", lastRow, demandLabel, last[0])
	}
	// the trailing supply cell of the demand row is optional and must be empty
	if len(last) == len(header) && strings.TrimSpace(last[len(last)-1]) == "" {
		last = last[:len(last)-1]
	}
	if len(last) != consumers+1 {
		return nil, fmt.Errorf("problem CSV row %d: expected %d demand values, got %d", lastRow, consumers, len(last)-1)
	}
	demand, err := parseQuantities(last[1:])
	if err != nil {
		return nil, fmt.Errorf("problem CSV row %d: invalid demand: %w", lastRow, err)
	}

	return entities.NewProblem(supply, entities.DemandVector(demand), costs)
}

// Helper functions for parsing CSV records

func validateHeader(header []string) bool {
	if len(header) < 3 {
		return false
	}
	return normalize(header[0]) == supplierHeader && normalize(header[len(header)-1]) == supplyHeader
}

func isDemandRow(record []string) bool {
	return len(record) > 0 && normalize(record[0]) == demandLabel
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseQuantities(fields []string) ([]entities.Quantity, error) {
	out := make([]entities.Quantity, len(fields))
	for i, f := range fields {
		q, err := entities.ParseQuantity(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}
