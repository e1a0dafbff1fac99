package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/vsinha/nwcorner/pkg/application/dto"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLReport renders a solved problem as a standalone HTML page
type HTMLReport struct{}

// ReportCell is one route of the allocation table
type ReportCell struct {
	Quantity  string
	UnitCost  string
	Allocated bool
	Order     int // 1-based step that filled the route, 0 when empty
}

// ReportRow is one supplier of the allocation table
type ReportRow struct {
	Label      string
	Fictitious bool
	Cells      []ReportCell
	Supply     string
}

// ReportStep is one line of the step list
type ReportStep struct {
	Number         int
	Route          string
	Quantity       string
	CumulativeCost string
}

// TemplateData contains all data for rendering the HTML template
type TemplateData struct {
	Name           string
	RunID          string
	Columns        []string
	Rows           []ReportRow
	Demand         []string
	TotalSupply    string
	TotalDemand    string
	Balanced       bool
	FictitiousNote string
	Steps          []ReportStep
	TotalCost      string
	GeneratedAt    string
}

// NewHTMLReport creates a new HTML report generator
func NewHTMLReport() *HTMLReport {
	return &HTMLReport{}
}

// GenerateHTML renders the report page for result
func (r *HTMLReport) GenerateHTML(result *dto.SolveResult) (string, error) {
	data := r.buildTemplateData(result)

	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (r *HTMLReport) buildTemplateData(result *dto.SolveResult) *TemplateData {
	solution := result.Solution
	b := solution.Problem

	order := make(map[entities.Cell]int, len(solution.Steps))
	for i, step := range solution.Steps {
		order[step.Cell] = i + 1
	}

	data := &TemplateData{
		Name:           result.Name,
		RunID:          result.RunID,
		TotalSupply:    result.Problem.Supply.Total().String(),
		TotalDemand:    result.Problem.Demand.Total().String(),
		Balanced:       result.Problem.IsBalanced(),
		FictitiousNote: FictitiousNote(solution.Fictitious),
		TotalCost:      solution.TotalCost.String(),
		GeneratedAt:    time.Now().Format("2006-01-02 15:04:05"),
	}

	for j := 0; j < b.Cols(); j++ {
		data.Columns = append(data.Columns, ColLabel(b, j))
		data.Demand = append(data.Demand, b.Demand[j].String())
	}

	for i := 0; i < b.Rows(); i++ {
		row := ReportRow{
			Label:      RowLabel(b, i),
			Fictitious: b.Fictitious.IsSupplier(i),
			Supply:     b.Supply[i].String(),
		}
		for j := 0; j < b.Cols(); j++ {
			q := solution.FinalAllocation[i][j]
			row.Cells = append(row.Cells, ReportCell{
				Quantity:  q.String(),
				UnitCost:  b.Costs[i][j].String(),
				Allocated: q.IsPositive(),
				Order:     order[entities.Cell{Row: i, Col: j}],
			})
		}
		data.Rows = append(data.Rows, row)
	}

	for i, step := range solution.Steps {
		data.Steps = append(data.Steps, ReportStep{
			Number:         i + 1,
			Route:          routeLabel(b, step.Cell),
			Quantity:       step.Allocation[step.Cell.Row][step.Cell.Col].String(),
			CumulativeCost: step.CumulativeCost.String(),
		})
	}

	return data
}

// generateHTMLOutput creates report.html in the output directory
func generateHTMLOutput(w io.Writer, result *dto.SolveResult, config Config) error {
	html, err := NewHTMLReport().GenerateHTML(result)
	if err != nil {
		return fmt.Errorf("failed to generate HTML report: %w", err)
	}

	file, err := createOutputFile(config.OutputDir, "report.html")
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.WriteString(file, html); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(w, "🌐 HTML report saved to: %s\n", file.Name())
	}
	return nil
}
