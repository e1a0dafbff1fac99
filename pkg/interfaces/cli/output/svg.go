package output

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/vsinha/nwcorner/pkg/application/dto"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// CostChart draws the cumulative cost after every step as horizontal bars
type CostChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	RowHeight    int
}

// CostBar represents a single step in the chart
type CostBar struct {
	Step           int
	Route          string
	Quantity       entities.Quantity
	CumulativeCost entities.Quantity
	Fictitious     bool
	X              int
	Y              int
	Width          int
}

// NewCostChart sizes a chart for the steps of solution
func NewCostChart(solution *entities.Solution) *CostChart {
	rowHeight := 30
	rows := max(1, solution.StepCount())

	return &CostChart{
		Width:        900,
		Height:       rows*rowHeight + 120,
		MarginLeft:   160,
		MarginTop:    60,
		MarginRight:  140,
		MarginBottom: 60,
		RowHeight:    rowHeight,
	}
}

// GenerateSVG creates an SVG representation of the cost progression
func (cc *CostChart) GenerateSVG(result *dto.SolveResult) string {
	solution := result.Solution
	if solution.StepCount() == 0 {
		return cc.generateEmptyChart(result.Name)
	}

	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, cc.Width, cc.Height))
	svg.WriteString(`<defs>`)
	svg.WriteString(`<style>`)
	svg.WriteString(`.route-label { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }`)
	svg.WriteString(`.cost-label { font-family: Arial, sans-serif; font-size: 11px; fill: #666; }`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.axis { stroke: #999; stroke-width: 1; }`)
	svg.WriteString(`.step-bar { stroke: #333; stroke-width: 1; }`)
	svg.WriteString(`</style>`)
	svg.WriteString(`</defs>`)

	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, cc.Width, cc.Height))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="30" class="title">North-West Corner: %s (total cost %s)</text>`,
		cc.MarginLeft, html.EscapeString(result.Name), solution.TotalCost))

	bars := cc.createBars(solution)
	cc.drawAxis(&svg, len(bars))
	for _, bar := range bars {
		cc.drawBar(&svg, bar)
	}

	svg.WriteString(`</svg>`)
	return svg.String()
}

// createBars scales every cumulative cost against the final total
func (cc *CostChart) createBars(solution *entities.Solution) []CostBar {
	b := solution.Problem
	plotWidth := cc.Width - cc.MarginLeft - cc.MarginRight
	total := solution.TotalCost.Decimal()

	bars := make([]CostBar, 0, solution.StepCount())
	for i, step := range solution.Steps {
		width := 0
		if total.IsPositive() {
			ratio := step.CumulativeCost.Decimal().Div(total).InexactFloat64()
			width = int(ratio * float64(plotWidth))
		}

		bars = append(bars, CostBar{
			Step:           i + 1,
			Route:          routeLabel(b, step.Cell),
			Quantity:       step.Allocation[step.Cell.Row][step.Cell.Col],
			CumulativeCost: step.CumulativeCost,
			Fictitious:     b.Fictitious.IsSupplier(step.Cell.Row) || b.Fictitious.IsConsumer(step.Cell.Col),
			X:              cc.MarginLeft,
			Y:              cc.MarginTop + i*cc.RowHeight,
			Width:          width,
		})
	}
	return bars
}

func (cc *CostChart) drawAxis(svg *strings.Builder, rows int) {
	bottom := cc.MarginTop + rows*cc.RowHeight
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis"/>`,
		cc.MarginLeft, cc.MarginTop-5, cc.MarginLeft, bottom))
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis"/>`,
		cc.MarginLeft, bottom, cc.Width-cc.MarginRight, bottom))
}

func (cc *CostChart) drawBar(svg *strings.Builder, bar CostBar) {
	barHeight := cc.RowHeight - 8
	color := "#4a90d9"
	if bar.Fictitious {
		color = "#e0a040"
	}

	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="route-label" text-anchor="end">%d. %s</text>`,
		bar.X-10, bar.Y+barHeight-6, bar.Step, html.EscapeString(bar.Route)))
	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="step-bar">`,
		bar.X, bar.Y, bar.Width, barHeight, color))
	svg.WriteString(fmt.Sprintf(`<title>Step %d: %s ships %s</title>`, bar.Step, html.EscapeString(bar.Route), bar.Quantity))
	svg.WriteString(`</rect>`)
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="cost-label">%s</text>`,
		bar.X+bar.Width+6, bar.Y+barHeight-6, bar.CumulativeCost))
}

func (cc *CostChart) generateEmptyChart(name string) string {
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+
		`<rect width="%d" height="%d" fill="white"/>`+
		`<text x="%d" y="%d" text-anchor="middle" font-family="Arial, sans-serif" font-size="14" fill="#666">No allocation steps for %s</text>`+
		`</svg>`,
		cc.Width, cc.Height, cc.Width, cc.Height, cc.Width/2, cc.Height/2, html.EscapeString(name))
}

// generateSVGOutput creates cost.svg in the output directory
func generateSVGOutput(w io.Writer, result *dto.SolveResult, config Config) error {
	chart := NewCostChart(result.Solution)

	file, err := createOutputFile(config.OutputDir, "cost.svg")
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.WriteString(file, chart.GenerateSVG(result)); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(w, "📈 Cost chart saved to: %s\n", file.Name())
	}
	return nil
}
