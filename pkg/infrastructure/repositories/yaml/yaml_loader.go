package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// problemDocument is the YAML layout of a problem:
//
//	supply: [100, 150, 200]
//	demand: [120, 130, 200]
//	costs:
//	  - [2, 3, 1]
//	  - [5, 4, 8]
//	  - [5, 6, 8]
type problemDocument struct {
	Supply []quantity   `yaml:"supply"`
	Demand []quantity   `yaml:"demand"`
	Costs  [][]quantity `yaml:"costs,flow"`
}

// quantity decodes scalars straight into decimals so values stay exact
type quantity entities.Quantity

func (q *quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	v, err := entities.ParseQuantity(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*q = quantity(v)
	return nil
}

func (q quantity) MarshalYAML() (interface{}, error) {
	v := entities.Quantity(q)
	tag := "!!float"
	if v.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}, nil
}

// Loader handles loading transportation problems from YAML files
type Loader struct{}

// NewLoader creates a new YAML loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProblem loads a problem from a YAML file
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

// ReadProblem decodes a single YAML problem document
func (l *Loader) ReadProblem(r io.Reader) (*entities.Problem, error) {
	var doc problemDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("problem YAML is empty")
		}
		return nil, fmt.Errorf("failed to parse problem YAML: %w", err)
	}

	supply := make(entities.SupplyVector, len(doc.Supply))
	for i, q := range doc.Supply {
		supply[i] = entities.Quantity(q)
	}
	demand := make(entities.DemandVector, len(doc.Demand))
	for j, q := range doc.Demand {
		demand[j] = entities.Quantity(q)
	}
	costs := make(entities.CostMatrix, len(doc.Costs))
	for i, row := range doc.Costs {
		costs[i] = make([]entities.Quantity, len(row))
		for j, q := range row {
			costs[i][j] = entities.Quantity(q)
		}
	}

	return entities.NewProblem(supply, demand, costs)
}

// WriteProblem encodes p as a YAML problem document
func WriteProblem(w io.Writer, p entities.Problem) error {
	doc := problemDocument{
		Supply: make([]quantity, len(p.Supply)),
		Demand: make([]quantity, len(p.Demand)),
		Costs:  make([][]quantity, len(p.Costs)),
	}
	for i, q := range p.Supply {
		doc.Supply[i] = quantity(q)
	}
	for j, q := range p.Demand {
		doc.Demand[j] = quantity(q)
	}
	for i, row := range p.Costs {
		doc.Costs[i] = make([]quantity, len(row))
		for j, q := range row {
			doc.Costs[i][j] = quantity(q)
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode problem YAML: %w", err)
	}
	return encoder.Close()
}
