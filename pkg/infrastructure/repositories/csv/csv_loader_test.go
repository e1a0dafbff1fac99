package csv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

const defaultGrid = `supplier,C1,C2,C3,supply
S1,2,3,1,100
S2,5,4,8,150
S3,5,6,8,200
demand,120,130,200,
`

func TestLoader_ReadProblem(t *testing.T) {
	p, err := NewLoader().ReadProblem(strings.NewReader(defaultGrid))
	require.NoError(t, err)

	expected := entities.DefaultProblem()
	require.Equal(t, 3, p.Suppliers())
	require.Equal(t, 3, p.Consumers())
	for i := range expected.Supply {
		assert.True(t, expected.Supply[i].Equal(p.Supply[i]), "supply %d", i)
		for j := range expected.Demand {
			assert.True(t, expected.Costs[i][j].Equal(p.Costs[i][j]), "cost (%d, %d)", i, j)
		}
	}
	for j := range expected.Demand {
		assert.True(t, expected.Demand[j].Equal(p.Demand[j]), "demand %d", j)
	}
}

func TestLoader_ReadProblem_DemandRowWithoutTrailingCell(t *testing.T) {
	grid := "Supplier, Warehouse A, supply\nPlant,2.5,10.25\nDEMAND,10.25\n"

	p, err := NewLoader().ReadProblem(strings.NewReader(grid))
	require.NoError(t, err)

	assert.Equal(t, "2.5", p.Costs[0][0].String())
	assert.Equal(t, "10.25", p.Demand[0].String())
}

func TestLoader_ReadProblem_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		grid        string
		expectError string
		expectIs    error
	}{
		{"too few rows", "supplier,C1,supply\ndemand,1,\n", "at least one supplier row", nil},
		{"bad header", "from,C1,supply\nS1,1,1\ndemand,1,\n", "header mismatch", nil},
		{"short supplier row", "supplier,C1,C2,supply\nS1,1,1\ndemand,1,1,\n", "row 2: expected 4 columns", nil},
		{"bad cost", "supplier,C1,supply\nS1,x,1\ndemand,1,\n", "row 2: invalid cost", nil},
		{"bad supply", "supplier,C1,supply\nS1,1,lots\ndemand,1,\n", "row 2: invalid supply", nil},
		{"missing demand row", "supplier,C1,supply\nS1,1,1\nS2,1,1\n", "expected demand row", nil},
		{"demand row not last", "supplier,C1,supply\ndemand,1,\nS1,1,1\n", "demand row must be last", nil},
		{"bad demand", "supplier,C1,supply\nS1,1,1\ndemand,?,\n", "row 3: invalid demand", nil},
		{"wrong demand count", "supplier,C1,C2,supply\nS1,1,1,1\ndemand,1\n", "expected 2 demand values", nil},
		{"negative supply", "supplier,C1,supply\nS1,1,-1\ndemand,1,\n", "supply[0]", entities.ErrNegativeValue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().ReadProblem(strings.NewReader(tc.grid))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectError)
			if tc.expectIs != nil {
				assert.True(t, errors.Is(err, tc.expectIs), "expected %v in chain, got %v", tc.expectIs, err)
			}
		})
	}
}

func TestLoader_LoadProblem_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.csv")
	require.NoError(t, os.WriteFile(path, []byte(defaultGrid), 0644))

	p, err := NewLoader().LoadProblem(path)
	require.NoError(t, err)
	assert.True(t, p.IsBalanced())

	_, err = NewLoader().LoadProblem(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open problem file")
}

func TestWriter_WriteProblemIsReadable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().WriteProblem(&buf, entities.DefaultProblem()))

	assert.Equal(t, defaultGrid, buf.String())

	p, err := NewLoader().ReadProblem(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Suppliers())
}
