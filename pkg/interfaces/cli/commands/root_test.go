package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_SolveJSON(t *testing.T) {
	out, err := executeRoot(t, "solve", "--default", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Name     string `json:"name"`
		Solution struct {
			TotalCost string `json:"total_cost"`
		} `json:"solution"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "default", decoded.Name)
	assert.Equal(t, "2420", decoded.Solution.TotalCost)
}

func TestRootCommand_GenerateThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.csv")

	_, err := executeRoot(t, "generate", "--output", path, "--seed", "11")
	require.NoError(t, err)

	out, err := executeRoot(t, "solve", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Transportation Problem: random")
	assert.Contains(t, out, "Total Cost:")
}

func TestRootCommand_RejectsUnknownFlag(t *testing.T) {
	_, err := executeRoot(t, "solve", "--bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}
