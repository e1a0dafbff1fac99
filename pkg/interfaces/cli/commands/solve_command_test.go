package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
	testhelpers "github.com/vsinha/nwcorner/pkg/infrastructure/testing"
)

func writeProblem(t *testing.T, dir, name string, p entities.Problem) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, WriteProblemFile(path, formatForPath(path), p))
	return path
}

func runSolve(t *testing.T, config SolveConfig) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewSolveCommand(config, &out, &errOut).Execute(context.Background())
	return out.String(), err
}

func TestSolveCommand_DefaultProblem(t *testing.T) {
	config := DefaultSolveConfig()
	config.Default = true

	out, err := runSolve(t, config)
	require.NoError(t, err)

	assert.Contains(t, out, "Transportation Problem: default")
	assert.Contains(t, out, "Status: balanced")
	assert.Contains(t, out, "Steps: 4")
	assert.Contains(t, out, "Total Cost: 2420")
}

func TestSolveCommand_NoSourceUsesDefault(t *testing.T) {
	out, err := runSolve(t, DefaultSolveConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "Total Cost: 2420")
}

func TestSolveCommand_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(*SolveConfig)
		expectError string
	}{
		{"unknown format", func(c *SolveConfig) { c.Format = "xml" }, "Format"},
		{"negative interval", func(c *SolveConfig) { c.Interval = -time.Second }, "Interval"},
		{"negative concurrency", func(c *SolveConfig) { c.Concurrency = -1 }, "Concurrency"},
		{"empty file name", func(c *SolveConfig) { c.Files = []string{""} }, "Files"},
		{"two sources", func(c *SolveConfig) { c.Default, c.Random = true, true }, "choose only one"},
		{"csv without output", func(c *SolveConfig) { c.Format = "csv" }, "--output is required"},
		{"html without output", func(c *SolveConfig) { c.Format = "html" }, "--output is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultSolveConfig()
			tc.modify(&config)

			_, err := runSolve(t, config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation error")
			assert.Contains(t, err.Error(), tc.expectError)
		})
	}
}

func TestSolveCommand_MultipleFilesToCSV(t *testing.T) {
	dir := t.TempDir()
	supplyFile := writeProblem(t, dir, "supply.csv", testhelpers.BuildExcessSupplyScenario())
	demandFile := writeProblem(t, dir, "demand.yaml", testhelpers.BuildExcessDemandScenario())
	outDir := filepath.Join(dir, "results")

	config := DefaultSolveConfig()
	config.Files = []string{supplyFile, demandFile}
	config.Format = "csv"
	config.OutputDir = outDir

	_, err := runSolve(t, config)
	require.NoError(t, err)

	supplySteps, err := os.ReadFile(filepath.Join(outDir, "supply", "steps.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(supplySteps), "C2*")

	demandAllocation, err := os.ReadFile(filepath.Join(outDir, "demand", "allocation.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(demandAllocation), "S3*,0,0,50,50")
}

func TestSolveCommand_AnimateWithoutTerminalIsUnpaced(t *testing.T) {
	config := DefaultSolveConfig()
	config.Default = true
	config.Animate = true
	config.Interval = time.Hour

	start := time.Now()
	out, err := runSolve(t, config)
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Minute)
	assert.Contains(t, out, "Step 1: S1 → C1 ships 100, cumulative cost 200")
	assert.Contains(t, out, "Step 4: S3 → C3 ships 200, cumulative cost 2420")
	assert.Less(t, strings.Index(out, "Step 4:"), strings.Index(out, "Total Cost: 2420"))
}

func TestSolveCommand_RandomIsReproducible(t *testing.T) {
	config := DefaultSolveConfig()
	config.Random = true
	config.Seed = 99

	first, err := runSolve(t, config)
	require.NoError(t, err)
	second, err := runSolve(t, config)
	require.NoError(t, err)

	totalCost := func(out string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "Total Cost:") {
				return line
			}
		}
		return ""
	}
	require.NotEmpty(t, totalCost(first))
	assert.Equal(t, totalCost(first), totalCost(second))
}

func TestSolveCommand_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	unsupported := filepath.Join(dir, "problem.txt")
	require.NoError(t, os.WriteFile(unsupported, []byte("1,2,3"), 0644))

	broken := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(broken, []byte("supplier,C1,supply\nS1,-1,5\ndemand,5,\n"), 0644))

	testCases := []struct {
		name        string
		file        string
		expectError string
	}{
		{"unsupported extension", unsupported, "unsupported problem file"},
		{"missing file", filepath.Join(dir, "missing.csv"), "failed to open"},
		{"negative cost", broken, "negative value"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultSolveConfig()
			config.Files = []string{tc.file}

			_, err := runSolve(t, config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectError)
		})
	}
}
