package memory

import (
	"strings"
	"testing"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/domain/repositories"
)

func TestProblemRepository_SaveProblem(t *testing.T) {
	repo := NewProblemRepository(2)

	err := repo.SaveProblem("default", entities.DefaultProblem())
	if err != nil {
		t.Fatalf("Failed to save problem: %v", err)
	}

	retrieved, err := repo.GetProblem("default")
	if err != nil {
		t.Fatalf("Failed to get problem: %v", err)
	}

	if retrieved.Suppliers() != 3 || retrieved.Consumers() != 3 {
		t.Errorf("Expected 3x3 problem, got %dx%d", retrieved.Suppliers(), retrieved.Consumers())
	}

	// Mutating the returned copy must not leak into the repository
	retrieved.Costs[0][0] = entities.NewQuantity(99)
	again, _ := repo.GetProblem("default")
	if !again.Costs[0][0].Equal(entities.NewQuantity(2)) {
		t.Errorf("Expected stored cost 2, got %s", again.Costs[0][0])
	}
}

func TestProblemRepository_SaveProblem_Duplicate(t *testing.T) {
	repo := NewProblemRepository(1)

	if err := repo.SaveProblem("dup", entities.DefaultProblem()); err != nil {
		t.Fatalf("Failed to save problem first time: %v", err)
	}

	err := repo.SaveProblem("dup", entities.DefaultProblem())
	if err == nil {
		t.Fatal("Expected error when saving duplicate problem name")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected 'already exists' error, got: %v", err)
	}

	if err := repo.SaveProblem("", entities.DefaultProblem()); err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestProblemRepository_GetProblem_NotFound(t *testing.T) {
	repo := NewProblemRepository(0)

	_, err := repo.GetProblem("missing")
	if err == nil {
		t.Fatal("Expected error for missing problem")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected 'not found' error, got: %v", err)
	}
}

func TestProblemRepository_LoadAndListInOrder(t *testing.T) {
	repo := NewProblemRepository(3)

	names := []string{"c.csv", "a.yaml", "b.csv"}
	var problems []*repositories.NamedProblem
	for _, name := range names {
		problems = append(problems, &repositories.NamedProblem{Name: name, Problem: entities.DefaultProblem()})
	}

	if err := repo.LoadProblems(problems); err != nil {
		t.Fatalf("Failed to load problems: %v", err)
	}

	all, err := repo.GetAllProblems()
	if err != nil {
		t.Fatalf("Failed to list problems: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("Expected %d problems, got %d", len(names), len(all))
	}
	for i, np := range all {
		if np.Name != names[i] {
			t.Errorf("Expected problem %d to be %s, got %s", i, names[i], np.Name)
		}
	}
}
