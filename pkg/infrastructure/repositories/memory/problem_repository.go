package memory

import (
	"fmt"
	"sync"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/domain/repositories"
)

// ProblemRepository provides in-memory storage of named problems.
// Problems are stored and returned as deep copies.
type ProblemRepository struct {
	problems []repositories.NamedProblem
	index    map[string]int
	mutex    sync.RWMutex
}

// NewProblemRepository creates a new in-memory problem repository
func NewProblemRepository(expectedProblems int) *ProblemRepository {
	return &ProblemRepository{
		problems: make([]repositories.NamedProblem, 0, expectedProblems),
		index:    make(map[string]int, expectedProblems),
	}
}

// Verify interface compliance
var _ repositories.ProblemRepository = (*ProblemRepository)(nil)

// LoadProblems loads named problems into the repository
func (r *ProblemRepository) LoadProblems(problems []*repositories.NamedProblem) error {
	for _, np := range problems {
		if err := r.SaveProblem(np.Name, np.Problem); err != nil {
			return err
		}
	}
	return nil
}

// SaveProblem stores a copy of problem under name. Names must be unique.
func (r *ProblemRepository) SaveProblem(name string, problem entities.Problem) error {
	if name == "" {
		return fmt.Errorf("problem name cannot be empty")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.index[name]; exists {
		return fmt.Errorf("problem already exists: %s", name)
	}
	r.index[name] = len(r.problems)
	r.problems = append(r.problems, repositories.NamedProblem{Name: name, Problem: problem.Clone()})
	return nil
}

// GetProblem returns a copy of the problem stored under name
func (r *ProblemRepository) GetProblem(name string) (*entities.Problem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i, exists := r.index[name]
	if !exists {
		return nil, fmt.Errorf("problem not found: %s", name)
	}
	p := r.problems[i].Problem.Clone()
	return &p, nil
}

// GetAllProblems returns copies of all problems in insertion order
func (r *ProblemRepository) GetAllProblems() ([]*repositories.NamedProblem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	problems := make([]*repositories.NamedProblem, 0, len(r.problems))
	for _, np := range r.problems {
		problems = append(problems, &repositories.NamedProblem{Name: np.Name, Problem: np.Problem.Clone()})
	}
	return problems, nil
}
