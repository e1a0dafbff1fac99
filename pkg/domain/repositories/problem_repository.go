package repositories

import "github.com/vsinha/nwcorner/pkg/domain/entities"

// ProblemRepository provides access to named transportation problems
type ProblemRepository interface {
	GetProblem(name string) (*entities.Problem, error)
	GetAllProblems() ([]*NamedProblem, error)
	SaveProblem(name string, problem entities.Problem) error
	LoadProblems(problems []*NamedProblem) error
}

// NamedProblem pairs a problem with the name it was stored under, usually its source path
type NamedProblem struct {
	Name    string
	Problem entities.Problem
}
