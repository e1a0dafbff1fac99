package entities

import "fmt"

// FictitiousKind records which zero-cost entity, if any, was added to balance a problem
type FictitiousKind int

const (
	FictitiousNone FictitiousKind = iota
	AddedConsumer
	AddedSupplier
)

// String method for FictitiousKind enum
func (k FictitiousKind) String() string {
	switch k {
	case FictitiousNone:
		return "none"
	case AddedConsumer:
		return "addedConsumer"
	case AddedSupplier:
		return "addedSupplier"
	default:
		return "unknown"
	}
}

func (k FictitiousKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FictitiousKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*k = FictitiousNone
	case "addedConsumer":
		*k = AddedConsumer
	case "addedSupplier":
		*k = AddedSupplier
	default:
		return fmt.Errorf("invalid fictitious kind: %s (expected: none, addedConsumer or addedSupplier)", text)
	}
	return nil
}

// NoFictitiousIndex is the Index of a Fictitious whose Kind is FictitiousNone
const NoFictitiousIndex = -1

// Fictitious locates the appended dummy row or column. Index equals the
// original supplier count (AddedSupplier) or consumer count (AddedConsumer).
type Fictitious struct {
	Kind  FictitiousKind `json:"kind"`
	Index int            `json:"index"`
}

// NoFictitious describes a problem that was already balanced
func NoFictitious() Fictitious {
	return Fictitious{Kind: FictitiousNone, Index: NoFictitiousIndex}
}

// IsSupplier reports whether row i is the fictitious supplier
func (f Fictitious) IsSupplier(i int) bool {
	return f.Kind == AddedSupplier && f.Index == i
}

// IsConsumer reports whether column j is the fictitious consumer
func (f Fictitious) IsConsumer(j int) bool {
	return f.Kind == AddedConsumer && f.Index == j
}

// BalancedProblem is a Problem whose total supply equals its total demand,
// possibly extended by one fictitious supplier or consumer.
type BalancedProblem struct {
	Problem
	Fictitious Fictitious `json:"fictitious"`
}

// Rows returns the number of suppliers including any fictitious one
func (b BalancedProblem) Rows() int {
	return len(b.Supply)
}

// Cols returns the number of consumers including any fictitious one
func (b BalancedProblem) Cols() int {
	return len(b.Demand)
}
