package services

import (
	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// BalanceAdjuster turns an arbitrary problem into a balanced one by appending a
// zero-cost fictitious consumer (excess supply) or supplier (excess demand).
type BalanceAdjuster struct{}

// NewBalanceAdjuster creates a new balance adjuster
func NewBalanceAdjuster() *BalanceAdjuster {
	return &BalanceAdjuster{}
}

// Balance returns a balanced copy of p. The input is never modified and the
// result shares no memory with it. p is assumed to be valid.
func (a *BalanceAdjuster) Balance(p entities.Problem) entities.BalancedProblem {
	out := p.Clone()
	totalSupply := out.Supply.Total()
	totalDemand := out.Demand.Total()

	switch totalSupply.Cmp(totalDemand) {
	case 1:
		index := len(out.Demand)
		out.Demand = append(out.Demand, totalSupply.Sub(totalDemand))
		for i := range out.Costs {
			out.Costs[i] = append(out.Costs[i], entities.ZeroQuantity)
		}
		return entities.BalancedProblem{
			Problem:    out,
			Fictitious: entities.Fictitious{Kind: entities.AddedConsumer, Index: index},
		}

	case -1:
		index := len(out.Supply)
		out.Supply = append(out.Supply, totalDemand.Sub(totalSupply))
		out.Costs = append(out.Costs, entities.ZeroRow(len(out.Demand)))
		return entities.BalancedProblem{
			Problem:    out,
			Fictitious: entities.Fictitious{Kind: entities.AddedSupplier, Index: index},
		}

	default:
		return entities.BalancedProblem{
			Problem:    out,
			Fictitious: entities.NoFictitious(),
		}
	}
}
