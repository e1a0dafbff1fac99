package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

func quantities(values ...int64) []entities.Quantity {
	out := make([]entities.Quantity, len(values))
	for i, v := range values {
		out[i] = entities.NewQuantity(v)
	}
	return out
}

func assertQuantities(t *testing.T, expected []entities.Quantity, actual []entities.Quantity, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, actual, len(expected), msgAndArgs...)
	for i := range expected {
		assert.Truef(t, expected[i].Equal(actual[i]), "index %d: expected %s, got %s", i, expected[i], actual[i])
	}
}

func TestBalanceAdjuster_AlreadyBalanced(t *testing.T) {
	p := entities.DefaultProblem()

	balanced := NewBalanceAdjuster().Balance(p)

	assert.Equal(t, entities.FictitiousNone, balanced.Fictitious.Kind)
	assert.Equal(t, entities.NoFictitiousIndex, balanced.Fictitious.Index)
	assert.Equal(t, 3, balanced.Rows())
	assert.Equal(t, 3, balanced.Cols())
	assertQuantities(t, p.Supply, balanced.Supply)
	assertQuantities(t, p.Demand, balanced.Demand)
}

func TestBalanceAdjuster_ExcessSupplyAddsConsumer(t *testing.T) {
	p := entities.Problem{
		Supply: quantities(10, 20),
		Demand: quantities(15),
		Costs:  entities.CostMatrix{quantities(1), quantities(1)},
	}

	balanced := NewBalanceAdjuster().Balance(p)

	assert.Equal(t, entities.AddedConsumer, balanced.Fictitious.Kind)
	assert.Equal(t, 1, balanced.Fictitious.Index)
	assertQuantities(t, quantities(15, 15), balanced.Demand)
	for i, row := range balanced.Costs {
		require.Len(t, row, 2, "row %d", i)
		assert.True(t, row[1].IsZero(), "fictitious cost in row %d should be zero, got %s", i, row[1])
	}
	assert.True(t, balanced.IsBalanced())
}

func TestBalanceAdjuster_ExcessDemandAddsSupplier(t *testing.T) {
	p := entities.Problem{
		Supply: quantities(30),
		Demand: quantities(20, 25),
		Costs:  entities.CostMatrix{quantities(4, 6)},
	}

	balanced := NewBalanceAdjuster().Balance(p)

	assert.Equal(t, entities.AddedSupplier, balanced.Fictitious.Kind)
	assert.Equal(t, 1, balanced.Fictitious.Index)
	assertQuantities(t, quantities(30, 15), balanced.Supply)
	require.Len(t, balanced.Costs, 2)
	assertQuantities(t, quantities(0, 0), balanced.Costs[1])
	assert.True(t, balanced.Fictitious.IsSupplier(1))
	assert.True(t, balanced.IsBalanced())
}

func TestBalanceAdjuster_AllZero(t *testing.T) {
	p := entities.Problem{
		Supply: quantities(0, 0),
		Demand: quantities(0),
		Costs:  entities.CostMatrix{quantities(3), quantities(5)},
	}

	balanced := NewBalanceAdjuster().Balance(p)

	assert.Equal(t, entities.FictitiousNone, balanced.Fictitious.Kind)
	assert.Equal(t, 2, balanced.Rows())
	assert.Equal(t, 1, balanced.Cols())
}

func TestBalanceAdjuster_DoesNotMutateInput(t *testing.T) {
	p := entities.Problem{
		Supply: quantities(10, 20),
		Demand: quantities(5),
		Costs:  entities.CostMatrix{quantities(1), quantities(2)},
	}

	balanced := NewBalanceAdjuster().Balance(p)
	balanced.Costs[0][0] = entities.NewQuantity(99)

	assert.Len(t, p.Demand, 1)
	assert.Len(t, p.Costs[0], 1)
	assert.True(t, p.Costs[0][0].Equal(entities.NewQuantity(1)))
}

func TestBalanceAdjuster_FractionalTotals(t *testing.T) {
	half, err := entities.ParseQuantity("0.5")
	require.NoError(t, err)

	p := entities.Problem{
		Supply: []entities.Quantity{entities.NewQuantity(1), half},
		Demand: quantities(1),
		Costs:  entities.CostMatrix{quantities(1), quantities(1)},
	}

	balanced := NewBalanceAdjuster().Balance(p)

	assert.Equal(t, entities.AddedConsumer, balanced.Fictitious.Kind)
	assert.Equal(t, "0.5", balanced.Demand[1].String())
}
