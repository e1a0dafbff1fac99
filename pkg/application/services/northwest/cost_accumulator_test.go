package northwest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

func TestCostAccumulator(t *testing.T) {
	acc := NewCostAccumulator()
	assert.True(t, acc.Total().IsZero())

	assert.Equal(t, "200", acc.Add(entities.NewQuantity(100), entities.NewQuantity(2)).String())
	assert.Equal(t, "300", acc.Add(entities.NewQuantity(20), entities.NewQuantity(5)).String())
	assert.Equal(t, "300", acc.Add(entities.NewQuantity(0), entities.NewQuantity(9)).String())
	assert.Equal(t, "300", acc.Total().String())

	acc.Reset()
	assert.True(t, acc.Total().IsZero())
}
