package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// Config holds the ranges a random problem is drawn from. All bounds are inclusive.
type Config struct {
	MinSuppliers int
	MaxSuppliers int
	MinConsumers int
	MaxConsumers int
	MinQuantity  int64
	MaxQuantity  int64
	MinCost      int64
	MaxCost      int64
	Seed         int64 // Random seed for reproducible generation, 0 picks one from the clock
}

// DefaultConfig returns the ranges used by the "random" action
func DefaultConfig() Config {
	return Config{
		MinSuppliers: 2,
		MaxSuppliers: 5,
		MinConsumers: 2,
		MaxConsumers: 5,
		MinQuantity:  50,
		MaxQuantity:  300,
		MinCost:      1,
		MaxCost:      10,
	}
}

// Validate checks that every range is non-empty and within the editing bounds
func (c Config) Validate() error {
	if c.MinSuppliers < entities.MinEntries || c.MaxSuppliers > entities.MaxEntries || c.MinSuppliers > c.MaxSuppliers {
		return fmt.Errorf("supplier range [%d, %d] must lie within [%d, %d]",
			c.MinSuppliers, c.MaxSuppliers, entities.MinEntries, entities.MaxEntries)
	}
	if c.MinConsumers < entities.MinEntries || c.MaxConsumers > entities.MaxEntries || c.MinConsumers > c.MaxConsumers {
		return fmt.Errorf("consumer range [%d, %d] must lie within [%d, %d]",
			c.MinConsumers, c.MaxConsumers, entities.MinEntries, entities.MaxEntries)
	}
	if c.MinQuantity < 0 || c.MinQuantity > c.MaxQuantity {
		return fmt.Errorf("invalid quantity range [%d, %d]", c.MinQuantity, c.MaxQuantity)
	}
	if c.MinCost < 0 || c.MinCost > c.MaxCost {
		return fmt.Errorf("invalid cost range [%d, %d]", c.MinCost, c.MaxCost)
	}
	return nil
}

// Generator produces random transportation problems
type Generator struct {
	config Config
	rand   *rand.Rand
}

// New creates a generator. The config must already be valid.
func New(config Config) *Generator {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Generate draws a random problem. The result is usually unbalanced.
func (g *Generator) Generate() entities.Problem {
	suppliers := g.between(int64(g.config.MinSuppliers), int64(g.config.MaxSuppliers))
	consumers := g.between(int64(g.config.MinConsumers), int64(g.config.MaxConsumers))

	p := entities.Problem{
		Supply: make(entities.SupplyVector, suppliers),
		Demand: make(entities.DemandVector, consumers),
		Costs:  make(entities.CostMatrix, suppliers),
	}
	for i := range p.Supply {
		p.Supply[i] = entities.NewQuantity(g.between(g.config.MinQuantity, g.config.MaxQuantity))
	}
	for j := range p.Demand {
		p.Demand[j] = entities.NewQuantity(g.between(g.config.MinQuantity, g.config.MaxQuantity))
	}
	for i := range p.Costs {
		p.Costs[i] = make([]entities.Quantity, consumers)
		for j := range p.Costs[i] {
			p.Costs[i][j] = entities.NewQuantity(g.between(g.config.MinCost, g.config.MaxCost))
		}
	}

	return p
}

func (g *Generator) between(lo, hi int64) int64 {
	return lo + g.rand.Int63n(hi-lo+1)
}
