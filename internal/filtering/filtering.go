// Package filtering narrows the catalog before a search runs. Filters are
// applied sequentially and each step logs how many records it dropped.
package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"reelfinder/internal/catalog"
)

// Filter represents a single filtering step applied to the catalog.
type Filter interface {
	Name() string
	Apply(m *catalog.Movies) (*catalog.Movies, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Filtering runs an ordered list of filters.
type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	return &Filtering{steps: steps, logger: logger}
}

// Run executes the filters sequentially and returns the narrowed catalog.
func (f *Filtering) Run(m *catalog.Movies) (*catalog.Movies, error) {
	for _, step := range f.steps {
		next, info, err := step.Apply(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if f.logger != nil && info.Dropped > 0 {
			f.logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		m = next
	}

	return m, nil
}
