package domain

import (
	"fmt"
	"math"
)

// SumTolerance is the absolute tolerance applied to the sum of a proportion triple.
const SumTolerance = 1e-6

// Proportions is the train/val/test fraction triple.
type Proportions struct {
	Train float64 `json:"train"`
	Val   float64 `json:"val"`
	Test  float64 `json:"test"`
}

// DefaultProportions is 70/20/10.
func DefaultProportions() Proportions {
	return Proportions{Train: 0.7, Val: 0.2, Test: 0.1}
}

// NewProportions builds a validated triple.
func NewProportions(train, val, test float64) (Proportions, error) {
	p := Proportions{Train: train, Val: val, Test: test}
	if err := p.Validate(); err != nil {
		return Proportions{}, err
	}
	return p, nil
}

func (p Proportions) Sum() float64 {
	return p.Train + p.Val + p.Test
}

// Validate checks that every component is non-negative and that the sum is
// within SumTolerance of 1.0. A bad sum is reported as a *SumError.
func (p Proportions) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"train_pct", p.Train},
		{"val_pct", p.Val},
		{"test_pct", p.Test},
	} {
		if f.v < 0 || math.IsNaN(f.v) {
			return &OpError{
				Op:   "proportions.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("%s must be non-negative, got %v: %w", f.name, f.v, ErrInvalidConfig),
			}
		}
	}

	sum := p.Sum()
	if math.Abs(sum-1.0) > SumTolerance {
		return &OpError{
			Op:   "proportions.validate",
			Kind: KindInvalidConfig,
			Err:  &SumError{Sum: sum},
		}
	}
	return nil
}
