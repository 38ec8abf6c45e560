package domain

import (
	"errors"
	"math"
	"testing"
)

func TestProportionsValidate(t *testing.T) {
	cases := []struct {
		name    string
		p       Proportions
		wantErr bool
	}{
		{"default", DefaultProportions(), false},
		{"exact halves", Proportions{0.5, 0.5, 0}, false},
		{"within tolerance above", Proportions{0.7, 0.2, 0.1 + 5e-7}, false},
		{"within tolerance below", Proportions{0.7, 0.2, 0.1 - 5e-7}, false},
		{"diff 1e-5", Proportions{0.7, 0.2, 0.09999}, true},
		{"sum 1.1", Proportions{0.8, 0.2, 0.1}, true},
		{"all zero", Proportions{0, 0, 0}, true},
		{"negative component", Proportions{1.2, -0.1, -0.1}, true},
		{"nan", Proportions{math.NaN(), 0.5, 0.5}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.p.Validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected error for %+v", c.p)
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !IsKind(err, KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
		})
	}
}

func TestProportionsValidate_ReportsSum(t *testing.T) {
	cases := []struct {
		p   Proportions
		sum float64
	}{
		{Proportions{0.7, 0.2, 0.09999}, 0.99999},
		{Proportions{0.8, 0.2, 0.1}, 1.1},
	}

	for _, c := range cases {
		err := c.p.Validate()

		var se *SumError
		if !errors.As(err, &se) {
			t.Fatalf("expected SumError, got %v", err)
		}
		if math.Abs(se.Sum-c.sum) > 1e-9 {
			t.Fatalf("expected sum %v, got %v", c.sum, se.Sum)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig in chain")
		}
	}
}

func TestNewProportions(t *testing.T) {
	p, err := NewProportions(0.6, 0.2, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Train != 0.6 || p.Val != 0.2 || p.Test != 0.2 {
		t.Fatalf("unexpected triple %+v", p)
	}

	if _, err := NewProportions(0.6, 0.6, 0.2); err == nil {
		t.Fatalf("expected error for sum 1.4")
	}
}
