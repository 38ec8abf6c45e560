package template

import (
	"errors"
	"testing"

	"github.com/aalvaropc/datasplit/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("train_pct: {{train_pct}}", map[string]string{"train_pct": "0.7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "train_pct: 0.7" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVarsAndSpaces(t *testing.T) {
	out, err := RenderString("{{ val_pct }}/{{test_pct}}", map[string]string{
		"val_pct":  "0.2",
		"test_pct": "0.1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0.2/0.1" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringEmptyInput(t *testing.T) {
	out, err := RenderString("", nil)
	if err != nil || out != "" {
		t.Fatalf("expected empty output, got %q err=%v", out, err)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := map[string]string{
		"missing":  "pattern: {{pattern}}",
		"unclosed": "pattern: {{pattern",
		"empty":    "pattern: {{ }}",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := RenderString(in, map[string]string{})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config kind, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig in chain, got %v", err)
			}
		})
	}
}
