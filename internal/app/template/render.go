package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/datasplit/internal/domain"
)

const opRender = "template.render"

// RenderString replaces {{key}} placeholders with vars values.
// It returns an error if a key is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	out.Grow(len(input))
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderErr(fmt.Errorf("unclosed placeholder: %w", domain.ErrInvalidConfig))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderErr(fmt.Errorf("empty placeholder: %w", domain.ErrInvalidConfig))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderErr(fmt.Errorf("missing value for %q: %w", key, domain.ErrInvalidConfig))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func renderErr(err error) error {
	return &domain.OpError{Op: opRender, Kind: domain.KindInvalidConfig, Err: err}
}
