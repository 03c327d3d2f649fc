package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ceramiqa/quality-management/internal"
)

// Builder accumulates field checks so a DTO can report every problem in one
// error instead of failing on the first.
type Builder struct {
	problems []string
}

func New() *Builder {
	return &Builder{}
}

func (b *Builder) Require(field, value string) *Builder {
	if strings.TrimSpace(value) == "" {
		b.problems = append(b.problems, fmt.Sprintf("%s is required", field))
	}
	return b
}

func (b *Builder) RequireID(field string, value int64) *Builder {
	if value <= 0 {
		b.problems = append(b.problems, fmt.Sprintf("%s is required", field))
	}
	return b
}

func (b *Builder) RequireTime(field string, value time.Time) *Builder {
	if value.IsZero() {
		b.problems = append(b.problems, fmt.Sprintf("%s is required", field))
	}
	return b
}

func (b *Builder) NonNegative(field string, value float64) *Builder {
	if value < 0 {
		b.problems = append(b.problems, fmt.Sprintf("%s must not be negative", field))
	}
	return b
}

func (b *Builder) Positive(field string, value float64) *Builder {
	if value <= 0 {
		b.problems = append(b.problems, fmt.Sprintf("%s must be greater than 0", field))
	}
	return b
}

// OneOf accepts an empty value; pair it with Require when the field is
// mandatory.
func (b *Builder) OneOf(field, value string, allowed ...string) *Builder {
	if value == "" {
		return b
	}
	for _, a := range allowed {
		if value == a {
			return b
		}
	}
	b.problems = append(b.problems, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
	return b
}

func (b *Builder) Check(ok bool, message string) *Builder {
	if !ok {
		b.problems = append(b.problems, message)
	}
	return b
}

// Err collapses the accumulated problems into a single validation error that
// handlers map to a 400 response.
func (b *Builder) Err() error {
	if len(b.problems) == 0 {
		return nil
	}
	return internal.NewValidationError(strings.Join(b.problems, "; "), internal.ErrCodeValidationFailed)
}
