package flow

import (
	"fmt"

	"github.com/go-drift/flow/pkg/errors"
)

// Validate checks the preconditions of Pack. It returns the first violation
// as an *errors.ContractError, or nil.
func Validate(children []ChildBox, availableWidth int, spacing Spacing) error {
	const op = "flow.Pack"
	check := func(field string, value int) error {
		if value < 0 {
			return &errors.ContractError{Op: op, Field: field, Value: value}
		}
		return nil
	}

	if err := check("availableWidth", availableWidth); err != nil {
		return err
	}
	if err := check("spacing.Horizontal", spacing.Horizontal); err != nil {
		return err
	}
	if err := check("spacing.Vertical", spacing.Vertical); err != nil {
		return err
	}
	for i, child := range children {
		fields := []struct {
			name  string
			value int
		}{
			{"MeasuredWidth", child.MeasuredWidth},
			{"MeasuredHeight", child.MeasuredHeight},
			{"Margin.Left", child.Margin.Left},
			{"Margin.Top", child.Margin.Top},
			{"Margin.Right", child.Margin.Right},
			{"Margin.Bottom", child.Margin.Bottom},
		}
		for _, f := range fields {
			if f.value < 0 {
				return &errors.ContractError{
					Op:    op,
					Field: fmt.Sprintf("children[%d].%s", i, f.name),
					Value: f.value,
				}
			}
		}
	}
	return nil
}
