package richtext

import (
	"errors"
	"fmt"
	"slices"
)

// ErrPartialOverlap reports two ranges that cross.
var ErrPartialOverlap = errors.New("styled ranges partially overlap")

// CheckNesting verifies that any two ranges are disjoint or one contains
// the other. Ranges need not be sorted.
func CheckNesting(ranges []StyledRange) error {
	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b StyledRange) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return b.End - a.End
	})

	var stack []StyledRange
	for _, r := range sorted {
		for len(stack) > 0 && stack[len(stack)-1].End <= r.Start && stack[len(stack)-1].Start < r.Start {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			if r.End > top.End {
				return fmt.Errorf("%s [%d,%d) and %s [%d,%d): %w",
					top.Kind, top.Start, top.End, r.Kind, r.Start, r.End, ErrPartialOverlap)
			}
		}
		stack = append(stack, r)
	}
	return nil
}
