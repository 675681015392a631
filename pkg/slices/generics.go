package slices

import (
	originSlices "slices"

	"golang.org/x/exp/constraints"
)

// GenericsFilterSliceEmptyValues drops zero values ("", 0, false) from list
func GenericsFilterSliceEmptyValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	var zero T
	for _, v := range list {
		if v != zero {
			result = append(result, v)
		}
	}
	return result
}

// GenericsUniqueSliceValues keeps the first occurrence of every value, in order
func GenericsUniqueSliceValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// GenericsStandardizeSlice returns the distinct non-zero values of list sorted
// ascending. A nil list yields an empty slice.
func GenericsStandardizeSlice[T constraints.Ordered](list []T) []T {
	result := GenericsUniqueSliceValues(GenericsFilterSliceEmptyValues(list))
	originSlices.Sort(result)
	return result
}
