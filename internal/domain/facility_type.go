package domain

import (
	"cmp"
	"slices"
)

type FacilityType struct {
	ID              int     `json:"id" yaml:"id"`
	Capacity        float64 `json:"capacity" yaml:"capacity" validate:"gt=0"`
	WorkingDistance float64 `json:"workingDistance" yaml:"workingDistance" validate:"gt=0"`
	Cost            int     `json:"cost" yaml:"cost" validate:"gte=0"`
}

// SortTypesByCost 按启用成本升序返回类型的副本，成本相同的保持原有顺序
func SortTypesByCost(types []*FacilityType) []*FacilityType {
	sorted := slices.Clone(types)
	slices.SortStableFunc(sorted, func(a, b *FacilityType) int {
		return cmp.Compare(a.Cost, b.Cost)
	})
	return sorted
}
