package planner

import (
	"cmp"
	"slices"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
)

// sortByCost 按增量成本稳定升序排序，成本相同时保持中心的原有顺序
func sortByCost(admissions []Admission) {
	slices.SortStableFunc(admissions, func(a, b Admission) int {
		return cmp.Compare(a.Cost, b.Cost)
	})
}

// restrict 返回已排序候选中成本不超过 min + alpha * (max - min) 的前缀，即受限候选列表
func restrict(sorted []Admission, alpha float64) []Admission {
	if len(sorted) == 0 {
		return sorted
	}

	lo := float64(sorted[0].Cost)
	hi := float64(sorted[len(sorted)-1].Cost)
	threshold := lo + alpha*(hi-lo)

	n := 0
	for n < len(sorted) && float64(sorted[n].Cost) <= threshold+domain.Epsilon {
		n++
	}
	return sorted[:n]
}

func unassignedCities(sol *domain.Solution) []int {
	unassigned := []int{}
	for _, a := range sol.Assignments() {
		if a.Primary == nil || a.Secondary == nil {
			unassigned = append(unassigned, a.City)
		}
	}
	return unassigned
}

func missingPrimaries(sol *domain.Solution) int {
	missing := 0
	for _, a := range sol.Assignments() {
		if a.Primary == nil {
			missing++
		}
	}
	return missing
}
