package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func admissions(costs ...int) []Admission {
	out := make([]Admission, 0, len(costs))
	for _, c := range costs {
		out = append(out, Admission{Cost: c})
	}
	return out
}

func TestRestrict(t *testing.T) {
	sorted := admissions(10, 10, 20, 30, 50)

	require.Len(t, restrict(sorted, 0), 2)
	require.Len(t, restrict(sorted, 0.5), 4)
	require.Len(t, restrict(sorted, 1), 5)
	require.Empty(t, restrict(nil, 0.5))
}

func TestSortByCostIsStable(t *testing.T) {
	list := []Admission{{Cost: 30, Reason: 1}, {Cost: 10}, {Cost: 30, Reason: 2}}
	sortByCost(list)

	require.Equal(t, 10, list[0].Cost)
	require.EqualValues(t, 1, list[1].Reason)
	require.EqualValues(t, 2, list[2].Reason)
}
