package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
	"github.com/sysu-ecnc-dev/center-planner/internal/planner"
	"github.com/sysu-ecnc-dev/center-planner/internal/seed"
)

// feasibilityInstance 使用内置的三种类型：
// 类型 3 (容量 5，距离 7，成本 15)，类型 2 (容量 14，距离 4，成本 45)，类型 1 (容量 18，距离 2，成本 50)
func feasibilityInstance() *domain.Instance {
	return &domain.Instance{
		Cities: []*domain.City{
			{ID: 1, X: 1, Y: 0, Population: 3},
			{ID: 2, X: 0, Y: 3, Population: 6},
			{ID: 3, X: 5, Y: 0, Population: 4},
		},
		Facilities: []*domain.Facility{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 1, Y: 1},
		},
		Types:         seed.DefaultTypes(),
		MinSeparation: 2,
	}
}

func typeByID(inst *domain.Instance, id int) *domain.FacilityType {
	for _, t := range inst.Types {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func TestCostToAdmitInactivePicksCheapestType(t *testing.T) {
	inst := feasibilityInstance()
	f := inst.Facilities[0]

	adm := planner.CostToAdmit(inst, f, inst.Cities[0], domain.RolePrimary)
	require.True(t, adm.Feasible())
	require.Equal(t, 3, adm.Type.ID)
	require.Equal(t, 15, adm.Cost)

	// 人口 6 超过类型 3 的容量，退到类型 2
	adm = planner.CostToAdmit(inst, f, inst.Cities[1], domain.RolePrimary)
	require.True(t, adm.Feasible())
	require.Equal(t, 2, adm.Type.ID)
	require.Equal(t, 45, adm.Cost)

	require.False(t, f.Active)
	require.Nil(t, f.Type)
}

func TestCostToAdmitActive(t *testing.T) {
	inst := feasibilityInstance()
	f := inst.Facilities[0]
	require.NoError(t, f.Activate(typeByID(inst, 3), inst.Facilities, inst.MinSeparation))
	require.NoError(t, f.CommitPrimary(inst.Cities[0]))

	adm := planner.CostToAdmit(inst, f, inst.Cities[0], domain.RoleSecondary)
	require.False(t, adm.Feasible())
	require.Equal(t, domain.AlreadyPrimary, adm.Reason)

	adm = planner.CostToAdmit(inst, f, inst.Cities[2], domain.RoleSecondary)
	require.True(t, adm.Feasible())
	require.Zero(t, adm.Cost)
	require.Same(t, f.Type, adm.Type)
}

func TestCostToAdmitUpgrade(t *testing.T) {
	inst := feasibilityInstance()
	f := inst.Facilities[0]
	require.NoError(t, f.Activate(typeByID(inst, 3), inst.Facilities, inst.MinSeparation))
	require.NoError(t, f.CommitPrimary(inst.Cities[0]))

	// 3 + 4 超过容量 5，城市 3 距离 5 超出类型 2 的半径 4，类型 1 的半径更小
	adm := planner.CostToAdmit(inst, f, inst.Cities[2], domain.RolePrimary)
	require.False(t, adm.Feasible())
	require.Equal(t, domain.CapacityExceeded, adm.Reason)

	// 3 + 6 需要升级到类型 2，差价 30
	adm = planner.CostToAdmit(inst, f, inst.Cities[1], domain.RolePrimary)
	require.True(t, adm.Feasible())
	require.Equal(t, 2, adm.Type.ID)
	require.Equal(t, 30, adm.Cost)
	require.Equal(t, 3, f.Type.ID)
}

func TestCostToAdmitUpgradeMustHoldExistingCities(t *testing.T) {
	inst := feasibilityInstance()
	f := inst.Facilities[0]
	require.NoError(t, f.Activate(typeByID(inst, 3), inst.Facilities, inst.MinSeparation))
	require.NoError(t, f.CommitPrimary(inst.Cities[2]))

	// 城市 3 距离 5，升级后的两种类型都无法覆盖它
	adm := planner.CostToAdmit(inst, f, inst.Cities[0], domain.RolePrimary)
	require.False(t, adm.Feasible())
	require.Equal(t, domain.CapacityExceeded, adm.Reason)
}

func TestCostToAdmitTooClose(t *testing.T) {
	inst := feasibilityInstance()
	require.NoError(t, inst.Facilities[0].Activate(typeByID(inst, 3), inst.Facilities, inst.MinSeparation))

	adm := planner.CostToAdmit(inst, inst.Facilities[1], inst.Cities[0], domain.RolePrimary)
	require.False(t, adm.Feasible())
	require.Equal(t, domain.TooClose, adm.Reason)
}

func TestCostToAdmitTooFar(t *testing.T) {
	inst := feasibilityInstance()
	far := &domain.City{ID: 9, X: 30, Y: 30, Population: 1}

	adm := planner.CostToAdmit(inst, inst.Facilities[0], far, domain.RolePrimary)
	require.False(t, adm.Feasible())
	require.Equal(t, domain.TooFar, adm.Reason)
}
