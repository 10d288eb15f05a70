package planner_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
	"github.com/sysu-ecnc-dev/center-planner/internal/planner"
	"github.com/sysu-ecnc-dev/center-planner/internal/seed"
	"github.com/sysu-ecnc-dev/center-planner/internal/utils"
)

// LocalSearchSuite 在手工构造的分配上测试局部搜索。
// 中心 1 使用最贵的类型服务城市 1 和城市 2，把城市 2 移到中心 3 之后可以降级。
type LocalSearchSuite struct {
	suite.Suite
	inst   *domain.Instance
	cities []*domain.City
}

func (s *LocalSearchSuite) SetupTest() {
	small := &domain.FacilityType{ID: 1, Capacity: 5, WorkingDistance: 10, Cost: 10}
	medium := &domain.FacilityType{ID: 2, Capacity: 8, WorkingDistance: 10, Cost: 20}
	big := &domain.FacilityType{ID: 3, Capacity: 12, WorkingDistance: 10, Cost: 40}

	s.cities = []*domain.City{
		{ID: 1, X: 1, Y: 0, Population: 6},
		{ID: 2, X: 2, Y: 0, Population: 3},
		{ID: 3, X: 4, Y: 0, Population: 1},
		{ID: 4, X: 9, Y: 0, Population: 1},
	}
	s.inst = &domain.Instance{
		Cities: s.cities,
		Facilities: []*domain.Facility{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 5, Y: 0},
			{ID: 3, X: 10, Y: 0},
		},
		Types:         []*domain.FacilityType{small, medium, big},
		MinSeparation: 1,
	}

	f1, f2, f3 := s.inst.Facilities[0], s.inst.Facilities[1], s.inst.Facilities[2]
	s.Require().NoError(f1.Activate(big, s.inst.Facilities, s.inst.MinSeparation))
	s.Require().NoError(f2.Activate(small, s.inst.Facilities, s.inst.MinSeparation))
	s.Require().NoError(f3.Activate(small, s.inst.Facilities, s.inst.MinSeparation))

	c1, c2, c3, c4 := s.cities[0], s.cities[1], s.cities[2], s.cities[3]
	s.Require().NoError(f1.CommitPrimary(c1))
	s.Require().NoError(f1.CommitPrimary(c2))
	s.Require().NoError(f2.CommitPrimary(c3))
	s.Require().NoError(f3.CommitPrimary(c4))
	s.Require().NoError(f2.CommitSecondary(c1))
	s.Require().NoError(f2.CommitSecondary(c2))
	s.Require().NoError(f1.CommitSecondary(c3))
	s.Require().NoError(f2.CommitSecondary(c4))
}

func (s *LocalSearchSuite) improve(passes int) (*domain.Solution, *domain.Solution, planner.Metrics) {
	p, err := planner.New(&planner.Parameters{Seed: 1, Restarts: 1, Passes: passes}, s.inst, discard)
	s.Require().NoError(err)

	before := domain.NewSolution(s.inst)
	after, metrics, err := p.Improve(before)
	s.Require().NoError(err)
	return before, after, metrics
}

func (s *LocalSearchSuite) TestMoveAndDowngrade() {
	before, after, metrics := s.improve(5)

	s.Require().Equal(60, before.Cost())
	s.Require().Equal(40, after.Cost())
	s.Require().Equal(1, metrics.Moves)
	s.Require().Equal(2, metrics.Passes)
	requireValid(s.T(), after)
	s.Require().True(after.Complete())

	assignments := after.Assignments()
	s.Require().Equal(3, assignments[1].Primary.Facility)
	s.Require().Equal(1, assignments[0].Primary.Facility)

	facilities := after.Facilities()
	s.Require().Equal(2, facilities[0].Type)
	s.Require().Equal([]int{1}, facilities[0].Primary)
	s.Require().Equal([]int{4, 2}, facilities[2].Primary)
}

func (s *LocalSearchSuite) TestInputSolutionUnchanged() {
	before, _, _ := s.improve(5)

	s.Require().Equal(60, before.Cost())
	s.Require().Equal(1, before.Assignments()[1].Primary.Facility)
}

func (s *LocalSearchSuite) TestZeroPasses() {
	_, after, metrics := s.improve(0)

	s.Require().Equal(60, after.Cost())
	s.Require().Zero(metrics.Moves)
	s.Require().Zero(metrics.Passes)
}

func (s *LocalSearchSuite) TestExclusivityBlocksMove() {
	// 去掉中心 3 之后，唯一的目标中心 2 已经是城市 1 和城市 2 的副中心
	f3 := s.inst.Facilities[2]
	c4 := s.cities[3]
	f3.Detach(c4, domain.RolePrimary)
	s.Require().True(f3.Deactivate())
	s.inst.Facilities = s.inst.Facilities[:2]
	s.inst.Cities = s.cities[:3]
	s.inst.Facilities[1].Detach(c4, domain.RoleSecondary)

	before, after, metrics := s.improve(5)
	s.Require().Equal(50, before.Cost())
	s.Require().Equal(50, after.Cost())
	s.Require().Zero(metrics.Moves)
	s.Require().Equal(1, metrics.Passes)
}

func TestLocalSearchSuite(t *testing.T) {
	suite.Run(t, new(LocalSearchSuite))
}

func TestLocalSearchDefaultInstance(t *testing.T) {
	p := newPlanner(t, nil, seed.DefaultInstance())

	sol, metrics, err := p.Run(planner.AlgorithmLocalSearch)
	require.NoError(t, err)
	requireValid(t, sol)
	require.Equal(t, 90, sol.Cost())
	require.Zero(t, metrics.Moves)
	require.Equal(t, 1, metrics.Passes)
}

func TestLocalSearchNeverIncreasesCost(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		inst, err := utils.GenerateRandomInstance(rng, utils.GeneratorOptions{
			Cities:        12,
			Locations:     6,
			Size:          8,
			MaxPopulation: 5,
			MinSeparation: 1,
			Types:         seed.DefaultTypes(),
		})
		require.NoError(t, err)

		p := newPlanner(t, &planner.Parameters{Seed: 1, Restarts: 3, AlphaStep: 0.3, Passes: 5}, inst)
		start, _, err := p.GRASP()
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInfeasible)
			continue
		}

		improved, _, err := p.Improve(start)
		require.NoError(t, err)
		requireValid(t, improved)
		require.LessOrEqual(t, improved.Cost(), start.Cost())
		require.Equal(t, start.Missing(), improved.Missing())
	}
}
