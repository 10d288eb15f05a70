package planner

import (
	"log/slog"
	"slices"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
)

// Improve 在给定结果的副本上做局部搜索，传入的结果不会被修改。
// 每一轮先处理主中心再处理副中心：对每个已启用的中心，寻找一个城市，
// 使得把它移走之后中心可以降级为更便宜的类型，并且另一个已启用的中心能在当前类型下直接接纳它。
// 每个中心每个角色每轮最多移动一个城市，某一轮没有任何移动时提前结束。
func (p *Planner) Improve(sol *domain.Solution) (*domain.Solution, Metrics, error) {
	metrics := Metrics{Algorithm: AlgorithmLocalSearch}
	inst := sol.Instance()
	types := domain.SortTypesByCost(inst.Types)

	for pass := 0; pass < p.parameters.Passes; pass++ {
		metrics.Passes++

		moves := 0
		for _, role := range domain.Roles {
			for _, f := range inst.Facilities {
				if !f.Active {
					continue
				}
				if p.relocate(inst, types, f, role) {
					moves++
				}
			}
		}

		metrics.Moves += moves
		p.logger.Debug("局部搜索完成一轮", slog.Int("pass", pass), slog.Int("moves", moves), slog.Int("cost", inst.TotalCost()))
		if moves == 0 {
			break
		}
	}

	improved := domain.NewSolution(inst)
	if err := p.finish(improved, &metrics); err != nil {
		return nil, metrics, err
	}
	p.logger.Info("局部搜索结束", slog.Int("before", sol.Cost()), slog.Int("after", improved.Cost()), slog.Int("moves", metrics.Moves))

	return improved, metrics, nil
}

// relocate 尝试把中心 f 在 role 角色下的一个城市移到别的中心，成功时 f 降级并返回 true
func (p *Planner) relocate(inst *domain.Instance, types []*domain.FacilityType, f *domain.Facility, role domain.Role) bool {
	for _, c := range slices.Clone(f.Cities(role)) {
		downgrade := cheaperType(types, f, c, role)
		if downgrade == nil {
			continue
		}

		for _, dst := range inst.Facilities {
			if dst == f || !dst.Active {
				continue
			}
			if err := dst.Commit(c, role); err != nil {
				continue
			}

			f.Detach(c, role)
			p.logger.Debug("移动城市并降级中心", slog.String("role", string(role)), slog.Int("city", c.ID), slog.Int("from", f.ID), slog.Int("to", dst.ID), slog.Int("fromType", f.Type.ID), slog.Int("toType", downgrade.ID))
			f.Type = downgrade
			return true
		}
	}
	return false
}

// cheaperType 返回去掉城市 c 之后仍能容纳中心现有分配的、比当前更便宜的最便宜类型
func cheaperType(types []*domain.FacilityType, f *domain.Facility, c *domain.City, role domain.Role) *domain.FacilityType {
	for _, t := range types {
		if t.Cost >= f.Type.Cost {
			break
		}
		if f.Holds(t, c, role) {
			return t
		}
	}
	return nil
}
