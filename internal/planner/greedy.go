package planner

import (
	"fmt"
	"log/slog"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
)

// Greedy 按城市顺序依次为每个城市选择增量成本最低的主中心，再按成本从低到高尝试副中心。
// 主中心或副中心没有任何候选时整个构造失败；候选都被拒绝时城市只是缺少副中心。
func (p *Planner) Greedy() (*domain.Solution, Metrics, error) {
	metrics := Metrics{Algorithm: AlgorithmGreedy}
	inst := p.instance.Blank()

	for _, c := range inst.Cities {
		primaries := candidates(inst, c, domain.RolePrimary)
		secondaries := candidates(inst, c, domain.RoleSecondary)
		if len(primaries) == 0 {
			return nil, metrics, fmt.Errorf("城市 %d 没有可行的主中心: %w", c.ID, domain.ErrInfeasible)
		}
		if len(secondaries) == 0 {
			return nil, metrics, fmt.Errorf("城市 %d 没有可行的副中心: %w", c.ID, domain.ErrInfeasible)
		}

		// 排序是稳定的，成本相同的候选中取中心顺序最靠前的一个
		if err := admit(inst, primaries[0], c, domain.RolePrimary); err != nil {
			return nil, metrics, fmt.Errorf("城市 %d 分配主中心 %d 失败: %w", c.ID, primaries[0].Facility.ID, err)
		}
		p.logger.Debug("分配主中心", slog.Int("city", c.ID), slog.Int("facility", primaries[0].Facility.ID), slog.Int("cost", primaries[0].Cost))

		if !p.assignSecondary(inst, c, secondaries) {
			p.logger.Warn("城市没有找到可用的副中心", slog.String("algorithm", AlgorithmGreedy), slog.Int("city", c.ID))
		}
	}

	sol := domain.NewSolution(inst)
	if err := p.finish(sol, &metrics); err != nil {
		return nil, metrics, err
	}

	return sol, metrics, nil
}

// assignSecondary 按给定顺序尝试副中心。候选列表是在分配主中心之前计算的，
// 因此每个候选都要在当前状态下重新评估，被拒绝的候选直接跳过。
func (p *Planner) assignSecondary(inst *domain.Instance, c *domain.City, order []Admission) bool {
	for _, candidate := range order {
		adm := CostToAdmit(inst, candidate.Facility, c, domain.RoleSecondary)
		if !adm.Feasible() {
			p.logger.Debug("副中心候选被拒绝", slog.Int("city", c.ID), slog.Int("facility", candidate.Facility.ID), slog.String("reason", adm.Reason.String()))
			continue
		}
		if err := admit(inst, adm, c, domain.RoleSecondary); err != nil {
			p.logger.Debug("副中心提交失败", slog.Int("city", c.ID), slog.Int("facility", candidate.Facility.ID), slog.String("error", err.Error()))
			continue
		}

		p.logger.Debug("分配副中心", slog.Int("city", c.ID), slog.Int("facility", adm.Facility.ID), slog.Int("cost", adm.Cost))
		return true
	}
	return false
}
