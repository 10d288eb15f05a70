package planner

import (
	"fmt"
	"log/slog"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
)

// GRASP 进行多次随机化贪心构造，每次重启都从空白实例开始，alpha 按步长递增。
// 返回缺失分配最少、其次总成本最低的一次结果，完全相同时取较早的一次。
func (p *Planner) GRASP() (*domain.Solution, Metrics, error) {
	metrics := Metrics{Algorithm: AlgorithmGRASP, RestartCosts: make([]int, 0, p.parameters.Restarts)}

	var best *domain.Solution
	alpha := p.parameters.AlphaStart
	for restart := 0; restart < p.parameters.Restarts; restart++ {
		inst := p.instance.Blank()
		p.construct(inst, alpha)

		sol := domain.NewSolution(inst)
		metrics.RestartCosts = append(metrics.RestartCosts, sol.Cost())
		p.logger.Info("GRASP 重启完成", slog.Int("restart", restart), slog.Float64("alpha", alpha), slog.Int("cost", sol.Cost()), slog.Int("missing", sol.Missing()))

		if best == nil || better(sol, best) {
			best = sol
			metrics.BestRestart = restart
		}

		alpha += p.parameters.AlphaStep
	}

	if n := missingPrimaries(best); n > 0 {
		return nil, metrics, fmt.Errorf("最好的一次重启仍有 %d 个城市没有主中心: %w", n, domain.ErrInfeasible)
	}

	if err := p.finish(best, &metrics); err != nil {
		return nil, metrics, err
	}

	return best, metrics, nil
}

// construct 对每个城市从受限候选列表中随机选出主中心；副中心从受限候选列表的随机位置开始循环尝试，
// 之后再按成本顺序尝试列表之外的候选。没有候选的城市被跳过。
func (p *Planner) construct(inst *domain.Instance, alpha float64) {
	for _, c := range inst.Cities {
		primaries := candidates(inst, c, domain.RolePrimary)
		secondaries := candidates(inst, c, domain.RoleSecondary)

		if len(primaries) == 0 {
			p.logger.Warn("城市没有可行的主中心", slog.String("algorithm", AlgorithmGRASP), slog.Int("city", c.ID))
			continue
		}

		rcl := restrict(primaries, alpha)
		choice := rcl[p.pick(len(rcl), alpha)]
		if err := admit(inst, choice, c, domain.RolePrimary); err != nil {
			p.logger.Warn("主中心提交失败", slog.Int("city", c.ID), slog.Int("facility", choice.Facility.ID), slog.String("error", err.Error()))
			continue
		}

		if len(secondaries) == 0 {
			p.logger.Warn("城市没有可行的副中心", slog.String("algorithm", AlgorithmGRASP), slog.Int("city", c.ID))
			continue
		}

		rcl = restrict(secondaries, alpha)
		offset := p.pick(len(rcl), alpha)
		order := make([]Admission, 0, len(secondaries))
		for i := range rcl {
			order = append(order, rcl[(offset+i)%len(rcl)])
		}
		order = append(order, secondaries[len(rcl):]...)

		if !p.assignSecondary(inst, c, order) {
			p.logger.Warn("城市没有找到可用的副中心", slog.String("algorithm", AlgorithmGRASP), slog.Int("city", c.ID))
		}
	}
}

// pick 在受限候选列表中随机选一个下标，alpha 为 0 时总是选第一个，与贪心的选择一致
func (p *Planner) pick(n int, alpha float64) int {
	if alpha <= 0 || n <= 1 {
		return 0
	}
	return p.rng.Intn(n)
}

func better(a, b *domain.Solution) bool {
	if a.Missing() != b.Missing() {
		return a.Missing() < b.Missing()
	}
	return a.Cost() < b.Cost()
}
