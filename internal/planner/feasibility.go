package planner

import (
	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
)

/**
 * CostToAdmit 评估把城市 c 以 role 角色交给中心 f 的增量成本，不修改任何状态
 * 1. 已启用且当前类型可以接纳：成本为 0
 * 2. 已启用但容量不足：按启用成本升序寻找容量更大、并且能容纳现有全部分配的类型，成本为差价
 * 3. 未启用：先检查与其它已启用中心的最小间距，再按启用成本升序寻找第一个可以接纳的类型
 * 其余情况不可行，Reason 记录拒绝原因
 */
func CostToAdmit(inst *domain.Instance, f *domain.Facility, c *domain.City, role domain.Role) Admission {
	types := domain.SortTypesByCost(inst.Types)

	if f.Active {
		reason := f.Probe(c, role)
		switch reason {
		case domain.Admitted:
			return Admission{Facility: f, Type: f.Type, Cost: 0, Reason: domain.Admitted}
		case domain.CapacityExceeded:
			for _, t := range types {
				if t.Capacity <= f.Type.Capacity {
					continue
				}
				if f.ProbeAs(t, c, role) == domain.Admitted {
					return Admission{Facility: f, Type: t, Cost: t.Cost - f.Type.Cost, Reason: domain.Admitted}
				}
			}
		}
		return Admission{Facility: f, Reason: reason}
	}

	if reason := f.CheckSeparation(inst.Facilities, inst.MinSeparation); reason != domain.Admitted {
		return Admission{Facility: f, Reason: reason}
	}

	reason := domain.Infeasible
	for _, t := range types {
		reason = f.ProbeAs(t, c, role)
		if reason == domain.Admitted {
			return Admission{Facility: f, Type: t, Cost: t.Cost, Reason: domain.Admitted}
		}
	}
	return Admission{Facility: f, Reason: reason}
}

// candidates 返回城市在该角色下所有可行的中心，按增量成本稳定升序排列
func candidates(inst *domain.Instance, c *domain.City, role domain.Role) []Admission {
	var out []Admission
	for _, f := range inst.Facilities {
		if adm := CostToAdmit(inst, f, c, role); adm.Feasible() {
			out = append(out, adm)
		}
	}
	sortByCost(out)
	return out
}

// admit 按 adm 启用或调整中心类型，然后提交分配。提交失败时把中心恢复到原来的状态。
func admit(inst *domain.Instance, adm Admission, c *domain.City, role domain.Role) error {
	f := adm.Facility
	previous := f.Type
	activated := false

	if !f.Active {
		if err := f.Activate(adm.Type, inst.Facilities, inst.MinSeparation); err != nil {
			return err
		}
		activated = true
	} else {
		f.Type = adm.Type
	}

	if err := f.Commit(c, role); err != nil {
		if activated {
			f.Deactivate()
		} else {
			f.Type = previous
		}
		return err
	}

	return nil
}
