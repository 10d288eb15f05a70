package utils

import (
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
)

// ValidateInstance 检查实例的字段取值，以及城市、中心和类型的 ID 是否重复
func ValidateInstance(inst *domain.Instance) error {
	if inst == nil {
		return errors.New("实例不能为空")
	}
	if err := ValidateStruct(inst); err != nil {
		return err
	}

	cityIDs := make(map[int]struct{}, len(inst.Cities))
	for _, c := range inst.Cities {
		if _, exists := cityIDs[c.ID]; exists {
			return fmt.Errorf("城市 %d 的 ID 重复", c.ID)
		}
		cityIDs[c.ID] = struct{}{}
	}

	facilityIDs := make(map[int]struct{}, len(inst.Facilities))
	for _, f := range inst.Facilities {
		if _, exists := facilityIDs[f.ID]; exists {
			return fmt.Errorf("候选位置 %d 的 ID 重复", f.ID)
		}
		facilityIDs[f.ID] = struct{}{}
	}

	typeIDs := make(map[int]struct{}, len(inst.Types))
	for _, t := range inst.Types {
		if _, exists := typeIDs[t.ID]; exists {
			return fmt.Errorf("中心类型 %d 的 ID 重复", t.ID)
		}
		typeIDs[t.ID] = struct{}{}
	}

	return nil
}

// ValidateSolution 检查结果是否满足所有硬约束，允许城市缺少分配
func ValidateSolution(sol *domain.Solution) error {
	inst := sol.Instance()

	for _, f := range inst.Facilities {
		if !f.Active {
			if len(f.PrimaryCities) > 0 || len(f.SecondaryCities) > 0 {
				return fmt.Errorf("中心 %d 未启用但服务了城市", f.ID)
			}
			continue
		}

		if f.Type == nil {
			return fmt.Errorf("中心 %d 已启用但没有类型", f.ID)
		}

		// 负载不超过容量
		if f.Load() > f.Type.Capacity+domain.Epsilon {
			return fmt.Errorf("中心 %d 的负载 %.2f 超过容量 %.2f", f.ID, f.Load(), f.Type.Capacity)
		}

		for _, role := range domain.Roles {
			for _, c := range f.Cities(role) {
				// 服务半径
				if f.DistanceTo(c.X, c.Y) > role.Reach()*f.Type.WorkingDistance+domain.Epsilon {
					return fmt.Errorf("城市 %d 超出%s %d 的服务半径", c.ID, role, f.ID)
				}
				// 双向引用一致
				if c.Facility(role) != f {
					return fmt.Errorf("城市 %d 的%s引用与中心 %d 不一致", c.ID, role, f.ID)
				}
			}
		}

		// 同一个中心不能同时是某个城市的主中心和副中心
		for _, c := range f.PrimaryCities {
			if f.Serves(c, domain.RoleSecondary) {
				return fmt.Errorf("中心 %d 同时是城市 %d 的主中心和副中心", f.ID, c.ID)
			}
		}

		// 已启用的中心之间满足最小间距
		if r := f.CheckSeparation(inst.Facilities, inst.MinSeparation); r != domain.Admitted {
			return fmt.Errorf("中心 %d 与其它已启用的中心距离小于 %.2f", f.ID, inst.MinSeparation)
		}
	}

	for _, c := range inst.Cities {
		for _, role := range domain.Roles {
			f := c.Facility(role)
			if f != nil && !f.Serves(c, role) {
				return fmt.Errorf("城市 %d 的%s %d 没有记录该城市", c.ID, role, f.ID)
			}
		}
		if c.Primary != nil && c.Primary == c.Secondary {
			return fmt.Errorf("城市 %d 的主中心和副中心相同", c.ID)
		}
	}

	if cost := inst.TotalCost(); cost != sol.Cost() {
		return fmt.Errorf("总成本 %d 与已启用中心的成本之和 %d 不一致", sol.Cost(), cost)
	}

	return nil
}

// ValidateCompleteness 检查是否每个城市都分配了主中心和副中心
func ValidateCompleteness(sol *domain.Solution) error {
	for _, a := range sol.Assignments() {
		if a.Primary == nil {
			return fmt.Errorf("城市 %d 没有主中心", a.City)
		}
		if a.Secondary == nil {
			return fmt.Errorf("城市 %d 没有副中心", a.City)
		}
	}
	return nil
}
