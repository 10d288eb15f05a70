package seed

import (
	"fmt"
	"os"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
	"github.com/sysu-ecnc-dev/center-planner/internal/utils"
	"gopkg.in/yaml.v3"
)

// DefaultTypes 为内置的三种中心类型
func DefaultTypes() []*domain.FacilityType {
	return []*domain.FacilityType{
		{ID: 1, Capacity: 18, WorkingDistance: 2, Cost: 50},
		{ID: 2, Capacity: 14, WorkingDistance: 4, Cost: 45},
		{ID: 3, Capacity: 5, WorkingDistance: 7, Cost: 15},
	}
}

// DefaultInstance 返回内置的示例实例：8 个城市、5 个候选位置，最小间距 1.2
func DefaultInstance() *domain.Instance {
	cities := []struct {
		x, y, population float64
	}{
		{1, 1, 5}, {2, 3, 3}, {4, 1, 6}, {1, 2, 1},
		{2, 2, 2}, {0, 1, 2}, {3, 4, 3}, {2, 4, 1},
	}
	locations := []struct {
		x, y float64
	}{
		{2, 3}, {1, 2}, {1, 1}, {0, 2}, {1, 3},
	}

	inst := &domain.Instance{
		Name:          "默认实例",
		Types:         DefaultTypes(),
		MinSeparation: 1.2,
	}
	for i, c := range cities {
		inst.Cities = append(inst.Cities, &domain.City{
			ID:         i + 1,
			Name:       fmt.Sprintf("城市%d", i+1),
			X:          c.x,
			Y:          c.y,
			Population: c.population,
		})
	}
	for i, l := range locations {
		inst.Facilities = append(inst.Facilities, &domain.Facility{
			ID:   i + 1,
			Name: fmt.Sprintf("候选位置%d", i+1),
			X:    l.x,
			Y:    l.y,
		})
	}

	return inst
}

// LoadInstance 从 YAML 文件读取实例并校验
func LoadInstance(path string) (*domain.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取实例文件: %w", err)
	}

	inst := &domain.Instance{}
	if err := yaml.Unmarshal(data, inst); err != nil {
		return nil, fmt.Errorf("无法解析实例文件: %w", err)
	}
	if err := utils.ValidateInstance(inst); err != nil {
		return nil, err
	}

	return inst, nil
}

// SaveInstance 把实例的输入部分写入 YAML 文件，分配和启用状态不会被保存
func SaveInstance(path string, inst *domain.Instance) error {
	data, err := yaml.Marshal(inst)
	if err != nil {
		return fmt.Errorf("无法序列化实例: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("无法写入实例文件: %w", err)
	}

	return nil
}
