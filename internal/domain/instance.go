package domain

import "slices"

// Instance 是一次运行所处理的问题实例。启发式算法总是在它的深拷贝上工作。
type Instance struct {
	Name          string          `json:"name" yaml:"name,omitempty"`
	Cities        []*City         `json:"cities" yaml:"cities" validate:"required,min=1,dive"`
	Facilities    []*Facility     `json:"facilities" yaml:"facilities" validate:"required,min=1,dive"`
	Types         []*FacilityType `json:"types" yaml:"types" validate:"required,min=1,dive"`
	MinSeparation float64         `json:"minSeparation" yaml:"minSeparation" validate:"gte=0"`
}

// Clone 深拷贝城市和中心，并把两者之间的引用映射到新的对象上。
// 中心类型是只读配置，新旧实例共享同一组类型。
func (inst *Instance) Clone() *Instance {
	cities := make(map[*City]*City, len(inst.Cities))
	facilities := make(map[*Facility]*Facility, len(inst.Facilities))

	out := &Instance{
		Name:          inst.Name,
		Cities:        make([]*City, 0, len(inst.Cities)),
		Facilities:    make([]*Facility, 0, len(inst.Facilities)),
		Types:         slices.Clone(inst.Types),
		MinSeparation: inst.MinSeparation,
	}

	for _, c := range inst.Cities {
		copied := *c
		cities[c] = &copied
		out.Cities = append(out.Cities, &copied)
	}

	for _, f := range inst.Facilities {
		copied := *f
		copied.PrimaryCities = nil
		copied.SecondaryCities = nil
		facilities[f] = &copied
		out.Facilities = append(out.Facilities, &copied)
	}

	for _, f := range inst.Facilities {
		copied := facilities[f]
		for _, c := range f.PrimaryCities {
			copied.PrimaryCities = append(copied.PrimaryCities, cities[c])
		}
		for _, c := range f.SecondaryCities {
			copied.SecondaryCities = append(copied.SecondaryCities, cities[c])
		}
	}

	for _, c := range inst.Cities {
		copied := cities[c]
		copied.Primary = facilities[c.Primary]
		copied.Secondary = facilities[c.Secondary]
	}

	return out
}

// Blank 返回一个清空了所有分配和启用状态的深拷贝
func (inst *Instance) Blank() *Instance {
	out := inst.Clone()
	for _, c := range out.Cities {
		c.Primary = nil
		c.Secondary = nil
	}
	for _, f := range out.Facilities {
		f.Active = false
		f.Type = nil
		f.PrimaryCities = nil
		f.SecondaryCities = nil
	}
	return out
}

// TotalCost 为所有已启用中心的启用成本之和
func (inst *Instance) TotalCost() int {
	total := 0
	for _, f := range inst.Facilities {
		total += f.Cost()
	}
	return total
}

func (inst *Instance) ActiveFacilities() []*Facility {
	var active []*Facility
	for _, f := range inst.Facilities {
		if f.Active {
			active = append(active, f)
		}
	}
	return active
}

// Missing 统计缺失的角色分配数量（每个城市最多缺两个）
func (inst *Instance) Missing() int {
	missing := 0
	for _, c := range inst.Cities {
		if c.Primary == nil {
			missing++
		}
		if c.Secondary == nil {
			missing++
		}
	}
	return missing
}
