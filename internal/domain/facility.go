package domain

import "slices"

type Facility struct {
	ID   int     `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name,omitempty"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`

	Active          bool          `json:"active" yaml:"-" validate:"-"`
	Type            *FacilityType `json:"-" yaml:"-" validate:"-"` // 仅在 Active 时有意义
	PrimaryCities   []*City       `json:"-" yaml:"-" validate:"-"`
	SecondaryCities []*City       `json:"-" yaml:"-" validate:"-"`
}

func (f *Facility) DistanceTo(x, y float64) float64 {
	return Distance(f.X, f.Y, x, y)
}

// Cities 返回中心在指定角色下服务的城市
func (f *Facility) Cities(role Role) []*City {
	if role == RolePrimary {
		return f.PrimaryCities
	}
	return f.SecondaryCities
}

// Serves 判断中心是否以指定角色服务该城市（按城市身份判断，而不是坐标）
func (f *Facility) Serves(c *City, role Role) bool {
	return slices.Contains(f.Cities(role), c)
}

// Load = 主城市人口之和 + 0.1 * 副城市人口之和
func (f *Facility) Load() float64 {
	primary, secondary := 0.0, 0.0
	for _, c := range f.PrimaryCities {
		primary += c.Population
	}
	for _, c := range f.SecondaryCities {
		secondary += c.Population
	}
	return primary + RoleSecondary.Weight()*secondary
}

// Cost 为中心当前的启用成本，未启用的中心成本为 0
func (f *Facility) Cost() int {
	if !f.Active || f.Type == nil {
		return 0
	}
	return f.Type.Cost
}

func (f *Facility) ProbePrimary(c *City) Reason {
	return f.Probe(c, RolePrimary)
}

func (f *Facility) ProbeSecondary(c *City) Reason {
	return f.Probe(c, RoleSecondary)
}

// Probe 在中心当前的启用状态和类型下检查能否以指定角色接纳城市，不修改任何状态
func (f *Facility) Probe(c *City, role Role) Reason {
	if !f.Active || f.Type == nil {
		return Inactive
	}
	return f.ProbeAs(f.Type, c, role)
}

// ProbeAs 假设中心的类型为 t，检查能否以指定角色接纳城市。
// 当 t 与当前类型不同时，还要求中心已有的城市在 t 下依然满足距离约束。
func (f *Facility) ProbeAs(t *FacilityType, c *City, role Role) Reason {
	switch role {
	case RolePrimary:
		if f.Serves(c, RoleSecondary) {
			return AlreadySecondary
		}
	case RoleSecondary:
		if f.Serves(c, RolePrimary) {
			return AlreadyPrimary
		}
	}

	if f.DistanceTo(c.X, c.Y) > role.Reach()*t.WorkingDistance+Epsilon {
		return TooFar
	}
	if f.Load()+role.Weight()*c.Population > t.Capacity+Epsilon {
		return CapacityExceeded
	}
	if t != f.Type && !f.Holds(t, nil, role) {
		return TooFar
	}

	return Admitted
}

// Holds 判断去掉 without（以 role 角色）之后，中心现有的分配在类型 t 下是否满足容量和距离约束。
// without 为 nil 时检查全部分配。
func (f *Facility) Holds(t *FacilityType, without *City, role Role) bool {
	load := 0.0
	for _, r := range Roles {
		for _, c := range f.Cities(r) {
			if c == without && r == role {
				continue
			}
			if f.DistanceTo(c.X, c.Y) > r.Reach()*t.WorkingDistance+Epsilon {
				return false
			}
			load += r.Weight() * c.Population
		}
	}
	return load <= t.Capacity+Epsilon
}

func (f *Facility) CommitPrimary(c *City) error {
	return f.Commit(c, RolePrimary)
}

func (f *Facility) CommitSecondary(c *City) error {
	return f.Commit(c, RoleSecondary)
}

// Commit 重新检查约束，只有通过时才把城市加入中心并更新城市的引用
func (f *Facility) Commit(c *City, role Role) error {
	if r := f.Probe(c, role); r != Admitted {
		return r.Err()
	}

	if role == RolePrimary {
		f.PrimaryCities = append(f.PrimaryCities, c)
	} else {
		f.SecondaryCities = append(f.SecondaryCities, c)
	}
	c.setFacility(role, f)

	return nil
}

// Detach 将城市从中心的指定角色列表中移除，返回城市原本是否在列表中
func (f *Facility) Detach(c *City, role Role) bool {
	idx := slices.Index(f.Cities(role), c)
	if idx < 0 {
		return false
	}

	if role == RolePrimary {
		f.PrimaryCities = slices.Delete(f.PrimaryCities, idx, idx+1)
	} else {
		f.SecondaryCities = slices.Delete(f.SecondaryCities, idx, idx+1)
	}
	if c.Facility(role) == f {
		c.setFacility(role, nil)
	}

	return true
}

// CheckSeparation 检查中心与其它已启用中心之间的距离是否都不小于 minSeparation
func (f *Facility) CheckSeparation(facilities []*Facility, minSeparation float64) Reason {
	for _, other := range facilities {
		if other == f || !other.Active {
			continue
		}
		if f.DistanceTo(other.X, other.Y) < minSeparation-Epsilon {
			return TooClose
		}
	}
	return Admitted
}

// Activate 以类型 t 启用中心。已启用的中心保持原状。
func (f *Facility) Activate(t *FacilityType, facilities []*Facility, minSeparation float64) error {
	if f.Active {
		return nil
	}
	if r := f.CheckSeparation(facilities, minSeparation); r != Admitted {
		return r.Err()
	}

	f.Active = true
	f.Type = t

	return nil
}

// Deactivate 关闭一个没有服务任何城市的中心，仍有城市时返回 false
func (f *Facility) Deactivate() bool {
	if len(f.PrimaryCities) > 0 || len(f.SecondaryCities) > 0 {
		return false
	}

	f.Active = false
	f.Type = nil

	return true
}
